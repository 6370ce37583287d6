package iso14229

import "github.com/fuluwwa/iso14229/internal/wire"

// maxISOTPPayload is the largest reassembled ISO-TP payload (spec §4.9,
// glossary "ISO-TP"); it caps the maxBlockLength a download handler may
// advertise.
const maxISOTPPayload = 4095

// supportedAddrLenWidth is the only memoryAddress/memorySize width this
// revision accepts, in bytes (spec §4.9).
const supportedAddrLenWidth = 4

// handleRequestDownload implements 0x34 (spec §4.9).
func handleRequestDownload(s *Server, req ServiceRequest) {
	if len(req.Data) < 2 {
		s.sendNegative(req.SID, IncorrectMessageLengthOrInvalidFormat)
		return
	}
	dataFormatIdentifier := req.Data[0]
	addrAndLenFormatID := req.Data[1]
	sizeWidth := addrAndLenFormatID >> 4
	addrWidth := addrAndLenFormatID & 0x0F
	if sizeWidth != supportedAddrLenWidth || addrWidth != supportedAddrLenWidth {
		s.sendNegative(req.SID, RequestOutOfRange)
		return
	}
	if len(req.Data) < 2+supportedAddrLenWidth+supportedAddrLenWidth {
		s.sendNegative(req.SID, IncorrectMessageLengthOrInvalidFormat)
		return
	}
	address := wire.Uint32(req.Data[2:6])
	size := wire.Uint32(req.Data[6:10])

	handler := s.download.active()
	if handler == nil {
		s.sendNegative(req.SID, UploadDownloadNotAccepted)
		return
	}

	maxBlockLength, code := handler.cfg.OnRequest(handler.cfg.UserCtx, dataFormatIdentifier, address, size)
	if code != Positive {
		s.sendNegative(req.SID, code)
		return
	}
	if maxBlockLength == 0 {
		s.sendNegative(req.SID, GeneralProgrammingFailure)
		return
	}
	if maxBlockLength > maxISOTPPayload {
		maxBlockLength = maxISOTPPayload
	}

	handler.blockSequenceCounter = 1
	handler.active = true

	payload := s.work[:3]
	payload[0] = 0x20 // lengthFormatIdentifier
	wire.PutUint16(payload[1:3], maxBlockLength)
	s.sendPositive(req.SID, payload)
}

// handleTransferData implements 0x36 (spec §4.9, P6). Any failure
// re-initializes the handler so that a subsequent attempt must restart
// with RequestDownload.
func handleTransferData(s *Server, req ServiceRequest) {
	handler := s.download.active()

	if len(req.Data) < 1 {
		if handler != nil {
			handler.reset()
		}
		s.sendNegative(req.SID, IncorrectMessageLengthOrInvalidFormat)
		return
	}
	if handler == nil {
		s.sendNegative(req.SID, UploadDownloadNotAccepted)
		return
	}

	counter := req.Data[0]
	data := req.Data[1:]

	if counter != handler.blockSequenceCounter {
		handler.reset()
		s.sendNegative(req.SID, RequestSequenceError)
		return
	}
	if !handler.active {
		handler.reset()
		s.sendNegative(req.SID, UploadDownloadNotAccepted)
		return
	}

	code := handler.cfg.OnTransfer(handler.cfg.UserCtx, data)
	if code != Positive {
		handler.reset()
		s.sendNegative(req.SID, code)
		return
	}

	handler.blockSequenceCounter++
	payload := s.work[:1]
	payload[0] = counter
	s.sendPositive(req.SID, payload)
}

// handleRequestTransferExit implements 0x37 (spec §4.9).
func handleRequestTransferExit(s *Server, req ServiceRequest) {
	handler := s.download.active()
	if handler == nil || !handler.active {
		s.sendNegative(req.SID, UploadDownloadNotAccepted)
		return
	}

	code := handler.cfg.OnExit(handler.cfg.UserCtx)
	if code != Positive {
		s.sendNegative(req.SID, code)
		return
	}

	handler.reset()
	s.sendPositive(req.SID, nil)
}
