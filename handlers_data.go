package iso14229

import "github.com/fuluwwa/iso14229/internal/wire"

// handleReadDataByIdentifier implements 0x22 (spec §4.5). Each DID in the
// request is resolved in order and appended to the response; the first
// non-positive code from the callback aborts the whole response.
func handleReadDataByIdentifier(s *Server, req ServiceRequest) {
	if s.cfg.RDBI == nil {
		s.sendNegative(req.SID, ServiceNotSupported)
		return
	}
	if len(req.Data) == 0 || len(req.Data)%2 != 0 {
		s.sendNegative(req.SID, IncorrectMessageLengthOrInvalidFormat)
		return
	}

	offset := 0
	for i := 0; i < len(req.Data); i += 2 {
		did := wire.Uint16(req.Data[i : i+2])
		data, code := s.cfg.RDBI(did)
		if code != Positive {
			s.sendNegative(req.SID, code)
			return
		}
		need := offset + 2 + len(data)
		if need > len(s.work) {
			s.sendNegative(req.SID, ResponseTooLong)
			return
		}
		wire.PutUint16(s.work[offset:offset+2], did)
		copy(s.work[offset+2:need], data)
		offset = need
	}
	s.sendPositive(req.SID, s.work[:offset])
}

// handleWriteDataByIdentifier implements 0x2E (spec §4.7).
func handleWriteDataByIdentifier(s *Server, req ServiceRequest) {
	if len(req.Data) < 3 {
		s.sendNegative(req.SID, IncorrectMessageLengthOrInvalidFormat)
		return
	}
	if s.cfg.WDBI == nil {
		s.sendNegative(req.SID, ServiceNotSupported)
		return
	}
	did := wire.Uint16(req.Data[0:2])
	record := req.Data[2:]

	code := s.cfg.WDBI(did, record)
	if code != Positive {
		s.sendNegative(req.SID, code)
		return
	}

	payload := s.work[:2]
	wire.PutUint16(payload, did)
	s.sendPositive(req.SID, payload)
}
