package iso14229

import "github.com/fuluwwa/iso14229/internal/wire"

const suppressPositiveBit = 0x80

// handleDiagnosticSessionControl implements 0x10 (spec §4.3).
func handleDiagnosticSessionControl(s *Server, req ServiceRequest) {
	if len(req.Data) < 1 {
		s.sendNegative(req.SID, IncorrectMessageLengthOrInvalidFormat)
		return
	}
	raw := req.Data[0]
	suppress := raw&suppressPositiveBit != 0
	sessionType := DiagMode(raw &^ suppressPositiveBit)

	if !sessionType.valid() {
		s.sendNegative(req.SID, ServiceNotSupported)
		return
	}

	s.mode = sessionType

	if suppress {
		return
	}

	payload := s.work[:5]
	payload[0] = byte(sessionType)
	wire.PutUint16(payload[1:3], s.cfg.P2Ms)
	wire.PutUint16(payload[3:5], s.cfg.P2StarMs/10)
	s.sendPositive(req.SID, payload)
}
