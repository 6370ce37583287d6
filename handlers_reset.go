package iso14229

const resetTypeMask = 0x3F

// handleECUReset implements 0x11 (spec §4.4). The actual hard reset is
// deferred to the poll scheduler (session.go, processStateMachine) so
// the positive response has a chance to leave the wire first.
func handleECUReset(s *Server, req ServiceRequest) {
	if len(req.Data) < 1 {
		s.sendNegative(req.SID, IncorrectMessageLengthOrInvalidFormat)
		return
	}
	resetType := ResetType(req.Data[0] & resetTypeMask)

	if resetType == ResetHard {
		s.armReset(s.clock.NowMs())
	}

	payload := s.work[:2]
	payload[0] = byte(resetType)
	payload[1] = 0 // powerDownTime
	s.sendPositive(req.SID, payload)
}
