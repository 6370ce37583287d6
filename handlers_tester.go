package iso14229

// handleTesterPresent implements 0x3E. Referenced but not detailed by
// the design beyond its S3-refresh effect; the zeroSubFunction
// validation follows ISO 14229-1's single defined sub-function.
func handleTesterPresent(s *Server, req ServiceRequest) {
	if len(req.Data) < 1 {
		s.sendNegative(req.SID, IncorrectMessageLengthOrInvalidFormat)
		return
	}
	raw := req.Data[0]
	suppress := raw&suppressPositiveBit != 0
	subFunction := raw &^ suppressPositiveBit

	if subFunction != 0 {
		s.sendNegative(req.SID, SubFunctionNotSupported)
		return
	}

	s.refreshS3(s.clock.NowMs())

	if suppress {
		return
	}

	payload := s.work[:1]
	payload[0] = subFunction
	s.sendPositive(req.SID, payload)
}
