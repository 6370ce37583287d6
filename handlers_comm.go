package iso14229

// handleCommunicationControl implements 0x28 (spec §4.6). nodeId is
// accepted and validated for length but not otherwise interpreted by
// this core; it is opaque routing information for a surrounding layer.
func handleCommunicationControl(s *Server, req ServiceRequest) {
	if len(req.Data) < 4 {
		s.sendNegative(req.SID, IncorrectMessageLengthOrInvalidFormat)
		return
	}
	controlType := req.Data[0]
	communicationType := CommunicationType(req.Data[1])
	if communicationType > CommDisableRxAndTx {
		s.sendNegative(req.SID, IncorrectMessageLengthOrInvalidFormat)
		return
	}

	payload := s.work[:1]
	payload[0] = controlType
	s.sendPositive(req.SID, payload)
}
