package iso14229

// DefaultServices enables the small set of services the original
// appsoftware.c bootstrap enabled: session control, reset, RDBI, WDBI and
// TesterPresent. It is a convenience for hosts and tests that want a
// working server without hand-listing SIDs; it enables nothing that
// Enable itself wouldn't.
func DefaultServices(s *Server) error {
	for _, sid := range []SID{
		SIDDiagnosticSessionControl,
		SIDECUReset,
		SIDReadDataByIdentifier,
		SIDWriteDataByIdentifier,
		SIDTesterPresent,
	} {
		if result := s.Enable(sid); result == EnableUnknownService {
			return ErrUnknownService
		}
	}
	return nil
}
