package iso14229

// ServiceRequest is handed to a Handler by the dispatcher (spec §4.1).
// Data is the request payload with the SID byte already stripped.
type ServiceRequest struct {
	SID  SID
	Data []byte
}

// Handler implements one UDS service. It finishes by calling at most one
// of Server.sendPositive / Server.sendNegative (spec §4.2); a positive
// response suppressed by the suppress-positive bit calls neither.
type Handler func(s *Server, req ServiceRequest)

// EnableResult is the outcome of Server.Enable.
type EnableResult int

const (
	EnableOK EnableResult = iota
	EnableAlreadyEnabled
	EnableUnknownService
)

func (r EnableResult) String() string {
	switch r {
	case EnableOK:
		return "ok"
	case EnableAlreadyEnabled:
		return "already-enabled"
	case EnableUnknownService:
		return "unknown"
	default:
		return "invalid"
	}
}

// knownHandlers is the fixed SID -> Handler table (spec §4.1). It is the
// complete set of services this core understands; a SID outside this map
// is always EnableUnknownService and always ServiceNotSupported on the
// wire, regardless of Enable.
var knownHandlers = map[SID]Handler{
	SIDDiagnosticSessionControl: handleDiagnosticSessionControl,
	SIDECUReset:                 handleECUReset,
	SIDReadDataByIdentifier:     handleReadDataByIdentifier,
	SIDCommunicationControl:     handleCommunicationControl,
	SIDWriteDataByIdentifier:    handleWriteDataByIdentifier,
	SIDRoutineControl:           handleRoutineControl,
	SIDRequestDownload:          handleRequestDownload,
	SIDTransferData:             handleTransferData,
	SIDRequestTransferExit:      handleRequestTransferExit,
	SIDTesterPresent:            handleTesterPresent,
}

// Enable turns on dispatch for sid. It is ok only the first time it is
// called for a given, known SID (spec P7): a repeat call reports
// EnableAlreadyEnabled without changing the table.
func (s *Server) Enable(sid SID) EnableResult {
	if _, known := knownHandlers[sid]; !known {
		return EnableUnknownService
	}
	if s.enabled[sid] {
		return EnableAlreadyEnabled
	}
	s.enabled[sid] = true
	return EnableOK
}

// dispatch implements spec §4.1: an empty payload is dropped silently, a
// disabled or unknown SID gets ServiceNotSupported, otherwise the
// handler runs.
func (s *Server) dispatch(payload []byte) {
	if len(payload) == 0 {
		return
	}
	sid := SID(payload[0])
	handler, known := knownHandlers[sid]
	if !known || !s.enabled[sid] {
		s.logger.WithField("sid", sid).Debug("service not supported")
		s.sendNegative(sid, ServiceNotSupported)
		return
	}
	handler(s, ServiceRequest{SID: sid, Data: payload[1:]})
}
