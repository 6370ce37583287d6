package iso14229

import "github.com/fuluwwa/iso14229/internal/wire"

// handleRoutineControl implements 0x31 (spec §4.8). The response header
// reserves 4 bytes (controlType, routineId big-endian, routineInfo); the
// remainder of the work buffer is scratch space handed to the callback
// as RoutineArgs.StatusRecord.
func handleRoutineControl(s *Server, req ServiceRequest) {
	if len(req.Data) < 3 {
		s.sendNegative(req.SID, IncorrectMessageLengthOrInvalidFormat)
		return
	}
	controlType := RoutineControlType(req.Data[0])
	routineID := wire.Uint16(req.Data[1:3])
	optionRecord := req.Data[3:]

	entry := s.routines.find(routineID)
	if entry == nil {
		s.sendNegative(req.SID, SubFunctionNotSupported)
		return
	}

	var cb RoutineCallback
	switch controlType {
	case RoutineStart:
		cb = entry.Start
	case RoutineStop:
		cb = entry.Stop
	case RoutineRequestResults:
		cb = entry.Results
	default:
		s.sendNegative(req.SID, IncorrectMessageLengthOrInvalidFormat)
		return
	}
	if cb == nil {
		s.sendNegative(req.SID, SubFunctionNotSupported)
		return
	}

	const headerLen = 4
	statusCap := len(s.work) - headerLen
	args := RoutineArgs{
		OptionRecord: optionRecord,
		StatusRecord: s.work[headerLen : headerLen+statusCap],
	}
	code := cb(entry.UserCtx, &args)

	if args.StatusRecordLen > args.StatusRecordCapacity() {
		s.sendNegative(req.SID, GeneralProgrammingFailure)
		return
	}
	if code != Positive {
		s.sendNegative(req.SID, code)
		return
	}

	payload := s.work[:headerLen+args.StatusRecordLen]
	payload[0] = byte(controlType)
	wire.PutUint16(payload[1:3], routineID)
	payload[3] = 0 // routineInfo
	s.sendPositive(req.SID, payload)
}
