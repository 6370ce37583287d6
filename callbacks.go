package iso14229

// RDBIFunc resolves a single ReadDataByIdentifier request. Permitted
// codes: Positive, IncorrectMessageLengthOrInvalidFormat,
// ConditionsNotCorrect, RequestOutOfRange, SecurityAccessDenied.
// On Positive, data is copied into the response immediately; the
// returned slice is not retained past the call (spec §5).
type RDBIFunc func(dataID uint16) (data []byte, code ResponseCode)

// WDBIFunc stores a WriteDataByIdentifier data record. Permitted codes:
// Positive, IncorrectMessageLengthOrInvalidFormat, ConditionsNotCorrect,
// RequestOutOfRange, SecurityAccessDenied, GeneralProgrammingFailure.
// record must not be retained past the call.
type WDBIFunc func(dataID uint16, record []byte) ResponseCode

// HardResetFunc performs the actual ECU reset. Invoked once, 100ms after
// the triggering ECUReset request, by the poll scheduler (spec §4.4,
// §4.10) so the positive response has time to leave the wire first.
type HardResetFunc func()

// RoutineArgs is the argument bundle passed to a RoutineCallback (spec
// §4.8). The callback reads OptionRecord and, on success, writes its
// result into StatusRecord[:n] and sets StatusRecordLen = n.
type RoutineArgs struct {
	OptionRecord []byte

	// StatusRecord is scratch space owned by the core with capacity
	// StatusRecordCapacity(); the callback may write into it but must not
	// retain the slice past the call.
	StatusRecord []byte

	// StatusRecordLen must be set by the callback to the number of bytes
	// it wrote into StatusRecord. Left at zero means no status record.
	StatusRecordLen int
}

// StatusRecordCapacity returns how many bytes of StatusRecord the
// callback may use.
func (a *RoutineArgs) StatusRecordCapacity() int {
	return cap(a.StatusRecord)
}

// RoutineCallback implements one of a routine's start/stop/results
// operations.
type RoutineCallback func(userCtx any, args *RoutineArgs) ResponseCode

// DownloadRequestFunc validates a RequestDownload and reports the chunk
// size (in bytes) the sink can accept per TransferData. Permitted codes:
// Positive, RequestOutOfRange.
type DownloadRequestFunc func(userCtx any, dataFormatIdentifier uint8, address uint32, size uint32) (maxBlockLength uint16, code ResponseCode)

// DownloadTransferFunc consumes one TransferData block. data must not be
// retained past the call.
type DownloadTransferFunc func(userCtx any, data []byte) ResponseCode

// DownloadExitFunc finalizes a download sequence on RequestTransferExit.
type DownloadExitFunc func(userCtx any) ResponseCode
