package iso14229

import "fmt"

// SID is a UDS Service Identifier, one byte in [0x00, 0x7F] for requests.
type SID uint8

// The fixed set of services this core knows how to dispatch (spec §4.1).
// A SID outside this set is always unknown, regardless of Enable calls.
const (
	SIDDiagnosticSessionControl SID = 0x10
	SIDECUReset                 SID = 0x11
	SIDReadDataByIdentifier     SID = 0x22
	SIDCommunicationControl     SID = 0x28
	SIDWriteDataByIdentifier    SID = 0x2E
	SIDRoutineControl           SID = 0x31
	SIDRequestDownload          SID = 0x34
	SIDTransferData             SID = 0x36
	SIDRequestTransferExit      SID = 0x37
	SIDTesterPresent            SID = 0x3E
)

func (sid SID) String() string {
	switch sid {
	case SIDDiagnosticSessionControl:
		return "DiagnosticSessionControl"
	case SIDECUReset:
		return "ECUReset"
	case SIDReadDataByIdentifier:
		return "ReadDataByIdentifier"
	case SIDCommunicationControl:
		return "CommunicationControl"
	case SIDWriteDataByIdentifier:
		return "WriteDataByIdentifier"
	case SIDRoutineControl:
		return "RoutineControl"
	case SIDRequestDownload:
		return "RequestDownload"
	case SIDTransferData:
		return "TransferData"
	case SIDRequestTransferExit:
		return "RequestTransferExit"
	case SIDTesterPresent:
		return "TesterPresent"
	default:
		return fmt.Sprintf("SID(0x%02X)", uint8(sid))
	}
}

// DiagMode is the active diagnostic session type (spec §3).
type DiagMode uint8

const (
	DiagModeDefault     DiagMode = 1
	DiagModeProgramming DiagMode = 2
	DiagModeExtended    DiagMode = 3
)

func (m DiagMode) valid() bool {
	return m == DiagModeDefault || m == DiagModeProgramming || m == DiagModeExtended
}

// ResetType is the ECUReset sub-function (low 6 bits of the request byte).
type ResetType uint8

const (
	ResetHard                      ResetType = 1
	ResetKeyOffOn                  ResetType = 2
	ResetSoft                      ResetType = 3
	ResetEnableRapidPowerShutDown  ResetType = 4
	ResetDisableRapidPowerShutDown ResetType = 5
)

// CommunicationType is the CommunicationControl communicationType field.
type CommunicationType uint8

const (
	CommEnableRxAndTx        CommunicationType = 0
	CommEnableRxAndDisableTx CommunicationType = 1
	CommDisableRxAndEnableTx CommunicationType = 2
	CommDisableRxAndTx       CommunicationType = 3
)

// RoutineControlType is the RoutineControl controlType field.
type RoutineControlType uint8

const (
	RoutineStart          RoutineControlType = 1
	RoutineStop           RoutineControlType = 2
	RoutineRequestResults RoutineControlType = 3
)

// ResponseCode is the one-byte UDS negative-response code taxonomy
// (ISO 14229-1 Table A.1). Positive is the zero value and is never placed
// on the wire directly: a positive response carries no code byte at all,
// it is only used internally by callbacks to mean "proceed".
type ResponseCode uint8

const (
	Positive                                   ResponseCode = 0x00
	GeneralReject                               ResponseCode = 0x10
	ServiceNotSupported                         ResponseCode = 0x11
	SubFunctionNotSupported                     ResponseCode = 0x12
	IncorrectMessageLengthOrInvalidFormat       ResponseCode = 0x13
	ResponseTooLong                             ResponseCode = 0x14
	BusyRepeatRequest                           ResponseCode = 0x21
	ConditionsNotCorrect                        ResponseCode = 0x22
	RequestSequenceError                        ResponseCode = 0x24
	NoResponseFromSubnetComponent               ResponseCode = 0x25
	FailurePreventsExecutionOfRequestedAction   ResponseCode = 0x26
	RequestOutOfRange                           ResponseCode = 0x31
	SecurityAccessDenied                        ResponseCode = 0x33
	InvalidKey                                  ResponseCode = 0x35
	ExceedNumberOfAttempts                      ResponseCode = 0x36
	RequiredTimeDelayNotExpired                 ResponseCode = 0x37
	UploadDownloadNotAccepted                   ResponseCode = 0x70
	TransferDataSuspended                       ResponseCode = 0x71
	GeneralProgrammingFailure                   ResponseCode = 0x72
	WrongBlockSequenceCounter                   ResponseCode = 0x73
	RequestCorrectlyReceivedResponsePending     ResponseCode = 0x78
	SubFunctionNotSupportedInActiveSession      ResponseCode = 0x7E
	ServiceNotSupportedInActiveSession          ResponseCode = 0x7F
	RpmTooHigh                                  ResponseCode = 0x81
	RpmTooLow                                   ResponseCode = 0x82
	EngineIsRunning                             ResponseCode = 0x83
	EngineIsNotRunning                          ResponseCode = 0x84
	EngineRunTimeTooLow                         ResponseCode = 0x85
	TemperatureTooHigh                          ResponseCode = 0x86
	TemperatureTooLow                           ResponseCode = 0x87
	VehicleSpeedTooHigh                         ResponseCode = 0x88
	VehicleSpeedTooLow                          ResponseCode = 0x89
	ThrottlePedalTooHigh                        ResponseCode = 0x8A
	ThrottlePedalTooLow                         ResponseCode = 0x8B
	TransmissionRangeNotInNeutral               ResponseCode = 0x8C
	TransmissionRangeNotInGear                  ResponseCode = 0x8D
	BrakeSwitchNotClosed                        ResponseCode = 0x8F
	ShifterLeverNotInPark                       ResponseCode = 0x90
	TorqueConverterClutchLocked                 ResponseCode = 0x91
	VoltageTooHigh                              ResponseCode = 0x92
	VoltageTooLow                               ResponseCode = 0x93
)

var responseCodeNames = map[ResponseCode]string{
	Positive:                                 "positiveResponse",
	GeneralReject:                            "generalReject",
	ServiceNotSupported:                      "serviceNotSupported",
	SubFunctionNotSupported:                  "subFunctionNotSupported",
	IncorrectMessageLengthOrInvalidFormat:    "incorrectMessageLengthOrInvalidFormat",
	ResponseTooLong:                          "responseTooLong",
	BusyRepeatRequest:                        "busyRepeatRequest",
	ConditionsNotCorrect:                     "conditionsNotCorrect",
	RequestSequenceError:                     "requestSequenceError",
	NoResponseFromSubnetComponent:            "noResponseFromSubnetComponent",
	FailurePreventsExecutionOfRequestedAction: "failurePreventsExecutionOfRequestedAction",
	RequestOutOfRange:                        "requestOutOfRange",
	SecurityAccessDenied:                     "securityAccessDenied",
	InvalidKey:                               "invalidKey",
	ExceedNumberOfAttempts:                   "exceedNumberOfAttempts",
	RequiredTimeDelayNotExpired:              "requiredTimeDelayNotExpired",
	UploadDownloadNotAccepted:                "uploadDownloadNotAccepted",
	TransferDataSuspended:                    "transferDataSuspended",
	GeneralProgrammingFailure:                "generalProgrammingFailure",
	WrongBlockSequenceCounter:                "wrongBlockSequenceCounter",
	RequestCorrectlyReceivedResponsePending:  "requestCorrectlyReceived-ResponsePending",
	SubFunctionNotSupportedInActiveSession:   "subFunctionNotSupportedInActiveSession",
	ServiceNotSupportedInActiveSession:       "serviceNotSupportedInActiveSession",
	RpmTooHigh:                     "rpmTooHigh",
	RpmTooLow:                      "rpmTooLow",
	EngineIsRunning:                "engineIsRunning",
	EngineIsNotRunning:             "engineIsNotRunning",
	EngineRunTimeTooLow:            "engineRunTimeTooLow",
	TemperatureTooHigh:             "temperatureTooHigh",
	TemperatureTooLow:              "temperatureTooLow",
	VehicleSpeedTooHigh:            "vehicleSpeedTooHigh",
	VehicleSpeedTooLow:             "vehicleSpeedTooLow",
	ThrottlePedalTooHigh:           "throttlePedalTooHigh",
	ThrottlePedalTooLow:            "throttlePedalTooLow",
	TransmissionRangeNotInNeutral:  "transmissionRangeNotInNeutral",
	TransmissionRangeNotInGear:     "transmissionRangeNotInGear",
	BrakeSwitchNotClosed:           "brakeSwitchNotClosed",
	ShifterLeverNotInPark:          "shifterLeverNotInPark",
	TorqueConverterClutchLocked:    "torqueConverterClutchLocked",
	VoltageTooHigh:                 "voltageTooHigh",
	VoltageTooLow:                  "voltageTooLow",
}

// String renders the ISO 14229-1 mnemonic for a response code, falling
// back to its numeric form for anything outside the known taxonomy.
func (c ResponseCode) String() string {
	if name, ok := responseCodeNames[c]; ok {
		return name
	}
	return fmt.Sprintf("responseCode(0x%02X)", uint8(c))
}
