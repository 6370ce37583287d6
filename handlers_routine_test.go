package iso14229_test

import (
	"testing"

	"github.com/fuluwwa/iso14229"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoutineControlStartAndResults(t *testing.T) {
	h := newHarness(t, nil)
	require.Equal(t, iso14229.EnableOK, h.Server.Enable(iso14229.SIDRoutineControl))

	err := h.Server.RegisterRoutine(iso14229.RoutineEntry{
		RoutineID: 0x0203,
		Start: func(_ any, args *iso14229.RoutineArgs) iso14229.ResponseCode {
			args.StatusRecord[0] = 0x01
			args.StatusRecordLen = 1
			return iso14229.Positive
		},
		Results: func(_ any, args *iso14229.RoutineArgs) iso14229.ResponseCode {
			args.StatusRecordLen = 0
			return iso14229.Positive
		},
	})
	require.NoError(t, err)

	sent := h.roundTrip([]byte{0x31, 0x01, 0x02, 0x03})
	assert.Equal(t, []byte{0x71, 0x01, 0x02, 0x03, 0x00, 0x01}, sent)

	sent = h.roundTrip([]byte{0x31, 0x03, 0x02, 0x03})
	assert.Equal(t, []byte{0x71, 0x03, 0x02, 0x03, 0x00}, sent)
}

func TestRoutineControlUnknownRoutine(t *testing.T) {
	h := newHarness(t, nil)
	require.Equal(t, iso14229.EnableOK, h.Server.Enable(iso14229.SIDRoutineControl))

	sent := h.roundTrip([]byte{0x31, 0x01, 0x99, 0x99})
	assert.Equal(t, []byte{0x7F, 0x31, byte(iso14229.SubFunctionNotSupported)}, sent)
}

func TestRoutineControlUnsetCallback(t *testing.T) {
	h := newHarness(t, nil)
	require.Equal(t, iso14229.EnableOK, h.Server.Enable(iso14229.SIDRoutineControl))
	require.NoError(t, h.Server.RegisterRoutine(iso14229.RoutineEntry{RoutineID: 0x0001}))

	sent := h.roundTrip([]byte{0x31, 0x02, 0x00, 0x01})
	assert.Equal(t, []byte{0x7F, 0x31, byte(iso14229.SubFunctionNotSupported)}, sent)
}

func TestRoutineControlStatusOverrunIsProgrammingFailure(t *testing.T) {
	h := newHarness(t, nil)
	require.Equal(t, iso14229.EnableOK, h.Server.Enable(iso14229.SIDRoutineControl))
	require.NoError(t, h.Server.RegisterRoutine(iso14229.RoutineEntry{
		RoutineID: 0x0001,
		Start: func(_ any, args *iso14229.RoutineArgs) iso14229.ResponseCode {
			args.StatusRecordLen = args.StatusRecordCapacity() + 1
			return iso14229.Positive
		},
	}))

	sent := h.roundTrip([]byte{0x31, 0x01, 0x00, 0x01})
	assert.Equal(t, []byte{0x7F, 0x31, byte(iso14229.GeneralProgrammingFailure)}, sent)
}
