package iso14229_test

import (
	"testing"

	"github.com/fuluwwa/iso14229"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// S5 — DiagnosticSessionControl with suppress-positive.
func TestDiagnosticSessionControlSuppressedNoResponse(t *testing.T) {
	h := newHarness(t, nil)
	require.Equal(t, iso14229.EnableOK, h.Server.Enable(iso14229.SIDDiagnosticSessionControl))

	sent := h.roundTrip([]byte{0x10, 0x83})

	assert.Nil(t, sent)
	assert.Equal(t, iso14229.DiagModeExtended, h.Server.Mode())
}

func TestDiagnosticSessionControlPositiveEchoesTimings(t *testing.T) {
	h := newHarness(t, func(cfg *iso14229.Config) {
		cfg.P2Ms = 50
		cfg.P2StarMs = 5000
	})
	require.Equal(t, iso14229.EnableOK, h.Server.Enable(iso14229.SIDDiagnosticSessionControl))

	sent := h.roundTrip([]byte{0x10, 0x03})

	require.NotNil(t, sent)
	assert.Equal(t, []byte{0x50, 0x03, 0x00, 0x32, 0x01, 0xF4}, sent)
	assert.Equal(t, iso14229.DiagModeExtended, h.Server.Mode())
}

func TestDiagnosticSessionControlUnknownSession(t *testing.T) {
	h := newHarness(t, nil)
	require.Equal(t, iso14229.EnableOK, h.Server.Enable(iso14229.SIDDiagnosticSessionControl))

	sent := h.roundTrip([]byte{0x10, 0x09})

	assert.Equal(t, []byte{0x7F, 0x10, byte(iso14229.ServiceNotSupported)}, sent)
}

func TestEnableIsIdempotentOnlyInReporting(t *testing.T) {
	h := newHarness(t, nil)
	assert.Equal(t, iso14229.EnableOK, h.Server.Enable(iso14229.SIDTesterPresent))
	assert.Equal(t, iso14229.EnableAlreadyEnabled, h.Server.Enable(iso14229.SIDTesterPresent))
	assert.Equal(t, iso14229.EnableUnknownService, h.Server.Enable(iso14229.SID(0x7D)))
}

func TestDisabledServiceIsServiceNotSupported(t *testing.T) {
	h := newHarness(t, nil)
	sent := h.roundTrip([]byte{0x3E, 0x00})
	assert.Equal(t, []byte{0x7F, 0x3E, byte(iso14229.ServiceNotSupported)}, sent)
}
