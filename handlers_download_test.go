package iso14229_test

import (
	"testing"

	"github.com/fuluwwa/iso14229"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func registerDownload(t *testing.T, h *testHarness, received *[][]byte) {
	t.Helper()
	require.Equal(t, iso14229.EnableOK, h.Server.Enable(iso14229.SIDRequestDownload))
	require.Equal(t, iso14229.EnableOK, h.Server.Enable(iso14229.SIDTransferData))
	require.Equal(t, iso14229.EnableOK, h.Server.Enable(iso14229.SIDRequestTransferExit))

	require.NoError(t, h.Server.RegisterDownloadHandler(iso14229.DownloadHandlerConfig{
		OnRequest: func(_ any, _ uint8, _ uint32, _ uint32) (uint16, iso14229.ResponseCode) {
			return 8, iso14229.Positive
		},
		OnTransfer: func(_ any, data []byte) iso14229.ResponseCode {
			*received = append(*received, append([]byte(nil), data...))
			return iso14229.Positive
		},
		OnExit: func(_ any) iso14229.ResponseCode {
			return iso14229.Positive
		},
	}))
}

// P6 — download counter monotonically advances across successful
// TransferData responses, full RequestDownload/TransferData*/RequestTransferExit
// sequence.
func TestDownloadSequenceHappyPath(t *testing.T) {
	h := newHarness(t, nil)
	var received [][]byte
	registerDownload(t, h, &received)

	sent := h.roundTrip([]byte{0x34, 0x00, 0x44, 0x00, 0x00, 0x10, 0x00, 0x00, 0x00, 0x01, 0x00})
	assert.Equal(t, []byte{0x74, 0x20, 0x00, 0x08}, sent)

	sent = h.roundTrip([]byte{0x36, 0x01, 0xDE, 0xAD})
	assert.Equal(t, []byte{0x76, 0x01}, sent)

	sent = h.roundTrip([]byte{0x36, 0x02, 0xBE, 0xEF})
	assert.Equal(t, []byte{0x76, 0x02}, sent)

	assert.Equal(t, [][]byte{{0xDE, 0xAD}, {0xBE, 0xEF}}, received)

	sent = h.roundTrip([]byte{0x37})
	assert.Equal(t, []byte{0x77}, sent)
}

// S6 — TransferData sequence error.
func TestTransferDataSequenceError(t *testing.T) {
	h := newHarness(t, nil)
	var received [][]byte
	registerDownload(t, h, &received)

	sent := h.roundTrip([]byte{0x36, 0x02, 0xAA})
	assert.Equal(t, []byte{0x7F, 0x36, byte(iso14229.RequestSequenceError)}, sent)
	assert.Empty(t, received)

	// The handler was reset to counter 1; a fresh RequestDownload is
	// required before another TransferData can succeed.
	sent = h.roundTrip([]byte{0x36, 0x02, 0xAA})
	assert.Equal(t, []byte{0x7F, 0x36, byte(iso14229.RequestSequenceError)}, sent)
}

// S7 — RequestDownload with unsupported address width.
func TestRequestDownloadUnsupportedAddressWidth(t *testing.T) {
	h := newHarness(t, nil)
	var received [][]byte
	registerDownload(t, h, &received)

	sent := h.roundTrip([]byte{0x34, 0x00, 0x33, 0x00, 0x00, 0x00})
	assert.Equal(t, []byte{0x7F, 0x34, byte(iso14229.RequestOutOfRange)}, sent)
}

func TestRequestDownloadNoHandlerRegistered(t *testing.T) {
	h := newHarness(t, nil)
	require.Equal(t, iso14229.EnableOK, h.Server.Enable(iso14229.SIDRequestDownload))

	sent := h.roundTrip([]byte{0x34, 0x00, 0x44, 0x00, 0x00, 0x10, 0x00, 0x00, 0x00, 0x01, 0x00})
	assert.Equal(t, []byte{0x7F, 0x34, byte(iso14229.UploadDownloadNotAccepted)}, sent)
}

func TestRequestDownloadMaxBlockLengthCapped(t *testing.T) {
	h := newHarness(t, nil)
	require.Equal(t, iso14229.EnableOK, h.Server.Enable(iso14229.SIDRequestDownload))
	require.NoError(t, h.Server.RegisterDownloadHandler(iso14229.DownloadHandlerConfig{
		OnRequest: func(_ any, _ uint8, _ uint32, _ uint32) (uint16, iso14229.ResponseCode) {
			return 65000, iso14229.Positive
		},
	}))

	sent := h.roundTrip([]byte{0x34, 0x00, 0x44, 0x00, 0x00, 0x10, 0x00, 0x00, 0x00, 0x01, 0x00})
	assert.Equal(t, []byte{0x74, 0x20, 0x0F, 0xFF}, sent)
}
