package iso14229

// DefaultDownloadHandlerCapacity mirrors
// ISO14229_USER_DEFINED_MAX_DOWNLOAD_HANDLERS in the original C
// implementation: the registry is bounded, but this revision only ever
// drives the first registered handler (spec §3, §9).
const DefaultDownloadHandlerCapacity = 1

// DownloadHandlerConfig wires the three download-sequence callbacks
// (spec §4.9) to a concrete flash-write (or any other) sink.
type DownloadHandlerConfig struct {
	OnRequest  DownloadRequestFunc
	OnTransfer DownloadTransferFunc
	OnExit     DownloadExitFunc
	UserCtx    any
}

// downloadHandler is one registered download sequence (spec §3 "Download
// Handler"). block_sequence_counter starts at 1 and wraps over uint8; a
// counter mismatch or any protocol error re-initializes it.
type downloadHandler struct {
	cfg                   DownloadHandlerConfig
	blockSequenceCounter  uint8
	active                bool
}

func newDownloadHandler(cfg DownloadHandlerConfig) *downloadHandler {
	return &downloadHandler{cfg: cfg, blockSequenceCounter: 1}
}

func (h *downloadHandler) reset() {
	h.active = false
	h.blockSequenceCounter = 1
}

// downloadRegistry holds the bounded set of registered download
// handlers. Selection heuristic is "first registered" (spec §9); revisit
// if per-memory-range routing is ever required.
type downloadRegistry struct {
	handlers []*downloadHandler
	capacity int
}

func newDownloadRegistry(capacity int) downloadRegistry {
	if capacity <= 0 {
		capacity = DefaultDownloadHandlerCapacity
	}
	return downloadRegistry{capacity: capacity}
}

func (d *downloadRegistry) register(cfg DownloadHandlerConfig) error {
	if len(d.handlers) >= d.capacity {
		return ErrDownloadHandlerBusy
	}
	d.handlers = append(d.handlers, newDownloadHandler(cfg))
	return nil
}

func (d *downloadRegistry) active() *downloadHandler {
	if len(d.handlers) == 0 {
		return nil
	}
	return d.handlers[0]
}

// RegisterDownloadHandler adds a download handler to the server's
// registry. Per spec §3, only one concurrent handler is supported in
// this revision; registering beyond Config.DownloadHandlerCapacity
// returns ErrDownloadHandlerBusy.
func (s *Server) RegisterDownloadHandler(cfg DownloadHandlerConfig) error {
	return s.download.register(cfg)
}
