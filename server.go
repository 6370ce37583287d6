// Package iso14229 implements the core of an ISO 14229-1 (UDS) diagnostic
// server: the service dispatcher and protocol state machine described in
// the design. Transport segmentation/reassembly, the CAN socket glue and
// concrete flash-write callbacks are external collaborators (see Link,
// CANTransmitter, DownloadHandlerConfig) and are deliberately out of
// scope for this package.
package iso14229

import (
	"github.com/sirupsen/logrus"
)

// Config is the Server's immutable-after-init configuration (spec §3).
type Config struct {
	// ReceivePhysicalID / ReceiveFunctionalID / TransmitID are the CAN
	// arbitration IDs the transport layer is expected to be wired for.
	// The core does not interpret them; they are carried here so a
	// surrounding layer (e.g. pkg/transport/socketcan) can be configured
	// from a single source of truth.
	ReceivePhysicalID   uint32
	ReceiveFunctionalID uint32
	TransmitID          uint32

	// PhysicalLink / FunctionalLink are the two transport links the
	// scheduler polls every tick, physical preferred over functional
	// (spec §5).
	PhysicalLink   Link
	FunctionalLink Link

	RDBI      RDBIFunc
	WDBI      WDBIFunc
	HardReset HardResetFunc

	// P2Ms / P2StarMs / S3Ms are the protocol timings in milliseconds
	// (spec §3, §4.10).
	P2Ms     uint16
	P2StarMs uint16
	S3Ms     uint16

	Clock Clock

	// Middleware is the optional extension hook (spec C10).
	Middleware Middleware

	// Logger defaults to logrus.StandardLogger() tagged with this
	// package's name when nil.
	Logger *logrus.Entry

	// ResponseBufferCapacity defaults to DefaultResponseBufferCapacity
	// when zero.
	ResponseBufferCapacity int

	// RoutineCapacity defaults to DefaultRoutineCapacity when zero.
	RoutineCapacity int

	// DownloadHandlerCapacity defaults to
	// DefaultDownloadHandlerCapacity when zero.
	DownloadHandlerCapacity int
}

// Server is the single top-level owner of all per-instance state (spec
// §3 "Instance"). Exactly one active session at a time; no internal
// locking, see spec §5.
type Server struct {
	cfg    Config
	logger *logrus.Entry
	clock  Clock

	enabled [128]bool

	mode           DiagMode
	s3Deadline     uint32
	resetRequested bool
	resetDeadline  uint32
	p2Deadline     uint32

	resp        *responseBuffer
	respLink    Link
	work        []byte
	routines    routineRegistry
	download    downloadRegistry
}

// NewServer validates cfg and constructs a Server in the Default
// diagnostic session with every service disabled. Call Enable for each
// SID the deployment wants to expose.
func NewServer(cfg Config) (*Server, error) {
	if cfg.PhysicalLink == nil || cfg.FunctionalLink == nil {
		return nil, ErrIllegalArgument
	}
	if cfg.HardReset == nil || cfg.Clock == nil {
		return nil, ErrIllegalArgument
	}
	if cfg.P2Ms == 0 || cfg.S3Ms == 0 {
		return nil, ErrIllegalArgument
	}

	logger := cfg.Logger
	if logger == nil {
		logger = logrus.NewEntry(logrus.StandardLogger()).WithField("component", "iso14229")
	}

	bufCap := cfg.ResponseBufferCapacity
	if bufCap <= 0 {
		bufCap = DefaultResponseBufferCapacity
	}

	s := &Server{
		cfg:      cfg,
		logger:   logger,
		clock:    cfg.Clock,
		resp:     newResponseBuffer(bufCap),
		respLink: cfg.PhysicalLink,
		work:     make([]byte, bufCap-1),
		routines: newRoutineRegistry(cfg.RoutineCapacity),
		download: newDownloadRegistry(cfg.DownloadHandlerCapacity),
	}

	now := s.clock.NowMs()
	s.mode = DiagModeDefault
	s.s3Deadline = now + uint32(cfg.S3Ms)
	s.p2Deadline = now - uint32(cfg.P2Ms)

	if cfg.Middleware != nil {
		if err := cfg.Middleware.Init(s); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// Mode reports the currently active diagnostic session.
func (s *Server) Mode() DiagMode { return s.mode }

func (s *Server) sendPositive(sid SID, payload []byte) {
	if s.resp.putPositive(sid, payload) {
		s.logger.WithFields(logrus.Fields{"sid": sid, "len": len(payload)}).Debug("positive response queued")
		return
	}
	s.logger.WithFields(logrus.Fields{"sid": sid, "len": len(payload)}).Debug("response dropped: buffer full or response already pending")
}

func (s *Server) sendNegative(sid SID, code ResponseCode) {
	if s.resp.putNegative(sid, code) {
		s.logger.WithFields(logrus.Fields{"sid": sid, "code": code}).Warn("negative response queued")
		return
	}
	s.logger.WithFields(logrus.Fields{"sid": sid, "code": code}).Warn("negative response dropped: response already pending")
}
