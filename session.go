package iso14229

import "github.com/fuluwwa/iso14229/internal/wire"

// ecuResetDelayMs is the fixed delay between an accepted ECUReset(hard)
// request and the actual userHardReset() call (spec §4.4, §4.10): it
// guarantees the positive response has time to leave the wire first.
const ecuResetDelayMs = 100

func (s *Server) refreshP2(now uint32) {
	s.p2Deadline = now + uint32(s.cfg.P2Ms)
}

func (s *Server) refreshS3(now uint32) {
	s.s3Deadline = now + uint32(s.cfg.S3Ms)
}

// armReset latches a pending hard reset. Idempotent: a second ECUReset
// while one is already armed does not push the deadline back out.
func (s *Server) armReset(now uint32) {
	if s.resetRequested {
		return
	}
	s.resetRequested = true
	s.resetDeadline = now + ecuResetDelayMs
}

// processStateMachine runs the session/reset state machine (spec
// §4.10, §4.11 step 2): fires the deferred hard reset once its deadline
// has passed, and demotes an idle session back to Default once S3
// expires.
func (s *Server) processStateMachine(now uint32) {
	if s.resetRequested && elapsed(now, s.resetDeadline) {
		s.resetRequested = false
		s.cfg.HardReset()
	}
	if elapsed(now, s.s3Deadline) {
		s.mode = DiagModeDefault
	}
}

// elapsed reports whether deadline has been reached or passed as of now,
// wrap-safe: now >= deadline.
func elapsed(now, deadline uint32) bool {
	return !wire.After(deadline, now)
}
