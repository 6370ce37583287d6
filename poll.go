package iso14229

import "github.com/fuluwwa/iso14229/internal/wire"

// Poll is the single-threaded cooperative scheduler entry point (spec
// §4.11, C9). It must be called at least every few milliseconds by the
// host. It never blocks on I/O and performs at most one of
// {flush a pending response, dispatch one physical request, dispatch one
// functional request} per call.
func (s *Server) Poll() {
	now := s.clock.NowMs()

	s.cfg.PhysicalLink.Tick()
	s.cfg.FunctionalLink.Tick()

	s.processStateMachine(now)

	if s.cfg.Middleware != nil {
		if err := s.cfg.Middleware.Poll(s); err != nil {
			s.logger.WithError(err).Warn("middleware poll failed")
		}
	}

	if s.resp.pending && wire.After(now, s.p2Deadline) {
		payload := s.resp.bytes()
		if err := s.respLink.Send(payload); err != nil {
			s.logger.WithError(err).Warn("failed to hand response to transport")
		}
		s.respLink.Tick()
		s.refreshP2(now)
		s.resp.clear()
		return
	}

	if payload, ok := s.cfg.PhysicalLink.ReceiveReassembled(); ok {
		s.respLink = s.cfg.PhysicalLink
		s.refreshP2(now)
		s.dispatch(payload)
		return
	}

	if payload, ok := s.cfg.FunctionalLink.ReceiveReassembled(); ok {
		s.respLink = s.cfg.FunctionalLink
		s.refreshP2(now)
		s.dispatch(payload)
		return
	}
}
