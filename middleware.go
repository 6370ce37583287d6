package iso14229

// Middleware is the extension hook (spec §4.11 step 3, component C10): an
// optional surrounding layer that can enable additional services and
// mutate server state at construction time and on every poll. This
// mirrors the initFunc/pollFunc pair in the original C
// Iso14229UserMiddleware, generalized to an interface.
type Middleware interface {
	// Init runs once, during NewServer, after the core is otherwise fully
	// constructed. Typical uses: enabling services, registering routines
	// or a download handler.
	Init(s *Server) error

	// Poll runs on every Server.Poll call, before response emission is
	// considered.
	Poll(s *Server) error
}
