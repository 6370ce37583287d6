package iso14229_test

import (
	"testing"

	"github.com/fuluwwa/iso14229"
	"github.com/fuluwwa/iso14229/pkg/transport/loopback"
	"github.com/stretchr/testify/require"
)

// fakeClock is a manually-advanced Clock for deterministic timing tests.
type fakeClock struct {
	now uint32
}

func (c *fakeClock) NowMs() uint32 { return c.now }

// testHarness bundles a Server with its loopback links and clock so
// scenario tests can deliver raw service bytes and inspect what comes
// back without reaching into unexported state.
type testHarness struct {
	Server     *iso14229.Server
	Physical   *loopback.Link
	Functional *loopback.Link
	Clock      *fakeClock
	p2Ms       uint16
}

func newHarness(t *testing.T, mutate func(*iso14229.Config)) *testHarness {
	t.Helper()
	phys := loopback.New()
	fn := loopback.New()
	clock := &fakeClock{now: 10_000}

	cfg := iso14229.Config{
		PhysicalLink:   phys,
		FunctionalLink: fn,
		HardReset:      func() {},
		P2Ms:           10,
		P2StarMs:       5000,
		S3Ms:           5000,
		Clock:          clock,
	}
	if mutate != nil {
		mutate(&cfg)
	}

	s, err := iso14229.NewServer(cfg)
	require.NoError(t, err)

	return &testHarness{Server: s, Physical: phys, Functional: fn, Clock: clock, p2Ms: cfg.P2Ms}
}

// roundTrip delivers payload on the physical link, polls until it is
// dispatched, advances the clock past P2 and polls again until the
// queued response (if any) is flushed to the link. It returns whatever
// was sent, or nil if nothing was.
func (h *testHarness) roundTrip(payload []byte) []byte {
	h.Physical.Deliver(payload)
	h.Server.Poll()
	h.Clock.now += uint32(h.p2Ms) + 1
	h.Server.Poll()
	sent := h.Physical.Sent()
	if len(sent) == 0 {
		return nil
	}
	return sent[0]
}
