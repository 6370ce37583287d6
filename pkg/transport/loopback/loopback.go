// Package loopback provides an in-memory iso14229.Link for tests and
// simulation, the synchronous analogue of pkg/can/virtual's TCP loopback
// bus: no goroutines, no locking. Deliver and Send append to queues that
// ReceiveReassembled and Sent drain; Tick does nothing.
package loopback

import "github.com/fuluwwa/iso14229"

// Link is a Link with unbounded FIFO inbound and outbound queues of whole
// payloads. It does not implement ISO-TP
// multi-frame segmentation (out of scope, spec §1); a payload longer
// than one CAN frame must be handed to Deliver pre-reassembled by the
// test, which is the whole point of the Link boundary being opaque.
type Link struct {
	inbox  [][]byte
	outbox [][]byte
}

var _ iso14229.Link = (*Link)(nil)

// New returns an empty loopback link.
func New() *Link {
	return &Link{}
}

// Deliver enqueues a reassembled payload as if it had just arrived from
// the wire. Safe to call between Poll invocations.
func (l *Link) Deliver(payload []byte) {
	cp := make([]byte, len(payload))
	copy(cp, payload)
	l.inbox = append(l.inbox, cp)
}

// Sent drains and returns every payload handed to Send so far, oldest
// first.
func (l *Link) Sent() [][]byte {
	sent := l.outbox
	l.outbox = nil
	return sent
}

// Tick is a no-op: there is no segmentation buffer to advance.
func (l *Link) Tick() {}

func (l *Link) ReceiveReassembled() ([]byte, bool) {
	if len(l.inbox) == 0 {
		return nil, false
	}
	payload := l.inbox[0]
	l.inbox = l.inbox[1:]
	return payload, true
}

func (l *Link) Send(payload []byte) error {
	cp := make([]byte, len(payload))
	copy(cp, payload)
	l.outbox = append(l.outbox, cp)
	return nil
}
