// Package socketcan wraps github.com/brutella/can to provide a pair of
// iso14229.Link implementations (physical and functional addressing) over
// a real SocketCAN interface. This is the same wrapping approach as
// pkg/can/socketcan in the CANopen stack this module is adapted from:
// brutella/can owns the netlink socket and its own receive goroutine, and
// this package only translates frames.
//
// Only single-frame ISO-TP addressing is implemented: each diagnostic
// request/response must fit in one CAN frame (<=7 data bytes after the
// PCI byte). Multi-frame segmentation/reassembly is explicitly out of
// scope for the core (see Link in the root package) and is left to a
// fuller ISO-TP implementation a deployment can substitute.
package socketcan

import (
	"fmt"
	"strconv"
	"strings"
	"sync"

	sockcan "github.com/brutella/can"
	"github.com/fuluwwa/iso14229"
	"github.com/fuluwwa/iso14229/pkg/transport"
)

func init() {
	transport.Register("socketcan", newFunctionalLink)
}

const (
	pciSingleFrame = 0x0
	maxSingleFrame = 7
)

// Link is one addressing direction (physical or functional) multiplexed
// over a shared SocketCAN bus: it filters received frames by recvID and
// transmits under sendID.
type Link struct {
	bus    *sockcan.Bus
	sendID uint32
	recvID uint32

	mu    sync.Mutex
	inbox [][]byte
}

var _ iso14229.Link = (*Link)(nil)

// newFunctionalLink parses channel as "iface,physRecvID,physSendID,funcRecvID"
// (IDs in decimal or 0x-hex) and satisfies transport.NewLinkPairFunc.
func newFunctionalLink(channel string) (physical, functional iso14229.Link, err error) {
	parts := strings.Split(channel, ",")
	if len(parts) != 4 {
		return nil, nil, fmt.Errorf("socketcan: channel spec must be \"iface,physRecvID,physSendID,funcRecvID\", got %q", channel)
	}
	ids := make([]uint32, 3)
	for i, s := range parts[1:] {
		v, err := strconv.ParseUint(strings.TrimSpace(s), 0, 32)
		if err != nil {
			return nil, nil, fmt.Errorf("socketcan: invalid arbitration id %q: %w", s, err)
		}
		ids[i] = uint32(v)
	}
	p, f, err := NewLinks(strings.TrimSpace(parts[0]), ids[0], ids[1], ids[2])
	if err != nil {
		return nil, nil, err
	}
	return p, f, nil
}

// NewLinks opens the named interface and returns physical/functional
// links addressed by the given receive/transmit arbitration IDs.
func NewLinks(channel string, physRecvID, physSendID, funcRecvID uint32) (physical, functional *Link, err error) {
	bus, err := sockcan.NewBusForInterfaceWithName(channel)
	if err != nil {
		return nil, nil, err
	}
	physical = &Link{bus: bus, recvID: physRecvID, sendID: physSendID}
	functional = &Link{bus: bus, recvID: funcRecvID, sendID: physSendID}
	bus.Subscribe(physical)
	bus.Subscribe(functional)
	go bus.ConnectAndPublish()
	return physical, functional, nil
}

// Handle implements brutella/can's frame handler interface. It runs on
// the bus's own receive goroutine, so the inbox is mutex-guarded; the
// iso14229 core itself is never touched from this goroutine.
func (l *Link) Handle(frame sockcan.Frame) {
	if frame.ID != l.recvID || frame.Length == 0 {
		return
	}
	pci := frame.Data[0]
	if pci>>4 != pciSingleFrame {
		return // multi-frame ISO-TP not supported, see package doc
	}
	n := int(pci & 0x0F)
	if n == 0 || n > maxSingleFrame || 1+n > int(frame.Length) {
		return
	}
	payload := make([]byte, n)
	copy(payload, frame.Data[1:1+n])

	l.mu.Lock()
	l.inbox = append(l.inbox, payload)
	l.mu.Unlock()
}

func (l *Link) Tick() {}

func (l *Link) ReceiveReassembled() ([]byte, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if len(l.inbox) == 0 {
		return nil, false
	}
	payload := l.inbox[0]
	l.inbox = l.inbox[1:]
	return payload, true
}

func (l *Link) Send(payload []byte) error {
	if len(payload) > maxSingleFrame {
		return fmt.Errorf("socketcan: payload of %d bytes exceeds single-frame limit of %d", len(payload), maxSingleFrame)
	}
	var data [8]byte
	data[0] = pciSingleFrame<<4 | byte(len(payload))
	copy(data[1:], payload)
	return l.bus.Publish(sockcan.Frame{
		ID:     l.sendID,
		Length: uint8(1 + len(payload)),
		Data:   data,
	})
}
