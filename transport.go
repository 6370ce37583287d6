package iso14229

// Link is the transport adaptor this core consumes (spec §6). It owns its
// own segmentation/reassembly state (typically an ISO-TP link over CAN);
// the core treats that state as opaque and only ever sees fully
// reassembled payloads going in and a single payload going out.
type Link interface {
	// Tick advances any buffered segmentation/reassembly work. Called at
	// least once per Server.Poll invocation.
	Tick()

	// ReceiveReassembled returns the next fully reassembled inbound
	// message, if one is ready.
	ReceiveReassembled() (payload []byte, ok bool)

	// Send hands a single reassembled outbound payload to the link for
	// segmentation and transmission.
	Send(payload []byte) error
}

// Clock is the monotonic millisecond time source this core consumes.
// Wraparound is expected and handled via wire.After throughout.
type Clock interface {
	NowMs() uint32
}

// ClockFunc adapts a plain function to Clock.
type ClockFunc func() uint32

// NowMs implements Clock.
func (f ClockFunc) NowMs() uint32 { return f() }

// CANTransmitter is the raw CAN-send collaborator required by the
// transport layer (spec §6). The core never calls it directly and Config
// has no field for it; it is declared here only to name that collaborator
// as part of the server's external dependency set.
type CANTransmitter interface {
	SendCAN(arbitrationID uint32, data []byte) error
}
