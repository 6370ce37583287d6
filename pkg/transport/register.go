// Package transport provides Link implementations for the iso14229 core
// (spec §6, C2) and a small factory registry so a host binary can select
// one by name at runtime, the way pkg/can does for the CANopen stack this
// module started from.
package transport

import "github.com/fuluwwa/iso14229"

// NewLinkPairFunc constructs the physical and functional links for a
// named transport kind, e.g. a socketcan interface name.
type NewLinkPairFunc func(channel string) (physical, functional iso14229.Link, err error)

var availableTransports = make(map[string]NewLinkPairFunc)

// Register adds a transport kind. Called from the init() of each
// transport sub-package that imports this one.
func Register(kind string, ctor NewLinkPairFunc) {
	availableTransports[kind] = ctor
}

// New looks up a registered transport kind and constructs its link pair.
func New(kind, channel string) (physical, functional iso14229.Link, err error) {
	ctor, ok := availableTransports[kind]
	if !ok {
		return nil, nil, ErrUnknownTransport
	}
	return ctor(channel)
}
