// Package config loads a UDS server profile from an EDS-style .ini file,
// the same gopkg.in/ini.v1-based format and section-per-index convention
// pkg/od/parser.go uses for CANopen object dictionaries. A [Server]
// section carries protocol timings and CAN arbitration IDs; one
// 4-hex-digit section per Data Identifier carries its static value.
package config

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/fuluwwa/iso14229"
	"gopkg.in/ini.v1"
)

var matchDIDSection = regexp.MustCompile(`^[0-9A-Fa-f]{4}$`)

// Timings holds the three protocol timing values the core requires.
type Timings struct {
	P2Ms     uint16
	P2StarMs uint16
	S3Ms     uint16
}

// ArbitrationIDs holds the three CAN identifiers the transport layer
// needs; the core itself treats them as opaque (spec §3 Configuration).
type ArbitrationIDs struct {
	ReceivePhysicalID   uint32
	ReceiveFunctionalID uint32
	TransmitID          uint32
}

// Profile is a fully parsed server configuration file.
type Profile struct {
	Timings Timings
	IDs     ArbitrationIDs

	// StaticDIDs maps a Data Identifier to its configured byte value, for
	// deployments whose RDBI table is just fixed lookup data.
	StaticDIDs map[uint16][]byte
}

// Load parses file (path, []byte, or io.Reader, per ini.Load) into a
// Profile.
func Load(file any) (*Profile, error) {
	f, err := ini.Load(file)
	if err != nil {
		return nil, err
	}

	server := f.Section("Server")
	p := &Profile{
		Timings: Timings{
			P2Ms:     uint16(server.Key("P2Ms").MustUint(50)),
			P2StarMs: uint16(server.Key("P2StarMs").MustUint(5000)),
			S3Ms:     uint16(server.Key("S3Ms").MustUint(5000)),
		},
		StaticDIDs: make(map[uint16][]byte),
	}

	physRecv, err := parseArbitrationID(server, "ReceivePhysicalID")
	if err != nil {
		return nil, err
	}
	funcRecv, err := parseArbitrationID(server, "ReceiveFunctionalID")
	if err != nil {
		return nil, err
	}
	tx, err := parseArbitrationID(server, "TransmitID")
	if err != nil {
		return nil, err
	}
	p.IDs = ArbitrationIDs{
		ReceivePhysicalID:   physRecv,
		ReceiveFunctionalID: funcRecv,
		TransmitID:          tx,
	}

	for _, section := range f.Sections() {
		name := section.Name()
		if !matchDIDSection.MatchString(name) {
			continue
		}
		did, err := strconv.ParseUint(name, 16, 16)
		if err != nil {
			return nil, fmt.Errorf("config: section %q: %w", name, err)
		}
		raw := section.Key("Value").String()
		value, err := parseHexBytes(raw)
		if err != nil {
			return nil, fmt.Errorf("config: section %q Value=%q: %w", name, raw, err)
		}
		p.StaticDIDs[uint16(did)] = value
	}

	return p, nil
}

// RDBI returns an iso14229.RDBIFunc backed by StaticDIDs: DIDs present in
// the profile resolve to their configured bytes, anything else is
// RequestOutOfRange. Deployments with dynamic data sources should write
// their own RDBIFunc instead.
func (p *Profile) RDBI() iso14229.RDBIFunc {
	return func(dataID uint16) ([]byte, iso14229.ResponseCode) {
		value, ok := p.StaticDIDs[dataID]
		if !ok {
			return nil, iso14229.RequestOutOfRange
		}
		return value, iso14229.Positive
	}
}

// parseArbitrationID reads key as an integer, accepting both decimal and
// "0x"-prefixed hex — ini.v1's own numeric accessors are base-10 only, but
// arbitration IDs are conventionally written in hex.
func parseArbitrationID(section *ini.Section, key string) (uint32, error) {
	raw := section.Key(key).String()
	if raw == "" {
		return 0, fmt.Errorf("config: [Server] %s: missing", key)
	}
	id, err := strconv.ParseUint(raw, 0, 32)
	if err != nil {
		return 0, fmt.Errorf("config: [Server] %s: %w", key, err)
	}
	return uint32(id), nil
}

func parseHexBytes(s string) ([]byte, error) {
	if len(s)%2 != 0 {
		return nil, fmt.Errorf("odd length hex string")
	}
	out := make([]byte, len(s)/2)
	for i := range out {
		b, err := strconv.ParseUint(s[i*2:i*2+2], 16, 8)
		if err != nil {
			return nil, err
		}
		out[i] = byte(b)
	}
	return out, nil
}
