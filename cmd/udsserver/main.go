// Command udsserver is an example host loop for the iso14229 core: it
// wires a SocketCAN transport and an .ini configuration profile into a
// Server and drives Poll on a fixed tick, the way cmd/canopen/main.go
// drives a CANopen node's background task.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/fuluwwa/iso14229"
	"github.com/fuluwwa/iso14229/pkg/config"
	"github.com/fuluwwa/iso14229/pkg/transport/socketcan"
)

func main() {
	log.SetLevel(log.InfoLevel)

	configPath := flag.String("config", "", "path to an .ini server profile (see pkg/config)")
	physRecvID := flag.Uint("phys-recv", 0x7E0, "physical-addressing receive arbitration id")
	physSendID := flag.Uint("phys-send", 0x7E8, "transmit arbitration id")
	funcRecvID := flag.Uint("func-recv", 0x7DF, "functional-addressing receive arbitration id")
	pollPeriod := flag.Duration("poll", time.Millisecond, "Poll() period")
	flag.Parse()

	if flag.NArg() < 1 {
		fmt.Fprintf(os.Stderr, "usage: %s [flags] <socketCAN-interface>\n", os.Args[0])
		flag.PrintDefaults()
		os.Exit(1)
	}
	iface := flag.Arg(0)

	var profile *config.Profile
	if *configPath != "" {
		var err error
		profile, err = config.Load(*configPath)
		if err != nil {
			log.WithError(err).Fatal("failed to load config profile")
		}
	}

	physical, functional, err := socketcan.NewLinks(iface, uint32(*physRecvID), uint32(*physSendID), uint32(*funcRecvID))
	if err != nil {
		log.WithError(err).Fatalf("could not open socketcan interface %q", iface)
	}

	cfg := iso14229.Config{
		ReceivePhysicalID:   uint32(*physRecvID),
		ReceiveFunctionalID: uint32(*funcRecvID),
		TransmitID:          uint32(*physSendID),
		PhysicalLink:        physical,
		FunctionalLink:      functional,
		HardReset: func() {
			log.Warn("hard reset requested, exiting process")
			os.Exit(0)
		},
		P2Ms:     50,
		P2StarMs: 5000,
		S3Ms:     5000,
		Clock:    iso14229.ClockFunc(nowMs),
	}
	if profile != nil {
		cfg.P2Ms = profile.Timings.P2Ms
		cfg.P2StarMs = profile.Timings.P2StarMs
		cfg.S3Ms = profile.Timings.S3Ms
		cfg.RDBI = profile.RDBI()
	}

	server, err := iso14229.NewServer(cfg)
	if err != nil {
		log.WithError(err).Fatal("failed to construct server")
	}
	if err := iso14229.DefaultServices(server); err != nil {
		log.WithError(err).Fatal("failed to enable default services")
	}

	log.Infof("listening on %s", iface)

	ticker := time.NewTicker(*pollPeriod)
	defer ticker.Stop()
	for range ticker.C {
		server.Poll()
	}
}

var startTime = time.Now()

func nowMs() uint32 {
	return uint32(time.Since(startTime).Milliseconds())
}
