// Copyright (c) 2013-2017 The btcsuite developers
// Copyright (c) 2024 The Flokicoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"

	"github.com/jrick/logrotate/rotator"

	"github.com/didanet/didanode/blockchain"
	"github.com/didanet/didanode/log"
	"github.com/didanet/didanode/mining"
	"github.com/didanet/didanode/node"
	"github.com/didanet/didanode/peer"
)

// logRotator rotates the node's log file by size instead of relying on
// hand-rolled file truncation.
var logRotator *rotator.Rotator

// logger is didanoded's own subsystem tag, covering startup, config and
// peers-file reload messages that don't belong to any library package.
var logger log.Logger = log.Disabled

const maxLogRolls = 8

// initLogRotator opens logFile and rotates it at 10 MiB, keeping at most
// maxLogRolls old copies.
func initLogRotator(logFile string) error {
	r, err := rotator.New(logFile, 10*1024, false, maxLogRolls)
	if err != nil {
		return err
	}
	logRotator = r
	return nil
}

// setLogLevels creates a shared log.Backend over both stdout and the
// rotator, wires every subsystem's package-level logger to it, and sets
// the requested level on each.
func setLogLevels(debugLevel string) error {
	level, ok := log.LevelFromString(debugLevel)
	if !ok {
		level = log.LevelInfo
	}

	backend := log.NewBackend(&teeWriter{a: os.Stdout, b: logRotator})

	nodeLogger := backend.Logger("NODE")
	nodeLogger.SetLevel(level)
	node.UseLogger(nodeLogger)

	peerLogger := backend.Logger("PEER")
	peerLogger.SetLevel(level)
	peer.UseLogger(peerLogger)

	chainLogger := backend.Logger("CHAI")
	chainLogger.SetLevel(level)
	blockchain.UseLogger(chainLogger)

	miningLogger := backend.Logger("MINR")
	miningLogger.SetLevel(level)
	mining.UseLogger(miningLogger)

	mainLogger := backend.Logger("DNOD")
	mainLogger.SetLevel(level)
	logger = mainLogger

	return nil
}

// teeWriter duplicates every write to both a and b, tolerating a nil b
// (used before the rotator is opened).
type teeWriter struct {
	a, b interface {
		Write([]byte) (int, error)
	}
}

func (t *teeWriter) Write(p []byte) (int, error) {
	if t.a != nil {
		_, _ = t.a.Write(p)
	}
	if t.b != nil {
		return t.b.Write(p)
	}
	return len(p), nil
}
