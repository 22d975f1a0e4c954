// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2024 The Flokicoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"encoding/hex"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	secp256k1 "github.com/decred/dcrd/dcrec/secp256k1/v4"

	"github.com/didanet/didanode/chaincfg"
	"github.com/didanet/didanode/node"
	"github.com/didanet/didanode/peer"
)

func parseRewardKey(s string) (*secp256k1.PublicKey, error) {
	if s == "" {
		return nil, nil
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("invalid --minerrewardkey: %w", err)
	}
	return secp256k1.ParsePubKey(b)
}

func dialerFromConfig(cfg *config) peer.Dialer {
	if cfg.Proxy == "" {
		return peer.DirectDialer()
	}
	return peer.SocksDialer(cfg.Proxy, cfg.ProxyUser, cfg.ProxyPass)
}

func run() error {
	cfg, _, err := loadConfig()
	if err != nil {
		return err
	}

	if err := initLogRotator(cfg.LogFile); err != nil {
		return err
	}
	if err := setLogLevels(cfg.DebugLevel); err != nil {
		return err
	}
	defer logRotator.Close()

	logger.Infof("didanoded starting, data dir %s", cfg.DataDir)

	rewardKey, err := parseRewardKey(cfg.MinerRewardKey)
	if err != nil {
		return err
	}

	bootstrapPeers, err := readPeersFile(cfg.PeersFile)
	if err != nil {
		return err
	}

	n, err := node.New(node.Config{
		ChainParams:    chaincfg.MainNetParams,
		ListenAddr:     cfg.Listen,
		BootstrapPeers: bootstrapPeers,
		Dialer:         dialerFromConfig(cfg),
		MinerRewardKey: rewardKey,
	})
	if err != nil {
		return fmt.Errorf("failed to start node: %w", err)
	}

	go watchPeersFile(cfg.PeersFile, n)

	if cfg.EventsListen != "" {
		go func() {
			logger.Infof("events feed listening on %s", cfg.EventsListen)
			if err := http.ListenAndServe(cfg.EventsListen, n.Events()); err != nil {
				logger.Errorf("events feed stopped: %v", err)
			}
		}()
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	logger.Infof("listening for peers on %s", cfg.Listen)
	if err := n.Run(ctx); err != nil && err != context.Canceled {
		return err
	}
	logger.Infof("shutdown complete")
	return nil
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
