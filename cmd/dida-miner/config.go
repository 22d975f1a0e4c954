// Copyright (c) 2013-2015 The btcsuite developers
// Copyright (c) 2024 The Flokicoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"runtime"

	flags "github.com/jessevdk/go-flags"
)

// config defines the configuration options for dida-miner.
type config struct {
	RPCServer string `short:"s" long:"rpcserver" default:"127.0.0.1:8633" description:"didanoded address to connect to"`
	Workers   int    `short:"w" long:"workers" description:"number of goroutines to search each nonce batch with (default: number of CPUs)"`
}

func loadConfig() (*config, error) {
	cfg := config{RPCServer: "127.0.0.1:8633"}
	parser := flags.NewParser(&cfg, flags.Default)
	if _, err := parser.Parse(); err != nil {
		return nil, err
	}
	if cfg.Workers <= 0 {
		cfg.Workers = runtime.NumCPU()
	}
	return &cfg, nil
}
