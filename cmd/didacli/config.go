// Copyright (c) 2013-2015 The btcsuite developers
// Copyright (c) 2024 The Flokicoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	flags "github.com/jessevdk/go-flags"
)

// config defines the configuration options for didacli.
type config struct {
	RPCServer string `short:"s" long:"rpcserver" default:"127.0.0.1:8633" description:"didanoded address to connect to"`
}

// loadConfig parses the command line, returning the config and the
// remaining positional arguments (the command name and its parameters).
func loadConfig() (*config, []string, error) {
	cfg := config{RPCServer: "127.0.0.1:8633"}
	parser := flags.NewParser(&cfg, flags.Default)
	remaining, err := parser.Parse()
	if err != nil {
		return nil, nil, err
	}
	return &cfg, remaining, nil
}
