// Copyright (c) 2013-2015 The btcsuite developers
// Copyright (c) 2024 The Flokicoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	flags "github.com/jessevdk/go-flags"
)

const (
	defaultConfigFilename = "didanoded.conf"
	defaultLogFilename    = "didanoded.log"
	defaultListenPort     = "8633"
)

var (
	didanodedHomeDir  = appDataDir("didanoded")
	defaultConfigFile = filepath.Join(didanodedHomeDir, defaultConfigFilename)
	defaultLogFile    = filepath.Join(didanodedHomeDir, "logs", defaultLogFilename)
)

// config defines the configuration options for didanoded.
//
// See loadConfig for details on the configuration load process.
type config struct {
	ConfigFile string `short:"C" long:"configfile" description:"Path to configuration file"`
	DataDir    string `short:"b" long:"datadir" description:"Directory to store data"`
	LogFile    string `long:"logfile" description:"File to write node logs to"`
	DebugLevel string `short:"d" long:"debuglevel" description:"Logging level {trace, debug, info, warn, error, critical}"`

	Listen string `long:"listen" description:"Address to listen for incoming peer connections"`

	// PeersFile names a file holding one bootstrap peer address per
	// line. didanoded watches this file with fsnotify and reconnects to
	// any address added to it while running.
	PeersFile string `long:"peers" description:"File listing bootstrap peer addresses, one per line"`

	Proxy     string `long:"proxy" description:"Connect to peers via SOCKS5 proxy (e.g. 127.0.0.1:9050)"`
	ProxyUser string `long:"proxyuser" description:"Username for proxy server"`
	ProxyPass string `long:"proxypass" default-mask:"-" description:"Password for proxy server"`

	EventsListen   string `long:"eventslisten" description:"Address to serve the reorg/tip websocket feed on"`
	MinerRewardKey string `long:"minerrewardkey" description:"Hex-encoded secp256k1 public key paid by GetBlockTemplate's coinbase"`
}

// cleanAndExpandPath expands environment variables and leading ~ in the
// passed path, cleans the result, and returns it.
func cleanAndExpandPath(path string) string {
	if strings.HasPrefix(path, "~") {
		homeDir := filepath.Dir(didanodedHomeDir)
		path = strings.Replace(path, "~", homeDir, 1)
	}
	return filepath.Clean(os.ExpandEnv(path))
}

// loadConfig initializes and parses the config using a config file and
// command line options, in that order of increasing precedence.
func loadConfig() (*config, []string, error) {
	cfg := config{
		ConfigFile: defaultConfigFile,
		DataDir:    didanodedHomeDir,
		LogFile:    defaultLogFile,
		DebugLevel: "info",
		Listen:     ":" + defaultListenPort,
	}

	preCfg := cfg
	preParser := flags.NewParser(&preCfg, flags.HelpFlag)
	_, err := preParser.Parse()
	if err != nil {
		if e, ok := err.(*flags.Error); ok && e.Type == flags.ErrHelp {
			return nil, nil, err
		}
	}

	parser := flags.NewParser(&cfg, flags.Default)
	err = flags.NewIniParser(parser).ParseFile(preCfg.ConfigFile)
	if err != nil {
		if _, ok := err.(*os.PathError); !ok {
			fmt.Fprintf(os.Stderr, "Error parsing config file: %v\n", err)
			return nil, nil, err
		}
	}

	remainingArgs, err := parser.Parse()
	if err != nil {
		if e, ok := err.(*flags.Error); !ok || e.Type != flags.ErrHelp {
			fmt.Fprintf(os.Stderr, "Use -h to show available options\n")
		}
		return nil, nil, err
	}

	cfg.DataDir = cleanAndExpandPath(cfg.DataDir)
	cfg.LogFile = cleanAndExpandPath(cfg.LogFile)

	if err := os.MkdirAll(cfg.DataDir, 0700); err != nil {
		return nil, nil, err
	}
	if err := os.MkdirAll(filepath.Dir(cfg.LogFile), 0700); err != nil {
		return nil, nil, err
	}

	return &cfg, remainingArgs, nil
}
