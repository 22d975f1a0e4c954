// Copyright (c) 2013-2015 The btcsuite developers
// Copyright (c) 2024 The Flokicoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Command didacli is a thin RPC client for didanoded: every subcommand
// dials the node fresh, issues one request, prints the result, and exits.
package main

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"os"

	"github.com/didanet/didanode/chainhash"
	"github.com/didanet/didanode/rpc"
	"github.com/didanet/didanode/wire"
)

func usage() {
	fmt.Fprintln(os.Stderr, "Usage: didacli [-s rpcserver] <command> [args]")
	fmt.Fprintln(os.Stderr, "Commands:")
	fmt.Fprintln(os.Stderr, "  gettemplate              fetch a fresh block template to mine")
	fmt.Fprintln(os.Stderr, "  submitblock <hexblock>   submit a mined block")
	fmt.Fprintln(os.Stderr, "  gettip                   print the active chain tip hash")
	fmt.Fprintln(os.Stderr, "  getblockcount            print the active chain height")
	fmt.Fprintln(os.Stderr, "  getblock <hash>          print a block's raw hex")
}

// hexEncodeBlock serializes b the same way the peer wire protocol would
// (header plus tx count and bodies, no outer length prefix) and returns it
// as a hex string for terminal display or piping into submitblock.
func hexEncodeBlock(b *wire.Block) (string, error) {
	var buf bytes.Buffer
	if err := wire.NewMsgBlockFromBlock(b).Encode(&buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf.Bytes()), nil
}

func hexDecodeBlock(s string) (*wire.Block, error) {
	raw, err := hex.DecodeString(s)
	if err != nil {
		return nil, err
	}
	msg := &wire.MsgBlock{}
	if err := msg.Decode(bytes.NewReader(raw)); err != nil {
		return nil, err
	}
	return msg.Block()
}

func run() error {
	cfg, args, err := loadConfig()
	if err != nil {
		return err
	}
	if len(args) == 0 {
		usage()
		os.Exit(2)
	}

	client, err := rpc.Dial(cfg.RPCServer)
	if err != nil {
		return fmt.Errorf("failed to connect to %s: %w", cfg.RPCServer, err)
	}
	defer client.Close()

	switch args[0] {
	case "gettemplate":
		b, err := client.GetBlockTemplate()
		if err != nil {
			return err
		}
		enc, err := hexEncodeBlock(b)
		if err != nil {
			return err
		}
		fmt.Println(enc)

	case "submitblock":
		if len(args) != 2 {
			usage()
			os.Exit(2)
		}
		b, err := hexDecodeBlock(args[1])
		if err != nil {
			return err
		}
		if err := client.SubmitBlock(b); err != nil {
			return err
		}
		fmt.Println("accepted")

	case "gettip":
		hash, err := client.GetTip()
		if err != nil {
			return err
		}
		fmt.Println(hash)

	case "getblockcount":
		count, err := client.GetBlockCount()
		if err != nil {
			return err
		}
		fmt.Println(count)

	case "getblock":
		if len(args) != 2 {
			usage()
			os.Exit(2)
		}
		hash, err := chainhash.NewHashFromStr(args[1])
		if err != nil {
			return err
		}
		b, err := client.GetBlock(*hash)
		if err != nil {
			return err
		}
		enc, err := hexEncodeBlock(b)
		if err != nil {
			return err
		}
		fmt.Println(enc)

	default:
		usage()
		os.Exit(2)
	}
	return nil
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
