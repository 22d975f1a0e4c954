// Copyright (c) 2024 The Flokicoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Command dida-miner is the external mining process: it polls didanoded
// for a candidate block, searches for a nonce satisfying the block's
// difficulty, and submits the result back over RPC. It shares no memory
// with the node; every exchange crosses the RPC-tagged wire protocol.
package main

import (
	"fmt"
	"os"

	"github.com/didanet/didanode/pow"
	"github.com/didanet/didanode/rpc"
	"github.com/didanet/didanode/wire"
)

// mineOne searches b's full nonce space in wire.NonceBatchSize-sized
// chunks, yielding to the caller between batches so a stale template can
// be abandoned promptly. It returns (nonce, true) on success, or
// (0, false) if the entire 32-bit nonce space was exhausted.
func mineOne(cfg *config, client *rpc.Client, b *wire.Block) (uint32, bool, error) {
	start := uint32(0)
	for {
		stop := start + wire.NonceBatchSize - 1
		overflowed := stop < start
		if overflowed {
			stop = ^uint32(0)
		}

		nonce, found := pow.ComputeNonceParallel(b.Header, b.Header.DifficultyTarget, start, stop, cfg.Workers)
		if found {
			return nonce, true, nil
		}

		tip, err := client.GetTip()
		if err != nil {
			return 0, false, err
		}
		if tip != b.Header.PreviousBlockHash {
			// Somebody else found a block; this template is stale.
			return 0, false, nil
		}

		if overflowed {
			return 0, false, nil
		}
		start = stop + 1
	}
}

func run() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	client, err := rpc.Dial(cfg.RPCServer)
	if err != nil {
		return fmt.Errorf("failed to connect to %s: %w", cfg.RPCServer, err)
	}
	defer client.Close()

	for {
		b, err := client.GetBlockTemplate()
		if err != nil {
			return fmt.Errorf("gettemplate: %w", err)
		}

		fmt.Printf("mining on top of %s at difficulty %d\n", b.Header.PreviousBlockHash, b.Header.DifficultyTarget)

		nonce, found, err := mineOne(cfg, client, b)
		if err != nil {
			return err
		}
		if !found {
			fmt.Println("template exhausted or superseded, fetching a new one")
			continue
		}

		b.Header.Nonce = nonce
		if err := client.SubmitBlock(b); err != nil {
			fmt.Fprintf(os.Stderr, "submitblock failed: %v\n", err)
			continue
		}
		fmt.Printf("found block %s (nonce %d)\n", b.ID(), nonce)
	}
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
