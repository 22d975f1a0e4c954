// Copyright (c) 2024 The Flokicoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"os"
	"strings"

	"github.com/fsnotify/fsnotify"

	"github.com/didanet/didanode/node"
)

// readPeersFile returns the non-empty, non-comment lines of path, or an
// empty slice if path is empty or does not exist.
func readPeersFile(path string) ([]string, error) {
	if path == "" {
		return nil, nil
	}
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var addrs []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		addrs = append(addrs, line)
	}
	return addrs, scanner.Err()
}

// watchPeersFile watches path for writes and calls n.RequestDial for every
// address present in the file after each change that wasn't already seen,
// so an operator can add bootstrap peers to a running node without a
// restart. It runs until the process exits; errors are logged and do not
// stop the watch loop.
func watchPeersFile(path string, n *node.Node) {
	if path == "" {
		return
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		logger.Warnf("peers file watch disabled: %v", err)
		return
	}
	if err := watcher.Add(path); err != nil {
		logger.Warnf("peers file watch disabled: %v", err)
		return
	}

	seen := make(map[string]struct{})
	if initial, err := readPeersFile(path); err == nil {
		for _, a := range initial {
			seen[a] = struct{}{}
		}
	}

	for {
		select {
		case ev, ok := <-watcher.Events:
			if !ok {
				return
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			addrs, err := readPeersFile(path)
			if err != nil {
				logger.Warnf("failed to re-read peers file: %v", err)
				continue
			}
			for _, a := range addrs {
				if _, ok := seen[a]; ok {
					continue
				}
				seen[a] = struct{}{}
				n.RequestDial(a)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			logger.Warnf("peers file watcher error: %v", err)
		}
	}
}
