// Copyright (c) 2024 The Flokicoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package peer

import (
	"net"
	"time"

	"github.com/flokiorg/go-socks/socks"
	"golang.org/x/sys/unix"
)

// pollDeadline is how far in the future every read/write deadline is set.
// Reads and writes that would otherwise block return immediately with a
// timeout error instead, giving the cooperative loop non-blocking socket
// semantics without touching the raw file descriptor on every call.
const pollDeadline = 1 * time.Millisecond

// markNonblocking flips the underlying file descriptor's O_NONBLOCK flag
// explicitly, so "non-blocking TCP" is a syscall-level property of the
// socket rather than an assumption resting on SetDeadline alone.
func markNonblocking(conn *net.TCPConn) error {
	raw, err := conn.SyscallConn()
	if err != nil {
		return err
	}

	var sockErr error
	ctrlErr := raw.Control(func(fd uintptr) {
		sockErr = unix.SetNonblock(int(fd), true)
	})
	if ctrlErr != nil {
		return ctrlErr
	}
	return sockErr
}

// Dialer abstracts outbound connection establishment so callers can route
// through a SOCKS5 proxy without the rest of the package caring.
type Dialer interface {
	Dial(network, addr string) (net.Conn, error)
}

type directDialer struct{}

func (directDialer) Dial(network, addr string) (net.Conn, error) {
	return net.DialTimeout(network, addr, 10*time.Second)
}

// DirectDialer dials outbound TCP connections without a proxy.
func DirectDialer() Dialer { return directDialer{} }

// SocksDialer routes outbound connections through a SOCKS5 proxy at
// proxyAddr, for operators who want to avoid announcing their node's
// origin when bootstrapping to static peers. This is a dialer option
// only: the node's peer list remains the static bootstrap set, so the
// NAT-traversal/peer-discovery non-goal is untouched.
func SocksDialer(proxyAddr, user, pass string) Dialer {
	var auth *socks.ProxyAuth
	if user != "" {
		auth = &socks.ProxyAuth{Username: user, Password: pass}
	}
	return &socks.Proxy{Addr: proxyAddr, ProxyAuth: auth}
}
