package mdns

import (
	"context"
	"fmt"
	"net"
	"syscall"
	"time"

	"golang.org/x/sys/unix"

	"github.com/mverkaik/elights/internal/dns"
)

// Multicast DNS transport constants (RFC 6762 Section 3).
const (
	GroupAddr = "224.0.0.251"
	Port      = 5353
)

// receiveTimeout bounds a single blocking receive so the engine loop
// can observe context cancellation.
const receiveTimeout = 2 * time.Second

// Conn owns the single UDP socket shared by the whole engine. Exactly
// one goroutine may call Receive; any number of goroutines may call
// SendMulticast, since stateless UDP writes need no exclusion.
type Conn struct {
	udp   *net.UDPConn
	group *net.UDPAddr
}

// Open binds a reusable UDP socket to 0.0.0.0:5353 and joins the mDNS
// multicast group on all interfaces. Address and port reuse lets the
// engine coexist with a system-level mDNS responder. Any failure here
// is fatal to discovery and is returned to the caller.
func Open() (*Conn, error) {
	lc := net.ListenConfig{
		Control: func(_, _ string, c syscall.RawConn) error {
			var serr error
			err := c.Control(func(fd uintptr) {
				serr = unix.SetsockoptInt(int(fd), unix.SOL_SOCKET, unix.SO_REUSEADDR, 1)
				if serr == nil {
					serr = unix.SetsockoptInt(int(fd), unix.SOL_SOCKET, unix.SO_REUSEPORT, 1)
				}
			})
			if err != nil {
				return err
			}
			return serr
		},
	}

	pc, err := lc.ListenPacket(context.Background(), "udp4", fmt.Sprintf(":%d", Port))
	if err != nil {
		return nil, fmt.Errorf("mdns: bind :%d: %w", Port, err)
	}
	udp := pc.(*net.UDPConn)

	if err := joinGroup(udp); err != nil {
		udp.Close()
		return nil, fmt.Errorf("mdns: join %s: %w", GroupAddr, err)
	}

	return &Conn{
		udp:   udp,
		group: &net.UDPAddr{IP: net.ParseIP(GroupAddr), Port: Port},
	}, nil
}

// joinGroup adds IP_ADD_MEMBERSHIP for the mDNS group with the
// interface left to the kernel (INADDR_ANY).
func joinGroup(udp *net.UDPConn) error {
	raw, err := udp.SyscallConn()
	if err != nil {
		return err
	}
	mreq := &unix.IPMreq{}
	copy(mreq.Multiaddr[:], net.ParseIP(GroupAddr).To4())

	var serr error
	if err := raw.Control(func(fd uintptr) {
		serr = unix.SetsockoptIPMreq(int(fd), unix.IPPROTO_IP, unix.IP_ADD_MEMBERSHIP, mreq)
	}); err != nil {
		return err
	}
	return serr
}

// Receive reads one datagram into buf. A nil slice with a nil error
// means the read deadline expired and there was nothing to do this
// cycle.
func (c *Conn) Receive(buf []byte) ([]byte, *net.UDPAddr, error) {
	_ = c.udp.SetReadDeadline(time.Now().Add(receiveTimeout))
	n, remote, err := c.udp.ReadFromUDP(buf)
	if err != nil {
		if ne, ok := err.(net.Error); ok && ne.Timeout() {
			return nil, nil, nil
		}
		return nil, nil, err
	}
	if n > dns.MaxMessageSize {
		n = dns.MaxMessageSize
	}
	return buf[:n], remote, nil
}

// SendMulticast sends one datagram to the mDNS group.
func (c *Conn) SendMulticast(b []byte) (int, error) {
	return c.udp.WriteToUDP(b, c.group)
}

// Close releases the socket.
func (c *Conn) Close() error {
	return c.udp.Close()
}
