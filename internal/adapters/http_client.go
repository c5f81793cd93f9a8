package adapters

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/rs/dnscache"
)

const defaultBintrayTimeout = 10 * time.Second

// newHTTPClient builds a client whose connect, TLS handshake and response
// header phases are each bounded by timeout, as is every individual socket
// read and write. Host lookups go through a DNS cache; the run is
// short-lived so the cache is never refreshed.
func newHTTPClient(timeout time.Duration) *http.Client {
	if timeout <= 0 {
		timeout = defaultBintrayTimeout
	}
	resolver := &dnscache.Resolver{}
	dialer := &net.Dialer{
		Timeout:   timeout,
		KeepAlive: 30 * time.Second,
	}
	return &http.Client{
		Timeout: 3 * timeout,
		Transport: &http.Transport{
			Proxy: http.ProxyFromEnvironment,
			DialContext: func(ctx context.Context, network, addr string) (net.Conn, error) {
				host, port, err := net.SplitHostPort(addr)
				if err != nil {
					return nil, err
				}
				ips, err := resolver.LookupHost(ctx, host)
				if err != nil {
					return nil, err
				}
				var lastErr error
				for _, ip := range ips {
					conn, err := dialer.DialContext(ctx, network, net.JoinHostPort(ip, port))
					if err == nil {
						return &deadlineConn{Conn: conn, timeout: timeout}, nil
					}
					lastErr = err
				}
				if lastErr == nil {
					lastErr = &net.DNSError{Err: "no addresses", Name: host, IsNotFound: true}
				}
				return nil, lastErr
			},
			// Idle pooled connections would trip the read deadline while the
			// user sits at a prompt.
			DisableKeepAlives:     true,
			TLSHandshakeTimeout:   timeout,
			ResponseHeaderTimeout: timeout,
			ExpectContinueTimeout: 1 * time.Second,
		},
	}
}

// deadlineConn bounds each Read and Write by timeout, so a peer that stalls
// mid-body fails the call instead of holding it until the overall limit.
type deadlineConn struct {
	net.Conn
	timeout time.Duration
}

func (c *deadlineConn) Read(p []byte) (int, error) {
	if err := c.Conn.SetReadDeadline(time.Now().Add(c.timeout)); err != nil {
		return 0, err
	}
	return c.Conn.Read(p)
}

func (c *deadlineConn) Write(p []byte) (int, error) {
	if err := c.Conn.SetWriteDeadline(time.Now().Add(c.timeout)); err != nil {
		return 0, err
	}
	return c.Conn.Write(p)
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
