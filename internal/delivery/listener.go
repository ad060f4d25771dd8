package delivery

import (
	"errors"
	"fmt"
	"net"
	"syscall"
)

// ListenWithProbe binds host:port and, while the port is taken, tries the
// next one up to attempts times in total.
func ListenWithProbe(host string, port, attempts int) (net.Listener, int, error) {
	if attempts <= 0 {
		attempts = 1
	}
	var lastErr error
	for i := 0; i < attempts; i++ {
		candidate := port + i
		if candidate > 65535 {
			break
		}
		ln, err := net.Listen("tcp", net.JoinHostPort(host, fmt.Sprint(candidate)))
		if err == nil {
			return ln, candidate, nil
		}
		if !errors.Is(err, syscall.EADDRINUSE) {
			return nil, 0, err
		}
		lastErr = err
	}
	return nil, 0, fmt.Errorf("no free port in %d..%d: %w", port, port+attempts-1, lastErr)
}
