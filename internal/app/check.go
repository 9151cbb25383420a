package app

import (
	"context"
	"fmt"
	"net"
	"time"

	"golang.org/x/net/proxy"

	"github.com/fscarmen2/LightProxy/internal/state"
)

// checkTarget is any host the backend can reach directly; only the
// connect through the listener matters, not the payload.
const checkTarget = "www.google.com:80"

// Check dials through the installed SOCKS5 listener to verify the
// service actually accepts connections.
func (a *App) Check(ctx context.Context) error {
	rec, err := state.Load(a.Paths.InstallDir)
	if err != nil {
		return err
	}
	if rec == nil {
		return fmt.Errorf("no installation found")
	}

	addr := fmt.Sprintf("127.0.0.1:%d", rec.SocksPort)
	dialer, err := proxy.SOCKS5("tcp", addr, nil, &net.Dialer{Timeout: 10 * time.Second})
	if err != nil {
		return err
	}

	var conn net.Conn
	if cd, ok := dialer.(proxy.ContextDialer); ok {
		conn, err = cd.DialContext(ctx, "tcp", checkTarget)
	} else {
		conn, err = dialer.Dial("tcp", checkTarget)
	}
	if err != nil {
		return fmt.Errorf("dial via %s: %w", addr, err)
	}
	conn.Close()

	fmt.Fprintf(a.Out, "OK: %s listener at %s relays connections.\n", rec.Backend, addr)
	return nil
}
