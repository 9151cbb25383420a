package app

import (
	"context"
	"fmt"
	"net"
	"strings"
	"time"

	"github.com/miekg/dns"

	"github.com/fscarmen2/LightProxy/internal/backend"
	"github.com/fscarmen2/LightProxy/internal/logger"
	"github.com/fscarmen2/LightProxy/internal/state"
)

// NodeInfo prints the listener addresses of the current installation.
func (a *App) NodeInfo(ctx context.Context) error {
	rec, err := state.Load(a.Paths.InstallDir)
	if err != nil {
		return err
	}
	if rec == nil {
		fmt.Fprintln(a.Out, "No installation found.")
		return nil
	}
	a.printNodeInfo(ctx, rec.Backend, rec.SocksPort, rec.HTTPPort)
	return nil
}

func (a *App) printNodeInfo(ctx context.Context, kind backend.Kind, socksPort, httpPort int) {
	fmt.Fprintf(a.Out, "\nBackend: %s\n", kind)
	fmt.Fprintf(a.Out, "SOCKS5:  socks5://127.0.0.1:%d\n", socksPort)
	fmt.Fprintf(a.Out, "HTTP:    http://127.0.0.1:%d\n", httpPort)
	if ip, err := publicAddress(ctx); err == nil {
		fmt.Fprintf(a.Out, "Egress:  %s\n", ip)
	} else {
		logger.Debug("Public address lookup failed: %v", err)
	}
}

// publicAddress asks Google's resolver for our own address via the
// o-o.myaddr TXT record, avoiding a dependency on any HTTP echo
// service.
func publicAddress(ctx context.Context) (string, error) {
	m := new(dns.Msg)
	m.SetQuestion("o-o.myaddr.l.google.com.", dns.TypeTXT)

	c := &dns.Client{Timeout: 5 * time.Second}
	resp, _, err := c.ExchangeContext(ctx, m, "ns1.google.com:53")
	if err != nil {
		return "", err
	}
	for _, rr := range resp.Answer {
		txt, ok := rr.(*dns.TXT)
		if !ok {
			continue
		}
		addr := strings.Join(txt.Txt, "")
		if net.ParseIP(addr) != nil {
			return addr, nil
		}
	}
	return "", fmt.Errorf("no address in TXT answer")
}
