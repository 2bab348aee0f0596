package anchor

import (
	"context"
	"crypto/tls"
	"net"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
)

// Network anchors the networking stack: name resolution, the HTTP client
// facade, a stream socket, the TLS surface, and the router and websocket
// type graphs. Name resolution is expected to fail in sandboxed build
// environments; that failure is absorbed like any other.
type Network struct{}

func (Network) Name() string { return "network" }

func (n Network) Exercise(ctx context.Context) Result {
	res := Result{Name: n.Name()}

	var host string
	call(&res, func() error {
		h, err := os.Hostname()
		host = h
		keep(h)
		return err
	})

	call(&res, func() error {
		rctx, cancel := context.WithTimeout(ctx, time.Second)
		defer cancel()
		addrs, err := net.DefaultResolver.LookupHost(rctx, host)
		for _, addr := range addrs {
			keep(addr)
		}
		return err
	})

	// Outbound request-client facade: constructed, never pointed at
	// anything.
	call(&res, func() error {
		client := &http.Client{
			Timeout: 2 * time.Second,
			Transport: &http.Transport{
				TLSHandshakeTimeout: time.Second,
				MaxIdleConns:        1,
			},
		}
		defer client.CloseIdleConnections()
		return nil
	})

	call(&res, func() error {
		ln, err := net.Listen("tcp", "127.0.0.1:0")
		if err != nil {
			return err
		}
		defer ln.Close()
		keep(ln.Addr().String())
		return nil
	})

	// Secure-transport surface over an in-process pipe. The handshake is
	// never driven; the conn is closed on the spot.
	call(&res, func() error {
		inner, peer := net.Pipe()
		defer peer.Close()
		conn := tls.Client(inner, &tls.Config{
			ServerName: "ballast.invalid",
			MinVersion: tls.VersionTLS13,
		})
		defer conn.Close()
		keep(conn.LocalAddr().Network())
		return nil
	})

	call(&res, func() error {
		dialer := &websocket.Dialer{
			HandshakeTimeout: time.Second,
			Subprotocols:     []string{"ballast"},
		}
		keep(dialer.Subprotocols[0])
		return nil
	})

	call(&res, func() error {
		router := chi.NewRouter()
		router.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		})
		keep(router.Routes()[0].Pattern)
		return nil
	})

	return res
}
