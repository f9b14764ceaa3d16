package service

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"time"

	utls "github.com/refraction-networking/utls"
)

func newDialer() *net.Dialer {
	return &net.Dialer{
		Timeout:   5 * time.Second,
		KeepAlive: 30 * time.Second,
	}
}

// defaultTransport is a plain net/http transport with bounded dial and TLS
// handshake times.
func defaultTransport() *http.Transport {
	return &http.Transport{
		Proxy:               http.ProxyFromEnvironment,
		MaxIdleConns:        20,
		IdleConnTimeout:     30 * time.Second,
		DialContext:         newDialer().DialContext,
		TLSHandshakeTimeout: 5 * time.Second,
	}
}

// chromeTransport presents a Chrome TLS ClientHello so that sites which
// fingerprint TLS see the same client the User-Agent claims to be. ALPN is
// pinned to http/1.1 because http.Transport cannot speak h2 over a utls conn.
func chromeTransport() *http.Transport {
	dialer := newDialer()
	return &http.Transport{
		MaxIdleConns:    20,
		IdleConnTimeout: 30 * time.Second,
		DialContext:     dialer.DialContext,
		DialTLSContext: func(ctx context.Context, network, addr string) (net.Conn, error) {
			conn, err := dialer.DialContext(ctx, network, addr)
			if err != nil {
				return nil, err
			}

			spec, err := chromeHTTP1Spec()
			if err != nil {
				conn.Close()
				return nil, fmt.Errorf("chrome tls spec: %w", err)
			}

			host, _, _ := net.SplitHostPort(addr)
			tlsConn := utls.UClient(conn, &utls.Config{ServerName: host}, utls.HelloCustom)
			if err := tlsConn.ApplyPreset(&spec); err != nil {
				conn.Close()
				return nil, fmt.Errorf("apply chrome tls spec: %w", err)
			}
			if err := tlsConn.HandshakeContext(ctx); err != nil {
				conn.Close()
				return nil, err
			}
			return tlsConn, nil
		},
		ForceAttemptHTTP2: false,
	}
}

// chromeHTTP1Spec builds a fresh spec per connection since ApplyPreset keeps
// references to the extensions it is given.
func chromeHTTP1Spec() (utls.ClientHelloSpec, error) {
	spec, err := utls.UTLSIdToSpec(utls.HelloChrome_Auto)
	if err != nil {
		return utls.ClientHelloSpec{}, err
	}
	for i, ext := range spec.Extensions {
		if alpn, ok := ext.(*utls.ALPNExtension); ok {
			alpn.AlpnProtocols = []string{"http/1.1"}
			spec.Extensions[i] = alpn
			break
		}
	}
	return spec, nil
}
