package service

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"
	"golang.org/x/net/html"
	"seoscan/internal/config"
	"seoscan/internal/log"
	"seoscan/internal/metrics"
	"seoscan/internal/model"
	"seoscan/internal/util"
)

type Options struct {
	Timeout   time.Duration
	UserAgent string
	// ChromeTLS switches the outbound transport to a Chrome TLS fingerprint.
	ChromeTLS bool
	// Transport overrides the outbound transport entirely.
	Transport http.RoundTripper
}

// Scanner fetches a single page and extracts its SEO record. It holds no
// per-scan state and is safe for concurrent use.
type Scanner struct {
	client    *http.Client
	timeout   time.Duration
	userAgent string
}

func NewScanner(opts Options) *Scanner {
	if opts.Timeout <= 0 {
		opts.Timeout = config.RequestTimeout
	}
	if opts.UserAgent == "" {
		opts.UserAgent = config.UserAgent
	}

	transport := opts.Transport
	if transport == nil {
		if opts.ChromeTLS {
			transport = chromeTransport()
		} else {
			transport = defaultTransport()
		}
	}

	return &Scanner{
		client: &http.Client{
			Transport: transport,
			Timeout:   opts.Timeout,
		},
		timeout:   opts.Timeout,
		userAgent: opts.UserAgent,
	}
}

// Scan normalizes rawURL, fetches it once and extracts the SEO record.
// Every failure is returned as a *ScanError.
func (s *Scanner) Scan(ctx context.Context, rawURL string) (*model.SeoRecord, error) {
	target := util.NormalizeURL(rawURL)

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	root, err := s.fetchHTML(ctx, target)
	if err != nil {
		se := classify(err)
		metrics.ScansTotal.WithLabelValues(string(se.Kind)).Inc()
		return nil, se
	}

	record := Extract(goquery.NewDocumentFromNode(root), target)
	metrics.ScansTotal.WithLabelValues("ok").Inc()

	return &record, nil
}

// retrieves and parses the HTML content from the given URL
func (s *Scanner) fetchHTML(ctx context.Context, targetURL string) (*html.Node, error) {
	start := time.Now()
	defer func() {
		metrics.FetchDuration.Observe(time.Since(start).Seconds())
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, targetURL, nil)
	if err != nil {
		log.Logger.Warn("failed to build request",
			zap.String("url", targetURL),
			zap.Error(err),
		)
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("User-Agent", s.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")

	resp, err := s.client.Do(req)
	if err != nil {
		log.Logger.Error("failed to fetch URL",
			zap.String("url", targetURL),
			zap.Error(err),
		)
		return nil, fmt.Errorf("failed to fetch URL: %w", err)
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			log.Logger.Warn("failed to close response body", zap.Error(cerr))
		}
	}()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		log.Logger.Warn("unexpected status code",
			zap.String("url", targetURL),
			zap.Int("status_code", resp.StatusCode),
		)
		return nil, &upstreamStatusError{StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, config.MaxBodyBytes))
	if err != nil {
		log.Logger.Warn("failed to read response body",
			zap.String("url", targetURL),
			zap.Error(err),
		)
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	root, err := html.Parse(bytes.NewReader(body))
	if err != nil {
		log.Logger.Error("failed to parse HTML",
			zap.String("url", targetURL),
			zap.Error(err),
		)
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}

	log.Logger.Info("successfully fetched and parsed HTML",
		zap.String("url", targetURL),
		zap.Int("content_length", len(body)),
		zap.Int("status_code", resp.StatusCode),
	)

	return root, nil
}
