package handler

import (
	"encoding/json"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"
	"seoscan/internal/log"
	"seoscan/internal/model"
	"seoscan/internal/service"
	"seoscan/internal/ui"
)

func init() {
	log.Logger = zap.NewNop()
}

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) {
	return f(r)
}

const fixture = `<html><head>
	<title>Example Domain</title>
	<meta name="description" content="An example page">
	<link rel="canonical" href="https://example.com/">
</head><body><h1>Example</h1><img src="a.png" alt="a"></body></html>`

func pageScanner(body string) *service.Scanner {
	return service.NewScanner(service.Options{Transport: roundTripFunc(func(r *http.Request) (*http.Response, error) {
		return &http.Response{
			StatusCode: http.StatusOK,
			Header:     http.Header{"Content-Type": []string{"text/html"}},
			Body:       io.NopCloser(strings.NewReader(body)),
			Request:    r,
		}, nil
	})})
}

func dnsFailingScanner() *service.Scanner {
	return service.NewScanner(service.Options{Transport: roundTripFunc(func(r *http.Request) (*http.Response, error) {
		return nil, &net.DNSError{Err: "no such host", Name: r.URL.Hostname(), IsNotFound: true}
	})})
}

func TestHealthCheckHandler(t *testing.T) {
	rec := httptest.NewRecorder()
	HealthCheckHandler(rec, httptest.NewRequest(http.MethodGet, "/api/health", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var body map[string]string
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body["status"] != "OK" {
		t.Errorf("status = %q, want OK", body["status"])
	}
	if _, err := time.Parse(time.RFC3339, body["timestamp"]); err != nil {
		t.Errorf("timestamp %q is not ISO-8601: %v", body["timestamp"], err)
	}
}

func TestSeoDataHandler(t *testing.T) {
	tests := []struct {
		name           string
		scanner        *service.Scanner
		method         string
		target         string
		expectedStatus int
		expectedError  string
	}{
		{
			name:           "Missing url",
			scanner:        pageScanner(fixture),
			method:         http.MethodGet,
			target:         "/api/seo-data",
			expectedStatus: http.StatusBadRequest,
			expectedError:  "URL is required",
		},
		{
			name:           "Blank url",
			scanner:        pageScanner(fixture),
			method:         http.MethodGet,
			target:         "/api/seo-data?url=%20%20",
			expectedStatus: http.StatusBadRequest,
			expectedError:  "URL is required",
		},
		{
			name:           "Unknown domain",
			scanner:        dnsFailingScanner(),
			method:         http.MethodGet,
			target:         "/api/seo-data?url=nonexistent.invalid",
			expectedStatus: http.StatusNotFound,
			expectedError:  "Domain not found. Please check the URL.",
		},
		{
			name:           "Wrong method",
			scanner:        pageScanner(fixture),
			method:         http.MethodPost,
			target:         "/api/seo-data?url=example.com",
			expectedStatus: http.StatusMethodNotAllowed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			SeoDataHandler(tt.scanner)(rec, httptest.NewRequest(tt.method, tt.target, nil))

			if rec.Code != tt.expectedStatus {
				t.Fatalf("status = %d, want %d", rec.Code, tt.expectedStatus)
			}
			if tt.expectedError == "" {
				return
			}

			var body map[string]string
			if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if body["error"] != tt.expectedError {
				t.Errorf("error = %q, want %q", body["error"], tt.expectedError)
			}
		})
	}
}

func TestSeoDataHandlerBody(t *testing.T) {
	rec := httptest.NewRecorder()
	SeoDataHandler(pageScanner(fixture))(rec, httptest.NewRequest(http.MethodGet, "/api/seo-data?url=example.com", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q, want application/json", ct)
	}

	var body map[string]json.RawMessage
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}

	fields := []string{
		"title", "description", "favicon", "ogTitle", "ogDescription", "ogImage",
		"twitterCard", "twitterTitle", "twitterDescription", "twitterImage",
		"h1", "h2", "alt_tags", "canonical", "viewport",
	}
	if len(body) != len(fields) {
		t.Errorf("body has %d fields, want %d", len(body), len(fields))
	}
	for _, f := range fields {
		if _, ok := body[f]; !ok {
			t.Errorf("field %q missing", f)
		}
	}

	if string(body["title"]) != `"Example Domain"` {
		t.Errorf("title = %s", body["title"])
	}
	if string(body["ogTitle"]) != "null" {
		t.Errorf("ogTitle = %s, want null", body["ogTitle"])
	}
	if string(body["favicon"]) != "null" {
		t.Errorf("favicon = %s, want null", body["favicon"])
	}
	if string(body["h1"]) != "1" {
		t.Errorf("h1 = %s, want 1", body["h1"])
	}

	var alt model.AltTags
	if err := json.Unmarshal(body["alt_tags"], &alt); err != nil {
		t.Fatalf("decode alt_tags: %v", err)
	}
	if alt != (model.AltTags{WithAlt: 1, WithoutAlt: 0}) {
		t.Errorf("alt_tags = %+v, want {1 0}", alt)
	}
}

func TestSeoReportHandler(t *testing.T) {
	rec := httptest.NewRecorder()
	SeoReportHandler(pageScanner(fixture))(rec, httptest.NewRequest(http.MethodGet, "/api/seo-report?url=example.com", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var report model.Report
	if err := json.NewDecoder(rec.Body).Decode(&report); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if report.URL != "https://example.com" {
		t.Errorf("url = %q, want https://example.com", report.URL)
	}
	if len(report.Feedback) != 7 {
		t.Fatalf("feedback has %d items, want 7", len(report.Feedback))
	}
	if report.Score < 0 || report.Score > 100 {
		t.Errorf("score = %d, out of range", report.Score)
	}
	if report.Band == "" {
		t.Errorf("band is empty")
	}
}

func TestReportPageHandler(t *testing.T) {
	renderer, err := ui.New()
	if err != nil {
		t.Fatalf("ui.New() unexpected error: %v", err)
	}

	tests := []struct {
		name           string
		scanner        *service.Scanner
		target         string
		expectedStatus int
		expectedText   string
	}{
		{
			name:           "Empty input",
			scanner:        pageScanner(fixture),
			target:         "/report?url=",
			expectedStatus: http.StatusBadRequest,
			expectedText:   "Please enter a valid URL",
		},
		{
			name:           "Invalid input",
			scanner:        pageScanner(fixture),
			target:         "/report?url=nodot",
			expectedStatus: http.StatusBadRequest,
			expectedText:   "e.g., example.com",
		},
		{
			name:           "Unknown domain",
			scanner:        dnsFailingScanner(),
			target:         "/report?url=nonexistent.invalid",
			expectedStatus: http.StatusNotFound,
			expectedText:   "Domain not found. Please check the URL.",
		},
		{
			name:           "Successful scan",
			scanner:        pageScanner(fixture),
			target:         "/report?url=example.com",
			expectedStatus: http.StatusOK,
			expectedText:   "Example Domain",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			ReportPageHandler(tt.scanner, renderer)(rec, httptest.NewRequest(http.MethodGet, tt.target, nil))

			if rec.Code != tt.expectedStatus {
				t.Fatalf("status = %d, want %d", rec.Code, tt.expectedStatus)
			}
			if !strings.Contains(rec.Body.String(), tt.expectedText) {
				t.Errorf("page does not contain %q", tt.expectedText)
			}
		})
	}
}

func TestIndexHandler(t *testing.T) {
	renderer, err := ui.New()
	if err != nil {
		t.Fatalf("ui.New() unexpected error: %v", err)
	}

	rec := httptest.NewRecorder()
	IndexHandler(renderer)(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if !strings.HasPrefix(rec.Header().Get("Content-Type"), "text/html") {
		t.Errorf("Content-Type = %q, want text/html", rec.Header().Get("Content-Type"))
	}
}
