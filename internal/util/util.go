package util

import (
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"unicode/utf8"
)

func GetClientIPAddress(r *http.Request) string {
	if forwardedIP := r.Header.Get("X-Forwarded-For"); forwardedIP != "" {
		return forwardedIP
	}
	ip := r.RemoteAddr
	return ip
}

var schemePattern = regexp.MustCompile(`(?i)^https?://`)

// NormalizeURL prepends https:// when input has no http or https scheme.
// No other repair is done.
func NormalizeURL(input string) string {
	if !schemePattern.MatchString(input) {
		return "https://" + input
	}
	return input
}

// IsValidURL is the form-level check used by the browser UI before a scan is
// started. The API itself never validates beyond NormalizeURL.
func IsValidURL(input string, hostnameMinLength int) bool {
	if strings.TrimSpace(input) == "" {
		return false
	}

	u, err := url.Parse(NormalizeURL(input))
	if err != nil {
		return false
	}

	host := u.Hostname()
	if host == "" || len(host) < hostnameMinLength {
		return false
	}

	if host != "localhost" && !strings.Contains(host, ".") {
		return false
	}

	return !strings.ContainsAny(host, " \t")
}

// TruncateText shortens text to maxLength characters and appends an ellipsis.
func TruncateText(text string, maxLength int) string {
	if utf8.RuneCountInString(text) <= maxLength {
		return text
	}
	return string([]rune(text)[:maxLength]) + "..."
}
