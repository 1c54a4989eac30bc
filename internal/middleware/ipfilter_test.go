package middleware

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func runIPFilter(blocklist, allowlist []string, remoteAddr, forwarded string) int {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/api/tokens", nil)
	c.Request.RemoteAddr = remoteAddr
	if forwarded != "" {
		c.Request.Header.Set("X-Forwarded-For", forwarded)
	}

	IPFilterMiddleware(blocklist, allowlist)(c)
	return w.Code
}

func TestIPFilterGlobalBlocklist(t *testing.T) {
	code := runIPFilter([]string{"192.168.1.0/24"}, nil, "192.168.1.100:1234", "")
	if code != 403 {
		t.Errorf("Expected 403 for blocked IP, got %d", code)
	}
}

func TestIPFilterGlobalBlocklistAllowed(t *testing.T) {
	code := runIPFilter([]string{"192.168.1.0/24"}, nil, "10.0.0.1:1234", "")
	if code == 403 {
		t.Error("Expected IP outside blocklist to be allowed")
	}
}

func TestIPFilterAllowlist(t *testing.T) {
	allow := []string{"127.0.0.1", "10.0.0.0/8"}

	if code := runIPFilter(nil, allow, "127.0.0.1:5000", ""); code == 403 {
		t.Error("Expected loopback to be allowed")
	}
	if code := runIPFilter(nil, allow, "10.2.3.4:5000", ""); code == 403 {
		t.Error("Expected 10/8 to be allowed")
	}
	if code := runIPFilter(nil, allow, "203.0.113.9:5000", ""); code != 403 {
		t.Errorf("Expected 403 outside allowlist, got %d", code)
	}
}

func TestIPFilterBlocklistWinsOverAllowlist(t *testing.T) {
	code := runIPFilter([]string{"10.0.0.5"}, []string{"10.0.0.0/8"}, "10.0.0.5:1", "")
	if code != 403 {
		t.Errorf("Expected 403, got %d", code)
	}
}

func TestIPFilterForwardedFor(t *testing.T) {
	code := runIPFilter([]string{"198.51.100.0/24"}, nil, "127.0.0.1:1", "198.51.100.7, 127.0.0.1")
	if code != 403 {
		t.Errorf("Expected forwarded client to be blocked, got %d", code)
	}
}

func TestIPFilterIPv6(t *testing.T) {
	if code := runIPFilter(nil, []string{"::1"}, "[::1]:8080", ""); code == 403 {
		t.Error("Expected ::1 to be allowed")
	}
}

func TestParseRangesSkipsGarbage(t *testing.T) {
	got := parseRanges([]string{"", "nope", "10.0.0.0/33", "10.0.0.0/8"})
	if len(got) != 1 {
		t.Errorf("Expected 1 valid range, got %d", len(got))
	}
}
