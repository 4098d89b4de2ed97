package handlers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"greeter/internal/service"
)

func get(t *testing.T, h http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	h.ServeHTTP(w, req)
	return w
}

func TestHome(t *testing.T) {
	r := newTestRouter(service.NewService())

	for i := 0; i < 3; i++ {
		w := get(t, r, "/")
		if w.Code != http.StatusOK {
			t.Fatalf("status=%d, body=%s", w.Code, w.Body.String())
		}
		if w.Body.String() != "Hello, Flask!" {
			t.Fatalf("body=%q", w.Body.String())
		}
		if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/plain") {
			t.Fatalf("content-type=%q", ct)
		}
	}
}

func TestHelloUser(t *testing.T) {
	r := newTestRouter(service.NewService())

	names := []string{"parth", "ajit", "John Doe", "<b>bold", "ünïcødé", "a.b-c_d", "123"}
	for _, name := range names {
		t.Run(name, func(t *testing.T) {
			w := get(t, r, "/hello/"+url.PathEscape(name))
			if w.Code != http.StatusOK {
				t.Fatalf("status=%d, body=%s", w.Code, w.Body.String())
			}
			if want := "Hello, " + name; w.Body.String() != want {
				t.Fatalf("body=%q, want %q", w.Body.String(), want)
			}
		})
	}
}

func TestHelloUser_PassesSegmentToService(t *testing.T) {
	g := &mockGreeter{}
	r := newTestRouter(&service.Service{Greeter: g})

	w := get(t, r, "/hello/alice")
	if w.Body.String() != "user:alice" || g.lastUser != "alice" {
		t.Fatalf("unexpected body=%q lastUser=%q", w.Body.String(), g.lastUser)
	}
}

func TestHelloUserID(t *testing.T) {
	r := newTestRouter(service.NewService())

	ok := []struct{ seg, want string }{
		{"0", "User ID: 0"},
		{"1", "User ID: 1"},
		{"42", "User ID: 42"},
		{"007", "User ID: 7"},
		{"18446744073709551615", "User ID: 18446744073709551615"},
		{"18446744073709551616", "User ID: 18446744073709551616"},
		{"123456789012345678901234567890", "User ID: 123456789012345678901234567890"},
		{"000", "User ID: 0"},
	}
	for _, tc := range ok {
		w := get(t, r, "/hello-user-id/"+tc.seg)
		if w.Code != http.StatusOK {
			t.Fatalf("%s: status=%d, body=%s", tc.seg, w.Code, w.Body.String())
		}
		if w.Body.String() != tc.want {
			t.Fatalf("%s: body=%q, want %q", tc.seg, w.Body.String(), tc.want)
		}
	}
}

func TestHelloUserID_NonIntegerIsNotFound(t *testing.T) {
	g := &mockGreeter{}
	r := newTestRouter(&service.Service{Greeter: g})

	bad := []string{"abc", "12a", "-1", "+1", "1.5", "1e3", "%20", "0x10", "%D9%A3"}
	for _, seg := range bad {
		w := get(t, r, "/hello-user-id/"+seg)
		if w.Code != http.StatusNotFound {
			t.Fatalf("%q: expected 404, got %d (body=%s)", seg, w.Code, w.Body.String())
		}
	}
	if g.calls != 0 {
		t.Fatalf("handler should not run for rejected segments, got %d calls", g.calls)
	}
}

func TestParseUintSegment(t *testing.T) {
	cases := []struct {
		in   string
		want string
		ok   bool
	}{
		{"", "", false},
		{"5", "5", true},
		{"0005", "5", true},
		{" 5", "", false},
		{"-5", "", false},
		{"٣", "", false},
		{"99999999999999999999", "99999999999999999999", true},
	}
	for _, tc := range cases {
		got, ok := parseUintSegment(tc.in)
		if ok != tc.ok {
			t.Errorf("parseUintSegment(%q) ok = %v, want %v", tc.in, ok, tc.ok)
			continue
		}
		if ok && got.String() != tc.want {
			t.Errorf("parseUintSegment(%q) = %s, want %s", tc.in, got, tc.want)
		}
	}
}
