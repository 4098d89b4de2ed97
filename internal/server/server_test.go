package server

import (
	"context"
	"io"
	"net"
	"net/http"
	"testing"
	"time"
)

func TestAddr(t *testing.T) {
	cases := []struct{ host, port, want string }{
		{"0.0.0.0", "5000", "0.0.0.0:5000"},
		{"0.0.0.0", ":5000", "0.0.0.0:5000"},
		{"", "8080", ":8080"},
		{"::1", "5000", "[::1]:5000"},
	}
	for _, tc := range cases {
		if got := Addr(tc.host, tc.port); got != tc.want {
			t.Errorf("Addr(%q, %q) = %q, want %q", tc.host, tc.port, got, tc.want)
		}
	}
}

func TestShutdownBeforeRun(t *testing.T) {
	var s Server
	if err := s.Shutdown(context.Background()); err != nil {
		t.Fatalf("Shutdown on idle server: %v", err)
	}
}

func TestServeAndShutdown(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, "pong")
	})

	s := &Server{}
	errCh := make(chan error, 1)
	go func() { errCh <- s.Serve(ln, handler) }()

	resp, err := http.Get("http://" + ln.Addr().String() + "/")
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	body, _ := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	if string(body) != "pong" {
		t.Fatalf("body = %q, want pong", body)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.Shutdown(ctx); err != nil {
		t.Fatalf("Shutdown: %v", err)
	}
	if err := <-errCh; err != nil {
		t.Fatalf("Serve returned %v after shutdown", err)
	}
}
