package handlers

import (
	"net/http"
	"testing"

	"greeter/internal/models"
	"greeter/internal/service"
)

func TestListUsers(t *testing.T) {
	r := newTestRouter(service.NewService())

	const want = `[{"user_id":1,"username":"parth"},{"user_id":2,"username":"ajit"}]`
	var prev string
	for i := 0; i < 3; i++ {
		w := get(t, r, "/api/users")
		if w.Code != http.StatusOK {
			t.Fatalf("status=%d, body=%s", w.Code, w.Body.String())
		}
		if ct := w.Header().Get("Content-Type"); ct != "application/json; charset=utf-8" {
			t.Fatalf("content-type=%q", ct)
		}
		if w.Body.String() != want {
			t.Fatalf("body=%s, want %s", w.Body.String(), want)
		}
		if prev != "" && prev != w.Body.String() {
			t.Fatalf("response changed between calls")
		}
		prev = w.Body.String()
	}
}

func TestListUsers_UsesDirectory(t *testing.T) {
	d := &mockDirectory{users: []models.User{{UserID: 9, Username: "zed"}}}
	r := newTestRouter(&service.Service{Directory: d})

	w := get(t, r, "/api/users")
	if w.Body.String() != `[{"user_id":9,"username":"zed"}]` {
		t.Fatalf("body=%s", w.Body.String())
	}
	if d.calls != 1 {
		t.Fatalf("ListUsers calls=%d", d.calls)
	}
}
