package tests

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/acm-uic/acm-catalog/internal/agent/api"
	"github.com/acm-uic/acm-catalog/internal/agent/cli"
)

func TestMeCmd_PrintsProfile(t *testing.T) {
	name := "Test User"

	mux := http.NewServeMux()
	mux.HandleFunc("/api/auth/me", func(w http.ResponseWriter, r *http.Request) {
		if auth := r.Header.Get("Authorization"); auth != "Bearer token-1" {
			t.Fatalf("expected Bearer token-1, got %q", auth)
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(api.MeResponse{
			Success: true,
			User: api.User{
				ID:        "id-1",
				Email:     "test@example.com",
				Name:      &name,
				CreatedAt: "2026-08-30T10:00:00Z",
			},
		})
	})

	srv := httptest.NewTLSServer(mux)
	defer srv.Close()

	app := newApp(t, srv.URL, "token-1")

	out, err := runCmd(t, cli.NewMeCmd(app))
	if err != nil {
		t.Fatalf("me returned error: %v", err)
	}
	for _, want := range []string{
		"id=id-1",
		"email=test@example.com",
		"name=Test User",
		"created_at=2026-08-30T10:00:00Z",
	} {
		if !contains(out, want) {
			t.Fatalf("output %q does not contain %q", out, want)
		}
	}
}

func TestMeCmd_NilNamePrintedAsDash(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/auth/me", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(api.MeResponse{
			Success: true,
			User:    api.User{ID: "id-1", Email: "test@example.com"},
		})
	})

	srv := httptest.NewTLSServer(mux)
	defer srv.Close()

	app := newApp(t, srv.URL, "token-1")

	out, err := runCmd(t, cli.NewMeCmd(app))
	if err != nil {
		t.Fatalf("me returned error: %v", err)
	}
	if !contains(out, "name=-") {
		t.Fatalf("unexpected output: %q", out)
	}
}

func TestMeCmd_NoToken(t *testing.T) {
	app := newApp(t, "http://127.0.0.1:0", "")

	_, err := runCmd(t, cli.NewMeCmd(app))
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !contains(err.Error(), "no token") {
		t.Fatalf("unexpected error: %v", err)
	}
}
