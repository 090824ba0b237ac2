package cli

import (
	"bytes"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
)

// captureStdout redirects os.Stdout to a pipe and returns a function
// that restores stdout and returns the captured output.
// Uses a goroutine to read concurrently, avoiding pipe buffer deadlocks.
func captureStdout(t *testing.T) func() string {
	t.Helper()
	old := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	os.Stdout = w

	var buf bytes.Buffer
	done := make(chan struct{})
	go func() {
		_, _ = buf.ReadFrom(r)
		close(done)
	}()

	return func() string {
		_ = w.Close()
		<-done
		os.Stdout = old
		return buf.String()
	}
}

// startFakeAPI serves a minimal HR API so commands can run end to end.
// HOME is pointed at a temp dir so config and credentials stay isolated.
func startFakeAPI(t *testing.T) *httptest.Server {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/auth/login", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"token":"tok-1","user":{"id":1,"name":"Admin","email":"admin@example.com","role":"admin"}}`)
	})
	mux.HandleFunc("GET /api/auth/profile", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer tok-1" {
			w.WriteHeader(http.StatusUnauthorized)
			fmt.Fprint(w, `{"message":"token expired"}`)
			return
		}
		fmt.Fprint(w, `{"user":{"id":1,"name":"Admin","email":"admin@example.com","role":"admin"}}`)
	})
	mux.HandleFunc("POST /api/auth/logout", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"message":"ok"}`)
	})
	mux.HandleFunc("GET /api/employees", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"employees":[{"id":1,"first_name":"Ada","last_name":"Lovelace","email":"ada@example.com","position":"Engineer","department":"R&D","teams":[{"id":1,"name":"Platform"}]}]}`)
	})
	mux.HandleFunc("GET /api/teams", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `[{"id":1,"name":"Platform","description":"Core infrastructure"}]`)
	})
	mux.HandleFunc("GET /api/audit/stats", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"action_stats":[{"action":"create","count":2}],"daily_activity":[]}`)
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

// runCommand executes the root command with args and returns stdout.
func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	restore := captureStdout(t)
	cmd := newRootCmd()
	cmd.SetArgs(args)
	err := cmd.Execute()
	return restore(), err
}
