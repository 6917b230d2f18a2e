package cli

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

// withFlags isolates the package-level flag state for one test.
func withFlags(t *testing.T) {
	t.Helper()
	oldCfg, oldURL, oldNoColor, oldMachine := cfgFile, urlFlag, noColor, machineMode
	t.Cleanup(func() {
		cfgFile, urlFlag, noColor, machineMode = oldCfg, oldURL, oldNoColor, oldMachine
	})
	cfgFile, urlFlag, noColor, machineMode = "", "", false, false

	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("HOME", dir)
}

// deviceServer serves a fixed status and names document.
func deviceServer(t *testing.T, statusBody, namesBody string) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/api/status", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(statusBody))
	})
	mux.HandleFunc("/names.json", func(w http.ResponseWriter, r *http.Request) {
		if namesBody == "" {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write([]byte(namesBody))
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}
