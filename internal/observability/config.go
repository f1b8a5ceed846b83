// Package observability carries opt-in diagnostic toggles and the HTTP
// wiring for them, kept separate from the engine itself so a host can
// skip registering any of it in production.
package observability

import (
	"net/http"
	"net/http/pprof"
)

// Config captures opt-in observability toggles that wire into the host
// binary's HTTP mux.
type Config struct {
	// EnablePprofTrace gates /debug/pprof/trace specifically: the other
	// pprof endpoints are always safe to expose, but trace captures can
	// be large and briefly add real overhead to a live tick loop.
	EnablePprofTrace bool
}

// RegisterPprofHandlers mounts the standard net/http/pprof endpoints on
// mux, gating /debug/pprof/trace behind cfg.EnablePprofTrace.
func RegisterPprofHandlers(mux *http.ServeMux, cfg Config) {
	mux.HandleFunc("/debug/pprof/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/debug/pprof/" {
			http.NotFound(w, r)
			return
		}
		pprof.Index(w, r)
	})

	mux.HandleFunc("/debug/pprof/cmdline", pprof.Cmdline)
	mux.HandleFunc("/debug/pprof/profile", pprof.Profile)
	mux.HandleFunc("/debug/pprof/symbol", pprof.Symbol)

	profiles := []string{"allocs", "block", "goroutine", "heap", "mutex", "threadcreate"}
	for _, name := range profiles {
		mux.Handle("/debug/pprof/"+name, pprof.Handler(name))
	}

	if cfg.EnablePprofTrace {
		mux.HandleFunc("/debug/pprof/trace", pprof.Trace)
		return
	}

	mux.HandleFunc("/debug/pprof/trace", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "pprof trace disabled", http.StatusNotFound)
	})
}
