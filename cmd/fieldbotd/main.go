// Command fieldbotd drives one player's automation engine against a
// scripted detector and a recording input sink, broadcasting its state
// over a debug websocket stream. A real deployment would swap the
// scripted detector and recording sink for an OS-level screen reader
// and key injector; wiring those is outside this module's scope.
package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"fieldbot"
	"fieldbot/internal/config"
	"fieldbot/internal/debugstream"
	"fieldbot/internal/keybind"
	"fieldbot/internal/observability"
	"fieldbot/internal/rng"
	"fieldbot/logging"
	loggingSinks "fieldbot/logging/sinks"
)

const defaultTickRate = 30 * time.Millisecond

func main() {
	if err := run(context.Background()); err != nil {
		log.Fatalf("%v", err)
	}
}

func run(ctx context.Context) error {
	stdlog := log.New(os.Stderr, "", log.LstdFlags)

	logCfg := logging.DefaultConfig()
	sinks := map[string]logging.Sink{
		"console": loggingSinks.NewConsoleSink(os.Stdout, logging.ConsoleConfig{Prefix: "fieldbot"}),
	}
	router, err := logging.NewRouter(logCfg, logging.SystemClock{}, stdlog, sinks)
	if err != nil {
		return fmt.Errorf("constructing logging router: %w", err)
	}
	defer router.Close(ctx)

	playerCfg := keybind.Config{}
	if path := os.Getenv("FIELDBOT_CONFIG"); path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return fmt.Errorf("loading player config: %w", err)
		}
		playerCfg = loaded
	}

	tickRate := defaultTickRate
	if raw := os.Getenv("FIELDBOT_TICK_MS"); raw != "" {
		if ms, err := strconv.Atoi(raw); err == nil && ms > 0 {
			tickRate = time.Duration(ms) * time.Millisecond
		} else {
			stdlog.Printf("invalid FIELDBOT_TICK_MS=%q: %v", raw, err)
		}
	}

	engine := fieldbot.New(fieldbot.Options{
		Config:    playerCfg,
		Seeds:     rng.Seeds{},
		Publisher: router,
	})

	hub := debugstream.New(stdlog)
	mux := http.NewServeMux()
	mux.Handle("/debug/stream", hub)
	observability.RegisterPprofHandlers(mux, observability.Config{
		EnablePprofTrace: os.Getenv("FIELDBOT_ENABLE_PPROF_TRACE") == "1",
	})

	addr := ":8090"
	if raw := os.Getenv("FIELDBOT_ADDR"); raw != "" {
		addr = raw
	}
	server := &http.Server{Addr: addr, Handler: mux}

	go func() {
		stdlog.Printf("fieldbotd debug stream listening on %s", addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			stdlog.Printf("debug stream server failed: %v", err)
		}
	}()

	runCtx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	// No real minimap reader is wired; every tick reports an unreadable
	// minimap until a host supplies one via engine.Run's read callback.
	engine.Run(runCtx, tickRate, func() *fieldbot.Point { return nil }, hub)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}
