package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gpufleet/internal/config"
	"gpufleet/internal/logger"
	"gpufleet/internal/monitor"
	"gpufleet/internal/store"
	"gpufleet/internal/ui"
	"gpufleet/internal/web"
	"gpufleet/pkg/sshkit"
)

// shutdownGrace bounds how long we wait for in-flight polls and open
// viewer connections on Ctrl+C before exiting anyway.
const shutdownGrace = 5 * time.Second

// serve wires the store, the per-host monitors, and the dashboard server
// together and blocks until a shutdown signal arrives.
func serve(cfg *config.Config) error {
	log := logger.NewEnvLogger("[gpufleet]")
	if cfg.Verbose {
		log = logger.NewVerboseLogger("[gpufleet]")
	}

	st := store.New(cfg.Hosts)

	if insecureFlag {
		sshkit.StrictHostKeyChecking = false
	}

	dialer := monitor.DialerFunc(func(host string) (monitor.Session, error) {
		client, err := sshkit.Dial(host, cfg.DialTimeout)
		if err != nil {
			return nil, err
		}
		return client, nil
	})
	defer sshkit.CloseAgent()

	fleet := monitor.NewFleet(st, monitor.Config{
		Command:  cfg.Command,
		Interval: cfg.Interval,
		Dialer:   dialer,
		Logger:   log,
	})

	addr := fmt.Sprintf(":%d", cfg.Port)
	ui.PrintBanner(ui.BannerInfo{
		Version:  GetVersion(),
		Addr:     addr,
		Hosts:    st.Hosts(),
		Interval: cfg.Interval,
		Command:  cfg.Command,
	})

	fleet.Start()

	srv := web.NewServer(st, log)
	serveErr := make(chan error, 1)
	go func() {
		serveErr <- srv.ListenAndServe(addr)
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serveErr:
		// Listener died on its own (port in use, etc). Stop polling too.
		stopFleet(fleet, log)
		return err
	case sig := <-sigCh:
		log.Info("received %s, shutting down", sig)
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Warn("dashboard shutdown: %v", err)
	}
	stopFleet(fleet, log)
	return nil
}

// stopFleet asks all monitors to exit and waits up to shutdownGrace.
// A poll stuck mid-SSH-read must not hold the process hostage.
func stopFleet(fleet *monitor.Fleet, log logger.Logger) {
	stopped := make(chan struct{})
	go func() {
		fleet.Stop()
		close(stopped)
	}()

	select {
	case <-stopped:
	case <-time.After(shutdownGrace):
		log.Warn("monitors still busy after %s, exiting anyway", shutdownGrace)
	}
}
