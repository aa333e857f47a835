package commands

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/c360studio/ontograph/metric"
	"github.com/c360studio/ontograph/retrieve"
	"github.com/c360studio/ontograph/service"
	"github.com/c360studio/ontograph/snapshot"
)

func (a *app) serveCmd() *cobra.Command {
	var metricsAddr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve ontology queries over NATS request-reply",
		Long: `Serve loads the ontology, connects to NATS, and answers query requests
on "<subject_prefix>.query.<operation>" subjects until interrupted.
When ontology.watch is enabled, source file changes trigger an atomic
snapshot reload without interrupting in-flight queries.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runServe(cmd, metricsAddr)
		},
	}

	cmd.Flags().StringVar(&metricsAddr, "metrics-addr", ":9090", "Prometheus metrics listen address (empty to disable)")
	return cmd
}

func (a *app) runServe(cmd *cobra.Command, metricsAddr string) error {
	metrics := metric.NewMetrics()
	registry := prometheus.NewRegistry()
	if err := metrics.Register(registry); err != nil {
		return fmt.Errorf("register metrics: %w", err)
	}

	start := time.Now()
	snap, err := snapshot.Load(a.cfg.Ontology.Paths)
	if err != nil {
		metrics.ObserveLoad(0, 0, time.Since(start), err)
		return fmt.Errorf("load ontology: %w", err)
	}
	metrics.ObserveLoad(snap.Store.Len(), snap.Store.Dict().Len(), time.Since(start), nil)
	holder := snapshot.NewHolder(snap)

	a.logger.Info("Ontology loaded",
		"triples", snap.Store.Len(),
		"terms", snap.Store.Dict().Len(),
		"sources", len(snap.Sources))

	conn, err := nats.Connect(a.cfg.Service.NATSURL,
		nats.Name("ontograph"),
		nats.MaxReconnects(-1),
		nats.ReconnectWait(2*time.Second))
	if err != nil {
		return fmt.Errorf("connect to NATS at %s: %w", a.cfg.Service.NATSURL, err)
	}
	defer conn.Drain()
	a.logger.Info("Connected to NATS", "url", a.cfg.Service.NATSURL)

	opts := retrieve.Options{
		MaxFacts:    a.cfg.Retrieve.MaxFacts,
		MaxSubjects: a.cfg.Retrieve.MaxSubjects,
		Synonyms:    a.cfg.Retrieve.Synonyms,
	}
	svc := service.New(conn, holder, opts, a.cfg.Service.SubjectPrefix, a.logger, metrics)
	if err := svc.Start(); err != nil {
		return fmt.Errorf("start query service: %w", err)
	}
	defer svc.Stop()

	ctx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if a.cfg.Ontology.Watch {
		watcher := snapshot.NewWatcher(a.cfg.Ontology.Paths, holder,
			a.cfg.Ontology.DebounceDelay, a.logger, metrics)
		if err := watcher.Start(ctx); err != nil {
			return fmt.Errorf("start watcher: %w", err)
		}
		defer watcher.Stop()
	}

	var httpServer *http.Server
	if metricsAddr != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
		mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte("ok"))
		})
		httpServer = &http.Server{Addr: metricsAddr, Handler: mux}
		go func() {
			if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				a.logger.Error("Metrics server failed", "error", err)
			}
		}()
		a.logger.Info("Metrics server listening", "addr", metricsAddr)
	}

	<-ctx.Done()
	a.logger.Info("Received shutdown signal")

	if httpServer != nil {
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			a.logger.Error("Metrics server shutdown failed", "error", err)
		}
	}
	return nil
}
