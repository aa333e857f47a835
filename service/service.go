// Package service exposes the read-only query API over NATS request-reply.
// Each request is answered against the snapshot current at arrival time;
// reloads swap snapshots atomically underneath without disturbing in-flight
// queries.
package service

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/nats-io/nats.go"

	"github.com/c360studio/ontograph/metric"
	"github.com/c360studio/ontograph/retrieve"
	"github.com/c360studio/ontograph/snapshot"
)

// Service answers ontology queries over NATS.
type Service struct {
	conn    *nats.Conn
	holder  *snapshot.Holder
	opts    retrieve.Options
	prefix  string
	logger  *slog.Logger
	metrics *metric.Metrics
	subs    []*nats.Subscription
}

// New creates a query service. Metrics may be nil.
func New(conn *nats.Conn, holder *snapshot.Holder, opts retrieve.Options, prefix string, logger *slog.Logger, metrics *metric.Metrics) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		conn:    conn,
		holder:  holder,
		opts:    opts,
		prefix:  prefix,
		logger:  logger,
		metrics: metrics,
	}
}

// Start subscribes to the query subjects. Subjects are
// "<prefix>.query.<operation>".
func (s *Service) Start() error {
	handlers := map[string]handlerFunc{
		"describe":  s.handleDescribe,
		"instances": s.handleInstances,
		"label":     s.handleLabel,
		"retrieve":  s.handleRetrieve,
		"path":      s.handlePath,
		"stats":     s.handleStats,
	}
	for op, h := range handlers {
		subject := fmt.Sprintf("%s.query.%s", s.prefix, op)
		sub, err := s.conn.Subscribe(subject, s.wrap(op, h))
		if err != nil {
			s.stopSubs()
			return fmt.Errorf("subscribe %s: %w", subject, err)
		}
		s.subs = append(s.subs, sub)
		s.logger.Debug("Subscribed", slog.String("subject", subject))
	}
	s.logger.Info("Query service started", slog.String("prefix", s.prefix))
	return nil
}

// Stop unsubscribes from all query subjects.
func (s *Service) Stop() {
	s.stopSubs()
	s.logger.Info("Query service stopped")
}

func (s *Service) stopSubs() {
	for _, sub := range s.subs {
		_ = sub.Unsubscribe()
	}
	s.subs = nil
}

// wrap adapts a pure handler to NATS, adding logging and metrics.
func (s *Service) wrap(op string, h handlerFunc) nats.MsgHandler {
	return func(msg *nats.Msg) {
		start := time.Now()
		resp, err := h(s.holder.Current(), msg.Data)
		if s.metrics != nil {
			s.metrics.ObserveQuery(op, time.Since(start), err)
		}
		if err != nil {
			s.logger.Debug("Query failed",
				slog.String("operation", op),
				slog.String("error", err.Error()))
			resp = errorResponse(err)
		}
		if err := msg.Respond(resp); err != nil {
			s.logger.Warn("Failed to respond",
				slog.String("operation", op),
				slog.String("error", err.Error()))
		}
	}
}
