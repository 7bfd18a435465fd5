package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cloud.google.com/go/spanner"
	"github.com/rs/zerolog"
	"google.golang.org/api/iterator"

	"github.com/clearlane/warranty-service/internal/config"
	"github.com/clearlane/warranty-service/internal/models/m_outbox"
	commitplan "github.com/clearlane/warranty-service/internal/pkg/committer"
)

// The relay drains pending outbox rows: it logs each event to the structured
// log and marks it processed. Downstream delivery (webhooks, queues) hangs
// off the same loop when a consumer exists.
func main() {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg := config.Get(logger)
	if cfg.Spanner.Database == "" {
		logger.Fatal().Msg("spanner.database is required for the outbox relay")
	}

	client, err := spanner.NewClient(ctx, cfg.Spanner.Database)
	if err != nil {
		logger.Fatal().Err(err).Msg("spanner client")
	}
	defer client.Close()

	committer := commitplan.NewSpannerAdapter(client)

	ticker := time.NewTicker(cfg.Outbox.PollInterval)
	defer ticker.Stop()

	logger.Info().
		Dur("poll_interval", cfg.Outbox.PollInterval).
		Int64("batch_size", cfg.Outbox.BatchSize).
		Msg("outbox relay started")

	for {
		select {
		case <-ctx.Done():
			logger.Info().Msg("outbox relay stopped")
			return
		case <-ticker.C:
			if err := drainPending(ctx, client, committer, cfg.Outbox.BatchSize, logger); err != nil {
				logger.Error().Err(err).Msg("drain pending outbox events")
			}
		}
	}
}

func drainPending(ctx context.Context, client *spanner.Client, committer *commitplan.SpannerAdapter, limit int64, logger zerolog.Logger) error {
	stmt := spanner.Statement{
		SQL: `SELECT event_id, event_type, aggregate_id, payload
		      FROM outbox_events
		      WHERE status = 'pending'
		      ORDER BY created_at ASC
		      LIMIT @limit`,
		Params: map[string]interface{}{"limit": limit},
	}

	iter := client.Single().Query(ctx, stmt)
	defer iter.Stop()

	plan := commitplan.NewPlan()
	now := time.Now().UTC()
	count := 0

	for {
		row, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return err
		}

		var eventID, eventType, aggregateID, payload string
		if err := row.Columns(&eventID, &eventType, &aggregateID, &payload); err != nil {
			return err
		}

		logger.Info().
			Str("event_id", eventID).
			Str("event_type", eventType).
			Str("aggregate_id", aggregateID).
			RawJSON("payload", []byte(payload)).
			Msg("outbox event")

		plan.Add(m_outbox.MarkProcessedMutation(eventID, now))
		count++
	}

	if plan.IsEmpty() {
		return nil
	}
	if err := committer.Apply(ctx, plan); err != nil {
		return err
	}
	logger.Debug().Int("count", count).Msg("marked outbox events processed")
	return nil
}
