package main

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"time"

	database "cloud.google.com/go/spanner/admin/database/apiv1"
	databasepb "cloud.google.com/go/spanner/admin/database/apiv1/databasepb"
	"github.com/rs/zerolog"

	"github.com/clearlane/warranty-service/internal/config"
)

// A tiny migration helper that applies the DDL in
// migrations/001_initial_schema.sql to a Cloud Spanner database (typically
// the emulator for local dev).
//
// Usage (emulator):
//
//	export SPANNER_EMULATOR_HOST=localhost:9010
//	export WARRANTY_SPANNER_DATABASE=projects/test-project/instances/emulator-instance/databases/test-db
//	go run ./cmd/migrate
func main() {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	cfg := config.Get(logger)
	if cfg.Spanner.Database == "" {
		logger.Fatal().Msg("spanner.database is required (e.g. projects/test-project/instances/emulator-instance/databases/test-db)")
	}

	ddlPath := filepath.Join("migrations", "001_initial_schema.sql")
	stmts, err := readDDLStatements(ddlPath)
	if err != nil {
		logger.Fatal().Err(err).Str("path", ddlPath).Msg("read DDL")
	}
	if len(stmts) == 0 {
		logger.Fatal().Str("path", ddlPath).Msg("no DDL statements found")
	}

	admin, err := database.NewDatabaseAdminClient(ctx)
	if err != nil {
		logger.Fatal().Err(err).Msg("database admin client")
	}
	defer admin.Close()

	op, err := admin.UpdateDatabaseDdl(ctx, &databasepb.UpdateDatabaseDdlRequest{
		Database:   cfg.Spanner.Database,
		Statements: stmts,
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("UpdateDatabaseDdl")
	}
	if err := op.Wait(ctx); err != nil {
		logger.Fatal().Err(err).Msg("UpdateDatabaseDdl wait")
	}

	logger.Info().Int("statements", len(stmts)).Str("database", cfg.Spanner.Database).Msg("schema applied")
}

func readDDLStatements(path string) ([]string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	sql := strings.ReplaceAll(string(b), "\r\n", "\n")

	parts := strings.Split(sql, ";")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		stmt := strings.TrimSpace(p)
		if stmt == "" {
			continue
		}
		out = append(out, stmt)
	}
	return out, nil
}
