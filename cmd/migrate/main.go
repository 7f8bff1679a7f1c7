package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"time"

	"event-booking/internal/pkg/config"

	"ariga.io/atlas-go-sdk/atlasexec"
)

// migrate brings the database described by DB_* to the schema in migrations/.
// It diffs declaratively, so re-running against an up-to-date database is a no-op.
func main() {
	schemaFile := flag.String("schema", "file://migrations/001_initial_schema.sql", "desired schema")
	devURL := flag.String("dev-url", "docker://postgres/17/dev", "scratch database atlas uses to normalize the schema")
	dryRun := flag.Bool("dry-run", false, "print the planned statements without applying them")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	cfg, err := config.LoadDBConfig()
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	client, err := atlasexec.NewClient(".", "atlas")
	if err != nil {
		logger.Error("failed to initialize atlas client", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	res, err := client.SchemaApply(ctx, &atlasexec.SchemaApplyParams{
		URL:         cfg.BuildDSN(),
		To:          *schemaFile,
		DevURL:      *devURL,
		DryRun:      *dryRun,
		AutoApprove: true,
	})
	if err != nil {
		logger.Error("schema apply failed", "error", err)
		os.Exit(1)
	}

	for _, stmt := range res.Changes.Pending {
		logger.Info("planned", "statement", stmt)
	}
	logger.Info("schema apply finished",
		"applied", len(res.Changes.Applied),
		"pending", len(res.Changes.Pending),
		"dry_run", *dryRun)
}
