package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/ObserveRTC/report-connector/internal/checker"
	"github.com/ObserveRTC/report-connector/internal/config"
	"github.com/ObserveRTC/report-connector/internal/ctxlog"
	"github.com/ObserveRTC/report-connector/internal/entries"
	"github.com/ObserveRTC/report-connector/internal/warehouse"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW    io.Writer
	logger  *slog.Logger
	model   *config.Model
	checker *checker.SchemaChecker
}

// New is the constructor for the main application. A nil client selects the
// production BigQuery REST client configured from the loaded model; tests
// pass a fake. A failure to load the configuration is a fatal startup error
// and panics; the caller recovers it for a clean exit message.
func New(outW io.Writer, appConfig *Config, client warehouse.Client) *App {
	logger := newLogger(appConfig.LogLevel, appConfig.LogFormat, outW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	model, err := config.NewLoader().Load(ctx, appConfig.ConfigPath)
	if err != nil {
		panic(fmt.Errorf("failed to load configuration: %w", err))
	}
	logger.Debug("Configuration loaded.", "projectId", model.ProjectID, "datasetId", model.DatasetID)

	if client == nil {
		client = warehouse.NewBigQuery(warehouse.BigQueryOptions{
			BaseURL:     model.BigQuery.BaseURL,
			AccessToken: model.BigQuery.AccessToken,
		})
	}

	chk := checker.New(client).
		WithProjectID(model.ProjectID).
		WithDatasetID(model.DatasetID).
		WithCreateDatasetIfNotExists(model.CreateDatasetIfNotExists).
		WithCreateTableIfNotExists(model.CreateTableIfNotExists)
	for entryType, table := range model.Tables {
		chk.WithTableName(entryType, table)
	}
	logger.Debug("Schema checker assembled.", "boundTables", len(model.Tables), "entryTypes", len(entries.All()))

	return &App{
		outW:    outW,
		logger:  logger,
		model:   model,
		checker: chk,
	}
}

// Checker returns the application's schema checker. This is primarily for testing.
func (a *App) Checker() *checker.SchemaChecker {
	return a.checker
}
