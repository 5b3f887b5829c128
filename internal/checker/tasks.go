package checker

import (
	"context"
	"fmt"

	"github.com/ObserveRTC/report-connector/internal/ctxlog"
	"github.com/ObserveRTC/report-connector/internal/entries"
	"github.com/ObserveRTC/report-connector/internal/job"
)

// runCreateDataset ensures the configured dataset exists. With the creation
// policy off the task does nothing at all, matching the check-only default.
func (c *SchemaChecker) runCreateDataset(ctx context.Context, _ job.Results) (map[string]any, error) {
	logger := ctxlog.FromContext(ctx)

	if !c.createDatasetIfNotExists {
		return nil, nil
	}
	if c.projectID == "" || c.datasetID == "" {
		logger.Warn("Project or dataset id has not been configured, dataset is not checked.")
		return nil, job.Skip("project or dataset id not configured")
	}

	logger.Info("Checking dataset existence.", "datasetId", c.datasetID, "projectId", c.projectID)
	exists, err := c.client.DatasetExists(ctx, c.projectID, c.datasetID)
	if err != nil {
		return nil, fmt.Errorf("checking dataset %s: %w", c.datasetID, err)
	}
	if exists {
		return map[string]any{"datasetId": c.datasetID, "created": false}, nil
	}

	logger.Info("Dataset does not exist, try to create it.", "datasetId", c.datasetID)
	if err := c.client.CreateDataset(ctx, c.projectID, c.datasetID); err != nil {
		return nil, fmt.Errorf("creating dataset %s: %w", c.datasetID, err)
	}
	logger.Info("Dataset created successfully.", "datasetId", c.datasetID)
	return map[string]any{"datasetId": c.datasetID, "created": true}, nil
}

// runCreateTable returns the task body for one entry type. All thirteen
// table tasks share this logic; only the entry type and its schema differ.
func (c *SchemaChecker) runCreateTable(t entries.Type) job.RunFunc {
	return func(ctx context.Context, _ job.Results) (map[string]any, error) {
		logger := ctxlog.FromContext(ctx)

		table, ok := c.tableNames[t]
		if !ok {
			logger.Warn("Table name for entry type has not been declared.", "entryType", t.String())
			return nil, job.Skip(fmt.Sprintf("no table bound for entry type %s", t))
		}
		if c.projectID == "" || c.datasetID == "" {
			logger.Warn("Project or dataset id has not been configured, table is not checked.", "table", table)
			return nil, job.Skip("project or dataset id not configured")
		}

		logger.Info("Checking table existence.", "table", table, "datasetId", c.datasetID, "projectId", c.projectID)
		exists, err := c.client.TableExists(ctx, c.projectID, c.datasetID, table)
		if err != nil {
			return nil, fmt.Errorf("checking table %s: %w", table, err)
		}
		if exists {
			return map[string]any{"table": table, "created": false}, nil
		}
		if !c.createTableIfNotExists {
			return map[string]any{"table": table, "created": false}, nil
		}

		if err := c.client.CreateTable(ctx, c.projectID, c.datasetID, table, entries.Schema(t)); err != nil {
			return nil, fmt.Errorf("creating table %s: %w", table, err)
		}
		logger.Info("Table created successfully.", "table", table)
		return map[string]any{"table": table, "created": true}, nil
	}
}
