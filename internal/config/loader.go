package config

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"

	"github.com/ObserveRTC/report-connector/internal/ctxlog"
	"github.com/ObserveRTC/report-connector/internal/entries"
)

// fileConfig is the HCL-facing schema of a connector config file.
type fileConfig struct {
	ProjectID                string          `hcl:"project_id,optional"`
	DatasetID                string          `hcl:"dataset_id,optional"`
	CreateDatasetIfNotExists bool            `hcl:"create_dataset_if_not_exists,optional"`
	CreateTableIfNotExists   bool            `hcl:"create_table_if_not_exists,optional"`
	HealthcheckPort          int             `hcl:"healthcheck_port,optional"`
	BigQuery                 *bigqueryConfig `hcl:"bigquery,block"`
	Tables                   []tableConfig   `hcl:"table,block"`
}

type bigqueryConfig struct {
	BaseURL     string `hcl:"base_url,optional"`
	AccessToken string `hcl:"access_token,optional"`
}

type tableConfig struct {
	EntryType string `hcl:"entry_type,label"`
	Name      string `hcl:"name"`
}

// Loader reads connector config files.
type Loader struct {
	parser *hclparse.Parser
}

// NewLoader returns a Loader with a fresh HCL parser.
func NewLoader() *Loader {
	return &Loader{parser: hclparse.NewParser()}
}

// Load parses the HCL file at path and translates it into a Model. Unknown
// entry types and duplicate table bindings are configuration errors.
func (l *Loader) Load(ctx context.Context, path string) (*Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Loading connector configuration.", "path", path)

	file, diags := l.parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("parsing %s: %s", path, diags.Error())
	}

	var raw fileConfig
	if diags := gohcl.DecodeBody(file.Body, evalContext(), &raw); diags.HasErrors() {
		return nil, fmt.Errorf("decoding %s: %s", path, diags.Error())
	}

	model := &Model{
		ProjectID:                raw.ProjectID,
		DatasetID:                raw.DatasetID,
		CreateDatasetIfNotExists: raw.CreateDatasetIfNotExists,
		CreateTableIfNotExists:   raw.CreateTableIfNotExists,
		HealthcheckPort:          raw.HealthcheckPort,
		Tables:                   make(map[entries.Type]string, len(raw.Tables)),
	}
	if raw.BigQuery != nil {
		model.BigQuery = BigQuery{BaseURL: raw.BigQuery.BaseURL, AccessToken: raw.BigQuery.AccessToken}
	}

	for _, t := range raw.Tables {
		entryType, err := entries.Parse(t.EntryType)
		if err != nil {
			return nil, fmt.Errorf("table block in %s: %w", path, err)
		}
		if _, ok := model.Tables[entryType]; ok {
			return nil, fmt.Errorf("table block in %s: entry type %s bound twice", path, entryType)
		}
		if t.Name == "" {
			return nil, fmt.Errorf("table block in %s: entry type %s has an empty table name", path, entryType)
		}
		model.Tables[entryType] = t.Name
	}

	logger.Debug("Configuration loaded.", "tables", len(model.Tables))
	return model, nil
}

// evalContext exposes the process environment to config expressions as the
// `env` object, so secrets stay out of the file itself.
func evalContext() *hcl.EvalContext {
	vars := make(map[string]cty.Value)
	for _, kv := range os.Environ() {
		k, v, ok := strings.Cut(kv, "=")
		if !ok || k == "" {
			continue
		}
		vars[k] = cty.StringVal(v)
	}
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{"env": cty.ObjectVal(vars)},
	}
}
