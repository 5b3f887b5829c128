package warehouse

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"resty.dev/v3"
)

// DefaultBaseURL is the public BigQuery REST API v2 endpoint.
const DefaultBaseURL = "https://bigquery.googleapis.com/bigquery/v2"

// BigQueryOptions configures a BigQuery REST client.
type BigQueryOptions struct {
	// BaseURL overrides the API endpoint, mainly for tests and emulators.
	// Empty means DefaultBaseURL.
	BaseURL string
	// AccessToken is the OAuth2 bearer token attached to every request.
	AccessToken string
	// Timeout bounds each HTTP call. Zero means 30 seconds.
	Timeout time.Duration
}

// BigQuery implements Client against the BigQuery REST API v2.
type BigQuery struct {
	c *resty.Client
}

var _ Client = (*BigQuery)(nil)

// NewBigQuery returns a REST-backed warehouse client.
func NewBigQuery(opts BigQueryOptions) *BigQuery {
	baseURL := opts.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	timeout := opts.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}

	c := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Content-Type", "application/json")
	if opts.AccessToken != "" {
		c.SetAuthToken(opts.AccessToken)
	}
	return &BigQuery{c: c}
}

// Close releases the underlying HTTP resources.
func (b *BigQuery) Close() error {
	b.c.Close()
	return nil
}

// datasetReference mirrors the API's DatasetReference message.
type datasetReference struct {
	ProjectID string `json:"projectId"`
	DatasetID string `json:"datasetId"`
}

// tableReference mirrors the API's TableReference message.
type tableReference struct {
	ProjectID string `json:"projectId"`
	DatasetID string `json:"datasetId"`
	TableID   string `json:"tableId"`
}

type tableFieldSchema struct {
	Name string `json:"name"`
	Type string `json:"type"`
	Mode string `json:"mode"`
}

type tableSchema struct {
	Fields []tableFieldSchema `json:"fields"`
}

// DatasetExists reports whether the dataset is visible through the API.
func (b *BigQuery) DatasetExists(ctx context.Context, project, dataset string) (bool, error) {
	res, err := b.c.R().
		SetContext(ctx).
		SetPathParams(map[string]string{"project": project, "dataset": dataset}).
		Get("/projects/{project}/datasets/{dataset}")
	if err != nil {
		return false, fmt.Errorf("get dataset %s.%s: %w", project, dataset, err)
	}
	if res.IsSuccess() {
		return true, nil
	}
	if res.StatusCode() == http.StatusNotFound {
		return false, nil
	}
	return false, fmt.Errorf("get dataset %s.%s: unexpected status %d: %s", project, dataset, res.StatusCode(), res.String())
}

// CreateDataset issues a datasets.insert call.
func (b *BigQuery) CreateDataset(ctx context.Context, project, dataset string) error {
	body := struct {
		DatasetReference datasetReference `json:"datasetReference"`
	}{
		DatasetReference: datasetReference{ProjectID: project, DatasetID: dataset},
	}

	res, err := b.c.R().
		SetContext(ctx).
		SetPathParam("project", project).
		SetBody(body).
		Post("/projects/{project}/datasets")
	if err != nil {
		return fmt.Errorf("create dataset %s.%s: %w", project, dataset, err)
	}
	if !res.IsSuccess() {
		return fmt.Errorf("create dataset %s.%s: unexpected status %d: %s", project, dataset, res.StatusCode(), res.String())
	}
	return nil
}

// TableExists reports whether the table is visible through the API.
func (b *BigQuery) TableExists(ctx context.Context, project, dataset, table string) (bool, error) {
	res, err := b.c.R().
		SetContext(ctx).
		SetPathParams(map[string]string{"project": project, "dataset": dataset, "table": table}).
		Get("/projects/{project}/datasets/{dataset}/tables/{table}")
	if err != nil {
		return false, fmt.Errorf("get table %s.%s.%s: %w", project, dataset, table, err)
	}
	if res.IsSuccess() {
		return true, nil
	}
	if res.StatusCode() == http.StatusNotFound {
		return false, nil
	}
	return false, fmt.Errorf("get table %s.%s.%s: unexpected status %d: %s", project, dataset, table, res.StatusCode(), res.String())
}

// CreateTable issues a tables.insert call with the given column schema.
func (b *BigQuery) CreateTable(ctx context.Context, project, dataset, table string, schema Schema) error {
	fields := make([]tableFieldSchema, 0, len(schema))
	for _, f := range schema {
		mode := "NULLABLE"
		if f.Required {
			mode = "REQUIRED"
		}
		fields = append(fields, tableFieldSchema{Name: f.Name, Type: string(f.Type), Mode: mode})
	}

	body := struct {
		TableReference tableReference `json:"tableReference"`
		Schema         tableSchema    `json:"schema"`
	}{
		TableReference: tableReference{ProjectID: project, DatasetID: dataset, TableID: table},
		Schema:         tableSchema{Fields: fields},
	}

	res, err := b.c.R().
		SetContext(ctx).
		SetPathParams(map[string]string{"project": project, "dataset": dataset}).
		SetBody(body).
		Post("/projects/{project}/datasets/{dataset}/tables")
	if err != nil {
		return fmt.Errorf("create table %s.%s.%s: %w", project, dataset, table, err)
	}
	if !res.IsSuccess() {
		return fmt.Errorf("create table %s.%s.%s: unexpected status %d: %s", project, dataset, table, res.StatusCode(), res.String())
	}
	return nil
}
