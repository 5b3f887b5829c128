// Package config loads the connector configuration from an HCL file and
// exposes it as a format-agnostic model the rest of the application consumes.
package config

import (
	"github.com/ObserveRTC/report-connector/internal/entries"
)

// Model is the unified representation of the connector configuration.
type Model struct {
	ProjectID string
	DatasetID string

	// Creation policy. Both default false: the job only checks existence
	// and never mutates the warehouse.
	CreateDatasetIfNotExists bool
	CreateTableIfNotExists   bool

	// HealthcheckPort enables the HTTP health endpoint when positive.
	HealthcheckPort int

	BigQuery BigQuery

	// Tables binds entry types to warehouse table names. Entry types with
	// no binding are skipped by the provisioning job.
	Tables map[entries.Type]string
}

// BigQuery holds the REST client settings.
type BigQuery struct {
	// BaseURL overrides the API endpoint; empty selects the public one.
	BaseURL string
	// AccessToken is the OAuth2 bearer token. Config files typically pull
	// it from the environment: access_token = env.BIGQUERY_ACCESS_TOKEN.
	AccessToken string
}
