// Package warehouse defines the analytical warehouse capability the
// provisioning job consumes: per-resource existence checks and creation
// calls, plus the column schema value types those calls carry. The package
// also ships a production client speaking the BigQuery REST API v2.
package warehouse
