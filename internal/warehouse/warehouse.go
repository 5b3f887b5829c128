package warehouse

import "context"

// FieldType is the primitive column type of a warehouse table field.
type FieldType string

const (
	TypeString  FieldType = "STRING"
	TypeInteger FieldType = "INTEGER"
	TypeFloat   FieldType = "FLOAT"
	TypeBoolean FieldType = "BOOLEAN"
)

// Field describes one column of a table schema. Required toggles between the
// REQUIRED and NULLABLE column modes.
type Field struct {
	Name     string
	Type     FieldType
	Required bool
}

// Schema is an ordered sequence of fields. Order is part of the contract:
// creation calls submit fields exactly as listed.
type Schema []Field

// Client is the minimal warehouse capability the provisioning tasks invoke.
// Implementations must treat the warehouse's own dataset/table existence as
// ground truth; the job re-checks it idempotently on every run.
type Client interface {
	DatasetExists(ctx context.Context, project, dataset string) (bool, error)
	CreateDataset(ctx context.Context, project, dataset string) error
	TableExists(ctx context.Context, project, dataset, table string) (bool, error)
	CreateTable(ctx context.Context, project, dataset, table string, schema Schema) error
}
