// Package schema describes the column layout of a load job's destination table.
//
// A Schema is an ordered list of columns. Order matters: CSV rows are matched
// to columns by position, and an append to an existing table only succeeds
// when name, type, order and nullability match what the table already has.
package schema

import (
	"strings"

	"cloud.google.com/go/bigquery"
)

// FieldType is a column data type as named by BigQuery.
type FieldType string

const (
	Integer  FieldType = "INTEGER"
	String   FieldType = "STRING"
	Numeric  FieldType = "NUMERIC"
	Date     FieldType = "DATE"
	DateTime FieldType = "DATETIME"
	Time     FieldType = "TIME"

	// accepted from descriptors only, the parcel schema never uses them
	Float     FieldType = "FLOAT"
	Boolean   FieldType = "BOOLEAN"
	Timestamp FieldType = "TIMESTAMP"
)

// legacy and standard SQL spellings map onto the same type
var typeAliases = map[string]FieldType{
	"INTEGER":   Integer,
	"INT64":     Integer,
	"STRING":    String,
	"NUMERIC":   Numeric,
	"DATE":      Date,
	"DATETIME":  DateTime,
	"TIME":      Time,
	"FLOAT":     Float,
	"FLOAT64":   Float,
	"BOOLEAN":   Boolean,
	"BOOL":      Boolean,
	"TIMESTAMP": Timestamp,
}

// ParseType returns the FieldType for s (case insensitive).
func ParseType(s string) (FieldType, bool) {
	t, ok := typeAliases[strings.ToUpper(strings.TrimSpace(s))]
	return t, ok
}

// Mode is a column's nullability.
type Mode string

const (
	Required Mode = "REQUIRED"
	Nullable Mode = "NULLABLE"
)

// ParseMode returns the Mode for s. An empty mode is NULLABLE, matching BigQuery.
func ParseMode(s string) (Mode, bool) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "", string(Nullable):
		return Nullable, true
	case string(Required):
		return Required, true
	}
	return "", false
}

// Column is a single column definition.
type Column struct {
	Name string
	Type FieldType
	Mode Mode
}

// Schema is an ordered column list.
type Schema []Column

// Parcels returns the built-in parcel extract schema.
// The result is a copy and safe to modify.
func Parcels() Schema {
	s := make(Schema, len(parcels))
	copy(s, parcels)
	return s
}

// Names lists the column names in order.
func (s Schema) Names() []string {
	names := make([]string, len(s))
	for i, c := range s {
		names[i] = c.Name
	}
	return names
}

// BigQuery converts the schema to the client representation, keeping column order.
func (s Schema) BigQuery() bigquery.Schema {
	if s == nil {
		return nil
	}
	bq := make(bigquery.Schema, len(s))
	for i, c := range s {
		bq[i] = &bigquery.FieldSchema{
			Name:     c.Name,
			Type:     bigquery.FieldType(c.Type),
			Required: c.Mode == Required,
		}
	}
	return bq
}
