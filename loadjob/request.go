package loadjob

import (
	"fmt"
	"strings"
)

// SchemaMode selects where the load job's column definitions come from.
type SchemaMode int

const (
	SchemaNone     SchemaMode = iota // service infers columns from the file
	SchemaInline                     // built-in parcel schema
	SchemaExternal                   // descriptor file
)

func (m SchemaMode) String() string {
	switch m {
	case SchemaInline:
		return "inline"
	case SchemaExternal:
		return "external"
	}
	return "none"
}

// PartitionMode selects which partitioning block of the descriptor is applied.
type PartitionMode int

const (
	PartitionNone PartitionMode = iota
	PartitionTime
	PartitionRange
)

func (m PartitionMode) String() string {
	switch m {
	case PartitionTime:
		return "time"
	case PartitionRange:
		return "range"
	}
	return "none"
}

// ParsePartitionMode accepts "", "time" or "range".
func ParsePartitionMode(s string) (PartitionMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return PartitionNone, nil
	case "time":
		return PartitionTime, nil
	case "range":
		return PartitionRange, nil
	}
	return PartitionNone, &ArgumentError{Msg: fmt.Sprintf("invalid partition %q (time|range)", s)}
}

// Args are the raw command line values.
type Args struct {
	DatasetID  string
	TableID    string
	BucketName string
	FileName   string

	Schema    bool   // use the external descriptor
	Inline    bool   // use the built-in parcel schema
	Partition string // time|range, requires Schema
}

// Request is a validated load request.
type Request struct {
	DatasetID  string
	TableID    string
	BucketName string
	FileName   string

	SchemaMode    SchemaMode
	PartitionMode PartitionMode
}

// Resolve validates the arguments. Missing identifiers are reported
// together in a *MissingArgumentError before any other check.
func (a Args) Resolve() (Request, error) {
	missing := make([]string, 0)
	for _, f := range []struct{ name, v string }{
		{"datasetId", a.DatasetID},
		{"tableId", a.TableID},
		{"bucketName", a.BucketName},
		{"fileName", a.FileName},
	} {
		if strings.TrimSpace(f.v) == "" {
			missing = append(missing, f.name)
		}
	}
	if len(missing) > 0 {
		return Request{}, &MissingArgumentError{Fields: missing}
	}

	if a.Schema && a.Inline {
		return Request{}, &ArgumentError{Msg: "schema and inline options must be selected independently"}
	}
	pMode, err := ParsePartitionMode(a.Partition)
	if err != nil {
		return Request{}, err
	}
	if pMode != PartitionNone && !a.Schema {
		return Request{}, &ArgumentError{Msg: "partition requires the schema descriptor (--schema)"}
	}

	r := Request{
		DatasetID:     a.DatasetID,
		TableID:       a.TableID,
		BucketName:    a.BucketName,
		FileName:      a.FileName,
		PartitionMode: pMode,
	}
	switch {
	case a.Schema:
		r.SchemaMode = SchemaExternal
	case a.Inline:
		r.SchemaMode = SchemaInline
	}
	return r, nil
}

// Table is the destination table reference.
func (r Request) Table() Table {
	return Table{Dataset: r.DatasetID, Table: r.TableID}
}

// Source is the storage object reference.
func (r Request) Source() Source {
	return Source{Bucket: r.BucketName, File: r.FileName}
}
