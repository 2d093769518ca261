package loadjob

import (
	"context"
	"errors"

	"cloud.google.com/go/bigquery"

	"github.com/JackGrayDPD/load-csv-to-bq/file"
	"github.com/JackGrayDPD/load-csv-to-bq/schema"
)

const (
	// Location is where load jobs run. The parcel tables are kept in London.
	Location = "europe-west2"

	// DefaultSchemaFile is the descriptor path used when none is configured,
	// relative to the working directory.
	DefaultSchemaFile = "schema.json"
)

// Partition is either a time or a range partitioning; never both.
type Partition struct {
	Time  *schema.TimePartition
	Range *schema.RangePartition
}

// Config describes a load job. Loads always append.
type Config struct {
	SourceFormat     bigquery.DataFormat
	SkipLeadingRows  int64
	WriteDisposition bigquery.TableWriteDisposition
	Location         string

	Schema    schema.Schema // nil lets the service detect columns
	Partition *Partition
}

// AutoDetect reports whether the service should infer the columns.
func (c Config) AutoDetect() bool {
	return len(c.Schema) == 0
}

// Builder turns a Request into a Config.
type Builder struct {
	SchemaFile string
	Files      *file.Options
}

func NewBuilder(schemaFile string, opts *file.Options) *Builder {
	if schemaFile == "" {
		schemaFile = DefaultSchemaFile
	}
	return &Builder{SchemaFile: schemaFile, Files: opts}
}

// Build creates the job configuration for r. With SchemaExternal the
// descriptor is read and validated here, so a bad descriptor never reaches
// the service.
func (b *Builder) Build(ctx context.Context, r Request) (Config, error) {
	cfg := Config{
		SourceFormat:     bigquery.CSV,
		SkipLeadingRows:  0,
		WriteDisposition: bigquery.WriteAppend,
		Location:         Location,
	}

	switch r.SchemaMode {
	case SchemaNone:
	case SchemaInline:
		cfg.Schema = schema.Parcels()
	case SchemaExternal:
		d, err := b.descriptor(ctx)
		if err != nil {
			return Config{}, err
		}
		cfg.Schema = d.Schema

		switch r.PartitionMode {
		case PartitionTime:
			if d.TimePartitioning == nil {
				return Config{}, b.descErr(errors.New("timePartitioning not defined"))
			}
			cfg.Partition = &Partition{Time: d.TimePartitioning}
		case PartitionRange:
			if d.RangePartitioning == nil {
				return Config{}, b.descErr(errors.New("rangePartitioning not defined"))
			}
			cfg.Partition = &Partition{Range: d.RangePartitioning}
		}
	}
	return cfg, nil
}

func (b *Builder) descriptor(ctx context.Context) (*schema.Descriptor, error) {
	data, err := file.ReadAll(ctx, b.schemaFile(), b.Files)
	if err != nil {
		return nil, b.descErr(err)
	}
	d, err := schema.ParseDescriptor(data)
	if err != nil {
		return nil, b.descErr(err)
	}
	return d, nil
}

func (b *Builder) schemaFile() string {
	if b.SchemaFile == "" {
		return DefaultSchemaFile
	}
	return b.SchemaFile
}

func (b *Builder) descErr(err error) error {
	return &SchemaDescriptorError{Path: b.schemaFile(), Err: err}
}
