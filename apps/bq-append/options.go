package main

import (
	"errors"

	"github.com/jbsmith7741/go-tools/appenderr"

	"github.com/JackGrayDPD/load-csv-to-bq/file"
	"github.com/JackGrayDPD/load-csv-to-bq/loadjob"
)

type options struct {
	DatasetID  string `toml:"dataset_id" flag:"datasetId" env:"DATASET_ID" comment:"dataset of the destination table"`
	TableID    string `toml:"table_id" flag:"tableId" env:"TABLE_ID" comment:"destination table"`
	BucketName string `toml:"bucket_name" flag:"bucketName" env:"BUCKET_NAME" comment:"bucket holding the csv file"`
	FileName   string `toml:"file_name" flag:"fileName" env:"FILE_NAME" comment:"object name of the csv file"`

	Schema    bool   `toml:"schema" flag:"schema" env:"SCHEMA" comment:"read the table schema from schema_file"`
	Inline    bool   `toml:"inline" flag:"inline" env:"INLINE" comment:"use the built-in parcel schema"`
	Partition string `toml:"partition" flag:"partition" env:"PARTITION" comment:"time|range partitioning from schema_file"`

	Project    string `toml:"project" flag:"project" env:"GOOGLE_CLOUD_PROJECT" comment:"project running the load job (detected from credentials when blank)"`
	BqAuth     string `toml:"bq_auth" flag:"bq_auth" env:"BQ_AUTH" comment:"file path to service file"`
	SchemaFile string `toml:"schema_file" flag:"schema_file" env:"SCHEMA_FILE" comment:"schema descriptor path (local, gs://, s3://)"`

	File file.Options `toml:"file" flag:"-"`
}

func newOptions() *options {
	return &options{
		SchemaFile: loadjob.DefaultSchemaFile,
		File:       *file.NewOptions(),
	}
}

// Validate checks the options that are not load arguments. Missing load
// arguments are reported by loadjob so they are all named together.
func (o *options) Validate() error {
	errs := appenderr.New()
	if (o.File.AccessKey == "") != (o.File.SecretKey == "") {
		errs.Add(errors.New("file access_key and secret_key must be set together"))
	}
	if o.Schema && o.SchemaFile == "" {
		errs.Add(errors.New("schema_file is required with -schema"))
	}
	return errs.ErrOrNil()
}

func (o *options) args() loadjob.Args {
	return loadjob.Args{
		DatasetID:  o.DatasetID,
		TableID:    o.TableID,
		BucketName: o.BucketName,
		FileName:   o.FileName,
		Schema:     o.Schema,
		Inline:     o.Inline,
		Partition:  o.Partition,
	}
}

func (o *options) clientConfig() loadjob.ClientConfig {
	return loadjob.ClientConfig{
		Project:         o.Project,
		CredentialsFile: o.BqAuth,
	}
}
