package main

import (
	"context"
	"log"

	tools "github.com/JackGrayDPD/load-csv-to-bq"
	"github.com/JackGrayDPD/load-csv-to-bq/bootstrap"
	"github.com/JackGrayDPD/load-csv-to-bq/loadjob"
)

const (
	appName     = "bq-append"
	description = `append a CSV file in Cloud Storage to a BigQuery table (created if needed)

required
 -datasetId:  dataset of the destination table
 -tableId:    destination table
 -bucketName: bucket holding the file
 -fileName:   object name of the file within the bucket

schema (optional, BigQuery detects the columns when neither is set)
 -inline:     use the built-in parcel schema
 -schema:     read the schema from schema_file (default schema.json)
 -partition:  time|range, apply the partitioning defined in schema_file (requires -schema)

example:
 bq-append -datasetId=reports -tableId=parcels -bucketName=parcel-drop -fileName=parcels.csv -inline`
)

func main() {
	opts := newOptions()
	bootstrap.NewUtility(appName, opts).
		Description(description).
		Version(tools.String()).Initialize()

	_, err := loadjob.Run(context.Background(),
		opts.args(),
		loadjob.NewBuilder(opts.SchemaFile, &opts.File),
		loadjob.NewBigQuery(opts.clientConfig()))
	if err != nil {
		log.Fatal(err)
	}
}
