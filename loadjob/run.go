// Package loadjob appends a CSV object from Cloud Storage to a BigQuery table.
//
// A run is strictly sequential: resolve the arguments, build the job
// configuration, submit the job and wait for it, then evaluate the result.
// Nothing is retried and no failure is suppressed.
package loadjob

import (
	"context"
	"errors"
	"log"

	"github.com/dustin/go-humanize"
)

// Run performs one load and returns the job ID.
func Run(ctx context.Context, args Args, b *Builder, s Submitter) (string, error) {
	if s == nil {
		return "", errors.New("submitter is required")
	}
	if b == nil {
		b = NewBuilder("", nil)
	}

	req, err := args.Resolve()
	if err != nil {
		return "", err
	}
	cfg, err := b.Build(ctx, req)
	if err != nil {
		return "", err
	}

	job := Job{
		ID:     NewJobID(),
		Config: cfg,
		Table:  req.Table(),
		Source: req.Source(),
	}
	log.Printf("loading %s into %s (job %s, schema %s, partition %s)",
		job.Source.URI(), job.Table, job.ID, req.SchemaMode, req.PartitionMode)

	res, err := s.Submit(ctx, job)
	if err != nil {
		return "", err
	}
	log.Printf("Job %s completed.", res.JobID)

	id, err := Evaluate(res)
	if err != nil {
		return "", err
	}
	log.Printf("%d rows (%s) loaded", res.OutputRows, humanize.Bytes(uint64(res.OutputBytes)))
	return id, nil
}
