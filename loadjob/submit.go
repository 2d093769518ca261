package loadjob

import (
	"context"
	"fmt"
	"strings"

	"cloud.google.com/go/bigquery"
	"github.com/google/uuid"
	"google.golang.org/api/option"
)

// Table is a destination table within the client's project.
type Table struct {
	Dataset string
	Table   string
}

func (t Table) String() string {
	return t.Dataset + "." + t.Table
}

// Source is the object to load.
type Source struct {
	Bucket string
	File   string
}

// URI returns the gs:// reference of the object.
func (s Source) URI() string {
	return "gs://" + s.Bucket + "/" + strings.TrimLeft(s.File, "/")
}

// Job is one load request ready for submission.
type Job struct {
	ID     string
	Config Config
	Table  Table
	Source Source
}

// NewJobID returns a unique load job ID. Every submission gets its own ID,
// so repeating a load appends the file again instead of being deduplicated.
func NewJobID() string {
	return "bq_append_" + uuid.NewString()
}

// Result is the terminal state of a load job.
type Result struct {
	JobID  string
	Errors []*bigquery.Error

	OutputRows  int64
	OutputBytes int64
}

// Submitter runs a load job and blocks until it reaches a terminal state.
// Errors returned are failures to submit or wait; errors reported by the job
// itself are in Result.Errors.
type Submitter interface {
	Submit(ctx context.Context, job Job) (*Result, error)
}

// ClientConfig configures the BigQuery client.
type ClientConfig struct {
	Project         string // bigquery.DetectProjectID when empty
	CredentialsFile string // application default credentials when empty

	Options []option.ClientOption
}

func (c ClientConfig) clientOptions() []option.ClientOption {
	opts := make([]option.ClientOption, 0, len(c.Options)+1)
	if c.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(c.CredentialsFile))
	}
	return append(opts, c.Options...)
}

// BigQuery submits load jobs with the BigQuery client. The client is
// created on Submit and closed when the job is done.
type BigQuery struct {
	cfg ClientConfig
}

func NewBigQuery(cfg ClientConfig) *BigQuery {
	if cfg.Project == "" {
		cfg.Project = bigquery.DetectProjectID
	}
	return &BigQuery{cfg: cfg}
}

func (b *BigQuery) Submit(ctx context.Context, job Job) (*Result, error) {
	client, err := bigquery.NewClient(ctx, b.cfg.Project, b.cfg.clientOptions()...)
	if err != nil {
		return nil, fmt.Errorf("bigquery client init: %w", err)
	}
	defer client.Close()

	j, err := newLoader(client, job).Run(ctx)
	if err != nil {
		return nil, err
	}
	status, err := j.Wait(ctx)
	if err != nil {
		return nil, err
	}

	r := &Result{
		JobID:  j.ID(),
		Errors: status.Errors,
	}
	// a fatal error is not always repeated in Errors
	if len(r.Errors) == 0 && status.Err() != nil {
		bqErr, ok := status.Err().(*bigquery.Error)
		if !ok {
			bqErr = &bigquery.Error{Message: status.Err().Error()}
		}
		r.Errors = []*bigquery.Error{bqErr}
	}
	if status.Statistics == nil {
		return r, nil
	}
	if sts, ok := status.Statistics.Details.(*bigquery.LoadStatistics); ok {
		r.OutputRows = sts.OutputRows
		r.OutputBytes = sts.OutputBytes
	}
	return r, nil
}

// newLoader maps a Job onto a configured, not yet started, client loader.
func newLoader(client *bigquery.Client, job Job) *bigquery.Loader {
	cfg := job.Config

	ref := bigquery.NewGCSReference(job.Source.URI())
	ref.SourceFormat = cfg.SourceFormat
	ref.SkipLeadingRows = cfg.SkipLeadingRows
	if cfg.AutoDetect() {
		ref.AutoDetect = true
	} else {
		ref.Schema = cfg.Schema.BigQuery()
	}

	loader := client.Dataset(job.Table.Dataset).Table(job.Table.Table).LoaderFrom(ref)
	loader.JobID = job.ID
	loader.Location = cfg.Location
	loader.WriteDisposition = cfg.WriteDisposition
	if p := cfg.Partition; p != nil {
		switch {
		case p.Time != nil:
			loader.TimePartitioning = p.Time.BigQuery()
		case p.Range != nil:
			loader.RangePartitioning = p.Range.BigQuery()
		}
	}
	return loader
}
