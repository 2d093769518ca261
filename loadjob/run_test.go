package loadjob

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"cloud.google.com/go/bigquery"
	"github.com/hydronica/trial"
	"github.com/stretchr/testify/assert"
)

// fakeSubmitter records every job and answers with a canned result.
type fakeSubmitter struct {
	jobs   []Job
	errors []*bigquery.Error
	err    error
}

func (f *fakeSubmitter) Submit(_ context.Context, job Job) (*Result, error) {
	f.jobs = append(f.jobs, job)
	if f.err != nil {
		return nil, f.err
	}
	return &Result{JobID: job.ID, Errors: f.errors, OutputRows: 3, OutputBytes: 1024}, nil
}

var baseArgs = Args{DatasetID: "d1", TableID: "t1", BucketName: "b1", FileName: "f.csv"}

func TestRun_Success(t *testing.T) {
	s := &fakeSubmitter{}
	id, err := Run(context.Background(), baseArgs, NewBuilder("", nil), s)
	if err != nil {
		t.Fatal(err)
	}

	if assert.Len(t, s.jobs, 1) {
		job := s.jobs[0]
		assert.Equal(t, job.ID, id)
		assert.Equal(t, bigquery.WriteAppend, job.Config.WriteDisposition)
		assert.Nil(t, job.Config.Schema)
		assert.True(t, job.Config.AutoDetect())
		assert.Equal(t, Table{Dataset: "d1", Table: "t1"}, job.Table)
		assert.Equal(t, "gs://b1/f.csv", job.Source.URI())
	}
}

func TestRun_JobErrors(t *testing.T) {
	reported := []*bigquery.Error{{Reason: "invalid", Message: "bad row"}}
	s := &fakeSubmitter{errors: reported}

	_, err := Run(context.Background(), baseArgs, NewBuilder("", nil), s)
	var jErr *LoadJobError
	if !errors.As(err, &jErr) {
		t.Fatalf("expected LoadJobError got %v", err)
	}
	assert.Equal(t, reported, jErr.Errors)
	assert.Same(t, reported[0], jErr.Errors[0])
	assert.Equal(t, s.jobs[0].ID, jErr.JobID)
}

func TestRun_MissingDescriptor(t *testing.T) {
	s := &fakeSubmitter{}
	args := baseArgs
	args.Schema = true

	_, err := Run(context.Background(), args, NewBuilder(filepath.Join(t.TempDir(), "schema.json"), nil), s)
	var dErr *SchemaDescriptorError
	assert.True(t, errors.As(err, &dErr), "got %v", err)
	assert.Len(t, s.jobs, 0, "submitter must not be called")
}

func TestRun_MissingArgument(t *testing.T) {
	s := &fakeSubmitter{}
	_, err := Run(context.Background(), Args{DatasetID: "d1"}, nil, s)
	var mErr *MissingArgumentError
	assert.True(t, errors.As(err, &mErr), "got %v", err)
	assert.Equal(t, []string{"tableId", "bucketName", "fileName"}, mErr.Fields)
	assert.Len(t, s.jobs, 0)
}

func TestRun_SubmitError(t *testing.T) {
	svcErr := errors.New("googleapi: Error 403: Access Denied")
	s := &fakeSubmitter{err: svcErr}
	_, err := Run(context.Background(), baseArgs, nil, s)
	assert.Same(t, svcErr, err, "service errors are returned unmodified")
}

// repeated loads are separate jobs; nothing is deduplicated
func TestRun_RepeatAppends(t *testing.T) {
	s := &fakeSubmitter{}
	id1, err := Run(context.Background(), baseArgs, nil, s)
	if err != nil {
		t.Fatal(err)
	}
	id2, err := Run(context.Background(), baseArgs, nil, s)
	if err != nil {
		t.Fatal(err)
	}

	assert.NotEqual(t, id1, id2)
	if assert.Len(t, s.jobs, 2) {
		for _, j := range s.jobs {
			assert.Equal(t, bigquery.WriteAppend, j.Config.WriteDisposition)
		}
		assert.Equal(t, s.jobs[0].Table, s.jobs[1].Table)
		assert.Equal(t, s.jobs[0].Source, s.jobs[1].Source)
	}
}

func TestRun_NilSubmitter(t *testing.T) {
	_, err := Run(context.Background(), baseArgs, nil, nil)
	assert.Error(t, err)
}

func TestEvaluate(t *testing.T) {
	fn := func(r *Result) (string, error) {
		return Evaluate(r)
	}
	cases := trial.Cases[*Result, string]{
		"clean": {
			Input:    &Result{JobID: "job_1"},
			Expected: "job_1",
		},
		"empty errors": {
			Input:    &Result{JobID: "job_2", Errors: []*bigquery.Error{}},
			Expected: "job_2",
		},
		"reported errors": {
			Input: &Result{JobID: "job_3", Errors: []*bigquery.Error{
				{Reason: "invalid", Message: "bad row"},
				{Reason: "invalid", Location: "gs://b1/f.csv", Message: "too many columns"},
			}},
			ExpectedErr: errors.New("job job_3 completed with 2 error(s)"),
		},
		"nil": {
			Input:     nil,
			ShouldErr: true,
		},
	}
	trial.New(fn, cases).Test(t)
}
