package loadjob

import "errors"

// Evaluate returns the job ID of a clean load. Any reported error fails the
// whole load, even though the service may have written some rows.
func Evaluate(r *Result) (string, error) {
	if r == nil {
		return "", errors.New("no job result")
	}
	if len(r.Errors) > 0 {
		return "", &LoadJobError{JobID: r.JobID, Errors: r.Errors}
	}
	return r.JobID, nil
}
