package loadjob

import (
	"fmt"
	"strings"

	"cloud.google.com/go/bigquery"
)

// MissingArgumentError lists required identifiers that were not provided.
type MissingArgumentError struct {
	Fields []string
}

func (e *MissingArgumentError) Error() string {
	return "missing required argument(s): --" + strings.Join(e.Fields, ", --")
}

// ArgumentError is a contradictory or unknown option value.
type ArgumentError struct {
	Msg string
}

func (e *ArgumentError) Error() string {
	return e.Msg
}

// SchemaDescriptorError means the external schema descriptor could not be
// read or is not a valid table definition.
type SchemaDescriptorError struct {
	Path string
	Err  error
}

func (e *SchemaDescriptorError) Error() string {
	return fmt.Sprintf("schema descriptor %s: %v", e.Path, e.Err)
}

func (e *SchemaDescriptorError) Unwrap() error {
	return e.Err
}

// LoadJobError is returned when a load job finished but reported errors.
// Errors is the service's list, unmodified.
type LoadJobError struct {
	JobID  string
	Errors []*bigquery.Error
}

func (e *LoadJobError) Error() string {
	s := make([]string, len(e.Errors))
	for i, err := range e.Errors {
		s[i] = err.Error()
	}
	return fmt.Sprintf("job %s completed with %d error(s): %s", e.JobID, len(e.Errors), strings.Join(s, "; "))
}
