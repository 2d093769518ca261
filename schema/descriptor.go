package schema

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"cloud.google.com/go/bigquery"
	"github.com/jbsmith7741/go-tools/appenderr"
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Descriptor is a table definition kept outside the binary, in the same shape
// `bq show --format=prettyjson` prints:
//
//	{
//	  "schema": {"fields": [{"name": "id", "type": "INTEGER", "mode": "REQUIRED"}]},
//	  "timePartitioning": {"type": "DAY", "field": "LoadDate"},
//	  "rangePartitioning": {"field": "id", "range": {"start": "0", "end": "100", "interval": "10"}}
//	}
type Descriptor struct {
	Schema            Schema
	TimePartitioning  *TimePartition
	RangePartitioning *RangePartition
}

// TimePartition segments a table by a date/time column (or by ingestion time when Field is empty).
type TimePartition struct {
	Type                   string `json:"type"`
	Field                  string `json:"field"`
	ExpirationMs           Int64  `json:"expirationMs"`
	RequirePartitionFilter bool   `json:"requirePartitionFilter"`
}

// maxExpirationMs is the largest expiration a time.Duration can hold.
const maxExpirationMs Int64 = math.MaxInt64 / Int64(time.Millisecond)

// BigQuery converts to the client representation.
func (p TimePartition) BigQuery() *bigquery.TimePartitioning {
	return &bigquery.TimePartitioning{
		Type:       bigquery.TimePartitioningType(strings.ToUpper(p.Type)),
		Field:      p.Field,
		Expiration: time.Duration(p.ExpirationMs) * time.Millisecond,

		RequirePartitionFilter: p.RequirePartitionFilter,
	}
}

// RangePartition segments a table by an integer column in [Start, End) buckets of Interval.
type RangePartition struct {
	Field string `json:"field"`
	Range struct {
		Start    Int64 `json:"start"`
		End      Int64 `json:"end"`
		Interval Int64 `json:"interval"`
	} `json:"range"`
}

// BigQuery converts to the client representation.
func (p RangePartition) BigQuery() *bigquery.RangePartitioning {
	return &bigquery.RangePartitioning{
		Field: p.Field,
		Range: &bigquery.RangePartitioningRange{
			Start:    int64(p.Range.Start),
			End:      int64(p.Range.End),
			Interval: int64(p.Range.Interval),
		},
	}
}

// Int64 decodes from a JSON number or a quoted number.
// The BigQuery REST API writes int64 values as strings.
type Int64 int64

func (i *Int64) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		*i = 0
		return nil
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid int64 %s", b)
	}
	*i = Int64(v)
	return nil
}

type rawField struct {
	Name string `json:"name"`
	Type string `json:"type"`
	Mode string `json:"mode"`
}

type rawDescriptor struct {
	Schema *struct {
		Fields []rawField `json:"fields"`
	} `json:"schema"`
	TimePartitioning  *TimePartition  `json:"timePartitioning"`
	RangePartitioning *RangePartition `json:"rangePartitioning"`
}

var timePartitionTypes = map[string]bool{"": true, "HOUR": true, "DAY": true, "MONTH": true, "YEAR": true}

// ParseDescriptor decodes and validates a descriptor. Every problem found
// is reported in the returned error, not only the first.
func ParseDescriptor(b []byte) (*Descriptor, error) {
	var raw rawDescriptor
	if err := json.Unmarshal(b, &raw); err != nil {
		return nil, errors.Wrap(err, "decode")
	}
	if raw.Schema == nil {
		return nil, errors.New("schema.fields is required")
	}
	if len(raw.Schema.Fields) == 0 {
		return nil, errors.New("schema.fields is empty")
	}

	errs := appenderr.New()
	d := &Descriptor{
		Schema:            make(Schema, 0, len(raw.Schema.Fields)),
		TimePartitioning:  raw.TimePartitioning,
		RangePartitioning: raw.RangePartitioning,
	}
	types := make(map[string]FieldType)
	for i, f := range raw.Schema.Fields {
		if f.Name == "" {
			errs.Add(fmt.Errorf("field %d: name is required", i))
			continue
		}
		if _, dup := types[f.Name]; dup {
			errs.Add(fmt.Errorf("field %d: duplicate name %q", i, f.Name))
		}
		t, ok := ParseType(f.Type)
		if !ok {
			errs.Add(fmt.Errorf("field %q: unsupported type %q", f.Name, f.Type))
		}
		m, ok := ParseMode(f.Mode)
		if !ok {
			errs.Add(fmt.Errorf("field %q: unsupported mode %q", f.Name, f.Mode))
		}
		types[f.Name] = t
		d.Schema = append(d.Schema, Column{Name: f.Name, Type: t, Mode: m})
	}

	if p := d.TimePartitioning; p != nil {
		if !timePartitionTypes[strings.ToUpper(p.Type)] {
			errs.Add(fmt.Errorf("timePartitioning: unsupported type %q", p.Type))
		}
		if p.Field != "" {
			switch t, ok := types[p.Field]; {
			case !ok:
				errs.Add(fmt.Errorf("timePartitioning: field %q not in schema", p.Field))
			case t != Date && t != DateTime && t != Timestamp:
				errs.Add(fmt.Errorf("timePartitioning: field %q is %s, want DATE, DATETIME or TIMESTAMP", p.Field, t))
			}
		}
		if p.ExpirationMs < 0 {
			errs.Add(errors.New("timePartitioning: expirationMs must not be negative"))
		} else if p.ExpirationMs > maxExpirationMs {
			errs.Add(fmt.Errorf("timePartitioning: expirationMs must not exceed %d", maxExpirationMs))
		}
	}

	if p := d.RangePartitioning; p != nil {
		switch t, ok := types[p.Field]; {
		case p.Field == "":
			errs.Add(errors.New("rangePartitioning: field is required"))
		case !ok:
			errs.Add(fmt.Errorf("rangePartitioning: field %q not in schema", p.Field))
		case t != Integer:
			errs.Add(fmt.Errorf("rangePartitioning: field %q is %s, want INTEGER", p.Field, t))
		}
		if p.Range.Interval <= 0 {
			errs.Add(errors.New("rangePartitioning: interval must be positive"))
		}
		if p.Range.End <= p.Range.Start {
			errs.Add(errors.New("rangePartitioning: end must be greater than start"))
		}
	}

	if err := errs.ErrOrNil(); err != nil {
		return nil, err
	}
	return d, nil
}
