package schema

import (
	"errors"
	"testing"
	"time"

	"cloud.google.com/go/bigquery"
	"github.com/google/go-cmp/cmp"
	"github.com/hydronica/trial"
)

func TestParseDescriptor(t *testing.T) {
	fn := func(s string) (*Descriptor, error) {
		return ParseDescriptor([]byte(s))
	}
	cases := trial.Cases[string, *Descriptor]{
		"fields only": {
			Input: `{"schema":{"fields":[
				{"name":"id","type":"INTEGER","mode":"REQUIRED"},
				{"name":"note","type":"STRING"}]}}`,
			Expected: &Descriptor{
				Schema: Schema{
					{"id", Integer, Required},
					{"note", String, Nullable},
				},
			},
		},
		"time partitioning": {
			Input: `{"schema":{"fields":[
				{"name":"id","type":"INTEGER","mode":"REQUIRED"},
				{"name":"LoadDate","type":"DATE","mode":"NULLABLE"}]},
				"timePartitioning":{"type":"DAY","field":"LoadDate","expirationMs":"86400000"}}`,
			Expected: &Descriptor{
				Schema: Schema{
					{"id", Integer, Required},
					{"LoadDate", Date, Nullable},
				},
				TimePartitioning: &TimePartition{Type: "DAY", Field: "LoadDate", ExpirationMs: 86400000},
			},
		},
		"ingestion time partitioning": {
			Input: `{"schema":{"fields":[{"name":"id","type":"INTEGER"}]},
				"timePartitioning":{"type":"HOUR"}}`,
			Expected: &Descriptor{
				Schema:           Schema{{"id", Integer, Nullable}},
				TimePartitioning: &TimePartition{Type: "HOUR"},
			},
		},
		"require partition filter": {
			Input: `{"schema":{"fields":[{"name":"d","type":"DATE"}]},
				"timePartitioning":{"type":"DAY","field":"d","requirePartitionFilter":true}}`,
			Expected: &Descriptor{
				Schema:           Schema{{"d", Date, Nullable}},
				TimePartitioning: &TimePartition{Type: "DAY", Field: "d", RequirePartitionFilter: true},
			},
		},
		"range partitioning numbers": {
			Input: `{"schema":{"fields":[{"name":"id","type":"INTEGER","mode":"REQUIRED"}]},
				"rangePartitioning":{"field":"id","range":{"start":0,"end":100,"interval":10}}}`,
			Expected: &Descriptor{
				Schema:            Schema{{"id", Integer, Required}},
				RangePartitioning: rangePartition("id", 0, 100, 10),
			},
		},
		"range partitioning strings": {
			Input: `{"schema":{"fields":[{"name":"id","type":"INT64","mode":"REQUIRED"}]},
				"rangePartitioning":{"field":"id","range":{"start":"-50","end":"50","interval":"5"}}}`,
			Expected: &Descriptor{
				Schema:            Schema{{"id", Integer, Required}},
				RangePartitioning: rangePartition("id", -50, 50, 5),
			},
		},
		"not json": {
			Input:       `name,type,mode`,
			ExpectedErr: errors.New("decode"),
		},
		"missing schema": {
			Input:       `{"fields":[{"name":"id","type":"INTEGER"}]}`,
			ExpectedErr: errors.New("schema.fields is required"),
		},
		"empty fields": {
			Input:       `{"schema":{"fields":[]}}`,
			ExpectedErr: errors.New("schema.fields is empty"),
		},
		"unknown type": {
			Input:       `{"schema":{"fields":[{"name":"id","type":"RECORD"}]}}`,
			ExpectedErr: errors.New(`unsupported type "RECORD"`),
		},
		"unknown mode": {
			Input:       `{"schema":{"fields":[{"name":"id","type":"STRING","mode":"REPEATED"}]}}`,
			ExpectedErr: errors.New(`unsupported mode "REPEATED"`),
		},
		"missing name": {
			Input:       `{"schema":{"fields":[{"type":"STRING"}]}}`,
			ExpectedErr: errors.New("name is required"),
		},
		"duplicate name": {
			Input:       `{"schema":{"fields":[{"name":"id","type":"STRING"},{"name":"id","type":"STRING"}]}}`,
			ExpectedErr: errors.New(`duplicate name "id"`),
		},
		"time field not in schema": {
			Input: `{"schema":{"fields":[{"name":"id","type":"INTEGER"}]},
				"timePartitioning":{"type":"DAY","field":"LoadDate"}}`,
			ExpectedErr: errors.New(`field "LoadDate" not in schema`),
		},
		"time field wrong type": {
			Input: `{"schema":{"fields":[{"name":"id","type":"INTEGER"}]},
				"timePartitioning":{"type":"DAY","field":"id"}}`,
			ExpectedErr: errors.New("want DATE, DATETIME or TIMESTAMP"),
		},
		"expiration overflow": {
			Input: `{"schema":{"fields":[{"name":"d","type":"DATE"}]},
				"timePartitioning":{"type":"DAY","field":"d","expirationMs":"9300000000000"}}`,
			ExpectedErr: errors.New("expirationMs must not exceed 9223372036854"),
		},
		"bad time type": {
			Input: `{"schema":{"fields":[{"name":"d","type":"DATE"}]},
				"timePartitioning":{"type":"WEEK","field":"d"}}`,
			ExpectedErr: errors.New(`unsupported type "WEEK"`),
		},
		"range without interval": {
			Input: `{"schema":{"fields":[{"name":"id","type":"INTEGER"}]},
				"rangePartitioning":{"field":"id","range":{"start":0,"end":100}}}`,
			ExpectedErr: errors.New("interval must be positive"),
		},
		"range inverted": {
			Input: `{"schema":{"fields":[{"name":"id","type":"INTEGER"}]},
				"rangePartitioning":{"field":"id","range":{"start":10,"end":0,"interval":1}}}`,
			ExpectedErr: errors.New("end must be greater than start"),
		},
		"range on string": {
			Input: `{"schema":{"fields":[{"name":"id","type":"STRING"}]},
				"rangePartitioning":{"field":"id","range":{"start":0,"end":10,"interval":1}}}`,
			ExpectedErr: errors.New("want INTEGER"),
		},
		"bad int64": {
			Input: `{"schema":{"fields":[{"name":"id","type":"INTEGER"}]},
				"rangePartitioning":{"field":"id","range":{"start":"zero","end":10,"interval":1}}}`,
			ShouldErr: true,
		},
	}
	trial.New(fn, cases).Test(t)
}

func rangePartition(field string, start, end, interval int64) *RangePartition {
	p := &RangePartition{Field: field}
	p.Range.Start = Int64(start)
	p.Range.End = Int64(end)
	p.Range.Interval = Int64(interval)
	return p
}

func TestPartition_BigQuery(t *testing.T) {
	tp := TimePartition{Type: "day", Field: "LoadDate", ExpirationMs: 3600000, RequirePartitionFilter: true}
	expTime := &bigquery.TimePartitioning{
		Type:                   bigquery.DayPartitioningType,
		Field:                  "LoadDate",
		Expiration:             time.Hour,
		RequirePartitionFilter: true,
	}
	if diff := cmp.Diff(expTime, tp.BigQuery()); diff != "" {
		t.Errorf("time partitioning (-want +got):\n%s", diff)
	}

	rp := rangePartition("id", 0, 1000, 25)
	expRange := &bigquery.RangePartitioning{
		Field: "id",
		Range: &bigquery.RangePartitioningRange{Start: 0, End: 1000, Interval: 25},
	}
	if diff := cmp.Diff(expRange, rp.BigQuery()); diff != "" {
		t.Errorf("range partitioning (-want +got):\n%s", diff)
	}
}
