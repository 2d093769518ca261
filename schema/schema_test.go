package schema

import (
	"errors"
	"testing"

	"cloud.google.com/go/bigquery"
	"github.com/hydronica/trial"
)

func TestParcels(t *testing.T) {
	s := Parcels()
	if len(s) != 441 {
		t.Fatalf("expected 441 columns, got %d", len(s))
	}

	// representative entries, in file order
	checks := map[int]Column{
		0:   {"ParcelKey", Integer, Required},
		3:   {"LoadDate", Date, Nullable},
		4:   {"LastUpdate", DateTime, Nullable},
		5:   {"ParcelBrand", String, Required},
		8:   {"ParcelOfCon", Numeric, Required},
		439: {"FirstCADDate", Date, Nullable},
		440: {"FirstCADTime", Time, Nullable},
	}
	for i, exp := range checks {
		if s[i] != exp {
			t.Errorf("column %d: expected %v got %v", i, exp, s[i])
		}
	}

	// callers get a copy
	s[0].Name = "changed"
	if Parcels()[0].Name != "ParcelKey" {
		t.Error("Parcels should not share its backing array")
	}
}

func TestParcels_Distinct(t *testing.T) {
	seen := make(map[string]bool)
	for _, c := range Parcels() {
		if seen[c.Name] {
			t.Errorf("duplicate column %q", c.Name)
		}
		seen[c.Name] = true
		if _, ok := ParseType(string(c.Type)); !ok {
			t.Errorf("column %q has unknown type %q", c.Name, c.Type)
		}
		if c.Mode != Required && c.Mode != Nullable {
			t.Errorf("column %q has unknown mode %q", c.Name, c.Mode)
		}
	}
}

func TestParseType(t *testing.T) {
	fn := func(s string) (FieldType, error) {
		v, ok := ParseType(s)
		if !ok {
			return "", errors.New("unknown")
		}
		return v, nil
	}
	cases := trial.Cases[string, FieldType]{
		"integer":     {Input: "INTEGER", Expected: Integer},
		"int64 alias": {Input: "int64", Expected: Integer},
		"lower case":  {Input: "numeric", Expected: Numeric},
		"datetime":    {Input: "DATETIME", Expected: DateTime},
		"bool":        {Input: "BOOL", Expected: Boolean},
		"record":      {Input: "RECORD", ShouldErr: true},
		"blank":       {Input: "", ShouldErr: true},
	}
	trial.New(fn, cases).Test(t)
}

func TestParseMode(t *testing.T) {
	fn := func(s string) (Mode, error) {
		v, ok := ParseMode(s)
		if !ok {
			return "", errors.New("unknown")
		}
		return v, nil
	}
	cases := trial.Cases[string, Mode]{
		"required":   {Input: "REQUIRED", Expected: Required},
		"nullable":   {Input: "nullable", Expected: Nullable},
		"default":    {Input: "", Expected: Nullable},
		"repeated":   {Input: "REPEATED", ShouldErr: true},
		"misspelled": {Input: "REQUIERD", ShouldErr: true},
	}
	trial.New(fn, cases).Test(t)
}

func TestSchema_BigQuery(t *testing.T) {
	fn := func(s Schema) (bigquery.Schema, error) {
		return s.BigQuery(), nil
	}
	cases := trial.Cases[Schema, bigquery.Schema]{
		"nil": {
			Input:    nil,
			Expected: nil,
		},
		"ordered": {
			Input: Schema{
				{"b", String, Nullable},
				{"a", Integer, Required},
				{"c", Time, Nullable},
			},
			Expected: bigquery.Schema{
				{Name: "b", Type: bigquery.StringFieldType},
				{Name: "a", Type: bigquery.IntegerFieldType, Required: true},
				{Name: "c", Type: bigquery.TimeFieldType},
			},
		},
	}
	trial.New(fn, cases).Test(t)
}
