// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"

	"cloudeng.io/jewishcal"
	"github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"
	"gopkg.in/yaml.v3"
)

// printer writes results as json, yaml or text.
type printer struct {
	out    io.Writer
	format string
}

func newPrinter(out io.Writer, format string) (*printer, error) {
	switch format {
	case "", "text":
		format = "text"
	case "json", "yaml":
	default:
		return nil, fmt.Errorf("unsupported output format %q: use text, json or yaml", format)
	}
	return &printer{out: out, format: format}, nil
}

// print writes v in the configured format, text is used to render
// the text format.
func (p *printer) print(v any, text func(w io.Writer) error) error {
	switch p.format {
	case "json":
		enc := jsontext.NewEncoder(p.out, jsontext.WithIndent("  "))
		return json.MarshalEncode(enc, v)
	case "yaml":
		enc := yaml.NewEncoder(p.out)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	}
	return text(p.out)
}

type dateRecord struct {
	SDN        int64  `json:"sdn" yaml:"sdn"`
	Weekday    string `json:"weekday" yaml:"weekday"`
	Gregorian  string `json:"gregorian" yaml:"gregorian"`
	Hebrew     string `json:"hebrew" yaml:"hebrew"`
	HebrewText string `json:"hebrew_text" yaml:"hebrew_text"`
}

func newDateRecord(d jewishcal.Date) dateRecord {
	return dateRecord{
		SDN:        int64(d.Day),
		Weekday:    d.Weekday().String(),
		Gregorian:  d.Gregorian.String(),
		Hebrew:     d.Hebrew.String(),
		HebrewText: d.Hebrew.HebrewString(),
	}
}

func (r dateRecord) String() string {
	return fmt.Sprintf("%-9s %v  %v  %v", r.Weekday, r.Gregorian, r.Hebrew, r.HebrewText)
}

func printDates(p *printer, records []dateRecord) error {
	return p.print(records, func(w io.Writer) error {
		for _, r := range records {
			if _, err := fmt.Fprintln(w, r); err != nil {
				return err
			}
		}
		return nil
	})
}
