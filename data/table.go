// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package data

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/parquet-go/parquet-go"
)

// AllPulses disables pulse-number filtering in FromFile.
const AllPulses = -1

// ErrMissingColumn is reported when a table lacks a required column.
var ErrMissingColumn = errors.New("missing required column")

// tableRow is one row of a tabular flux resource. The parquet schema
// is inferred from the struct tags; pulse_number is optional so plain
// time/flux tables load too.
type tableRow struct {
	Time        float64 `parquet:"time"`
	Flux        float64 `parquet:"flux"`
	PulseNumber int64   `parquet:"pulse_number,optional"`
}

// FromFile loads a TimeSeries from a tabular resource with columns
// "time" and "flux" and an optional "pulse_number" column. Files
// ending in .parquet are read as Parquet; anything else is read as
// CSV with a header row.
//
// Rows are sorted by time after loading. If pulseNumber is not
// AllPulses, only rows whose pulse_number equals it are kept; an
// empty result is a valid degenerate series.
func FromFile(path string, pulseNumber int) (*TimeSeries, error) {
	var rows []tableRow
	var err error
	if filepath.Ext(path) == ".parquet" {
		rows, err = parquet.ReadFile[tableRow](path)
	} else {
		rows, err = readCSV(path)
	}
	if err != nil {
		return nil, err
	}
	return fromRows(rows, pulseNumber)
}

func fromRows(rows []tableRow, pulseNumber int) (*TimeSeries, error) {
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].Time < rows[j].Time })

	time := make([]float64, 0, len(rows))
	flux := make([]float64, 0, len(rows))
	for _, r := range rows {
		if pulseNumber != AllPulses && r.PulseNumber != int64(pulseNumber) {
			continue
		}
		time = append(time, r.Time)
		flux = append(flux, r.Flux)
	}
	return FromValues(time, flux)
}

func readCSV(path string) ([]tableRow, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("data: reading %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("data: %s has no header row", path)
	}

	// Columns may appear in any order; the header names them.
	timeCol, fluxCol, pulseCol := -1, -1, -1
	for i, name := range records[0] {
		switch strings.TrimSpace(name) {
		case "time":
			timeCol = i
		case "flux":
			fluxCol = i
		case "pulse_number":
			pulseCol = i
		}
	}
	if timeCol < 0 {
		return nil, fmt.Errorf("data: %s: %w: time", path, ErrMissingColumn)
	}
	if fluxCol < 0 {
		return nil, fmt.Errorf("data: %s: %w: flux", path, ErrMissingColumn)
	}

	rows := make([]tableRow, 0, len(records)-1)
	for i, rec := range records[1:] {
		var row tableRow
		row.Time, err = strconv.ParseFloat(strings.TrimSpace(rec[timeCol]), 64)
		if err != nil {
			return nil, fmt.Errorf("data: %s row %d: bad time: %w", path, i+1, err)
		}
		row.Flux, err = strconv.ParseFloat(strings.TrimSpace(rec[fluxCol]), 64)
		if err != nil {
			return nil, fmt.Errorf("data: %s row %d: bad flux: %w", path, i+1, err)
		}
		if pulseCol >= 0 {
			row.PulseNumber, err = strconv.ParseInt(strings.TrimSpace(rec[pulseCol]), 10, 64)
			if err != nil {
				return nil, fmt.Errorf("data: %s row %d: bad pulse_number: %w", path, i+1, err)
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}
