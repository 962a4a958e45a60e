package results

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"
)

// Load reads a benchmark results CSV and returns its rows keyed by column
// name. It fails if any required column is missing from the header.
func Load(path string) ([]Row, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open csv: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1 // ragged rows are dropped below, not fatal

	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("read csv header: %w", err)
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}

	if missing := missingColumns(header); len(missing) > 0 {
		return nil, fmt.Errorf("CSV missing columns: %v", missing)
	}

	var rows []Row
	for {
		fields, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv: %w", err)
		}
		if len(fields) < len(header) {
			continue
		}
		row := make(Row, len(header))
		for i, name := range header {
			row[name] = fields[i]
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func missingColumns(header []string) []string {
	present := make(map[string]bool, len(header))
	for _, h := range header {
		present[h] = true
	}
	var missing []string
	for _, c := range requiredColumns {
		if !present[c] {
			missing = append(missing, c)
		}
	}
	sort.Strings(missing)
	return missing
}

// FilterTools keeps only rows belonging to the two benchmarked tools. It is
// an error for no rows to survive: the CSV is then for some other comparison
// entirely.
func FilterTools(rows []Row) ([]Row, error) {
	var kept []Row
	for _, row := range rows {
		if tool := row["tool"]; tool == ToolEGAFetch || tool == ToolPyEGA3 {
			kept = append(kept, row)
		}
	}
	if len(kept) == 0 {
		return nil, fmt.Errorf("no rows found for tools: %s, %s", ToolEGAFetch, ToolPyEGA3)
	}
	return kept, nil
}

// FilterSuccess keeps rows whose exit_code is zero. Unparseable exit codes
// count as failures.
func FilterSuccess(rows []Row) []Row {
	var kept []Row
	for _, row := range rows {
		code, err := strconv.ParseFloat(strings.TrimSpace(row["exit_code"]), 64)
		if err == nil && code == 0 {
			kept = append(kept, row)
		}
	}
	return kept
}

// Normalize coerces run and elapsed_seconds to numbers and derives elapsed
// minutes. Rows where either coercion fails are dropped as missing data.
func Normalize(rows []Row) []Record {
	var recs []Record
	for _, row := range rows {
		run, err := strconv.ParseFloat(strings.TrimSpace(row["run"]), 64)
		if err != nil {
			continue
		}
		secs, err := strconv.ParseFloat(strings.TrimSpace(row["elapsed_seconds"]), 64)
		if err != nil {
			continue
		}
		rec := Record{
			Timestamp:      row["timestamp"],
			Run:            int(run),
			Tool:           row["tool"],
			TargetID:       row["target_id"],
			ElapsedSeconds: secs,
			ElapsedMinutes: secs / 60.0,
			Notes:          row["notes"],
		}
		if code, err := strconv.ParseFloat(strings.TrimSpace(row["exit_code"]), 64); err == nil {
			rec.ExitCode = int(code)
		} else {
			rec.ExitCode = -1
		}
		recs = append(recs, rec)
	}
	return recs
}

// LoadRecords runs the full ingest pipeline: load, tool filter, optional
// success filter, numeric normalization.
func LoadRecords(path string, onlySuccess bool) ([]Record, error) {
	rows, err := Load(path)
	if err != nil {
		return nil, err
	}
	rows, err = FilterTools(rows)
	if err != nil {
		return nil, err
	}
	if onlySuccess {
		rows = FilterSuccess(rows)
	}
	return Normalize(rows), nil
}

// Targets returns the distinct target IDs in rec order-independent sorted
// form.
func Targets(recs []Record) []string {
	seen := make(map[string]bool)
	var targets []string
	for _, rec := range recs {
		if !seen[rec.TargetID] {
			seen[rec.TargetID] = true
			targets = append(targets, rec.TargetID)
		}
	}
	sort.Strings(targets)
	return targets
}

// ForTarget returns the records belonging to one target, preserving input
// order.
func ForTarget(recs []Record, targetID string) []Record {
	var out []Record
	for _, rec := range recs {
		if rec.TargetID == targetID {
			out = append(out, rec)
		}
	}
	return out
}
