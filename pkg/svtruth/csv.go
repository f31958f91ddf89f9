package svtruth

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// WriteSummaryCSV writes the wide evaluation table: one row per
// svtype/size/caller cell with display labels.
func WriteSummaryCSV(w io.Writer, rows []Row) error {
	out := csv.NewWriter(w)
	if err := out.Write([]string{"svtype", "size", "caller", "sensitivity", "precision"}); err != nil {
		return fmt.Errorf("svtruth: write summary header: %w", err)
	}
	for _, row := range rows {
		record := []string{
			row.SVType, row.Size.String(), row.Caller,
			row.Metrics.Sensitivity.Label, row.Metrics.Precision.Label,
		}
		if err := out.Write(record); err != nil {
			return fmt.Errorf("svtruth: write summary row: %w", err)
		}
	}
	out.Flush()
	return out.Error()
}

// WriteLongCSV writes the long-form table with one row per metric, suitable
// for plotting.
func WriteLongCSV(w io.Writer, rows []Row) error {
	out := csv.NewWriter(w)
	if err := out.Write([]string{"svtype", "size", "caller", "metric", "value", "label"}); err != nil {
		return fmt.Errorf("svtruth: write df header: %w", err)
	}
	for _, row := range rows {
		for _, metric := range []struct {
			name string
			stat Stat
		}{
			{"sensitivity", row.Metrics.Sensitivity},
			{"precision", row.Metrics.Precision},
		} {
			record := []string{
				row.SVType, row.Size.String(), row.Caller, metric.name,
				strconv.FormatFloat(metric.stat.Value, 'g', -1, 64), metric.stat.Label,
			}
			if err := out.Write(record); err != nil {
				return fmt.Errorf("svtruth: write df row: %w", err)
			}
		}
	}
	out.Flush()
	return out.Error()
}

// ReadLongCSV loads evaluation rows back from the long-form table written by
// WriteLongCSV, pairing each cell's sensitivity and precision records.
func ReadLongCSV(path string) ([]Row, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("svtruth: open df: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("svtruth: read df: %w", err)
	}

	type cellKey struct {
		svtype, size, caller string
	}
	index := make(map[cellKey]int)
	var rows []Row
	for i, record := range records {
		if i == 0 || len(record) < 6 {
			continue
		}
		key := cellKey{record[0], record[1], record[2]}
		idx, ok := index[key]
		if !ok {
			size, err := parseSizeRange(record[1])
			if err != nil {
				return nil, fmt.Errorf("svtruth: df line %d: %w", i+1, err)
			}
			idx = len(rows)
			index[key] = idx
			rows = append(rows, Row{SVType: record[0], Size: size, Caller: record[2]})
		}

		value, err := strconv.ParseFloat(record[4], 64)
		if err != nil {
			return nil, fmt.Errorf("svtruth: df line %d: value: %w", i+1, err)
		}
		stat := Stat{Label: record[5], Value: value}
		switch record[3] {
		case "sensitivity":
			rows[idx].Metrics.Sensitivity = stat
		case "precision":
			rows[idx].Metrics.Precision = stat
		default:
			return nil, fmt.Errorf("svtruth: df line %d: unknown metric %q", i+1, record[3])
		}
	}
	return rows, nil
}

func parseSizeRange(s string) (SizeRange, error) {
	lo, hi, ok := strings.Cut(s, "-")
	if !ok {
		return SizeRange{}, fmt.Errorf("bad size range %q", s)
	}
	min, err := strconv.Atoi(lo)
	if err != nil {
		return SizeRange{}, fmt.Errorf("bad size range %q: %w", s, err)
	}
	max, err := strconv.Atoi(hi)
	if err != nil {
		return SizeRange{}, fmt.Errorf("bad size range %q: %w", s, err)
	}
	return SizeRange{Min: min, Max: max}, nil
}

// EvaluateToFiles runs Evaluate and writes both CSVs next to the ensemble
// BED, returning their paths. Existing outputs newer than the ensemble are
// left in place.
func EvaluateToFiles(opts Options) (string, string, error) {
	base := splitExtPlus(opts.Ensemble)
	outFile := base + "-validate.csv"
	dfFile := base + "-validate-df.csv"

	if fileUpToDate(outFile, opts.Ensemble) && fileUpToDate(dfFile, opts.Ensemble) {
		return outFile, dfFile, nil
	}

	rows, err := Evaluate(opts)
	if err != nil {
		return "", "", err
	}

	if err := writeFile(outFile, func(w io.Writer) error { return WriteSummaryCSV(w, rows) }); err != nil {
		return "", "", err
	}
	if err := writeFile(dfFile, func(w io.Writer) error { return WriteLongCSV(w, rows) }); err != nil {
		return "", "", err
	}
	return outFile, dfFile, nil
}

func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("svtruth: create %s: %w", path, err)
	}
	if err := write(f); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// splitExtPlus strips the extension, treating compressed suffixes like
// ".bed.gz" as one extension.
func splitExtPlus(path string) string {
	out := strings.TrimSuffix(path, filepath.Ext(path))
	if filepath.Ext(path) == ".gz" {
		out = strings.TrimSuffix(out, filepath.Ext(out))
	}
	return out
}

func fileUpToDate(path, reference string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	ref, err := os.Stat(reference)
	if err != nil {
		return false
	}
	return info.ModTime().After(ref.ModTime())
}
