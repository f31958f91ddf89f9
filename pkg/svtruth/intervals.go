package svtruth

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"
)

// Interval is one BED feature. Coordinates are half-open, BED style.
type Interval struct {
	Chrom string
	Start int
	End   int
	Name  string
}

// Size returns the event length in bases.
func (iv Interval) Size() int {
	return iv.End - iv.Start
}

// ReadBED parses whitespace-delimited BED features. Only the first four
// columns are read; the name column is optional.
func ReadBED(r io.Reader) ([]Interval, error) {
	var out []Interval
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") || strings.HasPrefix(text, "track") {
			continue
		}
		fields := strings.Fields(text)
		if len(fields) < 3 {
			return nil, fmt.Errorf("svtruth: line %d: expected at least 3 BED columns, got %d", line, len(fields))
		}
		start, err := strconv.Atoi(fields[1])
		if err != nil {
			return nil, fmt.Errorf("svtruth: line %d: start: %w", line, err)
		}
		end, err := strconv.Atoi(fields[2])
		if err != nil {
			return nil, fmt.Errorf("svtruth: line %d: end: %w", line, err)
		}
		iv := Interval{Chrom: fields[0], Start: start, End: end}
		if len(fields) > 3 {
			iv.Name = fields[3]
		}
		out = append(out, iv)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("svtruth: scan BED: %w", err)
	}
	return out, nil
}

// LoadBED reads BED features from a file.
func LoadBED(path string) ([]Interval, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("svtruth: open BED: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()
	return ReadBED(f)
}

// sortIntervals orders features by chromosome, start, then end.
func sortIntervals(ivs []Interval) {
	sort.Slice(ivs, func(i, j int) bool {
		a, b := ivs[i], ivs[j]
		if a.Chrom != b.Chrom {
			return a.Chrom < b.Chrom
		}
		if a.Start != b.Start {
			return a.Start < b.Start
		}
		return a.End < b.End
	})
}

// mergeIntervals sorts and collapses overlapping or book-ended features,
// discarding names.
func mergeIntervals(ivs []Interval) []Interval {
	if len(ivs) == 0 {
		return nil
	}
	sorted := append([]Interval(nil), ivs...)
	sortIntervals(sorted)

	out := []Interval{{Chrom: sorted[0].Chrom, Start: sorted[0].Start, End: sorted[0].End}}
	for _, iv := range sorted[1:] {
		last := &out[len(out)-1]
		if iv.Chrom == last.Chrom && iv.Start <= last.End {
			if iv.End > last.End {
				last.End = iv.End
			}
			continue
		}
		out = append(out, Interval{Chrom: iv.Chrom, Start: iv.Start, End: iv.End})
	}
	return out
}

// overlapsAny reports whether iv overlaps at least one feature in the sorted,
// merged set.
func overlapsAny(iv Interval, merged []Interval) bool {
	idx := sort.Search(len(merged), func(i int) bool {
		if merged[i].Chrom != iv.Chrom {
			return merged[i].Chrom > iv.Chrom
		}
		return merged[i].End > iv.Start
	})
	return idx < len(merged) && merged[idx].Chrom == iv.Chrom && merged[idx].Start < iv.End
}
