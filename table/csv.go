package table

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"time"
)

// ErrNoHeader is returned by ReadCSV for input without a header row.
var ErrNoHeader = errors.New("table: csv has no header row")

// Decimals is the fixed precision WriteCSV uses for numbers.
const Decimals = 6

// dateLayouts are tried in order when inferring DateTime columns.
var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ReadCSV reads a header row and data rows. Each column becomes Numeric if
// every non-empty cell parses as a float, DateTime if every non-empty cell
// parses as a timestamp, and Text otherwise. Empty numeric cells become NaN.
func ReadCSV(r io.Reader) (*Table, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, ErrNoHeader
	}
	if err != nil {
		return nil, fmt.Errorf("table: read csv header: %w", err)
	}

	raw := make([][]string, len(header))
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("table: read csv: %w", err)
		}
		for i := range header {
			raw[i] = append(raw[i], strings.TrimSpace(rec[i]))
		}
	}

	cols := make([]Column, len(header))
	for i, name := range header {
		name = strings.TrimSpace(name)
		if i == 0 {
			name = strings.TrimPrefix(name, "\ufeff")
		}
		cols[i] = inferColumn(name, raw[i])
	}

	return New(cols...)
}

func inferColumn(name string, cells []string) Column {
	if nums, ok := parseNumbers(cells); ok {
		return NumericColumn(name, nums)
	}
	if times, ok := parseTimes(cells); ok {
		return DateTimeColumn(name, times)
	}
	return TextColumn(name, cells)
}

func parseNumbers(cells []string) ([]float64, bool) {
	out := make([]float64, len(cells))
	for i, s := range cells {
		if s == "" {
			out[i] = math.NaN()
			continue
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, false
		}
		out[i] = v
	}
	return out, true
}

func parseTimes(cells []string) ([]time.Time, bool) {
	out := make([]time.Time, len(cells))
	seen := false
	for i, s := range cells {
		if s == "" {
			continue
		}
		ts, ok := parseTime(s)
		if !ok {
			return nil, false
		}
		out[i] = ts
		seen = true
	}
	return out, seen
}

func parseTime(s string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if ts, err := time.Parse(layout, s); err == nil {
			return ts, true
		}
	}
	return time.Time{}, false
}

// RecorderTable builds the recorder layout: a time column followed by
// amp1..ampN, one per channel.
func RecorderTable(times []float64, channels ...[]float64) (*Table, error) {
	cols := make([]Column, 0, len(channels)+1)
	cols = append(cols, NumericColumn("time", times))
	for i, ch := range channels {
		cols = append(cols, NumericColumn(fmt.Sprintf("amp%d", i+1), ch))
	}
	return New(cols...)
}

// WriteCSV writes t with a header row. Numbers use Decimals fixed places,
// DateTime cells use RFC 3339 and missing cells are left empty.
func WriteCSV(w io.Writer, t *Table) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(t.Names()); err != nil {
		return fmt.Errorf("table: write csv header: %w", err)
	}

	row := make([]string, len(t.Columns))
	for i := range t.Rows() {
		for j := range t.Columns {
			row[j] = formatCell(&t.Columns[j], i)
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("table: write csv row %d: %w", i, err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("table: flush csv: %w", err)
	}
	return nil
}

func formatCell(c *Column, i int) string {
	switch c.Kind {
	case Numeric:
		if math.IsNaN(c.Numbers[i]) {
			return ""
		}
		return strconv.FormatFloat(c.Numbers[i], 'f', Decimals, 64)
	case DateTime:
		if c.Times[i].IsZero() {
			return ""
		}
		return c.Times[i].Format(time.RFC3339Nano)
	default:
		return c.Strings[i]
	}
}
