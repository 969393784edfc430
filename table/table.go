package table

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// ErrRaggedColumns is returned when columns of different lengths are
// combined into one table.
var ErrRaggedColumns = errors.New("table: columns differ in length")

// Kind is the inferred type of a column.
type Kind int

const (
	Text Kind = iota
	Numeric
	DateTime
)

func (k Kind) String() string {
	switch k {
	case Numeric:
		return "numeric"
	case DateTime:
		return "datetime"
	default:
		return "text"
	}
}

// Column is one named column. Exactly one of Numbers, Times or Strings is
// populated, matching Kind.
type Column struct {
	Name    string
	Kind    Kind
	Numbers []float64
	Times   []time.Time // zero Time marks a missing cell
	Strings []string
}

// NumericColumn builds a Numeric column. NaN marks a missing cell.
func NumericColumn(name string, values []float64) Column {
	return Column{Name: name, Kind: Numeric, Numbers: values}
}

// DateTimeColumn builds a DateTime column.
func DateTimeColumn(name string, values []time.Time) Column {
	return Column{Name: name, Kind: DateTime, Times: values}
}

// TextColumn builds a Text column.
func TextColumn(name string, values []string) Column {
	return Column{Name: name, Kind: Text, Strings: values}
}

// Len returns the number of cells.
func (c *Column) Len() int {
	switch c.Kind {
	case Numeric:
		return len(c.Numbers)
	case DateTime:
		return len(c.Times)
	default:
		return len(c.Strings)
	}
}

// Float coerces cell i to a number. Text that does not parse yields NaN and
// DateTime cells yield Unix seconds.
func (c *Column) Float(i int) float64 {
	switch c.Kind {
	case Numeric:
		return c.Numbers[i]
	case DateTime:
		if c.Times[i].IsZero() {
			return math.NaN()
		}
		return float64(c.Times[i].UnixNano()) / 1e9
	default:
		v, err := strconv.ParseFloat(strings.TrimSpace(c.Strings[i]), 64)
		if err != nil {
			return math.NaN()
		}
		return v
	}
}

// Table is an ordered set of equal-length columns.
type Table struct {
	Columns []Column
}

// New assembles a table, checking that every column has the same length.
func New(cols ...Column) (*Table, error) {
	for i := 1; i < len(cols); i++ {
		if cols[i].Len() != cols[0].Len() {
			return nil, fmt.Errorf("%w: %q has %d rows, %q has %d",
				ErrRaggedColumns, cols[0].Name, cols[0].Len(), cols[i].Name, cols[i].Len())
		}
	}
	return &Table{Columns: cols}, nil
}

// FromSamples builds a two-column numeric table named time and amp.
func FromSamples(times, amps []float64) (*Table, error) {
	return New(NumericColumn("time", times), NumericColumn("amp", amps))
}

// Rows returns the number of rows.
func (t *Table) Rows() int {
	if len(t.Columns) == 0 {
		return 0
	}
	return t.Columns[0].Len()
}

// Column returns the column with exactly this name.
func (t *Table) Column(name string) (*Column, bool) {
	for i := range t.Columns {
		if t.Columns[i].Name == name {
			return &t.Columns[i], true
		}
	}
	return nil, false
}

// Names lists column names in order.
func (t *Table) Names() []string {
	names := make([]string, len(t.Columns))
	for i := range t.Columns {
		names[i] = t.Columns[i].Name
	}
	return names
}
