package table

import (
	"errors"
	"fmt"
	"strings"
)

// ErrColumnResolution is returned when a time or amplitude column cannot be
// found.
var ErrColumnResolution = errors.New("table: cannot resolve column")

// Candidate names, matched case-insensitively, in priority order.
var (
	TimeNames      = []string{"time", "t", "timestamp", "sec", "seconds", "ms", "millis", "время", "время (с)"}
	AmplitudeNames = []string{"amp", "amplitude", "value", "signal", "eeg", "ch1", "channel1", "a0", "a0 (в)"}
)

// Roles names the columns chosen for time and amplitude.
type Roles struct {
	Time      string
	Amplitude string
}

// ResolveRoles chooses the time and amplitude columns. An explicit name must
// exist verbatim. An empty name is inferred: time by TimeNames, falling back
// to the first Numeric or DateTime column; amplitude by AmplitudeNames among
// the remaining Numeric columns, falling back to the first of them.
func ResolveRoles(t *Table, timeCol, ampCol string) (Roles, error) {
	var r Roles

	switch {
	case timeCol != "":
		if _, ok := t.Column(timeCol); !ok {
			return Roles{}, fmt.Errorf("%w: time column %q not found", ErrColumnResolution, timeCol)
		}
		r.Time = timeCol
	default:
		r.Time = pick(t.Columns, TimeNames, func(c *Column) bool {
			return c.Kind == Numeric || c.Kind == DateTime
		})
		if r.Time == "" {
			return Roles{}, fmt.Errorf("%w: no time column among %v", ErrColumnResolution, t.Names())
		}
	}

	switch {
	case ampCol != "":
		if _, ok := t.Column(ampCol); !ok {
			return Roles{}, fmt.Errorf("%w: amplitude column %q not found", ErrColumnResolution, ampCol)
		}
		r.Amplitude = ampCol
	default:
		var numeric []Column
		for _, c := range t.Columns {
			if c.Kind == Numeric && c.Name != r.Time {
				numeric = append(numeric, c)
			}
		}
		r.Amplitude = pick(numeric, AmplitudeNames, func(*Column) bool { return true })
		if r.Amplitude == "" {
			return Roles{}, fmt.Errorf("%w: no numeric amplitude column besides %q", ErrColumnResolution, r.Time)
		}
	}

	return r, nil
}

// pick returns the column whose lowered name appears earliest in names,
// else the first column accepted by fallback, else "". Among columns whose
// names differ only by case the last one wins.
func pick(cols []Column, names []string, fallback func(*Column) bool) string {
	lowered := make(map[string]string, len(cols))
	for _, c := range cols {
		lowered[strings.ToLower(c.Name)] = c.Name
	}
	for _, n := range names {
		if name, ok := lowered[n]; ok {
			return name
		}
	}
	for i := range cols {
		if fallback(&cols[i]) {
			return cols[i].Name
		}
	}
	return ""
}
