package table

import (
	"math"
	"strconv"
	"strings"
)

// Kind describes the state of a Cell.
type Kind int

const (
	// Absent means no source had a value for the cell.
	Absent Kind = iota
	// Number is a numeric value, a score or a derived metric.
	Number
	// Text is a string value, such as an identity field or a letter grade.
	Text
	// NotApplicable marks an item that is not assigned yet.
	NotApplicable
	// Unattainable marks a computed target that cannot be reached.
	Unattainable
)

const (
	// UnattainableMark is the literal used to serialize Unattainable cells.
	UnattainableMark = "-"
	// NotApplicableMark is the literal used to serialize NotApplicable cells.
	NotApplicableMark = "n/a"
)

var kindNames = map[Kind]string{
	Absent:        "absent",
	Number:        "number",
	Text:          "text",
	NotApplicable: "not applicable",
	Unattainable:  "unattainable",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "unknown"
}

// Cell is a single value of a Table.
type Cell struct {
	Kind Kind
	Num  float64
	// Str is the value of a Text cell. For a Number cell created by Parse
	// it keeps the original spelling, so IDs like "007" or digit strings
	// longer than a float can hold are written back unchanged.
	Str string
}

// Num creates a numeric cell.
func Num(v float64) Cell {
	return Cell{Kind: Number, Num: v}
}

// Str creates a text cell. An empty string creates an Absent cell.
func Str(s string) Cell {
	if s == "" {
		return Cell{}
	}
	return Cell{Kind: Text, Str: s}
}

// Missing creates an Absent cell.
func Missing() Cell {
	return Cell{}
}

// NA creates a NotApplicable cell.
func NA() Cell {
	return Cell{Kind: NotApplicable}
}

// Sentinel creates an Unattainable cell.
func Sentinel() Cell {
	return Cell{Kind: Unattainable}
}

// Float returns the numeric value of the cell. The second value is false
// for every kind except Number.
func (c Cell) Float() (float64, bool) {
	if c.Kind != Number {
		return 0, false
	}
	return c.Num, true
}

// IsAbsent is true when no value exists for the cell.
func (c Cell) IsAbsent() bool {
	return c.Kind == Absent
}

// String renders the cell the way it is serialized.
func (c Cell) String() string {
	switch c.Kind {
	case Number:
		if c.Str != "" {
			return c.Str
		}
		return FormatFloat(c.Num)
	case Text:
		return c.Str
	case NotApplicable:
		return NotApplicableMark
	case Unattainable:
		return UnattainableMark
	default:
		return ""
	}
}

// Parse converts a serialized value back into a cell. Markers are
// recognized before numbers, so "-" never becomes a numeric value.
// Numbers remember how they were written.
func Parse(s string) Cell {
	s = strings.TrimSpace(s)
	switch s {
	case "":
		return Missing()
	case UnattainableMark:
		return Sentinel()
	case NotApplicableMark:
		return NA()
	}
	if v, err := strconv.ParseFloat(s, 64); err == nil && !math.IsNaN(v) {
		return Cell{Kind: Number, Num: v, Str: s}
	}
	return Str(s)
}

// FormatFloat prints a float with the shortest representation that
// round-trips.
func FormatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Round rounds v to the given number of decimal places.
func Round(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}
