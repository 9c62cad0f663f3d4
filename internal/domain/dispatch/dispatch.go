// Package dispatch maps workout type codes to calculator constructors and
// validates raw packages before any calculation runs.
package dispatch

import (
	"fmt"
	"math"

	"github.com/okian/fittrack/internal/domain/training"
)

// Default workout type codes.
const (
	CodeSwimming      = "SWM"
	CodeRunning       = "RUN"
	CodeSportsWalking = "WLK"
)

// Field describes one positional value of a package.
type Field struct {
	Name     string
	Integer  bool // must be a whole number
	Positive bool // must be strictly greater than zero
}

// Entry binds a type code to its variant. Fields fixes both the expected
// value count and the positional order passed to New.
type Entry struct {
	Code    string
	Variant string
	Fields  []Field
	// New builds the calculator from validated values; len(values) == len(Fields).
	New func(values []float64) training.Calculator
}

// FieldCount returns the number of values a package of this type must carry.
func (e Entry) FieldCount() int { return len(e.Fields) }

// Common leading fields.
var (
	actionField   = Field{Name: "action", Integer: true}
	durationField = Field{Name: "duration", Positive: true}
	weightField   = Field{Name: "weight"}
)

// DefaultEntries returns the swimming, running and sports walking entries.
func DefaultEntries() []Entry {
	return []Entry{
		{
			Code:    CodeSwimming,
			Variant: training.KindSwimming.String(),
			Fields: []Field{
				actionField, durationField, weightField,
				{Name: "length_pool"},
				{Name: "count_pool", Integer: true},
			},
			New: func(v []float64) training.Calculator {
				return training.NewSwimming(int(v[0]), v[1], v[2], v[3], int(v[4]))
			},
		},
		{
			Code:    CodeRunning,
			Variant: training.KindRunning.String(),
			Fields:  []Field{actionField, durationField, weightField},
			New: func(v []float64) training.Calculator {
				return training.NewRunning(int(v[0]), v[1], v[2])
			},
		},
		{
			Code:    CodeSportsWalking,
			Variant: training.KindSportsWalking.String(),
			Fields: []Field{
				actionField, durationField, weightField,
				{Name: "height", Positive: true},
			},
			New: func(v []float64) training.Calculator {
				return training.NewSportsWalking(int(v[0]), v[1], v[2], v[3])
			},
		},
	}
}

// Table resolves type codes. It is read-only after New returns.
type Table struct {
	entries map[string]Entry
	codes   []string

	pending      []Entry
	skipDefaults bool
}

// New builds a table with the default entries plus any registered via options.
// Every entry must carry a constructor; one without fails with
// ErrUnimplementedCalculation here rather than at calculation time.
func New(opts ...Option) (*Table, error) {
	t := &Table{entries: make(map[string]Entry)}

	for _, opt := range opts {
		opt(t)
	}

	entries := t.pending
	if !t.skipDefaults {
		entries = append(DefaultEntries(), entries...)
	}
	t.pending = nil

	for _, e := range entries {
		if err := t.register(e); err != nil {
			return nil, err
		}
	}
	return t, nil
}

func (t *Table) register(e Entry) error {
	switch {
	case e.Code == "":
		return fmt.Errorf("%w: empty code for variant %s", ErrInvalidEntry, e.Variant)
	case len(e.Fields) == 0:
		return fmt.Errorf("%w: %s declares no fields", ErrInvalidEntry, e.Code)
	case e.New == nil:
		return &UnimplementedCalculationError{Variant: e.Variant}
	}
	if _, ok := t.entries[e.Code]; ok {
		return fmt.Errorf("%w: duplicate code %s", ErrInvalidEntry, e.Code)
	}
	t.entries[e.Code] = e
	t.codes = append(t.codes, e.Code)
	return nil
}

// Codes returns the registered codes in registration order.
func (t *Table) Codes() []string {
	out := make([]string, len(t.codes))
	copy(out, t.codes)
	return out
}

// Entry returns the entry registered for code.
func (t *Table) Entry(code string) (Entry, bool) {
	e, ok := t.entries[code]
	return e, ok
}

// Lookup validates values against the entry for code and builds its calculator.
func (t *Table) Lookup(code string, values []float64) (training.Calculator, error) {
	e, ok := t.entries[code]
	if !ok {
		return nil, &UnknownWorkoutTypeError{Code: code, Valid: t.Codes()}
	}
	if len(values) != e.FieldCount() {
		return nil, &FieldCountMismatchError{Code: code, Got: len(values), Want: e.FieldCount()}
	}
	for i, f := range e.Fields {
		if reason := f.check(values[i]); reason != "" {
			return nil, &InvalidFieldError{Code: code, Field: f.Name, Value: values[i], Reason: reason}
		}
	}
	return e.New(values), nil
}

// check returns a non-empty reason when v is outside the field's domain.
func (f Field) check(v float64) string {
	switch {
	case math.IsNaN(v) || math.IsInf(v, 0):
		return "must be finite"
	case v < 0:
		return "must not be negative"
	case f.Positive && v == 0:
		return "must be positive"
	case f.Integer && v != math.Trunc(v):
		return "must be a whole number"
	case f.Integer && v > math.MaxInt32:
		return "is out of range"
	}
	return ""
}
