package schema

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// FindingKind categorizes one recorded violation.
type FindingKind string

const (
	// KindMissingColumn indicates a declared column absent from the frame.
	KindMissingColumn FindingKind = "missing_column"

	// KindNullInNonNullable indicates a null where the column forbids them.
	KindNullInNonNullable FindingKind = "null_in_non_nullable"

	// KindTypeMismatch indicates a non-null value that cannot be represented
	// in the column's declared storage type.
	KindTypeMismatch FindingKind = "type_mismatch"

	// KindValidationFailed indicates a validator returned false for a value.
	KindValidationFailed FindingKind = "validation_failed"

	// KindValidatorError indicates a validator itself errored while
	// evaluating a value, distinct from the value being invalid.
	KindValidatorError FindingKind = "validator_error"
)

// IsValid returns true if k is a known finding kind.
func (k FindingKind) IsValid() bool {
	switch k {
	case KindMissingColumn, KindNullInNonNullable, KindTypeMismatch,
		KindValidationFailed, KindValidatorError:
		return true
	default:
		return false
	}
}

// Finding is one recorded violation from a validation pass.
type Finding struct {
	// Kind categorizes the violation.
	Kind FindingKind `json:"kind"`

	// Column is the declared column the finding belongs to.
	Column string `json:"column"`

	// Row is the offending row index, or -1 for findings that are not
	// row-scoped.
	Row int `json:"row"`

	// Value is the offending cell value, when the finding is row-scoped.
	Value any `json:"value,omitempty"`

	// Detail carries the coercion failure reason, the failed requirement, or
	// the validator's own error text, depending on Kind.
	Detail string `json:"detail,omitempty"`
}

// Message renders the finding's report line.
func (f Finding) Message() string {
	switch f.Kind {
	case KindMissingColumn:
		return fmt.Sprintf("Missing column: %s", f.Column)
	case KindNullInNonNullable:
		return fmt.Sprintf("Null values found in non-nullable column: %s", f.Column)
	case KindTypeMismatch:
		return fmt.Sprintf("Type mismatch in column '%s': %s", f.Column, f.Detail)
	case KindValidationFailed:
		return fmt.Sprintf("Validation failed in '%s' at index %d: %v", f.Column, f.Row, f.Value)
	case KindValidatorError:
		return fmt.Sprintf("Validator error in '%s' at index %d: %s", f.Column, f.Row, f.Detail)
	}
	return f.Detail
}

// Report is the ordered set of findings from one validation pass. It is
// created fresh per call and fully owned by the caller once returned; it
// holds no reference to the frame or schema it was produced from.
type Report struct {
	// ID uniquely identifies the pass that produced the report.
	ID string `json:"id"`

	// Findings lists every violation in column-declaration order, within a
	// column in check order, within a check in row order.
	Findings []Finding `json:"findings"`
}

func newReport() *Report {
	return &Report{ID: uuid.New().String()}
}

func (r *Report) add(f Finding) {
	r.Findings = append(r.Findings, f)
}

// OK reports whether the pass recorded no findings.
func (r *Report) OK() bool {
	return len(r.Findings) == 0
}

// Messages returns the rendered line for every finding, in report order.
func (r *Report) Messages() []string {
	msgs := make([]string, len(r.Findings))
	for i, f := range r.Findings {
		msgs[i] = f.Message()
	}
	return msgs
}

// ValidationError is the composite error raised when a pass records one or
// more findings. The message is every finding's text joined by newlines;
// the structured findings remain available through Report.
type ValidationError struct {
	Report *Report
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return "Schema validation failed:\n" + strings.Join(e.Report.Messages(), "\n")
}
