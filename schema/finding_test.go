package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFindingKind_IsValid(t *testing.T) {
	tests := []struct {
		name string
		kind FindingKind
		want bool
	}{
		{"missing column is valid", KindMissingColumn, true},
		{"null in non-nullable is valid", KindNullInNonNullable, true},
		{"type mismatch is valid", KindTypeMismatch, true},
		{"validation failed is valid", KindValidationFailed, true},
		{"validator error is valid", KindValidatorError, true},
		{"empty is invalid", FindingKind(""), false},
		{"unknown is invalid", FindingKind("oops"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.kind.IsValid(); got != tt.want {
				t.Errorf("FindingKind.IsValid() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFinding_Message(t *testing.T) {
	tests := []struct {
		name    string
		finding Finding
		want    string
	}{
		{
			"missing column",
			Finding{Kind: KindMissingColumn, Column: "name", Row: -1},
			"Missing column: name",
		},
		{
			"null in non-nullable",
			Finding{Kind: KindNullInNonNullable, Column: "id", Row: -1},
			"Null values found in non-nullable column: id",
		},
		{
			"type mismatch",
			Finding{Kind: KindTypeMismatch, Column: "age", Row: -1, Detail: "value x is not representable as int64"},
			"Type mismatch in column 'age': value x is not representable as int64",
		},
		{
			"validation failed",
			Finding{Kind: KindValidationFailed, Column: "age", Row: 2, Value: -1},
			"Validation failed in 'age' at index 2: -1",
		},
		{
			"validator error",
			Finding{Kind: KindValidatorError, Column: "age", Row: 2, Value: -1, Detail: "panic: boom"},
			"Validator error in 'age' at index 2: panic: boom",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.finding.Message())
		})
	}
}

func TestValidationError_JoinsFindings(t *testing.T) {
	rep := newReport()
	rep.add(Finding{Kind: KindMissingColumn, Column: "a", Row: -1})
	rep.add(Finding{Kind: KindValidationFailed, Column: "b", Row: 0, Value: 7})

	err := &ValidationError{Report: rep}
	assert.Equal(t,
		"Schema validation failed:\nMissing column: a\nValidation failed in 'b' at index 0: 7",
		err.Error())
}

func TestReport_OK(t *testing.T) {
	rep := newReport()
	assert.True(t, rep.OK())
	assert.Empty(t, rep.Messages())

	rep.add(Finding{Kind: KindMissingColumn, Column: "a", Row: -1})
	assert.False(t, rep.OK())
}
