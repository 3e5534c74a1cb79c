package validation

import (
	"fmt"

	dErrors "retireplan/pkg/domain-errors"
)

// HTTP body limits
const (
	// MaxBodySize is the maximum allowed questionnaire body size (64 KB).
	MaxBodySize = 64 * 1024
)

// String element length limits
const (
	// MaxNameLength is the maximum length of the client's full name.
	MaxNameLength = 200

	// MaxEmailLength is the maximum length of an email address.
	MaxEmailLength = 255

	// MaxShortTextLength bounds single-line answers (occupation, fund name, ...).
	MaxShortTextLength = 255

	// MaxFreeTextLength bounds free-text answers (health concerns, other goals, ...).
	MaxFreeTextLength = 4000
)

// CheckStringLength validates that a string does not exceed the maximum length.
func CheckStringLength(fieldName, value string, max int) error {
	if len(value) > max {
		return dErrors.New(dErrors.CodeValidation, fmt.Sprintf("%s exceeds max length of %d", fieldName, max))
	}
	return nil
}

// CheckOptionalStringLength is CheckStringLength for optional answers; nil passes.
func CheckOptionalStringLength(fieldName string, value *string, max int) error {
	if value == nil {
		return nil
	}
	return CheckStringLength(fieldName, *value, max)
}
