package workspace

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

var recordValidator = validator.New(validator.WithRequiredStructEnabled())

// ValidationError reports a record that failed pre-save validation
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error in %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// validateRecord runs struct-tag validation and converts the first failure
// into a ValidationError.
func validateRecord(record any) error {
	err := recordValidator.Struct(record)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		first := fieldErrs[0]
		return &ValidationError{
			Field:   first.Field(),
			Message: fmt.Sprintf("failed %q validation", first.Tag()),
		}
	}
	return fmt.Errorf("record validation failed: %w", err)
}
