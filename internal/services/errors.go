package services

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

var (
	// ErrRestaurantNotFound is returned when no restaurant matches the requested id
	ErrRestaurantNotFound = errors.New("restaurant not found")
	// ErrRestaurantPizzaNotFound is returned when no restaurant pizza matches the requested id
	ErrRestaurantPizzaNotFound = errors.New("restaurant pizza not found")
)

// ConstraintError reports a write the store rejected because it would break
// an integrity constraint (foreign key, unique or check).
type ConstraintError struct {
	Err error
}

func (e *ConstraintError) Error() string {
	return e.Err.Error()
}

func (e *ConstraintError) Unwrap() error {
	return e.Err
}

// classifyWriteError wraps integrity failures in a ConstraintError and leaves
// every other error untouched.
func classifyWriteError(db *gorm.DB, err error) error {
	if err == nil {
		return nil
	}
	if isConstraintViolation(db, err) {
		return &ConstraintError{Err: err}
	}
	return err
}

// Messages of integrity failures the dialector translators leave untranslated.
var constraintMarkers = []string{
	// sqlite
	"foreign key constraint failed",
	"check constraint failed",
	"not null constraint failed",
	"unique constraint failed",
	// postgres
	"(sqlstate 23502)",
	"(sqlstate 23503)",
	"(sqlstate 23505)",
	"(sqlstate 23514)",
}

func isConstraintViolation(db *gorm.DB, err error) bool {
	if translator, ok := db.Dialector.(gorm.ErrorTranslator); ok {
		translated := translator.Translate(err)
		if errors.Is(translated, gorm.ErrForeignKeyViolated) ||
			errors.Is(translated, gorm.ErrDuplicatedKey) ||
			errors.Is(translated, gorm.ErrCheckConstraintViolated) {
			return true
		}
	}
	message := strings.ToLower(err.Error())
	for _, marker := range constraintMarkers {
		if strings.Contains(message, marker) {
			return true
		}
	}
	return false
}
