package models

import "github.com/go-playground/validator/v10"

var validate = validator.New()

// Validate checks an entity's struct tags. The repository runs it on
// every write and on reads of persisted state, so malformed records
// surface instead of flowing into renders.
func Validate(v any) error {
	return validate.Struct(v)
}
