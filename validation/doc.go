// Package validation provides input validation for propkit configuration.
//
// It supports both struct tag validation (using the validator library) and
// programmatic validation with error collection.
//
// # Struct Tag Validation
//
//	type Config struct {
//	    Length   int    `validate:"gte=1,lte=4096"`
//	    Alphabet string `validate:"min=2"`
//	}
//	err := validation.Validate(cfg)
//
// # Programmatic Validation
//
//	v := validation.New()
//	v.Custom(loc != nil, "zone", "must be a known time zone")
//	err := v.Validate()
package validation
