// Package validation provides configuration and argument validation for
// seqkit binaries.
//
// It supports struct tag validation (using the validator library) and
// programmatic validation with error collection. Both report failures as
// errors.AppError values with code INVALID_INPUT and per-field details.
//
// # Struct Tag Validation
//
//	type DemoConfig struct {
//	    Limit int `mapstructure:"limit" validate:"gte=1,lte=10000"`
//	}
//	err := validation.Validate(cfg)
//
// # Programmatic Validation
//
//	v := validation.New()
//	v.Required("name", name).
//		Custom(limit >= 1, "limit", "must be at least 1")
//	err := v.Validate()
package validation
