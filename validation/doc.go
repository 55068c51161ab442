// Package validation checks configuration and command-line input.
//
// It supports struct tag validation (using the validator library) for the
// configuration structs and programmatic validation with error collection
// for command arguments. Both report an *errors.AppError with code
// INVALID_INPUT whose details list the failing fields.
//
// # Struct Tag Validation
//
//	type StreamConfig struct {
//	    OnEndlessViolation string `mapstructure:"on_endless_violation" validate:"oneof=error abort"`
//	}
//	err := validation.Validate(cfg)
//
// # Programmatic Validation
//
//	v := validation.New()
//	v.Min("count", n, 0).OneOf("policy", policy, []string{"error", "abort"})
//	if err := v.Validate(); err != nil { ... }
package validation
