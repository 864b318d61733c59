package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks the loaded configuration against the struct tags.
// The service refuses to start on any violation, so every failed field
// is reported in one pass rather than stopping at the first.
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		return err
	}

	var b strings.Builder
	b.WriteString("config validation failed:")

	for _, fe := range fieldErrors {
		b.WriteString("\n  ")
		b.WriteString(fieldPath(fe.Namespace()))
		b.WriteString(" ")
		b.WriteString(violationMessage(fe))
	}

	return errors.New(b.String())
}

// violationMessage renders the human-readable part of one field error.
func violationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "required_if":
		return fmt.Sprintf("is required when %s", fe.Param())
	case "min", "gte":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max", "lte":
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", fe.Param())
	case "url":
		return "must be a valid URL"
	default:
		return fmt.Sprintf("failed validation: %s", fe.Tag())
	}
}

// fieldPath lowers a validator namespace like "Config.Server.Port" to the
// koanf-style "server.port" used in config files and error messages.
func fieldPath(namespace string) string {
	parts := strings.Split(namespace, ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}

	for i, part := range parts {
		parts[i] = strings.ToLower(part)
	}

	return strings.Join(parts, ".")
}
