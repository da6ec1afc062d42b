package config

import (
	"fmt"

	"github.com/matthewsinclair/arca-dbutils/internal/models"
)

// MissingFieldError reports the first required connection field found absent
// after resolution.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing required connection parameter: %s", e.Field)
}

// Validate checks the resolved config for completeness. Fields are checked
// in host, user, password, dbname order and the first absent or empty one is
// reported; the ordering is a user-facing contract. Port is optional and
// never checked.
func Validate(cfg models.ConnectionConfig) error {
	fields := []struct {
		name  string
		value string
	}{
		{"host", cfg.Host},
		{"user", cfg.User},
		{"password", cfg.Password},
		{"dbname", cfg.Database},
	}
	for _, f := range fields {
		if f.value == "" {
			return &MissingFieldError{Field: f.name}
		}
	}
	return nil
}
