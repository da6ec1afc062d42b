package config

import (
	"testing"

	"github.com/matthewsinclair/arca-dbutils/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() models.ConnectionConfig {
	return models.ConnectionConfig{
		Host:     "localhost",
		User:     "postgres",
		Password: "secret",
		Database: "appdb",
	}
}

func TestValidate_Complete(t *testing.T) {
	assert.NoError(t, Validate(validConfig()))
}

func TestValidate_PortNeverChecked(t *testing.T) {
	cfg := validConfig()
	cfg.Port = 0

	assert.NoError(t, Validate(cfg))
}

func TestValidate_ReportsEachMissingField(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*models.ConnectionConfig)
		field  string
	}{
		{"missing host", func(c *models.ConnectionConfig) { c.Host = "" }, "host"},
		{"missing user", func(c *models.ConnectionConfig) { c.User = "" }, "user"},
		{"missing password", func(c *models.ConnectionConfig) { c.Password = "" }, "password"},
		{"missing dbname", func(c *models.ConnectionConfig) { c.Database = "" }, "dbname"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)

			err := Validate(cfg)

			require.Error(t, err)
			var missing *MissingFieldError
			require.ErrorAs(t, err, &missing)
			assert.Equal(t, tt.field, missing.Field)
		})
	}
}

func TestValidate_FirstMissingFieldWins(t *testing.T) {
	// user and dbname are both missing; user comes first in the fixed
	// host, user, password, dbname order.
	cfg := validConfig()
	cfg.User = ""
	cfg.Database = ""

	err := Validate(cfg)

	var missing *MissingFieldError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "user", missing.Field)
}

func TestValidate_AllMissing(t *testing.T) {
	err := Validate(models.ConnectionConfig{})

	var missing *MissingFieldError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "host", missing.Field)
}
