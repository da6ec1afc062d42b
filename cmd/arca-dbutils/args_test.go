package main

import (
	"testing"

	"github.com/matthewsinclair/arca-dbutils/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyKeyValueArgs_SetsAllFields(t *testing.T) {
	var p models.ConnParams

	err := applyKeyValueArgs(&p, []string{
		"url=postgresql://u:p@h/d",
		"host=localhost",
		"user=postgres",
		"password=secret",
		"dbname=appdb",
		"port=5433",
		"file=dump.sql",
	})

	require.NoError(t, err)
	assert.Equal(t, models.ConnParams{
		URL:      "postgresql://u:p@h/d",
		Host:     "localhost",
		User:     "postgres",
		Password: "secret",
		Database: "appdb",
		Port:     5433,
		File:     "dump.sql",
	}, p)
}

func TestApplyKeyValueArgs_FlagsWin(t *testing.T) {
	p := models.ConnParams{Host: "from-flag", Port: 5432}

	err := applyKeyValueArgs(&p, []string{"host=from-token", "port=9999", "user=postgres"})

	require.NoError(t, err)
	assert.Equal(t, "from-flag", p.Host)
	assert.Equal(t, 5432, p.Port)
	assert.Equal(t, "postgres", p.User)
}

func TestApplyKeyValueArgs_DatabaseAlias(t *testing.T) {
	var p models.ConnParams

	require.NoError(t, applyKeyValueArgs(&p, []string{"database=appdb"}))
	assert.Equal(t, "appdb", p.Database)
}

func TestApplyKeyValueArgs_ValueMayContainEquals(t *testing.T) {
	var p models.ConnParams

	require.NoError(t, applyKeyValueArgs(&p, []string{"password=a=b=c"}))
	assert.Equal(t, "a=b=c", p.Password)
}

func TestApplyKeyValueArgs_Rejections(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"bare token", []string{"localhost"}},
		{"unknown key", []string{"hostname=localhost"}},
		{"bad port", []string{"port=fivethousand"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var p models.ConnParams
			assert.Error(t, applyKeyValueArgs(&p, tt.args))
		})
	}
}
