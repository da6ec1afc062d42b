// Package config resolves and validates database connection parameters.
package config

import "github.com/spf13/viper"

// Env is a read-only source of fallback connection parameters. Keys are the
// unprefixed names ("url", "host", "user", "password", "name", "file"),
// mapping to the DB_URL, DB_HOST, DB_USER, DB_PASSWORD, DB_NAME and DB_FILE
// environment variables.
type Env interface {
	Get(key string) string
}

type processEnv struct {
	v *viper.Viper
}

// NewEnv returns an Env backed by the process environment.
func NewEnv() Env {
	v := viper.New()
	v.SetEnvPrefix("DB")
	v.AutomaticEnv()
	return &processEnv{v: v}
}

func (e *processEnv) Get(key string) string {
	return e.v.GetString(key)
}

// MapEnv is a fixed in-memory Env, useful for testing.
type MapEnv map[string]string

// Get returns the value for key, or "" if unset.
func (m MapEnv) Get(key string) string {
	return m[key]
}
