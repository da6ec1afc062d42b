package models

import (
	"fmt"
	"net/url"
	"strconv"
)

// PasswordMask replaces the password in any user-facing rendering of a
// connection string.
const PasswordMask = "*****"

// ConnParams holds the explicit connection inputs exactly as the caller
// supplied them, before any resolution against the environment.
type ConnParams struct {
	URL      string
	Host     string
	User     string
	Password string
	Database string
	Port     int
	File     string // load only
}

// ConnectionConfig is the resolved connection-parameter record for a single
// dump or load operation. The zero value of a field means "absent"; absent
// and empty are treated identically downstream. Port is only ever populated
// from a connection URL.
type ConnectionConfig struct {
	Host     string
	User     string
	Password string
	Database string
	Port     int
}

// Redacted renders the config as a connection URL with the password
// replaced by PasswordMask. Safe to log.
func (c ConnectionConfig) Redacted() string {
	return fmt.Sprintf("postgresql://%s:%s@%s/%s", c.User, PasswordMask, c.hostPort(), c.Database)
}

// URL renders the config as a real connection URL, credentials included.
// Never log this; it exists for handing off to a database driver.
func (c ConnectionConfig) URL() string {
	u := url.URL{
		Scheme: "postgresql",
		User:   url.UserPassword(c.User, c.Password),
		Host:   c.hostPort(),
		Path:   "/" + c.Database,
	}
	return u.String()
}

func (c ConnectionConfig) hostPort() string {
	if c.Port > 0 {
		return c.Host + ":" + strconv.Itoa(c.Port)
	}
	return c.Host
}
