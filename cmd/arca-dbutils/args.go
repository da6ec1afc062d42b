package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/matthewsinclair/arca-dbutils/internal/models"
)

// applyKeyValueArgs merges positional key=value tokens into params. Values
// already set by flags win over tokens. Unknown keys and malformed tokens
// are rejected.
func applyKeyValueArgs(p *models.ConnParams, args []string) error {
	for _, arg := range args {
		key, value, ok := strings.Cut(arg, "=")
		if !ok {
			return fmt.Errorf("expected key=value, got %q", arg)
		}

		switch key {
		case "url":
			if p.URL == "" {
				p.URL = value
			}
		case "host":
			if p.Host == "" {
				p.Host = value
			}
		case "user":
			if p.User == "" {
				p.User = value
			}
		case "password":
			if p.Password == "" {
				p.Password = value
			}
		case "dbname", "database":
			if p.Database == "" {
				p.Database = value
			}
		case "port":
			if p.Port == 0 {
				n, err := strconv.Atoi(value)
				if err != nil {
					return fmt.Errorf("invalid port %q", value)
				}
				p.Port = n
			}
		case "file":
			if p.File == "" {
				p.File = value
			}
		default:
			return fmt.Errorf("unknown parameter %q", key)
		}
	}
	return nil
}
