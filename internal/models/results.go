package models

import "time"

// DumpResult holds the outcome of a pg_dump operation.
type DumpResult struct {
	Filename string
	Output   string
	Duration time.Duration
	Error    error
}

// LoadResult holds the outcome of a psql restore operation.
type LoadResult struct {
	File     string
	Output   string
	Duration time.Duration
	Error    error
}

// CheckResult holds the outcome of a connection check.
type CheckResult struct {
	Config   ConnectionConfig
	Duration time.Duration
	Error    error
}
