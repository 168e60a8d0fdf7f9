// Package config reads the server's environment configuration once at
// startup. Arbor has no config file — two environment variables cover
// the whole surface.
package config

import "os"

// Config holds the environment-derived settings.
type Config struct {
	// Quiet suppresses the diagnostic tree echo written to stderr
	// after each successful mutation. It never affects tool payloads.
	Quiet bool

	// JournalPath, when non-empty, names the SQLite file for the
	// append-only operation journal. Empty disables the journal.
	JournalPath string
}

// FromEnv builds a Config from ARBOR_QUIET and ARBOR_JOURNAL.
func FromEnv() Config {
	return Config{
		Quiet:       truthy(os.Getenv("ARBOR_QUIET")),
		JournalPath: os.Getenv("ARBOR_JOURNAL"),
	}
}

func truthy(v string) bool {
	switch v {
	case "", "0", "false", "no":
		return false
	}
	return true
}
