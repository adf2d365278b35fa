// Package config loads runtime configuration for the stockroom console.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-b string   base URL of the inventory backend
//	-t int      request timeout (seconds)
//	-d string   path of the local state database
//
// # JSON schema
//
// The JSON loader uses timex.Duration for the timeout, so values can be
// either strings like "10s" or integer nanoseconds:
//
//	{
//	  "backend_base_url": "http://localhost:8080",
//	  "auth_base_path": "/api/auth",
//	  "request_timeout": "10s",
//	  "database_dsn": "stockroom.db"
//	}
package config
