// Package config loads runtime configuration for the YouQuote console.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the remote store
//	-d string   session database path
//	-t int      request timeout (seconds)
//	-r string   post-registration behavior: verify-email or alert
//	-l string   log level
//
// # JSON schema
//
// request_timeout is a timex.Duration, so it can be a string like "10s" or
// integer nanoseconds:
//
//	{
//	  "api_base_url": "http://127.0.0.1:8000",
//	  "session_db_path": "youquote.db",
//	  "request_timeout": "10s",
//	  "post_registration": "alert",
//	  "log_level": "info"
//	}
package config
