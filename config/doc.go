// Package config loads and validates the service configuration from YAML
// files, environment variables (prefix AUTHENTIC plus the platform's VERCEL
// and BLOB_READ_WRITE_TOKEN), and CLI flags, in ascending precedence.
//
// Storage selection is a single decision: the environment is inspected
// exactly once at startup, StorageConfig.Resolve
// turns it into an immutable Backend value, and every component receives
// that value by injection. Handlers and stores never consult the process
// environment themselves.
package config
