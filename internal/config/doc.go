// Package config handles configuration loading, parsing, and validation
// from various sources (.env file, config.yaml, environment variables). It
// provides type-safe access to settings needed by the server, the logger and
// the Gemini adapter while keeping configuration details separate from
// request handling.
package config
