// Package config loads rsakit settings from the environment, optionally
// preloaded from a .env file, and validates them.
package config
