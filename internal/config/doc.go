// Package config defines the monitor tunables and provides helpers to load,
// validate and save them in YAML format.
//
// The Config type covers the queue capacity, heartbeat and blink timing,
// producer delay range, the candidate identifier pool and the trusted list.
// A missing settings file falls back to the reference defaults.
package config
