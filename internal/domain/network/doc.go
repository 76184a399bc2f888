// Package network contains core domain types for the alert monitor.
//
// It defines Identifier (a bounded-length discovered network name) and
// TrustedSet (the immutable-after-init allow-list checked by the
// classifier) with a Snapshot helper to avoid leaking internal references.
package network
