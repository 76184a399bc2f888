// Package scan defines the network scan source capability.
//
// Source abstracts where discovered identifiers come from. Mock generates
// them at random from a fixed pool (the simulation driver); Sequence
// replays a scripted list for tests. A real Wi-Fi driver would implement
// the same interface without touching the monitor tasks.
package scan
