// Package indicator abstracts the binary alert output line.
//
// Console renders state transitions as colored lines for a terminal;
// Memory records transitions for tests and embedders.
package indicator
