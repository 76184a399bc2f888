// Package sentinel wires the monitor process: it loads configuration,
// builds the trusted set, signal queue, scan source and indicator, and runs
// the three tasks until the process is halted.
package sentinel
