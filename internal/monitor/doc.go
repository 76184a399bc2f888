// Package monitor implements the three-task alert pipeline.
//
// A Producer pulls discovered identifiers from a scan source and pushes
// them onto the bounded signal queue; a Classifier pops them, checks the
// trusted set and drives the alert state and indicator; a Watchdog
// periodically blinks the indicator to prove liveness and restores it to
// whatever the alert state demands. Monitor wires the three together with
// explicitly owned shared objects.
package monitor
