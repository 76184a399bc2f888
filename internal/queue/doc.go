// Package queue implements the bounded FIFO between the producer and the
// classifier.
//
// The Queue blocks a pusher while full and a popper while empty, preserving
// strict FIFO order with no loss or duplication. Context cancellation is the
// only way out of a blocked operation.
package queue
