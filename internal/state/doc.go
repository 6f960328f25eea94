// Package state holds the view state of the list and detail pages together
// with the pure reducers that move it from one snapshot to the next.
//
// Handlers never assign into a state value directly: they build an event
// (data loaded, filter changed, favorite added, ...) and call the matching
// Reduce function, which returns a new value and leaves the old one intact.
package state
