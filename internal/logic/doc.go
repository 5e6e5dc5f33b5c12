// Package logic holds the navigation state machine and the command protocol
// that drives it.
//
// A Selection tracks which page the user is on and the identifiers of the
// entities selected on the way there. Commands validate against the Selection
// and the Roster, then apply exactly one change: a Selection transition or a
// single Roster mutation. Logic ties the two to a storage.Store.
package logic
