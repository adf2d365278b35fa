// Package session owns the current authenticated session of the console.
//
// The Store is the single source of truth: a session exists in the local
// durable slot and in memory simultaneously, or in neither. All other
// components read it through the Store's accessors and never mutate it
// directly. Every mutating operation (Login, Logout, Refresh) notifies all
// current subscribers synchronously, in subscription order, with the new
// value (nil = no session).
package session

// The console is single-threaded: the Store is not safe for concurrent use.
