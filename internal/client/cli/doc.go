// Package cli implements the interactive VANDA terminal client: a REPL over
// the session manager and the backend API for browsing listings, booking
// stays, and initiating payments.
package cli
