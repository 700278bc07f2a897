// Package form is the presentation layer: a terminal rendition of the
// contact manager window.
//
// A Form holds two entry fields (Name, Phone No), a transient snapshot of
// the contact rows, and an optional selected row. Gestures (Add, Update,
// Delete, SelectRow, Clear) are turned into command requests; the Form never
// touches storage directly. Every outcome is surfaced through a Notifier,
// which may block (Confirm) until the user answers.
//
// The row snapshot is never written back. After any successful mutation it
// is discarded and re-read from the store, and the selection is dropped with
// it.
//
// Session drives a Form from a line-oriented input stream, one gesture per
// line, redrawing the window after each.
package form
