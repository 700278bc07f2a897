// Package command turns user gestures into request objects and executes them
// against the storage layer.
//
// The presentation layer never calls the store directly. It builds a
// Request (Add, UpdatePhone, Delete, Get, List, Import), hands it to a
// Dispatcher, and decides how to surface the returned Result. This keeps the
// store free of UI concerns and lets both sides be tested alone.
//
// The Dispatcher rejects empty fields before any storage call and otherwise
// passes text through exactly as entered. UpdatePhone carries the edited name but persists only the
// phone number: contacts have no rename operation.
package command
