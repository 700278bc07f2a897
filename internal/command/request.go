package command

import "github.com/roach88/contacts/internal/contact"

// Kind identifies a request type.
type Kind string

const (
	KindAdd         Kind = "add"
	KindUpdatePhone Kind = "update_phone"
	KindDelete      Kind = "delete"
	KindGet         Kind = "get"
	KindList        Kind = "list"
	KindImport      Kind = "import"
)

// Request is a single unit of work for the storage layer.
type Request interface {
	Kind() Kind
}

// Add creates a new contact.
type Add struct {
	Name    string
	PhoneNo string
}

// UpdatePhone changes the phone number of an existing contact.
// Name is validated as non-empty but never persisted.
type UpdatePhone struct {
	ID      int64
	Name    string
	PhoneNo string
}

// Delete removes a contact.
type Delete struct {
	ID int64
}

// Get fetches one contact.
type Get struct {
	ID int64
}

// List fetches all contacts.
type List struct{}

// Import creates many contacts atomically.
type Import struct {
	Contacts []contact.Contact
}

func (Add) Kind() Kind         { return KindAdd }
func (UpdatePhone) Kind() Kind { return KindUpdatePhone }
func (Delete) Kind() Kind      { return KindDelete }
func (Get) Kind() Kind         { return KindGet }
func (List) Kind() Kind        { return KindList }
func (Import) Kind() Kind      { return KindImport }

// Result is the outcome of a dispatched Request. Only the fields relevant to
// the request kind are set.
type Result struct {
	Kind Kind

	// ID is the new contact id (Add).
	ID int64

	// IDs are the new contact ids in input order (Import).
	IDs []int64

	// Affected is the number of rows changed (UpdatePhone, Delete).
	Affected int64

	// Contact and Found report a lookup (Get).
	Contact contact.Contact
	Found   bool

	// Contacts is a fresh snapshot of the table (List).
	Contacts []contact.Contact

	// Err is nil on success, otherwise a *contact.Error.
	Err error
}

// OK reports whether the request succeeded.
func (r Result) OK() bool {
	return r.Err == nil
}
