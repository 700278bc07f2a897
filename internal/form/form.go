package form

import (
	"context"
	"errors"
	"fmt"

	"github.com/roach88/contacts/internal/command"
	"github.com/roach88/contacts/internal/contact"
)

// Dispatcher executes command requests. *command.Dispatcher satisfies it.
type Dispatcher interface {
	Dispatch(ctx context.Context, req command.Request) command.Result
}

// Notifier surfaces outcomes to the user. Every call blocks until the
// notification has been shown; Confirm blocks until the user answers.
type Notifier interface {
	Info(title, message string)
	Error(title, message string)
	Confirm(title, message string) bool
}

// Form is the contact manager window state.
type Form struct {
	// Name and PhoneNo are the entry field contents.
	Name    string
	PhoneNo string

	// Rows is the displayed snapshot. Stale after any mutation.
	Rows []contact.Contact

	selected   *contact.Contact
	dispatcher Dispatcher
	notify     Notifier
}

// New creates an empty Form. Call Refresh to load the rows.
func New(d Dispatcher, n Notifier) *Form {
	return &Form{dispatcher: d, notify: n}
}

// Selected returns the selected row, if any.
func (f *Form) Selected() (contact.Contact, bool) {
	if f.selected == nil {
		return contact.Contact{}, false
	}
	return *f.selected, true
}

// Refresh replaces the row snapshot with a fresh read of the store and drops
// the selection.
func (f *Form) Refresh(ctx context.Context) {
	f.Rows = nil
	f.selected = nil

	res := f.dispatcher.Dispatch(ctx, command.List{})
	if res.Err != nil {
		f.notify.Error("Database Error", fmt.Sprintf("Error loading contacts: %v", res.Err))
		return
	}
	f.Rows = res.Contacts
}

// SelectRow loads the listed row with the given id into the entry fields.
// The row is re-read from the store; if it has vanished the fields are
// cleared instead.
func (f *Form) SelectRow(ctx context.Context, id int64) {
	if !f.listed(id) {
		f.notify.Error("Error", fmt.Sprintf("No contact with ID %d is listed.", id))
		return
	}

	res := f.dispatcher.Dispatch(ctx, command.Get{ID: id})
	if res.Err != nil {
		f.notify.Error("Database Error", fmt.Sprintf("Error reading contact: %v", res.Err))
		return
	}
	if !res.Found {
		f.Clear()
		return
	}

	c := res.Contact
	f.selected = &c
	f.Name = c.Name
	f.PhoneNo = c.PhoneNo
}

// Clear empties both entry fields and drops the selection.
func (f *Form) Clear() {
	f.Name = ""
	f.PhoneNo = ""
	f.selected = nil
}

// Add creates a contact from the entry fields.
func (f *Form) Add(ctx context.Context) {
	res := f.dispatcher.Dispatch(ctx, command.Add{Name: f.Name, PhoneNo: f.PhoneNo})
	if res.Err != nil {
		f.surface("Error creating contact", res.Err)
		return
	}

	f.notify.Info("Success", "Contact added successfully.")
	f.Refresh(ctx)
	f.Clear()
}

// Update stores the phone field on the selected contact. The name field is
// required but not persisted; contacts cannot be renamed.
func (f *Form) Update(ctx context.Context) {
	sel, ok := f.Selected()
	if !ok {
		f.notify.Info("Information", "Please select a contact to update.")
		return
	}

	res := f.dispatcher.Dispatch(ctx, command.UpdatePhone{ID: sel.ID, Name: f.Name, PhoneNo: f.PhoneNo})
	if res.Err != nil {
		f.surface("Error updating contact", res.Err)
		return
	}
	if res.Affected == 0 {
		f.notify.Error("Error", "Failed to update contact.")
		f.Refresh(ctx)
		return
	}

	f.notify.Info("Success", "Contact updated successfully.")
	f.Refresh(ctx)
	f.Clear()
}

// Delete removes the selected contact after confirmation.
func (f *Form) Delete(ctx context.Context) {
	sel, ok := f.Selected()
	if !ok {
		f.notify.Info("Information", "Please select a contact to delete.")
		return
	}
	if !f.notify.Confirm("Confirm Delete", "Are you sure you want to delete this contact?") {
		return
	}

	res := f.dispatcher.Dispatch(ctx, command.Delete{ID: sel.ID})
	if res.Err != nil {
		f.surface("Error deleting contact", res.Err)
		return
	}
	if res.Affected == 0 {
		f.notify.Error("Error", "Failed to delete contact.")
		f.Refresh(ctx)
		return
	}

	f.notify.Info("Success", "Contact deleted successfully.")
	f.Refresh(ctx)
	f.Clear()
}

// surface maps an error to a notification. User-correctable errors keep
// their own message; anything else is a database error.
func (f *Form) surface(prefix string, err error) {
	var ce *contact.Error
	if errors.As(err, &ce) && (ce.Code == contact.ErrCodeDuplicatePhone || ce.Code == contact.ErrCodeValidation) {
		f.notify.Error("Error", ce.Message)
		return
	}
	f.notify.Error("Database Error", fmt.Sprintf("%s: %v", prefix, err))
}

func (f *Form) listed(id int64) bool {
	for _, c := range f.Rows {
		if c.ID == id {
			return true
		}
	}
	return false
}
