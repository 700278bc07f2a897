package form

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/contacts/internal/command"
	"github.com/roach88/contacts/internal/contact"
	"github.com/roach88/contacts/internal/store"
)

type notice struct {
	Kind    string // "info", "error", "confirm"
	Title   string
	Message string
}

// recordingNotifier records every notification and answers Confirm with the
// configured value.
type recordingNotifier struct {
	notices []notice
	answer  bool
}

func (n *recordingNotifier) Info(title, message string) {
	n.notices = append(n.notices, notice{"info", title, message})
}

func (n *recordingNotifier) Error(title, message string) {
	n.notices = append(n.notices, notice{"error", title, message})
}

func (n *recordingNotifier) Confirm(title, message string) bool {
	n.notices = append(n.notices, notice{"confirm", title, message})
	return n.answer
}

func (n *recordingNotifier) last() notice {
	if len(n.notices) == 0 {
		return notice{}
	}
	return n.notices[len(n.notices)-1]
}

// countingDispatcher wraps a Dispatcher and counts requests by kind.
type countingDispatcher struct {
	inner Dispatcher
	kinds []command.Kind
}

func (d *countingDispatcher) Dispatch(ctx context.Context, req command.Request) command.Result {
	d.kinds = append(d.kinds, req.Kind())
	return d.inner.Dispatch(ctx, req)
}

func (d *countingDispatcher) count(k command.Kind) int {
	n := 0
	for _, kind := range d.kinds {
		if kind == k {
			n++
		}
	}
	return n
}

func newTestForm(t *testing.T) (*Form, *recordingNotifier, *countingDispatcher) {
	t.Helper()
	s, err := store.Open(filepath.Join(t.TempDir(), "contacts.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })

	d := &countingDispatcher{inner: command.NewDispatcher(s, nil)}
	n := &recordingNotifier{answer: true}
	f := New(d, n)
	f.Refresh(context.Background())
	return f, n, d
}

func addContact(t *testing.T, f *Form, name, phone string) {
	t.Helper()
	f.Name, f.PhoneNo = name, phone
	f.Add(context.Background())
}

func TestAdd_RequiresBothFields(t *testing.T) {
	f, n, d := newTestForm(t)

	f.Name = "Alice"
	f.Add(context.Background())

	assert.Equal(t, notice{"error", "Error", "Name and Phone Number are required."}, n.last())
	assert.Equal(t, 1, d.count(command.KindList), "no refresh after a failed add")
	assert.Equal(t, "Alice", f.Name, "fields kept for correction")
	assert.Empty(t, f.Rows)
}

func TestAdd_SuccessRefreshesAndClears(t *testing.T) {
	f, n, _ := newTestForm(t)

	addContact(t, f, "Alice", "555-0001")

	assert.Equal(t, notice{"info", "Success", "Contact added successfully."}, n.last())
	assert.Equal(t, []contact.Contact{{ID: 1, Name: "Alice", PhoneNo: "555-0001"}}, f.Rows)
	assert.Empty(t, f.Name)
	assert.Empty(t, f.PhoneNo)
}

func TestAdd_DuplicateKeepsFields(t *testing.T) {
	f, n, _ := newTestForm(t)

	addContact(t, f, "Alice", "555-0001")
	addContact(t, f, "Carl", "555-0001")

	assert.Equal(t, notice{"error", "Error", "Phone number '555-0001' already exists."}, n.last())
	assert.Equal(t, "Carl", f.Name)
	assert.Equal(t, "555-0001", f.PhoneNo)
	assert.Len(t, f.Rows, 1)
}

func TestSelectRow_CopiesFields(t *testing.T) {
	f, _, _ := newTestForm(t)
	addContact(t, f, "Alice", "555-0001")

	f.SelectRow(context.Background(), 1)

	sel, ok := f.Selected()
	require.True(t, ok)
	assert.Equal(t, int64(1), sel.ID)
	assert.Equal(t, "Alice", f.Name)
	assert.Equal(t, "555-0001", f.PhoneNo)
}

func TestSelectRow_NotListed(t *testing.T) {
	f, n, _ := newTestForm(t)

	f.SelectRow(context.Background(), 9)

	assert.Equal(t, "error", n.last().Kind)
	_, ok := f.Selected()
	assert.False(t, ok)
}

func TestSelectRow_VanishedRowClearsFields(t *testing.T) {
	f, _, d := newTestForm(t)
	addContact(t, f, "Alice", "555-0001")

	// Remove the row behind the form's back; the snapshot is now stale.
	res := d.inner.Dispatch(context.Background(), command.Delete{ID: 1})
	require.NoError(t, res.Err)

	f.Name, f.PhoneNo = "typed", "typed"
	f.SelectRow(context.Background(), 1)

	assert.Empty(t, f.Name)
	assert.Empty(t, f.PhoneNo)
	_, ok := f.Selected()
	assert.False(t, ok)
}

func TestUpdate_RequiresSelection(t *testing.T) {
	f, n, d := newTestForm(t)
	f.Name, f.PhoneNo = "Alice", "555-0001"

	f.Update(context.Background())

	assert.Equal(t, notice{"info", "Information", "Please select a contact to update."}, n.last())
	assert.Equal(t, 0, d.count(command.KindUpdatePhone))
}

func TestUpdate_RequiresBothFields(t *testing.T) {
	f, n, _ := newTestForm(t)
	addContact(t, f, "Bob", "555-0002")
	f.SelectRow(context.Background(), 1)

	f.PhoneNo = ""
	f.Update(context.Background())

	assert.Equal(t, notice{"error", "Error", "Name and Phone Number are required."}, n.last())
}

func TestUpdate_PersistsPhoneOnly(t *testing.T) {
	f, n, _ := newTestForm(t)
	addContact(t, f, "Bob", "555-0002")
	f.SelectRow(context.Background(), 1)

	f.Name = "Robert"
	f.PhoneNo = "555-0003"
	f.Update(context.Background())

	assert.Equal(t, notice{"info", "Success", "Contact updated successfully."}, n.last())
	assert.Equal(t, []contact.Contact{{ID: 1, Name: "Bob", PhoneNo: "555-0003"}}, f.Rows)
	assert.Empty(t, f.Name)
	_, ok := f.Selected()
	assert.False(t, ok, "refresh drops the selection")
}

func TestUpdate_Duplicate(t *testing.T) {
	f, n, _ := newTestForm(t)
	addContact(t, f, "Alice", "555-0001")
	addContact(t, f, "Bob", "555-0002")
	f.SelectRow(context.Background(), 2)

	f.PhoneNo = "555-0001"
	f.Update(context.Background())

	assert.Equal(t, notice{"error", "Error", "Phone number '555-0001' already exists."}, n.last())
	sel, ok := f.Selected()
	require.True(t, ok, "selection kept for correction")
	assert.Equal(t, int64(2), sel.ID)
	assert.Equal(t, "555-0002", f.Rows[1].PhoneNo)
}

func TestDelete_RequiresSelection(t *testing.T) {
	f, n, d := newTestForm(t)

	f.Delete(context.Background())

	assert.Equal(t, notice{"info", "Information", "Please select a contact to delete."}, n.last())
	assert.Equal(t, 0, d.count(command.KindDelete))
}

func TestDelete_Declined(t *testing.T) {
	f, n, d := newTestForm(t)
	addContact(t, f, "Alice", "555-0001")
	f.SelectRow(context.Background(), 1)
	n.answer = false

	f.Delete(context.Background())

	assert.Equal(t, notice{"confirm", "Confirm Delete", "Are you sure you want to delete this contact?"}, n.last())
	assert.Equal(t, 0, d.count(command.KindDelete))
	assert.Len(t, f.Rows, 1)
}

func TestDelete_Confirmed(t *testing.T) {
	f, n, _ := newTestForm(t)
	addContact(t, f, "Alice", "555-0001")
	f.SelectRow(context.Background(), 1)

	f.Delete(context.Background())

	assert.Equal(t, notice{"info", "Success", "Contact deleted successfully."}, n.last())
	assert.Empty(t, f.Rows)
	assert.Empty(t, f.Name)
}

func TestDelete_ZeroAffected(t *testing.T) {
	f, n, d := newTestForm(t)
	addContact(t, f, "Alice", "555-0001")
	f.SelectRow(context.Background(), 1)

	res := d.inner.Dispatch(context.Background(), command.Delete{ID: 1})
	require.NoError(t, res.Err)

	f.Delete(context.Background())

	assert.Equal(t, notice{"error", "Error", "Failed to delete contact."}, n.last())
	assert.Empty(t, f.Rows, "stale snapshot refreshed")
}

func TestClear(t *testing.T) {
	f, _, _ := newTestForm(t)
	addContact(t, f, "Alice", "555-0001")
	f.SelectRow(context.Background(), 1)

	f.Clear()

	assert.Empty(t, f.Name)
	assert.Empty(t, f.PhoneNo)
	_, ok := f.Selected()
	assert.False(t, ok)
}

func TestStorageFailure_SurfacedAsDatabaseError(t *testing.T) {
	s, err := store.Open(filepath.Join(t.TempDir(), "contacts.db"))
	require.NoError(t, err)
	n := &recordingNotifier{}
	f := New(command.NewDispatcher(s, nil), n)
	s.Close()

	f.Refresh(context.Background())
	assert.Equal(t, "Database Error", n.last().Title)
	assert.Contains(t, n.last().Message, "Error loading contacts")

	f.Name, f.PhoneNo = "Alice", "555-0001"
	f.Add(context.Background())
	assert.Equal(t, "Database Error", n.last().Title)
	assert.Contains(t, n.last().Message, "Error creating contact")
}
