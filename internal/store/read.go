package store

import (
	"context"
	"database/sql"
	"errors"

	"github.com/roach88/contacts/internal/contact"
)

// List returns all contacts in insertion order.
//
// Returns an empty slice (not nil) if no contacts exist.
func (s *Store) List(ctx context.Context) ([]contact.Contact, error) {
	const op = "list contacts"

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, phone_no
		FROM contacts
		ORDER BY id ASC
	`)
	if err != nil {
		return nil, contact.NewStorageError(op, err)
	}
	defer rows.Close()

	contacts := []contact.Contact{}
	for rows.Next() {
		var c contact.Contact
		if err := rows.Scan(&c.ID, &c.Name, &c.PhoneNo); err != nil {
			return nil, contact.NewStorageError(op, err)
		}
		contacts = append(contacts, c)
	}

	if err := rows.Err(); err != nil {
		return nil, contact.NewStorageError(op, err)
	}

	return contacts, nil
}

// Get retrieves a single contact by id.
// Returns found=false with a nil error if no row has that id.
func (s *Store) Get(ctx context.Context, id int64) (contact.Contact, bool, error) {
	var c contact.Contact
	err := s.db.QueryRowContext(ctx, `
		SELECT id, name, phone_no
		FROM contacts
		WHERE id = ?
	`, id).Scan(&c.ID, &c.Name, &c.PhoneNo)
	if errors.Is(err, sql.ErrNoRows) {
		return contact.Contact{}, false, nil
	}
	if err != nil {
		return contact.Contact{}, false, contact.NewStorageError("get contact", err)
	}
	return c, true, nil
}
