package store

import (
	"context"

	"github.com/roach88/contacts/internal/contact"
)

// Insert adds a contact and returns its system-assigned id.
//
// Inputs are stored as given; rejecting empty fields is the caller's job.
// Returns DUPLICATE_PHONE if phoneNo already exists.
func (s *Store) Insert(ctx context.Context, name, phoneNo string) (int64, error) {
	const op = "insert contact"

	result, err := s.db.ExecContext(ctx, `
		INSERT INTO contacts (name, phone_no)
		VALUES (?, ?)
	`, name, phoneNo)
	if err != nil {
		return 0, classifyWriteError(op, phoneNo, err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, contact.NewStorageError(op, err)
	}
	return id, nil
}

// UpdatePhone changes the phone number of the contact with the given id and
// returns the number of rows affected (0 or 1).
//
// A nonexistent id is not an error. Returns DUPLICATE_PHONE if phoneNo is
// held by a different contact. Setting a contact's phone to its current value
// succeeds with one affected row.
func (s *Store) UpdatePhone(ctx context.Context, id int64, phoneNo string) (int64, error) {
	const op = "update contact"

	result, err := s.db.ExecContext(ctx, `
		UPDATE contacts SET phone_no = ? WHERE id = ?
	`, phoneNo, id)
	if err != nil {
		return 0, classifyWriteError(op, phoneNo, err)
	}

	n, err := result.RowsAffected()
	if err != nil {
		return 0, contact.NewStorageError(op, err)
	}
	return n, nil
}

// Delete removes the contact with the given id and returns the number of rows
// affected (0 or 1). Deleting a nonexistent id is a no-op.
func (s *Store) Delete(ctx context.Context, id int64) (int64, error) {
	const op = "delete contact"

	result, err := s.db.ExecContext(ctx, `DELETE FROM contacts WHERE id = ?`, id)
	if err != nil {
		return 0, contact.NewStorageError(op, err)
	}

	n, err := result.RowsAffected()
	if err != nil {
		return 0, contact.NewStorageError(op, err)
	}
	return n, nil
}

// Import inserts all contacts in a single transaction and returns their new
// ids in input order. Any ID set on the input is ignored.
//
// If any record fails (e.g. DUPLICATE_PHONE against the table or within the
// batch) nothing is written.
func (s *Store) Import(ctx context.Context, contacts []contact.Contact) ([]int64, error) {
	const op = "import contacts"

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, contact.NewStorageError(op, err)
	}
	defer tx.Rollback() // No-op if committed

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO contacts (name, phone_no) VALUES (?, ?)`)
	if err != nil {
		return nil, contact.NewStorageError(op, err)
	}
	defer stmt.Close()

	ids := make([]int64, 0, len(contacts))
	for _, c := range contacts {
		result, err := stmt.ExecContext(ctx, c.Name, c.PhoneNo)
		if err != nil {
			return nil, classifyWriteError(op, c.PhoneNo, err)
		}
		id, err := result.LastInsertId()
		if err != nil {
			return nil, contact.NewStorageError(op, err)
		}
		ids = append(ids, id)
	}

	if err := tx.Commit(); err != nil {
		return nil, contact.NewStorageError(op, err)
	}
	return ids, nil
}
