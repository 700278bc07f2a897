package store

import (
	"errors"

	"github.com/mattn/go-sqlite3"

	"github.com/roach88/contacts/internal/contact"
)

// isUniqueViolation reports whether err is a SQLite UNIQUE constraint failure.
// The only UNIQUE column is phone_no, and ids are never written explicitly.
func isUniqueViolation(err error) bool {
	var sqliteErr sqlite3.Error
	if !errors.As(err, &sqliteErr) {
		return false
	}
	return sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique
}

// classifyWriteError converts a driver error from an insert or update into a
// *contact.Error.
func classifyWriteError(op, phoneNo string, err error) error {
	if isUniqueViolation(err) {
		return contact.NewDuplicatePhoneError(op, phoneNo, err)
	}
	return contact.NewStorageError(op, err)
}
