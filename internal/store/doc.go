// Package store provides SQLite-backed durable storage for contacts.
//
// The store owns a single table:
//
//	contacts(id INTEGER PRIMARY KEY AUTOINCREMENT,
//	         name TEXT NOT NULL,
//	         phone_no TEXT NOT NULL UNIQUE)
//
// # Guarantees
//
//   - Phone numbers are unique. The UNIQUE constraint is the only safety net
//     when two processes share a file; violations surface as DUPLICATE_PHONE.
//   - Every operation is a single statement and relies on SQLite's statement
//     atomicity. Import is the one exception and runs in a transaction.
//   - List returns rows in insertion order (ORDER BY id ASC).
//   - A missing id is never an error: Get reports found=false and the
//     mutations report zero affected rows.
//   - No driver error escapes unclassified; every failure is a
//     *contact.Error.
//
// # Database Configuration
//
//   - WAL mode
//   - synchronous=NORMAL
//   - busy_timeout=5000
//   - One open connection held for the lifetime of the Store
package store
