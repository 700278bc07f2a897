// Package contact defines the contact record and the error taxonomy shared by
// the storage, command, and presentation layers.
//
// A Contact is the only entity: a system-assigned integer ID, a non-empty
// name, and a non-empty phone number that is unique across all contacts.
// The name never changes after creation; only the phone number can be
// updated.
//
// # Errors
//
// Every failure crossing a layer boundary is a *Error carrying a Code:
//   - CONNECTION_FAILURE: the backing store cannot be opened
//   - SCHEMA_ERROR: the contacts table cannot be created
//   - DUPLICATE_PHONE: an insert or update would repeat a phone number
//   - VALIDATION_ERROR: a required field is empty
//   - STORAGE_ERROR: any other persistence failure
//
// A missing row is not an error; lookups report it with a found flag and
// mutations with an affected count of zero.
package contact
