package contact

// Contact is a single (id, name, phone number) record.
type Contact struct {
	ID      int64  `json:"id" yaml:"id,omitempty"`
	Name    string `json:"name" yaml:"name"`
	PhoneNo string `json:"phone_no" yaml:"phone_no"`
}

// Validate reports a VALIDATION_ERROR when either field is empty. Values are
// checked exactly as entered: whitespace counts as content.
func Validate(name, phoneNo string) error {
	if name == "" || phoneNo == "" {
		return &Error{
			Code:    ErrCodeValidation,
			Message: "Name and Phone Number are required.",
		}
	}
	return nil
}
