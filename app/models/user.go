package models

// Validate checks if the user meets all validation requirements
func (u *User) Validate() error {
	return validate.Struct(u)
}

// Sanitized returns a copy of the user with the password hash removed.
func (u *User) Sanitized() *User {
	out := *u
	out.Password = ""
	return &out
}
