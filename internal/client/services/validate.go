package services

import (
	"net/mail"
	"unicode/utf8"
)

// Field error messages shown on the signup form.
const (
	msgNameTooShort  = "Name must be at least 2 characters"
	msgEmailInvalid  = "Please enter a valid email address"
	msgSecretTooWeak = "Password must be at least 6 characters"
	msgSecretNoMatch = "Passwords do not match"
)

// emailWellFormed accepts bare addresses only ("ann@x.com"), not the
// display-name forms net/mail would otherwise allow.
func emailWellFormed(email string) bool {
	addr, err := mail.ParseAddress(email)
	return err == nil && addr.Address == email
}

// validateRegistration checks all signup fields and collects every failure,
// so the form can mark each offending field at once. Returns nil when the
// input is clean.
func validateRegistration(name, email, secret, confirm string) *ValidationError {
	fields := map[string]string{}

	if utf8.RuneCountInString(name) < 2 {
		fields["name"] = msgNameTooShort
	}
	if !emailWellFormed(email) {
		fields["email"] = msgEmailInvalid
	}
	if utf8.RuneCountInString(secret) < 6 {
		fields["password"] = msgSecretTooWeak
	}
	if secret != confirm {
		fields["confirm"] = msgSecretNoMatch
	}

	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}
