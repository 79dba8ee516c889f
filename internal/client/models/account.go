// Package models defines the identity and dashboard record types shared by
// stores, services and views.
package models

// Account is a registered identity as persisted in the account store.
//
// Password is kept in cleartext: this client simulates a remote identity
// service inside local storage and is not a credential vault. Anything
// beyond a simulation needs a salted one-way hash here instead.
type Account struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SessionIdentity is the non-secret projection of an Account exposed once
// authenticated. It is a cached claim: it is not re-derived from the account
// store on every read.
type SessionIdentity struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Identity returns the session projection of the account, with the
// password stripped.
func (a Account) Identity() SessionIdentity {
	return SessionIdentity{ID: a.ID, Name: a.Name, Email: a.Email}
}
