package models

import "strings"

// Driver is a person allowed to own cars and carry out orders.
// Login and PassHash live in the users table; Driver.ID equals the user ID.
type Driver struct {
	ID int64 `json:"id"`

	Login string `json:"login,omitempty"`

	// Password carries the plaintext password on create/update requests only.
	// It is hashed into PassHash by the service layer and never persisted.
	Password string `json:"password,omitempty"`
	PassHash string `json:"-"`

	Name       string   `json:"name"`
	Surname    string   `json:"surname"`
	Experience int      `json:"experience"`
	Address    string   `json:"address"`
	City       string   `json:"city"`
	Birthday   string   `json:"birthday"`
	Categories []string `json:"categories,omitempty"`
}

// CategoryString joins license categories into the form stored in the database.
func (d Driver) CategoryString() string {
	return strings.Join(d.Categories, ",")
}

// ParseCategories splits a stored category string back into a slice.
// An empty string yields nil.
func ParseCategories(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, ",")
}
