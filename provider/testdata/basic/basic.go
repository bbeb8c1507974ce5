// Package basic contains sample declarations for provider tests.
package basic

import "time"

// User is an account holder. It aggregates profile and address data.
type User struct {
	ID        int64
	Name      string
	Email     *string
	Tags      []string
	CreatedAt time.Time
	Address   Address
	Skipped   string `json:"-"`
	secret    string
}

// Address is a postal address.
type Address struct {
	City string
	Zip  string
}

// Status enumerates account states.
type Status int

const (
	// StatusActive marks a usable account.
	StatusActive Status = 1
	// StatusInactive marks a disabled account.
	StatusInactive Status = 2
)

// Labeled is implemented by values carrying a display label.
type Labeled interface {
	Label() string
}

// Box holds a single value of any type.
type Box[T any] struct {
	Value T
}

// Tagged holds a value that can describe itself.
type Tagged[T Labeled] struct {
	Value T
}
