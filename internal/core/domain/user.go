package domain

import "time"

type User struct {
	ID             uint64
	Email          string
	Username       string
	FullName       *string
	HashedPassword string
	IsActive       bool
	CreatedAt      time.Time
}

// CreateUserInput carries the plaintext password; the service hashes it
// before anything touches the store.
type CreateUserInput struct {
	Email    string
	Username string
	FullName *string
	IsActive bool
	Password string
}

type UpdateUserInput struct {
	Email       *string
	Username    *string
	FullName    *string
	FullNameSet bool
	IsActive    *bool
}
