package customer

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Customer identity record. Password hashing and token issuance live in
// internal/pkg; this entity only carries the profile.
type Customer struct {
	id           uuid.UUID
	username     Username
	email        Email
	firstName    string
	passwordHash string
	createdAt    time.Time
}

func NewCustomer(username Username, email Email, firstName, passwordHash string) *Customer {
	return &Customer{
		id:           uuid.New(),
		username:     username,
		email:        email,
		firstName:    strings.TrimSpace(firstName),
		passwordHash: passwordHash,
	}
}

func Reconstruct(id uuid.UUID, username Username, email Email, firstName, passwordHash string, createdAt time.Time) *Customer {
	return &Customer{
		id:           id,
		username:     username,
		email:        email,
		firstName:    firstName,
		passwordHash: passwordHash,
		createdAt:    createdAt.UTC(),
	}
}

// UpdateProfile applies a partial profile edit. Empty first name keeps the
// current value, mirroring the registration-era behavior of the API.
func (c *Customer) UpdateProfile(firstName string, email *Email) {
	if trimmed := strings.TrimSpace(firstName); trimmed != "" {
		c.firstName = trimmed
	}
	if email != nil {
		c.email = *email
	}
}

func (c *Customer) ID() uuid.UUID        { return c.id }
func (c *Customer) Username() Username   { return c.username }
func (c *Customer) Email() Email         { return c.email }
func (c *Customer) FirstName() string    { return c.firstName }
func (c *Customer) PasswordHash() string { return c.passwordHash }
func (c *Customer) CreatedAt() time.Time { return c.createdAt }
