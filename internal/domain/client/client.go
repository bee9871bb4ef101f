package client

import (
	"strconv"
	"strings"

	"github.com/hotel-desk/service-booking/internal/domain"
)

// Client is a guest who files booking requests. Phone and email are free text.
type Client struct {
	ID        int64  `json:"id" bson:"id"`
	FirstName string `json:"first_name" bson:"first_name"`
	LastName  string `json:"last_name" bson:"last_name"`
	Phone     string `json:"phone" bson:"phone"`
	Email     string `json:"email" bson:"email"`
}

// Changes lists the fields of a partial update; nil fields are left untouched.
type Changes struct {
	FirstName *string
	LastName  *string
	Phone     *string
	Email     *string
}

// NewClient validates and trims the fields of a new client.
func NewClient(id int64, firstName, lastName, phone, email string) (Client, error) {
	c := Client{
		ID:        id,
		FirstName: strings.TrimSpace(firstName),
		LastName:  strings.TrimSpace(lastName),
		Phone:     strings.TrimSpace(phone),
		Email:     strings.TrimSpace(email),
	}
	if err := c.validateNames(); err != nil {
		return Client{}, err
	}
	return c, nil
}

// EntityID implements domain.Entity.
func (c Client) EntityID() int64 { return c.ID }

// Apply returns a copy of c with the non-nil changes applied. Names may not become empty.
func (c Client) Apply(ch Changes) (Client, error) {
	updated := c
	if ch.FirstName != nil {
		updated.FirstName = strings.TrimSpace(*ch.FirstName)
	}
	if ch.LastName != nil {
		updated.LastName = strings.TrimSpace(*ch.LastName)
	}
	if ch.Phone != nil {
		updated.Phone = strings.TrimSpace(*ch.Phone)
	}
	if ch.Email != nil {
		updated.Email = strings.TrimSpace(*ch.Email)
	}
	if err := updated.validateNames(); err != nil {
		return Client{}, err
	}
	return updated, nil
}

// Matches reports whether the lower-cased keyword occurs in the client's text fields.
func (c Client) Matches(keyword string) bool {
	text := strings.ToLower(strings.Join([]string{c.FirstName, c.LastName, c.Phone, c.Email}, " "))
	return strings.Contains(text, keyword)
}

func (c Client) validateNames() error {
	if c.FirstName == "" {
		return domain.NewValidationErrorf(domain.ErrEmptyField, "client first name is required")
	}
	if c.LastName == "" {
		return domain.NewValidationErrorf(domain.ErrEmptyField, "client last name is required")
	}
	return nil
}

// NotFound builds the error returned when a client id does not resolve.
func NotFound(id int64) error {
	return domain.NewNotFoundError("Client", strconv.FormatInt(id, 10))
}

// Repository persists the client collection.
type Repository = domain.Repository[Client]
