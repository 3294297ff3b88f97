package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	v "book-store-service/internal/shared/validation"
)

// CreateCustomerRequest - POST /customers
type CreateCustomerRequest struct {
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phone_number"`
	Address     string `json:"address"`
}

func (r CreateCustomerRequest) Validate() error {
	return v.Ordered(
		v.Field("firstName", r.FirstName, validation.Required),
		v.Field("lastName", r.LastName, validation.Required),
		v.Field("email", r.Email, v.Email...),
		v.Field("phoneNumber", r.PhoneNumber, validation.Required),
		v.Field("address", r.Address, validation.Required),
	)
}

func (r *CreateCustomerRequest) ToEntity() *Customer {
	return &Customer{
		FirstName:   r.FirstName,
		LastName:    r.LastName,
		Email:       r.Email,
		PhoneNumber: r.PhoneNumber,
		Address:     r.Address,
	}
}

// UpdateCustomerRequest - PUT /customers/:id
type UpdateCustomerRequest struct {
	FirstName   *string `json:"first_name,omitempty"`
	LastName    *string `json:"last_name,omitempty"`
	Email       *string `json:"email,omitempty"`
	PhoneNumber *string `json:"phone_number,omitempty"`
	Address     *string `json:"address,omitempty"`
}

func (r UpdateCustomerRequest) Validate() error {
	return v.Ordered(
		v.Field("email", r.Email, validation.Match(v.EmailPattern).Error("Invalid email format")),
	)
}

func (r *UpdateCustomerRequest) ApplyTo(c *Customer) {
	if r.FirstName != nil {
		c.FirstName = *r.FirstName
	}
	if r.LastName != nil {
		c.LastName = *r.LastName
	}
	if r.Email != nil {
		c.Email = *r.Email
	}
	if r.PhoneNumber != nil {
		c.PhoneNumber = *r.PhoneNumber
	}
	if r.Address != nil {
		c.Address = *r.Address
	}
}

type CustomerResponse struct {
	ID          uuid.UUID `json:"id"`
	FirstName   string    `json:"first_name"`
	LastName    string    `json:"last_name"`
	FullName    string    `json:"full_name"`
	Email       string    `json:"email"`
	PhoneNumber string    `json:"phone_number"`
	Address     string    `json:"address"`
}

func (c *Customer) ToResponse() *CustomerResponse {
	return &CustomerResponse{
		ID:          c.ID,
		FirstName:   c.FirstName,
		LastName:    c.LastName,
		FullName:    c.FullName(),
		Email:       c.Email,
		PhoneNumber: c.PhoneNumber,
		Address:     c.Address,
	}
}

func ToResponses(customers []Customer) []CustomerResponse {
	out := make([]CustomerResponse, len(customers))
	for i := range customers {
		out[i] = *customers[i].ToResponse()
	}
	return out
}
