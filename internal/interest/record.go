// Package interest defines the record submitted when a visitor expresses
// interest in a product or sends a general inquiry.
package interest

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ProductGeneralContact is the sentinel product id for inquiries not tied
// to any product.
const ProductGeneralContact = "contact"

// Record is the payload for one expression of interest. It is constructed
// per submission and never mutated afterwards.
type Record struct {
	ID        string
	ProductID string
	Email     string
	Name      string
	Message   string
	CreatedAt time.Time
}

// NewProductInterest builds a record for a product call-to-action ("fake door").
func NewProductInterest(productID, email string) (*Record, error) {
	if strings.TrimSpace(productID) == "" {
		return nil, fmt.Errorf("product id is required")
	}
	if strings.TrimSpace(email) == "" {
		return nil, fmt.Errorf("contact email is required")
	}
	return &Record{
		ID:        uuid.NewString(),
		ProductID: productID,
		Email:     email,
		CreatedAt: time.Now().UTC(),
	}, nil
}

// NewContactInquiry builds a record for the general contact form.
func NewContactInquiry(name, email, message string) (*Record, error) {
	if strings.TrimSpace(email) == "" {
		return nil, fmt.Errorf("contact email is required")
	}
	return &Record{
		ID:        uuid.NewString(),
		ProductID: ProductGeneralContact,
		Email:     email,
		Name:      name,
		Message:   message,
		CreatedAt: time.Now().UTC(),
	}, nil
}

// IsGeneralContact reports whether the record is a general inquiry rather
// than interest in a specific product.
func (r *Record) IsGeneralContact() bool {
	return r.ProductID == ProductGeneralContact
}

// payload is the wire shape expected by the notification endpoint.
type payload struct {
	Product string `json:"product"`
	Email   string `json:"email"`
	Name    string `json:"name,omitempty"`
	Msg     string `json:"msg,omitempty"`
	TS      string `json:"ts"`
}

// MarshalPayload encodes the record as the endpoint's JSON body.
func (r *Record) MarshalPayload() ([]byte, error) {
	return json.Marshal(payload{
		Product: r.ProductID,
		Email:   r.Email,
		Name:    r.Name,
		Msg:     r.Message,
		TS:      r.CreatedAt.Format(time.RFC3339),
	})
}
