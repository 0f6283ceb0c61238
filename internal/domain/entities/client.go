package entities

import "time"

// Client is a registered customer of the atelier.
//
// Storage model (DynamoDB):
//   - PK: id
//
// RegisteredAt is stamped at creation and never changes afterwards.
type Client struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Phone        string    `json:"phone"`
	Email        string    `json:"email,omitempty"`
	Address      string    `json:"address,omitempty"`
	RegisteredAt time.Time `json:"registered_at"`
}
