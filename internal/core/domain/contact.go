package domain

import "time"

// Contact is an individual reachable at a customer account.
type Contact struct {
	ID         string    `json:"id" bson:"_id,omitempty"`
	Owner      string    `json:"owner" bson:"owner"`
	CustomerID string    `json:"customer_id" bson:"customer_id"`
	FirstName  string    `json:"first_name" bson:"first_name"`
	LastName   string    `json:"last_name" bson:"last_name"`
	Email      string    `json:"email" bson:"email"`
	Phone      string    `json:"phone" bson:"phone"`
	Position   string    `json:"position" bson:"position"`
	CreatedAt  time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt  time.Time `json:"updated_at" bson:"updated_at"`
}
