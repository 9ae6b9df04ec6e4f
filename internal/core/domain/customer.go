package domain

import "time"

// CustomerStatus represents the commercial state of a customer account.
type CustomerStatus string

const (
	CustomerActive   CustomerStatus = "active"
	CustomerInactive CustomerStatus = "inactive"
	CustomerProspect CustomerStatus = "prospect"
)

// Valid reports whether s is one of the known customer statuses.
func (s CustomerStatus) Valid() bool {
	switch s {
	case CustomerActive, CustomerInactive, CustomerProspect:
		return true
	}
	return false
}

// Customer is a company or person the owning user sells to.
type Customer struct {
	ID        string         `json:"id" bson:"_id,omitempty"`
	Owner     string         `json:"owner" bson:"owner"`
	Name      string         `json:"name" bson:"name"`
	Email     string         `json:"email" bson:"email"`
	Phone     string         `json:"phone" bson:"phone"`
	Address   string         `json:"address" bson:"address"`
	Status    CustomerStatus `json:"status" bson:"status"`
	CreatedAt time.Time      `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time      `json:"updated_at" bson:"updated_at"`
}
