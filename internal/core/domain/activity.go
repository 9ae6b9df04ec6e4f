package domain

import "time"

// ActivityAction identifies the kind of mutation an activity records.
type ActivityAction string

const (
	ActionCreated ActivityAction = "created"
	ActionUpdated ActivityAction = "updated"
	ActionDeleted ActivityAction = "deleted"
)

// Activity is an audit record of a CRUD mutation, written asynchronously by
// the queue dispatcher.
type Activity struct {
	ID       string         `json:"id" bson:"_id,omitempty"`
	Owner    string         `json:"owner" bson:"owner"`
	Action   ActivityAction `json:"action" bson:"action"`
	Entity   string         `json:"entity" bson:"entity"`
	EntityID string         `json:"entity_id" bson:"entity_id"`
	At       time.Time      `json:"at" bson:"at"`
}
