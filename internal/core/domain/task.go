package domain

import "time"

// TaskStatus represents the lifecycle state of a task.
type TaskStatus string

const (
	TaskPending    TaskStatus = "pending"
	TaskInProgress TaskStatus = "in_progress"
	TaskDone       TaskStatus = "done"
)

// Valid reports whether s is one of the known task statuses.
func (s TaskStatus) Valid() bool {
	switch s {
	case TaskPending, TaskInProgress, TaskDone:
		return true
	}
	return false
}

// Task is a follow-up item assigned to the owning user, optionally linked
// to a customer.
type Task struct {
	ID          string     `json:"id" bson:"_id,omitempty"`
	Owner       string     `json:"owner" bson:"owner"`
	CustomerID  string     `json:"customer_id,omitempty" bson:"customer_id,omitempty"`
	Title       string     `json:"title" bson:"title"`
	Description string     `json:"description" bson:"description"`
	Status      TaskStatus `json:"status" bson:"status"`
	Priority    string     `json:"priority" bson:"priority"`
	DueDate     time.Time  `json:"due_date" bson:"due_date"`
	CreatedAt   time.Time  `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at" bson:"updated_at"`
}
