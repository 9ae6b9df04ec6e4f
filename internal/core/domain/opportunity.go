package domain

import "time"

// Stage represents the pipeline stage of an opportunity.
type Stage string

const (
	StageProspecting   Stage = "prospecting"
	StageQualification Stage = "qualification"
	StageProposal      Stage = "proposal"
	StageNegotiation   Stage = "negotiation"
	StageClosedWon     Stage = "closed_won"
	StageClosedLost    Stage = "closed_lost"
)

// Valid reports whether s is one of the known pipeline stages.
func (s Stage) Valid() bool {
	switch s {
	case StageProspecting, StageQualification, StageProposal,
		StageNegotiation, StageClosedWon, StageClosedLost:
		return true
	}
	return false
}

// Closed reports whether the opportunity has left the pipeline.
func (s Stage) Closed() bool {
	return s == StageClosedWon || s == StageClosedLost
}

// Level is the qualitative priority of an opportunity.
type Level string

const (
	LevelLow    Level = "low"
	LevelMedium Level = "medium"
	LevelHigh   Level = "high"
)

// Valid reports whether l is one of the known levels.
func (l Level) Valid() bool {
	switch l {
	case LevelLow, LevelMedium, LevelHigh:
		return true
	}
	return false
}

// Opportunity is a potential deal against a customer.
type Opportunity struct {
	ID         string    `json:"id" bson:"_id,omitempty"`
	Owner      string    `json:"owner" bson:"owner"`
	CustomerID string    `json:"customer_id" bson:"customer_id"`
	Name       string    `json:"name" bson:"name"`
	Stage      Stage     `json:"stage" bson:"stage"`
	Level      Level     `json:"level" bson:"level"`
	Amount     float64   `json:"amount" bson:"amount"`
	StartDate  time.Time `json:"start_date" bson:"start_date"`
	CloseDate  time.Time `json:"close_date" bson:"close_date"`
	CreatedAt  time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt  time.Time `json:"updated_at" bson:"updated_at"`
}
