package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Request types ---

type customerRequest struct {
	Name    string `json:"name"    validate:"required"`
	Email   string `json:"email"   validate:"required,email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	Status  string `json:"status"  validate:"omitempty,oneof=active inactive prospect"`
}

type contactRequest struct {
	CustomerID string `json:"customer_id" validate:"required"`
	FirstName  string `json:"first_name"  validate:"required"`
	LastName   string `json:"last_name"   validate:"required"`
	Email      string `json:"email"       validate:"required,email"`
	Phone      string `json:"phone"`
	Position   string `json:"position"`
}

type opportunityRequest struct {
	CustomerID string  `json:"customer_id" validate:"required"`
	Name       string  `json:"name"        validate:"required"`
	Stage      string  `json:"stage"       validate:"omitempty,oneof=prospecting qualification proposal negotiation closed_won closed_lost"`
	Level      string  `json:"level"       validate:"omitempty,oneof=low medium high"`
	Amount     float64 `json:"amount"      validate:"gte=0"`
	StartDate  string  `json:"start_date"  validate:"required"`
	CloseDate  string  `json:"close_date"  validate:"required"`
}

type taskRequest struct {
	CustomerID  string `json:"customer_id"`
	Title       string `json:"title"    validate:"required"`
	Description string `json:"description"`
	Status      string `json:"status"   validate:"omitempty,oneof=pending in_progress done"`
	Priority    string `json:"priority" validate:"omitempty,oneof=low medium high"`
	DueDate     string `json:"due_date"`
}

const dateLayout = "2006-01-02"

// parseDate parses a calendar date field, tolerating an empty value.
func parseDate(field, value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, echo.NewHTTPError(http.StatusUnprocessableEntity,
			field+" must be a date in YYYY-MM-DD format")
	}
	return t, nil
}
