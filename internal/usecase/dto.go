package usecase

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Amount is a float64 that also accepts quoted numbers ("45000") from
// form integrations. Garbage decodes to 0 rather than failing the
// request; rejecting malformed money strings is intentionally not this
// layer's job.
type Amount float64

func (a *Amount) UnmarshalJSON(b []byte) error {
	s := strings.Trim(strings.TrimSpace(string(b)), `"`)
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		*a = 0
		return nil
	}
	*a = Amount(f)
	return nil
}

func (a Amount) MarshalJSON() ([]byte, error) {
	return json.Marshal(float64(a))
}

type CreateLeadInput struct {
	ClientName     string `json:"clientName"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	DateOfBirth    string `json:"dateOfBirth"`
	EventDate      string `json:"eventDate"`
	EventType      string `json:"eventType"`
	NumberOfGuests int    `json:"numberOfGuests"`
	Message        string `json:"message"`
	Status         string `json:"status"`
}

type CreateLeadOutput struct {
	Success   bool   `json:"success"`
	RefNumber string `json:"refNumber"`
	Message   string `json:"message"`
}

type UpsertDealInput struct {
	Status        string `json:"status"`
	BookingAmount Amount `json:"bookingAmount"`
	Notes         string `json:"notes"`
}

type UpsertDealOutput struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
