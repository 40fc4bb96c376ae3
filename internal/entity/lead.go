package entity

// Default status stamped on a lead when intake doesn't supply one.
const DefaultLeadStatus = "Pending Follow-up"

// Lead is one inbound catering inquiry. The json tags mirror the
// dashboard wire format, so a decoded lead serializes 1:1 to what the
// frontend already consumes.
type Lead struct {
	RefNumber       string `json:"refNumber"`
	Timestamp       string `json:"timestamp"`
	ClientName      string `json:"clientName"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	DateOfBirth     string `json:"dateOfBirth"`
	EventDate       string `json:"eventDate"`
	EventType       string `json:"eventType"`
	NumberOfGuests  int    `json:"numberOfGuests"`
	Message         string `json:"message"`
	Status          string `json:"status"`
	CalendarEventID string `json:"calendarEventId"`
}
