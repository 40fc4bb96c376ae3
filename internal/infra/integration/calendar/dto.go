package calendar

type CreateEventInput struct {
	Title string `json:"title"`
	Date  string `json:"date"` // YYYY-MM-DD
}

type CreateEventResponse struct {
	ID    string `json:"id"`
	Error *struct {
		Message string `json:"message"`
		Code    int    `json:"code"`
	} `json:"error,omitempty"`
}
