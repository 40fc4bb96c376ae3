package mail

type FollowUpEmailData struct {
	Name      string
	RefNumber string
	EventType string
	EventDate string
}

type EmailSender struct {
	Host     string
	Port     int
	User     string
	Password string
}
