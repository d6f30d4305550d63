package contact

// Request is a visitor's contact form submission.
type Request struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// Response acknowledges an accepted submission.
type Response struct {
	ID         string `json:"id"`
	Status     string `json:"status"`
	Message    string `json:"message"`
	ReceivedAt string `json:"receivedAt"`
}
