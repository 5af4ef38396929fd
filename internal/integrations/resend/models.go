package resend

// Email письмо для отправки через Resend API
type Email struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
	ReplyTo string   `json:"reply_to,omitempty"`
}

// SendResponse ответ Resend на успешную отправку
type SendResponse struct {
	ID string `json:"id"`
}

// ErrorResponse модель ошибки от Resend
type ErrorResponse struct {
	StatusCode int    `json:"statusCode"`
	Name       string `json:"name"`
	Message    string `json:"message"`
}
