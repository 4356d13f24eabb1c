package mailservice

// sendEmailRequest тело запроса POST /emails (Resend-совместимый API)
type sendEmailRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
}

// sendEmailResponse ответ почтового API
type sendEmailResponse struct {
	ID string `json:"id"`
}

// errorResponse модель ошибки почтового API
type errorResponse struct {
	Name    string `json:"name"`
	Message string `json:"message"`
}
