package mailer

import "fmt"

// EmailJob is the JSON payload put on the RabbitMQ queue for sending email.
// HTML is optional; Text is recommended as fallback.
type EmailJob struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	Text    string `json:"text,omitempty"`
	HTML    string `json:"html,omitempty"`
}

// WelcomeJob builds the email sent after a successful registration.
func WelcomeJob(to, username string) EmailJob {
	return EmailJob{
		To:      to,
		Subject: "Welcome to Entertainment Hub",
		Text:    fmt.Sprintf("Hi %s,\n\nYour account is ready. Log in and start building your watchlist.\n", username),
		HTML:    fmt.Sprintf(`<p>Hi %s,</p><p>Your account is ready. Log in and start building your watchlist.</p>`, username),
	}
}
