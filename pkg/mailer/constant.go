package mailer

import "time"

const (
	DefaultBaseURL = "https://api.resend.com"
	DefaultTimeout = 15 * time.Second

	sendPath = "/emails"
)
