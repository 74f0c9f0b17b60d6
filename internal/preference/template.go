package preference

import (
	"bytes"
	"fmt"
	"html/template"
	"io"
	texttemplate "text/template"
	"time"
)

const (
	DefaultEmailSubject = "Reminder: {{.TaskTitle}}"

	DefaultEmailTemplate = `<p>Hi,</p>
<p>Your task <strong>{{.TaskTitle}}</strong> is due at {{.DueAt}}.</p>
{{if .TaskDescription}}<p>{{.TaskDescription}}</p>{{end}}
<p>Good luck!</p>`
)

// EmailData is the data available to reminder subject and body templates.
type EmailData struct {
	TaskID          string
	TaskTitle       string
	TaskDescription string
	DueAt           string
	LeadMinutes     int
}

// RenderEmail renders the subject (plain text) and HTML body for a reminder.
// Empty templates fall back to the defaults. Task fields are escaped in the body.
func RenderEmail(subjectTmpl, bodyTmpl string, data EmailData) (string, string, error) {
	if subjectTmpl == "" {
		subjectTmpl = DefaultEmailSubject
	}
	if bodyTmpl == "" {
		bodyTmpl = DefaultEmailTemplate
	}

	var subject, body bytes.Buffer

	st, err := texttemplate.New("subject").Parse(subjectTmpl)
	if err != nil {
		return "", "", fmt.Errorf("preference.RenderEmail parse subject: %w", err)
	}
	if err := st.Execute(&subject, data); err != nil {
		return "", "", fmt.Errorf("preference.RenderEmail execute subject: %w", err)
	}

	bt, err := template.New("body").Parse(bodyTmpl)
	if err != nil {
		return "", "", fmt.Errorf("preference.RenderEmail parse body: %w", err)
	}
	if err := bt.Execute(&body, data); err != nil {
		return "", "", fmt.Errorf("preference.RenderEmail execute body: %w", err)
	}

	return subject.String(), body.String(), nil
}

// ValidateTemplates checks that both templates parse and only reference
// EmailData fields. Empty templates are valid.
func ValidateTemplates(subjectTmpl, bodyTmpl string) error {
	sample := EmailData{TaskID: "sample", TaskTitle: "Sample", DueAt: time.Now().Format(time.RFC1123), LeadMinutes: 30}

	if subjectTmpl != "" {
		st, err := texttemplate.New("subject").Parse(subjectTmpl)
		if err != nil {
			return fmt.Errorf("%w: email_subject: %v", ErrInvalidPayload, err)
		}
		if err := st.Execute(io.Discard, sample); err != nil {
			return fmt.Errorf("%w: email_subject: %v", ErrInvalidPayload, err)
		}
	}
	if bodyTmpl != "" {
		bt, err := template.New("body").Parse(bodyTmpl)
		if err != nil {
			return fmt.Errorf("%w: email_template: %v", ErrInvalidPayload, err)
		}
		if err := bt.Execute(io.Discard, sample); err != nil {
			return fmt.Errorf("%w: email_template: %v", ErrInvalidPayload, err)
		}
	}
	return nil
}
