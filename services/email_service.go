// services/email_service.go - best-effort registration notifications.
// Resend's HTTP API is preferred; SMTP is the fallback. When neither
// is configured, sends are skipped with a warning.
package services

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/smtp"
	"os"
	"time"

	"aiih/registration"
)

const resendEndpoint = "https://api.resend.com/emails"

type EmailService struct {
	resendKey string
	smtpHost  string
	smtpPort  string
	smtpUser  string
	smtpPass  string
	from      string
	client    *http.Client
}

func NewEmailServiceFromEnv() *EmailService {
	from := os.Getenv("EMAIL_FROM")
	if from == "" {
		from = "KU MedAI Challenge <noreply@resend.dev>"
	}
	return &EmailService{
		resendKey: os.Getenv("RESEND_API_KEY"),
		smtpHost:  os.Getenv("SMTP_HOST"),
		smtpPort:  getEnvOrDefault("SMTP_PORT", "587"),
		smtpUser:  os.Getenv("SMTP_USER"),
		smtpPass:  os.Getenv("SMTP_PASSWORD"),
		from:      from,
		client:    &http.Client{Timeout: 10 * time.Second},
	}
}

func (e *EmailService) Configured() bool {
	return e.resendKey != "" || e.smtpHost != ""
}

// Send delivers one message through whichever transport is configured.
func (e *EmailService) Send(to, subject, html, text string) error {
	if !e.Configured() {
		log.Println("Warning: email service not configured, set RESEND_API_KEY or SMTP_* variables")
		return nil
	}
	if e.resendKey != "" {
		return e.sendWithResend(to, subject, html, text)
	}
	return e.sendWithSMTP(to, subject, text)
}

// SendTeamRegistration sends the confirmation the leader receives
// after a successful team submission.
func (e *EmailService) SendTeamRegistration(to, teamName, leaderName string, memberCount int) error {
	subject := fmt.Sprintf("Team %q Registered - %s", teamName, registration.ChallengeName)
	html, text := registrationEmailBody(teamName, leaderName, memberCount)
	return e.Send(to, subject, html, text)
}

func (e *EmailService) sendWithResend(to, subject, html, text string) error {
	payload, err := json.Marshal(map[string]interface{}{
		"from":    e.from,
		"to":      to,
		"subject": subject,
		"html":    html,
		"text":    text,
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequest(http.MethodPost, resendEndpoint, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+e.resendKey)

	resp, err := e.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("resend API returned %d: %s", resp.StatusCode, body)
	}
	return nil
}

func (e *EmailService) sendWithSMTP(to, subject, text string) error {
	if e.smtpHost == "" {
		return errors.New("SMTP not configured")
	}
	msg := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s\r\n", e.from, to, subject, text)

	var auth smtp.Auth
	if e.smtpUser != "" {
		auth = smtp.PlainAuth("", e.smtpUser, e.smtpPass, e.smtpHost)
	}
	return smtp.SendMail(e.smtpHost+":"+e.smtpPort, auth, e.from, []string{to}, []byte(msg))
}

func registrationEmailBody(teamName, leaderName string, memberCount int) (html, text string) {
	html = fmt.Sprintf(`<html><body style="font-family: Helvetica, Arial, sans-serif;">
<h1>%s</h1>
<p>%s</p>
<h2>You're registered! 🎉</h2>
<p>Hi <strong>%s</strong>,</p>
<p>Congratulations! Your team, <strong>%s</strong>, has been successfully registered
for the %s. We're excited to see your innovative solutions!</p>
<p>Registered members: <strong>%d</strong></p>
<p>Demo Day &amp; Pitching takes place on %s at Kasetsart University.</p>
<p>Questions? Reach us at %s.</p>
</body></html>`,
		registration.ChallengeName, registration.ChallengeHeadline,
		leaderName, teamName, registration.ChallengeName, memberCount,
		registration.FinalPitchDate.Format("January 2, 2006"), registration.ContactEmail)

	text = fmt.Sprintf(`%s

Hi %s,

Congratulations! Your team, %s, has been successfully registered for the %s.
Registered members: %d
Demo Day & Pitching: %s at Kasetsart University.

Questions? Reach us at %s.`,
		registration.ChallengeName, leaderName, teamName, registration.ChallengeName,
		memberCount, registration.FinalPitchDate.Format("January 2, 2006"), registration.ContactEmail)

	return html, text
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
