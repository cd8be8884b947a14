package utils

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"gopkg.in/gomail.v2"
)

// SendPasswordResetEmail mails a reset link to the user (async).
func SendPasswordResetEmail(to, username, resetLink string) {
	go func() {
		host := os.Getenv("SMTP_HOST")
		portStr := os.Getenv("SMTP_PORT")
		smtpUser := os.Getenv("SMTP_USERNAME")
		smtpPass := os.Getenv("SMTP_PASSWORD")
		from := os.Getenv("SMTP_FROM")

		port, _ := strconv.Atoi(portStr)

		body := fmt.Sprintf(
			"<p>Hello %s,</p><p>You requested a password reset. Follow the link below to choose a new password:</p><p><a href=%q>%s</a></p><p>The link is valid for 24 hours. If you did not request a reset, ignore this email.</p>",
			username, resetLink, resetLink)

		m := gomail.NewMessage()
		m.SetHeader("From", from)
		m.SetHeader("To", to)
		m.SetHeader("Subject", "Password reset")
		m.SetBody("text/html", body)

		d := gomail.NewDialer(host, port, smtpUser, smtpPass)
		if err := d.DialAndSend(m); err != nil {
			log.Printf("send reset email: %v", err)
		}
	}()
}
