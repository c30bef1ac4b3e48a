package utils

import (
	"log"
	"os"
	"strconv"
	"sync"

	"github.com/joho/godotenv"
	"gopkg.in/gomail.v2"
)

var (
	dialerOnce sync.Once
	dialer     *gomail.Dialer
)

// mailDialer builds the SMTP dialer once from the environment.
func mailDialer() *gomail.Dialer {
	dialerOnce.Do(func() {
		if err := godotenv.Load(); err != nil {
			log.Println("Warning: Error loading .env file. Using environment variables directly.")
		}
		port, _ := strconv.Atoi(os.Getenv("SMTP_PORT"))
		dialer = gomail.NewDialer(
			os.Getenv("SMTP_HOST"),
			port,
			os.Getenv("EMAIL_USER"),
			os.Getenv("EMAIL_PASS"),
		)
	})
	return dialer
}

// SendEmail delivers an HTML mail through the studio's SMTP account.
func SendEmail(to, subject, body string) error {
	d := mailDialer()

	m := gomail.NewMessage()
	m.SetHeader("From", os.Getenv("EMAIL_USER"))
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)

	return d.DialAndSend(m)
}
