package services

import (
	"crypto/tls"
	"fmt"

	"github.com/tablelink/restaurant-backend/internal/config"
	"github.com/tablelink/restaurant-backend/internal/models"
	"gopkg.in/gomail.v2"
)

type EmailService struct {
	config *config.Config
}

func NewEmailService(config *config.Config) *EmailService {
	return &EmailService{config: config}
}

func (s *EmailService) SendEmail(to, subject, body string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.config.FromEmail)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)

	d := gomail.NewDialer(s.config.SMTPHost, s.config.SMTPPort, s.config.SMTPUsername, s.config.SMTPPassword)
	d.TLSConfig = &tls.Config{InsecureSkipVerify: true}

	return d.DialAndSend(m)
}

func (s *EmailService) SendReservationConfirmation(r *models.Reservation) error {
	subject := fmt.Sprintf("[%s] Reservation confirmed for %s %s", s.config.RestaurantName, r.VisitDate, r.VisitTime)
	body := fmt.Sprintf(`
		<h2>Your reservation is confirmed</h2>
		<p>Hello %s,</p>
		<p>We look forward to seeing you at %s.</p>
		<ul>
			<li><strong>Date:</strong> %s</li>
			<li><strong>Time:</strong> %s</li>
			<li><strong>Party size:</strong> %d</li>
		</ul>
		<p>Reservation number: %d</p>
	`, r.CustomerName, s.config.RestaurantName, r.VisitDate, r.VisitTime, r.PartySize, r.ID)

	return s.SendEmail(r.Email, subject, body)
}

func (s *EmailService) SendReservationCancellation(r *models.Reservation) error {
	subject := fmt.Sprintf("[%s] Reservation cancelled for %s %s", s.config.RestaurantName, r.VisitDate, r.VisitTime)
	body := fmt.Sprintf(`
		<h2>Your reservation has been cancelled</h2>
		<p>Hello %s,</p>
		<p>Your reservation at %s was cancelled.</p>
		<ul>
			<li><strong>Date:</strong> %s</li>
			<li><strong>Time:</strong> %s</li>
			<li><strong>Party size:</strong> %d</li>
		</ul>
		<p>We hope to welcome you another time.</p>
	`, r.CustomerName, s.config.RestaurantName, r.VisitDate, r.VisitTime, r.PartySize)

	return s.SendEmail(r.Email, subject, body)
}
