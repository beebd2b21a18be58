package email

import (
	"context"
	"fmt"
	"time"

	"gopkg.in/gomail.v2"

	"civicpulse/internal/domain/complaint"
	"civicpulse/internal/shared/logger"
	"civicpulse/internal/shared/services/text"
)

type SMTPConfig struct {
	Host        string
	Port        int
	Username    string
	Password    string
	FromAddress string
	FromName    string
}

type mailSender interface {
	DialAndSend(m ...*gomail.Message) error
}

// SMTPNotifier emails the reporter when their complaint is resolved.
type SMTPNotifier struct {
	config   SMTPConfig
	sender   mailSender
	renderer text.Service
	logger   logger.Interface
}

func NewSMTPNotifier(config SMTPConfig, renderer text.Service, logger logger.Interface) *SMTPNotifier {
	return &SMTPNotifier{
		config:   config,
		sender:   gomail.NewDialer(config.Host, config.Port, config.Username, config.Password),
		renderer: renderer,
		logger:   logger,
	}
}

// NotifyResolved sends the resolution notice. Complaints filed without an
// email address are skipped.
func (s *SMTPNotifier) NotifyResolved(_ context.Context, c *complaint.Complaint) error {
	if c.Email() == "" {
		s.logger.Debugw("no reporter email, skipping resolution notice", "complaint_id", c.ID())
		return nil
	}

	subject, body := resolutionNotice(c)
	htmlBody, err := s.renderer.MarkdownToHTML(body)
	if err != nil {
		return fmt.Errorf("failed to render resolution notice: %w", err)
	}

	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.config.FromAddress, s.config.FromName)
	m.SetHeader("To", c.Email())
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)
	m.AddAlternative("text/html", htmlBody)

	if err := s.sender.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	s.logger.Infow("resolution notice sent", "complaint_id", c.ID())
	return nil
}

// resolutionNotice returns the subject and the markdown body of the notice.
func resolutionNotice(c *complaint.Complaint) (subject, body string) {
	resolvedAt := ""
	if at := c.CompletedAt(); at != nil {
		resolvedAt = at.Format(time.RFC1123)
	}

	greeting := "Hello"
	if c.Name() != "" {
		greeting = "Hello " + c.Name()
	}

	subject = fmt.Sprintf("Your complaint %s has been resolved", c.ID())
	body = fmt.Sprintf(`%s,

Your complaint **%s** (ID %s) was resolved by the %s department on %s.

Thank you for helping improve your city.
`, greeting, c.Title(), c.ID(), c.Department(), resolvedAt)

	return subject, body
}

// LogNotifier records the notice in the log instead of sending it.
type LogNotifier struct {
	logger logger.Interface
}

func NewLogNotifier(logger logger.Interface) *LogNotifier {
	return &LogNotifier{logger: logger}
}

func (n *LogNotifier) NotifyResolved(_ context.Context, c *complaint.Complaint) error {
	n.logger.Infow("resolution notice sent to citizen",
		"complaint_id", c.ID(),
		"department", c.Department().String(),
		"has_email", c.Email() != "",
	)
	return nil
}
