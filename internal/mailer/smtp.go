package mailer

import (
	"context"
	"fmt"
	"strings"

	mail "github.com/wneessen/go-mail"
)

// etherealHost is the SMTP host of the Ethereal test inbox. Messages sent
// through it are never delivered; they are viewable at a preview URL instead.
const etherealHost = "smtp.ethereal.email"

// SMTPConfig holds SMTP transport configuration.
type SMTPConfig struct {
	Host        string
	Port        int
	Username    string
	Password    string
	Secure      bool
	SenderEmail string
	SenderName  string
}

// SMTPSender implements Sender over an authenticated SMTP connection.
type SMTPSender struct {
	client *mail.Client
	config SMTPConfig
}

// NewSMTPSender creates an SMTP-backed sender. Secure selects implicit TLS;
// otherwise STARTTLS is negotiated opportunistically.
func NewSMTPSender(cfg SMTPConfig) (*SMTPSender, error) {
	opts := []mail.Option{
		mail.WithPort(cfg.Port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(cfg.Username),
		mail.WithPassword(cfg.Password),
	}
	if cfg.Secure {
		opts = append(opts, mail.WithSSL())
	} else {
		opts = append(opts, mail.WithTLSPolicy(mail.TLSOpportunistic))
	}

	client, err := mail.NewClient(cfg.Host, opts...)
	if err != nil {
		return nil, fmt.Errorf("smtp: failed to create client: %w", err)
	}

	return &SMTPSender{client: client, config: cfg}, nil
}

// Send implements Sender.
func (s *SMTPSender) Send(ctx context.Context, email *Email) (Result, error) {
	msg := mail.NewMsg()

	from := email.From
	if from == "" {
		from = Recipient(s.config.SenderName, s.config.SenderEmail)
	}
	if err := msg.From(from); err != nil {
		return Result{}, fmt.Errorf("smtp: invalid sender address: %w", err)
	}
	if err := msg.To(email.To...); err != nil {
		return Result{}, fmt.Errorf("smtp: invalid recipient address: %w", err)
	}
	if email.ReplyTo != "" {
		if err := msg.ReplyTo(email.ReplyTo); err != nil {
			return Result{}, fmt.Errorf("smtp: invalid reply-to address: %w", err)
		}
	}

	msg.Subject(email.Subject)
	msg.SetBodyString(mail.TypeTextPlain, email.Text)
	if email.HTML != "" {
		msg.AddAlternativeString(mail.TypeTextHTML, email.HTML)
	}
	msg.SetMessageID()

	if err := s.client.DialAndSendWithContext(ctx, msg); err != nil {
		return Result{}, fmt.Errorf("smtp: failed to send email: %w", err)
	}

	id := strings.Trim(msg.GetMessageID(), "<>")

	return Result{MessageID: id, PreviewURL: previewURL(s.config.Host, id)}, nil
}

// previewURL maps a message sent through a known test host to its web
// preview. Production hosts yield no preview.
func previewURL(host, messageID string) string {
	if !strings.EqualFold(host, etherealHost) || messageID == "" {
		return ""
	}
	return "https://ethereal.email/message/" + messageID
}
