package handler

import (
	"context"
	"os"

	"github.com/voxlab/alpha/core"
	"github.com/wneessen/go-mail"
)

// Environment variables holding the SMTP credentials. These are the only
// external configuration the assistant requires, and only for email.
const (
	EnvEmailUser = "EMAIL_USER"
	EnvEmailPass = "EMAIL_PASS"
)

const (
	defaultSMTPHost = "smtp.gmail.com"
	defaultSMTPPort = 587
)

// EmailOptions configures the EmailHandler.
type EmailOptions struct {
	// Host and Port of the SMTP server. Submission uses STARTTLS.
	Host string
	Port int
	// Credentials supplies the SMTP username and password. Defaults to
	// reading EMAIL_USER and EMAIL_PASS from the environment at send time.
	Credentials func() (user, pass string)
	// Send performs the actual transmission. Overridable for tests; the
	// default dials Host:Port with STARTTLS and plain auth.
	Send func(ctx context.Context, host string, port int, user, pass string, msg *mail.Msg) error
}

// EmailHandler sends an email over SMTP submission (STARTTLS on port 587)
// using the resolved recipient, subject and body slots. Missing credentials
// are a configuration error reported to the user, never a crash.
type EmailHandler struct {
	host  string
	port  int
	creds func() (string, string)
	send  func(context.Context, string, int, string, string, *mail.Msg) error
}

// NewEmailHandler constructs an EmailHandler with optional overrides.
func NewEmailHandler(optFns ...func(o *EmailOptions)) *EmailHandler {
	opts := EmailOptions{
		Host: defaultSMTPHost,
		Port: defaultSMTPPort,
		Credentials: func() (string, string) {
			return os.Getenv(EnvEmailUser), os.Getenv(EnvEmailPass)
		},
		Send: sendSMTP,
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	return &EmailHandler{host: opts.Host, port: opts.Port, creds: opts.Credentials, send: opts.Send}
}

// Name returns the handler identifier.
func (h *EmailHandler) Name() string { return "send_email" }

// Handle composes and sends the message. Exactly one attempt; any transport
// fault becomes a failure Outcome.
func (h *EmailHandler) Handle(tc *core.TurnContext, slots core.SlotSet) core.Outcome {
	user, pass := h.creds()
	if user == "" || pass == "" {
		tc.Logger().Error("send_email.missing_credentials",
			"error", NewHandlerError(h.Name(), "EMAIL_USER or EMAIL_PASS not set", CodeConfig).Error())
		return core.Failf("Email credentials are not configured. Please set the %s and %s environment variables.", EnvEmailUser, EnvEmailPass)
	}

	msg := mail.NewMsg()
	if err := msg.From(user); err != nil {
		tc.Logger().Error("send_email.invalid_sender", "error", err.Error())
		return core.Failf("Failed to send the email.")
	}
	if err := msg.To(slots.Get(core.SlotRecipient)); err != nil {
		tc.Logger().Error("send_email.invalid_recipient", "error", err.Error())
		return core.Failf("That does not look like a valid email address.")
	}

	msg.Subject(slots.Get(core.SlotSubject))
	msg.SetBodyString(mail.TypeTextPlain, slots.Get(core.SlotBody))

	if err := h.send(tc.Context(), h.host, h.port, user, pass, msg); err != nil {
		tc.Logger().Error("send_email.transmission_failed",
			"error", NewHandlerError(h.Name(), err.Error(), CodeNetwork).Error())
		return core.Failf("Failed to send the email.")
	}

	return core.Okf("Email sent successfully.")
}

// sendSMTP dials the submission port with mandatory STARTTLS and plain auth,
// sends the message, and closes the connection.
func sendSMTP(ctx context.Context, host string, port int, user, pass string, msg *mail.Msg) error {
	client, err := mail.NewClient(host,
		mail.WithPort(port),
		mail.WithTLSPortPolicy(mail.TLSMandatory),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(user),
		mail.WithPassword(pass),
	)
	if err != nil {
		return err
	}

	return client.DialAndSendWithContext(ctx, msg)
}
