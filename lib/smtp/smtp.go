package smtp

import (
	"fmt"
	"strings"

	"github.com/emersion/go-sasl"
	"github.com/emersion/go-smtp"
	log "github.com/sirupsen/logrus"
)

var Instance Provider

type Provider interface {
	SendEMail(from, to, message, subject string) error
	IsConfigured() bool
}

func Connect(user, password, host, port string, tlsEnabled bool) error {
	Instance = &impl{
		user:       user,
		password:   password,
		host:       host,
		port:       port,
		tlsEnabled: tlsEnabled,
	}
	return nil
}

type impl struct {
	user       string
	password   string
	host       string
	port       string
	tlsEnabled bool
}

func (i impl) IsConfigured() bool {
	return i.user != "" && i.host != "" && i.port != ""
}

func (i impl) SendEMail(from, to, message, subject string) (err error) {
	logger := log.
		WithField("sender", from).
		WithField("recipient", to)
	if !i.IsConfigured() {
		logger.Warn("mail not sent, smtp client is not configured")
		return nil
	}
	sendTo := []string{
		to,
	}
	auth := sasl.NewPlainClient("", i.user, i.password)
	body := strings.NewReader(buildMessage(from, to, subject, message))

	if i.tlsEnabled {
		err = smtp.SendMailTLS(i.host+":"+i.port, auth, i.user, sendTo, body)
	} else {
		err = smtp.SendMail(i.host+":"+i.port, auth, i.user, sendTo, body)
	}
	if err != nil {
		logger.WithError(err).Error("failed to send mail")
		return err
	}
	logger.Info("mail sent")
	return nil
}

func buildMessage(from, to, subject, message string) string {
	headers := []string{
		"To: " + to,
		"Subject: LabourLink - " + subject,
		"MIME-version: 1.0",
		`Content-Type: text/plain; charset="UTF-8"`,
	}
	return fmt.Sprintf("%s\r\n\r\n%s\r\n\r\nSender: %s\r\n", strings.Join(headers, "\r\n"), message, from)
}
