package initializers

import (
	"labourlink-backend/config"
	"labourlink-backend/lib/smtp"

	log "github.com/sirupsen/logrus"
)

func InitSmtp() {
	err := smtp.Connect(config.Conf.Smtp.User, config.Conf.Smtp.Password,
		config.Conf.Smtp.Host, config.Conf.Smtp.Port, *config.Conf.Smtp.TLSEnabled)
	if err != nil {
		panic(err.Error())
	}
	if !smtp.Instance.IsConfigured() {
		log.Warn("SMTP is not configured, moderation e-mails are disabled")
	}
}
