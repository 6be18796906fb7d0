package reporthandler

import (
	"fmt"
	"labourlink-backend/config"
	"labourlink-backend/db"
	reportstore "labourlink-backend/lib/report/store"
	"labourlink-backend/lib/smtp"
	apperrors "labourlink-backend/lib/utils/app-errors"
	"labourlink-backend/models"
	reportapimodels "labourlink-backend/models/api/report"
	dbmodels "labourlink-backend/models/db"

	log "github.com/sirupsen/logrus"
)

type Provider interface {
	Reasons(targetRole models.UserRole) ([]models.ReportCategory, error)
	Submit(fromID string, data reportapimodels.ReportData) (id string, err error)
}

var Instance Provider

func NewHandler() {
	Instance = NewInstance(reportstore.NewInstance(db.DB), smtp.Instance, config.Conf.Moderation.Email)
}

// NewInstance accepts a nil mailer or an empty moderation address; reports are then only stored.
func NewInstance(store reportstore.Provider, mailer smtp.Provider, moderationEmail string) Provider {
	return impl{
		store:           store,
		mailer:          mailer,
		moderationEmail: moderationEmail,
	}
}

type impl struct {
	store           reportstore.Provider
	mailer          smtp.Provider
	moderationEmail string
}

func (i impl) Reasons(targetRole models.UserRole) ([]models.ReportCategory, error) {
	if !targetRole.IsValid() {
		return nil, apperrors.Validationf("unknown target role: %v", targetRole)
	}
	return models.GetReportReasons(targetRole), nil
}

func (i impl) Submit(fromID string, data reportapimodels.ReportData) (string, error) {
	if err := data.Validate(); err != nil {
		return "", apperrors.NewValidation(err.Error())
	}
	if fromID == data.ToID {
		return "", apperrors.NewValidation("you cannot report yourself")
	}
	rec := dbmodels.Report{
		FromID:     fromID,
		ToID:       data.ToID,
		TargetRole: data.TargetRole,
		Reason:     data.GetReason(),
		Status:     dbmodels.ReportStatusOpen,
	}
	id, err := i.store.Create(rec)
	if err != nil {
		return "", apperrors.Transient(err, "failed to save report")
	}
	logger := log.
		WithField("report_id", id).
		WithField("from_id", fromID).
		WithField("to_id", data.ToID)
	logger.Info("user reported")
	if i.mailer != nil && i.moderationEmail != "" {
		go func() {
			msg := fmt.Sprintf("Report %v\r\nReported %v: %v\r\nReason: %v", id, data.TargetRole.ToHuman(), data.ToID, rec.Reason)
			if err := i.mailer.SendEMail(fromID, i.moderationEmail, msg, "New report"); err != nil {
				logger.WithError(err).Error("failed to notify moderators")
			}
		}()
	}
	return id, nil
}
