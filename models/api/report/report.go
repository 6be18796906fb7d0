package reportapimodels

import (
	"labourlink-backend/models"
	"strings"

	"github.com/pkg/errors"
)

const maxCustomReasonLen = 500

type ReportData struct {
	ToID         string          `json:"to_id"`
	TargetRole   models.UserRole `json:"target_role"`
	Reason       string          `json:"reason"`        // one of the catalogue reasons or "Other"
	CustomReason string          `json:"custom_reason"` // required when reason is "Other"
}

func (r ReportData) Validate() error {
	if strings.TrimSpace(r.ToID) == "" {
		return errors.New("reported user id is required")
	}
	if !r.TargetRole.IsValid() {
		return errors.Errorf("unknown target role: %v", r.TargetRole)
	}
	if r.Reason == models.ReportReasonOther {
		custom := strings.TrimSpace(r.CustomReason)
		if custom == "" {
			return errors.New("describe the reason")
		}
		if len(custom) > maxCustomReasonLen {
			return errors.Errorf("reason is longer than %v characters", maxCustomReasonLen)
		}
		return nil
	}
	if !models.IsKnownReportReason(r.TargetRole, r.Reason) {
		return errors.New("select a reason from the list")
	}
	return nil
}

// GetReason is the text stored with the report.
func (r ReportData) GetReason() string {
	if r.Reason == models.ReportReasonOther {
		return models.ReportReasonOther + ": " + strings.TrimSpace(r.CustomReason)
	}
	return r.Reason
}
