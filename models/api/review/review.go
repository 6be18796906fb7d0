package reviewapimodels

import (
	"labourlink-backend/models"
	dbmodels "labourlink-backend/models/db"
	"strings"
	"time"

	"github.com/pkg/errors"
)

const maxCommentLen = 1000

type ReviewData struct {
	ToID       string          `json:"to_id"`
	Rating     int             `json:"rating"` // 1..5
	Comment    string          `json:"comment"`
	TargetRole models.UserRole `json:"target_role"`
}

func (r ReviewData) Validate() error {
	if strings.TrimSpace(r.ToID) == "" {
		return errors.New("rated user id is required")
	}
	if r.Rating < 1 || r.Rating > 5 {
		return errors.New("rating must be between 1 and 5")
	}
	if len(r.Comment) > maxCommentLen {
		return errors.Errorf("comment is longer than %v characters", maxCommentLen)
	}
	if !r.TargetRole.IsValid() {
		return errors.Errorf("unknown target role: %v", r.TargetRole)
	}
	return nil
}

type Eligibility struct {
	CanRate      bool `json:"can_rate"`
	AlreadyRated bool `json:"already_rated"`
}

type ReviewView struct {
	ID         string          `json:"id"`
	FromID     string          `json:"from_id"`
	Rating     int             `json:"rating"`
	Comment    string          `json:"comment"`
	TargetRole models.UserRole `json:"target_role"`
	CreatedAt  time.Time       `json:"created_at"`
}

func ReviewConvert(rec dbmodels.Review) ReviewView {
	return ReviewView{
		ID:         rec.ID,
		FromID:     rec.FromID,
		Rating:     rec.Rating,
		Comment:    rec.Comment,
		TargetRole: rec.TargetRole,
		CreatedAt:  rec.CreatedAt,
	}
}

type RatingSummary struct {
	Average float64      `json:"average"`
	Count   int          `json:"count"`
	Reviews []ReviewView `json:"reviews"`
}
