package gpthandler

import (
	"context"
	"fmt"
	"labourlink-backend/config"
	yagptclient "labourlink-backend/lib/gpt/yagpt-client"
	apperrors "labourlink-backend/lib/utils/app-errors"
	"labourlink-backend/lib/utils/lock"
	"labourlink-backend/models"
	vacancyapimodels "labourlink-backend/models/api/vacancy"
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

const descriptionLockName = "DescriptionDraft"

type Provider interface {
	DescriptionDraft(ctx context.Context, req vacancyapimodels.DescriptionDraftRequest) (resp vacancyapimodels.DescriptionDraft, err error)
}

type impl struct {
	client yagptclient.Provider
	promt  string
}

var Instance Provider

// NewHandler leaves Instance nil when YandexGPT is not configured.
func NewHandler() {
	if config.Conf.YandexGPT.IAMToken == "" || config.Conf.YandexGPT.CatalogID == "" {
		log.Info("YandexGPT is not configured, description drafts are disabled")
		Instance = nil
		return
	}
	Instance = NewInstance(
		yagptclient.NewClient(config.Conf.YandexGPT.IAMToken, config.Conf.YandexGPT.CatalogID),
		config.Conf.YandexGPT.Promt,
	)
}

func NewInstance(client yagptclient.Provider, promt string) Provider {
	return impl{
		client: client,
		promt:  promt,
	}
}

func (i impl) DescriptionDraft(ctx context.Context, req vacancyapimodels.DescriptionDraftRequest) (resp vacancyapimodels.DescriptionDraft, err error) {
	if err = req.Validate(); err != nil {
		return resp, apperrors.NewValidation(err.Error())
	}
	logger := log.WithField("job_title", req.JobTitle)
	if !lock.Resource.Acquire(ctx, descriptionLockName) {
		return resp, apperrors.Transient(errors.New("resource lock not acquired"), "description generator is busy")
	}
	defer lock.Resource.Release(descriptionLockName)

	resp.Description, err = i.client.GenerateByPromtAndText(ctx, i.promt, draftText(req))
	if err != nil {
		logger.WithError(err).Error("failed to generate vacancy description via YandexGPT")
		return resp, apperrors.Transient(err, "description generator is unavailable")
	}
	resp.Description = strings.TrimSpace(resp.Description)
	return resp, nil
}

func draftText(req vacancyapimodels.DescriptionDraftRequest) string {
	text := fmt.Sprintf("Write a job description for the position %q", strings.TrimSpace(req.JobTitle))
	if location := strings.TrimSpace(req.Location); location != "" {
		text += fmt.Sprintf(" in %s", location)
	}
	if skills := models.NormalizeSkills(req.Skills); len(skills) != 0 {
		text += fmt.Sprintf(". Required skills: %s", strings.Join(skills, ", "))
	}
	return text + "."
}
