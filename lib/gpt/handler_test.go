package gpthandler

import (
	"context"
	apperrors "labourlink-backend/lib/utils/app-errors"
	vacancyapimodels "labourlink-backend/models/api/vacancy"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

type fakeClient struct {
	promt string
	text  string
	resp  string
	err   error
}

func (f *fakeClient) GenerateByPromtAndText(ctx context.Context, promt, text string) (string, error) {
	f.promt = promt
	f.text = text
	return f.resp, f.err
}

func TestDescriptionDraft(t *testing.T) {
	t.Run(`builds the request from title location and skills`, func(t *testing.T) {
		client := &fakeClient{resp: "  We need tailors.  "}
		h := NewInstance(client, "system")
		resp, err := h.DescriptionDraft(context.Background(), vacancyapimodels.DescriptionDraftRequest{
			JobTitle: "Tailor",
			Location: "Surat",
			Skills:   []string{"Stitching", " Stitching ", "Cutting"},
		})
		require.NoError(t, err)
		require.Equal(t, "We need tailors.", resp.Description)
		require.Equal(t, "system", client.promt)
		require.Equal(t, `Write a job description for the position "Tailor" in Surat. Required skills: Stitching, Cutting.`, client.text)
	})
	t.Run(`empty title is a validation error`, func(t *testing.T) {
		h := NewInstance(&fakeClient{}, "system")
		_, err := h.DescriptionDraft(context.Background(), vacancyapimodels.DescriptionDraftRequest{})
		require.True(t, apperrors.Is(err, apperrors.KindValidation))
	})
	t.Run(`client failure is transient`, func(t *testing.T) {
		h := NewInstance(&fakeClient{err: errors.New("boom")}, "system")
		_, err := h.DescriptionDraft(context.Background(), vacancyapimodels.DescriptionDraftRequest{JobTitle: "Tailor"})
		require.True(t, apperrors.Is(err, apperrors.KindTransient))
	})
}
