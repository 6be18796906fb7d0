package xlsexport

import (
	"bytes"
	applicationapimodels "labourlink-backend/models/api/application"
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"
)

type Provider interface {
	ExportApplicantList(jobTitle string, list []applicationapimodels.ApplicationView) (*bytes.Buffer, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{}
}

type impl struct{}

var applicantHeaders = []string{"Name", "Age", "Location", "Skills", "Status", "Phone", "Applied on"}

func (i impl) ExportApplicantList(jobTitle string, list []applicationapimodels.ApplicationView) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.WithError(err).Error("failed to close xlsx file")
		}
	}()
	sheet := "Sheet1"
	row := 0
	if jobTitle != "" {
		row++
		if err := writeColumn(f, sheet, 1, row, jobTitle); err != nil {
			return nil, errors.Wrap(err, "failed to write xlsx title")
		}
	}
	row, err := writeHeader(f, sheet, row, applicantHeaders)
	if err != nil {
		return nil, errors.Wrap(err, "failed to write xlsx header")
	}
	if len(list) != 0 {
		_, err = writeApplicantData(f, sheet, list, row)
		if err != nil {
			return nil, errors.Wrap(err, "failed to write xlsx rows")
		}
	}
	if err = f.SetSheetName(sheet, "Applicants"); err != nil {
		return nil, errors.Wrap(err, "failed to name xlsx sheet")
	}
	return f.WriteToBuffer()
}

func writeApplicantData(f *excelize.File, sheet string, list []applicationapimodels.ApplicationView, row int) (int, error) {
	if err := applyDataCellStyle(f, sheet, 1, row+1, len(applicantHeaders), row+len(list)); err != nil {
		return row, err
	}
	for _, item := range list {
		row++
		values := []interface{}{
			item.WorkerName,
			"",
			"",
			"",
			item.StatusName,
			"",
			item.CreatedAt.Format("02.01.2006"),
		}
		if item.Worker != nil {
			if item.Worker.Age > 0 {
				values[1] = item.Worker.Age
			}
			values[2] = joinNotEmpty(item.Worker.District, item.Worker.State)
			values[3] = strings.Join(item.Worker.Skills, ", ")
		}
		if item.WorkerPhone != nil {
			values[5] = *item.WorkerPhone
		}
		for idx, value := range values {
			if err := writeColumn(f, sheet, idx+1, row, value); err != nil {
				return row, err
			}
		}
	}
	return row, nil
}

func joinNotEmpty(parts ...string) string {
	result := []string{}
	for _, part := range parts {
		if part = strings.TrimSpace(part); part != "" {
			result = append(result, part)
		}
	}
	return strings.Join(result, ", ")
}
