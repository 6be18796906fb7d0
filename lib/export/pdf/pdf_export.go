package pdfexport

import (
	"bytes"
	"fmt"
	vacancyapimodels "labourlink-backend/models/api/vacancy"
	"strings"

	"github.com/go-pdf/fpdf"
	"github.com/pkg/errors"
)

// Image is an optional picture placed in the poster header (company photo).
type Image struct {
	FileName string
	Body     []byte
}

func GenerateVacancyPoster(view vacancyapimodels.VacancyView, logo *Image) (pdfFile []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("GenerateVacancyPoster panic recover: %v", r)
		}
	}()
	pdf := fpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle(view.JobTitle, true)
	pdf.SetCreator("LabourLink", true)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "", 14)
	if pdf.Error() != nil {
		return nil, pdf.Error()
	}
	if err = putImg(pdf, logo); err != nil {
		return nil, err
	}

	if logo != nil {
		pdf.Image(logo.FileName, 10, 12, 30, 0, false, "", 0, "")
		pdf.SetLeftMargin(45)
	}
	pdf.SetY(12)
	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 8, tr(view.CompanyName), "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 12)
	pdf.CellFormat(0, 7, tr(view.Location), "", 1, "L", false, 0, "")
	pdf.SetLeftMargin(10)

	posY := pdf.GetY()
	if posY < 50 {
		pdf.SetY(50)
	}

	pdf.SetFont("Helvetica", "B", 28)
	pdf.MultiCell(0, 12, tr(strings.ToUpper(view.JobTitle)), "", "C", false)
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 20)
	pdf.CellFormat(0, 10, tr(fmt.Sprintf("Salary: %d per month", view.Salary)), "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 16)
	pdf.CellFormat(0, 9, tr(fmt.Sprintf("Workers needed: %d", view.WorkerCount)), "", 1, "C", false, 0, "")
	pdf.Ln(6)

	_, lineHt := pdf.GetFontSize()
	rows := [][2]string{
		{"Accommodation", string(view.Accommodation)},
		{"Water", string(view.Water)},
	}
	if len(view.RequiredSkills) != 0 {
		rows = append(rows, [2]string{"Skills", strings.Join(view.RequiredSkills, ", ")})
	}
	pdf.SetFont("Helvetica", "", 13)
	for _, row := range rows {
		pdf.SetFont("Helvetica", "B", 13)
		pdf.CellFormat(45, lineHt, tr(row[0]+":"), "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 13)
		pdf.MultiCell(0, lineHt, tr(row[1]), "", "L", false)
	}
	if strings.TrimSpace(view.Description) != "" {
		pdf.Ln(6)
		pdf.SetFont("Helvetica", "", 12)
		pdf.MultiCell(0, 6, tr(view.Description), "", "L", false)
	}

	pdf.Ln(10)
	pdf.SetFont("Helvetica", "I", 11)
	pdf.CellFormat(0, 6, tr("Posted on "+view.CreatedAt.Format("02.01.2006")+". Apply in the LabourLink app."), "", 1, "C", false, 0, "")

	if pdf.Error() != nil {
		return nil, pdf.Error()
	}
	buf := new(bytes.Buffer)
	if err = pdf.Output(buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func putImg(pdf *fpdf.Fpdf, fileData *Image) (err error) {
	if fileData == nil {
		return nil
	}
	options := fpdf.ImageOptions{
		ReadDpi: false,
	}
	options.ImageType, err = GetImgType(fileData.FileName)
	if err != nil {
		return err
	}
	reader := bytes.NewReader(fileData.Body)
	pdf.RegisterImageOptionsReader(fileData.FileName, options, reader)
	return pdf.Error()
}

func GetImgType(fileName string) (string, error) {
	pos := strings.LastIndex(fileName, ".")
	if pos < 0 || pos == len(fileName)-1 {
		return "", errors.Errorf("unable to get file extension: %s", fileName)
	}
	return strings.ToLower(fileName[pos+1:]), nil
}
