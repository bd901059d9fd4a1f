package utils

import (
	"bytes"

	"github.com/jung-kurt/gofpdf"
)

// RenderCertificate draws the one-page completion certificate as a PDF.
// Layout: A4 landscape, double border, centered title block, student name,
// course title, date and signature lines.
func RenderCertificate(studentName, courseTitle, dateStr, serial string) ([]byte, error) {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()

	width, height := pdf.GetPageSize()

	brandBlueR, brandBlueG, brandBlueB := 0, 94, 184
	brandGreenR, brandGreenG, brandGreenB := 135, 194, 50

	// Outer blue border
	pdf.SetDrawColor(brandBlueR, brandBlueG, brandBlueB)
	pdf.SetLineWidth(1.8)
	pdf.Rect(7, 7, width-14, height-14, "D")

	// Inner green border
	pdf.SetDrawColor(brandGreenR, brandGreenG, brandGreenB)
	pdf.SetLineWidth(0.7)
	pdf.Rect(10, 10, width-20, height-20, "D")

	centered := func(y float64, text string) {
		pdf.SetXY(0, y)
		pdf.CellFormat(width, 10, text, "", 0, "C", false, 0, "")
	}

	// Title block
	pdf.SetFont("Helvetica", "B", 40)
	pdf.SetTextColor(brandBlueR, brandBlueG, brandBlueB)
	centered(35, "CERTIFICATE")

	pdf.SetFont("Helvetica", "", 16)
	pdf.SetTextColor(0, 0, 0)
	centered(50, "OF COMPLETION")

	pdf.SetFont("Helvetica", "", 14)
	pdf.SetTextColor(90, 90, 90)
	centered(72, "This is to certify that")

	// Student name, underlined
	pdf.SetFont("Helvetica", "BI", 32)
	pdf.SetTextColor(0, 0, 0)
	centered(86, studentName)

	pdf.SetDrawColor(128, 128, 128)
	pdf.SetLineWidth(0.3)
	pdf.Line(width/2-70, 100, width/2+70, 100)

	pdf.SetFont("Helvetica", "", 14)
	pdf.SetTextColor(90, 90, 90)
	centered(108, "Has successfully completed the curriculum for")

	pdf.SetFont("Helvetica", "B", 24)
	pdf.SetTextColor(brandBlueR, brandBlueG, brandBlueB)
	centered(122, courseTitle)

	// Footer: date and signature lines
	pdf.SetFont("Helvetica", "", 12)
	pdf.SetTextColor(0, 0, 0)
	pdf.Text(35, 172, "Date: "+dateStr)
	pdf.Line(35, 175, 90, 175)

	pdf.Text(width-90, 172, "Instructor Signature")
	pdf.Line(width-90, 175, width-35, 175)

	pdf.SetFont("Helvetica", "I", 10)
	pdf.SetTextColor(brandGreenR, brandGreenG, brandGreenB)
	centered(183, "Digitally Verified - Serial "+serial)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
