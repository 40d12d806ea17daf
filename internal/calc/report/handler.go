package report

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	assessment "Stratum/internal/calc/assessment"
	"github.com/phpdave11/gofpdf"
)

type Input struct {
	Project    string           `json:"project"`
	Author     string           `json:"author"`
	Title      string           `json:"title"`
	Notes      string           `json:"notes"`
	Assessment assessment.Input `json:"assessment"`
}

type Handler struct{}

func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	var input Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if input.Title == "" {
		input.Title = "Rock Mass Rating Report"
	}

	res, err := assessment.Run(input.Assessment)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	pdf := render(input, res)

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=\"rmr-report.pdf\"")
	if err := pdf.Output(w); err != nil {
		http.Error(w, "Report generation error", http.StatusInternalServerError)
		return
	}
}

func render(in Input, res assessment.Result) *gofpdf.Fpdf {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, in.Title)
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, fmt.Sprintf("Project: %s", in.Project))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Author: %s", in.Author))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s", time.Now().Format("2006-01-02")))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Rating")
	pdf.Ln(9)
	pdf.SetFont("Helvetica", "", 10)
	ratingRow(pdf, "A1 Rock strength", res.Rating.Strength.Label, res.Rating.Strength.Points)
	ratingRow(pdf, "A2 RQD", res.Rating.RQD.Label, res.Rating.RQD.Points)
	ratingRow(pdf, "A3 Discontinuity spacing", res.Rating.Spacing.Label, res.Rating.Spacing.Points)
	ratingRow(pdf, "A4 Discontinuity condition", res.Rating.Condition.Label, res.Rating.Condition.Points)
	ratingRow(pdf, "A5 Groundwater", res.Rating.Water.Label, res.Rating.Water.Points)
	pdf.SetFont("Helvetica", "B", 10)
	pdf.Cell(0, 6, fmt.Sprintf("Total RMR: %d  (Class %s, %s)", res.Rating.RMR, res.Rating.Class, res.Rating.Description))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Support recommendation")
	pdf.Ln(9)
	pdf.SetFont("Helvetica", "", 10)
	line(pdf, fmt.Sprintf("Bolt length: %.2f m", res.Support.BoltLengthM))
	line(pdf, fmt.Sprintf("Bolt spacing: %.2f m", res.Support.BoltSpacingM))
	line(pdf, fmt.Sprintf("Pattern: %s (%s)", res.Support.Pattern, res.Support.PatternNote))
	line(pdf, fmt.Sprintf("Bolt type: %s", res.Support.BoltType))
	line(pdf, fmt.Sprintf("Required capacity: %.0f t", res.Support.CapacityT))
	for _, extra := range res.Support.Extras {
		line(pdf, "Additional: "+extra)
	}
	line(pdf, fmt.Sprintf("Total bolts: %d (%.2f bolts/m, %.0f m installed length)",
		res.Bolting.TotalBolts, res.Bolting.BoltsPerMeter, res.Bolting.TotalBoltLengthM))

	if in.Notes != "" {
		pdf.Ln(4)
		pdf.MultiCell(0, 6, in.Notes, "", "L", false)
	}
	return pdf
}

func ratingRow(pdf *gofpdf.Fpdf, name, label string, points int) {
	pdf.Cell(0, 6, fmt.Sprintf("%s: %s (%d points)", name, label, points))
	pdf.Ln(6)
}

func line(pdf *gofpdf.Fpdf, s string) {
	pdf.Cell(0, 6, s)
	pdf.Ln(6)
}
