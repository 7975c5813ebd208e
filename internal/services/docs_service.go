package services

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"tripbuilder/internal/domain"
	"tripbuilder/internal/domain/models"
	"tripbuilder/internal/repositories"
	"tripbuilder/internal/utils"

	"github.com/phpdave11/gofpdf"
)

// DocsService renders the PDF vacation summary of a user.
type DocsService struct {
	Users     repositories.UserRepository
	Vacations repositories.VacationRepository
	RequestID string
	Now       func() time.Time
	Loader    func(ctx context.Context, userID int64) (summaryData, error)
}

type summaryData struct {
	Owner     string
	Username  string
	Vacations []models.Vacation
}

func (s DocsService) VacationSummary(ctx context.Context, userID int64) ([]byte, string, error) {
	if userID <= 0 {
		return nil, "", domain.UnauthorizedError{Msg: "login required"}
	}
	data, err := s.loadSummaryData(ctx, userID)
	if err != nil {
		return nil, "", err
	}
	utils.LogEvent(s.RequestID, "docs", "vacation_summary", "summary generated",
		"user_id", userID, "vacations", len(data.Vacations))
	return buildSummaryPDF(data, s.now())
}

func (s DocsService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s DocsService) loadSummaryData(ctx context.Context, userID int64) (summaryData, error) {
	if s.Loader != nil {
		return s.Loader(ctx, userID)
	}
	u, err := s.Users.GetByID(ctx, userID)
	if err != nil {
		if domain.IsNotFound(err) {
			return summaryData{}, err
		}
		return summaryData{}, domain.InternalError{Err: err}
	}
	list, err := s.Vacations.ListByUser(ctx, userID)
	if err != nil {
		return summaryData{}, domain.InternalError{Err: err}
	}
	return summaryData{Owner: u.Name, Username: u.Username, Vacations: list}, nil
}

func buildSummaryPDF(d summaryData, at time.Time) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Vacation summary", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "MY VACATIONS")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 7, "Traveller : "+safe(d.Owner, "-"))
	pdf.Ln(7)
	pdf.Cell(0, 7, "Generated : "+at.Format("2006-01-02 15:04"))
	pdf.Ln(10)

	if len(d.Vacations) == 0 {
		pdf.SetFont("Helvetica", "I", 11)
		pdf.MultiCell(0, 6, "No vacations planned yet.", "", "", false)
	} else {
		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(10, 8, "#", "1", 0, "C", false, 0, "")
		pdf.CellFormat(70, 8, "Name", "1", 0, "", false, 0, "")
		pdf.CellFormat(30, 8, "Country", "1", 0, "", false, 0, "")
		pdf.CellFormat(80, 8, "Itinerary", "1", 1, "", false, 0, "")

		pdf.SetFont("Helvetica", "", 10)
		for i, v := range d.Vacations {
			pdf.CellFormat(10, 7, fmt.Sprintf("%d", i+1), "1", 0, "C", false, 0, "")
			pdf.CellFormat(70, 7, clip(v.Name, 38), "1", 0, "", false, 0, "")
			pdf.CellFormat(30, 7, v.Trip.Country.Label(), "1", 0, "", false, 0, "")
			pdf.CellFormat(80, 7, clip(v.Trip.Itinerary(), 44), "1", 1, "", false, 0, "")
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("VACATIONS_%s_%s.pdf", utils.SafeFilenamePart(safe(d.Username, d.Owner)), at.Format("20060102"))
	return buf.Bytes(), filename, nil
}

func safe(v, fallback string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return fallback
	}
	return v
}

// clip shortens s to n runes for a fixed-width table cell.
func clip(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}
