// Package reports produces per-process assessment rollups, as JSON and as a
// downloadable PDF.
package reports

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/jung-kurt/gofpdf"
)

type Service struct {
	store StoreAPI
}

func NewService(store StoreAPI) *Service {
	return &Service{store: store}
}

// Summary builds the weighted assessment rollup for a process. Admins see
// every employee, a manager sees only their own reports, and anyone else is
// rejected.
func (s *Service) Summary(ctx context.Context, actorID, processID string) (*ProcessSummary, error) {
	info, err := s.store.ProcessInfo(ctx, processID)
	if err != nil {
		return nil, err
	}
	rows, err := s.store.SummaryRows(ctx, processID)
	if err != nil {
		return nil, err
	}

	isAdmin, err := s.store.IsAdmin(ctx, actorID)
	if err != nil {
		return nil, fmt.Errorf("admin lookup: %w", err)
	}
	if !isAdmin {
		visible := rows[:0:0]
		for _, row := range rows {
			if row.ManagerID == actorID {
				visible = append(visible, row)
			}
		}
		if len(visible) == 0 {
			return nil, ErrForbidden
		}
		rows = visible
	}

	return &ProcessSummary{
		ProcessID:   info.ID,
		Title:       info.Title,
		Status:      info.Status,
		GeneratedAt: time.Now().UTC(),
		Employees:   buildSummary(rows),
	}, nil
}

// WritePDF renders a summary as an A4 PDF onto w.
func (s *Service) WritePDF(summary *ProcessSummary, w io.Writer) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, "Assessment Report")
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Process: %s", summary.Title))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Status: %s", summary.Status))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Generated: %s", summary.GeneratedAt.Format("2006-01-02 15:04")))
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(60, 8, "Employee", "1", 0, "L", false, 0, "")
	pdf.CellFormat(25, 8, "Goals", "1", 0, "R", false, 0, "")
	pdf.CellFormat(30, 8, "Weight", "1", 0, "R", false, 0, "")
	pdf.CellFormat(35, 8, "Self", "1", 0, "R", false, 0, "")
	pdf.CellFormat(35, 8, "Manager", "1", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 11)
	for _, emp := range summary.Employees {
		pdf.CellFormat(60, 8, emp.EmployeeName, "1", 0, "L", false, 0, "")
		pdf.CellFormat(25, 8, fmt.Sprintf("%d", emp.GoalCount), "1", 0, "R", false, 0, "")
		pdf.CellFormat(30, 8, fmt.Sprintf("%d%%", emp.TotalWeight), "1", 0, "R", false, 0, "")
		pdf.CellFormat(35, 8, formatScore(emp.SelfScore), "1", 0, "R", false, 0, "")
		pdf.CellFormat(35, 8, formatScore(emp.ManagerScore), "1", 1, "R", false, 0, "")
	}

	return pdf.Output(w)
}

func formatScore(score *float64) string {
	if score == nil {
		return "-"
	}
	return fmt.Sprintf("%.1f", *score)
}
