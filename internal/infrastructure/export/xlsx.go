// Package export renders complaint listings as spreadsheets for ward offices.
package export

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"civicpulse/internal/domain/complaint"
)

const (
	XLSXContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

	ComplaintsSheet = "Complaints"
	SummarySheet    = "By Department"

	timeLayout = "2006-01-02 15:04"
)

type column struct {
	header string
	width  float64
	value  func(c *complaint.Complaint, loc *time.Location) any
}

var complaintColumns = []column{
	{"ID", 14, func(c *complaint.Complaint, _ *time.Location) any { return c.ID() }},
	{"Title", 30, func(c *complaint.Complaint, _ *time.Location) any { return c.Title() }},
	{"Description", 50, func(c *complaint.Complaint, _ *time.Location) any { return c.Description() }},
	{"Location", 25, func(c *complaint.Complaint, _ *time.Location) any { return c.Location() }},
	{"Latitude", 12, func(c *complaint.Complaint, _ *time.Location) any {
		if p := c.GPSLocation(); p != nil {
			return p.Lat()
		}
		return ""
	}},
	{"Longitude", 12, func(c *complaint.Complaint, _ *time.Location) any {
		if p := c.GPSLocation(); p != nil {
			return p.Lng()
		}
		return ""
	}},
	{"Name", 20, func(c *complaint.Complaint, _ *time.Location) any { return c.Name() }},
	{"Email", 28, func(c *complaint.Complaint, _ *time.Location) any { return c.Email() }},
	{"Department", 24, func(c *complaint.Complaint, _ *time.Location) any { return c.Department().String() }},
	{"Status", 14, func(c *complaint.Complaint, _ *time.Location) any { return c.Status().String() }},
	{"Points", 8, func(c *complaint.Complaint, _ *time.Location) any { return c.Points() }},
	{"Filed At", 18, func(c *complaint.Complaint, loc *time.Location) any { return formatTime(c.CreatedAt(), loc) }},
	{"In Progress At", 18, func(c *complaint.Complaint, loc *time.Location) any { return formatTimePtr(c.InProgressAt(), loc) }},
	{"Resolved At", 18, func(c *complaint.Complaint, loc *time.Location) any { return formatTimePtr(c.CompletedAt(), loc) }},
	{"Resolution Hours", 16, func(c *complaint.Complaint, _ *time.Location) any {
		if d, ok := c.ResolutionTime(); ok {
			return roundHours(d)
		}
		return ""
	}},
}

var summaryColumns = []column{
	{header: "Department", width: 26},
	{header: "Total", width: 10},
	{header: "Pending", width: 10},
	{header: "In Progress", width: 12},
	{header: "Resolved", width: 10},
}

// ComplaintsXLSX builds a workbook with one row per complaint and a
// per-department status summary. Times are written in loc.
func ComplaintsXLSX(complaints []*complaint.Complaint, loc *time.Location) ([]byte, error) {
	if loc == nil {
		loc = time.UTC
	}

	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(ComplaintsSheet)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("failed to remove default sheet: %w", err)
	}
	f.SetActiveSheet(index)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#E6F3FF"},
			Pattern: 1,
		},
		Border: []excelize.Border{
			{Type: "left", Color: "000000", Style: 1},
			{Type: "top", Color: "000000", Style: 1},
			{Type: "bottom", Color: "000000", Style: 1},
			{Type: "right", Color: "000000", Style: 1},
		},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}

	if err := writeHeader(f, ComplaintsSheet, complaintColumns, headerStyle); err != nil {
		return nil, err
	}
	for i, c := range complaints {
		row := make([]any, len(complaintColumns))
		for j, col := range complaintColumns {
			row[j] = col.value(c, loc)
		}
		if err := writeRow(f, ComplaintsSheet, i+2, row); err != nil {
			return nil, err
		}
	}

	if _, err := f.NewSheet(SummarySheet); err != nil {
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}
	if err := writeHeader(f, SummarySheet, summaryColumns, headerStyle); err != nil {
		return nil, err
	}
	for i, s := range summarize(complaints) {
		row := []any{s.department, s.total, s.pending, s.inProgress, s.resolved}
		if err := writeRow(f, SummarySheet, i+2, row); err != nil {
			return nil, err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func writeHeader(f *excelize.File, sheet string, cols []column, style int) error {
	for i, col := range cols {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return fmt.Errorf("failed to convert coordinates: %w", err)
		}
		if err := f.SetCellValue(sheet, cell, col.header); err != nil {
			return fmt.Errorf("failed to set header cell %s: %w", cell, err)
		}
		if err := f.SetCellStyle(sheet, cell, cell, style); err != nil {
			return fmt.Errorf("failed to set header style: %w", err)
		}

		name, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return fmt.Errorf("failed to convert column number: %w", err)
		}
		if err := f.SetColWidth(sheet, name, name, col.width); err != nil {
			return fmt.Errorf("failed to set column width: %w", err)
		}
	}

	return f.SetPanes(sheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	})
}

func writeRow(f *excelize.File, sheet string, rowNum int, values []any) error {
	cell, err := excelize.CoordinatesToCellName(1, rowNum)
	if err != nil {
		return fmt.Errorf("failed to convert coordinates: %w", err)
	}
	if err := f.SetSheetRow(sheet, cell, &values); err != nil {
		return fmt.Errorf("failed to write row %d: %w", rowNum, err)
	}
	return nil
}

type departmentSummary struct {
	department string
	total      int
	pending    int
	inProgress int
	resolved   int
}

// summarize counts complaints per department in first-seen order.
func summarize(complaints []*complaint.Complaint) []*departmentSummary {
	var out []*departmentSummary
	index := map[string]*departmentSummary{}
	for _, c := range complaints {
		dept := c.Department().String()
		s, ok := index[dept]
		if !ok {
			s = &departmentSummary{department: dept}
			index[dept] = s
			out = append(out, s)
		}
		s.total++
		switch {
		case c.Status().IsPending():
			s.pending++
		case c.Status().IsInProgress():
			s.inProgress++
		case c.Status().IsResolved():
			s.resolved++
		}
	}
	return out
}

func formatTime(t time.Time, loc *time.Location) string {
	if t.IsZero() {
		return ""
	}
	return t.In(loc).Format(timeLayout)
}

func formatTimePtr(t *time.Time, loc *time.Location) string {
	if t == nil {
		return ""
	}
	return formatTime(*t, loc)
}

func roundHours(d time.Duration) float64 {
	return float64(d.Round(6*time.Minute)) / float64(time.Hour)
}
