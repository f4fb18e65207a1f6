package roadmaps

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"roadmap-backend/internal/roadmap"
)

const (
	summarySheet      = "Roadmap"
	maxSheetNameRunes = 31
)

var recommendationHeader = []string{"Priority", "Resource", "Type", "Region", "Region match", "Timeframe", "Reason", "Contact", "Website"}

// ExportXLSX renders the roadmap as a workbook: an overview sheet followed by
// one sheet per section.
func ExportXLSX(rec Record) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", summarySheet); err != nil {
		return nil, fmt.Errorf("rename default sheet: %w", err)
	}

	bold, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E6F3FF"}, Pattern: 1},
	})
	if err != nil {
		return nil, fmt.Errorf("create header style: %w", err)
	}

	if err := writeOverview(f, rec, bold); err != nil {
		return nil, err
	}
	for _, section := range rec.Roadmap.Sections {
		if err := writeSection(f, section, bold); err != nil {
			return nil, err
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func writeOverview(f *excelize.File, rec Record, headerStyle int) error {
	rm := rec.Roadmap
	rows := [][]any{
		{"Urgency", string(rm.UrgencyLevel)},
		{"Summary", rm.Summary},
		{"Summary (UA)", rm.SummaryUa},
		{"Estimated timeline", rm.EstimatedTimeline},
		{"Prosthetic options", strings.Join(rm.ProstheticOptions, "; ")},
	}
	if rm.StatusMessage != "" {
		rows = append(rows, []any{"Status", rm.StatusMessage})
	}
	if rm.AssistiveDevicesMessage != "" {
		rows = append(rows, []any{"Assistive devices", rm.AssistiveDevicesMessage})
	}
	rows = append(rows,
		[]any{"Catalog version", rec.CatalogVersion},
		[]any{"Generated at", rec.GeneratedAt.Format("2006-01-02 15:04 MST")},
	)
	rows = append(rows, []any{}, []any{"Section", "Urgency", "Recommendations", "Steps"})
	headerRow := len(rows)
	for _, s := range rm.Sections {
		rows = append(rows, []any{s.Title, string(s.Urgency), len(s.Recommendations), len(s.Steps)})
	}

	if err := writeRows(f, summarySheet, rows); err != nil {
		return err
	}
	if err := f.SetCellStyle(summarySheet, "A1", fmt.Sprintf("A%d", headerRow-2), headerStyle); err != nil {
		return fmt.Errorf("style overview: %w", err)
	}
	if err := f.SetCellStyle(summarySheet, fmt.Sprintf("A%d", headerRow), fmt.Sprintf("D%d", headerRow), headerStyle); err != nil {
		return fmt.Errorf("style overview: %w", err)
	}
	if err := f.SetColWidth(summarySheet, "A", "A", 24); err != nil {
		return fmt.Errorf("set column width: %w", err)
	}
	return f.SetColWidth(summarySheet, "B", "B", 80)
}

func writeSection(f *excelize.File, s roadmap.RoadmapSection, headerStyle int) error {
	name := sheetName(s.Title)
	if _, err := f.NewSheet(name); err != nil {
		return fmt.Errorf("create sheet %q: %w", name, err)
	}

	rows := [][]any{{s.Title}, {s.TitleUa}, {}}
	var headers []int
	if len(s.Steps) > 0 {
		headers = append(headers, len(rows)+1)
		rows = append(rows, []any{"Step", "Title", "Description", "Link"})
		for _, step := range s.Steps {
			rows = append(rows, []any{step.ID, step.Title, step.Description, step.Link})
		}
		rows = append(rows, []any{})
	}
	headers = append(headers, len(rows)+1)
	rows = append(rows, toAny(recommendationHeader))
	for _, rec := range s.Recommendations {
		r := rec.Resource
		rows = append(rows, []any{
			string(rec.Priority),
			r.Title,
			string(r.Type),
			roadmap.RegionName(r.Region),
			string(rec.RegionMatch),
			rec.Timeframe,
			rec.Reason,
			r.Contact,
			r.Website,
		})
	}

	if err := writeRows(f, name, rows); err != nil {
		return err
	}
	if err := f.SetCellStyle(name, "A1", "A1", headerStyle); err != nil {
		return fmt.Errorf("style %q: %w", name, err)
	}
	last, _ := excelize.ColumnNumberToName(len(recommendationHeader))
	for _, row := range headers {
		if err := f.SetCellStyle(name, fmt.Sprintf("A%d", row), fmt.Sprintf("%s%d", last, row), headerStyle); err != nil {
			return fmt.Errorf("style %q: %w", name, err)
		}
	}
	return f.SetColWidth(name, "B", "C", 36)
}

func writeRows(f *excelize.File, sheet string, rows [][]any) error {
	for i, row := range rows {
		if len(row) == 0 {
			continue
		}
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return fmt.Errorf("convert coordinates: %w", err)
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("write %s row %d: %w", sheet, i+1, err)
		}
	}
	return nil
}

// sheetName strips characters Excel rejects and truncates to its limit.
func sheetName(title string) string {
	name := strings.Map(func(r rune) rune {
		switch r {
		case ':', '\\', '/', '?', '*', '[', ']':
			return -1
		}
		return r
	}, title)
	name = strings.TrimSpace(name)
	if name == "" {
		name = "Section"
	}
	runes := []rune(name)
	if len(runes) > maxSheetNameRunes {
		name = strings.TrimSpace(string(runes[:maxSheetNameRunes]))
	}
	return name
}

func toAny(values []string) []any {
	out := make([]any, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}
