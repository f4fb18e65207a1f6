package roadmaps

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestExportXLSXContainsEverySection(t *testing.T) {
	svc := newTestService(NewMemoryRepo())
	rec := svc.Preview(testAnswers())

	data, err := ExportXLSX(rec)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	sheets := f.GetSheetList()
	require.Len(t, sheets, len(rec.Roadmap.Sections)+1)
	assert.Equal(t, summarySheet, sheets[0])

	urgency, err := f.GetCellValue(summarySheet, "B1")
	require.NoError(t, err)
	assert.Equal(t, string(rec.Roadmap.UrgencyLevel), urgency)

	timeline, err := f.GetCellValue(summarySheet, "B4")
	require.NoError(t, err)
	assert.Equal(t, rec.Roadmap.EstimatedTimeline, timeline)

	for i, section := range rec.Roadmap.Sections {
		name := sheetName(section.Title)
		assert.Equal(t, name, sheets[i+1])
		title, err := f.GetCellValue(name, "A1")
		require.NoError(t, err)
		assert.Equal(t, section.Title, title)
	}
}

func TestExportXLSXListsStepsAndRecommendations(t *testing.T) {
	svc := newTestService(NewMemoryRepo())
	rec := svc.Preview(testAnswers())
	next, ok := rec.Roadmap.Section("next-steps")
	require.True(t, ok)
	require.NotEmpty(t, next.Steps)

	data, err := ExportXLSX(rec)
	require.NoError(t, err)
	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(sheetName(next.Title))
	require.NoError(t, err)
	// title, title (UA), blank, step header, then the steps
	require.GreaterOrEqual(t, len(rows), 4+len(next.Steps))
	assert.Equal(t, "Step", rows[3][0])
	assert.Equal(t, next.Steps[0].Title, rows[4][1])

	medical, ok := rec.Roadmap.Section("medical")
	require.True(t, ok)
	require.NotEmpty(t, medical.Recommendations)
	rows, err = f.GetRows(sheetName(medical.Title))
	require.NoError(t, err)
	assert.Equal(t, recommendationHeader[0], rows[3][0])
	assert.Equal(t, string(medical.Recommendations[0].Priority), rows[4][0])
	assert.Equal(t, medical.Recommendations[0].Resource.Title, rows[4][1])
}

func TestSheetName(t *testing.T) {
	assert.Equal(t, "Care  Rehab", sheetName("Care / Rehab"))
	assert.Equal(t, "Section", sheetName("[]*?"))
	long := sheetName("A very long section title that exceeds the limit")
	assert.LessOrEqual(t, len([]rune(long)), maxSheetNameRunes)
}
