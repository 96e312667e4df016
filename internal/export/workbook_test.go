package export

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"logistics-guide/backend/internal/catalog"
	"logistics-guide/backend/internal/guide"
	"logistics-guide/backend/internal/scoring"
)

func sampleGuide(t *testing.T) guide.Guide {
	t.Helper()
	engine, _, err := scoring.NewEngine(scoring.DefaultWeights())
	require.NoError(t, err)
	return guide.Build(engine, catalog.Scenario{
		SizeClass:      catalog.SizeM2,
		Region:         catalog.Metro,
		HasWarehouse:   true,
		DailyOrders:    10,
		ReferencePrice: 29990,
	}, "")
}

func reopen(t *testing.T, f *excelize.File) *excelize.File {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))
	out, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	t.Cleanup(func() { out.Close() })
	return out
}

func TestWorkbookSheets(t *testing.T) {
	g := sampleGuide(t)
	f, err := Workbook(g)
	require.NoError(t, err)
	defer f.Close()

	wb := reopen(t, f)
	assert.Equal(t, []string{rankingSheet, costsSheet}, wb.GetSheetList())

	header, err := wb.GetCellValue(rankingSheet, "A1")
	require.NoError(t, err)
	assert.Equal(t, "Posición", header)

	top, err := wb.GetCellValue(rankingSheet, "B2")
	require.NoError(t, err)
	assert.Equal(t, "Crossdock", top)

	ordinal, err := wb.GetCellValue(rankingSheet, "A5")
	require.NoError(t, err)
	assert.Equal(t, "Cuarto", ordinal)

	keyNote, err := wb.GetCellValue(rankingSheet, "A7")
	require.NoError(t, err)
	assert.Equal(t, guide.MetroKeyNote, keyNote)

	footnote, err := wb.GetCellValue(rankingSheet, "A8")
	require.NoError(t, err)
	assert.Equal(t, guide.FinalMileNote, footnote)
}

func TestWorkbookNotesOrder(t *testing.T) {
	g := sampleGuide(t)
	g.Notice = "aviso"
	f, err := Workbook(g)
	require.NoError(t, err)
	defer f.Close()

	wb := reopen(t, f)
	var notes []string
	for _, cell := range []string{"A7", "A8", "A9"} {
		v, err := wb.GetCellValue(rankingSheet, cell)
		require.NoError(t, err)
		notes = append(notes, v)
	}
	assert.Equal(t, []string{"aviso", guide.MetroKeyNote, guide.FinalMileNote}, notes)
}

func TestWorkbookWithoutCards(t *testing.T) {
	f, err := Workbook(guide.Guide{Footnote: guide.FinalMileNote})
	require.NoError(t, err)
	defer f.Close()

	footnote, err := reopen(t, f).GetCellValue(rankingSheet, "A3")
	require.NoError(t, err)
	assert.Equal(t, guide.FinalMileNote, footnote)
}

func TestWorkbookCostRows(t *testing.T) {
	g := sampleGuide(t)
	f, err := Workbook(g)
	require.NoError(t, err)
	defer f.Close()

	rows, err := reopen(t, f).GetRows(costsSheet)
	require.NoError(t, err)

	var lines int
	for _, card := range g.Cards {
		lines += len(card.Costs)
	}
	require.Len(t, rows, lines+1)

	var found bool
	for _, row := range rows[1:] {
		if len(row) >= 5 && row[1] == "Despacho Santiago: operadores externos" {
			found = true
			assert.Equal(t, "79990", row[4])
		}
	}
	assert.True(t, found)
}

func TestRoundScore(t *testing.T) {
	assert.Equal(t, 0.799, roundScore(0.79899999))
	assert.Equal(t, 0.612, roundScore(0.6124))
}
