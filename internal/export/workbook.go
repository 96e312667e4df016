package export

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"logistics-guide/backend/internal/guide"
)

const (
	rankingSheet = "Ranking"
	costsSheet   = "Costos"
)

var (
	rankingHeader = []interface{}{"Posición", "Modalidad", "Score", "Fortalezas", "Descripción", "Beneficios", "Desventajas"}
	costsHeader   = []interface{}{"Modalidad", "Concepto", "Detalle", "Costo estimado", "Monto (CLP)"}
)

// Workbook renders the guide into an in-memory XLSX file with a ranking sheet
// and a flattened cost sheet.
func Workbook(g guide.Guide) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", rankingSheet); err != nil {
		f.Close()
		return nil, fmt.Errorf("rename sheet: %w", err)
	}
	if _, err := f.NewSheet(costsSheet); err != nil {
		f.Close()
		return nil, fmt.Errorf("create %s sheet: %w", costsSheet, err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("header style: %w", err)
	}

	if err := writeRow(f, rankingSheet, 1, rankingHeader); err != nil {
		f.Close()
		return nil, err
	}
	if err := writeRow(f, costsSheet, 1, costsHeader); err != nil {
		f.Close()
		return nil, err
	}
	for _, sheet := range []string{rankingSheet, costsSheet} {
		if err := f.SetRowStyle(sheet, 1, 1, headerStyle); err != nil {
			f.Close()
			return nil, fmt.Errorf("style %s header: %w", sheet, err)
		}
	}

	costRow := 2
	for i, card := range g.Cards {
		row := []interface{}{
			card.Ordinal,
			card.Name,
			roundScore(card.Score),
			strings.Join(card.Strengths, ", "),
			card.Description,
			strings.Join(card.Benefits, "\n"),
			strings.Join(card.Drawbacks, "\n"),
		}
		if err := writeRow(f, rankingSheet, i+2, row); err != nil {
			f.Close()
			return nil, err
		}
		for _, line := range card.Costs {
			var amount interface{}
			if line.Priced {
				amount = line.Amount
			}
			if err := writeRow(f, costsSheet, costRow, []interface{}{card.Name, line.Concept, line.Detail, line.Estimated, amount}); err != nil {
				f.Close()
				return nil, err
			}
			costRow++
		}
	}

	notesRow := len(g.Cards) + 3
	for _, note := range []string{g.Notice, g.KeyNote, g.Footnote} {
		if note == "" {
			continue
		}
		if err := writeRow(f, rankingSheet, notesRow, []interface{}{note}); err != nil {
			f.Close()
			return nil, err
		}
		notesRow++
	}

	widths := []struct {
		sheet      string
		start, end string
		width      float64
	}{
		{rankingSheet, "B", "B", 22},
		{rankingSheet, "E", "G", 60},
		{costsSheet, "A", "D", 40},
	}
	for _, cw := range widths {
		if err := f.SetColWidth(cw.sheet, cw.start, cw.end, cw.width); err != nil {
			f.Close()
			return nil, fmt.Errorf("set %s column width: %w", cw.sheet, err)
		}
	}
	return f, nil
}

func writeRow(f *excelize.File, sheet string, row int, values []interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	if err := f.SetSheetRow(sheet, cell, &values); err != nil {
		return fmt.Errorf("write %s row %d: %w", sheet, row, err)
	}
	return nil
}

func roundScore(v float64) float64 {
	return float64(int(v*1000+0.5)) / 1000
}
