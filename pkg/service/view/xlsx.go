package view

import (
	"io"

	"github.com/m-mizutani/goerr/v2"
	"github.com/talentops/hireboard/pkg/domain/model"
	"github.com/xuri/excelize/v2"
)

// Sheet names of the exported workbook
const (
	SheetSummary   = "Summary"
	SheetSpeed     = "Time to Deploy"
	SheetSkills    = "Skill Demand"
	SheetCountries = "Countries"
)

// WriteXLSX writes the dashboard figures as an Excel workbook, one sheet per panel
func WriteXLSX(w io.Writer, d *model.Dashboard) error {
	f := excelize.NewFile()
	defer f.Close()

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E0E0E0"}, Pattern: 1},
	})
	if err != nil {
		return goerr.Wrap(err, "failed to create header style")
	}

	summary := [][]any{}
	for _, c := range d.Cards {
		summary = append(summary, []any{c.Label, c.Value, c.Delta})
	}

	speed := [][]any{}
	for _, b := range d.SpeedBuckets {
		speed = append(speed, []any{b.Label, b.HeightPct, b.DisplayValue})
	}

	skills := [][]any{}
	for _, s := range d.Skills {
		skills = append(skills, []any{s.SkillName, s.Percentage, s.CandidateCount})
	}
	skills = append(skills, []any{"Total", "", d.SkillTotal})

	countries := [][]any{}
	for _, c := range d.Countries {
		countries = append(countries, []any{
			c.CountryName,
			c.ActiveCandidates,
			c.EmbassyProcessing,
			c.PendingArrival,
			c.AvgDelayDays,
			c.Severity.Label(),
		})
	}

	sheets := []struct {
		name   string
		header []any
		rows   [][]any
	}{
		{SheetSummary, []any{"Metric", "Value", "Change"}, summary},
		{SheetSpeed, []any{"Duration", "Bar Height (%)", "Share (%)"}, speed},
		{SheetSkills, []any{"Skill", "Share (%)", "Candidates"}, skills},
		{SheetCountries, []any{"Country", "Active Candidates", "Embassy Processing", "Pending Arrival", "Avg. Delay (days)", "Severity"}, countries},
	}

	for i, sheet := range sheets {
		if i == 0 {
			if err := f.SetSheetName("Sheet1", sheet.name); err != nil {
				return goerr.Wrap(err, "failed to rename sheet", goerr.V("sheet", sheet.name))
			}
		} else if _, err := f.NewSheet(sheet.name); err != nil {
			return goerr.Wrap(err, "failed to create sheet", goerr.V("sheet", sheet.name))
		}

		if err := writeSheet(f, sheet.name, headerStyle, sheet.header, sheet.rows); err != nil {
			return err
		}
	}

	if err := f.Write(w); err != nil {
		return goerr.Wrap(err, "failed to write workbook")
	}
	return nil
}

func writeSheet(f *excelize.File, sheet string, headerStyle int, header []any, rows [][]any) error {
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return goerr.Wrap(err, "failed to write header row", goerr.V("sheet", sheet))
	}

	lastCol, err := excelize.CoordinatesToCellName(len(header), 1)
	if err != nil {
		return goerr.Wrap(err, "failed to resolve header range", goerr.V("sheet", sheet))
	}
	if err := f.SetCellStyle(sheet, "A1", lastCol, headerStyle); err != nil {
		return goerr.Wrap(err, "failed to style header row", goerr.V("sheet", sheet))
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return goerr.Wrap(err, "failed to resolve row cell", goerr.V("sheet", sheet), goerr.V("row", i+2))
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return goerr.Wrap(err, "failed to write row", goerr.V("sheet", sheet), goerr.V("row", i+2))
		}
	}

	for i := range header {
		colName, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return goerr.Wrap(err, "failed to resolve column name", goerr.V("sheet", sheet))
		}
		if err := f.SetColWidth(sheet, colName, colName, 22); err != nil {
			return goerr.Wrap(err, "failed to set column width", goerr.V("sheet", sheet))
		}
	}

	return nil
}
