package view

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/mattn/go-runewidth"
	"github.com/talentops/hireboard/pkg/domain/model"
)

// barWidth is the number of cells used by a 100% bar in text output
const barWidth = 40

// WriteText writes the dashboard as plain text suitable for a terminal
func WriteText(w io.Writer, d *model.Dashboard) error {
	tw := &textWriter{w: w}

	tw.line(d.Title)
	tw.line(strings.Repeat("=", runewidth.StringWidth(d.Title)))
	tw.line(d.Subtitle)
	tw.line("")

	cardRows := make([][]string, 0, len(d.Cards))
	for _, c := range d.Cards {
		cardRows = append(cardRows, []string{c.Label, c.Value, c.Delta})
	}
	tw.table(nil, cardRows)
	tw.line("")

	tw.section(d.SpeedTitle)
	labelWidth := 0
	for _, b := range d.SpeedBuckets {
		labelWidth = max(labelWidth, runewidth.StringWidth(b.Label))
	}
	for _, b := range d.SpeedBuckets {
		tw.line(fmt.Sprintf("%s  %s %s",
			runewidth.FillRight(b.Label, labelWidth),
			runewidth.FillRight(bar(b.HeightPct), barWidth),
			percent(b.DisplayValue),
		))
	}
	tw.line("")

	tw.section(fmt.Sprintf("%s (Total: %d candidates)", d.SkillsTitle, d.SkillTotal))
	skillRows := make([][]string, 0, len(d.Skills))
	for _, s := range d.Skills {
		skillRows = append(skillRows, []string{
			s.SkillName,
			percent(s.Percentage),
			strconv.Itoa(s.CandidateCount),
			bar(s.Percentage),
		})
	}
	tw.table(nil, skillRows)
	tw.line("")

	tw.section(d.CountryTitle)
	countryRows := make([][]string, 0, len(d.Countries))
	for _, c := range d.Countries {
		countryRows = append(countryRows, []string{
			c.CountryName,
			strconv.Itoa(c.ActiveCandidates),
			strconv.Itoa(c.EmbassyProcessing),
			strconv.Itoa(c.PendingArrival),
			fmt.Sprintf("%s (%s)", days(c.AvgDelayDays), c.Severity.Label()),
		})
	}
	tw.table(countryColumns, countryRows)

	if tw.err != nil {
		return goerr.Wrap(tw.err, "failed to write text dashboard")
	}
	return nil
}

// textWriter keeps the first write error so callers can check once at the end
type textWriter struct {
	w   io.Writer
	err error
}

func (t *textWriter) line(s string) {
	if t.err != nil {
		return
	}
	_, t.err = io.WriteString(t.w, strings.TrimRight(s, " ")+"\n")
}

func (t *textWriter) section(title string) {
	t.line(title)
	t.line(strings.Repeat("-", runewidth.StringWidth(title)))
}

// table writes rows with columns padded to their display width
func (t *textWriter) table(header []string, rows [][]string) {
	all := rows
	if header != nil {
		all = append([][]string{header}, rows...)
	}

	var widths []int
	for _, row := range all {
		for i, cell := range row {
			if i >= len(widths) {
				widths = append(widths, 0)
			}
			widths[i] = max(widths[i], runewidth.StringWidth(cell))
		}
	}

	format := func(row []string) string {
		cells := make([]string, len(row))
		for i, cell := range row {
			cells[i] = runewidth.FillRight(cell, widths[i])
		}
		return strings.Join(cells, "  ")
	}

	if header != nil {
		t.line(format(header))
		sep := make([]string, len(widths))
		for i, wd := range widths {
			sep[i] = strings.Repeat("-", wd)
		}
		t.line(strings.Join(sep, "  "))
	}
	for _, row := range rows {
		t.line(format(row))
	}
}

func bar(pct int) string {
	n := pct * barWidth / 100
	return strings.Repeat("█", n)
}
