package view_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/talentops/hireboard/pkg/domain/model"
	"github.com/talentops/hireboard/pkg/service/view"
	"github.com/xuri/excelize/v2"
)

func TestWriteText(t *testing.T) {
	var buf bytes.Buffer
	gt.NoError(t, view.WriteText(&buf, model.HiringAnalytics())).Required()
	out := buf.String()

	for _, s := range []string{
		"Hiring Analytics",
		"18 Days",
		"42%",
		"60% of total requests",
		"Skill Demand (Total: 300 candidates)",
		"Elderly Care",
		"Sri Lanka",
		"7 Days (High)",
		"3 Days (Low)",
	} {
		gt.S(t, out).Contains(s)
	}

	// the 65% bar is the longest in the speed chart
	var longest string
	for _, line := range strings.Split(out, "\n") {
		if strings.HasPrefix(line, "7-14 Days") {
			longest = line
		}
	}
	gt.S(t, longest).Contains(strings.Repeat("█", 26))
	gt.S(t, longest).Contains("45%")

	t.Run("no trailing spaces", func(t *testing.T) {
		for _, line := range strings.Split(out, "\n") {
			gt.False(t, strings.HasSuffix(line, " "))
		}
	})
}

func TestWriteXLSX(t *testing.T) {
	var buf bytes.Buffer
	gt.NoError(t, view.WriteXLSX(&buf, model.HiringAnalytics())).Required()

	f, err := excelize.OpenReader(&buf)
	gt.NoError(t, err).Required()
	defer f.Close()

	gt.Equal(t, f.GetSheetList(), []string{view.SheetSummary, view.SheetSpeed, view.SheetSkills, view.SheetCountries})

	summary, err := f.GetRows(view.SheetSummary)
	gt.NoError(t, err)
	gt.A(t, summary).Length(4)
	gt.Equal(t, summary[1][1], "18 Days")
	gt.Equal(t, summary[3][2], "60% of total requests")

	speed, err := f.GetRows(view.SheetSpeed)
	gt.NoError(t, err)
	gt.A(t, speed).Length(5)
	gt.Equal(t, speed[2], []string{"7-14 Days", "65", "45"})

	skills, err := f.GetRows(view.SheetSkills)
	gt.NoError(t, err)
	gt.A(t, skills).Length(5)
	gt.Equal(t, skills[3], []string{"Cooking & Housekeeping", "25", "75"})
	total, err := f.GetCellValue(view.SheetSkills, "C5")
	gt.NoError(t, err)
	gt.Equal(t, total, "300")

	countries, err := f.GetRows(view.SheetCountries)
	gt.NoError(t, err)
	gt.A(t, countries).Length(4)
	gt.Equal(t, countries[2], []string{"Indonesia", "90", "30", "12", "5", "Medium"})
}
