package model_test

import (
	"errors"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/talentops/hireboard/pkg/domain/model"
	"github.com/talentops/hireboard/pkg/domain/types"
)

func TestHiringAnalyticsShape(t *testing.T) {
	d := model.HiringAnalytics()

	gt.A(t, d.Cards).Length(3)
	gt.A(t, d.SpeedBuckets).Length(4)
	gt.A(t, d.Skills).Length(3)
	gt.A(t, d.Countries).Length(3)
	gt.NoError(t, d.Validate())
}

func TestHiringAnalyticsCards(t *testing.T) {
	d := model.HiringAnalytics()

	gt.Equal(t, d.Cards[0].Value, "18 Days")
	gt.Equal(t, d.Cards[1].Value, "42%")
	gt.Equal(t, d.Cards[2].Value, "Philippines")
	gt.Equal(t, d.Cards[2].Delta, "60% of total requests")
}

func TestHiringAnalyticsSpeedBuckets(t *testing.T) {
	d := model.HiringAnalytics()

	expected := [][2]int{{25, 15}, {65, 45}, {40, 25}, {25, 15}}
	for i, b := range d.SpeedBuckets {
		gt.Equal(t, [2]int{b.HeightPct, b.DisplayValue}, expected[i])
	}

	gt.Equal(t, d.SpeedBuckets[0].Label, "Under 7 Days")
	gt.Equal(t, d.SpeedBuckets[3].Label, "Over 30 Days")
}

func TestHiringAnalyticsSkills(t *testing.T) {
	d := model.HiringAnalytics()

	tests := []struct {
		name       string
		percentage int
		count      int
	}{
		{"Elderly Care", 45, 135},
		{"Infant/Childcare", 30, 90},
		{"Cooking & Housekeeping", 25, 75},
	}

	sum := 0
	for i, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gt.Equal(t, d.Skills[i].SkillName, tt.name)
			gt.Equal(t, d.Skills[i].Percentage, tt.percentage)
			gt.Equal(t, d.Skills[i].CandidateCount, tt.count)
		})
		sum += d.Skills[i].CandidateCount
	}

	gt.Equal(t, d.SkillTotal, 300)
	gt.Equal(t, sum, d.SkillTotal)
}

func TestHiringAnalyticsCountrySeverity(t *testing.T) {
	d := model.HiringAnalytics()

	expected := map[int]types.SeverityTag{
		3: types.SeverityLow,
		5: types.SeverityMedium,
		7: types.SeverityHigh,
	}
	for _, c := range d.Countries {
		sev, ok := expected[c.AvgDelayDays]
		gt.True(t, ok)
		gt.Equal(t, c.Severity, sev)
		gt.Equal(t, types.SeverityForDelay(c.AvgDelayDays), c.Severity)
	}
}

func TestHiringAnalyticsIsolated(t *testing.T) {
	first := model.HiringAnalytics()
	first.Cards[0].Value = "changed"
	first.Skills = nil

	second := model.HiringAnalytics()
	gt.Equal(t, second.Cards[0].Value, "18 Days")
	gt.A(t, second.Skills).Length(3)
	gt.Equal(t, *model.HiringAnalytics(), *second)
}

func TestHiringAnalyticsColorTags(t *testing.T) {
	tags := model.HiringAnalytics().ColorTags()

	seen := map[types.ColorTag]int{}
	for _, tag := range tags {
		seen[tag]++
		gt.True(t, tag.IsValid())
	}
	for _, n := range seen {
		gt.Equal(t, n, 1)
	}
	gt.Equal(t, seen[types.ColorPink], 1)
}

func TestDashboardValidate(t *testing.T) {
	t.Run("error when title is empty", func(t *testing.T) {
		d := model.HiringAnalytics()
		d.Title = ""
		gt.Error(t, d.Validate())
	})

	t.Run("error when skill counts do not match total", func(t *testing.T) {
		d := model.HiringAnalytics()
		d.Skills[0].CandidateCount = 100
		gt.Error(t, d.Validate())
	})

	t.Run("error when percentage is out of range", func(t *testing.T) {
		d := model.HiringAnalytics()
		d.SpeedBuckets[1].HeightPct = 120
		gt.Error(t, d.Validate())
	})

	t.Run("error when severity does not match delay", func(t *testing.T) {
		d := model.HiringAnalytics()
		d.Countries[2].Severity = types.SeverityLow
		gt.Error(t, d.Validate())
	})

	t.Run("error when color tag is unknown", func(t *testing.T) {
		d := model.HiringAnalytics()
		d.Skills[1].Color = types.ColorTag("purple")
		err := d.Validate()
		gt.Error(t, err)
		gt.True(t, errors.Is(err, model.ErrInvalidColorTag))
	})

	t.Run("error when severity tag is unknown", func(t *testing.T) {
		d := model.HiringAnalytics()
		d.Countries[0].Severity = types.SeverityTag("critical")
		err := d.Validate()
		gt.Error(t, err)
		gt.True(t, errors.Is(err, model.ErrInvalidSeverityTag))
	})
}
