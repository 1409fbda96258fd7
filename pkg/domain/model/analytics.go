package model

import (
	"github.com/m-mizutani/goerr/v2"
	"github.com/talentops/hireboard/pkg/domain/types"
)

// SummaryCard is a headline statistic shown at the top of the dashboard
type SummaryCard struct {
	Label string         `json:"label"`
	Value string         `json:"value"`
	Delta string         `json:"delta"`
	Color types.ColorTag `json:"color"`
}

// SpeedBucket is one bar of the time-to-deploy chart
type SpeedBucket struct {
	Label        string         `json:"label"`
	HeightPct    int            `json:"heightPct"`
	DisplayValue int            `json:"displayValue"`
	Color        types.ColorTag `json:"color"`
}

// SkillDemand is one progress bar of the skill demand panel
type SkillDemand struct {
	SkillName      string         `json:"skillName"`
	Percentage     int            `json:"percentage"`
	CandidateCount int            `json:"candidateCount"`
	Color          types.ColorTag `json:"color"`
}

// CountryRow is one row of the source country pipeline table
type CountryRow struct {
	CountryName       string            `json:"countryName"`
	ActiveCandidates  int               `json:"activeCandidates"`
	EmbassyProcessing int               `json:"embassyProcessing"`
	PendingArrival    int               `json:"pendingArrival"`
	AvgDelayDays      int               `json:"avgDelayDays"`
	Severity          types.SeverityTag `json:"severity"`
}

// Dashboard holds every figure displayed by the hiring analytics view for one render pass
type Dashboard struct {
	Title        string        `json:"title"`
	Subtitle     string        `json:"subtitle"`
	Cards        []SummaryCard `json:"cards"`
	SpeedTitle   string        `json:"speedTitle"`
	SpeedBuckets []SpeedBucket `json:"speedBuckets"`
	SkillsTitle  string        `json:"skillsTitle"`
	Skills       []SkillDemand `json:"skills"`
	SkillTotal   int           `json:"skillTotal"`
	CountryTitle string        `json:"countryTitle"`
	Countries    []CountryRow  `json:"countries"`
}

// HiringAnalytics returns a freshly constructed copy of the dashboard figures.
// Callers may modify the result without affecting later calls.
func HiringAnalytics() *Dashboard {
	return &Dashboard{
		Title:    "Hiring Analytics",
		Subtitle: "Recruitment performance and candidate pipeline overview",
		Cards: []SummaryCard{
			{Label: "Avg. Time to Deploy", Value: "18 Days", Delta: "2 days faster than last quarter", Color: types.ColorEmerald},
			{Label: "Offer Acceptance Rate", Value: "42%", Delta: "+6% vs last quarter", Color: types.ColorBlue},
			{Label: "Top Source Country", Value: "Philippines", Delta: "60% of total requests", Color: types.ColorIndigo},
		},
		SpeedTitle: "Time to Deploy",
		SpeedBuckets: []SpeedBucket{
			{Label: "Under 7 Days", HeightPct: 25, DisplayValue: 15, Color: types.ColorEmerald},
			{Label: "7-14 Days", HeightPct: 65, DisplayValue: 45, Color: types.ColorBlue},
			{Label: "15-30 Days", HeightPct: 40, DisplayValue: 25, Color: types.ColorAmber},
			{Label: "Over 30 Days", HeightPct: 25, DisplayValue: 15, Color: types.ColorRose},
		},
		SkillsTitle: "Skill Demand",
		Skills: []SkillDemand{
			{SkillName: "Elderly Care", Percentage: 45, CandidateCount: 135, Color: types.ColorBlue},
			{SkillName: "Infant/Childcare", Percentage: 30, CandidateCount: 90, Color: types.ColorPink},
			{SkillName: "Cooking & Housekeeping", Percentage: 25, CandidateCount: 75, Color: types.ColorAmber},
		},
		SkillTotal:   300,
		CountryTitle: "Source Country Pipeline",
		Countries: []CountryRow{
			{CountryName: "Philippines", ActiveCandidates: 180, EmbassyProcessing: 45, PendingArrival: 20, AvgDelayDays: 3, Severity: types.SeverityLow},
			{CountryName: "Indonesia", ActiveCandidates: 90, EmbassyProcessing: 30, PendingArrival: 12, AvgDelayDays: 5, Severity: types.SeverityMedium},
			{CountryName: "Sri Lanka", ActiveCandidates: 30, EmbassyProcessing: 10, PendingArrival: 5, AvgDelayDays: 7, Severity: types.SeverityHigh},
		},
	}
}

// ColorTags returns every color tag referenced by the dashboard
func (d *Dashboard) ColorTags() []types.ColorTag {
	seen := make(map[types.ColorTag]bool)
	var tags []types.ColorTag
	add := func(tag types.ColorTag) {
		if !seen[tag] {
			seen[tag] = true
			tags = append(tags, tag)
		}
	}

	for _, c := range d.Cards {
		add(c.Color)
	}
	for _, b := range d.SpeedBuckets {
		add(b.Color)
	}
	for _, s := range d.Skills {
		add(s.Color)
	}
	return tags
}

// Validate checks that the literal figures are internally consistent
func (d *Dashboard) Validate() error {
	if d.Title == "" {
		return goerr.New("dashboard title is required")
	}

	for i, c := range d.Cards {
		if c.Label == "" || c.Value == "" {
			return goerr.New("summary card requires label and value", goerr.V("index", i))
		}
		if !c.Color.IsValid() {
			return goerr.Wrap(ErrInvalidColorTag, "invalid summary card color",
				goerr.V("index", i), goerr.V("color", c.Color))
		}
	}

	for i, b := range d.SpeedBuckets {
		if !isPercentage(b.HeightPct) || !isPercentage(b.DisplayValue) {
			return goerr.New("speed bucket percentages must be between 0 and 100",
				goerr.V("label", b.Label),
				goerr.V("heightPct", b.HeightPct),
				goerr.V("displayValue", b.DisplayValue))
		}
		if !b.Color.IsValid() {
			return goerr.Wrap(ErrInvalidColorTag, "invalid speed bucket color",
				goerr.V("index", i), goerr.V("color", b.Color))
		}
	}

	total := 0
	for i, s := range d.Skills {
		if !isPercentage(s.Percentage) {
			return goerr.New("skill percentage must be between 0 and 100",
				goerr.V("skill", s.SkillName), goerr.V("percentage", s.Percentage))
		}
		if s.CandidateCount < 0 {
			return goerr.New("skill candidate count must not be negative",
				goerr.V("skill", s.SkillName), goerr.V("count", s.CandidateCount))
		}
		if !s.Color.IsValid() {
			return goerr.Wrap(ErrInvalidColorTag, "invalid skill color",
				goerr.V("index", i), goerr.V("color", s.Color))
		}
		total += s.CandidateCount
	}
	if total != d.SkillTotal {
		return goerr.New("skill candidate counts do not add up to displayed total",
			goerr.V("sum", total), goerr.V("total", d.SkillTotal))
	}

	for _, c := range d.Countries {
		if c.CountryName == "" {
			return goerr.New("country name is required")
		}
		if !c.Severity.IsValid() {
			return goerr.Wrap(ErrInvalidSeverityTag, "invalid country severity",
				goerr.V("country", c.CountryName), goerr.V("severity", c.Severity))
		}
		if expected := types.SeverityForDelay(c.AvgDelayDays); expected != c.Severity {
			return goerr.New("country severity does not match its delay",
				goerr.V("country", c.CountryName),
				goerr.V("delayDays", c.AvgDelayDays),
				goerr.V("severity", c.Severity),
				goerr.V("expected", expected))
		}
	}

	return nil
}

func isPercentage(v int) bool {
	return v >= 0 && v <= 100
}
