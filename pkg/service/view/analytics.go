package view

import (
	"fmt"
	"strconv"

	"github.com/talentops/hireboard/pkg/domain/model"
)

// RoleAnalyticsView is the role of the root node produced by AnalyticsView
const RoleAnalyticsView = "analytics-view"

// countryColumns are the header cells of the source country table
var countryColumns = []string{
	"Country",
	"Active Candidates",
	"Embassy Processing",
	"Pending Arrival",
	"Avg. Delay",
}

// AnalyticsView builds the display tree of the hiring analytics dashboard.
// It only transcribes the given figures; nothing is computed or reordered.
func AnalyticsView(d *model.Dashboard, theme *model.Theme) *Node {
	return El("div", "space-y-6",
		buildHeader(d),
		buildSummaryCards(d, theme),
		El("div", "grid grid-cols-1 gap-6 lg:grid-cols-2",
			buildSpeedPanel(d, theme),
			buildSkillPanel(d, theme),
		),
		buildCountryPanel(d, theme),
	).WithRole(RoleAnalyticsView)
}

func buildHeader(d *model.Dashboard) *Node {
	return El("div", "flex flex-col gap-1",
		TextEl("h1", "text-2xl font-bold text-gray-900", d.Title),
		TextEl("p", "text-sm text-gray-500", d.Subtitle),
	)
}

func buildSummaryCards(d *model.Dashboard, theme *model.Theme) *Node {
	grid := El("div", "grid grid-cols-1 gap-6 md:grid-cols-3")
	for _, card := range d.Cards {
		palette := theme.Color(card.Color)
		grid.Children = append(grid.Children,
			El("div", "rounded-xl border border-gray-100 bg-white p-6 shadow-sm",
				TextEl("p", "text-sm font-medium text-gray-500", card.Label),
				TextEl("p", "mt-2 text-3xl font-bold text-gray-900", card.Value),
				TextEl("p", "mt-1 text-xs "+palette.Text, card.Delta),
			).WithRole(RoleSummaryCard).WithAttr("data-color", card.Color.String()),
		)
	}
	return grid
}

func buildSpeedPanel(d *model.Dashboard, theme *model.Theme) *Node {
	chart := El("div", "flex h-48 items-end justify-between gap-4")
	for _, b := range d.SpeedBuckets {
		palette := theme.Color(b.Color)
		chart.Children = append(chart.Children,
			El("div", "flex h-full flex-1 flex-col items-center justify-end gap-2",
				TextEl("span", "text-xs font-semibold text-gray-700", percent(b.DisplayValue)),
				El("div", "w-full rounded-t-md "+palette.Bar).
					WithAttr("style", "height: "+percent(b.HeightPct)),
				TextEl("span", "text-xs text-gray-500", b.Label),
			).WithRole(RoleSpeedBar).
				WithAttr("data-height", strconv.Itoa(b.HeightPct)).
				WithAttr("data-value", strconv.Itoa(b.DisplayValue)).
				WithAttr("data-color", b.Color.String()),
		)
	}

	return El("div", "rounded-xl border border-gray-100 bg-white p-6 shadow-sm",
		TextEl("h2", "mb-4 text-lg font-semibold text-gray-900", d.SpeedTitle),
		chart,
	).WithRole(RoleSpeedPanel)
}

func buildSkillPanel(d *model.Dashboard, theme *model.Theme) *Node {
	rows := El("div", "space-y-4")
	for _, s := range d.Skills {
		palette := theme.Color(s.Color)
		rows.Children = append(rows.Children,
			El("div", "space-y-1",
				El("div", "flex justify-between text-sm",
					TextEl("span", "font-medium text-gray-700", s.SkillName),
					TextEl("span", "text-gray-500", fmt.Sprintf("%s (%d)", percent(s.Percentage), s.CandidateCount)),
				),
				El("div", "h-2 w-full rounded-full bg-gray-100",
					El("div", "h-2 rounded-full "+palette.Bar).
						WithAttr("style", "width: "+percent(s.Percentage)),
				),
			).WithRole(RoleSkillRow).
				WithAttr("data-percentage", strconv.Itoa(s.Percentage)).
				WithAttr("data-count", strconv.Itoa(s.CandidateCount)).
				WithAttr("data-color", s.Color.String()),
		)
	}

	return El("div", "rounded-xl border border-gray-100 bg-white p-6 shadow-sm",
		El("div", "mb-4 flex items-center justify-between",
			TextEl("h2", "text-lg font-semibold text-gray-900", d.SkillsTitle),
			TextEl("span", "text-sm text-gray-500", fmt.Sprintf("Total: %d candidates", d.SkillTotal)),
		),
		rows,
	).WithRole(RoleSkillPanel).WithAttr("data-total", strconv.Itoa(d.SkillTotal))
}

func buildCountryPanel(d *model.Dashboard, theme *model.Theme) *Node {
	headRow := El("tr", "")
	for _, col := range countryColumns {
		headRow.Children = append(headRow.Children,
			TextEl("th", "px-4 py-3 text-left text-xs font-medium uppercase text-gray-500", col))
	}

	body := El("tbody", "divide-y divide-gray-100")
	for _, c := range d.Countries {
		palette := theme.Severity(c.Severity)
		body.Children = append(body.Children,
			El("tr", "",
				TextEl("td", "px-4 py-3 font-medium text-gray-900", c.CountryName),
				TextEl("td", "px-4 py-3 text-gray-700", strconv.Itoa(c.ActiveCandidates)),
				TextEl("td", "px-4 py-3 text-gray-700", strconv.Itoa(c.EmbassyProcessing)),
				TextEl("td", "px-4 py-3 text-gray-700", strconv.Itoa(c.PendingArrival)),
				El("td", "px-4 py-3",
					TextEl("span", "rounded-full px-2 py-1 text-xs font-medium "+palette.Badge, days(c.AvgDelayDays)),
				),
			).WithRole(RoleCountryRow).
				WithAttr("data-severity", c.Severity.String()).
				WithAttr("data-delay", strconv.Itoa(c.AvgDelayDays)),
		)
	}

	return El("div", "rounded-xl border border-gray-100 bg-white p-6 shadow-sm",
		TextEl("h2", "mb-4 text-lg font-semibold text-gray-900", d.CountryTitle),
		El("table", "min-w-full text-sm",
			El("thead", "bg-gray-50", headRow),
			body,
		),
	).WithRole(RoleCountryPanel)
}

func percent(v int) string {
	return strconv.Itoa(v) + "%"
}

func days(v int) string {
	if v == 1 {
		return "1 Day"
	}
	return strconv.Itoa(v) + " Days"
}
