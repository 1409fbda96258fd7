package types

// ColorTag selects the presentation style of a chart bar, progress bar or card
type ColorTag string

const (
	ColorEmerald ColorTag = "emerald"
	ColorBlue    ColorTag = "blue"
	ColorAmber   ColorTag = "amber"
	ColorRose    ColorTag = "rose"
	ColorPink    ColorTag = "pink"
	ColorIndigo  ColorTag = "indigo"
)

// AllColorTags returns every known color tag in declaration order
func AllColorTags() []ColorTag {
	return []ColorTag{ColorEmerald, ColorBlue, ColorAmber, ColorRose, ColorPink, ColorIndigo}
}

// String returns the string representation of the color tag
func (c ColorTag) String() string {
	return string(c)
}

// IsValid checks if the color tag is known
func (c ColorTag) IsValid() bool {
	switch c {
	case ColorEmerald, ColorBlue, ColorAmber, ColorRose, ColorPink, ColorIndigo:
		return true
	default:
		return false
	}
}

// SeverityTag is a categorical label for processing delays
type SeverityTag string

const (
	SeverityLow    SeverityTag = "low"
	SeverityMedium SeverityTag = "medium"
	SeverityHigh   SeverityTag = "high"
)

// Upper bounds (inclusive) of the low and medium delay bands, in days
const (
	lowDelayMaxDays    = 3
	mediumDelayMaxDays = 5
)

// AllSeverityTags returns every known severity tag from least to most severe
func AllSeverityTags() []SeverityTag {
	return []SeverityTag{SeverityLow, SeverityMedium, SeverityHigh}
}

// String returns the string representation of the severity tag
func (s SeverityTag) String() string {
	return string(s)
}

// IsValid checks if the severity tag is known
func (s SeverityTag) IsValid() bool {
	switch s {
	case SeverityLow, SeverityMedium, SeverityHigh:
		return true
	default:
		return false
	}
}

// Label returns a human readable label for the severity
func (s SeverityTag) Label() string {
	switch s {
	case SeverityLow:
		return "Low"
	case SeverityMedium:
		return "Medium"
	case SeverityHigh:
		return "High"
	default:
		return "Unknown"
	}
}

// SeverityForDelay maps an average processing delay to its severity band
func SeverityForDelay(days int) SeverityTag {
	switch {
	case days <= lowDelayMaxDays:
		return SeverityLow
	case days <= mediumDelayMaxDays:
		return SeverityMedium
	default:
		return SeverityHigh
	}
}
