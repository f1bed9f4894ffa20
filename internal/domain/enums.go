package domain

// MilestoneCategory selects the rule used to compute milestone progress.
type MilestoneCategory string

const (
	MilestoneCategoryTime        MilestoneCategory = "time"
	MilestoneCategoryHealth      MilestoneCategory = "health"
	MilestoneCategoryAchievement MilestoneCategory = "achievement"
	MilestoneCategorySavings     MilestoneCategory = "savings"
)

func (c MilestoneCategory) String() string { return string(c) }

func (c MilestoneCategory) IsValid() bool {
	switch c {
	case MilestoneCategoryTime, MilestoneCategoryHealth, MilestoneCategoryAchievement, MilestoneCategorySavings:
		return true
	}
	return false
}

// IsTimeBased reports whether progress is measured in hours since the quit date.
func (c MilestoneCategory) IsTimeBased() bool {
	return c == MilestoneCategoryTime || c == MilestoneCategoryHealth
}

// ThresholdUnit is the unit a milestone threshold is expressed in.
type ThresholdUnit string

const (
	ThresholdUnitHours            ThresholdUnit = "hours"
	ThresholdUnitResolvedCravings ThresholdUnit = "resolved_cravings"
	ThresholdUnitCurrency         ThresholdUnit = "currency"
)

func (u ThresholdUnit) String() string { return string(u) }

func (u ThresholdUnit) IsValid() bool {
	switch u {
	case ThresholdUnitHours, ThresholdUnitResolvedCravings, ThresholdUnitCurrency:
		return true
	}
	return false
}

// ChatbotTone is the preferred voice of the in-app assistant.
type ChatbotTone string

const (
	ChatbotToneEmpathetic   ChatbotTone = "empathetic"
	ChatbotToneMotivational ChatbotTone = "motivational"
	ChatbotToneDirect       ChatbotTone = "direct"
)

func (t ChatbotTone) String() string { return string(t) }

func (t ChatbotTone) IsValid() bool {
	switch t {
	case ChatbotToneEmpathetic, ChatbotToneMotivational, ChatbotToneDirect:
		return true
	}
	return false
}

// Theme is the client color scheme preference.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
	ThemeAuto  Theme = "auto"
)

func (t Theme) String() string { return string(t) }

func (t Theme) IsValid() bool {
	switch t {
	case ThemeLight, ThemeDark, ThemeAuto:
		return true
	}
	return false
}
