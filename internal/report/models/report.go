package models

import "strings"

// PersonalSection is the classification summary at the head of the report:
// per-topic normal/high/low name lists with counts, plus subject metadata.
type PersonalSection struct {
	Name         string     `json:"name"`
	Age          int        `json:"age"`
	AgeGroup     AgeBracket `json:"age_group"`
	SpecialNotes string     `json:"special_notes"`

	HeavyMetalsNormal      []string `json:"heavy_metals_normal"`
	HeavyMetalsHigh        []string `json:"heavy_metals_high"`
	HeavyMetalsNormalCount int      `json:"heavy_metals_normal_count"`
	HeavyMetalsHighCount   int      `json:"heavy_metals_high_count"`

	MineralsNormal      []string `json:"minerals_normal"`
	MineralsHigh        []string `json:"minerals_high"`
	MineralsLow         []string `json:"minerals_low"`
	MineralsNormalCount int      `json:"minerals_normal_count"`
	MineralsHighCount   int      `json:"minerals_high_count"`
	MineralsLowCount    int      `json:"minerals_low_count"`

	HealthNormal      []string `json:"health_normal"`
	HealthHigh        []string `json:"health_high"`
	HealthLow         []string `json:"health_low"`
	HealthNormalCount int      `json:"health_normal_count"`
	HealthHighCount   int      `json:"health_high_count"`
	HealthLowCount    int      `json:"health_low_count"`
}

// Narrative holds stages 1-4: the opening paragraph and the three per-topic
// narrative blocks.
type Narrative struct {
	Opening     string `json:"first_paragraph"`
	HeavyMetals string `json:"heavy_metals_analysis"`
	Minerals    string `json:"minerals_analysis"`
	Health      string `json:"health_indicators_analysis"`
}

// Joined concatenates the non-empty narrative stages with paragraph breaks.
// Statistics and the flat rendering both derive from this without
// re-running resolution.
func (n Narrative) Joined() string {
	parts := make([]string, 0, 4)
	for _, p := range []string{n.Opening, n.HeavyMetals, n.Minerals, n.Health} {
		if strings.TrimSpace(p) != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, "\n\n")
}

// Summary is stage 5: the management focus, the exactly-five food list,
// the supplement recommendation, and the re-examination guidance.
type Summary struct {
	Title            string   `json:"title"`
	RecommendedFoods []string `json:"recommended_foods"`
	Supplement       string   `json:"recommended_supplements"`
	ReexamGuidance   string   `json:"recheck_period"`
}

// Statistics is stage 6, computed over the joined stages 1-4.
type Statistics struct {
	TotalCharacters        int     `json:"total_characters"`
	TotalWords             int     `json:"total_words"`
	ParagraphCount         int     `json:"paragraph_count"`
	AverageParagraphLength int     `json:"average_paragraph_length"`
	OpeningRatio           float64 `json:"first_paragraph_ratio"`
	HeavyMetalsRatio       float64 `json:"heavy_metals_ratio"`
	MineralsRatio          float64 `json:"minerals_ratio"`
	HealthRatio            float64 `json:"health_indicators_ratio"`
}

// Synopsis is stage 7: the compressed 950-1000 character rendition.
type Synopsis struct {
	Content        string `json:"content"`
	CharacterCount int    `json:"character_count"`
}

// Report is the seven-stage composition result. It is assembled once per
// request and only finished (placeholder substitution, normalization) before
// being returned; callers must not mutate it.
type Report struct {
	Personal   PersonalSection `json:"personal_info_section"`
	Narrative  Narrative       `json:"comprehensive_analysis"`
	Summary    Summary         `json:"summary_explanation"`
	Statistics Statistics      `json:"statistics_analysis"`
	Synopsis   Synopsis        `json:"compressed_version"`
}

// FlatReport is the pre-joined rendering of the same result for clients that
// consume plain text blocks.
type FlatReport struct {
	PersonalSection string `json:"personal_info_section"`
	SummarySection  string `json:"summary_section"`
	Comprehensive   string `json:"comprehensive_analysis"`
	Statistics      string `json:"statistics_analysis"`
	Synopsis        string `json:"compressed_version"`
}
