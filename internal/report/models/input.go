package models

import (
	"strings"

	dErrors "hairnote/pkg/domain-errors"
)

// Subject carries the personal section of the request.
//
// Invariants:
//   - Name is non-empty after trimming
//   - Age is between 1 and 120 inclusive
//   - SpecialNotes defaults to "없음" when blank
type Subject struct {
	Name         string `json:"name"`
	Age          int    `json:"age"`
	SpecialNotes string `json:"special_notes"`
}

var treatmentKeywords = []string{"파마", "염색", "탈색"}

// HasTreatment reports whether the special notes mention a hair treatment
// (perm, dye, bleach) that can distort barium/calcium/magnesium readings.
func (s Subject) HasTreatment() bool {
	for _, kw := range treatmentKeywords {
		if strings.Contains(s.SpecialNotes, kw) {
			return true
		}
	}
	return false
}

// HeavyMetalSet is the fixed nine-metal panel. Heavy metals never read Low.
type HeavyMetalSet struct {
	Mercury  Status `json:"mercury"`
	Arsenic  Status `json:"arsenic"`
	Cadmium  Status `json:"cadmium"`
	Lead     Status `json:"lead"`
	Aluminum Status `json:"aluminum"`
	Barium   Status `json:"barium"`
	Nickel   Status `json:"nickel"`
	Uranium  Status `json:"uranium"`
	Bismuth  Status `json:"bismuth"`
}

func (h HeavyMetalSet) values() []Status {
	return []Status{h.Mercury, h.Arsenic, h.Cadmium, h.Lead, h.Aluminum, h.Barium, h.Nickel, h.Uranium, h.Bismuth}
}

// MineralSet is the fixed eleven-mineral panel.
type MineralSet struct {
	Calcium    Status `json:"calcium"`
	Magnesium  Status `json:"magnesium"`
	Sodium     Status `json:"sodium"`
	Potassium  Status `json:"potassium"`
	Copper     Status `json:"copper"`
	Zinc       Status `json:"zinc"`
	Phosphorus Status `json:"phosphorus"`
	Iron       Status `json:"iron"`
	Manganese  Status `json:"manganese"`
	Chromium   Status `json:"chromium"`
	Selenium   Status `json:"selenium"`
}

func (m MineralSet) values() []Status {
	return []Status{m.Calcium, m.Magnesium, m.Sodium, m.Potassium, m.Copper, m.Zinc, m.Phosphorus, m.Iron, m.Manganese, m.Chromium, m.Selenium}
}

// IndicatorSet is the fixed six-indicator panel.
type IndicatorSet struct {
	InsulinSensitivity     Status `json:"insulin_sensitivity"`
	AutonomicNervousSystem Status `json:"autonomic_nervous_system"`
	StressState            Status `json:"stress_state"`
	ImmuneSkinHealth       Status `json:"immune_skin_health"`
	AdrenalActivity        Status `json:"adrenal_activity"`
	ThyroidActivity        Status `json:"thyroid_activity"`
}

func (i IndicatorSet) values() []Status {
	return []Status{i.InsulinSensitivity, i.AutonomicNervousSystem, i.StressState, i.ImmuneSkinHealth, i.AdrenalActivity, i.ThyroidActivity}
}

// Input is the validated request body for an analysis.
type Input struct {
	PersonalInfo     Subject       `json:"personal_info"`
	HeavyMetals      HeavyMetalSet `json:"heavy_metals"`
	Minerals         MineralSet    `json:"nutritional_minerals"`
	HealthIndicators IndicatorSet  `json:"health_indicators"`
}

// Normalize applies defaults that the wire format leaves optional.
func (in *Input) Normalize() {
	in.PersonalInfo.Name = strings.TrimSpace(in.PersonalInfo.Name)
	if strings.TrimSpace(in.PersonalInfo.SpecialNotes) == "" {
		in.PersonalInfo.SpecialNotes = "없음"
	}
}

// Validate enforces the input invariants. Engine code may assume they hold.
func (in *Input) Validate() error {
	if in.PersonalInfo.Name == "" {
		return dErrors.New(dErrors.CodeValidation, "이름은 필수 입력 항목입니다.")
	}
	if in.PersonalInfo.Age < 1 || in.PersonalInfo.Age > 120 {
		return dErrors.New(dErrors.CodeValidation, "나이는 1세부터 120세까지 입력 가능합니다.")
	}
	for topic, values := range map[Topic][]Status{
		TopicHeavyMetal:      in.HeavyMetals.values(),
		TopicMineral:         in.Minerals.values(),
		TopicHealthIndicator: in.HealthIndicators.values(),
	} {
		analytes := Analytes(topic)
		for i, v := range values {
			if v == "" {
				return dErrors.Newf(dErrors.CodeValidation, "%s 검사값이 누락되었습니다", analytes[i].Korean)
			}
			if v == StatusLow && !analytes[i].AllowLow {
				return dErrors.Newf(dErrors.CodeValidation, "유해 중금속 %s은 낮음 값을 가질 수 없습니다", analytes[i].Korean)
			}
		}
	}
	return nil
}

// Readings flattens one topic's panel into classified readings in declared
// enumeration order.
func (in *Input) Readings(topic Topic) []AnalyteReading {
	var values []Status
	switch topic {
	case TopicHeavyMetal:
		values = in.HeavyMetals.values()
	case TopicMineral:
		values = in.Minerals.values()
	case TopicHealthIndicator:
		values = in.HealthIndicators.values()
	default:
		return nil
	}
	analytes := Analytes(topic)
	readings := make([]AnalyteReading, len(values))
	for i, v := range values {
		readings[i] = AnalyteReading{Topic: topic, Key: analytes[i].Key, Korean: analytes[i].Korean, Status: v}
	}
	return readings
}

// Reading looks up a single analyte across all topics.
func (in *Input) Reading(key string) (AnalyteReading, bool) {
	for _, topic := range []Topic{TopicHeavyMetal, TopicMineral, TopicHealthIndicator} {
		for _, r := range in.Readings(topic) {
			if r.Key == key {
				return r, true
			}
		}
	}
	return AnalyteReading{}, false
}

// AllNormal reports whether every reading in the topic is Normal.
func (in *Input) AllNormal(topic Topic) bool {
	for _, r := range in.Readings(topic) {
		if r.Status != StatusNormal {
			return false
		}
	}
	return true
}
