package models

import (
	"encoding/json"
	"fmt"
)

// Topic identifies one of the three analyte categories in a hair test.
type Topic string

const (
	TopicHeavyMetal      Topic = "heavy_metal"
	TopicMineral         Topic = "mineral"
	TopicHealthIndicator Topic = "health_indicator"
)

// Status is the classified level of a single reading. The wire format uses
// the Korean lab values (정상/높음/낮음).
type Status string

const (
	StatusNormal Status = "정상"
	StatusHigh   Status = "높음"
	StatusLow    Status = "낮음"
)

// ParseStatus validates a raw category value.
func ParseStatus(raw string) (Status, error) {
	switch Status(raw) {
	case StatusNormal, StatusHigh, StatusLow:
		return Status(raw), nil
	}
	return "", fmt.Errorf("unrecognized test value %q", raw)
}

func (s Status) Abnormal() bool { return s == StatusHigh || s == StatusLow }

// UnmarshalJSON rejects values outside the fixed enumeration at the input
// boundary so the engine never sees an unclassifiable reading.
func (s *Status) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	parsed, err := ParseStatus(raw)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// Analyte describes one measurable item: its wire key, Korean display name,
// and whether the Low status exists in its domain (heavy metals are binary).
type Analyte struct {
	Key      string
	Korean   string
	Topic    Topic
	AllowLow bool
}

// Declared enumeration order is load-bearing: narrative sections list
// analytes in this order, and Stage-1 abnormal sets preserve it.
var (
	HeavyMetals = []Analyte{
		{Key: "mercury", Korean: "수은", Topic: TopicHeavyMetal},
		{Key: "arsenic", Korean: "비소", Topic: TopicHeavyMetal},
		{Key: "cadmium", Korean: "카드뮴", Topic: TopicHeavyMetal},
		{Key: "lead", Korean: "납", Topic: TopicHeavyMetal},
		{Key: "aluminum", Korean: "알루미늄", Topic: TopicHeavyMetal},
		{Key: "barium", Korean: "바륨", Topic: TopicHeavyMetal},
		{Key: "nickel", Korean: "니켈", Topic: TopicHeavyMetal},
		{Key: "uranium", Korean: "우라늄", Topic: TopicHeavyMetal},
		{Key: "bismuth", Korean: "비스무트", Topic: TopicHeavyMetal},
	}

	Minerals = []Analyte{
		{Key: "calcium", Korean: "칼슘", Topic: TopicMineral, AllowLow: true},
		{Key: "magnesium", Korean: "마그네슘", Topic: TopicMineral, AllowLow: true},
		{Key: "sodium", Korean: "나트륨", Topic: TopicMineral, AllowLow: true},
		{Key: "potassium", Korean: "칼륨", Topic: TopicMineral, AllowLow: true},
		{Key: "copper", Korean: "구리", Topic: TopicMineral, AllowLow: true},
		{Key: "zinc", Korean: "아연", Topic: TopicMineral, AllowLow: true},
		{Key: "phosphorus", Korean: "인", Topic: TopicMineral, AllowLow: true},
		{Key: "iron", Korean: "철", Topic: TopicMineral, AllowLow: true},
		{Key: "manganese", Korean: "망간", Topic: TopicMineral, AllowLow: true},
		{Key: "chromium", Korean: "크롬", Topic: TopicMineral, AllowLow: true},
		{Key: "selenium", Korean: "셀레늄", Topic: TopicMineral, AllowLow: true},
	}

	HealthIndicators = []Analyte{
		{Key: "insulin_sensitivity", Korean: "인슐린 민감도", Topic: TopicHealthIndicator, AllowLow: true},
		{Key: "autonomic_nervous_system", Korean: "자율신경계", Topic: TopicHealthIndicator, AllowLow: true},
		{Key: "stress_state", Korean: "스트레스 상태", Topic: TopicHealthIndicator, AllowLow: true},
		{Key: "immune_skin_health", Korean: "면역 및 피부 건강", Topic: TopicHealthIndicator, AllowLow: true},
		{Key: "adrenal_activity", Korean: "부신 활성도", Topic: TopicHealthIndicator, AllowLow: true},
		{Key: "thyroid_activity", Korean: "갑상선 활성도", Topic: TopicHealthIndicator, AllowLow: true},
	}
)

// Analytes returns the declared enumeration for a topic.
func Analytes(topic Topic) []Analyte {
	switch topic {
	case TopicHeavyMetal:
		return HeavyMetals
	case TopicMineral:
		return Minerals
	case TopicHealthIndicator:
		return HealthIndicators
	}
	return nil
}

// AnalyteByKorean resolves a Korean display name back to its analyte.
// Used by the corpus parser, which sees Korean names in condition headings.
func AnalyteByKorean(name string) (Analyte, bool) {
	for _, set := range [][]Analyte{HeavyMetals, Minerals, HealthIndicators} {
		for _, a := range set {
			if a.Korean == name {
				return a, true
			}
		}
	}
	// The notes sometimes write iron as 철분 rather than 철.
	if name == "철분" {
		return AnalyteByKorean("철")
	}
	return Analyte{}, false
}

// AnalyteReading is one classified measurement. Immutable once parsed.
type AnalyteReading struct {
	Topic  Topic
	Key    string
	Korean string
	Status Status
}
