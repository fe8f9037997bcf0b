package engine

import (
	"hairnote/internal/report/corpus"
	"hairnote/internal/report/models"
)

// compositeRule is one entry of the fixed composite table. When every
// reading in `when` holds and no participant is already suppressed, the rule
// wins: its fragment is emitted and `suppress` drops out of individual
// resolution for the topic.
type compositeRule struct {
	when     []corpus.Participant
	suppress []string

	// lookups returns candidate corpus keys in preference order. Nil means
	// the `when` participants are the key.
	lookups func(in *models.Input) [][]corpus.Participant
}

func (r compositeRule) candidateKeys(in *models.Input) [][]corpus.Participant {
	if r.lookups != nil {
		return r.lookups(in)
	}
	return [][]corpus.Participant{r.when}
}

func (r compositeRule) holds(in *models.Input) bool {
	for _, p := range r.when {
		reading, ok := in.Reading(p.Key)
		if !ok || reading.Status != p.Status {
			return false
		}
	}
	return true
}

func pair(aKey string, aStatus models.Status, bKey string, bStatus models.Status) []corpus.Participant {
	return []corpus.Participant{{Key: aKey, Status: aStatus}, {Key: bKey, Status: bStatus}}
}

// mineralComposites in evaluation order. Calcium/magnesium pairs come before
// the sodium/potassium and zinc/copper pairs, and the mixed-direction pair
// last so the shared-direction pairs claim their participants first.
var mineralComposites = []compositeRule{
	{when: pair("calcium", models.StatusHigh, "magnesium", models.StatusHigh), suppress: []string{"calcium", "magnesium"}},
	{when: pair("calcium", models.StatusLow, "magnesium", models.StatusLow), suppress: []string{"calcium", "magnesium"}},
	{when: pair("sodium", models.StatusHigh, "potassium", models.StatusHigh), suppress: []string{"sodium", "potassium"}},
	{when: pair("sodium", models.StatusLow, "potassium", models.StatusLow), suppress: []string{"sodium", "potassium"}},
	{when: pair("zinc", models.StatusHigh, "copper", models.StatusLow), suppress: []string{"zinc", "copper"}},
	{when: pair("magnesium", models.StatusLow, "calcium", models.StatusHigh), suppress: []string{"magnesium", "calcium"}},
}

// healthComposites in evaluation order. The adrenal-high/thyroid-low pair
// prefers the mercury-qualified fragment when mercury is accumulated; the
// mercury reading itself stays available to the heavy-metal stage.
var healthComposites = []compositeRule{
	{
		when:     pair("adrenal_activity", models.StatusHigh, "thyroid_activity", models.StatusLow),
		suppress: []string{"adrenal_activity", "thyroid_activity"},
		lookups: func(in *models.Input) [][]corpus.Participant {
			base := pair("adrenal_activity", models.StatusHigh, "thyroid_activity", models.StatusLow)
			if r, ok := in.Reading("mercury"); ok && r.Status == models.StatusHigh {
				return [][]corpus.Participant{
					pair("adrenal_activity", models.StatusHigh, "mercury", models.StatusHigh),
					base,
				}
			}
			return [][]corpus.Participant{base}
		},
	},
	{
		when:     pair("adrenal_activity", models.StatusLow, "thyroid_activity", models.StatusHigh),
		suppress: []string{"adrenal_activity", "thyroid_activity"},
	},
}

func compositesFor(topic models.Topic) []compositeRule {
	switch topic {
	case models.TopicMineral:
		return mineralComposites
	case models.TopicHealthIndicator:
		return healthComposites
	}
	return nil
}

// overriddenReadings returns the High readings attributable to a recent
// perm, dye, or bleach treatment: barium, calcium, and magnesium. They keep
// their narrative fragments but are excluded from title and re-examination
// triggers, and the topic narrative gains a reassurance disclaimer.
func overriddenReadings(in *models.Input, topic models.Topic) []models.AnalyteReading {
	if !in.PersonalInfo.HasTreatment() {
		return nil
	}
	var keys []string
	switch topic {
	case models.TopicHeavyMetal:
		keys = []string{"barium"}
	case models.TopicMineral:
		keys = []string{"calcium", "magnesium"}
	}
	var out []models.AnalyteReading
	for _, key := range keys {
		if r, ok := in.Reading(key); ok && r.Status == models.StatusHigh {
			out = append(out, r)
		}
	}
	return out
}

func isOverridden(in *models.Input, r models.AnalyteReading) bool {
	for _, o := range overriddenReadings(in, r.Topic) {
		if o.Key == r.Key {
			return true
		}
	}
	return false
}

// substantiveAbnormal filters a topic's abnormal readings down to the ones
// that drive the title and re-examination interval: treatment-overridden
// readings drop out, as do sodium/potassium High for subjects of 10 or
// younger, where they track sweat and diet rather than a real imbalance.
func substantiveAbnormal(in *models.Input, topic models.Topic) []models.AnalyteReading {
	var out []models.AnalyteReading
	for _, r := range in.Readings(topic) {
		if !r.Status.Abnormal() || isOverridden(in, r) {
			continue
		}
		if topic == models.TopicMineral && in.PersonalInfo.Age <= 10 &&
			r.Status == models.StatusHigh && (r.Key == "sodium" || r.Key == "potassium") {
			continue
		}
		out = append(out, r)
	}
	return out
}
