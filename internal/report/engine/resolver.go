package engine

import (
	"strings"

	"hairnote/internal/report/corpus"
	"hairnote/internal/report/models"
)

// healthAllNormalText closes stage 4 when the indicator pass produces no
// content; the notes have no catch-all section for this topic.
const healthAllNormalText = "[이름]님의 건강 상태 지표들은 전반적으로 균형을 이루고 있어 양호한 상태입니다. 현재의 건강한 생활습관을 유지하시면서 정기적인 검사를 통해 지속적으로 관리해 주시기 바랍니다."

func (e *Engine) metalsNarrative(in *models.Input) string {
	var parts []string
	for _, r := range in.Readings(models.TopicHeavyMetal) {
		if r.Status != models.StatusHigh {
			continue
		}
		if text, ok := e.resolveIndividual(in, r); ok {
			parts = append(parts, text)
		}
	}
	parts = e.appendDisclaimer(parts, in, models.TopicHeavyMetal)
	return strings.Join(parts, "\n\n")
}

func (e *Engine) mineralsNarrative(in *models.Input) string {
	parts, suppressed := e.resolveComposites(in, models.TopicMineral)
	for _, r := range in.Readings(models.TopicMineral) {
		if !r.Status.Abnormal() || suppressed[r.Key] {
			continue
		}
		if text, ok := e.resolveIndividual(in, r); ok {
			parts = append(parts, text)
		}
	}
	parts = e.appendDisclaimer(parts, in, models.TopicMineral)
	return strings.Join(parts, "\n\n")
}

func (e *Engine) healthNarrative(in *models.Input) string {
	parts, suppressed := e.resolveComposites(in, models.TopicHealthIndicator)
	for _, r := range in.Readings(models.TopicHealthIndicator) {
		if !r.Status.Abnormal() || suppressed[r.Key] {
			continue
		}
		if text, ok := e.resolveIndividual(in, r); ok {
			parts = append(parts, text)
		}
	}
	// The balanced sentence keys on output, not input: abnormal indicators
	// whose fragments are authoring gaps leave the stage empty too.
	if len(parts) == 0 {
		return healthAllNormalText
	}
	return strings.Join(parts, "\n\n")
}

// resolveComposites walks the topic's composite table in order. A rule whose
// readings hold claims its participants even when the corpus has no fragment
// for it; emitting the participants individually instead would contradict
// the authored composite intent.
func (e *Engine) resolveComposites(in *models.Input, topic models.Topic) ([]string, map[string]bool) {
	var parts []string
	suppressed := make(map[string]bool)

	for _, rule := range compositesFor(topic) {
		if !rule.holds(in) {
			continue
		}
		conflicted := false
		for _, key := range rule.suppress {
			if suppressed[key] {
				conflicted = true
				break
			}
		}
		if conflicted {
			continue
		}

		found := false
		for _, key := range rule.candidateKeys(in) {
			if frag, ok := e.corpus.Resolve(topic, key, in.PersonalInfo.Age); ok {
				parts = append(parts, frag.Text)
				found = true
				break
			}
		}
		if !found {
			e.logger.Warn("composite fragment missing",
				"topic", string(topic), "participants", corpus.ConditionKey{Participants: rule.when}.Signature())
		}
		for _, key := range rule.suppress {
			suppressed[key] = true
		}
	}
	return parts, suppressed
}

// resolveIndividual finds the fragment for a single abnormal reading. An
// adrenal reading with accumulated mercury prefers the mercury-qualified
// section when one is authored. A missing fragment is an authoring gap:
// logged, and the reading contributes nothing.
func (e *Engine) resolveIndividual(in *models.Input, r models.AnalyteReading) (string, bool) {
	self := []corpus.Participant{{Key: r.Key, Status: r.Status}}
	candidates := [][]corpus.Participant{self}
	if r.Topic == models.TopicHealthIndicator {
		if m, ok := in.Reading("mercury"); ok && m.Status == models.StatusHigh {
			candidates = [][]corpus.Participant{
				append([]corpus.Participant{{Key: r.Key, Status: r.Status}}, corpus.Participant{Key: "mercury", Status: models.StatusHigh}),
				self,
			}
		}
	}
	for _, c := range candidates {
		if frag, ok := e.corpus.Resolve(r.Topic, c, in.PersonalInfo.Age); ok {
			return frag.Text, true
		}
	}
	e.logger.Warn("fragment missing",
		"topic", string(r.Topic), "analyte", r.Key, "status", string(r.Status))
	return "", false
}

// appendDisclaimer adds the perm/dye reassurance when the topic has
// treatment-overridden readings, naming the affected analytes.
func (e *Engine) appendDisclaimer(parts []string, in *models.Input, topic models.Topic) []string {
	overridden := overriddenReadings(in, topic)
	if len(overridden) == 0 {
		return parts
	}
	names := make([]string, len(overridden))
	for i, r := range overridden {
		names[i] = r.Korean
	}
	text := strings.ReplaceAll(e.corpus.Disclaimer().Text, "[원소]", strings.Join(names, ", "))
	return append(parts, text)
}
