package engine

import (
	"fmt"
	"math"
	"strings"

	"hairnote/internal/report/models"
)

// opening writes stage 1. A fully normal result uses the authored catch-all
// from note 1; anything else is assembled from the fixed sentence table.
func (e *Engine) opening(in *models.Input) string {
	allNormal := in.AllNormal(models.TopicHeavyMetal) &&
		in.AllNormal(models.TopicMineral) &&
		in.AllNormal(models.TopicHealthIndicator)
	if allNormal {
		if frag, ok := e.corpus.AllNormalOpening(); ok {
			// Authored across several quoted lines; the opening is one
			// continuous paragraph.
			return strings.Join(strings.Fields(frag.Text), " ")
		}
		e.logger.Warn("all-normal opening fragment missing")
	}

	var metalsHigh []string
	for _, r := range in.Readings(models.TopicHeavyMetal) {
		if r.Status == models.StatusHigh {
			metalsHigh = append(metalsHigh, r.Korean)
		}
	}
	var mineralsAbnormal []string
	for _, r := range in.Readings(models.TopicMineral) {
		if r.Status.Abnormal() {
			mineralsAbnormal = append(mineralsAbnormal, r.Korean)
		}
	}
	healthAbnormal := 0
	for _, r := range in.Readings(models.TopicHealthIndicator) {
		if r.Status.Abnormal() {
			healthAbnormal++
		}
	}

	var sentences []string
	switch {
	case len(metalsHigh) == 0 && len(mineralsAbnormal) == 0 && e.combineNormalSentence:
		sentences = append(sentences, "유해 중금속과 영양 미네랄은 모두 정상 수치입니다.")
	default:
		if len(metalsHigh) > 0 {
			sentences = append(sentences, fmt.Sprintf("유해 중금속은 %s이 축적되었습니다.", strings.Join(metalsHigh, ", ")))
		} else {
			sentences = append(sentences, "유해 중금속은 모두 정상 수치 입니다.")
		}
		if len(mineralsAbnormal) > 0 {
			sentences = append(sentences, fmt.Sprintf("영양 미네랄은 %s이 불균형 상태입니다.", strings.Join(mineralsAbnormal, ", ")))
		} else {
			sentences = append(sentences, "영양 미네랄은 모두 정상 수치입니다.")
		}
	}
	switch {
	case healthAbnormal == 0:
		sentences = append(sentences, "건강 상태 지표는 모두 균형을 이루고 있습니다.")
	case healthAbnormal <= 3:
		sentences = append(sentences, "건강 상태 지표는 일부가 불안정 상태입니다.")
	default:
		sentences = append(sentences, "건강 상태 지표는 몇가지 불안정 상태입니다.")
	}

	return "[이름]님의 모발검사결과, " + strings.Join(sentences, " ")
}

// statistics is stage 6, computed over the finished stages 1-4. Lengths are
// rune counts; ratios are percentage shares rounded to one decimal.
func statistics(n models.Narrative) models.Statistics {
	full := n.Joined()
	total := len([]rune(full))

	paragraphs := 0
	for _, p := range strings.Split(full, "\n\n") {
		if strings.TrimSpace(p) != "" {
			paragraphs++
		}
	}
	avg := 0
	if paragraphs > 0 {
		avg = total / paragraphs
	}

	ratio := func(s string) float64 {
		if total == 0 {
			return 0
		}
		return math.Round(float64(len([]rune(s)))/float64(total)*1000) / 10
	}

	return models.Statistics{
		TotalCharacters:        total,
		TotalWords:             len(strings.Fields(full)),
		ParagraphCount:         paragraphs,
		AverageParagraphLength: avg,
		OpeningRatio:           ratio(n.Opening),
		HeavyMetalsRatio:       ratio(n.HeavyMetals),
		MineralsRatio:          ratio(n.Minerals),
		HealthRatio:            ratio(n.Health),
	}
}

const (
	synopsisMin = 950
	synopsisMax = 1000

	synopsisPadding = "정기적인 검사를 통해 건강한 삶을 유지하시기 바랍니다."
)

// synopsis is stage 7: a fixed-shape standalone rendition around the stage-1
// paragraph, clamped to the 950-1000 character window.
func (e *Engine) synopsis(in *models.Input, n models.Narrative) models.Synopsis {
	name := in.PersonalInfo.Name
	content := fmt.Sprintf(`%s님의 큐모발검사 결과를 종합적으로 분석한 결과입니다.

%s

검사 결과에 따른 주요 관리 사항은 다음과 같습니다. 첫째, 유해 중금속이 검출된 경우 항산화 영양소가 풍부한 식품 섭취와 생활 환경 개선이 필요합니다. 둘째, 영양 미네랄 불균형 개선을 위해 균형 잡힌 식단과 적절한 영양제 보충을 권장합니다. 셋째, 건강 지표 안정화를 위한 스트레스 관리와 충분한 수면, 규칙적인 운동이 중요합니다.

추천 식품으로는 견과류, 달걀, 녹색 잎 채소, 등 푸른 생선, 가공하지 않은 곡류 등의 섭취를 권장하며, 개인별 상태에 맞는 항산화 영양제나 비타민B군 보충을 추천합니다.

%s님께서는 이러한 관리를 통해 약 3-6개월 후 재검사를 받으시기 바랍니다. 꾸준한 관리를 통해 영양 균형 개선과 건강 지표 안정화 효과를 기대할 수 있습니다.`, name, n.Opening, name)

	runes := []rune(content)
	switch {
	case len(runes) > synopsisMax:
		content = string(runes[:synopsisMax-3]) + "..."
	case len(runes) < synopsisMin:
		content += "\n\n" + synopsisPadding
	}

	return models.Synopsis{
		Content:        content,
		CharacterCount: len([]rune(content)),
	}
}
