package engine

import (
	"fmt"
	"regexp"
	"strings"

	"hairnote/internal/report/models"
	stringsutil "hairnote/pkg/platform/strings"
)

// priorityFoods backfills the recommendation list when the narrative
// mentions fewer than five foods.
var priorityFoods = []string{"견과류", "달걀", "녹색 잎 채소", "등 푸른 생선", "가공하지 않은 곡류"}

// foodCatalog is scanned against the narrative in this order: specific foods
// first, broad categories last.
var foodCatalog = []string{
	"브로콜리", "시금치", "견과류", "등 푸른 생선", "달걀",
	"녹색 잎 채소", "가공하지 않은 곡류", "콩류", "두부", "채소",
	"익힌 채소", "바나나", "아보카도", "고구마", "현미",
	"유제품", "해조류", "멸치", "마늘", "양파", "생강",
	"붉은 고기", "육류", "생선", "곡류", "과일", "버섯류",
}

// focusFoods completes the list by management focus when the narrative and
// priority foods together still fall short of five.
var focusFoods = map[string][]string{
	"중금속":  {"브로콜리", "마늘", "양파", "시금치", "해조류"},
	"부신":   {"아보카도", "바나나", "고구마", "현미"},
	"스트레스": {"콩류", "두부", "아몬드", "연어"},
	"혈당":   {"귀리", "퀴노아", "렌틸콩", "블루베리"},
	"면역":   {"마늘", "생강", "버섯류", "베리류"},
}

// supplementPatterns map supplement mentions in the narrative to their
// canonical recommendation, checked in order.
var supplementPatterns = []struct {
	re   *regexp.Regexp
	name string
}{
	{regexp.MustCompile(`비타민C.*?비타민E.*?셀레늄`), "비타민C, E, 셀레늄이 함유된 항산화 영양제"},
	{regexp.MustCompile(`항산화.*?영양제`), "항산화 영양제"},
	{regexp.MustCompile(`비타민B군.*?보충`), "비타민B군"},
	{regexp.MustCompile(`비타민B.*?영양제`), "비타민B 영양제"},
	{regexp.MustCompile(`비타민D.*?보충`), "비타민D"},
	{regexp.MustCompile(`칼슘.*?마그네슘.*?영양제`), "칼마디(칼슘, 마그네슘, 비타민D) 영양제"},
}

// summarize is stage 5: management focus, five recommended foods, a
// supplement recommendation, and the re-examination interval.
func (e *Engine) summarize(in *models.Input, n models.Narrative) models.Summary {
	focus := managementFocus(in)
	return models.Summary{
		Title:            fmt.Sprintf("%s님께서는 전체적으로 %s가 요구됩니다.", in.PersonalInfo.Name, focus),
		RecommendedFoods: recommendFoods(n, focus),
		Supplement:       recommendSupplement(in, n, focus),
		ReexamGuidance:   reexamGuidance(in),
	}
}

// managementFocus walks the priority ladder. Only substantive readings
// count: treatment-overridden metals do not put the subject on heavy-metal
// management.
func managementFocus(in *models.Input) string {
	if len(substantiveAbnormal(in, models.TopicHeavyMetal)) > 0 {
		var secondary string
		if status(in, "adrenal_activity") == models.StatusLow {
			secondary = "피로도"
		} else if status(in, "selenium") == models.StatusLow ||
			status(in, "manganese") == models.StatusLow ||
			status(in, "copper") == models.StatusLow {
			secondary = "항산화"
		}
		if secondary != "" {
			return "중금속과 " + secondary + " 관리"
		}
		return "중금속 배출 관리"
	}
	if status(in, "adrenal_activity") == models.StatusLow {
		return "부신 피로도 관리"
	}
	if status(in, "stress_state") == models.StatusHigh {
		return "스트레스 관리"
	}
	if status(in, "insulin_sensitivity") == models.StatusHigh {
		return "혈당 관리와 피로감 개선"
	}
	if status(in, "immune_skin_health") == models.StatusLow {
		return "면역력 강화"
	}
	return "영양 균형 관리"
}

func status(in *models.Input, key string) models.Status {
	r, ok := in.Reading(key)
	if !ok {
		return ""
	}
	return r.Status
}

// recommendFoods returns exactly five foods: narrative mentions first, then
// the priority list, then the focus-matched supplement foods.
func recommendFoods(n models.Narrative, focus string) []string {
	text := strings.Join([]string{n.Opening, n.HeavyMetals, n.Minerals, n.Health}, " ")

	candidates := make([]string, 0, len(foodCatalog))
	for _, food := range foodCatalog {
		if strings.Contains(text, food) {
			candidates = append(candidates, food)
		}
	}
	candidates = append(candidates, priorityFoods...)
	candidates = append(candidates, focusFoodsFor(focus)...)

	foods := stringsutil.DedupeAndTrim(candidates)
	if len(foods) > 5 {
		foods = foods[:5]
	}
	return foods
}

func focusFoodsFor(focus string) []string {
	for _, key := range []string{"중금속", "부신", "스트레스", "혈당"} {
		if strings.Contains(focus, key) {
			return focusFoods[key]
		}
	}
	return focusFoods["면역"]
}

// recommendSupplement prefers a supplement the narrative already mentions;
// otherwise it falls back to a focus-driven default sentence.
func recommendSupplement(in *models.Input, n models.Narrative, focus string) string {
	text := strings.Join([]string{n.HeavyMetals, n.Minerals, n.Health}, " ")
	for _, p := range supplementPatterns {
		if p.re.MatchString(text) {
			return p.name
		}
	}

	switch {
	case strings.Contains(focus, "중금속 배출"):
		return fmt.Sprintf("%s 배출을 위해 비타민C, E, 셀레늄이 함유된 항산화 영양제를 추천 드립니다.", primaryMetalName(in))
	case strings.Contains(focus, "중금속과"):
		return fmt.Sprintf("%s 관리를 위해 비타민C, E, 셀레늄이 함유된 항산화 영양제와 부신 피로 개선을 위해 비타민B군이 도움이 됩니다.", primaryMetalName(in))
	case strings.Contains(focus, "부신 피로도"):
		return "부신 피로도 개선을 위해 비타민B 영양제를 추천 드립니다."
	case strings.Contains(focus, "스트레스"):
		return "나트륨, 칼륨 수치와 스트레스 개선을 위해 비타민D의 꾸준한 섭취가 권장 됩니다."
	case strings.Contains(focus, "혈당"):
		return "부신 활성과 느끼시는 피로감 개선을 위해 비타민B 영양제를 추천 드립니다."
	case strings.Contains(focus, "면역"):
		return "면역력 강화를 위해 비타민C와 아연이 함유된 영양제를 추천 드립니다."
	default:
		return "영양 균형 관리를 위해 비타민B군 영양제를 추천 드립니다."
	}
}

// reexamGuidance applies the four-cell interval matrix over the substantive
// abnormal flags.
func reexamGuidance(in *models.Input) string {
	name := in.PersonalInfo.Name
	metalsHigh := substantiveAbnormal(in, models.TopicHeavyMetal)
	mineralsAbnormal := substantiveAbnormal(in, models.TopicMineral)

	switch {
	case len(metalsHigh) > 0 && len(mineralsAbnormal) == 0:
		return fmt.Sprintf("%s님께서는 %s 배출을 위한 영양 관리 후, 약 3개월 뒤 재검사를 통한 확인이 필요합니다.",
			name, primaryMetalName(in))
	case len(metalsHigh) > 0:
		return fmt.Sprintf("%s님께서는 %s 배출과 %s의 관리 후, 약 3개월 뒤 재검사를 통한 확인이 필요합니다.",
			name, primaryMetalName(in), mineralIssue(mineralsAbnormal))
	case len(mineralsAbnormal) > 0:
		return fmt.Sprintf("%s님께서는 %s 관리 후, 약 3~4개월 뒤 재검사를 통한 확인이 필요합니다.",
			name, mineralIssue(mineralsAbnormal))
	default:
		return fmt.Sprintf("%s님께서는 꾸준한 영양 관리 후, 약 5~6개월 뒤 재검사를 통한 확인이 필요합니다.", name)
	}
}

// primaryMetalName is the first substantively accumulated metal in panel
// order.
func primaryMetalName(in *models.Input) string {
	metals := substantiveAbnormal(in, models.TopicHeavyMetal)
	if len(metals) == 0 {
		return "중금속"
	}
	return metals[0].Korean
}

// mineralIssue names at most two abnormal minerals.
func mineralIssue(abnormal []models.AnalyteReading) string {
	if len(abnormal) == 0 {
		return "영양 미네랄"
	}
	names := make([]string, 0, 2)
	for _, r := range abnormal {
		names = append(names, r.Korean)
		if len(names) == 2 {
			break
		}
	}
	return strings.Join(names, ", ")
}
