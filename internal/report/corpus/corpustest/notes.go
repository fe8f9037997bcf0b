// Package corpustest provides a small but structurally faithful note set for
// tests. Headings follow the authoring conventions of the production notes;
// bodies are short stand-ins that still carry the food and supplement phrases
// the summary stage looks for.
package corpustest

import "hairnote/internal/report/corpus"

// Notes returns a fresh copy of the fixture note set.
func Notes() map[corpus.NoteID]string {
	return map[corpus.NoteID]string{
		corpus.NoteOpening:     note1,
		corpus.NoteHeavyMetals: note2,
		corpus.NoteMinerals:    note3,
		corpus.NoteHealth:      note4,
		corpus.NoteSummary:     note5,
	}
}

const note1 = `# 큐모발검사 기본 규칙

## 시작 문단 구성

첫 문장은 검사 결과 요약으로 시작한다.

---

### 모발검사결과 (완전 정상인 경우)

**최종 멘트:**
> [이름]님의 모발검사결과, 유해 중금속과 영양 미네랄은 모두 정상 수치입니다.
> 현재의 식습관과 생활습관을 잘 유지하고 계시며, 균형 잡힌 영양 상태를 보이고 있습니다.
> 견과류, 달걀, 녹색 잎 채소, 등 푸른 생선, 가공하지 않은 곡류를 골고루 섭취하시면서 지금의 컨디션을 이어가시기 바랍니다.

---
`

const note2 = `# 중금속 종류별 최종 멘트

## 수은

### 19세 이하

[이름]님은 수은이 축적되어 있습니다. 성장기에는 수은 배출을 위해 익힌 채소와 가공하지 않은 곡류 위주의 식단을 권장합니다.

### 20세 이상

[이름]님은 수은이 축적되어 있습니다. 등 푸른 생선의 섭취를 잠시 줄이시고 브로콜리, 마늘, 양파와 같은 해독 식품을 충분히 드시기 바랍니다. 비타민C와 비타민E, 셀레늄이 함유된 항산화 영양제 보충도 도움이 됩니다.

---

## 납

### 19세 이하

[이름]님은 납이 축적되어 있습니다. 칼슘이 풍부한 유제품과 멸치를 꾸준히 섭취하면 납 배출에 도움이 됩니다.

### 20세 이상

[이름]님은 납이 축적되어 있습니다. 납은 철분, 칼슘과 흡수 경로가 겹치므로 녹색 잎 채소와 달걀을 충분히 드시기 바랍니다.

---

## 카드뮴

### 19세 이하

[이름]님은 카드뮴이 축적되어 있습니다. 현미와 채소 위주의 식단으로 배출을 돕는 것이 좋습니다.

### 20세 이상

[이름]님은 카드뮴이 축적되어 있습니다. 흡연 환경을 피하시고 아연이 풍부한 견과류를 섭취하시기 바랍니다.

---

## 바륨

### 19세 이하

[이름]님은 바륨 수치가 높게 측정되었습니다. 미네랄 균형을 위해 채소와 과일을 골고루 드시기 바랍니다.

### 20세 이상

[이름]님은 바륨 수치가 높게 측정되었습니다. 충분한 수분 섭취와 함께 칼륨이 풍부한 바나나, 아보카도를 권장합니다.

---
`

const note3 = `# 영양 미네랄 상세 조건별 최종 멘트

### 칼슘과 마그네슘 높음 (복합조건)

**최종 멘트:**
> [이름]님은 칼슘과 마그네슘이 동시에 높게 측정되었습니다. 두 미네랄이 함께 상승한 경우 체내 이용률 저하를 의미할 수 있으므로, 비타민D 보충과 함께 규칙적인 운동을 권장합니다.

**⚠️ 작성 주의**: 개별 칼슘/마그네슘 멘트와 중복 사용 금지

### 칼슘과 마그네슘 낮음 + 19세 이하 (복합조건)

**최종 멘트:**
> [이름]님은 성장에 필요한 칼슘과 마그네슘이 모두 부족합니다. 유제품, 멸치, 녹색 잎 채소를 매일 챙겨 드시고 칼슘, 마그네슘, 비타민D가 함께 들어간 칼마디 영양제 보충을 권장합니다.

### 칼슘과 마그네슘 낮음 + 20세 이상 (복합조건)

**최종 멘트:**
> [이름]님은 칼슘과 마그네슘이 모두 부족한 상태입니다. 골밀도 관리를 위해 유제품과 두부를 충분히 섭취하시기 바랍니다.

### 나트륨과 칼륨 높음 + 19세 이하 (복합조건)

**최종 멘트:**
> [이름]님은 나트륨과 칼륨이 함께 높게 측정되었습니다. 성장기에는 흔히 나타나는 패턴이므로 짠 간식만 줄이셔도 충분합니다.

### 나트륨과 칼륨 높음 + 20세 이상 (복합조건)

**최종 멘트:**
> [이름]님은 나트륨과 칼륨이 함께 높게 측정되었습니다. 부신 기능 항진과 관련될 수 있으므로 염분 섭취를 줄이고 스트레스 관리에 신경 써 주시기 바랍니다.

### 나트륨과 칼륨 낮음 + 20세 이상 (복합조건)

**최종 멘트:**
> [이름]님은 나트륨과 칼륨이 함께 낮게 측정되었습니다. 부신 피로의 신호일 수 있으므로 충분한 휴식과 수면을 권장합니다.

### 아연 높음 + 구리 낮음 + 20세 이상 (복합조건)

**최종 멘트:**
> [이름]님은 아연이 높고 구리가 낮은 불균형 상태입니다. 아연 보충제를 복용 중이시라면 잠시 중단하시고, 견과류와 콩류로 구리를 보충하시기 바랍니다.

### 칼슘 높음 + 19세 이하

**최종 멘트:**
> [이름]님은 칼슘이 높게 측정되었습니다. 성장기의 칼슘 상승은 대사가 활발하다는 신호일 수 있으니 균형 잡힌 식사를 유지하시기 바랍니다.

### 칼슘 높음 + 20세 이상

**최종 멘트:**
> [이름]님은 칼슘이 높게 측정되었습니다. 조직 내 칼슘 침착 가능성이 있으므로 마그네슘이 풍부한 견과류와 녹색 잎 채소를 함께 드시기 바랍니다.

### 칼슘 낮음 + 20세 이상

**최종 멘트:**
> [이름]님은 칼슘이 부족한 상태입니다. 유제품, 멸치, 두부를 꾸준히 섭취하시고 비타민D 보충을 권장합니다.

### 마그네슘 낮음 + 20세 이상

**최종 멘트:**
> [이름]님은 마그네슘이 부족한 상태입니다. 견과류와 현미, 녹색 잎 채소를 충분히 드시기 바랍니다.

### 나트륨 높음 + 10세 이하

**최종 멘트:**
> [이름]님은 나트륨이 높게 측정되었습니다. 이 연령대에서는 땀 배출이나 식습관의 영향으로 흔히 나타나므로 크게 걱정하지 않으셔도 됩니다.

### 인 높음 (연령 무관)

**최종 멘트:**
> [이름]님은 인 수치가 높게 측정되었습니다. 가공식품과 탄산음료 섭취를 줄이시기 바랍니다.

### 아연 낮음

**최종 멘트:**
> [이름]님은 아연이 부족한 상태입니다. 굴, 붉은 고기, 견과류를 충분히 섭취하시고 필요시 아연이 포함된 영양제 보충을 권장합니다.

---
`

const note4 = `# 건강 상태 지표별 최종 멘트

### 인슐린 민감도 - 높음 (기본)

**조건**: 인슐린 민감도 높음
**최종 멘트**: [이름]님은 인슐린 민감도가 높은 상태입니다. 혈당 변동이 클 수 있으므로 귀리, 퀴노아와 같은 저당지수 곡류 위주의 식사를 권장합니다. 비타민B군 보충도 도움이 됩니다.

### 인슐린 민감도 - 낮음 (기본)

**조건**: 인슐린 민감도 낮음
**최종 멘트**: [이름]님은 인슐린 민감도가 낮은 상태입니다. 규칙적인 유산소 운동과 정제 탄수화물 줄이기를 권장합니다.

### 스트레스 상태 - 높음 (19세 이하)

**조건**: 스트레스 상태 높음, 19세 이하
**최종 멘트**: [이름]님은 스트레스 지표가 높게 나타났습니다. 학업 부담이 큰 시기이므로 충분한 수면과 콩류, 두부 같은 단백질 섭취를 권장합니다.

**비고**: 보호자 안내 문구 별도

### 스트레스 상태 - 높음 (20세 이상)

**조건**: 스트레스 상태 높음, 20세 이상
**최종 멘트**: [이름]님은 스트레스 지표가 높게 나타났습니다. 마그네슘이 풍부한 아몬드와 연어를 섭취하시고, 취침 전 휴대폰 사용을 줄여 수면의 질을 높이시기 바랍니다.

### 부신 활성도 - 높음 (20세 이상 + 수은 높음)

**조건**: 부신 활성도 높음, 수은 축적 동반
**최종 멘트**: [이름]님은 부신 활성도가 높으며 수은 축적이 함께 확인되었습니다. 중금속 부담이 부신을 자극하고 있을 가능성이 있으므로 해독 식품 섭취와 함께 항산화 영양제 보충을 권장합니다.

**특이사항**: 수은 멘트와 함께 출력됨

### 부신 활성도 - 높음 (20세 이상 + 갑상선 활성도 낮음)

**조건**: 부신 활성도 높음, 갑상선 활성도 낮음
**최종 멘트**: [이름]님은 부신 활성도는 높고 갑상선 활성도는 낮은 역전 패턴입니다. 만성 스트레스로 인한 대사 보상일 수 있으므로 충분한 휴식을 권장합니다.

### 부신 활성도 - 높음 (일반)

**조건**: 부신 활성도 높음
**최종 멘트**: [이름]님은 부신 활성도가 높은 상태입니다. 카페인 섭취를 줄이시고 규칙적인 수면 패턴을 유지하시기 바랍니다.

### 부신 활성도 - 낮음 (20세 이상 + 갑상선 활성도 높음)

**조건**: 부신 활성도 낮음, 갑상선 활성도 높음
**최종 멘트**: [이름]님은 부신 활성도는 낮고 갑상선 활성도는 높은 패턴입니다. 에너지 대사의 불균형이 의심되므로 무리한 운동은 피하시기 바랍니다.

### 부신 활성도 - 낮음 (일반)

**조건**: 부신 활성도 낮음
**최종 멘트**: [이름]님은 부신 활성도가 낮은 상태입니다. 부신 피로가 누적된 신호일 수 있으므로 아보카도, 바나나, 고구마와 같은 식품과 함께 비타민B군 보충을 권장합니다.

### 갑상선 활성도 - 높음 (일반)

**조건**: 갑상선 활성도 높음
**최종 멘트**: [이름]님은 갑상선 활성도가 높은 상태입니다. 해조류 섭취를 잠시 줄이시고 경과를 지켜보시기 바랍니다.

### 갑상선 활성도 - 낮음 (일반)

**조건**: 갑상선 활성도 낮음
**최종 멘트**: [이름]님은 갑상선 활성도가 낮은 상태입니다. 요오드가 풍부한 해조류와 생선을 적정량 섭취하시기 바랍니다.

### 면역 및 피부 건강 - 낮음 (일반)

**조건**: 면역 및 피부 건강 낮음
**최종 멘트**: [이름]님은 면역 및 피부 건강 지표가 낮은 상태입니다. 마늘, 생강, 버섯류를 꾸준히 드시고 비타민D 보충을 권장합니다.

### 자율신경계 - 높음 (일반)

**조건**: 자율신경계 높음
**최종 멘트**: [이름]님은 자율신경계 지표가 높은 상태입니다. 교감신경 우위 상태가 지속되고 있으므로 가벼운 산책과 심호흡 습관을 권장합니다.

---
`

const note5 = `# 멘트 요약 규칙

## 제목 결정

중금속 축적이 있으면 "중금속 배출 관리"를 우선한다. 축적이 없으면 부신,
스트레스, 혈당, 면역 순으로 확인하고 모두 해당하지 않으면 "영양 균형 관리"로
마무리한다.

## 추천 식품

본문에 언급된 식품 가운데 다섯 가지를 추천 목록으로 제시하고, 다섯 가지에
미치지 못하면 기본 권장 식품으로 채운다.

## 재검사 주기

| 중금속 | 미네랄 | 주기 |
|--------|--------|------|
| 축적   | 정상   | 약 3개월 |
| 축적   | 불균형 | 약 3개월 |
| 정상   | 불균형 | 약 3~4개월 |
| 정상   | 정상   | 약 5~6개월 |
`
