package corpus

import (
	"fmt"
	"strings"

	"hairnote/internal/report/models"
)

const (
	fragmentMarker    = "**최종 멘트:**"
	fragmentMarkerAlt = "**최종 멘트**:"
	allNormalHeading  = "모발검사결과 (완전 정상인 경우)"

	// Synthesized treatment-override fragment; the composer substitutes the
	// affected element list for the placeholder.
	disclaimerText = "다만, [원소] 수치는 최근 펌이나 염색에 사용된 제품의 영향으로 일시적으로 높아졌을 가능성이 있으므로 크게 걱정하지 않으셔도 됩니다."
)

// bodyTerminators end a fragment body inside a section. Anything after an
// authoring sidebar belongs to the editors, not the report.
var bodyTerminators = []string{"**⚠️", "**특이사항", "**비고", "**참고"}

// Build parses the five notes into an immutable corpus. Any malformed
// condition heading, missing note, or ambiguous composite pair is an error;
// a corpus that cannot be trusted is not served.
func Build(notes map[NoteID]string) (*Corpus, error) {
	for _, id := range AllNotes {
		if strings.TrimSpace(notes[id]) == "" {
			return nil, fmt.Errorf("corpus: note %s is missing or empty", id)
		}
	}

	c := &Corpus{
		byTopic:     make(map[models.Topic][]Fragment),
		loadedNotes: len(AllNotes),
		disclaimer: Fragment{
			Key:  ConditionKey{Topic: models.TopicHeavyMetal, Override: true},
			Text: disclaimerText,
		},
	}

	if err := c.parseOpening(notes[NoteOpening]); err != nil {
		return nil, err
	}
	if err := c.parseHeavyMetals(notes[NoteHeavyMetals]); err != nil {
		return nil, err
	}
	if err := c.parseMinerals(notes[NoteMinerals]); err != nil {
		return nil, err
	}
	if err := c.parseHealth(notes[NoteHealth]); err != nil {
		return nil, err
	}
	if err := c.validate(); err != nil {
		return nil, fmt.Errorf("corpus: %w", err)
	}
	return c, nil
}

// parseOpening pulls the single all-normal catch-all out of note 1. The rest
// of the note is sentence tables the composer implements directly.
func (c *Corpus) parseOpening(text string) error {
	for _, sec := range splitSections(text, 3) {
		if sec.heading != allNormalHeading {
			continue
		}
		body := extractBody(sec.body)
		if body == "" {
			return fmt.Errorf("corpus: note1 section %q has no fragment text", sec.heading)
		}
		c.allNormalOpen = Fragment{
			Key:  ConditionKey{Bracket: models.BracketAllAges},
			Text: body,
		}
		c.hasNormalOpen = true
		return nil
	}
	return fmt.Errorf("corpus: note1 is missing the %q section", allNormalHeading)
}

// parseHeavyMetals reads note 2: one `## <금속>` section per heavy metal,
// split into `### <연령대>` subsections. Subsection bodies are the fragment;
// a fragment marker inside the body narrows it further.
func (c *Corpus) parseHeavyMetals(text string) error {
	for _, metalSec := range splitSections(text, 2) {
		analyte, ok := models.AnalyteByKorean(strings.TrimSpace(metalSec.heading))
		if !ok || analyte.Topic != models.TopicHeavyMetal {
			// Overview or authoring-guide section.
			continue
		}
		subs := splitSections(metalSec.body, 3)
		if len(subs) == 0 {
			return fmt.Errorf("corpus: note2 section %q has no age subsections", metalSec.heading)
		}
		for _, sub := range subs {
			bracket, ok := models.ParseAgeBracket(strings.TrimSpace(sub.heading))
			if !ok {
				return fmt.Errorf("corpus: note2 %q: unrecognized age heading %q", metalSec.heading, sub.heading)
			}
			body := extractBody(sub.body)
			if body == "" {
				return fmt.Errorf("corpus: note2 %q/%q has no fragment text", metalSec.heading, sub.heading)
			}
			c.byTopic[models.TopicHeavyMetal] = append(c.byTopic[models.TopicHeavyMetal], Fragment{
				Key: ConditionKey{
					Topic:        models.TopicHeavyMetal,
					Participants: []Participant{{Key: analyte.Key, Status: models.StatusHigh}},
					Bracket:      bracket,
				},
				Text: body,
			})
		}
	}
	if len(c.byTopic[models.TopicHeavyMetal]) == 0 {
		return fmt.Errorf("corpus: note2 yielded no heavy-metal fragments")
	}
	return nil
}

// parseMinerals reads note 3: flat `###` condition headings such as
// "칼슘과 마그네슘 높음 (복합조건)", "나트륨과 칼륨 높음 + 19세 이하 (복합조건)"
// and "칼슘 높음 + 20세 이상".
func (c *Corpus) parseMinerals(text string) error {
	for _, sec := range splitSections(text, 3) {
		key, err := parseMineralHeading(sec.heading)
		if err != nil {
			return fmt.Errorf("corpus: note3: %w", err)
		}
		body := extractBody(sec.body)
		if body == "" {
			return fmt.Errorf("corpus: note3 %q has no fragment text", sec.heading)
		}
		c.byTopic[models.TopicMineral] = append(c.byTopic[models.TopicMineral], Fragment{Key: key, Text: body})
	}
	if len(c.byTopic[models.TopicMineral]) == 0 {
		return fmt.Errorf("corpus: note3 yielded no mineral fragments")
	}
	return nil
}

// parseHealth reads note 4: headings of the form
// "<지표> - <상태> (<한정어>)" where the qualifier is an age bracket, a
// cross-reading such as "수은 높음" or "갑상선 활성도 낮음", or both.
func (c *Corpus) parseHealth(text string) error {
	for _, sec := range splitSections(text, 3) {
		key, err := parseHealthHeading(sec.heading)
		if err != nil {
			return fmt.Errorf("corpus: note4: %w", err)
		}
		body := extractBody(sec.body)
		if body == "" {
			return fmt.Errorf("corpus: note4 %q has no fragment text", sec.heading)
		}
		c.byTopic[models.TopicHealthIndicator] = append(c.byTopic[models.TopicHealthIndicator], Fragment{Key: key, Text: body})
	}
	if len(c.byTopic[models.TopicHealthIndicator]) == 0 {
		return fmt.Errorf("corpus: note4 yielded no health-indicator fragments")
	}
	return nil
}

const compositeTag = "(복합조건)"

// parseMineralHeading turns a note-3 heading into a condition key.
func parseMineralHeading(heading string) (ConditionKey, error) {
	key := ConditionKey{Topic: models.TopicMineral}
	h := strings.TrimSpace(heading)

	if strings.Contains(h, compositeTag) {
		key.Composite = true
		h = strings.TrimSpace(strings.ReplaceAll(h, compositeTag, ""))
	}
	// Parenthesized all-ages marker, e.g. "인 높음 (연령 무관)".
	if open := strings.IndexByte(h, '('); open >= 0 && strings.HasSuffix(h, ")") {
		label := strings.TrimSpace(h[open+1 : len(h)-1])
		bracket, ok := models.ParseAgeBracket(label)
		if !ok {
			return key, fmt.Errorf("heading %q: unrecognized qualifier %q", heading, label)
		}
		key.Bracket = bracket
		h = strings.TrimSpace(h[:open])
	}

	for _, part := range strings.Split(h, " + ") {
		part = strings.TrimSpace(part)
		if bracket, ok := models.ParseAgeBracket(part); ok {
			if key.Bracket != "" {
				return key, fmt.Errorf("heading %q: duplicate age qualifier", heading)
			}
			key.Bracket = bracket
			continue
		}
		participants, err := parseParticipants(part, models.TopicMineral)
		if err != nil {
			return key, fmt.Errorf("heading %q: %w", heading, err)
		}
		key.Participants = append(key.Participants, participants...)
	}
	if len(key.Participants) == 0 {
		return key, fmt.Errorf("heading %q names no mineral", heading)
	}
	if len(key.Participants) > 1 {
		key.Composite = true
	}
	return key, nil
}

// parseHealthHeading turns a note-4 heading into a condition key.
func parseHealthHeading(heading string) (ConditionKey, error) {
	key := ConditionKey{Topic: models.TopicHealthIndicator}
	h := strings.TrimSpace(heading)

	name, rest, found := strings.Cut(h, " - ")
	if !found {
		return key, fmt.Errorf("heading %q is not of the form \"지표 - 상태\"", heading)
	}
	analyte, ok := models.AnalyteByKorean(strings.TrimSpace(name))
	if !ok || analyte.Topic != models.TopicHealthIndicator {
		return key, fmt.Errorf("heading %q: unknown health indicator %q", heading, name)
	}

	rest = strings.TrimSpace(rest)
	qualifier := ""
	if open := strings.IndexByte(rest, '('); open >= 0 && strings.HasSuffix(rest, ")") {
		qualifier = strings.TrimSpace(rest[open+1 : len(rest)-1])
		rest = strings.TrimSpace(rest[:open])
	}
	status, err := models.ParseStatus(rest)
	if err != nil || !status.Abnormal() {
		return key, fmt.Errorf("heading %q: bad status %q", heading, rest)
	}
	key.Participants = []Participant{{Key: analyte.Key, Status: status}}

	if qualifier != "" {
		for _, part := range strings.Split(qualifier, " + ") {
			part = strings.TrimSpace(part)
			if bracket, ok := models.ParseAgeBracket(part); ok {
				key.Bracket = bracket
				continue
			}
			extra, err := parseQualifierReading(part)
			if err != nil {
				return key, fmt.Errorf("heading %q: %w", heading, err)
			}
			key.Participants = append(key.Participants, extra)
		}
	}
	if len(key.Participants) > 1 {
		key.Composite = true
	}
	return key, nil
}

// parseParticipants parses an expression like "칼슘과 마그네슘 높음" or
// "마그네슘 낮음과 칼슘 높음" into (analyte, status) pairs. A status word
// closes out every preceding analyte that does not have one yet.
func parseParticipants(expr string, topic models.Topic) ([]Participant, error) {
	var out []Participant
	pending := 0 // participants still awaiting a status
	for _, tok := range strings.Fields(expr) {
		word := trimConnector(tok)
		if status, err := models.ParseStatus(word); err == nil && status.Abnormal() {
			if pending == 0 {
				return nil, fmt.Errorf("dangling status %q in %q", word, expr)
			}
			for i := len(out) - pending; i < len(out); i++ {
				out[i].Status = status
			}
			pending = 0
			continue
		}
		analyte, ok := models.AnalyteByKorean(word)
		if !ok || analyte.Topic != topic {
			return nil, fmt.Errorf("unknown analyte %q in %q", word, expr)
		}
		out = append(out, Participant{Key: analyte.Key})
		pending++
	}
	if pending > 0 {
		return nil, fmt.Errorf("analyte without status in %q", expr)
	}
	return out, nil
}

// parseQualifierReading parses a note-4 qualifier reading such as
// "수은 높음" or "갑상선 활성도 낮음": the last word is the status, the rest
// is an analyte name from any topic.
func parseQualifierReading(expr string) (Participant, error) {
	fields := strings.Fields(expr)
	if len(fields) < 2 {
		return Participant{}, fmt.Errorf("unrecognized qualifier %q", expr)
	}
	status, err := models.ParseStatus(fields[len(fields)-1])
	if err != nil || !status.Abnormal() {
		return Participant{}, fmt.Errorf("unrecognized qualifier %q", expr)
	}
	name := strings.Join(fields[:len(fields)-1], " ")
	analyte, ok := models.AnalyteByKorean(name)
	if !ok {
		return Participant{}, fmt.Errorf("unknown analyte %q in qualifier %q", name, expr)
	}
	return Participant{Key: analyte.Key, Status: status}, nil
}

// trimConnector strips a trailing Korean conjunction (과/와) off a token.
// The stem must stand on its own as an analyte or status word; "인과" is
// 인 + connector, but an unrelated word keeps its suffix.
func trimConnector(tok string) string {
	for _, conn := range []string{"과", "와"} {
		stem, ok := strings.CutSuffix(tok, conn)
		if !ok || stem == "" {
			continue
		}
		if _, isAnalyte := models.AnalyteByKorean(stem); isAnalyte {
			return stem
		}
		if s, err := models.ParseStatus(stem); err == nil && s.Abnormal() {
			return stem
		}
	}
	return tok
}

type section struct {
	heading string
	body    string
}

// splitSections cuts markdown into sections at headings of exactly the given
// level, ignoring deeper headings inside a body and stopping each body at a
// horizontal rule.
func splitSections(text string, level int) []section {
	prefix := strings.Repeat("#", level) + " "
	var (
		out  []section
		cur  *section
		body []string
	)
	flush := func() {
		if cur != nil {
			cur.body = strings.TrimSpace(strings.Join(body, "\n"))
			out = append(out, *cur)
			cur, body = nil, nil
		}
	}
	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, prefix) {
			flush()
			cur = &section{heading: strings.TrimSpace(strings.TrimPrefix(trimmed, prefix))}
			continue
		}
		if isHeadingAbove(trimmed, level) {
			flush()
			continue
		}
		// A horizontal rule closes subsections but not top-level sections,
		// which run to the next same-level heading.
		if isRule(trimmed) && level >= 3 {
			flush()
			continue
		}
		if cur != nil {
			body = append(body, line)
		}
	}
	flush()
	return out
}

func isHeadingAbove(line string, level int) bool {
	n := 0
	for n < len(line) && line[n] == '#' {
		n++
	}
	return n > 0 && n < level && n < len(line) && line[n] == ' '
}

func isRule(line string) bool {
	return strings.HasPrefix(line, "---") && strings.Trim(line, "-") == ""
}

// extractBody returns the fragment text of a section body: everything after
// the fragment marker when present (the whole body otherwise), cut at the
// first authoring sidebar, with blockquote prefixes stripped.
func extractBody(body string) string {
	if i := strings.Index(body, fragmentMarker); i >= 0 {
		body = body[i+len(fragmentMarker):]
	} else if i := strings.Index(body, fragmentMarkerAlt); i >= 0 {
		body = body[i+len(fragmentMarkerAlt):]
	}
	cut := len(body)
	for _, term := range bodyTerminators {
		if i := strings.Index(body, term); i >= 0 && i < cut {
			cut = i
		}
	}
	body = body[:cut]

	var lines []string
	for _, line := range strings.Split(body, "\n") {
		line = strings.TrimSpace(line)
		for strings.HasPrefix(line, ">") {
			line = strings.TrimSpace(strings.TrimPrefix(line, ">"))
		}
		lines = append(lines, line)
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}
