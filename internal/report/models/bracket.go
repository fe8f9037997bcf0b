package models

// AgeBracket is the authoring-side age qualifier on a template fragment.
// The notes use two overlapping partitions: a fine one (10세 이하 / 11-19세 /
// 20세 이상) and a coarse one (19세 이하 / 20세 이상). Fine brackets are more
// specific than coarse ones when both match.
type AgeBracket string

const (
	BracketAllAges AgeBracket = "전 연령"
	BracketUnder11 AgeBracket = "10세 이하"
	BracketTeen    AgeBracket = "11-19세"
	BracketUnder20 AgeBracket = "19세 이하"
	BracketAdult   AgeBracket = "20세 이상"
)

// ParseAgeBracket maps a heading qualifier to a bracket. The notes spell the
// teen bracket two ways and mark all-ages fragments three ways.
func ParseAgeBracket(label string) (AgeBracket, bool) {
	switch label {
	case "10세 이하":
		return BracketUnder11, true
	case "11-19세", "11세 이상 19세 이하":
		return BracketTeen, true
	case "19세 이하":
		return BracketUnder20, true
	case "20세 이상":
		return BracketAdult, true
	case "전 연령", "연령 무관", "일반", "기본":
		return BracketAllAges, true
	}
	return "", false
}

// Matches reports whether a subject of the given age falls in the bracket.
func (b AgeBracket) Matches(age int) bool {
	switch b {
	case BracketUnder11:
		return age <= 10
	case BracketTeen:
		return age >= 11 && age <= 19
	case BracketUnder20:
		return age <= 19
	case BracketAdult:
		return age >= 20
	case BracketAllAges, "":
		return true
	}
	return false
}

// Specificity orders brackets for tie-breaking: fine partition beats coarse,
// coarse beats all-ages.
func (b AgeBracket) Specificity() int {
	switch b {
	case BracketUnder11, BracketTeen:
		return 2
	case BracketUnder20, BracketAdult:
		return 1
	}
	return 0
}

// BracketFor returns the fine-partition age group label used in the
// classification section (10세 이하 / 11-19세 / 20세 이상).
func BracketFor(age int) AgeBracket {
	switch {
	case age <= 10:
		return BracketUnder11
	case age <= 19:
		return BracketTeen
	}
	return BracketAdult
}

// CoarseBracketFor returns the coarse-partition bracket (19세 이하 / 20세
// 이상) used by most note-2 and note-3 fragments.
func CoarseBracketFor(age int) AgeBracket {
	if age <= 19 {
		return BracketUnder20
	}
	return BracketAdult
}
