package engine

import (
	"regexp"
	"strings"
)

// Finish prepares a composed text block for the client: name substitution,
// particle agreement, and whitespace normalization. Finishing is idempotent;
// re-finishing a finished block returns it unchanged.
func Finish(text, name string) string {
	text = strings.ReplaceAll(text, "[이름]", name)
	text = resolveSlashParticles(text)
	text = fixParticles(text)
	text = normalizeWhitespace(text)
	return strings.TrimSpace(text)
}

// particlePairs lists the postposition alternatives as (after final
// consonant, after vowel).
var particlePairs = [][2]rune{
	{'을', '를'},
	{'이', '가'},
	{'은', '는'},
	{'과', '와'},
}

func particlePair(r rune) ([2]rune, bool) {
	for _, p := range particlePairs {
		if r == p[0] || r == p[1] {
			return p, true
		}
	}
	return [2]rune{}, false
}

// hasFinalConsonant reports whether a Hangul syllable block carries a
// jongseong. Syllables are laid out in blocks of 28 per vowel; offset 0 is
// the bare vowel form.
func hasFinalConsonant(r rune) bool {
	return (r-0xAC00)%28 != 0
}

func isHangulSyllable(r rune) bool {
	return r >= 0xAC00 && r <= 0xD7A3
}

func isWordEnd(r rune) bool {
	switch r {
	case ' ', '\t', '\n', ',', '.', '!', '?', ')', '"', '\'':
		return true
	}
	return false
}

// fixParticles rewrites a word-final postposition to agree with the syllable
// before it. Only the preceding syllable decides, so the rewrite is stable
// under reapplication. Nouns that happen to end in a particle shape are
// indistinguishable without morphology and are left to the note authors.
func fixParticles(text string) string {
	runes := []rune(text)
	for i := 1; i < len(runes); i++ {
		pair, ok := particlePair(runes[i])
		if !ok {
			continue
		}
		if i+1 < len(runes) && !isWordEnd(runes[i+1]) {
			continue
		}
		prev := runes[i-1]
		if !isHangulSyllable(prev) {
			continue
		}
		if hasFinalConsonant(prev) {
			runes[i] = pair[0]
		} else {
			runes[i] = pair[1]
		}
	}
	return string(runes)
}

// resolveSlashParticles collapses authored alternatives like 을/를 to the
// side matching the preceding syllable.
func resolveSlashParticles(text string) string {
	runes := []rune(text)
	var out []rune
	for i := 0; i < len(runes); i++ {
		if i+2 < len(runes) && runes[i+1] == '/' {
			if pair, ok := particlePair(runes[i]); ok && (runes[i+2] == pair[0] || runes[i+2] == pair[1]) {
				chosen := pair[1]
				if len(out) > 0 && isHangulSyllable(out[len(out)-1]) && hasFinalConsonant(out[len(out)-1]) {
					chosen = pair[0]
				}
				out = append(out, chosen)
				i += 2
				continue
			}
		}
		out = append(out, runes[i])
	}
	return string(out)
}

var (
	spaceRuns       = regexp.MustCompile(`[ \t]{2,}`)
	spaceBeforeStop = regexp.MustCompile(` +([,.!?])`)
	blankLineRuns   = regexp.MustCompile(`\n{3,}`)
	trailingSpaces  = regexp.MustCompile(`[ \t]+\n`)
)

func normalizeWhitespace(text string) string {
	text = spaceRuns.ReplaceAllString(text, " ")
	text = spaceBeforeStop.ReplaceAllString(text, "$1")
	text = trailingSpaces.ReplaceAllString(text, "\n")
	text = blankLineRuns.ReplaceAllString(text, "\n\n")
	return text
}
