// Package corpus holds the parsed, process-wide read-only view of the
// authored note files. Section headings are parsed once at load time into
// typed condition keys; request-time resolution never touches raw markdown.
package corpus

import (
	"fmt"
	"sort"
	"strings"

	"hairnote/internal/report/models"
)

// NoteID identifies one of the five authored notes.
type NoteID string

const (
	NoteOpening     NoteID = "note1"
	NoteHeavyMetals NoteID = "note2"
	NoteMinerals    NoteID = "note3"
	NoteHealth      NoteID = "note4"
	NoteSummary     NoteID = "note5"
)

// AllNotes lists every note the loader must supply, in order.
var AllNotes = []NoteID{NoteOpening, NoteHeavyMetals, NoteMinerals, NoteHealth, NoteSummary}

// Filename returns the conventional local filename for a note.
func (n NoteID) Filename() string {
	switch n {
	case NoteOpening:
		return "note1_basic.md"
	case NoteHeavyMetals:
		return "note2_heavy_metals.md"
	case NoteMinerals:
		return "note3_minerals.md"
	case NoteHealth:
		return "note4_health_indicators.md"
	case NoteSummary:
		return "note5_summary.md"
	}
	return string(n) + ".md"
}

// Participant is one (analyte, status) pair of a condition.
type Participant struct {
	Key    string
	Status models.Status
}

// ConditionKey identifies the authored condition a fragment answers.
// Participants keep authored order; Signature gives order-insensitive
// equality for matching.
type ConditionKey struct {
	Topic        models.Topic
	Participants []Participant
	Bracket      models.AgeBracket
	Composite    bool
	Override     bool
}

// Signature is the canonical participant-set form used for lookups.
func (k ConditionKey) Signature() string {
	parts := make([]string, len(k.Participants))
	for i, p := range k.Participants {
		parts[i] = p.Key + "=" + string(p.Status)
	}
	sort.Strings(parts)
	return strings.Join(parts, "+")
}

func (k ConditionKey) String() string {
	s := k.Signature()
	if k.Bracket != "" {
		s += "@" + string(k.Bracket)
	}
	if k.Override {
		s += "!override"
	}
	return s
}

// Fragment is one authored narrative block tied to a condition.
type Fragment struct {
	Key  ConditionKey
	Text string
}

// Empty reports whether the fragment carries no usable text.
func (f Fragment) Empty() bool { return strings.TrimSpace(f.Text) == "" }

// Corpus is immutable after Build; concurrent readers need no locking.
type Corpus struct {
	byTopic       map[models.Topic][]Fragment
	allNormalOpen Fragment
	hasNormalOpen bool
	disclaimer    Fragment
	loadedNotes   int
}

// AmbiguityError marks two equally specific composite fragments competing
// for the same participants; the corpus is refused at load time.
type AmbiguityError struct {
	A, B ConditionKey
}

func (e *AmbiguityError) Error() string {
	return fmt.Sprintf("ambiguous composite fragments: %s vs %s", e.A, e.B)
}

// AllFragments returns the topic's fragments in authored order.
func (c *Corpus) AllFragments(topic models.Topic) []Fragment {
	return c.byTopic[topic]
}

// AllNormalOpening returns the catch-all fragment used when every reading in
// the request is Normal.
func (c *Corpus) AllNormalOpening() (Fragment, bool) {
	return c.allNormalOpen, c.hasNormalOpen
}

// Disclaimer returns the treatment-override disclaimer fragment with its
// element-list placeholder intact.
func (c *Corpus) Disclaimer() Fragment { return c.disclaimer }

// NoteCount reports how many notes were present at build time.
func (c *Corpus) NoteCount() int { return c.loadedNotes }

// Resolve finds the best fragment for a participant set and subject age:
// among bracket-matching fragments the most specific bracket wins, with
// authored order breaking ties. The boolean is false on an authoring gap.
func (c *Corpus) Resolve(topic models.Topic, participants []Participant, age int) (Fragment, bool) {
	want := ConditionKey{Participants: participants}.Signature()
	best := Fragment{}
	bestSpec := -1
	for _, f := range c.byTopic[topic] {
		if f.Key.Override || f.Key.Signature() != want {
			continue
		}
		if !f.Key.Bracket.Matches(age) {
			continue
		}
		if spec := f.Key.Bracket.Specificity(); spec > bestSpec {
			best, bestSpec = f, spec
		}
	}
	return best, bestSpec >= 0
}

// Lookup finds a fragment by exact condition key.
func (c *Corpus) Lookup(topic models.Topic, key ConditionKey) (Fragment, bool) {
	for _, f := range c.byTopic[topic] {
		if f.Key.Signature() == key.Signature() && f.Key.Bracket == key.Bracket && f.Key.Override == key.Override {
			return f, true
		}
	}
	return Fragment{}, false
}

// validate rejects corpora where two equally specific composite fragments
// could both claim the same participants for the same subject.
func (c *Corpus) validate() error {
	for _, topic := range []models.Topic{models.TopicHeavyMetal, models.TopicMineral, models.TopicHealthIndicator} {
		frags := c.byTopic[topic]
		for i := 0; i < len(frags); i++ {
			if !frags[i].Key.Composite {
				continue
			}
			for j := i + 1; j < len(frags); j++ {
				if !frags[j].Key.Composite {
					continue
				}
				a, b := frags[i].Key, frags[j].Key
				if a.Signature() != b.Signature() {
					continue
				}
				if a.Bracket == b.Bracket || (a.Bracket.Specificity() == b.Bracket.Specificity() && bracketsOverlap(a.Bracket, b.Bracket)) {
					return &AmbiguityError{A: a, B: b}
				}
			}
		}
	}
	return nil
}

// bracketsOverlap reports whether two brackets can both match some age.
// Within each partition distinct brackets are disjoint, so only identical or
// cross-partition brackets can collide; equal-specificity distinct brackets
// never overlap except the empty/all-ages pair.
func bracketsOverlap(a, b models.AgeBracket) bool {
	if a == b {
		return true
	}
	for age := 1; age <= 120; age++ {
		if a.Matches(age) && b.Matches(age) {
			return true
		}
	}
	return false
}
