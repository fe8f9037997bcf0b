package corpus_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"

	"hairnote/internal/report/corpus"
	"hairnote/internal/report/corpus/corpustest"
	"hairnote/internal/report/models"
)

// BuildSuite tests corpus construction and fragment resolution end to end
// against the fixture notes.
type BuildSuite struct {
	suite.Suite

	corpus *corpus.Corpus
}

func TestBuildSuite(t *testing.T) {
	suite.Run(t, new(BuildSuite))
}

func (s *BuildSuite) SetupTest() {
	c, err := corpus.Build(corpustest.Notes())
	s.Require().NoError(err)
	s.corpus = c
}

func (s *BuildSuite) TestAllNormalOpening() {
	frag, ok := s.corpus.AllNormalOpening()
	s.Require().True(ok)
	s.Contains(frag.Text, "[이름]님의 모발검사결과")
	s.NotContains(frag.Text, ">", "blockquote prefixes must be stripped")
}

func (s *BuildSuite) TestHeavyMetalBrackets() {
	mercury := []corpus.Participant{{Key: "mercury", Status: models.StatusHigh}}

	s.Run("adult text for age 30", func() {
		frag, ok := s.corpus.Resolve(models.TopicHeavyMetal, mercury, 30)
		s.Require().True(ok)
		s.Contains(frag.Text, "브로콜리")
	})

	s.Run("minor text for age 15", func() {
		frag, ok := s.corpus.Resolve(models.TopicHeavyMetal, mercury, 15)
		s.Require().True(ok)
		s.Contains(frag.Text, "성장기")
	})

	s.Run("authoring gap reported", func() {
		_, ok := s.corpus.Resolve(models.TopicHeavyMetal,
			[]corpus.Participant{{Key: "uranium", Status: models.StatusHigh}}, 30)
		s.False(ok)
	})
}

func (s *BuildSuite) TestMineralResolution() {
	s.Run("unbracketed composite matches any age", func() {
		parts := []corpus.Participant{
			{Key: "calcium", Status: models.StatusHigh},
			{Key: "magnesium", Status: models.StatusHigh},
		}
		frag, ok := s.corpus.Resolve(models.TopicMineral, parts, 8)
		s.Require().True(ok)
		s.Contains(frag.Text, "동시에 높게")
		s.NotContains(frag.Text, "⚠️", "authoring sidebar must not leak into the fragment")
	})

	s.Run("bracketed composite picks the matching bracket", func() {
		parts := []corpus.Participant{
			{Key: "sodium", Status: models.StatusHigh},
			{Key: "potassium", Status: models.StatusHigh},
		}
		teen, ok := s.corpus.Resolve(models.TopicMineral, parts, 15)
		s.Require().True(ok)
		s.Contains(teen.Text, "성장기")

		adult, ok := s.corpus.Resolve(models.TopicMineral, parts, 45)
		s.Require().True(ok)
		s.Contains(adult.Text, "부신 기능 항진")
	})

	s.Run("fine bracket beats coarse", func() {
		parts := []corpus.Participant{{Key: "sodium", Status: models.StatusHigh}}
		frag, ok := s.corpus.Resolve(models.TopicMineral, parts, 8)
		s.Require().True(ok)
		s.Contains(frag.Text, "크게 걱정하지 않으셔도")
	})

	s.Run("participant order does not matter", func() {
		parts := []corpus.Participant{
			{Key: "magnesium", Status: models.StatusHigh},
			{Key: "calcium", Status: models.StatusHigh},
		}
		_, ok := s.corpus.Resolve(models.TopicMineral, parts, 30)
		s.True(ok)
	})
}

func (s *BuildSuite) TestHealthResolution() {
	s.Run("qualified composite", func() {
		parts := []corpus.Participant{
			{Key: "adrenal_activity", Status: models.StatusHigh},
			{Key: "mercury", Status: models.StatusHigh},
		}
		frag, ok := s.corpus.Resolve(models.TopicHealthIndicator, parts, 25)
		s.Require().True(ok)
		s.Contains(frag.Text, "중금속 부담")
	})

	s.Run("general fallback", func() {
		parts := []corpus.Participant{{Key: "adrenal_activity", Status: models.StatusHigh}}
		frag, ok := s.corpus.Resolve(models.TopicHealthIndicator, parts, 25)
		s.Require().True(ok)
		s.Contains(frag.Text, "카페인")
	})
}

func (s *BuildSuite) TestDisclaimer() {
	frag := s.corpus.Disclaimer()
	s.True(frag.Key.Override)
	s.Contains(frag.Text, "[원소]")
	s.Contains(frag.Text, "펌이나 염색")
}

func (s *BuildSuite) TestBuildErrors() {
	s.Run("missing note", func() {
		notes := corpustest.Notes()
		delete(notes, corpus.NoteMinerals)
		_, err := corpus.Build(notes)
		s.Require().Error(err)
		s.Contains(err.Error(), "note3")
	})

	s.Run("section without fragment text", func() {
		notes := corpustest.Notes()
		notes[corpus.NoteMinerals] += "\n### 철 높음 + 20세 이상\n\n본문에 마커가 없습니다.\n**최종 멘트:**\n"
		_, err := corpus.Build(notes)
		s.Error(err)
	})

	s.Run("unknown analyte in heading", func() {
		notes := corpustest.Notes()
		notes[corpus.NoteMinerals] += "\n### 리튬 높음 + 20세 이상\n\n**최종 멘트:**\n> 본문\n"
		_, err := corpus.Build(notes)
		s.Error(err)
	})

	s.Run("ambiguous composite pair", func() {
		notes := corpustest.Notes()
		notes[corpus.NoteMinerals] += "\n### 마그네슘과 칼슘 높음 (복합조건)\n\n**최종 멘트:**\n> 중복 본문\n"
		_, err := corpus.Build(notes)
		s.Require().Error(err)

		var ambErr *corpus.AmbiguityError
		s.ErrorAs(err, &ambErr)
	})
}

func (s *BuildSuite) TestFragmentsKeepAuthoredOrder() {
	frags := s.corpus.AllFragments(models.TopicMineral)
	s.Require().NotEmpty(frags)
	s.True(frags[0].Key.Composite, "composites are authored before individual sections")

	var sawText bool
	for _, f := range frags {
		if strings.Contains(f.Text, "[이름]") {
			sawText = true
		}
	}
	s.True(sawText)
}
