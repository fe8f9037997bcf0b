package corpus

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"hairnote/internal/report/models"
)

// HeadingSuite tests the condition-heading grammar in isolation.
type HeadingSuite struct {
	suite.Suite
}

func TestHeadingSuite(t *testing.T) {
	suite.Run(t, new(HeadingSuite))
}

func (s *HeadingSuite) TestMineralHeadings() {
	s.Run("shared status composite", func() {
		key, err := parseMineralHeading("칼슘과 마그네슘 높음 (복합조건)")
		s.Require().NoError(err)
		s.True(key.Composite)
		s.Equal([]Participant{
			{Key: "calcium", Status: models.StatusHigh},
			{Key: "magnesium", Status: models.StatusHigh},
		}, key.Participants)
		s.Equal(models.AgeBracket(""), key.Bracket)
	})

	s.Run("mixed status composite", func() {
		key, err := parseMineralHeading("마그네슘 낮음과 칼슘 높음 (복합조건)")
		s.Require().NoError(err)
		s.Equal([]Participant{
			{Key: "magnesium", Status: models.StatusLow},
			{Key: "calcium", Status: models.StatusHigh},
		}, key.Participants)
	})

	s.Run("plus separated pairs with bracket", func() {
		key, err := parseMineralHeading("아연 높음 + 구리 낮음 + 20세 이상 (복합조건)")
		s.Require().NoError(err)
		s.True(key.Composite)
		s.Equal(models.BracketAdult, key.Bracket)
		s.Equal([]Participant{
			{Key: "zinc", Status: models.StatusHigh},
			{Key: "copper", Status: models.StatusLow},
		}, key.Participants)
	})

	s.Run("individual with bracket", func() {
		key, err := parseMineralHeading("칼슘 높음 + 19세 이하")
		s.Require().NoError(err)
		s.False(key.Composite)
		s.Equal(models.BracketUnder20, key.Bracket)
	})

	s.Run("age agnostic marker", func() {
		key, err := parseMineralHeading("인 높음 (연령 무관)")
		s.Require().NoError(err)
		s.Equal(models.BracketAllAges, key.Bracket)
		s.Equal([]Participant{{Key: "phosphorus", Status: models.StatusHigh}}, key.Participants)
	})

	s.Run("two participants become composite even untagged", func() {
		key, err := parseMineralHeading("나트륨과 칼륨 낮음 + 20세 이상")
		s.Require().NoError(err)
		s.True(key.Composite)
	})

	s.Run("status without analyte rejected", func() {
		_, err := parseMineralHeading("높음 + 20세 이상")
		s.Error(err)
	})

	s.Run("analyte without status rejected", func() {
		_, err := parseMineralHeading("칼슘 + 20세 이상")
		s.Error(err)
	})

	s.Run("heavy metal in mineral note rejected", func() {
		_, err := parseMineralHeading("수은 높음")
		s.Error(err)
	})
}

func (s *HeadingSuite) TestHealthHeadings() {
	s.Run("plain with default qualifier", func() {
		key, err := parseHealthHeading("인슐린 민감도 - 높음 (기본)")
		s.Require().NoError(err)
		s.False(key.Composite)
		s.Equal(models.BracketAllAges, key.Bracket)
		s.Equal([]Participant{{Key: "insulin_sensitivity", Status: models.StatusHigh}}, key.Participants)
	})

	s.Run("bracket qualifier", func() {
		key, err := parseHealthHeading("스트레스 상태 - 높음 (19세 이하)")
		s.Require().NoError(err)
		s.Equal(models.BracketUnder20, key.Bracket)
	})

	s.Run("cross reading qualifier", func() {
		key, err := parseHealthHeading("부신 활성도 - 높음 (20세 이상 + 수은 높음)")
		s.Require().NoError(err)
		s.True(key.Composite)
		s.Equal(models.BracketAdult, key.Bracket)
		s.Equal([]Participant{
			{Key: "adrenal_activity", Status: models.StatusHigh},
			{Key: "mercury", Status: models.StatusHigh},
		}, key.Participants)
	})

	s.Run("multiword cross reading", func() {
		key, err := parseHealthHeading("부신 활성도 - 낮음 (일반 + 갑상선 활성도 높음)")
		s.Require().NoError(err)
		s.Equal([]Participant{
			{Key: "adrenal_activity", Status: models.StatusLow},
			{Key: "thyroid_activity", Status: models.StatusHigh},
		}, key.Participants)
	})

	s.Run("missing dash rejected", func() {
		_, err := parseHealthHeading("부신 활성도 높음")
		s.Error(err)
	})

	s.Run("normal status rejected", func() {
		_, err := parseHealthHeading("부신 활성도 - 정상 (일반)")
		s.Error(err)
	})
}

func (s *HeadingSuite) TestSignatureOrderInsensitive() {
	a, err := parseMineralHeading("칼슘과 마그네슘 높음 (복합조건)")
	s.Require().NoError(err)
	b, err := parseMineralHeading("마그네슘과 칼슘 높음 (복합조건)")
	s.Require().NoError(err)
	s.Equal(a.Signature(), b.Signature())
}

func (s *HeadingSuite) TestExtractBody() {
	s.Run("marker and blockquote stripped", func() {
		body := extractBody("**조건**: 어쩌고\n\n**최종 멘트:**\n> 첫 줄입니다.\n> 둘째 줄입니다.\n\n**⚠️ 주의**: 편집자 메모")
		s.Equal("첫 줄입니다.\n둘째 줄입니다.", body)
	})

	s.Run("inline marker", func() {
		body := extractBody("**조건**: 어쩌고\n**최종 멘트**: 한 줄 멘트입니다.\n\n**비고**: 메모")
		s.Equal("한 줄 멘트입니다.", body)
	})

	s.Run("whole body without marker", func() {
		body := extractBody("마커 없는 본문입니다.")
		s.Equal("마커 없는 본문입니다.", body)
	})
}
