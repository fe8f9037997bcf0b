package service_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/suite"

	"hairnote/internal/report/models"
	"hairnote/internal/report/service"
	dErrors "hairnote/pkg/domain-errors"
)

type stubComposer struct {
	calls int
	last  models.Input
	out   models.Report
}

func (c *stubComposer) Compose(in *models.Input) models.Report {
	c.calls++
	c.last = *in
	return c.out
}

func (c *stubComposer) NoteCount() int { return 5 }

type ServiceSuite struct {
	suite.Suite
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) logger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func (s *ServiceSuite) validInput() *models.Input {
	svc := service.New(&stubComposer{}, service.WithLogger(s.logger()))
	return svc.TestData()
}

func (s *ServiceSuite) TestAnalyzeComposesValidInput() {
	composer := &stubComposer{out: models.Report{
		Personal: models.PersonalSection{Name: "홍길동"},
		Synopsis: models.Synopsis{Content: "요약", CharacterCount: 2},
	}}
	svc := service.New(composer, service.WithLogger(s.logger()))

	report, err := svc.Analyze(context.Background(), s.validInput())

	s.Require().NoError(err)
	s.Equal(1, composer.calls)
	s.Equal("홍길동", report.Personal.Name)
}

func (s *ServiceSuite) TestAnalyzeNormalizesBeforeComposing() {
	composer := &stubComposer{}
	svc := service.New(composer, service.WithLogger(s.logger()))

	in := s.validInput()
	in.PersonalInfo.Name = "  김영희  "
	in.PersonalInfo.SpecialNotes = "   "

	_, err := svc.Analyze(context.Background(), in)

	s.Require().NoError(err)
	s.Equal("김영희", composer.last.PersonalInfo.Name)
	s.Equal("없음", composer.last.PersonalInfo.SpecialNotes)
}

func (s *ServiceSuite) TestAnalyzeRejectsInvalidInput() {
	composer := &stubComposer{}
	svc := service.New(composer, service.WithLogger(s.logger()))

	in := s.validInput()
	in.PersonalInfo.Age = 0

	_, err := svc.Analyze(context.Background(), in)

	s.Require().Error(err)
	s.True(dErrors.HasCode(err, dErrors.CodeValidation))
	s.Zero(composer.calls, "composer must not run on invalid input")
}

func (s *ServiceSuite) TestTestDataPassesValidation() {
	svc := service.New(&stubComposer{}, service.WithLogger(s.logger()))

	in := svc.TestData()
	in.Normalize()
	s.NoError(in.Validate())
	s.Equal("홍길동", in.PersonalInfo.Name)
	s.Equal(models.StatusHigh, in.HeavyMetals.Lead)
}

func (s *ServiceSuite) TestAnalyzeFlatRendersBlocks() {
	composer := &stubComposer{out: models.Report{
		Personal: models.PersonalSection{
			Name:                   "홍길동",
			HeavyMetalsNormal:      []string{"수은", "비소"},
			HeavyMetalsHigh:        []string{"납"},
			HeavyMetalsNormalCount: 2,
			HeavyMetalsHighCount:   1,
		},
		Narrative: models.Narrative{
			Opening:     "첫 단락입니다.",
			HeavyMetals: "납 멘트.",
		},
		Summary: models.Summary{
			Title:            "관리 제목",
			RecommendedFoods: []string{"달걀", "채소", "견과류", "생선", "곡류"},
			Supplement:       "항산화 영양제를 추천 드립니다.",
			ReexamGuidance:   "약 3개월 후 재검사를 권장합니다.",
		},
		Statistics: models.Statistics{TotalCharacters: 20, TotalWords: 5, ParagraphCount: 2, AverageParagraphLength: 10, OpeningRatio: 40.0},
		Synopsis:   models.Synopsis{Content: "압축 멘트", CharacterCount: 5},
	}}
	svc := service.New(composer, service.WithLogger(s.logger()))

	flat, err := svc.AnalyzeFlat(context.Background(), s.validInput())
	s.Require().NoError(err)

	s.Run("personal block", func() {
		s.Contains(flat.PersonalSection, "홍길동님 맞춤 건강 상담")
		s.Contains(flat.PersonalSection, "• 정상 수치 (2개): 수은, 비소")
		s.Contains(flat.PersonalSection, "• 높은 수치 (1개): 납")
	})

	s.Run("summary block", func() {
		s.Contains(flat.SummarySection, "[관리 제목]")
		s.Contains(flat.SummarySection, "• 달걀")
		s.Contains(flat.SummarySection, "[재검사 기간]\n약 3개월 후 재검사를 권장합니다.")
	})

	s.Run("narrative block", func() {
		s.Contains(flat.Comprehensive, "첫 단락입니다.")
		s.Contains(flat.Comprehensive, "[유해 중금속 분석]\n납 멘트.")
	})

	s.Run("statistics block", func() {
		s.Contains(flat.Statistics, "• 총 글자수: 20자")
		s.Contains(flat.Statistics, "• 첫 번째 단락: 40.0%")
	})

	s.Run("synopsis block", func() {
		s.Equal("압축 멘트\n\n(글자수: 5자)", flat.Synopsis)
	})
}
