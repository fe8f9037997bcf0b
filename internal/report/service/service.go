package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"hairnote/internal/report/metrics"
	"hairnote/internal/report/models"
	"hairnote/pkg/requestcontext"
)

// Composer turns a validated input into the seven-stage report.
type Composer interface {
	Compose(in *models.Input) models.Report
	NoteCount() int
}

// Service orchestrates analysis requests: validation, composition, and the
// flat rendering for text-block clients.
type Service struct {
	composer Composer
	logger   *slog.Logger
	metrics  *metrics.Metrics
}

type Option func(s *Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

// New constructs a Service.
func New(composer Composer, opts ...Option) *Service {
	s := &Service{composer: composer, logger: slog.Default()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Analyze validates the input and composes the full structured report.
func (s *Service) Analyze(ctx context.Context, in *models.Input) (models.Report, error) {
	start := time.Now()

	in.Normalize()
	if err := in.Validate(); err != nil {
		s.metrics.ObserveFailure("validation_failed")
		s.logger.WarnContext(ctx, "analysis input rejected",
			"request_id", requestcontext.RequestID(ctx),
			"error", err,
		)
		return models.Report{}, err
	}

	report := s.composer.Compose(in)
	s.metrics.ObserveCompose(time.Since(start), report.Synopsis.CharacterCount)

	s.logger.InfoContext(ctx, "report composed",
		"request_id", requestcontext.RequestID(ctx),
		"age_group", report.Personal.AgeGroup,
		"metals_high", report.Personal.HeavyMetalsHighCount,
		"minerals_abnormal", report.Personal.MineralsHighCount+report.Personal.MineralsLowCount,
		"health_abnormal", report.Personal.HealthHighCount+report.Personal.HealthLowCount,
		"synopsis_chars", report.Synopsis.CharacterCount,
		"duration_ms", time.Since(start).Milliseconds(),
	)

	return report, nil
}

// AnalyzeFlat composes the same report and renders it as pre-joined text
// blocks. No stage is re-resolved; the flat form is derived from the
// structured result.
func (s *Service) AnalyzeFlat(ctx context.Context, in *models.Input) (models.FlatReport, error) {
	report, err := s.Analyze(ctx, in)
	if err != nil {
		return models.FlatReport{}, err
	}
	return Flatten(report), nil
}

// NoteCount reports how many notes back the corpus.
func (s *Service) NoteCount() int {
	return s.composer.NoteCount()
}

// TestData returns a ready-to-post sample input for manual testing.
func (s *Service) TestData() *models.Input {
	return &models.Input{
		PersonalInfo: models.Subject{Name: "홍길동", Age: 30, SpecialNotes: "없음"},
		HeavyMetals: models.HeavyMetalSet{
			Mercury:  models.StatusNormal,
			Arsenic:  models.StatusNormal,
			Cadmium:  models.StatusNormal,
			Lead:     models.StatusHigh,
			Aluminum: models.StatusNormal,
			Barium:   models.StatusNormal,
			Nickel:   models.StatusNormal,
			Uranium:  models.StatusNormal,
			Bismuth:  models.StatusNormal,
		},
		Minerals: models.MineralSet{
			Calcium:    models.StatusNormal,
			Magnesium:  models.StatusLow,
			Sodium:     models.StatusHigh,
			Potassium:  models.StatusHigh,
			Copper:     models.StatusNormal,
			Zinc:       models.StatusNormal,
			Phosphorus: models.StatusNormal,
			Iron:       models.StatusNormal,
			Manganese:  models.StatusNormal,
			Chromium:   models.StatusNormal,
			Selenium:   models.StatusNormal,
		},
		HealthIndicators: models.IndicatorSet{
			InsulinSensitivity:     models.StatusNormal,
			AutonomicNervousSystem: models.StatusLow,
			StressState:            models.StatusHigh,
			ImmuneSkinHealth:       models.StatusNormal,
			AdrenalActivity:        models.StatusHigh,
			ThyroidActivity:        models.StatusLow,
		},
	}
}

// Flatten renders a structured report as the five flat text blocks.
func Flatten(r models.Report) models.FlatReport {
	return models.FlatReport{
		PersonalSection: flattenPersonal(r.Personal),
		SummarySection:  flattenSummary(r.Summary),
		Comprehensive:   flattenNarrative(r.Narrative),
		Statistics:      flattenStatistics(r.Statistics),
		Synopsis:        fmt.Sprintf("%s\n\n(글자수: %d자)", r.Synopsis.Content, r.Synopsis.CharacterCount),
	}
}

func flattenPersonal(p models.PersonalSection) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s님 맞춤 건강 상담\n\n", p.Name)
	fmt.Fprintf(&b, "안녕하세요. 큐모발검사 영양전문가입니다. %s님의 사전 설문 내용과 모발 검사 결과를 참고하여 맞춤 영양상담지를 작성하였으니, 꼼꼼히 읽어보시길 바랍니다. 더 건강해질 %s님을 응원합니다!\n\n", p.Name, p.Name)

	fmt.Fprintf(&b, "[유해 중금속 검사 결과]\n")
	fmt.Fprintf(&b, "• 정상 수치 (%d개): %s\n", p.HeavyMetalsNormalCount, strings.Join(p.HeavyMetalsNormal, ", "))
	fmt.Fprintf(&b, "• 높은 수치 (%d개): %s\n\n", p.HeavyMetalsHighCount, strings.Join(p.HeavyMetalsHigh, ", "))

	fmt.Fprintf(&b, "[영양 미네랄 검사 결과]\n")
	fmt.Fprintf(&b, "• 정상 수치 (%d개): %s\n", p.MineralsNormalCount, strings.Join(p.MineralsNormal, ", "))
	fmt.Fprintf(&b, "• 높은 수치 (%d개): %s\n", p.MineralsHighCount, strings.Join(p.MineralsHigh, ", "))
	fmt.Fprintf(&b, "• 낮은 수치 (%d개): %s\n\n", p.MineralsLowCount, strings.Join(p.MineralsLow, ", "))

	fmt.Fprintf(&b, "[건강 상태 지표 검사 결과]\n")
	fmt.Fprintf(&b, "• 정상 수치 (%d개): %s\n", p.HealthNormalCount, strings.Join(p.HealthNormal, ", "))
	fmt.Fprintf(&b, "• 높은 수치 (%d개): %s\n", p.HealthHighCount, strings.Join(p.HealthHigh, ", "))
	fmt.Fprintf(&b, "• 낮은 수치 (%d개): %s", p.HealthLowCount, strings.Join(p.HealthLow, ", "))
	return b.String()
}

func flattenSummary(s models.Summary) string {
	var b strings.Builder
	fmt.Fprintf(&b, "[%s]\n\n", s.Title)

	fmt.Fprintf(&b, "[추천 식품]\n")
	for _, food := range s.RecommendedFoods {
		fmt.Fprintf(&b, "• %s\n", food)
	}

	fmt.Fprintf(&b, "\n[추천 영양제]\n%s\n\n", s.Supplement)
	fmt.Fprintf(&b, "[재검사 기간]\n%s", s.ReexamGuidance)
	return b.String()
}

func flattenNarrative(n models.Narrative) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n\n", n.Opening)
	fmt.Fprintf(&b, "[유해 중금속 분석]\n%s\n\n", n.HeavyMetals)
	fmt.Fprintf(&b, "[영양 미네랄 분석]\n%s\n\n", n.Minerals)
	fmt.Fprintf(&b, "[건강 상태 지표 분석]\n%s", n.Health)
	return b.String()
}

func flattenStatistics(st models.Statistics) string {
	var b strings.Builder
	fmt.Fprintf(&b, "[종합멘트 통계 정보]\n")
	fmt.Fprintf(&b, "• 총 글자수: %d자\n", st.TotalCharacters)
	fmt.Fprintf(&b, "• 총 단어수: %d개\n", st.TotalWords)
	fmt.Fprintf(&b, "• 단락 수: %d개\n", st.ParagraphCount)
	fmt.Fprintf(&b, "• 평균 단락 길이: %d자\n\n", st.AverageParagraphLength)

	fmt.Fprintf(&b, "[섹션별 비율]\n")
	fmt.Fprintf(&b, "• 첫 번째 단락: %.1f%%\n", st.OpeningRatio)
	fmt.Fprintf(&b, "• 중금속 분석: %.1f%%\n", st.HeavyMetalsRatio)
	fmt.Fprintf(&b, "• 영양 미네랄 분석: %.1f%%\n", st.MineralsRatio)
	fmt.Fprintf(&b, "• 건강 지표 분석: %.1f%%", st.HealthRatio)
	return b.String()
}
