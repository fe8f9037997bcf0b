package engine

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"hairnote/internal/report/models"
)

type ClassifierSuite struct {
	suite.Suite
}

func TestClassifierSuite(t *testing.T) {
	suite.Run(t, new(ClassifierSuite))
}

func (s *ClassifierSuite) TestPartitionsAndCounts() {
	n := models.StatusNormal
	in := &models.Input{
		PersonalInfo: models.Subject{Name: "홍길동", Age: 15, SpecialNotes: "없음"},
		HeavyMetals: models.HeavyMetalSet{
			Mercury: models.StatusHigh, Arsenic: n, Cadmium: n, Lead: models.StatusHigh,
			Aluminum: n, Barium: n, Nickel: n, Uranium: n, Bismuth: n,
		},
		Minerals: models.MineralSet{
			Calcium: models.StatusLow, Magnesium: n, Sodium: n, Potassium: n, Copper: n,
			Zinc: n, Phosphorus: n, Iron: n, Manganese: n, Chromium: n, Selenium: n,
		},
		HealthIndicators: models.IndicatorSet{
			InsulinSensitivity: n, AutonomicNervousSystem: n, StressState: models.StatusHigh,
			ImmuneSkinHealth: models.StatusLow, AdrenalActivity: n, ThyroidActivity: n,
		},
	}

	p := Classify(in)

	s.Equal("홍길동", p.Name)
	s.Equal(models.BracketTeen, p.AgeGroup)

	s.Equal([]string{"수은", "납"}, p.HeavyMetalsHigh)
	s.Equal(2, p.HeavyMetalsHighCount)
	s.Equal(7, p.HeavyMetalsNormalCount)

	s.Equal([]string{"칼슘"}, p.MineralsLow)
	s.Equal(10, p.MineralsNormalCount)
	s.Zero(p.MineralsHighCount)

	s.Equal([]string{"스트레스 상태"}, p.HealthHigh)
	s.Equal([]string{"면역 및 피부 건강"}, p.HealthLow)
	s.Equal(4, p.HealthNormalCount)
}
