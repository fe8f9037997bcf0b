package engine

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

// FinisherSuite tests name substitution and the normalization pass.
type FinisherSuite struct {
	suite.Suite
}

func TestFinisherSuite(t *testing.T) {
	suite.Run(t, new(FinisherSuite))
}

func (s *FinisherSuite) TestNameSubstitution() {
	s.Equal("홍길동님의 검사 결과입니다.", Finish("[이름]님의 검사 결과입니다.", "홍길동"))
}

func (s *FinisherSuite) TestParticleAgreement() {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"object after final consonant", "홍길동를 위한 안내입니다.", "홍길동을 위한 안내입니다."},
		{"object after vowel", "이영희을 위한 안내입니다.", "이영희를 위한 안내입니다."},
		{"subject after final consonant", "납가 축적되었습니다.", "납이 축적되었습니다."},
		{"subject after vowel", "구리이 불균형 상태입니다.", "구리가 불균형 상태입니다."},
		{"topic marker", "박민수은 검사를 받았습니다.", "박민수는 검사를 받았습니다."},
		{"conjunction", "칼슘와 마그네슘, 아연까지 낮습니다.", "칼슘과 마그네슘, 아연까지 낮습니다."},
		{"correct particles untouched", "수은, 납이 축적되었습니다.", "수은, 납이 축적되었습니다."},
		{"particle shape inside word untouched", "결과에 따른 과일 섭취입니다.", "결과에 따른 과일 섭취입니다."},
		{"sentence final position", "개선가 요구됩니다.", "개선이 요구됩니다."},
	}
	for _, tc := range cases {
		s.Run(tc.name, func() {
			s.Equal(tc.want, Finish(tc.in, "이름"))
		})
	}
}

func (s *FinisherSuite) TestSlashParticlesResolved() {
	s.Equal("검사 결과를 확인하세요.", Finish("검사 결과을/를 확인하세요.", "이름"))
	s.Equal("홍길동은 재검사 대상입니다.", Finish("[이름]은/는 재검사 대상입니다.", "홍길동"))
	s.Equal("이영희는 재검사 대상입니다.", Finish("[이름]은/는 재검사 대상입니다.", "이영희"))
}

func (s *FinisherSuite) TestWhitespaceNormalization() {
	s.Equal("문장 사이 공백.", Finish("문장   사이  공백 .", "이름"))
	s.Equal("첫 단락.\n\n둘째 단락.", Finish("첫 단락.  \n\n\n\n둘째 단락.\n", "이름"))
}

func (s *FinisherSuite) TestIdempotent() {
	inputs := []string{
		"[이름]님의 모발검사결과, 유해 중금속은 수은, 납가 축적되었습니다.",
		"칼슘와 마그네슘이 동시에 높습니다.\n\n\n재검사가 필요합니다 .",
		"이영희을/를 위한 안내입니다.",
	}
	for _, in := range inputs {
		once := Finish(in, "박민수")
		s.Equal(once, Finish(once, "박민수"))
	}
}
