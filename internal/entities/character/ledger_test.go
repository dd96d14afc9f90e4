package character_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/aldenmoor/levelforge/internal/entities/character"
)

type LedgerTestSuite struct {
	suite.Suite
	ledger *character.Ledger
}

func (s *LedgerTestSuite) SetupTest() {
	s.ledger = character.NewLedger(5)
}

func (s *LedgerTestSuite) TestInitialState() {
	for _, stat := range character.Stats() {
		s.Equal(5, s.ledger.Current(stat))
		s.Equal(5, s.ledger.SourceAmount(stat, character.SourceBase))
	}
}

func (s *LedgerTestSuite) TestAdditivity() {
	s.Require().NoError(s.ledger.AddContribution(character.StatStrength, 3, character.SourceClass))
	s.Require().NoError(s.ledger.AddContribution(character.StatStrength, 2, character.SourceClass))
	s.Require().NoError(s.ledger.AddContribution(character.StatStrength, 4, character.SourceRace))
	s.Require().NoError(s.ledger.AddContribution(character.StatStrength, 1, character.SourceFreePoints))

	breakdown := s.ledger.SourceBreakdown(character.StatStrength)
	total := 0
	for _, amt := range breakdown {
		total += amt
	}
	s.Equal(total, s.ledger.Current(character.StatStrength))
	s.Equal(5+3+2+4+1, s.ledger.Current(character.StatStrength))
	s.Equal(5, s.ledger.SourceAmount(character.StatStrength, character.SourceClass))
}

func (s *LedgerTestSuite) TestNegativeContributionFullyReverses() {
	s.Require().NoError(s.ledger.AddContribution(character.StatWisdom, 10, character.SourceItem))
	s.Equal(15, s.ledger.Current(character.StatWisdom))

	s.Require().NoError(s.ledger.AddContribution(character.StatWisdom, -10, character.SourceItem))
	s.Equal(5, s.ledger.Current(character.StatWisdom))
	s.Equal(0, s.ledger.SourceAmount(character.StatWisdom, character.SourceItem))
}

func (s *LedgerTestSuite) TestNewLedgerFromBase() {
	ledger := character.NewLedgerFromBase(map[character.Stat]int{
		character.StatVitality: 20,
		character.StatStrength: 12,
	})

	s.Equal(20, ledger.Current(character.StatVitality))
	s.Equal(12, ledger.Current(character.StatStrength))
	s.Equal(0, ledger.Current(character.StatWisdom))
	s.Equal(20, ledger.SourceAmount(character.StatVitality, character.SourceBase))
}

func (s *LedgerTestSuite) TestSetBaseReplaces() {
	s.Require().NoError(s.ledger.SetBase(character.StatVitality, 20))
	s.Equal(20, s.ledger.Current(character.StatVitality))

	s.Require().NoError(s.ledger.SetBase(character.StatVitality, 8))
	s.Equal(8, s.ledger.Current(character.StatVitality))
}

func (s *LedgerTestSuite) TestInvalidStatRejected() {
	err := s.ledger.AddContribution(character.Stat("luck"), 1, character.SourceBase)
	s.Error(err)

	err = s.ledger.SetBase(character.Stat("luck"), 1)
	s.Error(err)
}

func (s *LedgerTestSuite) TestResetSource() {
	s.Require().NoError(s.ledger.AddContribution(character.StatStrength, 7, character.SourceRace))
	s.Require().NoError(s.ledger.AddContribution(character.StatDexterity, 3, character.SourceRace))

	s.ledger.ResetSource(character.SourceRace)

	s.Equal(5, s.ledger.Current(character.StatStrength))
	s.Equal(5, s.ledger.Current(character.StatDexterity))
	s.Equal(0, s.ledger.SourceAmount(character.StatStrength, character.SourceRace))
}

func (s *LedgerTestSuite) TestBreakdownIsACopy() {
	breakdown := s.ledger.SourceBreakdown(character.StatStrength)
	breakdown[character.SourceBase] = 999
	s.Equal(5, s.ledger.Current(character.StatStrength))
}

func (s *LedgerTestSuite) TestModifierTracksCurrent() {
	s.Equal(character.ModifierFor(5), s.ledger.Modifier(character.StatStrength))

	s.Require().NoError(s.ledger.AddContribution(character.StatStrength, 495, character.SourceFreePoints))
	s.Equal(character.ModifierFor(500), s.ledger.Modifier(character.StatStrength))
}

func TestLedgerSuite(t *testing.T) {
	suite.Run(t, new(LedgerTestSuite))
}

func TestModifierFor(t *testing.T) {
	tests := []struct {
		name  string
		value int
		want  int
	}{
		{"zero", 0, 0},
		{"default base", 5, 7},
		{"midpoint", 500, 735},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := character.ModifierFor(tt.value); got != tt.want {
				t.Errorf("ModifierFor(%d) = %d, want %d", tt.value, got, tt.want)
			}
		})
	}
}

func TestModifierMonotonic(t *testing.T) {
	prev := character.ModifierFor(0)
	for v := 1; v <= 2000; v++ {
		cur := character.ModifierFor(v)
		if cur < prev {
			t.Fatalf("modifier decreased at value %d: %d -> %d", v, prev, cur)
		}
		prev = cur
	}
}

func TestModifierDeterministic(t *testing.T) {
	for _, v := range []int{0, 5, 137, 500, 999, 5000} {
		if character.ModifierFor(v) != character.ModifierFor(v) {
			t.Fatalf("modifier not deterministic for value %d", v)
		}
	}
}
