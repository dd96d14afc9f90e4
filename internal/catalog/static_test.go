package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aldenmoor/levelforge/internal/catalog"
	"github.com/aldenmoor/levelforge/internal/entities/character"
)

func TestStaticLookups(t *testing.T) {
	s := catalog.New().
		AddClass("Warrior", 1, catalog.Gains{
			Stats:      map[character.Stat]int{character.StatStrength: 2},
			FreePoints: 1,
		}).
		AddRaceBand("Human", catalog.RaceBand{
			MinLevel: 1, MaxLevel: 9, Rank: "G",
			Gains: catalog.Gains{FreePoints: 2},
		})

	t.Run("case insensitive names", func(t *testing.T) {
		gains, ok := s.ClassGains("warrior", 1)
		require.True(t, ok)
		assert.Equal(t, 2, gains.Stats[character.StatStrength])

		gains, ok = s.ClassGains("WARRIOR", 1)
		require.True(t, ok)
		assert.Equal(t, 1, gains.FreePoints)

		assert.True(t, s.HasRace("hUmAn"))
	})

	t.Run("missing entries return not ok", func(t *testing.T) {
		_, ok := s.ClassGains("warrior", 3)
		assert.False(t, ok)

		_, ok = s.ClassGains("necromancer", 1)
		assert.False(t, ok)

		_, ok = s.RaceGains("human", 10)
		assert.False(t, ok)

		_, ok = s.ProfessionGains("blacksmith", 1)
		assert.False(t, ok)
	})

	t.Run("availability follows registered tiers", func(t *testing.T) {
		assert.True(t, s.IsClassAvailable("warrior", 1))
		assert.False(t, s.IsClassAvailable("warrior", 2))
		assert.False(t, s.IsProfessionAvailable("blacksmith", 1))
	})

	t.Run("race bands carry ranks", func(t *testing.T) {
		rank, ok := s.RaceRank("human", 5)
		require.True(t, ok)
		assert.Equal(t, "G", rank)

		_, ok = s.RaceRank("human", 99)
		assert.False(t, ok)
	})

	t.Run("returned gains are copies", func(t *testing.T) {
		gains, ok := s.ClassGains("warrior", 1)
		require.True(t, ok)
		gains.Stats[character.StatStrength] = 99

		again, _ := s.ClassGains("warrior", 1)
		assert.Equal(t, 2, again.Stats[character.StatStrength])
	})
}

func TestDefaultContent(t *testing.T) {
	s := catalog.Default()

	for _, name := range []string{"warrior", "mage", "archer"} {
		assert.True(t, s.IsClassAvailable(name, 1), "class %s at tier 1", name)
	}
	for _, name := range []string{"blacksmith", "alchemist", "scout"} {
		assert.True(t, s.IsProfessionAvailable(name, 1), "profession %s at tier 1", name)
	}
	for _, name := range []string{"human", "elf", "dwarf", "fire drake", "shade wolf"} {
		assert.True(t, s.HasRace(name), "race %s", name)
	}

	// berserker is a tier 2 upgrade only
	assert.False(t, s.IsClassAvailable("berserker", 1))
	assert.True(t, s.IsClassAvailable("berserker", 2))

	rank, ok := s.RaceRank("human", 10)
	require.True(t, ok)
	assert.Equal(t, "F", rank)
}

func TestGainsIsZero(t *testing.T) {
	assert.True(t, catalog.Gains{}.IsZero())
	assert.True(t, catalog.Gains{Stats: map[character.Stat]int{character.StatWisdom: 0}}.IsZero())
	assert.False(t, catalog.Gains{FreePoints: 1}.IsZero())
	assert.False(t, catalog.Gains{Stats: map[character.Stat]int{character.StatWisdom: 1}}.IsZero())
}
