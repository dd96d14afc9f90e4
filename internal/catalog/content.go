package catalog

import (
	"github.com/aldenmoor/levelforge/internal/entities/character"
)

// Default returns the built-in progression content. Classes and
// professions are keyed by tier; races grant per-level bonuses in rank
// bands from G upward.
func Default() *Static {
	s := New()

	s.AddClass("warrior", 1, Gains{
		Stats: map[character.Stat]int{
			character.StatStrength:  2,
			character.StatVitality:  1,
			character.StatToughness: 1,
		},
		FreePoints: 1,
	})
	s.AddClass("warrior", 2, Gains{
		Stats: map[character.Stat]int{
			character.StatStrength:  4,
			character.StatVitality:  2,
			character.StatToughness: 2,
			character.StatEndurance: 1,
		},
		FreePoints: 2,
	})
	s.AddClass("berserker", 2, Gains{
		Stats: map[character.Stat]int{
			character.StatStrength: 6,
			character.StatVitality: 3,
		},
		FreePoints: 1,
	})
	s.AddClass("mage", 1, Gains{
		Stats: map[character.Stat]int{
			character.StatIntelligence: 2,
			character.StatWillpower:    1,
			character.StatWisdom:       1,
		},
		FreePoints: 1,
	})
	s.AddClass("mage", 2, Gains{
		Stats: map[character.Stat]int{
			character.StatIntelligence: 4,
			character.StatWillpower:    2,
			character.StatWisdom:       2,
			character.StatPerception:   1,
		},
		FreePoints: 2,
	})
	s.AddClass("archer", 1, Gains{
		Stats: map[character.Stat]int{
			character.StatDexterity:  2,
			character.StatPerception: 1,
			character.StatEndurance:  1,
		},
		FreePoints: 1,
	})
	s.AddClass("archer", 2, Gains{
		Stats: map[character.Stat]int{
			character.StatDexterity:  4,
			character.StatPerception: 2,
			character.StatEndurance:  2,
			character.StatStrength:   1,
		},
		FreePoints: 2,
	})

	s.AddProfession("blacksmith", 1, Gains{
		Stats: map[character.Stat]int{
			character.StatStrength:  1,
			character.StatEndurance: 1,
		},
		FreePoints: 1,
	})
	s.AddProfession("blacksmith", 2, Gains{
		Stats: map[character.Stat]int{
			character.StatStrength:  2,
			character.StatEndurance: 2,
			character.StatToughness: 1,
		},
		FreePoints: 1,
	})
	s.AddProfession("alchemist", 1, Gains{
		Stats: map[character.Stat]int{
			character.StatIntelligence: 1,
			character.StatWisdom:       1,
		},
		FreePoints: 1,
	})
	s.AddProfession("alchemist", 2, Gains{
		Stats: map[character.Stat]int{
			character.StatIntelligence: 2,
			character.StatWisdom:       2,
			character.StatPerception:   1,
		},
		FreePoints: 1,
	})
	s.AddProfession("scout", 1, Gains{
		Stats: map[character.Stat]int{
			character.StatPerception: 1,
			character.StatDexterity:  1,
		},
		FreePoints: 1,
	})
	s.AddProfession("scout", 2, Gains{
		Stats: map[character.Stat]int{
			character.StatPerception: 2,
			character.StatDexterity:  2,
			character.StatEndurance:  1,
		},
		FreePoints: 1,
	})

	s.AddRaceBand("human", RaceBand{
		MinLevel: 1, MaxLevel: 9, Rank: "G",
		Gains: Gains{FreePoints: 2},
	})
	s.AddRaceBand("human", RaceBand{
		MinLevel: 10, MaxLevel: 24, Rank: "F",
		Gains: Gains{
			Stats:      map[character.Stat]int{character.StatVitality: 1},
			FreePoints: 2,
		},
	})
	s.AddRaceBand("human", RaceBand{
		MinLevel: 25, MaxLevel: 49, Rank: "E",
		Gains: Gains{
			Stats:      map[character.Stat]int{character.StatVitality: 1, character.StatWillpower: 1},
			FreePoints: 3,
		},
	})

	s.AddRaceBand("elf", RaceBand{
		MinLevel: 1, MaxLevel: 9, Rank: "G",
		Gains: Gains{
			Stats:      map[character.Stat]int{character.StatPerception: 1},
			FreePoints: 1,
		},
	})
	s.AddRaceBand("elf", RaceBand{
		MinLevel: 10, MaxLevel: 24, Rank: "F",
		Gains: Gains{
			Stats:      map[character.Stat]int{character.StatPerception: 1, character.StatDexterity: 1},
			FreePoints: 1,
		},
	})
	s.AddRaceBand("elf", RaceBand{
		MinLevel: 25, MaxLevel: 49, Rank: "E",
		Gains: Gains{
			Stats:      map[character.Stat]int{character.StatPerception: 2, character.StatDexterity: 1, character.StatWisdom: 1},
			FreePoints: 2,
		},
	})

	s.AddRaceBand("dwarf", RaceBand{
		MinLevel: 1, MaxLevel: 9, Rank: "G",
		Gains: Gains{
			Stats:      map[character.Stat]int{character.StatToughness: 1},
			FreePoints: 1,
		},
	})
	s.AddRaceBand("dwarf", RaceBand{
		MinLevel: 10, MaxLevel: 24, Rank: "F",
		Gains: Gains{
			Stats:      map[character.Stat]int{character.StatToughness: 1, character.StatStrength: 1},
			FreePoints: 1,
		},
	})
	s.AddRaceBand("dwarf", RaceBand{
		MinLevel: 25, MaxLevel: 49, Rank: "E",
		Gains: Gains{
			Stats:      map[character.Stat]int{character.StatToughness: 2, character.StatStrength: 1, character.StatVitality: 1},
			FreePoints: 2,
		},
	})

	// Beast races for familiars and monsters
	s.AddRaceBand("fire drake", RaceBand{
		MinLevel: 1, MaxLevel: 9, Rank: "G",
		Gains: Gains{
			Stats: map[character.Stat]int{character.StatStrength: 2, character.StatVitality: 1},
		},
	})
	s.AddRaceBand("fire drake", RaceBand{
		MinLevel: 10, MaxLevel: 24, Rank: "F",
		Gains: Gains{
			Stats:      map[character.Stat]int{character.StatStrength: 3, character.StatVitality: 2, character.StatToughness: 1},
			FreePoints: 1,
		},
	})
	s.AddRaceBand("shade wolf", RaceBand{
		MinLevel: 1, MaxLevel: 9, Rank: "G",
		Gains: Gains{
			Stats: map[character.Stat]int{character.StatDexterity: 2, character.StatPerception: 1},
		},
	})
	s.AddRaceBand("shade wolf", RaceBand{
		MinLevel: 10, MaxLevel: 24, Rank: "F",
		Gains: Gains{
			Stats:      map[character.Stat]int{character.StatDexterity: 3, character.StatPerception: 2, character.StatEndurance: 1},
			FreePoints: 1,
		},
	})

	return s
}
