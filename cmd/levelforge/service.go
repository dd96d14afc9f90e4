package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/aldenmoor/levelforge/internal/catalog"
	"github.com/aldenmoor/levelforge/internal/engine"
	"github.com/aldenmoor/levelforge/internal/entities/character"
	charorch "github.com/aldenmoor/levelforge/internal/orchestrators/character"
	"github.com/aldenmoor/levelforge/internal/pkg/clock"
	"github.com/aldenmoor/levelforge/internal/pkg/idgen"
	redisclient "github.com/aldenmoor/levelforge/internal/redis"
	characterrepo "github.com/aldenmoor/levelforge/internal/repositories/character"
	"github.com/aldenmoor/levelforge/internal/validation"
)

// newService wires the orchestrator against the storage selected by the
// persistent flags
func newService() (*charorch.Orchestrator, error) {
	var (
		repo characterrepo.Repository
		err  error
	)
	if redisAddr != "" {
		client, cerr := redisclient.NewClient(redisAddr, nil)
		if cerr != nil {
			return nil, cerr
		}
		repo, err = characterrepo.NewRedis(&characterrepo.RedisConfig{Client: client})
	} else {
		repo, err = characterrepo.NewCSV(&characterrepo.CSVConfig{Path: storagePath})
	}
	if err != nil {
		return nil, err
	}

	content := catalog.Default()

	eng, err := engine.New(&engine.Config{Catalog: content})
	if err != nil {
		return nil, err
	}

	analyzer, err := validation.NewAnalyzer(&validation.AnalyzerConfig{Catalog: content})
	if err != nil {
		return nil, err
	}

	validator, err := validation.NewValidator(&validation.ValidatorConfig{
		Analyzer: analyzer,
		Clock:    clock.New(),
	})
	if err != nil {
		return nil, err
	}

	return charorch.New(&charorch.Config{
		Repository:  repo,
		Engine:      eng,
		Validator:   validator,
		Catalog:     content,
		IDGenerator: idgen.NewUUID("char"),
	})
}

// parseStatPairs turns "stat=value" flag entries into a stat map
func parseStatPairs(pairs []string) (map[character.Stat]int, error) {
	if len(pairs) == 0 {
		return nil, nil
	}
	out := make(map[character.Stat]int, len(pairs))
	for _, pair := range pairs {
		name, value, ok := strings.Cut(pair, "=")
		if !ok {
			return nil, fmt.Errorf("invalid stat pair %q (expected stat=value)", pair)
		}
		stat, err := character.ParseStat(strings.TrimSpace(name))
		if err != nil {
			return nil, err
		}
		n, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil {
			return nil, fmt.Errorf("invalid value in stat pair %q", pair)
		}
		out[stat] = n
	}
	return out, nil
}

func printCharacter(c *character.Character) {
	fmt.Printf("%s (%s)\n", c.Name, c.Type)
	if c.Class != "" {
		fmt.Printf("  Class:      %s (level %d)%s\n", c.Class, c.ClassLevel, lineage(c.ClassHistory))
	}
	if c.Profession != "" {
		fmt.Printf("  Profession: %s (level %d)%s\n", c.Profession, c.ProfessionLevel, lineage(c.ProfessionHistory))
	}
	if c.Race != "" {
		rank := c.RaceRank()
		if rank == "" {
			rank = "-"
		}
		fmt.Printf("  Race:       %s (level %d, rank %s)%s\n", c.Race, c.RaceLevel(), rank, lineage(c.RaceHistory))
	}
	fmt.Printf("  Health:     %d/%d\n", c.CurrentHealth, c.MaxHealth)
	fmt.Printf("  Free points: %d\n", c.FreePoints)
	fmt.Printf("  Status:     %s\n\n", c.Status)

	fmt.Printf("  %-14s %6s %9s\n", "STAT", "VALUE", "MODIFIER")
	for _, stat := range character.Stats() {
		fmt.Printf("  %-14s %6d %9d\n", stat, c.Ledger.Current(stat), c.Ledger.Modifier(stat))
	}
}

// lineage renders a track's value sequence when the character has
// changed it at least once
func lineage(track *character.Track) string {
	if track == nil {
		return ""
	}
	changes := track.Changes()
	if len(changes) < 2 {
		return ""
	}
	return fmt.Sprintf(", formerly %s", strings.Join(changes[:len(changes)-1], ", "))
}

func printBreakdown(c *character.Character) {
	sources := character.Sources()

	fmt.Printf("\n  %-14s", "STAT")
	for _, source := range sources {
		fmt.Printf(" %12s", source)
	}
	fmt.Println()

	for _, stat := range character.Stats() {
		breakdown := c.Ledger.SourceBreakdown(stat)
		fmt.Printf("  %-14s", stat)
		for _, source := range sources {
			fmt.Printf(" %12d", breakdown[source])
		}
		fmt.Println()
	}
}
