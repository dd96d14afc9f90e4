package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aldenmoor/levelforge/internal/entities/character"
	charorch "github.com/aldenmoor/levelforge/internal/orchestrators/character"
)

var (
	createName            string
	createClass           string
	createClassLevel      int
	createProfession      string
	createProfessionLevel int
	createRace            string
	createRaceLevel       int
	createBaseStats       []string
	createCurrentStats    []string
	createRoll            bool
	createFreePoints      int
	createThresholds      []int
)

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a character",
}

var createCalculatedCmd = &cobra.Command{
	Use:   "calculated",
	Short: "Create a character with stats derived from its progression",
	RunE:  runCreateCalculated,
}

var createCustomCmd = &cobra.Command{
	Use:   "custom",
	Short: "Create a manual character with caller-supplied stats",
	RunE:  runCreateCustom,
}

var createReverseCmd = &cobra.Command{
	Use:   "reverse-engineered",
	Short: "Create a manual character and infer its free-point spending",
	RunE:  runCreateReverse,
}

var createFamiliarCmd = &cobra.Command{
	Use:   "familiar",
	Short: "Create a familiar that levels through its race",
	RunE:  runCreateRaceLeveling(character.TypeFamiliar),
}

var createMonsterCmd = &cobra.Command{
	Use:   "monster",
	Short: "Create a monster that levels through its race",
	RunE:  runCreateRaceLeveling(character.TypeMonster),
}

func init() {
	for _, cmd := range []*cobra.Command{
		createCalculatedCmd, createCustomCmd, createReverseCmd, createFamiliarCmd, createMonsterCmd,
	} {
		cmd.Flags().StringVar(&createName, "name", "", "Character name (required)")
		_ = cmd.MarkFlagRequired("name") // nolint:errcheck // safe to ignore in init
		cmd.Flags().StringVar(&createRace, "race", "", "Race name")
		createCmd.AddCommand(cmd)
	}

	for _, cmd := range []*cobra.Command{createCalculatedCmd, createCustomCmd, createReverseCmd} {
		cmd.Flags().StringVar(&createClass, "class", "", "Class name")
		cmd.Flags().IntVar(&createClassLevel, "class-level", 0, "Class level")
		cmd.Flags().StringVar(&createProfession, "profession", "", "Profession name")
		cmd.Flags().IntVar(&createProfessionLevel, "profession-level", 0, "Profession level")
	}

	createCalculatedCmd.Flags().StringArrayVar(&createBaseStats, "base", nil, "Base stat override, stat=value (repeatable)")
	createCalculatedCmd.Flags().BoolVar(&createRoll, "roll", false, "Roll base stats with 4d6 drop lowest")
	createCalculatedCmd.Flags().IntSliceVar(&createThresholds, "thresholds", nil, "Tier thresholds, e.g. 25,50")

	createCustomCmd.Flags().StringArrayVar(&createBaseStats, "stats", nil, "Current stat values, stat=value (repeatable)")
	createCustomCmd.Flags().IntVar(&createFreePoints, "free-points", 0, "Unspent free points")

	createReverseCmd.Flags().StringArrayVar(&createBaseStats, "base", nil, "Base stat values, stat=value (repeatable)")
	createReverseCmd.Flags().StringArrayVar(&createCurrentStats, "current", nil, "Current stat values, stat=value (repeatable)")

	for _, cmd := range []*cobra.Command{createFamiliarCmd, createMonsterCmd} {
		cmd.Flags().IntVar(&createRaceLevel, "race-level", 1, "Race level")
		cmd.Flags().StringArrayVar(&createBaseStats, "base", nil, "Base stat override, stat=value (repeatable)")
		_ = cmd.MarkFlagRequired("race") // nolint:errcheck // safe to ignore in init
	}
}

func runCreateCalculated(_ *cobra.Command, _ []string) error {
	svc, err := newService()
	if err != nil {
		return err
	}

	base, err := parseStatPairs(createBaseStats)
	if err != nil {
		return err
	}

	out, err := svc.CreateCalculated(context.Background(), &charorch.CreateCalculatedInput{
		Name:            createName,
		Class:           createClass,
		ClassLevel:      createClassLevel,
		Profession:      createProfession,
		ProfessionLevel: createProfessionLevel,
		Race:            createRace,
		BaseStats:       base,
		RollBaseStats:   createRoll,
		TierThresholds:  createThresholds,
	})
	if err != nil {
		return err
	}

	fmt.Println("Created calculated character.")
	printCharacter(out.Character)
	return nil
}

func runCreateCustom(_ *cobra.Command, _ []string) error {
	svc, err := newService()
	if err != nil {
		return err
	}

	stats, err := parseStatPairs(createBaseStats)
	if err != nil {
		return err
	}

	out, err := svc.CreateCustom(context.Background(), &charorch.CreateCustomInput{
		Name:            createName,
		Class:           createClass,
		ClassLevel:      createClassLevel,
		Profession:      createProfession,
		ProfessionLevel: createProfessionLevel,
		Race:            createRace,
		Stats:           stats,
		FreePoints:      createFreePoints,
	})
	if err != nil {
		return err
	}

	fmt.Println("Created custom character.")
	printCharacter(out.Character)
	return nil
}

func runCreateReverse(_ *cobra.Command, _ []string) error {
	svc, err := newService()
	if err != nil {
		return err
	}

	base, err := parseStatPairs(createBaseStats)
	if err != nil {
		return err
	}
	current, err := parseStatPairs(createCurrentStats)
	if err != nil {
		return err
	}

	out, err := svc.CreateReverseEngineered(context.Background(), &charorch.CreateReverseEngineeredInput{
		Name:            createName,
		Class:           createClass,
		ClassLevel:      createClassLevel,
		Profession:      createProfession,
		ProfessionLevel: createProfessionLevel,
		Race:            createRace,
		BaseStats:       base,
		CurrentStats:    current,
	})
	if err != nil {
		return err
	}

	fmt.Println("Created reverse-engineered character. Run validate to convert it.")
	printCharacter(out.Character)
	return nil
}

func runCreateRaceLeveling(charType character.Type) func(*cobra.Command, []string) error {
	return func(_ *cobra.Command, _ []string) error {
		svc, err := newService()
		if err != nil {
			return err
		}

		base, err := parseStatPairs(createBaseStats)
		if err != nil {
			return err
		}

		out, err := svc.CreateRaceLeveling(context.Background(), &charorch.CreateRaceLevelingInput{
			Name:      createName,
			Type:      charType,
			Race:      createRace,
			RaceLevel: createRaceLevel,
			BaseStats: base,
		})
		if err != nil {
			return err
		}

		fmt.Printf("Created %s.\n", charType)
		printCharacter(out.Character)
		return nil
	}
}
