package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aldenmoor/levelforge/internal/engine"
	charorch "github.com/aldenmoor/levelforge/internal/orchestrators/character"
)

var (
	levelupName   string
	levelupKind   string
	levelupTarget int
)

var levelupCmd = &cobra.Command{
	Use:   "levelup",
	Short: "Advance a progression track to a target level",
	RunE:  runLevelup,
}

func init() {
	levelupCmd.Flags().StringVar(&levelupName, "name", "", "Character name (required)")
	_ = levelupCmd.MarkFlagRequired("name") // nolint:errcheck // safe to ignore in init
	levelupCmd.Flags().StringVar(&levelupKind, "kind", "class", "Track to level: class, profession, or race")
	levelupCmd.Flags().IntVar(&levelupTarget, "target", 0, "Target level (required)")
	_ = levelupCmd.MarkFlagRequired("target") // nolint:errcheck // safe to ignore in init
}

func runLevelup(_ *cobra.Command, _ []string) error {
	kind, err := engine.ParseKind(levelupKind)
	if err != nil {
		return err
	}

	svc, err := newService()
	if err != nil {
		return err
	}

	out, err := svc.LevelUp(context.Background(), &charorch.LevelUpInput{
		Name:        levelupName,
		Kind:        kind,
		TargetLevel: levelupTarget,
	})
	if err != nil {
		return err
	}

	fmt.Printf("Leveled %s to %s level %d.\n", levelupName, kind, levelupTarget)
	printCharacter(out.Character)
	return nil
}
