package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	charorch "github.com/aldenmoor/levelforge/internal/orchestrators/character"
)

var (
	changeName    string
	changeTo      string
	changeAtLevel int
)

var changeCmd = &cobra.Command{
	Use:   "change",
	Short: "Switch class, profession, or race",
}

var changeClassCmd = &cobra.Command{
	Use:   "class",
	Short: "Switch class at a given class level",
	RunE:  runChangeClass,
}

var changeProfessionCmd = &cobra.Command{
	Use:   "profession",
	Short: "Switch profession at a given profession level",
	RunE:  runChangeProfession,
}

var changeRaceCmd = &cobra.Command{
	Use:   "race",
	Short: "Switch race and replay the race history",
	RunE:  runChangeRace,
}

func init() {
	for _, cmd := range []*cobra.Command{changeClassCmd, changeProfessionCmd, changeRaceCmd} {
		cmd.Flags().StringVar(&changeName, "name", "", "Character name (required)")
		_ = cmd.MarkFlagRequired("name") // nolint:errcheck // safe to ignore in init
		cmd.Flags().StringVar(&changeTo, "to", "", "New value (required)")
		_ = cmd.MarkFlagRequired("to") // nolint:errcheck // safe to ignore in init
		cmd.Flags().IntVar(&changeAtLevel, "at-level", 0, "Level the change takes effect at")
		changeCmd.AddCommand(cmd)
	}
}

func runChangeClass(_ *cobra.Command, _ []string) error {
	svc, err := newService()
	if err != nil {
		return err
	}

	out, err := svc.ChangeClass(context.Background(), &charorch.ChangeClassInput{
		Name:     changeName,
		NewClass: changeTo,
		AtLevel:  changeAtLevel,
	})
	if err != nil {
		return err
	}

	fmt.Printf("Changed class to %s.\n", changeTo)
	printCharacter(out.Character)
	return nil
}

func runChangeProfession(_ *cobra.Command, _ []string) error {
	svc, err := newService()
	if err != nil {
		return err
	}

	out, err := svc.ChangeProfession(context.Background(), &charorch.ChangeProfessionInput{
		Name:          changeName,
		NewProfession: changeTo,
		AtLevel:       changeAtLevel,
	})
	if err != nil {
		return err
	}

	fmt.Printf("Changed profession to %s.\n", changeTo)
	printCharacter(out.Character)
	return nil
}

func runChangeRace(_ *cobra.Command, _ []string) error {
	svc, err := newService()
	if err != nil {
		return err
	}

	out, err := svc.ChangeRace(context.Background(), &charorch.ChangeRaceInput{
		Name:        changeName,
		NewRace:     changeTo,
		AtRaceLevel: changeAtLevel,
	})
	if err != nil {
		return err
	}

	fmt.Printf("Changed race to %s.\n", changeTo)
	printCharacter(out.Character)
	return nil
}
