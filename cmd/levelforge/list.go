package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	charorch "github.com/aldenmoor/levelforge/internal/orchestrators/character"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all stored characters",
	RunE:  runList,
}

func runList(_ *cobra.Command, _ []string) error {
	svc, err := newService()
	if err != nil {
		return err
	}

	out, err := svc.ListCharacters(context.Background(), &charorch.ListCharactersInput{})
	if err != nil {
		return err
	}
	if len(out.Characters) == 0 {
		fmt.Println("No characters stored.")
		return nil
	}

	fmt.Printf("%-20s %-10s %-14s %-14s %-10s %s\n",
		"NAME", "TYPE", "CLASS", "PROFESSION", "RACE", "STATUS")
	for _, c := range out.Characters {
		fmt.Printf("%-20s %-10s %-14s %-14s %-10s %s\n",
			c.Name, c.Type,
			levelLabel(c.Class, c.ClassLevel),
			levelLabel(c.Profession, c.ProfessionLevel),
			levelLabel(c.Race, c.RaceLevel()),
			c.Status)
	}
	return nil
}

func levelLabel(name string, level int) string {
	if name == "" {
		return "-"
	}
	return fmt.Sprintf("%s/%d", name, level)
}
