package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	charorch "github.com/aldenmoor/levelforge/internal/orchestrators/character"
)

var (
	itemName    string
	itemBonuses []string
	itemRemove  bool
)

var itemCmd = &cobra.Command{
	Use:   "item",
	Short: "Apply or remove item stat bonuses",
	RunE:  runItem,
}

func init() {
	itemCmd.Flags().StringVar(&itemName, "name", "", "Character name (required)")
	_ = itemCmd.MarkFlagRequired("name") // nolint:errcheck // safe to ignore in init
	itemCmd.Flags().StringArrayVar(&itemBonuses, "bonus", nil, "Item bonus, stat=value (repeatable)")
	itemCmd.Flags().BoolVar(&itemRemove, "remove", false, "Remove the given bonuses instead of applying them")
}

func runItem(_ *cobra.Command, _ []string) error {
	svc, err := newService()
	if err != nil {
		return err
	}
	ctx := context.Background()

	bonuses, err := parseStatPairs(itemBonuses)
	if err != nil {
		return err
	}
	if len(bonuses) == 0 {
		return fmt.Errorf("--bonus is required")
	}

	if itemRemove {
		out, err := svc.RemoveItemBonuses(ctx, &charorch.RemoveItemBonusesInput{
			Name:    itemName,
			Bonuses: bonuses,
		})
		if err != nil {
			return err
		}
		fmt.Println("Removed item bonuses.")
		printCharacter(out.Character)
		return nil
	}

	out, err := svc.ApplyItemBonuses(ctx, &charorch.ApplyItemBonusesInput{
		Name:    itemName,
		Bonuses: bonuses,
	})
	if err != nil {
		return err
	}

	fmt.Println("Applied item bonuses.")
	printCharacter(out.Character)
	return nil
}
