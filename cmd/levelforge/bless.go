package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	charorch "github.com/aldenmoor/levelforge/internal/orchestrators/character"
)

var (
	blessName    string
	blessBonuses []string
	blessRemove  bool
)

var blessCmd = &cobra.Command{
	Use:   "bless",
	Short: "Apply or remove a blessing",
	RunE:  runBless,
}

func init() {
	blessCmd.Flags().StringVar(&blessName, "name", "", "Character name (required)")
	_ = blessCmd.MarkFlagRequired("name") // nolint:errcheck // safe to ignore in init
	blessCmd.Flags().StringArrayVar(&blessBonuses, "bonus", nil, "Blessing bonus, stat=value (repeatable)")
	blessCmd.Flags().BoolVar(&blessRemove, "remove", false, "Remove the active blessing")
}

func runBless(_ *cobra.Command, _ []string) error {
	svc, err := newService()
	if err != nil {
		return err
	}
	ctx := context.Background()

	if blessRemove {
		out, err := svc.RemoveBlessing(ctx, &charorch.RemoveBlessingInput{Name: blessName})
		if err != nil {
			return err
		}
		fmt.Println("Removed blessing.")
		printCharacter(out.Character)
		return nil
	}

	bonuses, err := parseStatPairs(blessBonuses)
	if err != nil {
		return err
	}
	if len(bonuses) == 0 {
		return fmt.Errorf("either --bonus or --remove is required")
	}

	out, err := svc.ApplyBlessing(ctx, &charorch.ApplyBlessingInput{
		Name:    blessName,
		Bonuses: bonuses,
	})
	if err != nil {
		return err
	}

	fmt.Println("Applied blessing.")
	printCharacter(out.Character)
	return nil
}
