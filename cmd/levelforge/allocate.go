package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aldenmoor/levelforge/internal/entities/character"
	charorch "github.com/aldenmoor/levelforge/internal/orchestrators/character"
)

var (
	allocateName   string
	allocateStat   string
	allocateAmount int
	allocateDebt   bool
	allocateRandom bool
)

var allocateCmd = &cobra.Command{
	Use:   "allocate",
	Short: "Spend free points on stats",
	RunE:  runAllocate,
}

func init() {
	allocateCmd.Flags().StringVar(&allocateName, "name", "", "Character name (required)")
	_ = allocateCmd.MarkFlagRequired("name") // nolint:errcheck // safe to ignore in init
	allocateCmd.Flags().StringVar(&allocateStat, "stat", "", "Stat to raise")
	allocateCmd.Flags().IntVar(&allocateAmount, "amount", 1, "Points to spend")
	allocateCmd.Flags().BoolVar(&allocateDebt, "debt", false, "Allow the balance to go negative")
	allocateCmd.Flags().BoolVar(&allocateRandom, "random", false, "Spend the whole balance on random stats")
}

func runAllocate(_ *cobra.Command, _ []string) error {
	svc, err := newService()
	if err != nil {
		return err
	}
	ctx := context.Background()

	if allocateRandom {
		out, err := svc.AllocateRandomly(ctx, &charorch.AllocateRandomlyInput{Name: allocateName})
		if err != nil {
			return err
		}
		fmt.Println("Spent all free points:")
		for stat, n := range out.Spent {
			fmt.Printf("  %-14s +%d\n", stat, n)
		}
		printCharacter(out.Character)
		return nil
	}

	if allocateStat == "" {
		return fmt.Errorf("either --stat or --random is required")
	}
	stat, err := character.ParseStat(allocateStat)
	if err != nil {
		return err
	}

	out, err := svc.AllocateFreePoints(ctx, &charorch.AllocateFreePointsInput{
		Name:      allocateName,
		Stat:      stat,
		Amount:    allocateAmount,
		AllowDebt: allocateDebt,
	})
	if err != nil {
		return err
	}

	fmt.Printf("Allocated %d point(s) to %s.\n", allocateAmount, stat)
	printCharacter(out.Character)
	return nil
}
