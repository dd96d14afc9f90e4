package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	charorch "github.com/aldenmoor/levelforge/internal/orchestrators/character"
)

var (
	tierName       string
	tierThresholds []int
	tierThreshold  int
)

var tierCmd = &cobra.Command{
	Use:   "tier",
	Short: "Manage tier thresholds",
}

var tierSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Replace the tier threshold list",
	RunE:  runTierSet,
}

var tierAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add one tier threshold",
	RunE:  runTierAdd,
}

var tierRemoveCmd = &cobra.Command{
	Use:   "remove",
	Short: "Remove one tier threshold",
	RunE:  runTierRemove,
}

func init() {
	for _, cmd := range []*cobra.Command{tierSetCmd, tierAddCmd, tierRemoveCmd} {
		cmd.Flags().StringVar(&tierName, "name", "", "Character name (required)")
		_ = cmd.MarkFlagRequired("name") // nolint:errcheck // safe to ignore in init
		tierCmd.AddCommand(cmd)
	}
	tierSetCmd.Flags().IntSliceVar(&tierThresholds, "thresholds", nil, "New thresholds, e.g. 25,50 (required)")
	_ = tierSetCmd.MarkFlagRequired("thresholds") // nolint:errcheck // safe to ignore in init
	tierAddCmd.Flags().IntVar(&tierThreshold, "threshold", 0, "Threshold to add (required)")
	_ = tierAddCmd.MarkFlagRequired("threshold") // nolint:errcheck // safe to ignore in init
	tierRemoveCmd.Flags().IntVar(&tierThreshold, "threshold", 0, "Threshold to remove (required)")
	_ = tierRemoveCmd.MarkFlagRequired("threshold") // nolint:errcheck // safe to ignore in init
}

func runTierSet(_ *cobra.Command, _ []string) error {
	svc, err := newService()
	if err != nil {
		return err
	}

	out, err := svc.SetTierThresholds(context.Background(), &charorch.SetTierThresholdsInput{
		Name:       tierName,
		Thresholds: tierThresholds,
	})
	if err != nil {
		return err
	}

	if out.TierChanged {
		fmt.Println("Warning: the character's current tier changed.")
	}
	fmt.Printf("Thresholds are now %v.\n", out.Character.TierThresholds)
	return nil
}

func runTierAdd(_ *cobra.Command, _ []string) error {
	svc, err := newService()
	if err != nil {
		return err
	}

	out, err := svc.AddTierThreshold(context.Background(), &charorch.AddTierThresholdInput{
		Name:      tierName,
		Threshold: tierThreshold,
	})
	if err != nil {
		return err
	}
	fmt.Printf("Thresholds are now %v.\n", out.Character.TierThresholds)
	return nil
}

func runTierRemove(_ *cobra.Command, _ []string) error {
	svc, err := newService()
	if err != nil {
		return err
	}

	out, err := svc.RemoveTierThreshold(context.Background(), &charorch.RemoveTierThresholdInput{
		Name:      tierName,
		Threshold: tierThreshold,
	})
	if err != nil {
		return err
	}
	fmt.Printf("Thresholds are now %v.\n", out.Character.TierThresholds)
	return nil
}
