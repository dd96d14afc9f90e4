package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	charorch "github.com/aldenmoor/levelforge/internal/orchestrators/character"
)

var deleteName string

var deleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Delete a character",
	RunE:  runDelete,
}

func init() {
	deleteCmd.Flags().StringVar(&deleteName, "name", "", "Character name (required)")
	_ = deleteCmd.MarkFlagRequired("name") // nolint:errcheck // safe to ignore in init
}

func runDelete(_ *cobra.Command, _ []string) error {
	svc, err := newService()
	if err != nil {
		return err
	}

	if _, err := svc.DeleteCharacter(context.Background(), &charorch.DeleteCharacterInput{Name: deleteName}); err != nil {
		return err
	}
	fmt.Printf("Deleted %s.\n", deleteName)
	return nil
}
