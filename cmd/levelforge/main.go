// Package main is the entry point for the levelforge CLI
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	storagePath string
	redisAddr   string
)

var rootCmd = &cobra.Command{
	Use:   "levelforge",
	Short: "Character progression calculator",
	Long: `Levelforge tracks characters whose stats derive from class, profession,
and race progression, validates manually entered characters against the
progression rules, and stores everything in a CSV file or Redis.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&storagePath, "file", "characters.csv", "CSV storage file")
	rootCmd.PersistentFlags().StringVar(&redisAddr, "redis", "", "Redis address (overrides --file)")

	rootCmd.AddCommand(createCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(levelupCmd)
	rootCmd.AddCommand(changeCmd)
	rootCmd.AddCommand(allocateCmd)
	rootCmd.AddCommand(blessCmd)
	rootCmd.AddCommand(itemCmd)
	rootCmd.AddCommand(tierCmd)
	rootCmd.AddCommand(validateCmd)
}
