// Package main is the entry point for the Discord bot
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "character-forge",
	Short: "Character Forge Discord bot",
	Long:  `Character Forge runs a D&D 5e character creation wizard as Discord slash commands.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
