package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all configured boards",
	Long:  `Shows the boards defined in the active configuration.`,
	Args:  cobra.NoArgs,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	boards := appConfig.Boards

	fmt.Println("Available boards:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, b := range boards {
		maxIDLen = max(maxIDLen, len(b.Name))
	}

	// Print header
	fmt.Printf("  %-*s  %-7s  %s\n", maxIDLen, "ID", "Size", "Title")
	fmt.Printf("  %-*s  %-7s  %s\n", maxIDLen, "--", "----", "-----")

	// Print boards
	for _, b := range boards {
		size := fmt.Sprintf("%dx%d", b.Width, b.Height)
		fmt.Printf("  %-*s  %-7s  %s\n", maxIDLen, b.Name, size, b.DisplayTitle())
	}

	fmt.Println()
	fmt.Println("Run 'snake play <id>' to play a board.")
}
