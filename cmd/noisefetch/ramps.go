package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/noisefetch/internal/registry"
)

var rampsCmd = &cobra.Command{
	Use:   "ramps",
	Short: "List all named glyph ramps",
	Long:  `Shows the glyph ramps that can be selected with --preset or render.preset.`,
	Run:   runRamps,
}

var headerStyle = lipgloss.NewStyle().Bold(true)

func runRamps(cmd *cobra.Command, args []string) {
	ramps := registry.List()

	if len(ramps) == 0 {
		fmt.Println("No ramps available.")
		return
	}

	fmt.Println(headerStyle.Render("Available ramps:"))
	fmt.Println()

	// Calculate column widths; glyphs may be multi-byte
	maxNameLen, maxGlyphLen := 4, 6 // "Name", "Glyphs" headers
	for _, r := range ramps {
		maxNameLen = max(maxNameLen, len(r.Name))
		maxGlyphLen = max(maxGlyphLen, lipgloss.Width(r.Glyphs)+2)
	}

	// Print header
	fmt.Printf("  %-*s  %s  %s\n", maxNameLen, "Name", pad("Glyphs", maxGlyphLen), "Description")
	fmt.Printf("  %-*s  %s  %s\n", maxNameLen, "----", pad("------", maxGlyphLen), "-----------")

	// Print ramps
	for _, r := range ramps {
		fmt.Printf("  %-*s  %s  %s\n", maxNameLen, r.Name, pad("["+r.Glyphs+"]", maxGlyphLen), r.Description)
	}

	fmt.Println()
	fmt.Println("Run 'noisefetch --preset <name>' to use one.")
}

// pad right-pads s to width display columns.
func pad(s string, width int) string {
	return s + strings.Repeat(" ", max(0, width-lipgloss.Width(s)))
}
