// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/drip-agent/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintProfile outputs a summary of the scraped or pasted social profile.
func (p *Printer) PrintProfile(profile *types.Profile) {
	if profile == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Handle:    @%s\n", profile.Handle))
	if profile.Name != "" {
		sb.WriteString(fmt.Sprintf("Name:      %s\n", profile.Name))
	}
	sb.WriteString(fmt.Sprintf("Followers: %d / Following: %d\n", profile.Followers, profile.Following))
	if profile.Location != "" {
		sb.WriteString(fmt.Sprintf("Location:  %s\n", profile.Location))
	}
	if profile.Bio != "" {
		sb.WriteString(fmt.Sprintf("\nBio: %s\n", profile.Bio))
	}
	sb.WriteString(fmt.Sprintf("\nPosts captured: %d", len(profile.Posts)))

	p.printBox("SOCIAL PROFILE", sb.String())
}

// PrintVibeProfile outputs the merged vibe analysis: personality traits,
// demographics, and any weather or color-season context that was attached.
func (p *Printer) PrintVibeProfile(vibe *types.VibeProfile) {
	if vibe == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Energy:     %s\n", vibe.Energy))
	sb.WriteString(fmt.Sprintf("Gender:     %s (%.2f)\n", vibe.Gender, vibe.GenderConfidence))
	sb.WriteString(fmt.Sprintf("Age range:  %s\n", vibe.AgeRange))
	sb.WriteString(fmt.Sprintf("Profession: %s\n", vibe.Profession))
	if vibe.Location != "" {
		sb.WriteString(fmt.Sprintf("Location:   %s\n", vibe.Location))
	}
	sb.WriteString("\n")

	if len(vibe.PersonalityTraits) > 0 {
		sb.WriteString("Traits:\n")
		count := min(len(vibe.PersonalityTraits), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", vibe.PersonalityTraits[i]))
		}
		if len(vibe.PersonalityTraits) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(vibe.PersonalityTraits)-maxItemsToShow))
		}
	}
	if len(vibe.AestheticKeywords) > 0 {
		sb.WriteString(fmt.Sprintf("Aesthetic: %s\n", strings.Join(vibe.AestheticKeywords, ", ")))
	}
	if vibe.Weather != nil {
		sb.WriteString(fmt.Sprintf("\nWeather: %d°C %s in %s\n", vibe.Weather.Temperature, vibe.Weather.Condition, vibe.Weather.Location))
	}
	if vibe.ColorSeason != nil {
		sb.WriteString(fmt.Sprintf("Color season: %s\n", vibe.ColorSeason.Subtype))
	}
	if vibe.VibeSummary != "" {
		sb.WriteString(fmt.Sprintf("\n%s", vibe.VibeSummary))
	}

	p.printBox("VIBE PROFILE", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintStyleRecommendation outputs the resolved archetypes and styling notes.
func (p *Printer) PrintStyleRecommendation(rec *types.StyleRecommendation) {
	if rec == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Primary:   %s\n", rec.PrimaryArchetype))
	sb.WriteString(fmt.Sprintf("Secondary: %s\n", rec.SecondaryArchetype))
	sb.WriteString(fmt.Sprintf("Budget:    %s\n", rec.BudgetTier))
	if len(rec.ColorPalette) > 0 {
		sb.WriteString(fmt.Sprintf("Palette:   %s\n", strings.Join(rec.ColorPalette, " ")))
	}
	if len(rec.Avoid) > 0 {
		sb.WriteString(fmt.Sprintf("Avoid:     %s\n", strings.Join(rec.Avoid, ", ")))
	}
	if rec.StyleNotes != "" {
		sb.WriteString(fmt.Sprintf("\n%s", rec.StyleNotes))
	}

	p.printBox("STYLE RECOMMENDATION", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintShoppingResult outputs the top ranked products and outfit count.
func (p *Printer) PrintShoppingResult(result *types.ShoppingResult) {
	if result == nil {
		return
	}

	var sb strings.Builder
	total := len(result.FreeRecommendations) + len(result.PremiumRecommendations)
	sb.WriteString(fmt.Sprintf("Ranked products: %d (%d free tier)\n\n", total, len(result.FreeRecommendations)))

	ranked := append(append([]types.ScoredProduct{}, result.FreeRecommendations...), result.PremiumRecommendations...)
	count := min(len(ranked), maxItemsToShow)
	for i := 0; i < count; i++ {
		prod := ranked[i]
		sb.WriteString(fmt.Sprintf("#%d  %s — %s\n", i+1, prod.Name, prod.Brand))
		sb.WriteString(fmt.Sprintf("    Score: %d  ($%.0f, %s)\n", prod.MatchScore, prod.Price, prod.Category))
	}
	if len(ranked) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("... and %d more\n", len(ranked)-maxItemsToShow))
	}
	if len(result.Outfits) > 0 {
		sb.WriteString(fmt.Sprintf("\nOutfits: %d\n", len(result.Outfits)))
		for _, outfit := range result.Outfits {
			sb.WriteString(fmt.Sprintf("  • %s (%s)\n", outfit.Name, outfit.Occasion))
		}
	}

	p.printBox("PRODUCT MATCHES", strings.TrimSuffix(sb.String(), "\n"))
}
