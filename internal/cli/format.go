package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
)

var (
	// fatih/color disables these when stdout is not a TTY
	successColor = color.New(color.FgGreen, color.Bold)
	warningColor = color.New(color.FgYellow, color.Bold)
	errorColor   = color.New(color.FgRed, color.Bold)
	infoColor    = color.New(color.FgCyan)
	headerColor  = color.New(color.FgBlue, color.Bold)
	labelColor   = color.New(color.FgWhite, color.Bold)
	valueColor   = color.New(color.FgHiBlack)
	dimColor     = color.New(color.FgHiBlack)

	// Grid glyph colors
	tileColor   = color.New(color.FgYellow)
	enemyColor  = color.New(color.FgRed, color.Bold)
	agentColor  = color.New(color.FgGreen, color.Bold)
	pathColor   = color.New(color.FgCyan)
	targetColor = color.New(color.FgMagenta, color.Bold)
)

// PrintSection prints a section header
func PrintSection(title string) {
	fmt.Println()
	_, _ = headerColor.Printf("▸ %s\n", title)
	fmt.Println()
}

// PrintSuccess prints a success message with a checkmark
func PrintSuccess(msg string) {
	_, _ = successColor.Printf("✓ %s\n", msg)
}

// PrintWarning prints a warning message with a warning symbol
func PrintWarning(msg string) {
	_, _ = warningColor.Printf("⚠ %s\n", msg)
}

// PrintError prints an error message to stderr
func PrintError(msg string) {
	_, _ = errorColor.Fprintf(os.Stderr, "✗ %s\n", msg)
}

// PrintInfo prints an informational message
func PrintInfo(msg string) {
	fmt.Println(msg)
}

// PrintVerbose prints a diagnostic line to stderr when --verbose is set
func PrintVerbose(format string, args ...any) {
	if !verbose {
		return
	}
	_, _ = dimColor.Fprintf(os.Stderr, "  "+format+"\n", args...)
}

// PrintLabelValue prints a label-value pair with proper formatting
func PrintLabelValue(label, value string) {
	_, _ = labelColor.Printf("  %s: ", label)
	_, _ = valueColor.Println(value)
}

// PrintList prints a list of items with bullet points
func PrintList(items []string, indent int) {
	indentStr := strings.Repeat("  ", indent)
	for _, item := range items {
		_, _ = infoColor.Printf("%s• %s\n", indentStr, item)
	}
}

// PrintGrid prints a rendered grid with each glyph colored by cell kind
func PrintGrid(rendered string) {
	fmt.Print(colorGrid(rendered))
}

// colorGrid colors the glyphs of a rendered grid. Empty cells stay dim.
func colorGrid(rendered string) string {
	var b strings.Builder
	b.Grow(len(rendered) * 2)
	for _, line := range strings.SplitAfter(rendered, "\n") {
		if line == "" {
			continue
		}
		b.WriteString("  ")
		for _, r := range line {
			glyph := string(r)
			switch r {
			case '#':
				b.WriteString(tileColor.Sprint(glyph))
			case 'E':
				b.WriteString(enemyColor.Sprint(glyph))
			case '@':
				b.WriteString(agentColor.Sprint(glyph))
			case '*':
				b.WriteString(pathColor.Sprint(glyph))
			case 'X':
				b.WriteString(targetColor.Sprint(glyph))
			case '.':
				b.WriteString(dimColor.Sprint(glyph))
			default:
				b.WriteString(glyph)
			}
		}
	}
	return b.String()
}

// PrintCount prints a count with proper formatting
func PrintCount(count int, singular, plural string) string {
	if count == 1 {
		return fmt.Sprintf("%d %s", count, singular)
	}
	return fmt.Sprintf("%d %s", count, plural)
}
