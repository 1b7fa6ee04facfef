package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/edouardpoitras/osm-geo-mapper/pkg/geotiles"
)

// =============================================================================
// Color Palette
// =============================================================================

var (
	colorCyan   = lipgloss.Color("36")  // Teal - primary actions
	colorGreen  = lipgloss.Color("35")  // Green - success
	colorYellow = lipgloss.Color("220") // Amber - warnings
	colorRed    = lipgloss.Color("167") // Soft red - errors
	colorBlue   = lipgloss.Color("75")  // Light blue - water
	colorWhite  = lipgloss.Color("255") // Bright white - values
	colorGray   = lipgloss.Color("245") // Gray - secondary text
	colorDim    = lipgloss.Color("240") // Dim gray - muted text
	colorBrown  = lipgloss.Color("137") // Brown - built and historic
	colorOlive  = lipgloss.Color("106") // Olive - vegetation
	colorPink   = lipgloss.Color("175") // Pink - commerce
	colorPurple = lipgloss.Color("141") // Purple - infrastructure
)

// =============================================================================
// Styles
// =============================================================================

var (
	styleTitle     = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	styleDim       = lipgloss.NewStyle().Foreground(colorDim)
	styleValue     = lipgloss.NewStyle().Foreground(colorWhite)
	styleNumber    = lipgloss.NewStyle().Foreground(colorCyan)
	styleWarning   = lipgloss.NewStyle().Foreground(colorYellow)
	styleIconOK    = lipgloss.NewStyle().Foreground(colorGreen)
	styleIconError = lipgloss.NewStyle().Foreground(colorRed)
	styleIconInfo  = lipgloss.NewStyle().Foreground(colorGray)
	styleCursor    = lipgloss.NewStyle().Reverse(true)
	stylePanel     = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorDim).
			Padding(0, 1)
)

// =============================================================================
// Icons
// =============================================================================

const (
	iconSuccess = "✓"
	iconError   = "✗"
	iconInfo    = "›"
	iconEmpty   = "·"
)

// =============================================================================
// Status Output
// =============================================================================

func printSuccess(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, styleIconOK.Render(iconSuccess)+" "+fmt.Sprintf(format, args...))
}

func printError(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, styleIconError.Render(iconError)+" "+styleWarning.Render(fmt.Sprintf(format, args...)))
}

func printInfo(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, styleIconInfo.Render(iconInfo)+" "+fmt.Sprintf(format, args...))
}

func printDetail(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, "  "+styleDim.Render(fmt.Sprintf(format, args...)))
}

// =============================================================================
// Category Theme
// =============================================================================

// glyph is how one category is drawn in the viewer.
type glyph struct {
	Symbol string
	Color  lipgloss.Color
}

var theme = map[geotiles.Category]glyph{
	geotiles.CategoryUnclassified:    {"?", colorDim},
	geotiles.CategoryAerialway:       {"~", colorPurple},
	geotiles.CategoryAeroway:         {"+", colorPurple},
	geotiles.CategoryAmenity:         {"a", colorYellow},
	geotiles.CategoryBarrier:         {"#", colorGray},
	geotiles.CategoryBoundary:        {":", colorDim},
	geotiles.CategoryBuilding:        {"B", colorBrown},
	geotiles.CategoryCraft:           {"c", colorPink},
	geotiles.CategoryEmergency:       {"!", colorRed},
	geotiles.CategoryGeological:      {"g", colorBrown},
	geotiles.CategoryHealthcare:      {"H", colorRed},
	geotiles.CategoryHighway:         {"=", colorWhite},
	geotiles.CategoryHistoric:        {"h", colorBrown},
	geotiles.CategoryLanduse:         {",", colorOlive},
	geotiles.CategoryLeisure:         {"l", colorGreen},
	geotiles.CategoryManMade:         {"m", colorGray},
	geotiles.CategoryMilitary:        {"X", colorRed},
	geotiles.CategoryNatural:         {"n", colorOlive},
	geotiles.CategoryOffice:          {"o", colorPink},
	geotiles.CategoryPlace:           {"*", colorCyan},
	geotiles.CategoryPower:           {"p", colorYellow},
	geotiles.CategoryPublicTransport: {"T", colorCyan},
	geotiles.CategoryRailway:         {"%", colorPurple},
	geotiles.CategoryRoute:           {"r", colorCyan},
	geotiles.CategoryShop:            {"$", colorPink},
	geotiles.CategorySport:           {"s", colorGreen},
	geotiles.CategoryTelecom:         {"t", colorPurple},
	geotiles.CategoryTourism:         {"i", colorCyan},
	geotiles.CategoryWater:           {"w", colorBlue},
	geotiles.CategoryWaterway:        {"~", colorBlue},
}

// glyphOf returns the glyph for c, falling back to the unclassified one.
func glyphOf(c geotiles.Category) glyph {
	if g, ok := theme[c]; ok {
		return g
	}
	return theme[geotiles.CategoryUnclassified]
}

// renderGlyph draws the colored symbol of c.
func renderGlyph(c geotiles.Category) string {
	g := glyphOf(c)
	return lipgloss.NewStyle().Foreground(g.Color).Render(g.Symbol)
}

// describeCell lists every feature of a cell, top first, one per line with
// its address and attributes indented below.
func describeCell(cell []*geotiles.Feature) string {
	if len(cell) == 0 {
		return styleDim.Render("nothing here")
	}
	var b strings.Builder
	for i, f := range cell {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "%s %s %s",
			renderGlyph(f.Category()),
			styleValue.Render(f.String()),
			styleDim.Render("("+f.Tier().String()+")"))
		if addr := f.Address(); addr != nil {
			fmt.Fprintf(&b, "\n    %s", addr)
		}
		for _, k := range f.SortedAttributeKeys() {
			if k == "name" {
				continue
			}
			v, _ := f.Attribute(k)
			fmt.Fprintf(&b, "\n    %s", styleDim.Render(k+"="+v))
		}
	}
	return b.String()
}
