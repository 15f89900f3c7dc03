package palette

import (
	"fmt"
	"sort"

	"github.com/lucasb-eyer/go-colorful"
)

// Theme is a named candidate list with its canvas background.
type Theme struct {
	Name       string
	Background Color
	Colors     []Color
}

// DefaultTheme is used when no theme is selected.
const DefaultTheme = "classic"

func mustParseHex(hex string) colorful.Color {
	c, err := colorful.Hex(hex)
	if err != nil {
		panic(err)
	}
	return c
}

func named(name, hex string) Color {
	return Color{Name: name, Color: mustParseHex(hex)}
}

// themes are the built-in palettes. Candidate lists deliberately
// include some colors that the background-name and saturation filters
// will remove; the filters are part of the contract, not a data bug.
var themes = map[string]Theme{
	"classic": {
		Name:       "classic",
		Background: named("White", "#ffffff"),
		Colors: []Color{
			named("Crimson", "#dc143c"),
			named("Royal Blue", "#4169e1"),
			named("Forest Green", "#228b22"),
			named("Dark Orange", "#ff8c00"),
			named("Purple", "#800080"),
			named("Teal", "#008080"),
			named("Goldenrod", "#daa520"),
			named("Firebrick", "#b22222"),
			named("Navy", "#000080"),
			named("Sea Green", "#2e8b57"),
			named("Chocolate", "#d2691e"),
			named("Medium Violet Red", "#c71585"),
		},
	},
	"midnight": {
		Name:       "midnight",
		Background: named("Black", "#000000"),
		Colors: []Color{
			named("Cyan", "#00ffff"),
			named("Magenta", "#ff00ff"),
			named("Yellow", "#ffff00"),
			named("Spring Green", "#00ff7f"),
			named("Deep Pink", "#ff1493"),
			named("Orange Red", "#ff4500"),
			named("Dodger Blue", "#1e90ff"),
			named("Chartreuse", "#7fff00"),
			named("Gold", "#ffd700"),
			named("Tomato", "#ff6347"),
		},
	},
	"ocean": {
		Name:       "ocean",
		Background: named("Alice Blue", "#f0f8ff"),
		Colors: []Color{
			named("Deep Sea", "#014f86"),
			named("Marine", "#2a6f97"),
			named("Wave", "#2c7da0"),
			named("Lagoon", "#468faf"),
			named("Surf", "#61a5c2"),
			named("Kelp", "#2d6a4f"),
			named("Coral", "#ff7f50"),
			named("Sandbar", "#e9c46a"),
		},
	},
	"mono": {
		Name:       "mono",
		Background: named("White", "#ffffff"),
		Colors: []Color{
			named("Ink", "#111111"),
			named("Charcoal", "#333333"),
			named("Slate", "#555555"),
			named("Ash", "#777777"),
			named("Silver", "#999999"),
		},
	},
}

// LookupTheme returns a built-in theme by name.
func LookupTheme(name string) (Theme, error) {
	if name == "" {
		name = DefaultTheme
	}
	t, ok := themes[name]
	if !ok {
		return Theme{}, fmt.Errorf("unknown theme %q (available: %v)", name, ThemeNames())
	}
	return t, nil
}

// ThemeNames lists the built-in themes in sorted order.
func ThemeNames() []string {
	names := make([]string, 0, len(themes))
	for name := range themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
