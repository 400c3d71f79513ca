package paint

import "strings"

// names maps symbolic color names to their hex equivalents.
// The table is process-wide read-only static data; lookups never mutate it.
var names = map[string]string{
	"black":   "#000000",
	"blue":    "#0000ff",
	"brown":   "#a52a2a",
	"cyan":    "#00ffff",
	"gray":    "#808080",
	"green":   "#00ff00",
	"grey":    "#808080",
	"magenta": "#ff00ff",
	"orange":  "#ffa500",
	"pink":    "#ffc0cb",
	"purple":  "#800080",
	"red":     "#ff0000",
	"white":   "#ffffff",
	"yellow":  "#ffff00",
}

// Lookup returns the hex value for a symbolic color name.
// The lookup is case-insensitive.
func Lookup(name string) (string, bool) {
	hex, ok := names[strings.ToLower(name)]
	return hex, ok
}

// Names returns all symbolic color names in the table.
func Names() []string {
	out := make([]string, 0, len(names))
	for name := range names {
		out = append(out, name)
	}
	return out
}
