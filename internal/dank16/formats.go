package dank16

import (
	"fmt"
	"strings"
)

var ansiNames = [8]string{"black", "red", "green", "yellow", "blue", "magenta", "cyan", "white"}

// KittyTheme renders colorN lines for kitty.conf.
func KittyTheme(colors []string) string {
	var sb strings.Builder
	for i, c := range colors {
		fmt.Fprintf(&sb, "color%d   %s\n", i, c)
	}
	return sb.String()
}

// FootTheme renders the [colors] entries for foot.ini. Foot wants bare hex.
func FootTheme(colors []string) string {
	var sb strings.Builder
	for i, c := range colors {
		row := "regular"
		if i >= 8 {
			row = "bright"
		}
		fmt.Fprintf(&sb, "%s%d=%s\n", row, i%8, strings.TrimPrefix(c, "#"))
	}
	return sb.String()
}

func AlacrittyTheme(colors []string) string {
	var sb strings.Builder
	for row, title := range []string{"normal", "bright"} {
		if row > 0 {
			sb.WriteString("\n")
		}
		fmt.Fprintf(&sb, "[colors.%s]\n", title)
		for i, name := range ansiNames {
			fmt.Fprintf(&sb, "%-7s = '%s'\n", name, colors[row*8+i])
		}
	}
	return sb.String()
}

// GhosttyTheme renders palette entries for a ghostty config file.
func GhosttyTheme(colors []string) string {
	var sb strings.Builder
	for i, c := range colors {
		fmt.Fprintf(&sb, "palette = %d=%s\n", i, c)
	}
	return sb.String()
}
