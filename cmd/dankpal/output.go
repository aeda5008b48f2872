package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/AvengeMedia/dankpalette/internal/theme"
	"github.com/AvengeMedia/dankpalette/internal/tui"
)

const (
	formatText = "text"
	formatJSON = "json"
	formatEnv  = "env"
)

func writeTheme(w io.Writer, d theme.DualTheme, format string) error {
	switch strings.ToLower(format) {
	case formatJSON:
		data, err := json.MarshalIndent(d, "", "  ")
		if err != nil {
			return fmt.Errorf("encode theme: %w", err)
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	case formatEnv:
		for _, m := range []theme.Mode{theme.Light, theme.Dark} {
			side := d.Side(m)
			for _, tok := range theme.AllTokens() {
				if _, err := fmt.Fprintf(w, "DANKPAL_%s_%s=%s\n", strings.ToUpper(m.String()), envName(tok), side[tok]); err != nil {
					return err
				}
			}
		}
		return nil
	case formatText, "":
		if _, err := fmt.Fprintf(w, "# mode %s, seed %s\n", d.Mode, d.Seed); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "%-12s  %-7s  %s\n", "token", "light", "dark"); err != nil {
			return err
		}
		for _, tok := range theme.AllTokens() {
			if _, err := fmt.Fprintf(w, "%-12s  %s  %s\n", tok, d.Light[tok], d.Dark[tok]); err != nil {
				return err
			}
		}
		return nil
	default:
		return fmt.Errorf("unknown format %q (text, json or env)", format)
	}
}

// envName turns camelCase token names into SCREAMING_SNAKE.
func envName(tok theme.Token) string {
	var b strings.Builder
	for i, r := range tok.String() {
		if r >= 'A' && r <= 'Z' && i > 0 {
			b.WriteByte('_')
		}
		b.WriteRune(r)
	}
	return strings.ToUpper(b.String())
}

func writePreview(w io.Writer, d theme.DualTheme) {
	fmt.Fprintln(w)
	fmt.Fprint(w, tui.RenderPreview(d.Light, "light"))
	fmt.Fprintln(w)
	fmt.Fprint(w, tui.RenderPreview(d.Dark, "dark"))
}
