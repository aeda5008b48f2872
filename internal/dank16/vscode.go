package dank16

import (
	"encoding/json"
	"fmt"
	"slices"
	"strings"
)

type VSCodeTheme struct {
	Schema               string                        `json:"$schema"`
	Name                 string                        `json:"name"`
	Type                 string                        `json:"type"`
	Colors               map[string]string             `json:"colors"`
	TokenColors          []VSCodeTokenColor            `json:"tokenColors"`
	SemanticHighlighting bool                          `json:"semanticHighlighting"`
	SemanticTokenColors  map[string]VSCodeTokenSetting `json:"semanticTokenColors"`
}

type VSCodeTokenColor struct {
	Scope    []string           `json:"scope"`
	Settings VSCodeTokenSetting `json:"settings"`
}

type VSCodeTokenSetting struct {
	Foreground string `json:"foreground,omitempty"`
	FontStyle  string `json:"fontStyle,omitempty"`
}

var terminalKeys = [Size]string{
	"terminal.ansiBlack", "terminal.ansiRed", "terminal.ansiGreen", "terminal.ansiYellow",
	"terminal.ansiBlue", "terminal.ansiMagenta", "terminal.ansiCyan", "terminal.ansiWhite",
	"terminal.ansiBrightBlack", "terminal.ansiBrightRed", "terminal.ansiBrightGreen", "terminal.ansiBrightYellow",
	"terminal.ansiBrightBlue", "terminal.ansiBrightMagenta", "terminal.ansiBrightCyan", "terminal.ansiBrightWhite",
}

// scopeColors maps TextMate scopes to palette indices.
var scopeColors = map[string]int{
	"comment":                        8,
	"punctuation.definition.comment": 8,
	"keyword":                        5,
	"storage.type":                   13,
	"storage.modifier":               5,
	"variable":                       15,
	"meta.object-literal.key":        15,
	"string":                         3,
	"constant.other.symbol":          3,
	"constant.numeric":               3,
	"constant.language":              11,
	"constant.character":             3,
	"entity.name.type":               12,
	"support.type":                   13,
	"entity.name.class":              12,
	"entity.name.function":           2,
	"support.function":               2,
	"support.class":                  15,
	"support.variable":               15,
	"variable.language":              11,
	"invalid":                        9,
}

var semanticColors = map[string]int{
	"variable":          7,
	"variable.readonly": 11,
	"property":          7,
	"function":          2,
	"method":            2,
	"type":              12,
	"class":             12,
	"typeParameter":     13,
	"enumMember":        11,
	"string":            3,
	"number":            3,
	"comment":           8,
	"keyword":           5,
	"operator":          15,
	"parameter":         14,
	"namespace":         15,
}

func themeType(isLight bool) string {
	if isLight {
		return "light"
	}
	return "dark"
}

// GenerateVSCodeTheme builds a workbench and syntax theme from a 16 color
// palette as returned by FromTheme.
func GenerateVSCodeTheme(name string, colors []string, isLight bool) (VSCodeTheme, error) {
	if len(colors) != Size {
		return VSCodeTheme{}, fmt.Errorf("vscode theme needs %d colors, got %d", Size, len(colors))
	}

	t := VSCodeTheme{
		Schema: "vscode://schemas/color-theme",
		Name:   name,
		Type:   themeType(isLight),
		Colors: map[string]string{
			"editor.background":                 colors[0],
			"editor.foreground":                 colors[15],
			"editorLineNumber.foreground":       colors[8],
			"editorLineNumber.activeForeground": colors[7],
			"editorCursor.foreground":           colors[4],
			"editor.selectionBackground":        colors[8] + "60",
			"editor.lineHighlightBackground":    colors[8] + "20",
			"activityBar.background":            colors[0],
			"activityBar.foreground":            colors[15],
			"activityBarBadge.background":       colors[4],
			"sideBar.background":                colors[0],
			"sideBar.foreground":                colors[7],
			"statusBar.background":              colors[0],
			"statusBar.foreground":              colors[7],
			"tab.activeBorder":                  colors[4],
			"titleBar.activeBackground":         colors[0],
			"titleBar.activeForeground":         colors[15],
			"button.background":                 colors[4],
			"button.hoverBackground":            colors[12],
			"focusBorder":                       colors[4],
			"editorError.foreground":            colors[1],
			"editorWarning.foreground":          colors[3],
			"editorInfo.foreground":             colors[4],
			"editorGutter.addedBackground":      colors[2],
			"editorGutter.modifiedBackground":   colors[6],
			"editorGutter.deletedBackground":    colors[1],
			"terminal.background":               colors[0],
			"terminal.foreground":               colors[15],
		},
		SemanticHighlighting: true,
		SemanticTokenColors:  make(map[string]VSCodeTokenSetting, len(semanticColors)),
	}
	for i, key := range terminalKeys {
		t.Colors[key] = colors[i]
	}

	for scope, idx := range scopeColors {
		setting := VSCodeTokenSetting{Foreground: colors[idx]}
		if idx == 8 {
			setting.FontStyle = "italic"
		}
		t.TokenColors = append(t.TokenColors, VSCodeTokenColor{Scope: []string{scope}, Settings: setting})
	}
	sortTokenColors(t.TokenColors)

	for key, idx := range semanticColors {
		t.SemanticTokenColors[key] = VSCodeTokenSetting{Foreground: colors[idx]}
	}
	return t, nil
}

func sortTokenColors(tcs []VSCodeTokenColor) {
	slices.SortFunc(tcs, func(a, b VSCodeTokenColor) int {
		return strings.Compare(a.Scope[0], b.Scope[0])
	})
}

// EnrichVSCodeTheme rewrites the terminal, syntax and semantic colors of an
// existing VSCode theme document with the palette, leaving everything else
// as it was.
func EnrichVSCodeTheme(themeData []byte, colors []string) ([]byte, error) {
	if len(colors) != Size {
		return nil, fmt.Errorf("enrich needs %d colors, got %d", Size, len(colors))
	}

	var doc map[string]any
	if err := json.Unmarshal(themeData, &doc); err != nil {
		return nil, fmt.Errorf("parse vscode theme: %w", err)
	}

	colorsMap, ok := doc["colors"].(map[string]any)
	if !ok {
		colorsMap = make(map[string]any)
		doc["colors"] = colorsMap
	}
	doc["type"] = themeType(IsLightBackground(colors[0]))
	for i, key := range terminalKeys {
		colorsMap[key] = colors[i]
	}

	if tokenColors, ok := doc["tokenColors"].([]any); ok {
		for _, tc := range tokenColors {
			updateTokenColor(tc, colors)
		}
	}

	semantic, ok := doc["semanticTokenColors"].(map[string]any)
	if !ok {
		semantic = make(map[string]any)
		doc["semanticTokenColors"] = semantic
	}
	for key, idx := range semanticColors {
		if existing, ok := semantic[key].(map[string]any); ok {
			existing["foreground"] = colors[idx]
			continue
		}
		semantic[key] = map[string]any{"foreground": colors[idx]}
	}

	return json.MarshalIndent(doc, "", "  ")
}

func updateTokenColor(tc any, colors []string) {
	tcMap, ok := tc.(map[string]any)
	if !ok {
		return
	}
	scopes, ok := tcMap["scope"].([]any)
	if !ok {
		return
	}
	settings, ok := tcMap["settings"].(map[string]any)
	if !ok {
		return
	}
	for _, scope := range scopes {
		if applyColorToScope(settings, scope, colors) {
			break
		}
	}
}

func applyColorToScope(settings map[string]any, scope any, colors []string) bool {
	scopeStr, ok := scope.(string)
	if !ok {
		return false
	}
	idx, exists := scopeColors[scopeStr]
	if !exists {
		return false
	}
	settings["foreground"] = colors[idx]
	return true
}
