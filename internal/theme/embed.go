// Package theme provides color themes for the terminal renderer, loaded
// from embedded JSON.
package theme

import "embed"

// dataFS embeds the theme definitions at build time.
//
//go:embed themes.json
var dataFS embed.FS
