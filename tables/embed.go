// Package tables provides the standard syllable tables, embedded at build time.
package tables

import "embed"

// defFS embeds all table definitions from this directory.
//
//go:embed *.kana
var defFS embed.FS
