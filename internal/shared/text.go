package shared

import (
	"github.com/mattn/go-runewidth"
)

// Ellipsize shortens s to at most width terminal cells, ending it with "..." when
// anything was cut.
func Ellipsize(s string, width int) string {
	return runewidth.Truncate(s, width, "...")
}
