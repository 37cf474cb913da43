package commands

import (
	"github.com/mgutz/ansi"

	"github.com/pivotal-cf/smartguard/audit"
)

var (
	red    = ansi.ColorFunc("red+b")
	yellow = ansi.ColorFunc("yellow+b")
	green  = ansi.ColorFunc("green+b")
	cyan   = ansi.ColorFunc("cyan+b")
)

func colorRating(rating audit.Rating) string {
	switch rating {
	case audit.Critical, audit.VeryWeak, audit.Weak:
		return red(string(rating))
	case audit.Moderate:
		return yellow(string(rating))
	default:
		return green(string(rating))
	}
}
