// Package display provides the startup banner and the trailing report
// tables for unparseable and suspected-duplicate files.
package display

import (
	"fmt"
	"os"

	"github.com/jungleberrydev/comicRenamer/internal/term"
)

// PrintBanner prints the ASCII art banner; uses Magenta if colors are enabled.
func PrintBanner() {
	if term.Enabled() {
		fmt.Fprint(os.Stdout, term.Magenta)
	}
	fmt.Fprint(os.Stdout, `  ____                    _        ____
 / ___|  ___   _ __ ___  (_)  ___ |  _ \   ___  _ __    __ _  _ __ ___    ___  _ __
| |     / _ \ | '_ `+"`"+` _ \ | | / __|| |_) | / _ \| '_ \  / _`+"`"+` || '_ `+"`"+` _ \  / _ \| '__|
| |___ | (_) || | | | | || || (__ |  _ < |  __/| | | || (_| || | | | | ||  __/| |
 \____| \___/ |_| |_| |_||_| \___||_| \_\ \___||_| |_| \__,_||_| |_| |_| \___||_|
`)
	if term.Enabled() {
		fmt.Fprintln(os.Stdout, term.NC)
	}
}
