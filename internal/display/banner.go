package display

import (
	"fmt"
	"io"

	"github.com/backmassage/slugren/internal/term"
)

// PrintBanner prints the ASCII art banner; painted with the banner style when colors are enabled.
func PrintBanner(w io.Writer) {
	fmt.Fprint(w, term.Banner)
	fmt.Fprint(w, `     _
 ___| |_   _  __ _ _ __ ___ _ __
/ __| | | | |/ _`+"`"+` | '__/ _ \ '_ \
\__ \ | |_| | (_| | | |  __/ | | |
|___/_|\__,_|\__, |_|  \___|_| |_|
             |___/
`)
	if term.Enabled() {
		fmt.Fprintln(w, term.Reset)
	}
}
