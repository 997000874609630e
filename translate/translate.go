// Package translate formats user visible messages (errors, notices) with
// the printer matching the host locale.
package translate

import (
	"log"

	"github.com/jeandeaual/go-locale"

	"golang.org/x/text/message"
)

var printer *message.Printer

func init() {
	locales, err := locale.GetLocales()
	if err != nil {
		log.Printf("tms9900soc: locale: %v", err)
	}

	if len(locales) == 0 {
		locales = []string{"en-US"}
	}

	printer = message.NewPrinter(message.MatchLanguage(locales...))
}

// From an en-US Sprintf() format, translate to string.
func From(key message.Reference, args ...any) string {
	return printer.Sprintf(key, args...)
}

// Hz formats a frequency as an integral number of hertz, with the locale's
// digit grouping.
func Hz(hz int) string {
	return printer.Sprintf("%d Hz", hz)
}
