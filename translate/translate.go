// Package translate renders user facing error and explanatory text in the
// user's locale.
package translate

import (
	"log"
	"sync"

	"github.com/jeandeaual/go-locale"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var (
	printerLock sync.RWMutex
	printer     *message.Printer
)

func init() {
	locales, err := locale.GetLocales()
	if err != nil {
		log.Printf("x86sim: locale: %v", err)
	}

	if len(locales) == 0 {
		locales = []string{"en-US"}
	}

	printer = message.NewPrinter(message.MatchLanguage(locales...))
}

// SetLanguage forces the message language, overriding the detected locale.
// An empty name keeps the current printer.
func SetLanguage(name string) (err error) {
	if len(name) == 0 {
		return
	}

	tag, err := language.Parse(name)
	if err != nil {
		return
	}

	printerLock.Lock()
	printer = message.NewPrinter(tag)
	printerLock.Unlock()

	return
}

// From an en-US Sprintf() format, translate to string.
func From(key message.Reference, args ...any) string {
	printerLock.RLock()
	defer printerLock.RUnlock()

	return printer.Sprintf(key, args...)
}
