package privacy

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// msgFrom is the connective between the rule type and its source.
const msgFrom = "from"

// Catalog holds the translations of the rule list.
var Catalog = newCatalog()

// SupportedLanguages lists the languages with a translation.
var SupportedLanguages = []language.Tag{
	language.English,
	language.German,
	language.French,
	language.Spanish,
}

func newCatalog() *catalog.Builder {
	b := catalog.NewBuilder(catalog.Fallback(language.English))
	translations := map[language.Tag]string{
		language.English: "from",
		language.German:  "aus",
		language.French:  "de",
		language.Spanish: "de",
	}
	for tag, text := range translations {
		if err := b.SetString(tag, msgFrom, text); err != nil {
			panic(fmt.Sprintf("privacy: register %s translation: %v", tag, err))
		}
	}
	return b
}

// NewPrinter returns a printer for the best supported match of lang.
// An empty or unparsable lang yields English.
func NewPrinter(lang string) *message.Printer {
	tag := language.English
	if lang != "" {
		if parsed, err := language.Parse(lang); err == nil {
			matcher := language.NewMatcher(SupportedLanguages)
			_, idx, _ := matcher.Match(parsed)
			tag = SupportedLanguages[idx]
		}
	}
	return message.NewPrinter(tag, message.Catalog(Catalog))
}
