// Package locale resolves message keys to display strings for the
// deletion-denial reasons and the statistics table labels.
package locale

import (
	"embed"
	"encoding/json"
	"fmt"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"

	"github.com/annothub/annotator-backend/internal/domain"
)

//go:embed catalogs/*.json
var catalogsFS embed.FS

// catalog files bundled with the binary.
var catalogFiles = []string{"catalogs/en.json", "catalogs/de.json"}

// Translator resolves domain message keys for one display language.
type Translator struct {
	localizer *i18n.Localizer
}

// New loads the embedded catalogs and returns a Translator for lang
// (BCP 47 tag, e.g. "en" or "de"). Unknown languages fall back to English.
func New(lang string) (*Translator, error) {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("json", json.Unmarshal)

	for _, path := range catalogFiles {
		if _, err := bundle.LoadMessageFileFS(catalogsFS, path); err != nil {
			return nil, fmt.Errorf("locale: load %s: %w", path, err)
		}
	}

	return &Translator{
		localizer: i18n.NewLocalizer(bundle, lang, language.English.String()),
	}, nil
}

// Resolve returns the display string for key. If the key is unknown the key
// itself is returned, so a missing catalog entry stays visible instead of
// breaking the caller.
func (t *Translator) Resolve(key domain.MessageKey) string {
	msg, err := t.localizer.Localize(&i18n.LocalizeConfig{MessageID: string(key)})
	if err != nil {
		return string(key)
	}
	return msg
}
