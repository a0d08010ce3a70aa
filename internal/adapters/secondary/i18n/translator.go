package i18n

import (
	"embed"
	"fmt"
	"path"
	"strings"

	log "github.com/sirupsen/logrus"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	ports "portfolio-gallery-service/internal/core/ports/output"
)

//go:embed locales/*.yaml
var locales embed.FS

type translator struct {
	bundles  map[string]map[string]string
	tags     []language.Tag
	matcher  language.Matcher
	fallback string
}

// NewTranslator loads the embedded locale bundles. defaultLang is used when
// a request names no supported language; it must be one of the bundles.
func NewTranslator(defaultLang string) (ports.Translator, error) {
	entries, err := locales.ReadDir("locales")
	if err != nil {
		return nil, fmt.Errorf("read locales: %w", err)
	}

	bundles := make(map[string]map[string]string, len(entries))
	for _, e := range entries {
		lang := strings.TrimSuffix(e.Name(), path.Ext(e.Name()))
		data, err := locales.ReadFile(path.Join("locales", e.Name()))
		if err != nil {
			return nil, fmt.Errorf("read locale %s: %w", lang, err)
		}
		msgs := make(map[string]string)
		if err := yaml.Unmarshal(data, &msgs); err != nil {
			return nil, fmt.Errorf("parse locale %s: %w", lang, err)
		}
		bundles[lang] = msgs
	}

	if _, ok := bundles[defaultLang]; !ok {
		return nil, fmt.Errorf("default language %q has no locale bundle", defaultLang)
	}

	// The matcher prefers its first tag when nothing matches.
	tags := []language.Tag{language.Make(defaultLang)}
	for lang := range bundles {
		if lang != defaultLang {
			tags = append(tags, language.Make(lang))
		}
	}

	log.WithField("languages", len(bundles)).Debug("locale bundles loaded")

	return &translator{
		bundles:  bundles,
		tags:     tags,
		matcher:  language.NewMatcher(tags),
		fallback: defaultLang,
	}, nil
}

// Translate resolves key in the bundle best matching lang, which may be a
// bare tag ("es-MX") or an Accept-Language value. Unknown keys come back
// unchanged.
func (t *translator) Translate(lang, key string) string {
	if msg, ok := t.bundles[t.resolve(lang)][key]; ok {
		return msg
	}
	if msg, ok := t.bundles[t.fallback][key]; ok {
		return msg
	}
	return key
}

func (t *translator) Languages() []string {
	out := make([]string, 0, len(t.tags))
	for _, tag := range t.tags {
		out = append(out, tag.String())
	}
	return out
}

func (t *translator) resolve(lang string) string {
	if lang == "" {
		return t.fallback
	}
	prefs, _, err := language.ParseAcceptLanguage(lang)
	if err != nil || len(prefs) == 0 {
		return t.fallback
	}
	_, idx, conf := t.matcher.Match(prefs...)
	if conf == language.No {
		return t.fallback
	}
	return t.tags[idx].String()
}
