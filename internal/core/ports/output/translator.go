package ports

// Translator resolves an opaque lookup key (a category value, a year) to
// display text for lang. Unknown keys come back unchanged.
type Translator interface {
	Translate(lang, key string) string
	Languages() []string
}
