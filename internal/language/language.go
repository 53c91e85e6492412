package language

import (
	"sort"
)

// Language is one entry of the supported-language catalog.
type Language struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// Languages is the catalog of languages offered by the picker, keyed by code.
// It is the single source of truth: the web UI and the CLI both list from
// here, and nothing else in the tree carries its own language list.
var Languages = map[string]Language{
	"ar": {Code: "ar", Name: "Arabic"},
	"de": {Code: "de", Name: "German"},
	"el": {Code: "el", Name: "Greek"},
	"es": {Code: "es", Name: "Spanish"},
	"fr": {Code: "fr", Name: "French"},
	"hi": {Code: "hi", Name: "Hindi"},
	"id": {Code: "id", Name: "Indonesian"},
	"it": {Code: "it", Name: "Italian"},
	"ja": {Code: "ja", Name: "Japanese"},
	"ko": {Code: "ko", Name: "Korean"},
	"nl": {Code: "nl", Name: "Dutch"},
	"pl": {Code: "pl", Name: "Polish"},
	"pt": {Code: "pt", Name: "Portuguese"},
	"ru": {Code: "ru", Name: "Russian"},
	"sv": {Code: "sv", Name: "Swedish"},
	"th": {Code: "th", Name: "Thai"},
	"tr": {Code: "tr", Name: "Turkish"},
	"vi": {Code: "vi", Name: "Vietnamese"},
	"zh": {Code: "zh", Name: "Chinese (Simplified)"},
}

// GetLanguage returns the catalog entry for code, strict match only.
func GetLanguage(code string) (Language, bool) {
	lang, ok := Languages[code]
	return lang, ok
}

// GetSupportedLanguages returns the catalog sorted by Name and then Code.
func GetSupportedLanguages() []Language {
	entries := make([]Language, 0, len(Languages))
	for _, v := range Languages {
		entries = append(entries, v)
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Name != entries[j].Name {
			return entries[i].Name < entries[j].Name
		}
		return entries[i].Code < entries[j].Code
	})
	return entries
}
