package services

import (
	"sync"

	"github.com/pemistahl/lingua-go"
)

var buildDetector = sync.OnceValue(func() lingua.LanguageDetector {
	return lingua.NewLanguageDetectorBuilder().
		FromAllSpokenLanguages().
		WithLowAccuracyMode().
		Build()
})

// DetectLanguage guesses the ISO 639-1 code of the post body, used for the
// lang attribute on rendered posts. Returns "unknown" when detection is
// inconclusive.
func DetectLanguage(content string) string {
	if lang, ok := buildDetector().DetectLanguageOf(content); ok {
		return lang.IsoCode639_1().String()
	}
	return "unknown"
}
