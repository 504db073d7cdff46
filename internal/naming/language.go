package naming

import (
	"regexp"
	"strings"
)

var langRegionRE = regexp.MustCompile(`^([A-Za-z]{2,3})[-_]?([A-Za-z]{2})$`)

// langAliases maps friendly spellings to ISO 639-1 codes.
var langAliases = map[string]string{
	"es": "es", "spa": "es", "spanish": "es", "español": "es",
	"en": "en", "eng": "en", "english": "en",
	"fr": "fr", "fre": "fr", "french": "fr", "francés": "fr",
	"de": "de", "ger": "de", "german": "de", "deutsch": "de",
	"it": "it", "ita": "it", "italian": "it", "italiano": "it",
	"pt": "pt", "por": "pt", "portuguese": "pt", "portugués": "pt",
	"ja": "ja", "jpn": "ja", "japanese": "ja",
	"zh": "zh", "chi": "zh", "chinese": "zh",
	"ko": "ko", "kor": "ko", "korean": "ko",
	"ru": "ru", "rus": "ru", "russian": "ru",
	"ar": "ar", "ara": "ar", "arabic": "ar",
	"hi": "hi", "hin": "hi", "hindi": "hi",
	"nl": "nl", "dut": "nl", "nld": "nl", "dutch": "nl",
}

// NormalizeLanguage normalizes a language setting to an ISO 639-1 code
// plus an optional uppercase ISO 3166-1 region. Accepted inputs:
// language only ("es", "it"), language plus region ("es-ES", "pt_BR"),
// and a few friendly aliases ("spanish", "eng"). Empty input defaults
// to "es".
func NormalizeLanguage(input string) (lang, region string) {
	raw := strings.TrimSpace(input)
	if raw == "" {
		return "es", ""
	}

	if m := langRegionRE.FindStringSubmatch(raw); m != nil {
		return aliasToLangCode(strings.ToLower(m[1])), strings.ToUpper(m[2])
	}

	return aliasToLangCode(strings.ToLower(raw)), ""
}

func aliasToLangCode(part string) string {
	if code, ok := langAliases[part]; ok {
		return code
	}
	if len(part) == 2 {
		return part
	}
	return "es"
}

// likelyRegions carries the CLDR likely-subtags region for each
// supported language, used when no explicit region is configured.
var likelyRegions = map[string]string{
	"es": "ES",
	"en": "US",
	"fr": "FR",
	"de": "DE",
	"it": "IT",
	"pt": "BR",
	"ja": "JP",
	"zh": "CN",
	"ko": "KR",
	"ru": "RU",
	"ar": "EG",
	"hi": "IN",
	"nl": "NL",
}

// DefaultRegion returns the likely ISO 3166-1 region for a language
// code, or "" when none is known.
func DefaultRegion(lang string) string {
	return likelyRegions[strings.ToLower(strings.TrimSpace(lang))]
}
