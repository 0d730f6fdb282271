// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

package s33d

import (
	"fmt"
	"strings"

	isbip39 "github.com/islishude/bip39"
	"github.com/tyler-smith/go-bip39/wordlists"
	lang "golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// Language selects one of the ten BIP39 wordlists. The zero value is English.
type Language int

const (
	English Language = iota
	ChineseSimplified
	ChineseTraditional
	French
	Italian
	Japanese
	Korean
	Spanish
	Czech
	Portuguese
)

// WordlistSize is the number of words in every BIP39 wordlist. Each word
// encodes an 11-bit index.
const WordlistSize = 2048

// LanguageInfo describes a supported language for presentation purposes.
type LanguageInfo struct {
	Language Language
	Name     string
	Code     string
	Note     string
}

// languageInfos is ordered the way --list displays languages.
var languageInfos = []LanguageInfo{
	{English, "english", "en", "default, widely supported"},
	{ChineseSimplified, "chinese-simplified", "cn", "简体中文"},
	{ChineseTraditional, "chinese-traditional", "tw", "繁體中文"},
	{French, "french", "fr", "français"},
	{Italian, "italian", "it", "italiano"},
	{Japanese, "japanese", "ja", "日本語"},
	{Korean, "korean", "ko", "한국어"},
	{Spanish, "spanish", "es", "español"},
	{Czech, "czech", "cs", "čeština"},
	{Portuguese, "portuguese", "pt", "português"},
}

// wordLists holds the immutable per-language wordlists. Nine lists ship with
// tyler-smith/go-bip39; the Portuguese list is not part of that module and
// comes from islishude/bip39 instead.
var wordLists = map[Language][]string{
	English:            wordlists.English,
	ChineseSimplified:  wordlists.ChineseSimplified,
	ChineseTraditional: wordlists.ChineseTraditional,
	French:             wordlists.French,
	Italian:            wordlists.Italian,
	Japanese:           wordlists.Japanese,
	Korean:             wordlists.Korean,
	Spanish:            wordlists.Spanish,
	Czech:              wordlists.Czech,
	Portuguese:         isbip39.Portuguese.Words(),
}

// languageTags maps BCP-47 tags onto wordlist languages so inputs like
// "zh-CN", "pt-BR" or "en-US" resolve without their own aliases.
var languageTags = map[lang.Tag]Language{
	lang.English:              English,
	lang.AmericanEnglish:      English,
	lang.BritishEnglish:       English,
	lang.Chinese:              ChineseSimplified,
	lang.SimplifiedChinese:    ChineseSimplified,
	lang.TraditionalChinese:   ChineseTraditional,
	lang.French:               French,
	lang.Italian:              Italian,
	lang.Japanese:             Japanese,
	lang.Korean:               Korean,
	lang.Spanish:              Spanish,
	lang.EuropeanSpanish:      Spanish,
	lang.LatinAmericanSpanish: Spanish,
	lang.Czech:                Czech,
	lang.Portuguese:           Portuguese,
	lang.BrazilianPortuguese:  Portuguese,
	lang.EuropeanPortuguese:   Portuguese,
}

// languageAliases covers the historical short codes the CLI has always
// accepted, which do not all line up with BCP-47 ("cn", "tw", "jp", "kr").
var languageAliases = map[string]Language{
	"en":    English,
	"cn":    ChineseSimplified,
	"zh-cn": ChineseSimplified,
	"tw":    ChineseTraditional,
	"zh-tw": ChineseTraditional,
	"fr":    French,
	"it":    Italian,
	"ja":    Japanese,
	"jp":    Japanese,
	"ko":    Korean,
	"kr":    Korean,
	"es":    Spanish,
	"cs":    Czech,
	"pt":    Portuguese,
}

// Languages returns presentation metadata for all supported languages, in
// display order.
func Languages() []LanguageInfo {
	infos := make([]LanguageInfo, len(languageInfos))
	copy(infos, languageInfos)
	return infos
}

// Name returns the canonical lowercase language name, e.g. "chinese-simplified".
func (l Language) Name() string {
	for _, info := range languageInfos {
		if info.Language == l {
			return info.Name
		}
	}
	return fmt.Sprintf("language(%d)", int(l))
}

// Code returns the short language code, e.g. "cn".
func (l Language) Code() string {
	for _, info := range languageInfos {
		if info.Language == l {
			return info.Code
		}
	}
	return ""
}

// List returns the 2048-word list for the language.
func (l Language) List() ([]string, error) {
	list, ok := wordLists[l]
	if !ok {
		return nil, fmt.Errorf("%w: language(%d)", ErrUnsupportedLanguage, int(l))
	}
	return list, nil
}

func sanitizeLang(s string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), " ", "-")
}

// ParseLanguage resolves a user-supplied language selector. It accepts the
// canonical names ("japanese"), the short codes ("ja", "jp"), English display
// names of BCP-47 tags ("simplified-chinese") and raw tags ("zh-TW", "pt-BR").
// Unknown selectors return ErrUnsupportedLanguage; no entropy is involved at
// this stage.
func ParseLanguage(s string) (Language, error) {
	name := sanitizeLang(s)
	if name == "" {
		return 0, fmt.Errorf("%w: empty selector", ErrUnsupportedLanguage)
	}

	for _, info := range languageInfos {
		if info.Name == name {
			return info.Language, nil
		}
	}
	if l, ok := languageAliases[name]; ok {
		return l, nil
	}

	// Match the English display name of any known tag, the way the wordlist
	// lookup in seedify does ("simplified-chinese", "brazilian-portuguese").
	en := display.English.Languages()
	for tag, l := range languageTags {
		if sanitizeLang(en.Name(tag)) == name {
			return l, nil
		}
	}

	// Last resort: parse as a BCP-47 tag and match on the base language.
	tag := lang.Make(name)
	if tag == lang.Und {
		return 0, fmt.Errorf("%w: %q (use --list to see available options)", ErrUnsupportedLanguage, s)
	}
	if l, ok := languageTags[tag]; ok {
		return l, nil
	}
	if base, conf := tag.Base(); conf != lang.No {
		if btag, err := lang.Parse(base.String()); err == nil {
			if l, ok := languageTags[btag]; ok {
				return l, nil
			}
		}
	}
	return 0, fmt.Errorf("%w: %q (use --list to see available options)", ErrUnsupportedLanguage, s)
}
