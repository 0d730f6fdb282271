// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

package s33d

import (
	"errors"
	"testing"

	"github.com/matryer/is"
)

func TestParseLanguage(t *testing.T) {
	cases := map[string]Language{
		"english":             English,
		"English":             English,
		"EN":                  English,
		"en-US":               English,
		"chinese-simplified":  ChineseSimplified,
		"cn":                  ChineseSimplified,
		"zh-cn":               ChineseSimplified,
		"simplified chinese":  ChineseSimplified,
		"chinese-traditional": ChineseTraditional,
		"tw":                  ChineseTraditional,
		"zh-TW":               ChineseTraditional,
		"french":              French,
		"fr":                  French,
		"italian":             Italian,
		"it":                  Italian,
		"japanese":            Japanese,
		"ja":                  Japanese,
		"jp":                  Japanese,
		"korean":              Korean,
		"ko":                  Korean,
		"kr":                  Korean,
		"spanish":             Spanish,
		"es":                  Spanish,
		"czech":               Czech,
		"cs":                  Czech,
		"portuguese":          Portuguese,
		"pt":                  Portuguese,
		"pt-BR":               Portuguese,
	}

	for input, want := range cases {
		got, err := ParseLanguage(input)
		if err != nil {
			t.Fatalf("ParseLanguage(%q): %v", input, err)
		}
		if got != want {
			t.Fatalf("ParseLanguage(%q) = %s, want %s", input, got.Name(), want.Name())
		}
	}
}

func TestParseLanguage_Unknown(t *testing.T) {
	is := is.New(t)

	for _, input := range []string{"klingon", "", "  ", "xx", "latin"} {
		_, err := ParseLanguage(input)
		is.True(errors.Is(err, ErrUnsupportedLanguage))
	}
}

func TestWordlists_SizeAndUniqueness(t *testing.T) {
	for _, info := range Languages() {
		t.Run(info.Name, func(t *testing.T) {
			is := is.New(t)

			list, err := info.Language.List()
			is.NoErr(err)
			is.Equal(len(list), WordlistSize)

			seen := make(map[string]bool, len(list))
			for _, w := range list {
				is.True(w != "")
				is.True(!seen[w])
				seen[w] = true
			}
		})
	}
}

func TestLanguages_Metadata(t *testing.T) {
	is := is.New(t)

	infos := Languages()
	is.Equal(len(infos), 10)

	names := make(map[string]bool)
	codes := make(map[string]bool)
	for _, info := range infos {
		is.True(!names[info.Name])
		is.True(!codes[info.Code])
		names[info.Name] = true
		codes[info.Code] = true

		is.Equal(info.Language.Name(), info.Name)
		is.Equal(info.Language.Code(), info.Code)

		// Every advertised language must resolve back through the parser.
		byName, err := ParseLanguage(info.Name)
		is.NoErr(err)
		is.Equal(byName, info.Language)

		byCode, err := ParseLanguage(info.Code)
		is.NoErr(err)
		is.Equal(byCode, info.Language)
	}
}

func TestLanguage_ListUnknown(t *testing.T) {
	is := is.New(t)

	_, err := Language(42).List()
	is.True(errors.Is(err, ErrUnsupportedLanguage))
}
