// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

package main

import (
	"strings"
	"testing"

	"github.com/complex-gh/s33d"
	"github.com/matryer/is"
	"github.com/mattn/go-runewidth"
)

func TestBoxHelpers_Width(t *testing.T) {
	is := is.New(t)

	total := targetBoxWidth + 4

	is.Equal(runewidth.StringWidth(boxTop("technical details", targetBoxWidth)), total)
	is.Equal(runewidth.StringWidth(boxRow("short", targetBoxWidth)), total)
	is.Equal(runewidth.StringWidth(boxRow("", targetBoxWidth)), total)
	is.Equal(runewidth.StringWidth(boxBottom(targetBoxWidth)), total)

	// Wide characters still pad to the same display width.
	is.Equal(runewidth.StringWidth(boxRow("簡体中文のことば", targetBoxWidth)), total)
}

func TestPrintWordGrid_Layout(t *testing.T) {
	is := is.New(t)

	m, err := s33d.NewMnemonic(make([]byte, 16), s33d.English)
	is.NoErr(err)
	defer m.Destroy()

	var b strings.Builder
	printWordGrid(&b, m)
	out := b.String()

	is.True(strings.Contains(out, "your 12 word seed phrase"))
	// Numbering runs down the first column: rows of a 12-word grid hold
	// items 1..3 in column one and 4, 7, 10 alongside item 1.
	is.True(strings.Contains(out, "1. abandon"))
	is.True(strings.Contains(out, "12. about"))

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	var gridLines []string
	for _, line := range lines {
		if strings.HasPrefix(line, "│") {
			gridLines = append(gridLines, line)
		}
	}
	is.Equal(len(gridLines), 3) // 12 words, 4 columns

	// Item 4 shares the first row with item 1.
	is.True(strings.Contains(gridLines[0], "4. abandon"))
}

func TestPrintWordGrid_KoreanUsesPlainList(t *testing.T) {
	is := is.New(t)

	m, err := s33d.NewMnemonic(make([]byte, 16), s33d.Korean)
	is.NoErr(err)
	defer m.Destroy()

	var b strings.Builder
	printWordGrid(&b, m)
	out := b.String()

	is.True(strings.Contains(out, "your 12 word seed phrase"))
	is.True(!strings.Contains(out, "┌")) // no box for Korean
	is.True(strings.Contains(out, "1. "))
	is.True(strings.Contains(out, "12. "))
}

func TestPrintHexPanel_Chunking(t *testing.T) {
	is := is.New(t)

	var b strings.Builder
	printHexPanel(&b, "entropy (hexadecimal)", make([]byte, 32))
	out := b.String()

	// 32 bytes = 64 hex chars = two 32-char rows.
	is.Equal(strings.Count(out, strings.Repeat("0", 32)), 2)
	is.True(strings.Contains(out, "entropy (hexadecimal)"))
}

func TestPrintSupportedLanguages(t *testing.T) {
	is := is.New(t)

	var b strings.Builder
	printSupportedLanguages(&b)
	out := b.String()

	for _, info := range s33d.Languages() {
		is.True(strings.Contains(out, info.Name))
		is.True(strings.Contains(out, "("+info.Code+")"))
	}
	is.True(strings.Contains(out, "when in doubt, use english"))
}

func TestPrintClean(t *testing.T) {
	is := is.New(t)

	m, err := s33d.NewMnemonic(make([]byte, 16), s33d.English)
	is.NoErr(err)
	defer m.Destroy()

	showHex = true
	qrCode = false
	defer func() { showHex = false }()

	seed := s33d.NewBuffer(m.Seed(""))
	defer seed.Destroy()

	var b strings.Builder
	printClean(&b, m, seed)
	out := b.String()

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	is.Equal(len(lines), 3)
	is.Equal(lines[0], m.Phrase())
	is.Equal(lines[1], "hex: "+strings.Repeat("0", 32))
	is.True(strings.HasPrefix(lines[2], "seed: "))
	is.Equal(len(lines[2]), len("seed: ")+128)
}

func TestPrintQRCode_FitsBox(t *testing.T) {
	is := is.New(t)

	var b strings.Builder
	printQRCode(&b, "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about")
	out := b.String()

	is.True(strings.Contains(out, "qr code for mobile import"))
	is.True(strings.Contains(out, "█"))

	// Every box line renders at the same display width.
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	var width int
	for _, line := range lines {
		if line == "" {
			continue
		}
		if width == 0 {
			width = runewidth.StringWidth(line)
		}
		is.Equal(runewidth.StringWidth(line), width)
	}
}

func TestPrintWarning(t *testing.T) {
	is := is.New(t)

	var b strings.Builder
	printWarning(&b, "something looks off")
	out := b.String()

	is.True(strings.Contains(out, "WARNING"))
	is.True(strings.Contains(out, "⚠ something looks off"))
}
