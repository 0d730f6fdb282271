// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/complex-gh/s33d"
	"github.com/mattn/go-runewidth"
)

const (
	// targetBoxWidth is the inner content width of the box-drawn panels.
	targetBoxWidth = 63

	// wordGridColumns is the number of columns in the seed phrase grid.
	wordGridColumns = 4
)

// boxTop renders "┌─ title ────┐" padded so the full line spans the box.
func boxTop(title string, inner int) string {
	text := "─ " + title + " "
	dashes := inner + 2 - runewidth.StringWidth(text)
	if dashes < 0 {
		dashes = 0
	}
	return "┌" + text + strings.Repeat("─", dashes) + "┐"
}

// boxRow renders "│ content │" with the content padded to the inner width.
func boxRow(content string, inner int) string {
	pad := inner - runewidth.StringWidth(content)
	if pad < 0 {
		pad = 0
	}
	return "│ " + content + strings.Repeat(" ", pad) + " │"
}

func boxBottom(inner int) string {
	return "└" + strings.Repeat("─", inner+2) + "┘"
}

func printWarning(w io.Writer, message string) {
	fmt.Fprintln(w, boxTop("WARNING", targetBoxWidth))
	fmt.Fprintln(w, boxRow("⚠ "+message, targetBoxWidth))
	fmt.Fprintln(w, boxBottom(targetBoxWidth))
}

func printErrorBox(w io.Writer, message string) {
	fmt.Fprintln(w, boxTop("ERROR", targetBoxWidth))
	fmt.Fprintln(w, boxRow("✗ "+message, targetBoxWidth))
	fmt.Fprintln(w, boxBottom(targetBoxWidth))
}

func printBanner(w io.Writer) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, boxTop("s33d: bip39 mnemonic generator", targetBoxWidth))
	fmt.Fprintln(w, boxRow("cryptographically secure seed phrase generation", targetBoxWidth))
	fmt.Fprintln(w, boxBottom(targetBoxWidth))
}

func printTechnicalDetails(w io.Writer, m *s33d.Mnemonic) {
	strength := m.Strength()
	fmt.Fprintln(w)
	fmt.Fprintln(w, boxTop("technical details", targetBoxWidth))
	fmt.Fprintln(w, boxRow(fmt.Sprintf("▪ entropy bits    : %3d bits", int(strength)), targetBoxWidth))
	fmt.Fprintln(w, boxRow(fmt.Sprintf("▪ checksum bits   : %3d bits", strength.ChecksumBits()), targetBoxWidth))
	fmt.Fprintln(w, boxRow(fmt.Sprintf("▪ total bits      : %3d bits", int(strength)+strength.ChecksumBits()), targetBoxWidth))
	fmt.Fprintln(w, boxRow(fmt.Sprintf("▪ word count      : %3d words", strength.WordCount()), targetBoxWidth))
	fmt.Fprintln(w, boxRow(fmt.Sprintf("▪ language        : %s", m.Language().Name()), targetBoxWidth))
	fmt.Fprintln(w, boxBottom(targetBoxWidth))
}

// printHexPanel renders data as hex, 16 bytes per row.
func printHexPanel(w io.Writer, title string, data []byte) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, boxTop(title, targetBoxWidth))
	hexed := fmt.Sprintf("%x", data)
	const chunkSize = 32
	for i := 0; i < len(hexed); i += chunkSize {
		end := i + chunkSize
		if end > len(hexed) {
			end = len(hexed)
		}
		fmt.Fprintln(w, boxRow(hexed[i:end], targetBoxWidth))
	}
	fmt.Fprintln(w, boxBottom(targetBoxWidth))
}

// printWordGrid renders the phrase as a numbered 4-column grid, numbering
// down each column. Korean wordlist entries confuse terminal width math, so
// that language gets a plain numbered list instead; this is purely a display
// concession and has no effect on the phrase itself.
func printWordGrid(w io.Writer, m *s33d.Mnemonic) {
	words := m.Words()

	fmt.Fprintln(w)
	if m.Language() == s33d.Korean {
		fmt.Fprintf(w, "your %d word seed phrase\n\n", len(words))
		for i, word := range words {
			fmt.Fprintf(w, "%d. %s\n", i+1, word)
		}
		fmt.Fprintln(w)
		return
	}

	rows := (len(words) + wordGridColumns - 1) / wordGridColumns

	item := func(row, col int) string {
		i := row + col*rows
		if i >= len(words) {
			return ""
		}
		return fmt.Sprintf("%d. %s", i+1, words[i])
	}

	colWidths := make([]int, wordGridColumns)
	for col := 0; col < wordGridColumns; col++ {
		for row := 0; row < rows; row++ {
			if width := runewidth.StringWidth(item(row, col)); width > colWidths[col] {
				colWidths[col] = width
			}
		}
	}

	const baseSeparator = "   "
	required := (wordGridColumns - 1) * len(baseSeparator)
	for _, cw := range colWidths {
		required += cw
	}

	final := required
	if final < targetBoxWidth {
		final = targetBoxWidth
	}

	// Spread the slack evenly over the column separators.
	slack := final - required
	perSep := slack / (wordGridColumns - 1)
	remainder := slack % (wordGridColumns - 1)
	separators := make([]string, wordGridColumns-1)
	for i := range separators {
		extra := perSep
		if i < remainder {
			extra++
		}
		separators[i] = baseSeparator + strings.Repeat(" ", extra)
	}

	fmt.Fprintln(w, boxTop(fmt.Sprintf("your %d word seed phrase", len(words)), final))
	for row := 0; row < rows; row++ {
		var line strings.Builder
		for col := 0; col < wordGridColumns; col++ {
			text := item(row, col)
			line.WriteString(text)
			line.WriteString(strings.Repeat(" ", colWidths[col]-runewidth.StringWidth(text)))
			if col < wordGridColumns-1 {
				line.WriteString(separators[col])
			}
		}
		fmt.Fprintln(w, boxRow(strings.TrimRight(line.String(), " "), final))
	}
	fmt.Fprintln(w, boxBottom(final))
}

func printSecurityWarnings(w io.Writer) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, boxTop("security warnings", targetBoxWidth))
	for _, line := range []string{
		"▲ critical: write this phrase on paper - NEVER store digitally",
		"▲ keep in a secure location away from others",
		"▲ anyone with this phrase can access your cryptocurrency",
		"▲ verify the first few words before final storage",
		"▲ never enter this phrase on websites or untrusted devices",
		"▲ consider hardware wallets for significant amounts",
	} {
		fmt.Fprintln(w, boxRow(line, targetBoxWidth))
	}
	fmt.Fprintln(w, boxBottom(targetBoxWidth))
}

func printGenerationStatus(w io.Writer) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, boxTop("generation status", targetBoxWidth))
	for _, line := range []string{
		"✓ phrase generated using cryptographically secure entropy",
		"✓ bip39 standard compliance verified",
		"✓ checksum validation passed",
	} {
		fmt.Fprintln(w, boxRow(line, targetBoxWidth))
	}
	fmt.Fprintln(w, boxBottom(targetBoxWidth))
	fmt.Fprintln(w)
}

func printMnemonicWithInfo(w io.Writer, m *s33d.Mnemonic, seed *s33d.Buffer, showEntropy, showHex bool) {
	printBanner(w)
	if showEntropy {
		printTechnicalDetails(w, m)
	}
	if showHex {
		printHexPanel(w, "entropy (hexadecimal)", m.Entropy())
	}
	if seed != nil {
		printHexPanel(w, "master seed (hexadecimal)", seed.Bytes())
	}
	printWordGrid(w, m)
	printSecurityWarnings(w)
	printGenerationStatus(w)
}

func printSupportedLanguages(w io.Writer) {
	infos := s33d.Languages()

	var nameWidth, codeWidth int
	for _, info := range infos {
		if width := runewidth.StringWidth(info.Name); width > nameWidth {
			nameWidth = width
		}
		if width := runewidth.StringWidth("(" + info.Code + ")"); width > codeWidth {
			codeWidth = width
		}
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, boxTop("supported languages", targetBoxWidth))
	for _, info := range infos {
		name := info.Name + strings.Repeat(" ", nameWidth-runewidth.StringWidth(info.Name))
		code := "(" + info.Code + ")"
		code += strings.Repeat(" ", codeWidth-runewidth.StringWidth(code))
		fmt.Fprintln(w, boxRow(name+"  "+code+"  - "+info.Note, targetBoxWidth))
	}
	fmt.Fprintln(w, boxBottom(targetBoxWidth))
	fmt.Fprintln(w)
	fmt.Fprintln(w, boxTop("compatibility note", targetBoxWidth))
	fmt.Fprintln(w, boxRow("▪ english is the most widely supported language", targetBoxWidth))
	fmt.Fprintln(w, boxRow("▪ other languages may have limited wallet support", targetBoxWidth))
	fmt.Fprintln(w, boxRow("▪ when in doubt, use english", targetBoxWidth))
	fmt.Fprintln(w, boxBottom(targetBoxWidth))
	fmt.Fprintln(w)
	fmt.Fprintln(w, "usage:")
	fmt.Fprintln(w, "  s33d -l english")
	fmt.Fprintln(w, "  s33d -l ja -w 24")
	fmt.Fprintln(w)
}
