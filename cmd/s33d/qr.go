// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

package main

import (
	"fmt"
	"io"
	"strings"

	qrcode "github.com/skip2/go-qrcode"
)

// quietZoneModules is the number of blank modules kept around the code so
// scanners can lock onto it.
const quietZoneModules = 2

// printQRCode renders the phrase as a QR code using half-block characters,
// two modules per terminal row, centered inside a box. Low error correction
// keeps the code small enough for 24-word phrases.
func printQRCode(w io.Writer, phrase string) {
	code, err := qrcode.New(phrase, qrcode.Low)
	if err != nil {
		printErrorBox(w, fmt.Sprintf("failed to generate QR code: %v", err))
		return
	}
	code.DisableBorder = true

	grid := code.Bitmap()
	size := len(grid)
	if size == 0 {
		printErrorBox(w, "failed to generate QR code: empty bitmap")
		return
	}

	qrWidth := size + quietZoneModules*2
	inner := targetBoxWidth
	if qrWidth > inner {
		inner = qrWidth
	}

	leftPad := strings.Repeat(" ", (inner-qrWidth)/2)
	rightPad := strings.Repeat(" ", inner-qrWidth-(inner-qrWidth)/2)
	hPad := strings.Repeat(" ", quietZoneModules)
	emptyLine := strings.Repeat(" ", qrWidth)

	dark := func(x, y int) bool {
		if y >= size {
			return false
		}
		return grid[y][x]
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, boxTop("qr code for mobile import", inner))

	for i := 0; i < quietZoneModules/2; i++ {
		fmt.Fprintln(w, boxRow(leftPad+emptyLine+rightPad, inner))
	}

	for y := 0; y < size; y += 2 {
		var line strings.Builder
		line.WriteString(hPad)
		for x := 0; x < size; x++ {
			switch {
			case dark(x, y) && dark(x, y+1):
				line.WriteRune('█')
			case dark(x, y):
				line.WriteRune('▀')
			case dark(x, y+1):
				line.WriteRune('▄')
			default:
				line.WriteRune(' ')
			}
		}
		line.WriteString(hPad)
		fmt.Fprintln(w, boxRow(leftPad+line.String()+rightPad, inner))
	}

	for i := 0; i < quietZoneModules/2; i++ {
		fmt.Fprintln(w, boxRow(leftPad+emptyLine+rightPad, inner))
	}

	fmt.Fprintln(w, boxBottom(inner))
}
