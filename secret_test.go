// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

package s33d

import (
	"bytes"
	"testing"

	"github.com/matryer/is"
)

func TestWipe(t *testing.T) {
	is := is.New(t)

	b := []byte{0xDE, 0xAD, 0xBE, 0xEF}
	Wipe(b)
	is.True(bytes.Equal(b, make([]byte, len(b))))

	// Safe on nil and empty.
	Wipe(nil)
	Wipe([]byte{})
}

func TestBuffer_Destroy(t *testing.T) {
	is := is.New(t)

	raw := []byte{1, 2, 3, 4, 5, 6, 7, 8}
	buf := NewBuffer(raw)
	is.Equal(buf.Len(), len(raw))
	is.True(bytes.Equal(buf.Bytes(), []byte{1, 2, 3, 4, 5, 6, 7, 8}))

	buf.Destroy()

	// The underlying memory is zeroed, not merely unreferenced.
	is.True(bytes.Equal(raw, make([]byte, len(raw))))
	is.Equal(buf.Len(), 0)
	is.Equal(buf.Bytes(), nil)

	// Idempotent.
	buf.Destroy()
}

// TestBuffer_DestroyOnErrorPath mirrors how the CLI releases seed material:
// a deferred Destroy must wipe the buffer regardless of which path returns.
func TestBuffer_DestroyOnErrorPath(t *testing.T) {
	is := is.New(t)

	var raw []byte
	run := func(fail bool) error {
		m, err := NewMnemonic(make([]byte, 16), English)
		if err != nil {
			return err
		}
		defer m.Destroy()

		buf := NewBuffer(m.Seed(""))
		defer buf.Destroy()
		raw = buf.Bytes()

		if fail {
			return ErrInvalidStrength
		}
		return nil
	}

	is.True(run(true) != nil)
	is.True(bytes.Equal(raw, make([]byte, SeedSize)))

	is.NoErr(run(false))
	is.True(bytes.Equal(raw, make([]byte, SeedSize)))
}
