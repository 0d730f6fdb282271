// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

package s33d

// Wipe overwrites every byte of b with zero. It is safe on nil and empty
// slices. Callers are expected to wipe every buffer that held entropy, seed
// or passphrase material on every exit path, including error returns.
func Wipe(b []byte) {
	for i := range b {
		b[i] = 0
	}
}

// Buffer wraps secret bytes with an explicit release. It exists so that
// scope-bound cleanup (defer buf.Destroy()) guarantees the underlying memory
// is zeroed when the value goes out of use, whichever path releases it.
type Buffer struct {
	b []byte
}

// NewBuffer takes ownership of b. The caller must not retain or reuse b.
func NewBuffer(b []byte) *Buffer {
	return &Buffer{b: b}
}

// Bytes exposes the secret contents. The slice is invalid after Destroy.
func (s *Buffer) Bytes() []byte { return s.b }

// Len returns the length of the held secret, 0 after Destroy.
func (s *Buffer) Len() int { return len(s.b) }

// Destroy zeroes the held bytes and drops the reference. Destroy is
// idempotent.
func (s *Buffer) Destroy() {
	Wipe(s.b)
	s.b = nil
}
