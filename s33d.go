// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

// Package s33d implements BIP39 mnemonic generation: drawing entropy from an
// OS-backed cryptographic random source, encoding it as a checksummed phrase
// over a 2048-word list, and deriving the 64-byte master seed from the phrase
// and an optional passphrase.
//
// The checksum computation and 11-bit word mapping are implemented directly
// against the BIP39 specification so the engine stays independent of any
// single bip39 library; the test suite cross-checks every strength and
// language against tyler-smith/go-bip39.
//
// This package does not derive wallet keys (BIP32/44) and does not recover
// phrases supplied by users.
package s33d

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/sha512"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/crypto/pbkdf2"
	"golang.org/x/text/unicode/norm"
)

// Strength is the entropy size of a mnemonic in bits. BIP39 only defines
// strengths that are multiples of 32 between 128 and 256 inclusive; anything
// else cannot be partitioned into 11-bit word indices after the checksum is
// appended.
type Strength int

const (
	Strength128 Strength = 128
	Strength160 Strength = 160
	Strength192 Strength = 192
	Strength224 Strength = 224
	Strength256 Strength = 256
)

const (
	// SeedSize is the length of a derived master seed in bytes (512 bits).
	SeedSize = 64

	// seedIterations is the PBKDF2 round count fixed by BIP39.
	seedIterations = 2048

	// seedSaltPrefix is prepended to the passphrase to form the PBKDF2 salt.
	seedSaltPrefix = "mnemonic"

	// wordBits is the number of entropy+checksum bits encoded per word.
	wordBits = 11
)

var (
	// ErrUnsupportedLanguage is returned when a language code is not in the
	// supported set. No entropy is drawn for such requests.
	ErrUnsupportedLanguage = errors.New("unsupported language")

	// ErrInvalidStrength is returned for entropy strengths outside the set
	// {128, 160, 192, 224, 256}.
	ErrInvalidStrength = errors.New("invalid entropy strength")

	// ErrInvalidWordCount is returned for word counts outside the set
	// {12, 15, 18, 21, 24}.
	ErrInvalidWordCount = errors.New("invalid word count")

	// ErrInvalidEntropyLength is returned by NewMnemonic when the supplied
	// entropy does not correspond to a legal strength. The entropy is never
	// truncated or padded.
	ErrInvalidEntropyLength = errors.New("invalid entropy length")

	// ErrEntropyUnavailable is returned when the OS randomness source cannot
	// be read. There is no fallback and no retry; callers are expected to
	// treat this as fatal.
	ErrEntropyUnavailable = errors.New("system entropy source unavailable")
)

// entropyRand is the randomness source for GenerateEntropy. It is a package
// variable so tests can substitute a counting reader and prove that invalid
// inputs are rejected before any entropy is drawn.
var entropyRand io.Reader = rand.Reader

// Valid reports whether s is one of the strengths BIP39 defines.
func (s Strength) Valid() bool {
	switch s {
	case Strength128, Strength160, Strength192, Strength224, Strength256:
		return true
	}
	return false
}

// Bytes returns the entropy size in bytes.
func (s Strength) Bytes() int { return int(s) / 8 }

// ChecksumBits returns the number of checksum bits appended to the entropy,
// defined by BIP39 as strength/32.
func (s Strength) ChecksumBits() int { return int(s) / 32 }

// WordCount returns the number of words a phrase of this strength contains:
// (strength + strength/32) / 11.
func (s Strength) WordCount() int { return (int(s) + s.ChecksumBits()) / wordBits }

// StrengthFromWordCount maps a phrase length back to its entropy strength.
// Valid word counts are 12, 15, 18, 21 and 24.
func StrengthFromWordCount(words int) (Strength, error) {
	switch words {
	case 12:
		return Strength128, nil
	case 15:
		return Strength160, nil
	case 18:
		return Strength192, nil
	case 21:
		return Strength224, nil
	case 24:
		return Strength256, nil
	}
	return 0, fmt.Errorf("%w: %d (must be 12, 15, 18, 21, or 24)", ErrInvalidWordCount, words)
}

// GenerateEntropy draws strength/8 bytes from the OS cryptographic random
// source. A failure to read means the source is missing or broken and is
// reported as ErrEntropyUnavailable; this function never falls back to a
// weaker generator.
func GenerateEntropy(strength Strength) ([]byte, error) {
	if !strength.Valid() {
		return nil, fmt.Errorf("%w: %d bits (must be 128, 160, 192, 224, or 256)", ErrInvalidStrength, strength)
	}
	entropy := make([]byte, strength.Bytes())
	if _, err := io.ReadFull(entropyRand, entropy); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEntropyUnavailable, err)
	}
	return entropy, nil
}

// Mnemonic is a checksummed BIP39 phrase together with the entropy it encodes.
// It holds secret material: call Destroy once the value is no longer needed.
type Mnemonic struct {
	lang    Language
	entropy []byte
	words   []string
}

// NewMnemonic encodes entropy as a mnemonic phrase in the given language.
// The entropy length must correspond to a legal strength; the bytes are
// copied, so the caller keeps ownership of (and should wipe) its own slice.
//
// The encoding follows BIP39: the first strength/32 bits of SHA-256(entropy)
// are appended to the entropy bits, and the combined stream is split into
// consecutive big-endian 11-bit groups, each indexing the 2048-word list.
func NewMnemonic(entropy []byte, language Language) (*Mnemonic, error) {
	strength := Strength(len(entropy) * 8)
	if !strength.Valid() {
		return nil, fmt.Errorf("%w: %d bytes", ErrInvalidEntropyLength, len(entropy))
	}
	list, err := language.List()
	if err != nil {
		return nil, err
	}

	sum := sha256.Sum256(entropy)

	// The checksum is at most 8 bits for every legal strength, so a single
	// extra byte holds it. Surplus bits past strength/32 are never read.
	data := make([]byte, strength.Bytes()+1)
	copy(data, entropy)
	data[strength.Bytes()] = sum[0]
	defer Wipe(data)

	words := make([]string, strength.WordCount())
	for i := range words {
		var index int
		for bit := i * wordBits; bit < (i+1)*wordBits; bit++ {
			index <<= 1
			if data[bit/8]&(1<<uint(7-bit%8)) != 0 {
				index |= 1
			}
		}
		words[i] = list[index]
	}

	held := make([]byte, len(entropy))
	copy(held, entropy)
	return &Mnemonic{lang: language, entropy: held, words: words}, nil
}

// Generate draws fresh entropy of the requested strength and encodes it in
// the given language. The language and strength are validated before any
// entropy is drawn.
func Generate(strength Strength, language Language) (*Mnemonic, error) {
	if _, err := language.List(); err != nil {
		return nil, err
	}
	entropy, err := GenerateEntropy(strength)
	if err != nil {
		return nil, err
	}
	defer Wipe(entropy)
	return NewMnemonic(entropy, language)
}

// Language returns the wordlist language the phrase was encoded with.
func (m *Mnemonic) Language() Language { return m.lang }

// Strength returns the entropy strength of the phrase.
func (m *Mnemonic) Strength() Strength { return Strength(len(m.entropy) * 8) }

// Words returns the phrase words in order. The slice is shared with the
// Mnemonic and becomes invalid after Destroy.
func (m *Mnemonic) Words() []string { return m.words }

// Entropy returns the raw entropy bytes the phrase encodes. The slice is
// shared with the Mnemonic and is wiped by Destroy.
func (m *Mnemonic) Entropy() []byte { return m.entropy }

// Phrase returns the space-joined form of the mnemonic.
func (m *Mnemonic) Phrase() string { return strings.Join(m.words, " ") }

// Seed derives the 64-byte master seed from the phrase and passphrase using
// PBKDF2-HMAC-SHA512 with 2048 rounds and salt "mnemonic"+passphrase, both
// sides NFKD-normalized per BIP39. The derivation is deterministic: identical
// phrase and passphrase always yield identical seed bytes. The caller owns
// the returned buffer and should wipe it after use.
func (m *Mnemonic) Seed(passphrase string) []byte {
	password := []byte(norm.NFKD.String(m.Phrase()))
	defer Wipe(password)
	salt := []byte(seedSaltPrefix + norm.NFKD.String(passphrase))
	defer Wipe(salt)
	return pbkdf2.Key(password, salt, seedIterations, SeedSize, sha512.New)
}

// Destroy wipes the retained entropy and drops the phrase words. The
// Mnemonic must not be used afterwards.
func (m *Mnemonic) Destroy() {
	Wipe(m.entropy)
	m.entropy = nil
	for i := range m.words {
		m.words[i] = ""
	}
	m.words = nil
}
