// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

// Package main provides the s33d CLI tool for generating BIP39 seed phrases.
package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/complex-gh/s33d"
	"github.com/mattn/go-isatty"
	"github.com/mattn/go-tty"
	mcobra "github.com/muesli/mango-cobra"
	"github.com/muesli/roff"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

const (
	maxWidth        = 72
	defaultStrength = s33d.Strength128
)

// Process exit codes. Generation and validation failures exit 1, a passphrase
// confirmation mismatch exits 2, and an unreadable prompt exits 3.
const (
	exitGeneration = 1
	exitMismatch   = 2
	exitPrompt     = 3
)

var (
	baseStyle  = lipgloss.NewStyle().Margin(0, 0, 1, 2) //nolint:mnd
	red        = lipgloss.Color(completeColor("#FF4444", "196", "9"))
	errorStyle = baseStyle.
			Foreground(red).
			Background(lipgloss.AdaptiveColor{Light: completeColor("#FFEBEB", "255", "7"), Dark: completeColor("#2B1A1A", "235", "8")}).
			Padding(1, 2) //nolint:mnd

	wordCount     int
	bits          int
	language      string
	showEntropy   bool
	clean         bool
	qrCode        bool
	showHex       bool
	askPassphrase bool
	showSeed      bool
	listLanguages bool

	rootCmd = &cobra.Command{
		Use:   "s33d",
		Short: "generate secure BIP39 seed phrases for your bitcoin wallet",
		Long: `s33d generates cryptographically secure BIP39 mnemonic phrases.
these phrases can restore your bitcoin wallet.

SECURITY WARNING: generated phrases provide access to funds.
store them securely and never share them online.`,
		Example: `  s33d
  s33d -w 24
  s33d -l ja -w 24
  s33d -b 160 -e -x
  s33d -p -s
  s33d -c -q`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE:         run,
	}

	manCmd = &cobra.Command{
		Use:          "man",
		Args:         cobra.NoArgs,
		Short:        "generate man pages",
		Hidden:       true,
		SilenceUsage: true,
		RunE: func(*cobra.Command, []string) error {
			manPage, err := mcobra.NewManPage(1, rootCmd)
			if err != nil {
				//nolint: wrapcheck
				return err
			}
			fmt.Println(manPage.Build(roff.NewDocument()))
			return nil
		},
	}

	// completionCmd generates shell completion scripts for bash, zsh, fish, and powershell.
	completionCmd = &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion script",
		Long: `Generate shell completion script for s33d.

To load completions:

Bash:
  $ source <(s33d completion bash)

Zsh:
  $ s33d completion zsh > "${fpath[1]}/_s33d"

Fish:
  $ s33d completion fish | source

PowerShell:
  PS> s33d completion powershell | Out-String | Invoke-Expression
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		SilenceUsage:          true,
		RunE: func(_ *cobra.Command, args []string) error {
			switch args[0] {
			case "bash":
				return rootCmd.GenBashCompletion(os.Stdout)
			case "zsh":
				return rootCmd.GenZshCompletion(os.Stdout)
			case "fish":
				return rootCmd.GenFishCompletion(os.Stdout, true)
			case "powershell":
				return rootCmd.GenPowerShellCompletionWithDesc(os.Stdout)
			default:
				return fmt.Errorf("unknown shell: %s", args[0])
			}
		},
	}
)

func init() {
	rootCmd.Flags().IntVarP(&wordCount, "words", "w", 0, "Number of words in the phrase (12 or 24)")
	rootCmd.Flags().IntVarP(&bits, "bits", "b", 0, "Advanced: Entropy bits (128, 160, 192, 224, or 256)")
	rootCmd.Flags().StringVarP(&language, "language", "l", "english", "Language for mnemonic words")
	rootCmd.Flags().BoolVarP(&showEntropy, "entropy", "e", false, "Show entropy and technical details")
	rootCmd.Flags().BoolVarP(&clean, "clean", "c", false, "Clean mode - only output the phrase")
	rootCmd.Flags().BoolVarP(&qrCode, "qr", "q", false, "Generate QR code for easy mobile import")
	rootCmd.Flags().BoolVarP(&showHex, "hex", "x", false, "Show entropy as hexadecimal")
	rootCmd.Flags().BoolVarP(&askPassphrase, "passphrase", "p", false, "Advanced: Prompt for an optional BIP39 passphrase")
	rootCmd.Flags().BoolVarP(&showSeed, "seed", "s", false, "Advanced: Show derived 64-byte seed as hexadecimal")
	rootCmd.Flags().BoolVar(&listLanguages, "list", false, "List all supported languages")
	rootCmd.MarkFlagsMutuallyExclusive("words", "bits")
	rootCmd.AddCommand(manCmd)
	rootCmd.AddCommand(completionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		var coded *exitError
		if errors.As(err, &coded) {
			os.Exit(coded.code)
		}
		os.Exit(exitGeneration)
	}
}

// exitError carries the process exit code alongside the underlying error.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

// fail shows the styled error block when stdout is a terminal and wraps the
// error with its exit code. Error messages never contain entropy, phrase or
// seed material.
func fail(code int, err error) error {
	if isatty.IsTerminal(os.Stdout.Fd()) {
		b := strings.Builder{}
		w := getWidth(maxWidth)

		b.WriteRune('\n')
		renderBlock(&b, errorStyle, w, err.Error())
		b.WriteRune('\n')

		fmt.Print(b.String())
	}
	return &exitError{code: code, err: err}
}

func run(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()

	if listLanguages {
		printSupportedLanguages(out)
		return nil
	}

	lang, err := s33d.ParseLanguage(language)
	if err != nil {
		return fail(exitGeneration, err)
	}

	strength := defaultStrength
	switch {
	case wordCount != 0:
		// The word-count flag only accepts the common 12 and 24 word phrases;
		// the intermediate strengths stay reachable through --bits.
		if wordCount != 12 && wordCount != 24 {
			return fail(exitGeneration, fmt.Errorf("%w: %d (use 12 for good security or 24 for maximum security)", s33d.ErrInvalidWordCount, wordCount))
		}
		strength, err = s33d.StrengthFromWordCount(wordCount)
		if err != nil {
			return fail(exitGeneration, err)
		}
	case bits != 0:
		strength = s33d.Strength(bits)
		if !strength.Valid() {
			return fail(exitGeneration, fmt.Errorf("%w: %d (must be one of: 128, 160, 192, 224, or 256)", s33d.ErrInvalidStrength, bits))
		}
	}

	if !clean {
		verifyEntropyQuality(out)
	}

	m, err := s33d.Generate(strength, lang)
	if err != nil {
		return fail(exitGeneration, err)
	}
	defer m.Destroy()

	var passphrase []byte
	if askPassphrase {
		passphrase, err = promptPassphrase()
		if err != nil {
			return err
		}
	}
	defer s33d.Wipe(passphrase)

	var seed *s33d.Buffer
	if showSeed {
		// -s without -p derives with the empty passphrase.
		if !utf8.Valid(passphrase) {
			return fail(exitGeneration, errors.New("passphrase is not valid UTF-8"))
		}
		seed = s33d.NewBuffer(m.Seed(string(passphrase)))
		defer seed.Destroy()
	}

	if clean {
		printClean(out, m, seed)
		return nil
	}

	printMnemonicWithInfo(out, m, seed, showEntropy, showHex)
	if qrCode {
		printQRCode(out, m.Phrase())
	}
	return nil
}

// promptPassphrase reads the optional BIP39 passphrase twice without echo.
// An empty first entry skips confirmation. A confirmation mismatch exits with
// a distinct code and no seed is derived; an unreadable prompt is fatal and
// is never treated as an empty passphrase.
func promptPassphrase() ([]byte, error) {
	pass, err := readPassword("enter passphrase (leave blank for none): ")
	if err != nil {
		return nil, fail(exitPrompt, fmt.Errorf("could not read passphrase: %w", err))
	}
	if len(pass) == 0 {
		return pass, nil
	}

	confirm, err := readPassword("confirm passphrase: ")
	if err != nil {
		s33d.Wipe(pass)
		return nil, fail(exitPrompt, fmt.Errorf("could not read passphrase confirmation: %w", err))
	}
	defer s33d.Wipe(confirm)

	if !bytes.Equal(pass, confirm) {
		s33d.Wipe(pass)
		return nil, fail(exitMismatch, errors.New("passphrases do not match"))
	}
	return pass, nil
}

func readPassword(msg string) ([]byte, error) {
	_, _ = fmt.Fprint(os.Stderr, msg)
	defer fmt.Fprintf(os.Stderr, "\n")
	t, err := tty.Open()
	if err != nil {
		return nil, fmt.Errorf("could not open tty: %w", err)
	}
	defer t.Close()                                     //nolint: errcheck
	pass, err := term.ReadPassword(int(t.Input().Fd())) //nolint: gosec
	if err != nil {
		return nil, fmt.Errorf("could not read input: %w", err)
	}
	return pass, nil
}

// verifyEntropyQuality warns when the usual Unix entropy devices are missing.
// Generation itself still goes through crypto/rand, which fails loudly rather
// than degrading.
func verifyEntropyQuality(w io.Writer) {
	if runtime.GOOS == "windows" {
		return
	}
	if _, err := os.Stat("/dev/urandom"); err != nil {
		printWarning(w, "system entropy source (/dev/urandom) not found, entropy quality may be compromised")
		return
	}
	if _, err := os.Stat("/dev/random"); err != nil {
		printWarning(w, "high quality entropy source (/dev/random) not available, using /dev/urandom")
	}
}

func printClean(w io.Writer, m *s33d.Mnemonic, seed *s33d.Buffer) {
	phrase := m.Phrase()
	fmt.Fprintln(w, phrase)
	if showHex {
		fmt.Fprintf(w, "hex: %x\n", m.Entropy())
	}
	if seed != nil {
		fmt.Fprintf(w, "seed: %x\n", seed.Bytes())
	}
	if qrCode {
		printQRCode(w, phrase)
	}
}

func getWidth(maxw int) int {
	w, _, err := term.GetSize(int(os.Stdout.Fd())) //nolint: gosec
	if err != nil || w > maxw {
		return maxWidth
	}
	return w
}

func renderBlock(w io.Writer, s lipgloss.Style, width int, str string) {
	_, _ = io.WriteString(w, s.Width(width).Render(str))
	_, _ = io.WriteString(w, "\n")
}

func completeColor(truecolor, ansi256, ansi string) string {
	//nolint: exhaustive
	switch lipgloss.ColorProfile() {
	case termenv.TrueColor:
		return truecolor
	case termenv.ANSI256:
		return ansi256
	}
	return ansi
}
