// Package main provides the CLI entrypoint for zootype.
package main

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/treygilliland/zootype/internal/config"
	"github.com/treygilliland/zootype/internal/engine"
	"github.com/treygilliland/zootype/internal/generator"
	"github.com/treygilliland/zootype/internal/tui"
	"github.com/treygilliland/zootype/internal/wordlist"
)

// Populated by the linker at release time.
var version = "dev"

const (
	defaultLang     = "en"
	defaultWords    = 25
	defaultCaps     = 0.0
	defaultPunct    = 0.0
	defaultPunctSet = ".,!?;:\"'{}()[]-=/<>`"
	defaultSource   = "words"
	defaultPolicy   = "strict"

	// Timed sessions pre-generate a buffer large enough to outlast the
	// clock; the corpus never grows mid-session.
	timedBufferWords     = 600
	timedBufferSentences = 80

	minTerminalWidth = 25
)

var (
	practiceLang     string
	practiceWords    int
	practiceTime     int
	practiceSource   string
	practiceWordlist string
	practiceCaps     float64
	practicePunct    float64
	practicePunctSet string
	practicePolicy   string
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "zootype",
		Short:         "Terminal typing speed test",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runPracticeCmd,
	}
	rootCmd.SetVersionTemplate("{{.Name}} {{.Version}}\n")

	rootCmd.Flags().StringVar(&practiceLang, "lang", defaultLang, "language code")
	rootCmd.Flags().IntVarP(&practiceWords, "words", "w", defaultWords, "word count mode: complete N words, untimed")
	rootCmd.Flags().IntVarP(&practiceTime, "time", "t", 0, "timed mode: type for N seconds")
	rootCmd.Flags().StringVarP(&practiceSource, "source", "s", defaultSource, "text source: words or sentences")
	rootCmd.Flags().StringVar(&practiceWordlist, "wordlist", "", "path to a custom word list")
	rootCmd.Flags().Float64Var(&practiceCaps, "caps", defaultCaps, "probability of capitalized first letter (0-1)")
	rootCmd.Flags().Float64Var(&practicePunct, "punct", defaultPunct, "punctuation probability per word (0-1)")
	rootCmd.Flags().StringVar(&practicePunctSet, "punct-set", defaultPunctSet, "punctuation set")
	rootCmd.Flags().StringVar(&practicePolicy, "policy", defaultPolicy, "error policy: strict or lenient")

	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newLangsCmd())

	return rootCmd
}

type practiceConfig struct {
	Lang     string
	Words    int
	Time     int
	Source   string
	Wordlist string
	CapsPct  float64
	PunctPct float64
	PunctSet string
	Policy   string
}

func runPracticeCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := config.Load(config.DefaultPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyStringConfig(cmd, "lang", &practiceLang, fileCfg.Practice.Lang)
	applyIntConfig(cmd, "words", &practiceWords, fileCfg.Practice.Words)
	applyIntConfig(cmd, "time", &practiceTime, fileCfg.Practice.Time)
	applyStringConfig(cmd, "source", &practiceSource, fileCfg.Practice.Source)
	applyFloatConfig(cmd, "caps", &practiceCaps, fileCfg.Practice.CapsPct)
	applyFloatConfig(cmd, "punct", &practicePunct, fileCfg.Practice.PunctPct)
	applyStringConfig(cmd, "punct-set", &practicePunctSet, fileCfg.Practice.PunctSet)
	applyStringConfig(cmd, "policy", &practicePolicy, fileCfg.Practice.Policy)

	cfg := practiceConfig{
		Lang:     practiceLang,
		Words:    practiceWords,
		Time:     practiceTime,
		Source:   practiceSource,
		Wordlist: practiceWordlist,
		CapsPct:  practiceCaps,
		PunctPct: practicePunct,
		PunctSet: practicePunctSet,
		Policy:   practicePolicy,
	}
	if err := validateConfig(cfg); err != nil {
		return err
	}
	if err := checkTerminal(); err != nil {
		return err
	}

	words, err := resolveWords(cfg)
	if err != nil {
		return err
	}
	policy := engine.PolicyStrict
	if cfg.Policy == "lenient" {
		policy = engine.PolicyLenient
	}
	opts := tui.Options{
		Policy:    policy,
		TimeLimit: time.Duration(cfg.Time) * time.Second,
	}

	gen := generator.New()
	generate := newTextFunc(gen, cfg, words)

	model := tui.NewModel(opts, generate)
	program := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

func newTextFunc(gen *generator.Generator, cfg practiceConfig, words []string) func() string {
	timed := cfg.Time > 0
	punctRunes := []rune(cfg.PunctSet)
	return func() string {
		if cfg.Source == "sentences" {
			if timed {
				return gen.Sentences(timedBufferSentences)
			}
			return gen.Sentence()
		}
		count := cfg.Words
		if timed {
			count = timedBufferWords
		}
		return gen.Text(words, count, cfg.CapsPct, cfg.PunctPct, punctRunes)
	}
}

func resolveWords(cfg practiceConfig) ([]string, error) {
	if cfg.Source == "sentences" {
		return nil, nil
	}
	path := cfg.Wordlist
	if path == "" {
		candidate := config.DefaultWordListPath(cfg.Lang)
		if _, err := os.Stat(candidate); err == nil {
			path = candidate
		} else if cfg.Lang == defaultLang {
			return wordlist.Default(), nil
		} else {
			return nil, wordListLoadError(cfg.Lang, candidate)
		}
	}
	words, err := wordlist.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load word list: %w", err)
	}
	filtered := wordlist.Apply(words, wordlist.FilterForLang(cfg.Lang))
	if len(filtered) == 0 {
		return nil, fmt.Errorf("word list %s has no usable words for lang %q", path, cfg.Lang)
	}
	return filtered, nil
}

func checkTerminal() error {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return fmt.Errorf("zootype needs an interactive terminal")
	}
	width, _, err := term.GetSize(fd)
	if err != nil {
		return fmt.Errorf("failed to get terminal size: %w", err)
	}
	if width < minTerminalWidth {
		return fmt.Errorf("terminal too narrow: %d columns (minimum %d)", width, minTerminalWidth)
	}
	return nil
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.DefaultPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("editor command is empty")
	}
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

func newLangsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "langs",
		Short: "List available word-list languages",
		Args:  cobra.NoArgs,
		RunE:  runLangsCmd,
	}
}

func runLangsCmd(cmd *cobra.Command, _ []string) error {
	langs := map[string]struct{}{defaultLang: {}}
	entries, err := os.ReadDir(config.DefaultWordListDir())
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to read wordlist directory: %w", err)
	}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !strings.HasSuffix(name, ".txt") {
			continue
		}
		langs[strings.TrimSuffix(name, ".txt")] = struct{}{}
	}
	sorted := make([]string, 0, len(langs))
	for lang := range langs {
		sorted = append(sorted, lang)
	}
	sort.Strings(sorted)
	for _, lang := range sorted {
		if _, err := fmt.Fprintln(cmd.OutOrStdout(), lang); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}

func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyIntConfig(cmd *cobra.Command, name string, target, value *int) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyFloatConfig(cmd *cobra.Command, name string, target, value *float64) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func validateConfig(cfg practiceConfig) error {
	if cfg.Time < 0 {
		return fmt.Errorf("--time must be >= 0")
	}
	if cfg.Time == 0 && cfg.Words <= 0 {
		return fmt.Errorf("--words must be > 0")
	}
	if cfg.Source != "words" && cfg.Source != "sentences" {
		return fmt.Errorf("--source must be words or sentences")
	}
	if cfg.CapsPct < 0 || cfg.CapsPct > 1 {
		return fmt.Errorf("--caps must be between 0 and 1")
	}
	if cfg.PunctPct < 0 || cfg.PunctPct > 1 {
		return fmt.Errorf("--punct must be between 0 and 1")
	}
	if cfg.PunctSet == "" {
		return fmt.Errorf("--punct-set must not be empty")
	}
	if cfg.Policy != "strict" && cfg.Policy != "lenient" {
		return fmt.Errorf("--policy must be strict or lenient")
	}
	return nil
}

func wordListLoadError(lang, path string) error {
	lines := []string{
		fmt.Sprintf("no word list for language %q", lang),
		fmt.Sprintf("expected word list at: %s", path),
		"Place a one-word-per-line file there or pass --wordlist <path>",
		"List available languages: zootype langs",
	}
	return fmt.Errorf("%s", strings.Join(lines, "\n"))
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# zootype configuration
# Uncomment a value to enable it. CLI flags override config values.

[practice]
# lang = %q              # Language code
# words = %d             # Word count mode: complete N words, untimed
# time = 30              # Timed mode: type for N seconds
# source = %q            # Text source: words or sentences
# caps = %.2f            # Probability of capitalized first letter (0-1)
# punct = %.2f           # Punctuation probability per word (0-1)
# punct-set = %q         # Punctuation set
# policy = %q            # Error policy: strict or lenient
`,
		defaultLang,
		defaultWords,
		defaultSource,
		defaultCaps,
		defaultPunct,
		defaultPunctSet,
		defaultPolicy,
	)
}
