// Package main provides the CLI entrypoint for tuiarcade.
package main

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/verte-zerg/tuiarcade/internal/config"
	"github.com/verte-zerg/tuiarcade/internal/game"
	"github.com/verte-zerg/tuiarcade/internal/generator"
	"github.com/verte-zerg/tuiarcade/internal/model"
	"github.com/verte-zerg/tuiarcade/internal/stats"
	"github.com/verte-zerg/tuiarcade/internal/store"
	"github.com/verte-zerg/tuiarcade/internal/tui"
	"github.com/verte-zerg/tuiarcade/internal/wordlist"
)

const (
	defaultFPS              = 30
	defaultThrowCooldownMs  = 150
	defaultSwingSeconds     = 30
	defaultCollectorSeconds = 30
	defaultTypingSeconds    = 60
)

var (
	playMode             string
	playSeed             int64
	playWordsFile        string
	playFPS              int
	playThrowCooldown    int
	playSwingSeconds     int
	playCollectorSeconds int
	playTypingSeconds    int
	playSummary          string

	wordsFile string
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "tuiarcade",
		Short:         "Terminal mini-game arcade",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runPlayCmd,
	}

	rootCmd.Flags().StringVar(&playMode, "mode", "", "start directly in a mode: swing, collector or typing")
	rootCmd.Flags().Int64Var(&playSeed, "seed", 0, "random seed (0 picks one from the clock)")
	rootCmd.Flags().StringVar(&playWordsFile, "words-file", "", "word list for typing mode, one word per line")
	rootCmd.Flags().IntVar(&playFPS, "fps", defaultFPS, "frames per second")
	rootCmd.Flags().IntVar(&playThrowCooldown, "throw-cooldown", defaultThrowCooldownMs, "minimum milliseconds between darts (0 disables)")
	rootCmd.Flags().IntVar(&playSwingSeconds, "swing-seconds", defaultSwingSeconds, "swing session length")
	rootCmd.Flags().IntVar(&playCollectorSeconds, "collector-seconds", defaultCollectorSeconds, "collector session length")
	rootCmd.Flags().IntVar(&playTypingSeconds, "typing-seconds", defaultTypingSeconds, "typing session length")
	rootCmd.Flags().StringVar(&playSummary, "summary", stats.FormatNone, "print a round summary on exit: none, text or yaml")

	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newWordsCmd())

	return rootCmd
}

func runPlayCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := loadPlayConfig(cmd)
	if err != nil {
		return err
	}
	if err := validateConfig(cfg); err != nil {
		return err
	}
	mode, _ := game.ParseMode(cfg.Mode)
	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("tuiarcade needs an interactive terminal")
	}

	vocabulary, err := loadVocabulary(cfg.WordsFile)
	if err != nil {
		return err
	}

	st, err := store.Open()
	if err != nil {
		return fmt.Errorf("failed to open round journal: %w", err)
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			logErrf("failed to close round journal: %v\n", cerr)
		}
	}()

	gen := generator.New(cfg.Seed)
	ctrl := game.NewController(buildRules(cfg, vocabulary), gen)
	arcade := tui.NewModel(ctrl, st, cfg.FPS)
	arcade.SetInitialMode(mode)

	program := tea.NewProgram(arcade, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}

	if cfg.Summary == stats.FormatText {
		logErrf("seed %d\n", gen.Seed())
	}
	if err := stats.WriteSummary(cmd.OutOrStdout(), arcade.Report(), cfg.Summary); err != nil {
		return fmt.Errorf("failed to write summary: %w", err)
	}
	return nil
}

// loadPlayConfig merges the config file, the environment and the flags, in
// increasing order of precedence.
func loadPlayConfig(cmd *cobra.Command) (model.Config, error) {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return model.Config{}, fmt.Errorf("failed to load config: %w", err)
	}
	envCfg, err := config.ParseEnv()
	if err != nil {
		return model.Config{}, fmt.Errorf("failed to load environment: %w", err)
	}
	gameCfg := fileCfg.Game
	envCfg.Merge(&gameCfg)

	applyStringConfig(cmd, "mode", &playMode, gameCfg.Mode)
	applyInt64Config(cmd, "seed", &playSeed, gameCfg.Seed)
	applyStringConfig(cmd, "words-file", &playWordsFile, gameCfg.WordsFile)
	applyIntConfig(cmd, "fps", &playFPS, gameCfg.FPS)
	applyIntConfig(cmd, "throw-cooldown", &playThrowCooldown, gameCfg.ThrowCooldownMs)
	applyIntConfig(cmd, "swing-seconds", &playSwingSeconds, gameCfg.SwingSeconds)
	applyIntConfig(cmd, "collector-seconds", &playCollectorSeconds, gameCfg.CollectorSeconds)
	applyIntConfig(cmd, "typing-seconds", &playTypingSeconds, gameCfg.TypingSeconds)
	applyStringConfig(cmd, "summary", &playSummary, gameCfg.Summary)

	return model.Config{
		Mode:             strings.TrimSpace(strings.ToLower(playMode)),
		Seed:             playSeed,
		WordsFile:        playWordsFile,
		FPS:              playFPS,
		ThrowCooldownMs:  playThrowCooldown,
		SwingSeconds:     playSwingSeconds,
		CollectorSeconds: playCollectorSeconds,
		TypingSeconds:    playTypingSeconds,
		Summary:          strings.TrimSpace(strings.ToLower(playSummary)),
	}, nil
}

func buildRules(cfg model.Config, vocabulary []string) game.Rules {
	rules := game.DefaultRules()
	rules.SwingSeconds = cfg.SwingSeconds
	rules.CollectorSeconds = cfg.CollectorSeconds
	rules.TypingSeconds = cfg.TypingSeconds
	rules.ThrowCooldown = time.Duration(cfg.ThrowCooldownMs) * time.Millisecond
	rules.Vocabulary = vocabulary
	return rules
}

func loadVocabulary(path string) ([]string, error) {
	if path == "" {
		return wordlist.Default(), nil
	}
	words, err := wordlist.LoadWords(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load word list %s: %w", path, err)
	}
	return words, nil
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
	path := config.DefaultConfigPath()
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

func newWordsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "words",
		Short: "List the typing vocabulary",
		Args:  cobra.NoArgs,
		RunE:  runWordsCmd,
	}
	cmd.Flags().StringVar(&wordsFile, "words-file", "", "word list to check instead of the built-in one")
	return cmd
}

func runWordsCmd(cmd *cobra.Command, _ []string) error {
	words, err := loadVocabulary(wordsFile)
	if err != nil {
		return err
	}
	for _, word := range words {
		if _, err := fmt.Fprintln(cmd.OutOrStdout(), word); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	logErrf("%d playable words\n", len(words))
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

func applyInt64Config(cmd *cobra.Command, name string, target, value *int64) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# tuiarcade configuration
# Uncomment a value to enable it. Environment variables (TUIARCADE_SEED,
# TUIARCADE_WORDS_FILE, TUIARCADE_FPS) override it; CLI flags override both.

[game]
# mode = "swing"             # Start directly in swing, collector or typing
# seed = 0                   # Random seed, 0 picks one from the clock
# words-file = ""            # Word list for typing mode
# fps = %d                   # Frames per second
# throw-cooldown = %d       # Minimum milliseconds between darts
# swing-seconds = %d         # Swing session length
# collector-seconds = %d     # Collector session length
# typing-seconds = %d        # Typing session length
# summary = "none"           # Round summary on exit: none, text or yaml
`,
		defaultFPS,
		defaultThrowCooldownMs,
		defaultSwingSeconds,
		defaultCollectorSeconds,
		defaultTypingSeconds,
	)
}

func validateConfig(cfg model.Config) error {
	if cfg.FPS <= 0 || cfg.FPS > 120 {
		return fmt.Errorf("--fps must be between 1 and 120")
	}
	if cfg.ThrowCooldownMs < 0 {
		return fmt.Errorf("--throw-cooldown must be >= 0")
	}
	if cfg.SwingSeconds <= 0 {
		return fmt.Errorf("--swing-seconds must be > 0")
	}
	if cfg.CollectorSeconds <= 0 {
		return fmt.Errorf("--collector-seconds must be > 0")
	}
	if cfg.TypingSeconds <= 0 {
		return fmt.Errorf("--typing-seconds must be > 0")
	}
	if cfg.Mode != "" {
		if _, ok := game.ParseMode(cfg.Mode); !ok {
			return fmt.Errorf("--mode must be one of swing, collector, typing")
		}
	}
	switch cfg.Summary {
	case stats.FormatNone, stats.FormatText, stats.FormatYAML:
	default:
		return fmt.Errorf("--summary must be one of none, text, yaml")
	}
	return nil
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
