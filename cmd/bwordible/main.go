// Package main provides the CLI entrypoint for bwordible.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"
	_ "time/tzdata"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/verte-zerg/bwordible/internal/calendar"
	"github.com/verte-zerg/bwordible/internal/config"
	"github.com/verte-zerg/bwordible/internal/game"
	"github.com/verte-zerg/bwordible/internal/ledger"
	"github.com/verte-zerg/bwordible/internal/logging"
	"github.com/verte-zerg/bwordible/internal/model"
	"github.com/verte-zerg/bwordible/internal/schedule"
	"github.com/verte-zerg/bwordible/internal/stats"
	"github.com/verte-zerg/bwordible/internal/statsui"
	"github.com/verte-zerg/bwordible/internal/store"
	"github.com/verte-zerg/bwordible/internal/tui"
	"github.com/verte-zerg/bwordible/internal/wordlist"
)

const defaultLogLevel = "info"

var (
	flagToday   string
	flagDate    string
	flagTZ      string
	flagStart   string
	flagAnswers string
	flagGuesses string

	statsPlain bool

	puzzleDate   string
	puzzleReveal bool
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "bwordible",
		Short:         "Daily Bible-themed word puzzle",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runPlayCmd,
	}
	rootCmd.PersistentFlags().StringVar(&flagToday, "today", "", "simulate today's date (YYYY-MM-DD)")
	rootCmd.PersistentFlags().StringVar(&flagTZ, "tz", game.DefaultTimeZone, "IANA time zone that defines the puzzle day")
	rootCmd.PersistentFlags().StringVar(&flagStart, "start", schedule.DefaultStartDate.String(), "first live daily puzzle (YYYY-MM-DD)")
	rootCmd.PersistentFlags().StringVar(&flagAnswers, "answers", config.DefaultAnswersPath(), "answer corpus file")
	rootCmd.PersistentFlags().StringVar(&flagGuesses, "guesses", config.DefaultGuessesPath(), "allowed guesses file")
	rootCmd.Flags().StringVar(&flagDate, "date", "", "replay a released date (YYYY-MM-DD)")

	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newStatsCmd())
	rootCmd.AddCommand(newArchiveCmd())
	rootCmd.AddCommand(newPuzzleCmd())

	return rootCmd
}

// app bundles everything opened for one command run.
type app struct {
	cfg     model.Config
	logger  *zap.Logger
	store   *store.Store
	session *game.Session
	answers []string
	guesses *wordlist.Guesses
}

func runPlayCmd(cmd *cobra.Command, _ []string) error {
	a, err := openApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()
	return a.play(cmd.Context(), a.cfg.Date)
}

func (a *app) play(ctx context.Context, date string) error {
	if _, err := a.session.Open(ctx, date); err != nil {
		return fmt.Errorf("failed to open puzzle: %w", err)
	}
	m := tui.NewModel(a.session, tui.Options{Logger: a.logger})
	program := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

func openApp(cmd *cobra.Command) (*app, error) {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return nil, err
	}
	loc, err := validateConfig(cfg)
	if err != nil {
		return nil, err
	}

	logger, err := logging.New(cfg.LogPath, cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	answers, err := wordlist.LoadAnswers(cfg.AnswersPath)
	if err != nil {
		_ = logger.Sync()
		return nil, wordListLoadError(cfg.AnswersPath, err)
	}
	guesses, err := loadGuesses(cfg.GuessesPath, logger)
	if err != nil {
		_ = logger.Sync()
		return nil, err
	}

	st, err := store.Open(cfg.DBPath)
	if err != nil {
		_ = logger.Sync()
		return nil, fmt.Errorf("failed to open db: %w", err)
	}

	start := calendar.Key(cfg.StartDate)
	led, err := ledger.Open(context.Background(), st, ledger.Options{
		StorageKey: cfg.StorageKey,
		StartDate:  start,
		Logger:     logger,
	})
	if err != nil {
		if cerr := st.Close(); cerr != nil {
			logErrf("failed to close db: %v\n", cerr)
		}
		_ = logger.Sync()
		return nil, fmt.Errorf("failed to load progress: %w", err)
	}

	sched := schedule.New(answers, start, cfg.Seed)
	session := game.New(sched, led, guesses, game.Options{
		Location:       loc,
		SimulatedToday: cfg.Today,
		Logger:         logger,
	})
	logger.Info("session ready",
		zap.String("today", session.Today().String()),
		zap.String("zone", loc.String()),
		zap.Int("answers", len(answers)),
		zap.Int("guesses", guesses.Total()))

	return &app{
		cfg:     cfg,
		logger:  logger,
		store:   st,
		session: session,
		answers: answers,
		guesses: guesses,
	}, nil
}

// Close releases the store and flushes the logger.
func (a *app) Close() {
	if cerr := a.store.Close(); cerr != nil {
		logErrf("failed to close db: %v\n", cerr)
	}
	if serr := a.logger.Sync(); serr != nil {
		// Best-effort flush.
		_ = serr
	}
}

func loadGuesses(path string, logger *zap.Logger) (*wordlist.Guesses, error) {
	guesses, err := wordlist.LoadGuesses(path)
	if err == nil {
		return guesses, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		logger.Warn("allowed guesses file missing; only answers are accepted", zap.String("path", path))
		return wordlist.LoadGuesses("")
	}
	return nil, fmt.Errorf("failed to load guesses from %s: %w", path, err)
}

// resolveConfig layers defaults, the config file, the environment and flags.
func resolveConfig(cmd *cobra.Command) (model.Config, error) {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return model.Config{}, fmt.Errorf("failed to load config: %w", err)
	}
	envCfg, err := config.ParseEnv()
	if err != nil {
		return model.Config{}, fmt.Errorf("failed to load config: %w", err)
	}

	cfg := model.Config{
		Seed:       schedule.DefaultSeed,
		DBPath:     config.DefaultDBPath(),
		StorageKey: ledger.DefaultStorageKey,
		LogLevel:   defaultLogLevel,
		LogPath:    config.DefaultLogPath(),
	}
	applyStringConfig(cmd, "tz", &flagTZ, fileCfg.Game.TimeZone)
	applyStringConfig(cmd, "start", &flagStart, fileCfg.Game.StartDate)
	applyStringConfig(cmd, "answers", &flagAnswers, fileCfg.Game.Answers)
	applyStringConfig(cmd, "guesses", &flagGuesses, fileCfg.Game.Guesses)
	applyStringConfig(cmd, "", &cfg.Seed, fileCfg.Game.Seed)
	applyStringConfig(cmd, "", &cfg.DBPath, fileCfg.Storage.DB)
	applyStringConfig(cmd, "", &cfg.StorageKey, fileCfg.Storage.Key)
	applyStringConfig(cmd, "", &cfg.LogLevel, fileCfg.Log.Level)
	applyStringConfig(cmd, "", &cfg.LogPath, fileCfg.Log.Path)

	applyEnvConfig(cmd, "tz", &flagTZ, envCfg.TimeZone)
	applyEnvConfig(cmd, "start", &flagStart, envCfg.StartDate)
	applyEnvConfig(cmd, "answers", &flagAnswers, envCfg.Answers)
	applyEnvConfig(cmd, "guesses", &flagGuesses, envCfg.Guesses)
	applyEnvConfig(cmd, "today", &flagToday, envCfg.Today)
	applyEnvConfig(cmd, "", &cfg.Seed, envCfg.Seed)
	applyEnvConfig(cmd, "", &cfg.DBPath, envCfg.DB)
	applyEnvConfig(cmd, "", &cfg.LogLevel, envCfg.LogLevel)

	cfg.TimeZone = flagTZ
	cfg.StartDate = flagStart
	cfg.AnswersPath = flagAnswers
	cfg.GuessesPath = flagGuesses
	cfg.Today = flagToday
	cfg.Date = flagDate
	return cfg, nil
}

func validateConfig(cfg model.Config) (*time.Location, error) {
	loc, err := time.LoadLocation(cfg.TimeZone)
	if err != nil {
		return nil, fmt.Errorf("invalid time zone %q: %w", cfg.TimeZone, err)
	}
	if _, err := calendar.Parse(cfg.StartDate); err != nil {
		return nil, fmt.Errorf("--start must be a YYYY-MM-DD date: %w", err)
	}
	if cfg.Seed == "" {
		return nil, fmt.Errorf("seed must not be empty")
	}
	if cfg.AnswersPath == "" {
		return nil, fmt.Errorf("--answers must not be empty")
	}
	if cfg.DBPath == "" {
		return nil, fmt.Errorf("db path must not be empty")
	}
	if _, err := logging.ParseLevel(cfg.LogLevel); err != nil {
		return nil, err
	}
	return loc, nil
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

func newStatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show stats",
		Args:  cobra.NoArgs,
		RunE:  runStatsCmd,
	}
	cmd.Flags().BoolVar(&statsPlain, "plain", false, "print a plain-text report instead of the TUI")
	return cmd
}

func runStatsCmd(cmd *cobra.Command, _ []string) error {
	a, err := openApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	if statsPlain || !term.IsTerminal(int(os.Stdout.Fd())) {
		report := stats.BuildReport(a.session, len(a.answers), a.guesses.Total())
		if err := stats.RenderReport(cmd.OutOrStdout(), report, stats.TerminalWidth(), false); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		return nil
	}
	return a.browse(cmd.Context(), statsui.TabOverview)
}

func newArchiveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "archive",
		Short: "Browse and replay released puzzles",
		Args:  cobra.NoArgs,
		RunE:  runArchiveCmd,
	}
}

func runArchiveCmd(cmd *cobra.Command, _ []string) error {
	a, err := openApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()
	return a.browse(cmd.Context(), statsui.TabArchive)
}

// browse runs the stats screen and plays the archive date picked there.
func (a *app) browse(ctx context.Context, tab int) error {
	m := statsui.NewModel(a.session, len(a.answers), a.guesses.Total(), tab)
	program := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run stats TUI: %w", err)
	}
	key, ok := m.Selected()
	if !ok {
		return nil
	}
	a.logger.Info("replaying from archive", zap.String("date", key.String()))
	return a.play(ctx, key.String())
}

func newPuzzleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "puzzle",
		Short: "Print the scheduled puzzle for a date",
		Args:  cobra.NoArgs,
		RunE:  runPuzzleCmd,
	}
	cmd.Flags().StringVar(&puzzleDate, "date", "", "date to inspect (default: today)")
	cmd.Flags().BoolVar(&puzzleReveal, "reveal", false, "show the answer")
	return cmd
}

func runPuzzleCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	loc, err := validateConfig(cfg)
	if err != nil {
		return err
	}
	answers, err := wordlist.LoadAnswers(cfg.AnswersPath)
	if err != nil {
		return wordListLoadError(cfg.AnswersPath, err)
	}

	key := calendar.KeyFor(time.Now(), loc)
	if calendar.IsValid(cfg.Today) {
		key = calendar.Key(cfg.Today)
	}
	if puzzleDate != "" {
		key, err = calendar.Parse(puzzleDate)
		if err != nil {
			return fmt.Errorf("invalid --date value: %w", err)
		}
	}

	sched := schedule.New(answers, calendar.Key(cfg.StartDate), cfg.Seed)
	plan, err := sched.Select(key)
	if err != nil {
		return fmt.Errorf("failed to select puzzle for %s: %w", key, err)
	}
	return writePlan(cmd.OutOrStdout(), key, loc, plan, puzzleReveal)
}

func writePlan(w io.Writer, key calendar.Key, loc *time.Location, plan schedule.Plan, reveal bool) error {
	answer := strings.Repeat("*", plan.Length)
	if reveal {
		answer = plan.Answer
	}
	lines := [][2]string{
		{"Date", fmt.Sprintf("%s (%s)", key, calendar.Format(key, loc))},
		{"Cycle", fmt.Sprintf("%d (from %s)", plan.CycleYear, plan.CycleStart)},
		{"Position", fmt.Sprintf("%d", plan.Position)},
		{"Answer index", fmt.Sprintf("%d", plan.AnswerIndex)},
		{"Length", fmt.Sprintf("%d", plan.Length)},
		{"Max guesses", fmt.Sprintf("%d", plan.MaxGuesses)},
		{"Answer", answer},
	}
	for _, line := range lines {
		if _, err := fmt.Fprintf(w, "%-13s %s\n", line[0]+":", line[1]); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}

func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil {
		return
	}
	if name != "" && cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyEnvConfig(cmd *cobra.Command, name string, target *string, value string) {
	if value == "" {
		return
	}
	applyStringConfig(cmd, name, target, &value)
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# bwordible configuration
# Uncomment a value to enable it. Environment variables and CLI flags override config values.

[game]
# time-zone = %q   # IANA zone that defines the puzzle day
# start-date = %q          # First live daily puzzle
# seed = %q              # Permutation seed prefix
# answers = %q
# guesses = %q

[storage]
# db = %q
# key = %q

[log]
# level = %q                     # debug, info, warn, error
# path = %q
`,
		game.DefaultTimeZone,
		schedule.DefaultStartDate,
		schedule.DefaultSeed,
		config.DefaultAnswersPath(),
		config.DefaultGuessesPath(),
		config.DefaultDBPath(),
		ledger.DefaultStorageKey,
		defaultLogLevel,
		config.DefaultLogPath(),
	)
}

func wordListLoadError(path string, err error) error {
	lines := []string{
		fmt.Sprintf("failed to load answers: %v", err),
		fmt.Sprintf("expected answer list at: %s", path),
		"Pass --answers <file> or set answers in the [game] section of the config.",
		"Run: bwordible config",
	}
	return fmt.Errorf("%s", strings.Join(lines, "\n"))
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
