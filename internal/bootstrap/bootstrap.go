package bootstrap

import (
	"context"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	urfavecli "github.com/urfave/cli/v3"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/chmouel/gitsim/internal/app"
	"github.com/chmouel/gitsim/internal/buildinfo"
	"github.com/chmouel/gitsim/internal/cli"
	"github.com/chmouel/gitsim/internal/config"
	log "github.com/chmouel/gitsim/internal/log"
	"github.com/chmouel/gitsim/internal/shell"
	"github.com/chmouel/gitsim/internal/store"
	"github.com/chmouel/gitsim/internal/theme"
)

// stdinIsTerminal is replaced in tests.
var stdinIsTerminal = func() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) // #nosec G115 -- file descriptors fit in int
}

// runProgram starts the TUI; replaced in tests.
var runProgram = func(m *app.Model) error {
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
	return err
}

// Run executes the gitsim command line and returns the process exit code.
func Run(ctx context.Context, args []string) int {
	if err := NewCommand().Run(ctx, args); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return 1
	}
	return 0
}

// NewCommand builds the root gitsim command.
func NewCommand() *urfavecli.Command {
	return &urfavecli.Command{
		Name:                  "gitsim",
		Usage:                 "A training shell for git configuration commands",
		Version:               buildinfo.Version(),
		EnableShellCompletion: true,
		Flags:                 globalFlags(),
		Commands: []*urfavecli.Command{
			execCommand(),
			themesCommand(),
			versionCommand(),
		},
		Action: runRoot,
	}
}

// simulator bundles everything one session runs on.
type simulator struct {
	cfg     *config.AppConfig
	loader  configLoader
	interp  *shell.Interpreter
	store   *store.Store
	session *shell.Session
}

// newSimulator loads configuration, sets up logging and creates a fresh
// store and session from the configured seed, banner and branch.
func newSimulator(cmd *urfavecli.Command, withBanner bool) (*simulator, error) {
	loader := configLoader{
		file:      cmd.String("config-file"),
		theme:     cmd.String("theme"),
		branch:    cmd.String("branch"),
		overrides: cmd.StringSlice("config"),
	}
	cfg, err := loadCLIConfig(loader)
	if err != nil {
		return nil, err
	}
	setupLogging(cmd.String("debug-log"), cfg)

	var banner []string
	if withBanner {
		banner = cfg.SessionBanner(shell.DefaultBanner(buildinfo.Version()))
	}
	sess := shell.NewSession(banner...)
	sess.CurrentBranch = cfg.DefaultBranch

	sim := &simulator{
		cfg:     cfg,
		loader:  loader,
		interp:  shell.New(shell.WithLogger(log.Logger())),
		store:   newStore(cfg),
		session: sess,
	}
	log.Logger().Debug("session started",
		zap.String("session", sess.ID),
		zap.String("branch", sess.CurrentBranch),
		zap.Int("seed", sim.store.Len()),
		zap.String("config", cfg.Path),
	)
	return sim, nil
}

// newStore seeds the store from configuration, or with the default
// entries when no seed was configured.
func newStore(cfg *config.AppConfig) *store.Store {
	if !cfg.SeedSet {
		return store.NewSeeded()
	}
	return store.New(cfg.Seed...)
}

func (s *simulator) logSummary(sum cli.Summary) {
	log.Logger().Info("session finished",
		zap.String("session", s.session.ID),
		zap.Int("lines", sum.Lines),
		zap.Int("mutations", sum.Mutations),
		zap.Bool("exited", sum.Exited),
	)
}

// runRoot is the default action: the TUI on a terminal, line mode otherwise.
func runRoot(ctx context.Context, cmd *urfavecli.Command) error {
	if cmd.Args().Len() > 0 {
		return fmt.Errorf("unexpected arguments %q, use 'gitsim exec' to run commands", strings.Join(cmd.Args().Slice(), " "))
	}

	sim, err := newSimulator(cmd, true)
	if err != nil {
		return err
	}
	defer closeLog()

	if cmd.Bool("plain") || !stdinIsTerminal() {
		return runPlain(ctx, sim, cmd.Root().Reader, cmd.Root().Writer)
	}
	return runTUI(sim)
}

func runTUI(sim *simulator) error {
	model := app.NewModel(sim.cfg, sim.interp, sim.store, sim.session,
		app.WithReloader(sim.loader.load))
	if err := runProgram(model); err != nil {
		return fmt.Errorf("error running app: %w", err)
	}
	log.Logger().Info("session finished",
		zap.String("session", sim.session.ID),
		zap.String("branch", sim.session.CurrentBranch),
		zap.Int("store_len", sim.store.Len()),
	)
	return nil
}

// runPlain prints the banner, then processes in line by line.
func runPlain(ctx context.Context, sim *simulator, in io.Reader, out io.Writer) error {
	if err := cli.WriteTranscript(out, sim.session.Transcript); err != nil {
		return err
	}
	sum, err := cli.RunLines(ctx, sim.interp, sim.store, sim.session, in, out, cli.Options{})
	sim.logSummary(sum)
	return err
}

func execCommand() *urfavecli.Command {
	return &urfavecli.Command{
		Name:      "exec",
		Usage:     "Run commands non-interactively and print the transcript",
		ArgsUsage: "<command line>...",
		// "help" is a simulator command here.
		HideHelpCommand: true,
		Flags: []urfavecli.Flag{
			&urfavecli.BoolFlag{
				Name:    "quiet",
				Aliases: []string{"q"},
				Usage:   "Print command output only, without echoing the input",
			},
		},
		Action: func(ctx context.Context, cmd *urfavecli.Command) error {
			lines := cmd.Args().Slice()
			if len(lines) == 0 {
				return fmt.Errorf("exec needs at least one command line, e.g. gitsim exec \"git config --list\"")
			}

			sim, err := newSimulator(cmd, false)
			if err != nil {
				return err
			}
			defer closeLog()

			sum, err := cli.Exec(ctx, sim.interp, sim.store, sim.session, lines, cmd.Root().Writer, cli.Options{Quiet: cmd.Bool("quiet")})
			sim.logSummary(sum)
			return err
		},
	}
}

func themesCommand() *urfavecli.Command {
	return &urfavecli.Command{
		Name:  "themes",
		Usage: "List available UI themes",
		Action: func(_ context.Context, cmd *urfavecli.Command) error {
			printThemes(cmd.Root().Writer)
			return nil
		},
	}
}

// printThemes prints available themes, marking the dark and light defaults.
func printThemes(w io.Writer) {
	names := theme.AvailableThemes()
	sort.Strings(names)
	fmt.Fprintln(w, "Available themes:")
	for _, name := range names {
		switch name {
		case theme.DefaultDark():
			fmt.Fprintf(w, "  %-18s (default, dark background)\n", name)
		case theme.DefaultLight():
			fmt.Fprintf(w, "  %-18s (default, light background)\n", name)
		default:
			fmt.Fprintf(w, "  %s\n", name)
		}
	}
}

func versionCommand() *urfavecli.Command {
	return &urfavecli.Command{
		Name:  "version",
		Usage: "Print version information",
		Action: func(_ context.Context, cmd *urfavecli.Command) error {
			printVersion(cmd.Root().Writer)
			return nil
		},
	}
}

// printVersion prints version information.
func printVersion(w io.Writer) {
	fmt.Fprint(w, buildinfo.Current())
}
