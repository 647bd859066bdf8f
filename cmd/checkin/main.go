package main

import (
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/mattn/go-isatty"

	"github.com/julianstephens/checkin/internal/cli"
	"github.com/julianstephens/checkin/internal/cli/backups"
	"github.com/julianstephens/checkin/internal/cli/checkins"
	"github.com/julianstephens/checkin/internal/cli/system"
	"github.com/julianstephens/checkin/internal/config"
	"github.com/julianstephens/checkin/internal/constants"
	"github.com/julianstephens/checkin/internal/errors"
	"github.com/julianstephens/checkin/internal/logger"
	"github.com/julianstephens/checkin/internal/storage"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Path to config.yaml." type:"string" default:"~/.config/checkin/config.yaml"`
	Storage string `help:"Storage target: a .db (SQLite) or .json file path, 'memory', 'postgres' (connection from ${env_db} or the OS keyring), or a PostgreSQL URL without a password."`
	Debug   bool   `help:"Log debug output to stderr."`

	Tui      system.TuiCmd       `cmd:"" help:"Launch the interactive TUI." default:"1"`
	Add      checkins.AddCmd      `cmd:"" help:"Check in now."`
	Today    checkins.TodayCmd    `cmd:"" help:"Show today's check-in counts."`
	Log      checkins.LogCmd      `cmd:"" help:"List check-ins, newest first."`
	Calendar checkins.CalendarCmd `cmd:"" help:"Show a month calendar of check-ins."`
	Export   checkins.ExportCmd   `cmd:"" help:"Export check-ins as JSON, YAML or iCalendar."`
	Habits   checkins.HabitsCmd   `cmd:"" help:"List the tracked habits."`
	Init     system.InitCmd       `cmd:"" help:"Initialize checkin storage."`
	Migrate  system.MigrateCmd    `cmd:"" help:"Run database migrations."`
	Doctor   system.DoctorCmd     `cmd:"" help:"Run health checks and diagnostics."`
	Backup   struct {
		Create  backups.BackupCreateCmd  `cmd:"" help:"Create a manual backup." default:"1"`
		List    backups.BackupListCmd    `cmd:"" help:"List available backups."`
		Restore backups.BackupRestoreCmd `cmd:"" help:"Restore from a backup."`
	} `cmd:"" help:"Manage storage backups."`
	Keyring struct {
		Set    system.KeyringSetCmd    `cmd:"" help:"Store the PostgreSQL connection string in the OS keyring."`
		Get    system.KeyringGetCmd    `cmd:"" help:"Show the stored connection string (password masked)."`
		Delete system.KeyringDeleteCmd `cmd:"" help:"Remove the stored connection string."`
		Status system.KeyringStatusCmd `cmd:"" help:"Check OS keyring availability."`
	} `cmd:"" help:"Manage PostgreSQL credentials in the OS keyring."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Parking and water check-ins from the terminal"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{
			"version":     constants.Version,
			"env_db":      constants.EnvDBConnection,
		},
	)

	cfg, err := config.Load(config.Options{
		ConfigFile: CLI.Config,
		Storage:    CLI.Storage,
		Debug:      CLI.Debug,
	})
	if err != nil {
		errors.Fatal(err)
	}

	if err := logger.Init(logger.Config{Debug: cfg.Debug, ConfigDir: cfg.Dir}); err != nil {
		errors.Report(err)
	}
	logger.Debug("Starting", "command", ctx.Command(), "storage", cfg.Storage)

	group := strings.Fields(ctx.Command())[0]

	// keyring commands manage the credentials OpenStore would need
	var store storage.Provider
	if group != "keyring" {
		store, err = cli.OpenStore(cfg)
		if err != nil {
			errors.Fatal(err)
		}
		defer func() {
			if err := store.Close(); err != nil {
				errors.Report(err)
			}
		}()
	}

	appCtx, err := cli.NewContext(cfg, store)
	if err != nil {
		errors.Fatal(err)
	}
	if isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd()) {
		appCtx.Prompt = cli.FormPrompter{}
	}

	// init and doctor load the store themselves
	if store != nil && group != "init" && group != "doctor" {
		if err := store.Load(); err != nil {
			errors.Fatal(err)
		}
	}

	if err := ctx.Run(appCtx); err != nil {
		if store != nil {
			store.Close()
		}
		errors.Fatal(err)
	}
}
