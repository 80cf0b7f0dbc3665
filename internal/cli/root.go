package cli

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/hallon-go/hallon/internal/config"
	"github.com/hallon-go/hallon/pkg/hallon"
	"github.com/hallon-go/hallon/pkg/hallon/logging"
)

// BindingFactory builds the binding commands talk to.
type BindingFactory func(opts ...hallon.BindingOption) *hallon.Binding

// Deps are the injectable collaborators of the command tree.
type Deps struct {
	Fs         afero.Fs
	NewBinding BindingFactory
}

type app struct {
	deps    Deps
	cfgFile string
	loader  *config.Loader
	cfg     *config.Config
	logger  logging.Logger
}

// Execute runs the hallon command line against the linked libspotify.
func Execute() error {
	return NewRootCmd(Deps{}).Execute()
}

// NewRootCmd returns a fresh command tree. Zero-valued deps select the OS
// filesystem and hallon.Default.
func NewRootCmd(deps Deps) *cobra.Command {
	if deps.Fs == nil {
		deps.Fs = afero.NewOsFs()
	}
	if deps.NewBinding == nil {
		deps.NewBinding = hallon.Default
	}
	a := &app{deps: deps}

	root := &cobra.Command{
		Use:   "hallon",
		Short: "Hallon - libspotify session bindings",
		Long: `Hallon binds a libspotify session to Go. The command line opens a
session from a binary application key and reports its connection state.`,
		Version:       hallon.WrapperVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	root.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default is ./hallon.yaml or $HOME/.hallon/hallon.yaml)")
	root.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")
	root.PersistentFlags().String("log-format", config.FormatConsole, "log format (console, json)")
	root.SetVersionTemplate(`{{with .Name}}{{printf "%s " .}}{{end}}{{printf "version %s" .Version}}
`)

	root.AddCommand(newVersionCmd(a), newStateCmd(a))
	return root
}

func (a *app) setup(cmd *cobra.Command) error {
	a.loader = config.NewLoader(a.deps.Fs, a.cfgFile)
	v := a.loader.Viper()
	if err := v.BindPFlag("log.level", cmd.Flags().Lookup("log-level")); err != nil {
		return err
	}
	if err := v.BindPFlag("log.format", cmd.Flags().Lookup("log-format")); err != nil {
		return err
	}
	for key, flag := range map[string]string{
		"appkey_file":   "appkey-file",
		"user_agent":    "user-agent",
		"settings_path": "settings-path",
		"cache_path":    "cache-path",
		"temp_root":     "temp-root",
	} {
		if f := cmd.Flags().Lookup(flag); f != nil {
			if err := v.BindPFlag(key, f); err != nil {
				return err
			}
		}
	}

	cfg, err := a.loader.Load()
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.logger, err = newLogger(cfg.Log, cmd.ErrOrStderr())
	return err
}

func (a *app) binding() *hallon.Binding {
	return a.deps.NewBinding(
		hallon.WithLogger(a.logger),
		hallon.WithTempRoot(a.cfg.TempRoot),
	)
}

func newLogger(cfg config.LogConfig, w io.Writer) (logging.Logger, error) {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
	}
	if w == nil {
		w = os.Stderr
	}
	if cfg.Format == config.FormatConsole {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	}
	zl := zerolog.New(w).Level(level).With().Timestamp().Logger()
	return logging.NewZerolog(zl), nil
}
