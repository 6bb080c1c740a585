package main

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/germtb/gox-wrapper/components/wrapper"
	"github.com/germtb/gox-wrapper/internal/config"
	"github.com/germtb/gox-wrapper/internal/logging"
	"github.com/germtb/gox-wrapper/style"
)

// app carries what every subcommand needs once configuration is loaded.
type app struct {
	v      *viper.Viper
	cfg    *config.Config
	logger logging.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New()}
	var cfgFile string

	root := &cobra.Command{
		Use:           "goxwrap",
		Short:         "Render children inside the styled Wrapper component",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := config.Init(a.v, cfgFile); err != nil {
				return err
			}
			cfg, err := config.Load(a.v)
			if err != nil {
				return err
			}
			a.cfg = cfg
			a.logger = cfg.Logger()
			return nil
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default .goxwrap.yml, or GOXWRAP_CONFIG_FILE)")
	flags.String("styles", "", "YAML or JSON class map")
	flags.String("module", "", "module name used to derive class identifiers when no class map is given")
	flags.StringP("log-level", "l", "", "log level (debug, info, warn, error)")
	flags.String("log-format", "", "log format (text, json)")
	// A bind failure is a misspelled flag name.
	cobra.CheckErr(bindFlags(a.v, flags, map[string]string{
		"styles.file":   "styles",
		"styles.module": "module",
		"log.level":     "log-level",
		"log.format":    "log-format",
	}))

	root.AddCommand(
		newRenderCmd(a),
		newClassesCmd(a),
		newPreviewCmd(a),
		newVersionCmd(),
	)
	return root
}

// bindFlags binds config keys to flag names.
func bindFlags(v *viper.Viper, flags *pflag.FlagSet, keys map[string]string) error {
	for key, name := range keys {
		if err := v.BindPFlag(key, flags.Lookup(name)); err != nil {
			return errors.Wrapf(err, "bind --%s to %s", name, key)
		}
	}
	return nil
}

// sheet loads the configured class map, or derives one from the module name.
func (a *app) sheet() (style.Sheet, error) {
	if a.cfg.Styles.File != "" {
		return style.Load(a.cfg.Styles.File)
	}
	return style.Module(a.cfg.Styles.Module, wrapper.RootClass), nil
}

// styles returns the lookup for the wrapper. With styles.watch set, the
// lookup follows the file until ctx is done.
func (a *app) styles(ctx context.Context) (style.Lookup, error) {
	if !a.cfg.Styles.Watch {
		return a.sheet()
	}

	live := &style.Live{}
	w, err := style.NewWatcher(a.cfg.Styles.File, live, a.logger)
	if err != nil {
		return nil, err
	}
	go func() {
		defer w.Close()
		if err := w.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			a.logger.Error(ctx, err, "style watcher stopped")
		}
	}()
	return live, nil
}
