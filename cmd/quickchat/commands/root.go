package commands

import (
	"github.com/gookit/color"
	"github.com/spf13/cobra"

	"quickchat/internal/app"
)

var (
	home       string
	passphrase string
	logLevel   string
	logFormat  string
	noColor    bool
	appCtx     *app.Wire
)

// Execute runs the CLI against os.Args.
func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "quickchat",
		Short:         "Bounded message registry with a ten-slot id pool",
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.LoadConfig(".env")
			if err != nil {
				return err
			}
			flags := cmd.Flags()
			if flags.Changed("home") {
				cfg.Home = home
			}
			if flags.Changed("passphrase") {
				cfg.Passphrase = passphrase
			}
			if flags.Changed("log-level") {
				cfg.LogLevel = logLevel
			}
			if flags.Changed("log-format") {
				cfg.LogFormat = logFormat
			}
			if noColor {
				color.Enable = false
			}

			w, err := app.NewWire(cfg, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			appCtx = w
			return nil
		},
	}

	root.PersistentFlags().StringVar(&home, "home", "", "data dir (default ~/.quickchat)")
	root.PersistentFlags().StringVarP(&passphrase, "passphrase", "p", "", "passphrase to seal the stored messages file")
	root.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "log level (debug, info, warn, error)")
	root.PersistentFlags().StringVar(&logFormat, "log-format", "text", "log format (text, json)")
	root.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable coloured output")

	root.AddCommand(
		sendCmd(),
		storeCmd(),
		disregardCmd(),
		deleteCmd(),
		getCmd(),
		listCmd(),
		searchCmd(),
		longestCmd(),
		pairsCmd(),
		reportCmd(),
		shellCmd(),
	)
	return root
}
