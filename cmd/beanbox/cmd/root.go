package cmd

import (
	"fmt"
	"os"

	"github.com/sghaida/beanbox/config"
	"github.com/sghaida/beanbox/di"
	"github.com/sghaida/beanbox/internal/logging"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// app is the state shared by all subcommands, filled in by PersistentPreRunE.
type app struct {
	cfg     config.Config
	log     *zap.Logger
	catalog *di.Catalog
}

// NewRootCmd builds the command tree over catalog (di.Default() when nil).
func NewRootCmd(catalog *di.Catalog) *cobra.Command {
	if catalog == nil {
		catalog = di.Default()
	}
	a := &app{catalog: catalog, log: zap.NewNop()}

	rootCmd := &cobra.Command{
		Use:   "beanbox",
		Short: "beanbox - by-type dependency container",
		Long: `beanbox builds a dependency container from the components selected
by a YAML manifest and shows how every dependency slot was resolved.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			envFiles, _ := cmd.Flags().GetStringSlice("env-file")
			cfg, err := config.Load(envFiles...)
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("manifest") {
				cfg.Manifest, _ = cmd.Flags().GetString("manifest")
			}
			if cmd.Flags().Changed("policy") {
				raw, _ := cmd.Flags().GetString("policy")
				p, err := di.ParseSlotPolicy(raw)
				if err != nil {
					return err
				}
				cfg.SlotPolicy = p
			}
			if cmd.Flags().Changed("log-level") {
				cfg.LogLevel, _ = cmd.Flags().GetString("log-level")
			}

			logger, err := logging.New(cfg.Env, cfg.LogLevel)
			if err != nil {
				return err
			}
			a.cfg = cfg
			a.log = logger
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.log.Sync()
		},
	}

	rootCmd.PersistentFlags().StringSlice("env-file", nil, "dotenv files to load (default .env)")
	rootCmd.PersistentFlags().StringP("manifest", "m", "", "component manifest (default $BEANBOX_MANIFEST or beanbox.yaml)")
	rootCmd.PersistentFlags().String("policy", "", "unresolved slot policy: warn|ignore|error (default from manifest)")
	rootCmd.PersistentFlags().String("log-level", "", "log level (default $BEANBOX_LOG_LEVEL or info)")

	rootCmd.AddCommand(newCatalogCmd(a), newWireCmd(a), newDriveCmd(a))
	return rootCmd
}

// Execute runs the CLI. It is called by main.main.
func Execute() {
	if err := NewRootCmd(nil).Execute(); err != nil {
		os.Exit(1)
	}
}

func printf(cmd *cobra.Command, format string, args ...any) {
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), format, args...)
}
