package cli

import (
	"strconv"

	"github.com/oldmonad/cloudsweep/internal/app"
	"github.com/oldmonad/cloudsweep/internal/reaper"
	"github.com/oldmonad/cloudsweep/pkg/config/env"
	"github.com/oldmonad/cloudsweep/pkg/errors"
	"github.com/oldmonad/cloudsweep/pkg/output"
	"github.com/oldmonad/cloudsweep/pkg/parser"
	"github.com/oldmonad/cloudsweep/pkg/ports"
	"github.com/oldmonad/cloudsweep/pkg/utils/validator"
	"github.com/spf13/cobra"
)

type Command struct {
	app       app.AppRunner
	validator validator.Validator
	server    ports.Server
	config    *env.Configurations
}

func NewCommand(app app.AppRunner, validator validator.Validator, server ports.Server, config *env.Configurations) *Command {
	return &Command{app: app, validator: validator, server: server, config: config}
}

func (c *Command) settings() *parser.Settings {
	if c.config == nil || c.config.Settings == nil {
		return parser.DefaultSettings()
	}
	return c.config.Settings
}

func (c *Command) InitiateCommands() *cobra.Command {
	settings := c.settings()

	rootCmd := &cobra.Command{
		Use:           "cloudsweep",
		Short:         "List cloud inventory and delete unattached volumes",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	var format string
	rootCmd.PersistentFlags().StringVarP(&format, "output", "o", settings.Output.Format, "output format: text or table")

	printer := func(cmd *cobra.Command) (*output.Printer, error) {
		f, err := c.validator.ValidateOutputFormat(format)
		if err != nil {
			return nil, err
		}
		return output.NewPrinter(cmd.OutOrStdout(), f), nil
	}

	instancesCmd := &cobra.Command{
		Use:   "instances",
		Short: "List every instance with its state and type",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := printer(cmd)
			if err != nil {
				return errors.NewCommandError(cmd.Name(), err)
			}
			records, err := c.app.ListInstances(cmd.Context())
			if err != nil {
				return errors.NewCommandError(cmd.Name(), err)
			}
			p.Instances(records)
			return nil
		},
	}

	bucketsCmd := &cobra.Command{
		Use:   "buckets",
		Short: "List every bucket with its creation date",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := printer(cmd)
			if err != nil {
				return errors.NewCommandError(cmd.Name(), err)
			}
			records, err := c.app.ListBuckets(cmd.Context())
			if err != nil {
				return errors.NewCommandError(cmd.Name(), err)
			}
			p.Buckets(records)
			return nil
		},
	}

	var status string
	var dryRun bool
	reapCmd := &cobra.Command{
		Use:   "reap-volumes",
		Short: "Delete every volume with the given status",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := printer(cmd)
			if err != nil {
				return errors.NewCommandError(cmd.Name(), err)
			}
			validStatus, err := c.validator.ValidateVolumeStatus(status)
			if err != nil {
				return errors.NewCommandError(cmd.Name(), err)
			}

			opts := reaper.Options{Status: validStatus, DryRun: dryRun}
			result, err := c.app.ReapVolumes(cmd.Context(), opts, p.VolumeNotice)
			if err != nil {
				return errors.NewCommandError(cmd.Name(), err)
			}
			p.ReapResult(result)
			return nil
		},
	}
	reapCmd.Flags().StringVar(&status, "status", settings.Reaper.Status, "volume status to match")
	reapCmd.Flags().BoolVar(&dryRun, "dry-run", settings.Reaper.DryRun, "print matching volumes without deleting them")

	var port int
	defaultPort := 8080
	if c.config != nil {
		defaultPort = c.config.HttpPort
	}
	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Start HTTP server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if port < 1 || port > 65535 {
				return errors.NewCommandError(cmd.Name(), errors.NewErrPortOutOfRange(port))
			}
			return c.server.Start(cmd.Context(), strconv.Itoa(port))
		},
	}
	serveCmd.Flags().IntVar(&port, "port", defaultPort, "port for HTTP server")

	rootCmd.AddCommand(instancesCmd)
	rootCmd.AddCommand(bucketsCmd)
	rootCmd.AddCommand(reapCmd)
	rootCmd.AddCommand(serveCmd)
	return rootCmd
}
