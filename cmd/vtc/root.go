package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/opencinemac/vtc-go/internal/config"
	"github.com/opencinemac/vtc-go/internal/logger"
	"github.com/opencinemac/vtc-go/pkg/rate"
	"github.com/opencinemac/vtc-go/pkg/rational"
	"github.com/opencinemac/vtc-go/pkg/version"
)

// commandContext carries the loaded configuration and logger plus the
// persistent flag values shared by every subcommand.
type commandContext struct {
	configFlag   *string
	rateFlag     *string
	roundingFlag *string
	styleFlag    *string

	cfg *config.Config
	log logger.Logger
}

func newCommandContext(configFlag, rateFlag, roundingFlag, styleFlag *string) *commandContext {
	return &commandContext{
		configFlag:   configFlag,
		rateFlag:     rateFlag,
		roundingFlag: roundingFlag,
		styleFlag:    styleFlag,
	}
}

// ensureConfig loads configuration and builds the logger once per run.
func (c *commandContext) ensureConfig() error {
	if c.cfg != nil {
		return nil
	}
	cfg, err := config.Load(*c.configFlag)
	if err != nil {
		return err
	}
	log, err := logger.New(&cfg.Logging)
	if err != nil {
		return err
	}
	c.cfg = cfg
	c.log = logger.NewLogrusAdapter(logger.WithComponent(log, "cli"))
	return nil
}

// resolveRate returns the rate named by --rate, falling back to the
// configured default.
func (c *commandContext) resolveRate() (rate.Framerate, error) {
	if *c.rateFlag != "" {
		return config.ParseRate(*c.rateFlag)
	}
	return c.cfg.DefaultRate(), nil
}

// resolveRounding returns the mode named by --rounding, falling back to the
// configured default.
func (c *commandContext) resolveRounding() (rational.RoundMode, error) {
	if *c.roundingFlag != "" {
		return rational.ParseRoundMode(*c.roundingFlag)
	}
	return c.cfg.DefaultRounding(), nil
}

// render prints rows in the configured output style: a bordered table, or
// "label\tvalue" lines when plain output is requested.
func (c *commandContext) render(headers []string, rows [][]string) string {
	style := c.cfg.Output.Style
	if *c.styleFlag != "" {
		style = *c.styleFlag
	}
	if style == "plain" {
		out := ""
		for _, row := range rows {
			for i, cell := range row {
				if i > 0 {
					out += "\t"
				}
				out += cell
			}
			out += "\n"
		}
		return out
	}
	return renderTable(headers, rows, nil) + "\n"
}

func newRootCommand() *cobra.Command {
	var (
		configFlag   string
		rateFlag     string
		roundingFlag string
		styleFlag    string
	)

	ctx := newCommandContext(&configFlag, &rateFlag, &roundingFlag, &styleFlag)

	rootCmd := &cobra.Command{
		Use:           "vtc",
		Short:         "SMPTE timecode calculator",
		Long:          "vtc parses, converts and does arithmetic on video timecode with exact rational precision.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return ctx.ensureConfig()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Configuration file path")
	rootCmd.PersistentFlags().StringVarP(&rateFlag, "rate", "r", "", `Frame rate, e.g. "24", "23.98", "29.97 df", "24000/1001"`)
	rootCmd.PersistentFlags().StringVar(&roundingFlag, "rounding", "", "Frame rounding: closest, floor, ceil, trunc or off")
	rootCmd.PersistentFlags().StringVar(&styleFlag, "style", "", "Output style: table or plain")

	rootCmd.AddCommand(newParseCommand(ctx))
	rootCmd.AddCommand(newRebaseCommand(ctx))
	rootCmd.AddCommand(newCalcCommand(ctx))
	rootCmd.AddCommand(newVersionCommand())

	return rootCmd
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		// Version works without a config file.
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), version.GetInfo().String())
			return nil
		},
	}
}
