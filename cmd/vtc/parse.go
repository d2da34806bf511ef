package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/opencinemac/vtc-go/pkg/rate"
	"github.com/opencinemac/vtc-go/pkg/rational"
	"github.com/opencinemac/vtc-go/pkg/timecode"
)

func newParseCommand(ctx *commandContext) *cobra.Command {
	var runtimeInput bool

	cmd := &cobra.Command{
		Use:   "parse <value>",
		Short: "Parse a position and show every representation of it",
		Long: `Parse reads a timecode ("01:00:00:00"), feet+frames ("5400+00") or bare
frame count ("86400") and prints the position in every representation. Pass
--runtime to read a wall-clock duration like "01:00:03.6" instead.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := ctx.resolveRate()
			if err != nil {
				return err
			}
			mode, err := ctx.resolveRounding()
			if err != nil {
				return err
			}

			stamp, err := parseStamp(args[0], r, mode, runtimeInput)
			if err != nil {
				ctx.log.WithError(err).WithField("input", args[0]).Debug("parse failed")
				return err
			}

			rows, err := stampRows(stamp, mode, ctx.cfg.Defaults.RuntimePrecision)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), ctx.render([]string{"Field", "Value"}, rows))
			return nil
		},
	}

	cmd.Flags().BoolVar(&runtimeInput, "runtime", false, "Read the value as a wall-clock runtime")

	return cmd
}

func parseStamp(value string, r rate.Framerate, mode rational.RoundMode, runtime bool) (timecode.Framestamp, error) {
	if runtime {
		return timecode.ParseRuntime(value, r, mode)
	}
	return timecode.ParseFrames(value, r)
}

// stampRows builds the representation breakdown shared by parse and rebase.
func stampRows(stamp timecode.Framestamp, mode rational.RoundMode, precision int) ([][]string, error) {
	frames, err := stamp.Frames(mode)
	if err != nil {
		return nil, err
	}
	ticks, err := stamp.PremiereTicks(mode)
	if err != nil {
		return nil, err
	}
	return [][]string{
		{"Timecode", stamp.Timecode()},
		{"Frames", frames.String()},
		{"Seconds", stamp.Seconds().String()},
		{"Runtime", stamp.Runtime(precision)},
		{"Feet+Frames", stamp.FeetAndFrames()},
		{"Premiere Ticks", ticks.String()},
		{"Rate", strings.Trim(stamp.Rate().String(), "[]")},
	}, nil
}
