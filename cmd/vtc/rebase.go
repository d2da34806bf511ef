package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/opencinemac/vtc-go/internal/config"
)

func newRebaseCommand(ctx *commandContext) *cobra.Command {
	var toFlag string

	cmd := &cobra.Command{
		Use:   "rebase <value>",
		Short: "Reinterpret a position's frame count at a new rate",
		Long: `Rebase keeps a position's frame number and binds it to a new rate, the way
changing a sequence's frame rate in an NLE does: frame 86400 at 24fps becomes
frame 86400 at 48fps, which plays at half the wall-clock time.`,
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
			target, err := config.ParseRate(toFlag)
			if err != nil {
				return err
			}

			stamp, err := parseStamp(args[0], r, mode, false)
			if err != nil {
				return err
			}
			rebased := stamp.Rebase(target)
			ctx.log.WithField("from", stamp.String()).WithField("to", rebased.String()).Debug("rebased")

			rows, err := stampRows(rebased, mode, ctx.cfg.Defaults.RuntimePrecision)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), ctx.render([]string{"Field", "Value"}, rows))
			return nil
		},
	}

	cmd.Flags().StringVar(&toFlag, "to", "", "Target frame rate (required)")
	_ = cmd.MarkFlagRequired("to")

	return cmd
}
