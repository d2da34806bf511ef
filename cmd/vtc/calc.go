package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/opencinemac/vtc-go/pkg/timecode"
)

func newCalcCommand(ctx *commandContext) *cobra.Command {
	var inheritFlag string

	cmd := &cobra.Command{
		Use:   "calc <a> <op> <b>",
		Short: "Add or subtract two positions",
		Long: `Calc evaluates "<a> + <b>" or "<a> - <b>" where both operands use any of the
parse grammars. Operands must share a rate unless --inherit picks a side.`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := ctx.resolveRate()
			if err != nil {
				return err
			}
			mode, err := ctx.resolveRounding()
			if err != nil {
				return err
			}

			policy := timecode.RateMustMatch
			switch inheritFlag {
			case "":
			case "left":
				policy = timecode.InheritLeft
			case "right":
				policy = timecode.InheritRight
			default:
				return fmt.Errorf("invalid --inherit value %q, must be left or right", inheritFlag)
			}

			left, err := parseStamp(args[0], r, mode, false)
			if err != nil {
				return err
			}
			right, err := parseStamp(args[2], r, mode, false)
			if err != nil {
				return err
			}

			var result timecode.Framestamp
			switch args[1] {
			case "+":
				result, err = left.Add(right, policy)
			case "-":
				result, err = left.Sub(right, policy)
			default:
				return fmt.Errorf("invalid operator %q, must be + or -", args[1])
			}
			if err != nil {
				return err
			}

			rows, err := stampRows(result, mode, ctx.cfg.Defaults.RuntimePrecision)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), ctx.render([]string{"Field", "Value"}, rows))
			return nil
		},
	}

	cmd.Flags().StringVar(&inheritFlag, "inherit", "", "Resolve mixed rates by inheriting one side: left or right")

	return cmd
}
