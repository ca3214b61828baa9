package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gogpu/capsule"
)

func newInvalidateCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "invalidate <prim> <attribute...>",
		Short: "Show the dirty flags an attribute edit raises",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			prims, err := ctx.capsulePrims(args[:1])
			if err != nil {
				return err
			}
			prim := prims[0]
			a := ctx.ensureAdapter()
			names := args[1:]

			rows := make([][]string, 0, len(names))
			for _, name := range names {
				rows = append(rows, []string{name, a.ProcessPropertyChange(prim, prim.Path(), name).String()})
			}
			union := a.InvalidateSubprim(prim, capsule.RootSubprim, names)

			cols := []column{{"ATTRIBUTE", alignLeft}, {"DIRTY", alignLeft}}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(cols, rows, "union "+union.String()))
			return nil
		},
	}
}
