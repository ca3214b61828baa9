package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/gogpu/capsule"
	"github.com/gogpu/capsule/dirty"
)

func newInspectCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect [prim...]",
		Short: "Show extracted parameters and time variability of capsule prims",
		RunE: func(cmd *cobra.Command, args []string) error {
			prims, err := ctx.capsulePrims(args)
			if err != nil {
				return err
			}
			if len(prims) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No capsule prims in scene")
				return nil
			}

			a := ctx.ensureAdapter()
			t := ctx.timeCode()
			rows := make([][]string, 0, len(prims))
			for _, prim := range prims {
				p := capsule.ExtractParams(prim, t)
				var varying dirty.Bits
				a.TrackVariability(prim, prim.Path(), &varying, nil)
				rows = append(rows, []string{
					prim.Path().String(),
					schemaNames(prim),
					formatFloat(p.Height),
					formatFloat(p.RadiusBottom),
					formatFloat(p.RadiusTop),
					p.Axis.String(),
					strconv.Itoa(len(a.GetPoints(prim, t))),
					varying.String(),
				})
			}

			cols := []column{
				{"PRIM", alignLeft},
				{"SCHEMA", alignLeft},
				{"HEIGHT", alignRight},
				{"R-BOTTOM", alignRight},
				{"R-TOP", alignRight},
				{"AXIS", alignLeft},
				{"POINTS", alignRight},
				{"VARYING", alignLeft},
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(cols, rows, "time "+formatTime(t)))
			return nil
		},
	}
}
