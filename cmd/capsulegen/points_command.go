package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gogpu/capsule/geom"
	"github.com/gogpu/capsule/stage"
)

const (
	formatText = "text"
	formatOBJ  = "obj"
)

func newPointsCommand(ctx *commandContext) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "points [prim...]",
		Short: "Print generated capsule points or export them as OBJ",
		RunE: func(cmd *cobra.Command, args []string) error {
			if format != formatText && format != formatOBJ {
				return fmt.Errorf("unknown format %q (want %s or %s)", format, formatText, formatOBJ)
			}
			prims, err := ctx.capsulePrims(args)
			if err != nil {
				return err
			}

			a := ctx.ensureAdapter()
			t := ctx.timeCode()
			w := bufio.NewWriter(cmd.OutOrStdout())
			base := 0
			for _, prim := range prims {
				points := a.GetPoints(prim, t)
				if format == formatOBJ {
					writeOBJ(w, prim.Path(), points, a.GetTopology(prim, prim.Path(), t), base)
					base += len(points)
					continue
				}
				writePoints(w, prim.Path(), t, points)
			}
			return w.Flush()
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", formatText, "Output format: text or obj")
	return cmd
}

func writePoints(w io.Writer, path stage.Path, t stage.TimeCode, points []geom.Vec3f) {
	fmt.Fprintf(w, "# %s time=%s points=%d\n", path, formatTime(t), len(points))
	for i, p := range points {
		fmt.Fprintf(w, "%d %g %g %g\n", i, p.X, p.Y, p.Z)
	}
}

// writeOBJ emits one Wavefront OBJ object. OBJ indices are 1-based and
// global to the file, so base is the number of vertices already written.
func writeOBJ(w io.Writer, path stage.Path, points []geom.Vec3f, topo geom.MeshTopology, base int) {
	fmt.Fprintf(w, "o %s\n", objName(path))
	for _, p := range points {
		fmt.Fprintf(w, "v %g %g %g\n", p.X, p.Y, p.Z)
	}

	var sb strings.Builder
	offset := 0
	for _, n := range topo.FaceVertexCounts {
		sb.Reset()
		sb.WriteString("f")
		for _, idx := range topo.FaceVertexIndices[offset : offset+int(n)] {
			fmt.Fprintf(&sb, " %d", base+int(idx)+1)
		}
		offset += int(n)
		fmt.Fprintln(w, sb.String())
	}
}

func objName(path stage.Path) string {
	name := strings.Trim(path.String(), "/")
	if name == "" {
		return "capsule"
	}
	return strings.ReplaceAll(name, "/", "_")
}
