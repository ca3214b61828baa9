package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gogpu/capsule/geom"
)

func newTopologyCommand(_ *commandContext) *cobra.Command {
	var listFaces bool

	cmd := &cobra.Command{
		Use:   "topology",
		Short: "Summarize the topology shared by every capsule",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			topo := geom.CapsuleTopology()
			tris := geom.CapsuleTriangles()

			rows := [][]string{
				{"scheme", topo.Scheme},
				{"orientation", topo.Orientation},
				{"radial segments", strconv.Itoa(geom.NumRadial)},
				{"cap rings", strconv.Itoa(geom.NumCapAxial)},
				{"points", strconv.Itoa(topo.NumPoints())},
				{"faces", strconv.Itoa(topo.NumFaces())},
				{"face indices", strconv.Itoa(len(topo.FaceVertexIndices))},
				{"triangles", strconv.Itoa(len(tris) / 3)},
				{"index format", geom.IndexFormatFor(topo.NumPoints()).String()},
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, renderTable([]column{{"PROPERTY", alignLeft}, {"VALUE", alignRight}}, rows, ""))

			if !listFaces {
				return nil
			}
			offset := 0
			for i, n := range topo.FaceVertexCounts {
				idx := topo.FaceVertexIndices[offset : offset+int(n)]
				parts := make([]string, len(idx))
				for k, v := range idx {
					parts[k] = strconv.Itoa(int(v))
				}
				fmt.Fprintf(out, "%d: %s\n", i, strings.Join(parts, " "))
				offset += int(n)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&listFaces, "faces", false, "List the vertex indices of every face")
	return cmd
}
