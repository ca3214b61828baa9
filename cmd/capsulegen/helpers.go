package main

import (
	"strconv"
	"strings"

	"github.com/gogpu/capsule"
	"github.com/gogpu/capsule/stage"
)

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func formatTime(t stage.TimeCode) string {
	if t.IsDefault() {
		return "default"
	}
	return formatFloat(float64(t))
}

func schemaNames(prim stage.Prim) string {
	variants := capsule.MatchSchemas(prim)
	names := make([]string, len(variants))
	for i, v := range variants {
		names[i] = v.TypeName()
	}
	return strings.Join(names, "+")
}
