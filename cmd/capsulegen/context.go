package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/gogpu/capsule"
	"github.com/gogpu/capsule/stage"
)

var errNoScene = errors.New("no scene file given (use --scene)")

// commandContext carries the persistent flags and the lazily loaded stage
// shared by every subcommand.
type commandContext struct {
	scenePath string
	timeFlag  float64
	timeSet   bool
	verbose   bool

	stage   *stage.Stage
	adapter *capsule.Adapter
}

func (c *commandContext) configureLogging(w io.Writer) {
	if !c.verbose {
		capsule.SetLogger(nil)
		return
	}
	capsule.SetLogger(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})))
}

func (c *commandContext) ensureStage() (*stage.Stage, error) {
	if c.stage != nil {
		return c.stage, nil
	}
	if c.scenePath == "" {
		return nil, errNoScene
	}
	s, err := stage.Load(c.scenePath)
	if err != nil {
		return nil, err
	}
	c.stage = s
	return s, nil
}

func (c *commandContext) ensureAdapter() *capsule.Adapter {
	if c.adapter == nil {
		c.adapter = capsule.NewAdapter()
	}
	return c.adapter
}

// timeCode returns the --time value, or the default time when unset.
func (c *commandContext) timeCode() stage.TimeCode {
	if !c.timeSet {
		return stage.DefaultTime()
	}
	return stage.TimeCode(c.timeFlag)
}

// capsulePrims resolves paths to capsule prims. With no paths every
// capsule in the stage is returned in insertion order.
func (c *commandContext) capsulePrims(paths []string) ([]*stage.MemPrim, error) {
	s, err := c.ensureStage()
	if err != nil {
		return nil, err
	}
	if len(paths) == 0 {
		var out []*stage.MemPrim
		for _, p := range s.Prims() {
			if capsule.IsCapsule(p) {
				out = append(out, p)
			}
		}
		return out, nil
	}

	out := make([]*stage.MemPrim, 0, len(paths))
	for _, raw := range paths {
		path, err := stage.ParsePath(raw)
		if err != nil {
			return nil, err
		}
		prim, err := s.Prim(path)
		if err != nil {
			return nil, err
		}
		if !capsule.IsCapsule(prim) {
			return nil, fmt.Errorf("%s: prim type %q is not a capsule", path, prim.TypeName())
		}
		out = append(out, prim)
	}
	return out, nil
}
