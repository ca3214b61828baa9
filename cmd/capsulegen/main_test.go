package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gogpu/capsule/stage"
)

const testScene = `
[[prim]]
path = "/World/pill"
type = "Capsule_1"

[prim.attributes]
height = 4.0
radiusBottom = 1.0
radiusTop = 0.5
axis = "X"

[[prim.samples]]
attribute = "radiusTop"
time = 0
value = 0.5

[[prim.samples]]
attribute = "radiusTop"
time = 10
value = 1.5

[[prim]]
path = "/World/old"
type = "Capsule"

[prim.attributes]
height = 2
radius = 0.25
axis = "Y"

[[prim]]
path = "/World/box"
type = "Cube"
`

func writeScene(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scene.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write scene: %v", err)
	}
	return path
}

func runCLI(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func requireContains(t *testing.T, out, want string) {
	t.Helper()
	if !strings.Contains(out, want) {
		t.Fatalf("output missing %q:\n%s", want, out)
	}
}

func TestMissingScene(t *testing.T) {
	_, _, err := runCLI(t, "inspect")
	if !errors.Is(err, errNoScene) {
		t.Fatalf("err = %v, want errNoScene", err)
	}
}

func TestUnknownPrim(t *testing.T) {
	scene := writeScene(t, testScene)
	_, _, err := runCLI(t, "--scene", scene, "points", "/World/missing")
	if !errors.Is(err, stage.ErrPrimNotFound) {
		t.Fatalf("err = %v, want ErrPrimNotFound", err)
	}
}

func TestNonCapsulePrimRejected(t *testing.T) {
	scene := writeScene(t, testScene)
	_, _, err := runCLI(t, "--scene", scene, "points", "/World/box")
	if err == nil || !strings.Contains(err.Error(), "not a capsule") {
		t.Fatalf("err = %v, want not-a-capsule error", err)
	}
}

func TestInspect(t *testing.T) {
	scene := writeScene(t, testScene)
	out, _, err := runCLI(t, "--scene", scene, "inspect")
	if err != nil {
		t.Fatalf("inspect: %v", err)
	}
	requireContains(t, out, "/World/pill")
	requireContains(t, out, "Capsule_1")
	requireContains(t, out, "/World/old")
	requireContains(t, out, "Points")
	requireContains(t, out, "time default")
	if strings.Contains(out, "/World/box") {
		t.Errorf("non-capsule prim listed:\n%s", out)
	}
}

func TestInspectAtTime(t *testing.T) {
	scene := writeScene(t, testScene)
	out, _, err := runCLI(t, "--scene", scene, "--time", "5", "inspect", "/World/pill")
	if err != nil {
		t.Fatalf("inspect: %v", err)
	}
	requireContains(t, out, "time 5")
	// radiusTop interpolates halfway between 0.5 and 1.5.
	requireContains(t, out, " 1 ")
}

func TestPointsText(t *testing.T) {
	scene := writeScene(t, testScene)
	out, _, err := runCLI(t, "--scene", scene, "points", "/World/old")
	if err != nil {
		t.Fatalf("points: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 83 {
		t.Fatalf("got %d lines, want header plus 82 points", len(lines))
	}
	requireContains(t, lines[0], "points=82")
}

func TestPointsOBJ(t *testing.T) {
	scene := writeScene(t, testScene)
	out, _, err := runCLI(t, "--scene", scene, "points", "--format", "obj")
	if err != nil {
		t.Fatalf("points --format obj: %v", err)
	}
	requireContains(t, out, "o World_pill")
	requireContains(t, out, "o World_old")
	if n := strings.Count(out, "\nv "); n != 164 {
		t.Errorf("vertex lines = %d, want 164", n)
	}
	if n := strings.Count(out, "\nf "); n != 180 {
		t.Errorf("face lines = %d, want 180", n)
	}
	// The second object's first bottom fan references its own pole.
	requireContains(t, out, "f 83 ")
}

func TestPointsUnknownFormat(t *testing.T) {
	scene := writeScene(t, testScene)
	if _, _, err := runCLI(t, "--scene", scene, "points", "--format", "ply"); err == nil {
		t.Fatal("expected error for unknown format")
	}
}

func TestTopology(t *testing.T) {
	out, _, err := runCLI(t, "topology", "--faces")
	if err != nil {
		t.Fatalf("topology: %v", err)
	}
	requireContains(t, out, "catmullClark")
	requireContains(t, out, "rightHanded")
	requireContains(t, out, "89: ")
	if strings.Contains(out, "90: ") {
		t.Error("listed more than 90 faces")
	}
}

func TestInvalidate(t *testing.T) {
	scene := writeScene(t, testScene)
	out, _, err := runCLI(t, "--scene", scene, "invalidate", "/World/pill", "radiusTop", "xformOp:translate")
	if err != nil {
		t.Fatalf("invalidate: %v", err)
	}
	requireContains(t, out, "radiusTop")
	requireContains(t, out, "union Points|Transform")
}

func TestVerboseLogsWarnings(t *testing.T) {
	scene := writeScene(t, `
[[prim]]
path = "/broken"
type = "Capsule"

[prim.attributes]
height = "tall"
`)
	_, stderr, err := runCLI(t, "--scene", scene, "--verbose", "inspect")
	if err != nil {
		t.Fatalf("inspect: %v", err)
	}
	requireContains(t, stderr, "could not evaluate attribute")

	_, stderr, err = runCLI(t, "--scene", scene, "inspect")
	if err != nil {
		t.Fatalf("inspect: %v", err)
	}
	if stderr != "" {
		t.Errorf("quiet run logged: %s", stderr)
	}
}
