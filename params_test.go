package capsule

import (
	"log/slog"
	"strings"
	"testing"

	"github.com/gogpu/capsule/geom"
	"github.com/gogpu/capsule/stage"
)

func legacyPrim(height, radius float64, axis string) *stage.MemPrim {
	return stage.NewPrim("/World/legacy", "Capsule").
		Set(AttrHeight, height).
		Set(AttrRadius, radius).
		Set(AttrAxis, axis)
}

func currentPrim(height, bottom, top float64, axis string) *stage.MemPrim {
	return stage.NewPrim("/World/pill", "Capsule_1").
		Set(AttrHeight, height).
		Set(AttrRadiusBottom, bottom).
		Set(AttrRadiusTop, top).
		Set(AttrAxis, axis)
}

func TestDefaultParams(t *testing.T) {
	p := DefaultParams()
	want := Params{Height: 2, RadiusBottom: 0.5, RadiusTop: 0.5, Axis: geom.AxisZ}
	if p != want {
		t.Errorf("DefaultParams() = %+v, want %+v", p, want)
	}
}

func TestExtractParamsLegacy(t *testing.T) {
	for _, r := range []float64{0.1, 0.5, 3} {
		got := ExtractParams(legacyPrim(5, r, "Y"), stage.DefaultTime())
		want := Params{Height: 5, RadiusBottom: r, RadiusTop: r, Axis: geom.AxisY}
		if got != want {
			t.Errorf("radius %v: ExtractParams() = %+v, want %+v", r, got, want)
		}
	}
}

func TestExtractParamsCurrent(t *testing.T) {
	got := ExtractParams(currentPrim(4, 1, 0.5, "X"), stage.DefaultTime())
	want := Params{Height: 4, RadiusBottom: 1, RadiusTop: 0.5, Axis: geom.AxisX}
	if got != want {
		t.Errorf("ExtractParams() = %+v, want %+v", got, want)
	}
}

func TestExtractParamsNonCapsule(t *testing.T) {
	buf := captureLogs(t, slog.LevelDebug)

	prim := stage.NewPrim("/World/cube", "Cube").Set(AttrHeight, 9.0)
	if got := ExtractParams(prim, stage.DefaultTime()); got != DefaultParams() {
		t.Errorf("ExtractParams(non-capsule) = %+v, want defaults", got)
	}
	if buf.String() != "" {
		t.Errorf("schema mismatch should not log, got: %s", buf.String())
	}
}

func TestExtractParamsUnreadableFieldKeepsValue(t *testing.T) {
	tests := []struct {
		name      string
		prim      *stage.MemPrim
		prior     Params
		want      Params
		attribute string
	}{
		{
			name:      "missing height keeps default",
			prim:      stage.NewPrim("/c", "Capsule").Set(AttrRadius, 1.0).Set(AttrAxis, "X"),
			prior:     DefaultParams(),
			want:      Params{Height: 2, RadiusBottom: 1, RadiusTop: 1, Axis: geom.AxisX},
			attribute: "attribute=height",
		},
		{
			name:      "mistyped radius keeps prior",
			prim:      stage.NewPrim("/c", "Capsule").Set(AttrHeight, 3.0).Set(AttrRadius, "big").Set(AttrAxis, "Z"),
			prior:     Params{Height: 1, RadiusBottom: 7, RadiusTop: 8, Axis: geom.AxisY},
			want:      Params{Height: 3, RadiusBottom: 7, RadiusTop: 8, Axis: geom.AxisZ},
			attribute: "attribute=radius",
		},
		{
			name:      "missing top radius only",
			prim:      stage.NewPrim("/c", "Capsule_1").Set(AttrHeight, 3.0).Set(AttrRadiusBottom, 2.0).Set(AttrAxis, "Y"),
			prior:     DefaultParams(),
			want:      Params{Height: 3, RadiusBottom: 2, RadiusTop: 0.5, Axis: geom.AxisY},
			attribute: "attribute=radiusTop",
		},
		{
			name:      "missing axis",
			prim:      stage.NewPrim("/c", "Capsule_1").Set(AttrHeight, 3.0).Set(AttrRadiusBottom, 2.0).Set(AttrRadiusTop, 1.0),
			prior:     Params{Axis: geom.AxisX},
			want:      Params{Height: 3, RadiusBottom: 2, RadiusTop: 1, Axis: geom.AxisX},
			attribute: "attribute=axis",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := captureLogs(t, slog.LevelWarn)

			got := ExtractParamsFrom(tt.prim, stage.DefaultTime(), tt.prior)
			if got != tt.want {
				t.Errorf("ExtractParamsFrom() = %+v, want %+v", got, tt.want)
			}
			out := buf.String()
			if !strings.Contains(out, "could not evaluate attribute") || !strings.Contains(out, tt.attribute) {
				t.Errorf("expected warning naming %s, got: %s", tt.attribute, out)
			}
			if !strings.Contains(out, "prim=/c") {
				t.Errorf("warning should name the prim path, got: %s", out)
			}
		})
	}
}

func TestExtractParamsInvalidAxisToken(t *testing.T) {
	buf := captureLogs(t, slog.LevelWarn)

	got := ExtractParams(legacyPrim(1, 1, "W"), stage.DefaultTime())
	if got.Axis != geom.AxisZ {
		t.Errorf("Axis = %v, want default Z for invalid token", got.Axis)
	}
	if got.Height != 1 || got.RadiusTop != 1 {
		t.Errorf("other fields not extracted: %+v", got)
	}
	if !strings.Contains(buf.String(), "token=W") {
		t.Errorf("expected warning naming the token, got: %s", buf.String())
	}
}

func TestExtractParamsAllUnreadable(t *testing.T) {
	buf := captureLogs(t, slog.LevelWarn)

	got := ExtractParams(stage.NewPrim("/empty", "Capsule_1"), stage.DefaultTime())
	if got != DefaultParams() {
		t.Errorf("ExtractParams(empty) = %+v, want defaults", got)
	}
	if n := strings.Count(buf.String(), "could not evaluate attribute"); n != 4 {
		t.Errorf("got %d warnings, want 4 (height, radiusBottom, radiusTop, axis)", n)
	}
}

func TestExtractParamsAmbiguousSchema(t *testing.T) {
	buf := captureLogs(t, slog.LevelWarn)

	prim := stage.NewPrim("/both", "Capsule", "Capsule_1").
		Set(AttrHeight, 3.0).
		Set(AttrRadius, 1.0).
		Set(AttrRadiusBottom, 2.0).
		Set(AttrAxis, "Y")

	got := ExtractParams(prim, stage.DefaultTime())
	// The current variant overwrites radiusBottom; radiusTop is unreadable
	// there and keeps the legacy value.
	want := Params{Height: 3, RadiusBottom: 2, RadiusTop: 1, Axis: geom.AxisY}
	if got != want {
		t.Errorf("ExtractParams() = %+v, want %+v", got, want)
	}
	if !strings.Contains(buf.String(), "ambiguous capsule schema") {
		t.Errorf("expected ambiguity warning, got: %s", buf.String())
	}
}

func TestExtractParamsTimeSampled(t *testing.T) {
	prim := currentPrim(4, 1, 0.5, "Z")
	if err := prim.SetSample(AttrHeight, 0, 2.0); err != nil {
		t.Fatal(err)
	}
	if err := prim.SetSample(AttrHeight, 10, 6.0); err != nil {
		t.Fatal(err)
	}

	if got := ExtractParams(prim, 5).Height; got != 4 {
		t.Errorf("height at 5 = %v, want 4", got)
	}
	if got := ExtractParams(prim, 10).Height; got != 6 {
		t.Errorf("height at 10 = %v, want 6", got)
	}
}

func TestMatchSchemas(t *testing.T) {
	tests := []struct {
		prim stage.Prim
		want []SchemaVariant
	}{
		{stage.NewPrim("/a", "Capsule"), []SchemaVariant{SchemaLegacy}},
		{stage.NewPrim("/b", "Capsule_1"), []SchemaVariant{SchemaCurrent}},
		{stage.NewPrim("/c", "Capsule_1", "Capsule"), []SchemaVariant{SchemaLegacy, SchemaCurrent}},
		{stage.NewPrim("/d", "Sphere"), nil},
	}
	for _, tt := range tests {
		got := MatchSchemas(tt.prim)
		if len(got) != len(tt.want) {
			t.Errorf("MatchSchemas(%s) = %v, want %v", tt.prim.Path(), got, tt.want)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("MatchSchemas(%s) = %v, want %v", tt.prim.Path(), got, tt.want)
			}
		}
		if IsCapsule(tt.prim) != (len(tt.want) > 0) {
			t.Errorf("IsCapsule(%s) = %v", tt.prim.Path(), IsCapsule(tt.prim))
		}
	}
}

func TestSchemaVariantNames(t *testing.T) {
	if SchemaLegacy.TypeName() != "Capsule" || SchemaCurrent.TypeName() != "Capsule_1" {
		t.Errorf("type names = %q, %q", SchemaLegacy.TypeName(), SchemaCurrent.TypeName())
	}
	if SchemaVariant(9).TypeName() != "" || SchemaVariant(9).String() != "unknown" {
		t.Error("out-of-range variant should have no type name")
	}
	if SchemaLegacy.String() != "legacy" || SchemaCurrent.String() != "current" {
		t.Errorf("names = %q, %q", SchemaLegacy, SchemaCurrent)
	}
}
