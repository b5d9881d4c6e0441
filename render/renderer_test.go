package render

import (
	"math"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/driftline/driftline/component"
	"github.com/driftline/driftline/engine"
	"github.com/driftline/driftline/vmath"
)

func TestHeadingOctant(t *testing.T) {
	cases := []struct {
		yaw  float64
		want int
	}{
		{0, 0},
		{math.Pi / 4, 1},
		{math.Pi / 2, 2},
		{math.Pi, 4},
		{-math.Pi / 2, 6},
		{2 * math.Pi, 0},
	}
	for _, c := range cases {
		if got := headingOctant(c.yaw); got != c.want {
			t.Errorf("Expected octant %d for yaw %f, got %d", c.want, c.yaw, got)
		}
	}
}

func TestResourceTableLookup(t *testing.T) {
	rt := newResourceTable()

	glyph, _ := rt.lookup(component.MeshWheel, component.MaterialRubber, 0)
	if glyph != 'o' {
		t.Errorf("Expected wheel glyph 'o', got %q", glyph)
	}

	// Directional mesh picks a heading glyph
	glyph, _ = rt.lookup(component.MeshCarBody, component.MaterialCarRed, 0)
	if glyph != '>' {
		t.Errorf("Expected east-facing car glyph '>', got %q", glyph)
	}
	glyph, _ = rt.lookup(component.MeshCarBody, component.MaterialCarRed, math.Pi/2)
	if glyph != '^' {
		t.Errorf("Expected north-facing car glyph '^', got %q", glyph)
	}

	// Unknown ids fall back instead of crashing
	glyph, _ = rt.lookup(9999, 9999, 0)
	if glyph != '?' {
		t.Errorf("Expected fallback glyph '?', got %q", glyph)
	}
}

func TestSteeringBar(t *testing.T) {
	centered := steeringBar(0, 0.5)
	if !strings.Contains(centered, "#") {
		t.Error("Expected a marker in the steering bar")
	}

	left := steeringBar(-0.5, 0.5)
	right := steeringBar(0.5, 0.5)
	if strings.Index(left, "#") >= strings.Index(right, "#") {
		t.Error("Expected the left marker before the right marker")
	}
}

func TestMeter(t *testing.T) {
	if got := meter(0, 10); got != ".........." {
		t.Errorf("Expected empty meter, got %q", got)
	}
	if got := meter(1, 10); got != "##########" {
		t.Errorf("Expected full meter, got %q", got)
	}
	if got := meter(0.5, 10); got != "#####....." {
		t.Errorf("Expected half meter, got %q", got)
	}
}

func TestFrameOnSimulationScreen(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Expected simulation screen init, got %v", err)
	}
	defer screen.Fini()
	screen.SetSize(80, 24)

	world := engine.NewWorld()
	e := world.CreateEntity()
	world.Components.Cars.Set(e, component.DefaultCar())
	tf := component.DefaultTransform()
	world.Components.Transforms.Set(e, tf)
	world.Components.Renders.Set(e, component.RenderComponent{
		MeshID:     component.MeshCarBody,
		MaterialID: component.MaterialCarRed,
		Visible:    true,
		Scale:      vmath.Vec3{X: 1, Y: 1, Z: 1},
	})

	r := NewRenderer(screen)
	r.Frame(world)

	// The car glyph lands at the viewport center
	contents, w, h := screen.GetContents()
	found := false
	for _, cell := range contents {
		for _, rn := range cell.Runes {
			if rn == '>' {
				found = true
			}
		}
	}
	if !found {
		t.Errorf("Expected the car glyph on a %dx%d screen", w, h)
	}
}
