package render

import (
	"testing"

	"github.com/lixenwraith/combat-text/floating"
	"github.com/lixenwraith/combat-text/glyph"
)

func damageAt(t *testing.T, style, value int, spawn float32) floating.Damage {
	t.Helper()
	idx, err := glyph.Encode(style, value)
	if err != nil {
		t.Fatalf("Encode(%d, %d) failed: %v", style, value, err)
	}
	return floating.NewDamage(floating.Item{Index: idx, SpawnTime: spawn, Scale: floating.DefaultScale})
}

func TestCull(t *testing.T) {
	items := []floating.Damage{
		damageAt(t, 0, 1, 0.0),  // age 1.0, expired
		damageAt(t, 0, 2, 0.5),  // age 0.5, live
		{},                      // never written
		damageAt(t, 1, 3, 1.0),  // age 0, live
		damageAt(t, 2, 4, 1.25), // spawned after now
	}

	got := Cull(items, 1.0, 1.0, nil)
	want := []uint32{1, 3}
	if len(got) != len(want) {
		t.Fatalf("Expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Expected %v, got %v", want, got)
		}
	}
}

func TestCullReusesOutput(t *testing.T) {
	items := []floating.Damage{damageAt(t, 0, 7, 0)}
	out := make([]uint32, 0, 4)
	out = append(out, 99, 98)

	got := Cull(items, 0.1, 1, out)
	if len(got) != 1 || got[0] != 0 {
		t.Fatalf("Expected [0], got %v", got)
	}
	if &got[0] != &out[:1][0] {
		t.Error("Expected output backed by the provided slice")
	}
}

func TestThreadGroups(t *testing.T) {
	tests := []struct {
		n, size, want int
	}{
		{0, 64, 0},
		{1, 64, 1},
		{64, 64, 1},
		{65, 64, 2},
		{51200, 64, 800},
		{10, 0, 0},
	}
	for _, tt := range tests {
		if got := ThreadGroups(tt.n, tt.size); got != tt.want {
			t.Errorf("ThreadGroups(%d, %d): Expected %d, got %d", tt.n, tt.size, tt.want, got)
		}
	}
}

func TestProgress(t *testing.T) {
	tests := []struct {
		name          string
		age, duration float32
		want          float32
	}{
		{"start", 0, 1, 0},
		{"half", 0.5, 1, 0.5},
		{"negative age", -1, 1, 0},
		{"overdue", 3, 1, 1},
		{"zero duration", 0.2, 0, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Progress(tt.age, tt.duration); got != tt.want {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestCameraProject(t *testing.T) {
	cam := Camera{Extent: 500}
	tests := []struct {
		name string
		pos  floating.Vec3
		x, y int
	}{
		{"center", floating.Vec3{X: 0, Z: 0}, 40, 9},
		{"top-left corner", floating.Vec3{X: -500, Z: -500}, 0, 0},
		{"bottom-right corner", floating.Vec3{X: 500, Z: 500}, 80, 19},
		{"outside left", floating.Vec3{X: -1000, Z: 0}, -41, 9},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := cam.Project(tt.pos, 81, 20)
			if x != tt.x || y != tt.y {
				t.Errorf("Expected (%d, %d), got (%d, %d)", tt.x, tt.y, x, y)
			}
		})
	}
}
