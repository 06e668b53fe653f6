package geometry

import (
	"errors"
	"math"
	"testing"

	"github.com/df07/go-pinhole-raytracer/pkg/core"
)

var (
	sceneCenter = core.NewVec3(0, 0, -1)
	sceneRadius = 0.5
)

func TestHitSphere_DeadCenter(t *testing.T) {
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	got := HitSphere(sceneCenter, sceneRadius, ray)
	if math.Abs(got-0.5) > 1e-9 {
		t.Errorf("Expected t=0.5, got t=%f", got)
	}
}

func TestHitSphere_Miss(t *testing.T) {
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(1, 0, 0))

	if got := HitSphere(sceneCenter, sceneRadius, ray); got != NoHit {
		t.Errorf("Expected exactly %f, got %f", NoHit, got)
	}
}

func TestHitSphere_Roots(t *testing.T) {
	tests := []struct {
		name      string
		origin    core.Vec3
		direction core.Vec3
		expectedT float64
	}{
		{
			name:      "non-unit direction scales t",
			origin:    core.NewVec3(0, 0, 0),
			direction: core.NewVec3(0, 0, -2),
			expectedT: 0.25,
		},
		{
			name:      "origin on surface aimed outward",
			origin:    core.NewVec3(0, 0, -0.5),
			direction: core.NewVec3(0, 0, 1),
			expectedT: 0,
		},
		{
			name:      "origin on surface aimed inward",
			origin:    core.NewVec3(0, 0, -0.5),
			direction: core.NewVec3(0, 0, -1),
			expectedT: 0,
		},
		{
			name:      "origin inside returns far root",
			origin:    core.NewVec3(0, 0, -1),
			direction: core.NewVec3(0, 1, 0),
			expectedT: 0.5,
		},
		{
			name:      "sphere behind origin",
			origin:    core.NewVec3(0, 0, 0),
			direction: core.NewVec3(0, 0, 1),
			expectedT: NoHit,
		},
		{
			name:      "tangent ray",
			origin:    core.NewVec3(0, 0.5, 0),
			direction: core.NewVec3(0, 0, -1),
			expectedT: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := HitSphere(sceneCenter, sceneRadius, core.NewRay(tt.origin, tt.direction))
			if math.Abs(got-tt.expectedT) > 1e-9 {
				t.Errorf("Expected t=%f, got t=%f", tt.expectedT, got)
			}
		})
	}
}

func TestSphere_Hit(t *testing.T) {
	sphere := NewSphere(sceneCenter, sceneRadius)
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	hit, isHit := sphere.Hit(ray, 0, math.Inf(1))
	if !isHit {
		t.Fatal("Expected hit, but got miss")
	}
	if math.Abs(hit.T-0.5) > 1e-9 {
		t.Errorf("Expected t=0.5, got t=%f", hit.T)
	}
	if hit.Point != core.NewVec3(0, 0, -0.5) {
		t.Errorf("Expected point (0, 0, -0.5), got %v", hit.Point)
	}
	if hit.Shape != Shape(sphere) {
		t.Error("Hit record should reference the sphere")
	}

	if _, isHit := sphere.Hit(ray, 0.6, math.Inf(1)); isHit {
		t.Error("Expected miss when t is below tMin")
	}
	if _, isHit := sphere.Hit(ray, 0, 0.4); isHit {
		t.Error("Expected miss when t is above tMax")
	}
	if _, isHit := sphere.Hit(core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(1, 0, 0)), 0, math.Inf(1)); isHit {
		t.Error("Expected miss for ray pointing away")
	}
}

func TestSphere_NormalAt(t *testing.T) {
	sphere := NewSphere(sceneCenter, sceneRadius)

	tests := []struct {
		point    core.Vec3
		expected core.Vec3
	}{
		{core.NewVec3(0, 0, -0.5), core.NewVec3(0, 0, 1)},
		{core.NewVec3(0.5, 0, -1), core.NewVec3(1, 0, 0)},
		{core.NewVec3(0, -0.5, -1), core.NewVec3(0, -1, 0)},
	}

	for _, tt := range tests {
		normal, err := sphere.NormalAt(tt.point)
		if err != nil {
			t.Fatalf("NormalAt(%v): %v", tt.point, err)
		}
		if normal.Subtract(tt.expected).Length() > 1e-9 {
			t.Errorf("NormalAt(%v): expected %v, got %v", tt.point, tt.expected, normal)
		}
	}

	if _, err := sphere.NormalAt(sceneCenter); !errors.Is(err, core.ErrDegenerateVector) {
		t.Errorf("Expected ErrDegenerateVector at the center, got %v", err)
	}
}
