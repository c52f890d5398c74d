package physics

import (
	"math"
	"testing"

	"github.com/automoto/skyball/flight"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/pkg/errors"
)

const eps = 1e-9

// near compares component-wise with an absolute tolerance.
func near(a, b mgl64.Vec3, tol float64) bool {
	for i := range a {
		if math.Abs(a[i]-b[i]) > tol {
			return false
		}
	}
	return true
}

func spawn() Pose {
	return Pose{Orientation: mgl64.QuatIdent()}
}

func TestBasisFollowsOrientation(t *testing.T) {
	tests := []struct {
		name    string
		q       mgl64.Quat
		forward mgl64.Vec3
		right   mgl64.Vec3
	}{
		{"identity", mgl64.QuatIdent(), mgl64.Vec3{0, 0, 1}, mgl64.Vec3{1, 0, 0}},
		{"yaw 90", mgl64.QuatRotate(math.Pi/2, mgl64.Vec3{0, 1, 0}), mgl64.Vec3{1, 0, 0}, mgl64.Vec3{0, 0, -1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewRigidBody(Pose{Orientation: tt.q}, 1, 1)
			basis := b.Basis()
			if !near(basis.Forward, tt.forward, eps) {
				t.Errorf("Forward = %v, want %v", basis.Forward, tt.forward)
			}
			if !near(basis.Right, tt.right, eps) {
				t.Errorf("Right = %v, want %v", basis.Right, tt.right)
			}
		})
	}
}

func TestImpulseIsImmediate(t *testing.T) {
	b := NewRigidBody(spawn(), 2, 4)
	b.AddForce(mgl64.Vec3{10, 0, 0}, flight.ForceImpulse)
	b.AddTorque(mgl64.Vec3{0, 8, 0}, flight.ForceImpulse)

	if !near(b.Velocity, mgl64.Vec3{5, 0, 0}, eps) {
		t.Errorf("Velocity = %v, want (5,0,0)", b.Velocity)
	}
	if !near(b.AngularVelocity, mgl64.Vec3{0, 2, 0}, eps) {
		t.Errorf("AngularVelocity = %v, want (0,2,0)", b.AngularVelocity)
	}
	if b.PendingForce() != (mgl64.Vec3{}) || b.PendingTorque() != (mgl64.Vec3{}) {
		t.Error("impulse leaked into the accumulators")
	}
}

func TestContinuousForceIntegrates(t *testing.T) {
	b := NewRigidBody(spawn(), 2, 1)
	b.AddForce(mgl64.Vec3{0, 0, 4}, flight.ForceContinuous)
	b.AddForce(mgl64.Vec3{0, 0, 6}, flight.ForceContinuous)
	if got := b.PendingForce(); !near(got, mgl64.Vec3{0, 0, 10}, eps) {
		t.Fatalf("PendingForce() = %v, want (0,0,10)", got)
	}

	b.Integrate(0.5)
	if !near(b.Velocity, mgl64.Vec3{0, 0, 2.5}, eps) {
		t.Errorf("Velocity = %v, want (0,0,2.5)", b.Velocity)
	}
	if !near(b.Position, mgl64.Vec3{0, 0, 1.25}, eps) {
		t.Errorf("Position = %v, want (0,0,1.25)", b.Position)
	}
	if b.PendingForce() != (mgl64.Vec3{}) {
		t.Error("accumulator not cleared by Integrate")
	}

	b.Integrate(0.5)
	if !near(b.Velocity, mgl64.Vec3{0, 0, 2.5}, eps) {
		t.Errorf("Velocity after a force-free step = %v, want unchanged", b.Velocity)
	}
}

func TestDragAndSpeedLimit(t *testing.T) {
	b := NewRigidBody(spawn(), 1, 1)
	b.LinearDrag = 0.5
	b.Velocity = mgl64.Vec3{10, 0, 0}
	b.Integrate(1)
	if !near(b.Velocity, mgl64.Vec3{5, 0, 0}, eps) {
		t.Errorf("Velocity = %v, want (5,0,0)", b.Velocity)
	}

	b.LinearDrag = 0
	b.MaxSpeed = 3
	b.AddForce(mgl64.Vec3{0, 100, 0}, flight.ForceImpulse)
	b.Integrate(0.1)
	if s := b.Speed(); math.Abs(s-3) > eps {
		t.Errorf("Speed() = %v, want 3", s)
	}
}

func TestAngularVelocityRotates(t *testing.T) {
	b := NewRigidBody(spawn(), 1, 1)
	b.AngularVelocity = mgl64.Vec3{0, math.Pi / 2, 0}
	for i := 0; i < 1000; i++ {
		b.Integrate(0.001)
	}

	if l := b.Orientation.Len(); math.Abs(l-1) > eps {
		t.Errorf("|Orientation| = %v, want 1", l)
	}
	// A quarter turn about +Y points forward at +X.
	if f := b.Basis().Forward; !near(f, mgl64.Vec3{1, 0, 0}, 1e-3) {
		t.Errorf("Forward = %v, want about (1,0,0)", f)
	}
}

func TestNonFiniteInputIgnored(t *testing.T) {
	b := NewRigidBody(spawn(), 1, 1)
	b.AddForce(mgl64.Vec3{math.NaN(), 0, 0}, flight.ForceContinuous)
	b.AddTorque(mgl64.Vec3{0, math.Inf(1), 0}, flight.ForceImpulse)
	b.Integrate(0.1)
	if b.Velocity != (mgl64.Vec3{}) || b.AngularVelocity != (mgl64.Vec3{}) {
		t.Errorf("non-finite input moved the body: v=%v w=%v", b.Velocity, b.AngularVelocity)
	}
}

func TestReset(t *testing.T) {
	b := NewRigidBody(spawn(), 0, -1)
	if b.Mass != 1 || b.Inertia != 1 {
		t.Errorf("mass, inertia = %v, %v; want 1, 1", b.Mass, b.Inertia)
	}
	b.Velocity = mgl64.Vec3{1, 2, 3}
	b.AddForce(mgl64.Vec3{1, 0, 0}, flight.ForceContinuous)

	at := Pose{Position: mgl64.Vec3{0, 5, 0}}
	b.Reset(at)
	if b.Position != at.Position || b.Velocity != (mgl64.Vec3{}) || b.PendingForce() != (mgl64.Vec3{}) {
		t.Errorf("Reset left motion behind: %+v", b)
	}
	if b.Orientation != mgl64.QuatIdent() {
		t.Errorf("zero orientation not replaced with identity: %v", b.Orientation)
	}
}

func TestNilBodyRejected(t *testing.T) {
	var b *RigidBody
	if b.Valid() {
		t.Fatal("nil RigidBody reports Valid")
	}
	if _, err := flight.New(flight.NewInputState(), b, flight.DefaultTuning(), nil); !errors.Is(err, flight.ErrNoBody) {
		t.Errorf("flight.New() error = %v, want ErrNoBody", err)
	}
}

func TestDrivenByController(t *testing.T) {
	in := flight.NewInputState()
	b := NewRigidBody(spawn(), 1, 1)
	c, err := flight.New(in, b, flight.DefaultTuning(), nil)
	if err != nil {
		t.Fatalf("flight.New() error = %v", err)
	}
	defer c.Close()

	in.Set(flight.ControlInput{Booster: 1})
	for i := 0; i < 10; i++ {
		c.Update(0.02)
		c.FixedUpdate()
		b.Integrate(0.02)
		in.EndTick()
	}
	if b.Velocity.Z() <= 0 {
		t.Errorf("Velocity = %v, want forward motion", b.Velocity)
	}
}
