// Package physics integrates a single rigid body for the flight controller.
package physics

import (
	"math"

	"github.com/automoto/skyball/flight"
	"github.com/go-gl/mathgl/mgl64"
)

// Pose is a position and orientation in world space.
type Pose struct {
	Position    mgl64.Vec3
	Orientation mgl64.Quat
}

// RigidBody is a point-mass body with scalar rotational inertia.
// It implements flight.Body.
type RigidBody struct {
	Position        mgl64.Vec3
	Velocity        mgl64.Vec3
	Orientation     mgl64.Quat
	AngularVelocity mgl64.Vec3

	Mass        float64
	Inertia     float64
	LinearDrag  float64 // fraction of velocity removed per second
	AngularDrag float64

	MaxSpeed        float64 // 0 means unbounded
	MaxAngularSpeed float64

	force  mgl64.Vec3
	torque mgl64.Vec3
}

var _ flight.Body = (*RigidBody)(nil)

// NewRigidBody returns a body at rest at spawn. Non-positive mass or inertia
// is read as 1.
func NewRigidBody(spawn Pose, mass, inertia float64) *RigidBody {
	b := &RigidBody{Mass: mass, Inertia: inertia}
	if b.Mass <= 0 {
		b.Mass = 1
	}
	if b.Inertia <= 0 {
		b.Inertia = 1
	}
	b.Reset(spawn)
	return b
}

// Reset places the body at spawn and clears all motion.
func (b *RigidBody) Reset(spawn Pose) {
	b.Position = spawn.Position
	b.Orientation = spawn.Orientation
	if b.Orientation.Len() == 0 {
		b.Orientation = mgl64.QuatIdent()
	}
	b.Orientation = b.Orientation.Normalize()
	b.Velocity = mgl64.Vec3{}
	b.AngularVelocity = mgl64.Vec3{}
	b.force = mgl64.Vec3{}
	b.torque = mgl64.Vec3{}
}

// Valid reports whether b is usable. A nil *RigidBody is not.
func (b *RigidBody) Valid() bool {
	return b != nil
}

func (b *RigidBody) Basis() flight.Basis {
	return flight.Basis{
		Right:   b.Orientation.Rotate(mgl64.Vec3{1, 0, 0}),
		Up:      b.Orientation.Rotate(mgl64.Vec3{0, 1, 0}),
		Forward: b.Orientation.Rotate(mgl64.Vec3{0, 0, 1}),
	}
}

func (b *RigidBody) AddForce(force mgl64.Vec3, mode flight.ForceMode) {
	if !finite(force) {
		return
	}
	if mode == flight.ForceImpulse {
		b.Velocity = b.Velocity.Add(force.Mul(1 / b.Mass))
		return
	}
	b.force = b.force.Add(force)
}

func (b *RigidBody) AddTorque(torque mgl64.Vec3, mode flight.ForceMode) {
	if !finite(torque) {
		return
	}
	if mode == flight.ForceImpulse {
		b.AngularVelocity = b.AngularVelocity.Add(torque.Mul(1 / b.Inertia))
		return
	}
	b.torque = b.torque.Add(torque)
}

// PendingForce returns the continuous force accumulated since the last step.
func (b *RigidBody) PendingForce() mgl64.Vec3 {
	return b.force
}

// PendingTorque returns the continuous torque accumulated since the last step.
func (b *RigidBody) PendingTorque() mgl64.Vec3 {
	return b.torque
}

func (b *RigidBody) Speed() float64 {
	return b.Velocity.Len()
}

// Integrate advances the body by dt with semi-implicit Euler and clears the
// accumulated forces.
func (b *RigidBody) Integrate(dt float64) {
	if dt <= 0 {
		return
	}

	b.Velocity = b.Velocity.Add(b.force.Mul(dt / b.Mass))
	b.AngularVelocity = b.AngularVelocity.Add(b.torque.Mul(dt / b.Inertia))

	b.Velocity = clampLength(b.Velocity.Mul(dragFactor(b.LinearDrag, dt)), b.MaxSpeed)
	b.AngularVelocity = clampLength(b.AngularVelocity.Mul(dragFactor(b.AngularDrag, dt)), b.MaxAngularSpeed)

	b.Position = b.Position.Add(b.Velocity.Mul(dt))

	// dq/dt = 0.5 * w * q with w as a pure quaternion in world space.
	w := mgl64.Quat{W: 0, V: b.AngularVelocity}
	dq := w.Mul(b.Orientation).Scale(0.5 * dt)
	b.Orientation = b.Orientation.Add(dq).Normalize()

	b.force = mgl64.Vec3{}
	b.torque = mgl64.Vec3{}
}

func dragFactor(drag, dt float64) float64 {
	return mgl64.Clamp(1-drag*dt, 0, 1)
}

func clampLength(v mgl64.Vec3, limit float64) mgl64.Vec3 {
	if limit <= 0 {
		return v
	}
	if l := v.Len(); l > limit {
		return v.Mul(limit / l)
	}
	return v
}

func finite(v mgl64.Vec3) bool {
	for _, c := range v {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return false
		}
	}
	return true
}
