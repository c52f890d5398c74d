package flight

import "github.com/go-gl/mathgl/mgl64"

type ForceMode int

const (
	// ForceContinuous is integrated over the next physics step.
	ForceContinuous ForceMode = iota
	// ForceImpulse changes velocity immediately.
	ForceImpulse
)

func (m ForceMode) String() string {
	if m == ForceImpulse {
		return "impulse"
	}
	return "continuous"
}

// Basis is a body's orientation expressed as world-space unit axes.
type Basis struct {
	Right   mgl64.Vec3
	Up      mgl64.Vec3
	Forward mgl64.Vec3
}

// IdentityBasis is right=+X, up=+Y, forward=+Z.
func IdentityBasis() Basis {
	return Basis{
		Right:   mgl64.Vec3{1, 0, 0},
		Up:      mgl64.Vec3{0, 1, 0},
		Forward: mgl64.Vec3{0, 0, 1},
	}
}

// TransformDirection maps a local (right, up, forward) direction to world space.
func (b Basis) TransformDirection(local mgl64.Vec3) mgl64.Vec3 {
	return b.Right.Mul(local[0]).Add(b.Up.Mul(local[1])).Add(b.Forward.Mul(local[2]))
}

// Body is the physics collaborator. All vectors are world space.
type Body interface {
	Basis() Basis
	AddForce(force mgl64.Vec3, mode ForceMode)
	AddTorque(torque mgl64.Vec3, mode ForceMode)
}
