package flight

import (
	"bytes"
	"io"
	"math"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Tuning holds the load-time constants of the flight model. Durations are seconds.
type Tuning struct {
	ThrusterForce             float64 `yaml:"thruster_force"`
	MagnetThrusterForce       float64 `yaml:"magnet_thruster_force"`
	BoosterForce              float64 `yaml:"booster_force"`
	BurstForce                float64 `yaml:"burst_force"`
	BurstCooldown             float64 `yaml:"burst_cooldown"`
	HyperspeedBoostMultiplier float64 `yaml:"hyperspeed_boost_multiplier"`
	MagnetForce               float64 `yaml:"magnet_force"`

	ChargeUpStep             float64 `yaml:"charge_up_step"`
	ChargeUpInterval         float64 `yaml:"charge_up_interval"`
	HyperspeedPrepareSeconds float64 `yaml:"hyperspeed_prepare_seconds"`
}

func DefaultTuning() Tuning {
	return Tuning{
		ThrusterForce:             30,
		MagnetThrusterForce:       150,
		BoosterForce:              70,
		BurstForce:                30,
		BurstCooldown:             1,
		HyperspeedBoostMultiplier: 4,
		MagnetForce:               10,

		ChargeUpStep:             0.02,
		ChargeUpInterval:         0.1,
		HyperspeedPrepareSeconds: 1,
	}
}

// Validate reports the first field that is not a positive finite number.
func (t Tuning) Validate() error {
	fields := []struct {
		name string
		v    float64
	}{
		{"thruster_force", t.ThrusterForce},
		{"magnet_thruster_force", t.MagnetThrusterForce},
		{"booster_force", t.BoosterForce},
		{"burst_force", t.BurstForce},
		{"burst_cooldown", t.BurstCooldown},
		{"hyperspeed_boost_multiplier", t.HyperspeedBoostMultiplier},
		{"magnet_force", t.MagnetForce},
		{"charge_up_step", t.ChargeUpStep},
		{"charge_up_interval", t.ChargeUpInterval},
		{"hyperspeed_prepare_seconds", t.HyperspeedPrepareSeconds},
	}
	for _, f := range fields {
		if math.IsNaN(f.v) || math.IsInf(f.v, 0) || f.v <= 0 {
			return errors.Wrapf(ErrInvalidTuning, "%s must be positive, got %v", f.name, f.v)
		}
	}
	if t.ChargeUpStep > 1 {
		return errors.Wrapf(ErrInvalidTuning, "charge_up_step must not exceed 1, got %v", t.ChargeUpStep)
	}
	return nil
}

// DecodeTuning reads YAML over base, so absent keys keep their base value.
func DecodeTuning(r io.Reader, base Tuning) (Tuning, error) {
	t := base
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&t); err != nil && err != io.EOF {
		return base, errors.Wrap(err, "decode tuning")
	}
	if err := t.Validate(); err != nil {
		return base, err
	}
	return t, nil
}

// LoadTuning reads a YAML tuning file over the defaults.
func LoadTuning(path string) (Tuning, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Tuning{}, errors.Wrapf(err, "read tuning %s", path)
	}
	t, err := DecodeTuning(bytes.NewReader(data), DefaultTuning())
	if err != nil {
		return Tuning{}, errors.Wrapf(err, "tuning %s", path)
	}
	return t, nil
}
