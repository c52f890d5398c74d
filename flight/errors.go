package flight

import "github.com/pkg/errors"

var (
	ErrNoInput       = errors.New("flight: input source is required")
	ErrNoBody        = errors.New("flight: physics body is required")
	ErrInvalidTuning = errors.New("flight: invalid tuning")
)
