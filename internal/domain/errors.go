package domain

import "errors"

// Errors returned by domain operations. All of them leave the game untouched.
var (
	ErrInvalidCoordinate     = errors.New("invalid coordinate")
	ErrOutOfBounds           = errors.New("out of bounds")
	ErrContainsOpponentStone = errors.New("footprint contains opponent stone")
	ErrEmptyFootprint        = errors.New("footprint has none of your stones")
	ErrTooFar                = errors.New("move too far")
	ErrInvalidDirection      = errors.New("invalid direction")
	ErrDirectionNotSupported = errors.New("direction not supported")
	ErrPathObstructed        = errors.New("path obstructed")
	ErrGameOver              = errors.New("game over")
)

var reasons = []struct {
	err  error
	code string
}{
	{ErrInvalidCoordinate, "invalid_coordinate"},
	{ErrOutOfBounds, "out_of_bounds"},
	{ErrContainsOpponentStone, "contains_opponent_stone"},
	{ErrEmptyFootprint, "empty_footprint"},
	{ErrTooFar, "too_far"},
	{ErrInvalidDirection, "invalid_direction"},
	{ErrDirectionNotSupported, "direction_not_supported"},
	{ErrPathObstructed, "path_obstructed"},
	{ErrGameOver, "game_over"},
}

// Reason returns a stable snake_case code for a domain error, or "" when err
// is nil or not one of ours.
func Reason(err error) string {
	if err == nil {
		return ""
	}
	for _, r := range reasons {
		if errors.Is(err, r.err) {
			return r.code
		}
	}
	return ""
}
