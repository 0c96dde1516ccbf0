package domain

import (
	"context"
	"errors"
)

// ErrCityNotFound is returned by a WeatherProvider when the upstream service
// reports no match for the requested city name.
var ErrCityNotFound = errors.New("city not found")

// WeatherProvider fetches a normalized current-weather observation for a
// free-text city name. Implementations must return an error wrapping
// [ErrCityNotFound] when the provider has no match; any other error is
// treated as an upstream failure by the caller.
type WeatherProvider interface {
	CurrentByCity(ctx context.Context, city string) (Observation, error)
}
