package distance

import (
	"context"
	"fmt"
	"strings"
)

// RouteInfo is the resolved driving route between two addresses.
type RouteInfo struct {
	Miles        float64
	DurationText string
	// KeySource names the credential attempt that produced the result.
	KeySource string
}

// Resolver turns an origin/destination pair into driving distance. An error
// means no credential attempt produced a route; quoting cannot proceed.
type Resolver interface {
	ResolveDistance(ctx context.Context, origin, destination string, waypoints []string) (RouteInfo, error)
}

// Attempt is one named credential strategy. Attempts are tried strictly in
// order; a later attempt runs only when every earlier one failed.
type Attempt struct {
	Name string
	Key  string
}

// matrixCaller runs a single distance-matrix call with a specific key.
type matrixCaller interface {
	distanceMatrix(ctx context.Context, origin, destination string, waypoints []string, key string) (RouteInfo, error)
}

// AttemptResolver resolves distance by walking an ordered credential list,
// aggregating every failure message so the caller can see the whole chain.
type AttemptResolver struct {
	Attempts []Attempt
	caller   matrixCaller
}

// NewGoogleResolver builds a resolver over the Google Distance Matrix API.
// The fallback key is optional.
func NewGoogleResolver(primaryKey, fallbackKey string) *AttemptResolver {
	attempts := []Attempt{{Name: "primary", Key: primaryKey}}
	if fallbackKey != "" {
		attempts = append(attempts, Attempt{Name: "fallback", Key: fallbackKey})
	}
	return &AttemptResolver{
		Attempts: attempts,
		caller:   newGoogleMatrixClient(),
	}
}

// ResolveDistance tries each attempt in order and returns the first route.
// When all attempts fail the error concatenates each attempt's failure.
func (r *AttemptResolver) ResolveDistance(ctx context.Context, origin, destination string, waypoints []string) (RouteInfo, error) {
	var failures []string
	for _, attempt := range r.Attempts {
		if attempt.Key == "" {
			failures = append(failures, fmt.Sprintf("%s: key missing", attempt.Name))
			continue
		}
		info, err := r.caller.distanceMatrix(ctx, origin, destination, waypoints, attempt.Key)
		if err != nil {
			failures = append(failures, fmt.Sprintf("%s: %v", attempt.Name, err))
			continue
		}
		info.KeySource = attempt.Name
		return info, nil
	}
	return RouteInfo{}, fmt.Errorf("all distance attempts failed: %s", strings.Join(failures, " | "))
}
