package distance

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeCaller records which keys were tried and fails for the keys listed.
type fakeCaller struct {
	failKeys map[string]error
	tried    []string
	info     RouteInfo
}

func (f *fakeCaller) distanceMatrix(_ context.Context, _, _ string, _ []string, key string) (RouteInfo, error) {
	f.tried = append(f.tried, key)
	if err, ok := f.failKeys[key]; ok {
		return RouteInfo{}, err
	}
	return f.info, nil
}

func TestAttemptResolver_PrimarySucceeds(t *testing.T) {
	caller := &fakeCaller{info: RouteInfo{Miles: 12.4, DurationText: "21 mins"}}
	r := &AttemptResolver{
		Attempts: []Attempt{{Name: "primary", Key: "key-a"}, {Name: "fallback", Key: "key-b"}},
		caller:   caller,
	}

	got, err := r.ResolveDistance(context.Background(), "a", "b", nil)
	require.NoError(t, err)
	assert.Equal(t, 12.4, got.Miles)
	assert.Equal(t, "primary", got.KeySource)
	assert.Equal(t, []string{"key-a"}, caller.tried, "fallback must not run when primary succeeds")
}

func TestAttemptResolver_FallbackAfterPrimaryFailure(t *testing.T) {
	caller := &fakeCaller{
		failKeys: map[string]error{"key-a": errors.New("REQUEST_DENIED")},
		info:     RouteInfo{Miles: 8.1},
	}
	r := &AttemptResolver{
		Attempts: []Attempt{{Name: "primary", Key: "key-a"}, {Name: "fallback", Key: "key-b"}},
		caller:   caller,
	}

	got, err := r.ResolveDistance(context.Background(), "a", "b", nil)
	require.NoError(t, err)
	assert.Equal(t, "fallback", got.KeySource)
	assert.Equal(t, []string{"key-a", "key-b"}, caller.tried)
}

func TestAttemptResolver_AllFailuresAggregated(t *testing.T) {
	caller := &fakeCaller{failKeys: map[string]error{
		"key-a": errors.New("REQUEST_DENIED"),
		"key-b": errors.New("OVER_QUERY_LIMIT"),
	}}
	r := &AttemptResolver{
		Attempts: []Attempt{{Name: "primary", Key: "key-a"}, {Name: "fallback", Key: "key-b"}},
		caller:   caller,
	}

	_, err := r.ResolveDistance(context.Background(), "a", "b", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "primary: REQUEST_DENIED")
	assert.Contains(t, err.Error(), "fallback: OVER_QUERY_LIMIT")
}

func TestAttemptResolver_MissingKeySkipped(t *testing.T) {
	caller := &fakeCaller{info: RouteInfo{Miles: 5}}
	r := &AttemptResolver{
		Attempts: []Attempt{{Name: "primary", Key: ""}, {Name: "fallback", Key: "key-b"}},
		caller:   caller,
	}

	got, err := r.ResolveDistance(context.Background(), "a", "b", nil)
	require.NoError(t, err)
	assert.Equal(t, "fallback", got.KeySource)
}

func TestNormalizeAddress(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"123 Main St, Denver, CO", "123 Main St, Denver, CO"},
		{"123 Main St", "123 Main St, Colorado Springs, CO"},
		{"Manitou Springs", "Manitou Springs, CO"},
		{"Pueblo Colorado", "Pueblo Colorado"},
		{"", ""},
		{"   ", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizeAddress(tt.in), "input %q", tt.in)
	}
}

func TestIsSurchargeZone(t *testing.T) {
	assert.True(t, IsSurchargeZone("Woodland Park", "Downtown"))
	assert.True(t, IsSurchargeZone("Home", "Cripple Creek Casino"))
	assert.False(t, IsSurchargeZone("Downtown", "Airport"))
}
