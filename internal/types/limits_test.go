// Package types provides type definitions for structured data used throughout the resume-tailor system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func TestDefaultLimits(t *testing.T) {
	limits := DefaultLimits()
	assert.Equal(t, Limits{Skills: 15, Projects: 5, Experience: 4, Certificates: 7, Education: 2}, limits)
	assert.NoError(t, limits.Validate())
}

func TestLimits_Validate(t *testing.T) {
	tests := []struct {
		name    string
		limits  Limits
		wantErr bool
	}{
		{name: "zero is allowed", limits: Limits{}},
		{name: "defaults", limits: DefaultLimits()},
		{name: "negative skills", limits: Limits{Skills: -1}, wantErr: true},
		{name: "negative education", limits: Limits{Education: -3}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.limits.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLimits_Merge(t *testing.T) {
	base := DefaultLimits()

	merged := base.Merge(LimitOverrides{Projects: intPtr(1), Education: intPtr(0)})
	assert.Equal(t, 15, merged.Skills)
	assert.Equal(t, 1, merged.Projects)
	assert.Equal(t, 4, merged.Experience)
	assert.Equal(t, 7, merged.Certificates)
	assert.Equal(t, 0, merged.Education)

	// base is untouched
	assert.Equal(t, DefaultLimits(), base)

	assert.Equal(t, base, base.Merge(LimitOverrides{}))
}

func TestLimitOverrides_Merge(t *testing.T) {
	fromFile := LimitOverrides{Skills: intPtr(8), Projects: intPtr(2)}
	fromFlags := LimitOverrides{Projects: intPtr(4)}

	merged := fromFile.Merge(fromFlags)
	require.NotNil(t, merged.Skills)
	require.NotNil(t, merged.Projects)
	assert.Equal(t, 8, *merged.Skills)
	assert.Equal(t, 4, *merged.Projects)
	assert.Nil(t, merged.Experience)
}

func TestLimitOverrides_JSONUnmarshaling(t *testing.T) {
	var o LimitOverrides
	err := json.Unmarshal([]byte(`{"skills": 0, "certificates": 3}`), &o)
	require.NoError(t, err)

	require.NotNil(t, o.Skills)
	assert.Equal(t, 0, *o.Skills)
	require.NotNil(t, o.Certificates)
	assert.Equal(t, 3, *o.Certificates)
	assert.Nil(t, o.Projects)
}
