package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultPolicy(t *testing.T) {
	p := DefaultPolicy()
	require.NoError(t, p.Validate())
	assert.Equal(t, 0.70, p.HighRiskThreshold)
	assert.Equal(t, 0.40, p.MediumRiskThreshold)
	assert.Equal(t, 14, p.InactivityDays)
	assert.Equal(t, 7, p.OverdueHighSeverityDays)
	assert.Equal(t, 30, p.EvaluationWindowDays)
}

func TestPolicyValidate(t *testing.T) {
	p := DefaultPolicy()
	p.MediumRiskThreshold = 0.8
	assert.Error(t, p.Validate(), "medium above high must fail")

	p = DefaultPolicy()
	p.InactivityDays = 0
	assert.Error(t, p.Validate())
}

func TestPolicyLoader_FileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "policy.yaml")
	require.NoError(t, os.WriteFile(path, []byte("high_risk_threshold: 0.9\ninactivity_days: 21\n"), 0o644))

	l, err := NewPolicyLoader(path)
	require.NoError(t, err)

	p := l.Policy()
	assert.Equal(t, 0.9, p.HighRiskThreshold)
	assert.Equal(t, 21, p.InactivityDays)
	// Unspecified keys keep defaults.
	assert.Equal(t, 0.40, p.MediumRiskThreshold)
}

func TestPolicyLoader_EmptyPathUsesDefaults(t *testing.T) {
	l, err := NewPolicyLoader("")
	require.NoError(t, err)
	assert.Equal(t, DefaultPolicy(), l.Policy())

	stop, err := l.Watch()
	require.NoError(t, err)
	stop()
}

func TestPolicyLoader_RejectsInvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "policy.yaml")
	require.NoError(t, os.WriteFile(path, []byte("high_risk_threshold: 0.2\nmedium_risk_threshold: 0.5\n"), 0o644))

	_, err := NewPolicyLoader(path)
	assert.Error(t, err)
}
