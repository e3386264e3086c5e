package settings_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/warp/timeclock-engine/settings"
)

func TestSettings_DefaultsWhenFileMissing(t *testing.T) {
	s, err := settings.Load(filepath.Join(t.TempDir(), "settings.json"))
	require.NoError(t, err)

	assert.Equal(t, "", s.EmployeeName())
	assert.False(t, s.AutoFillFromTemplate())
	assert.False(t, s.SalaryMode())
	assert.False(t, s.ShowAddHoursButton())
}

func TestSettings_SaveAndReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app", "settings.json")

	s, err := settings.Load(path)
	require.NoError(t, err)
	s.SetEmployeeName("Pat Doe")
	s.SetAutoFillFromTemplate(true)
	s.SetSalaryMode(true)
	s.SetServerURL("http://localhost:8080")
	require.NoError(t, s.Save())

	reloaded, err := settings.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Pat Doe", reloaded.EmployeeName())
	assert.True(t, reloaded.AutoFillFromTemplate())
	assert.True(t, reloaded.SalaryMode())
	assert.Equal(t, "http://localhost:8080", reloaded.ServerURL())
	assert.False(t, reloaded.ShowAddHoursButton(), "unset flags keep their defaults")
}
