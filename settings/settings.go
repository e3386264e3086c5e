/*
Package settings provides the user preference store.

PURPOSE:
  Persists the small set of flags the employee app reads at startup and
  on period selection: the employee name, auto-fill-from-template,
  salary mode, the add-hours button visibility, plus the approval server
  URL and a restored supervisor session token.

STORAGE:
  A JSON settings file managed through viper. A missing file yields the
  defaults; saving writes the file, creating its directory when needed.

SEE ALSO:
  - form: consumes these flags through the form.Settings interface
  - approval: SupervisorToken restores a supervisor session
*/
package settings

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

const (
	keyEmployeeName         = "employeeName"
	keyAutoFillFromTemplate = "autoFillFromTemplate"
	keySalaryMode           = "salaryMode"
	keyShowAddHoursButton   = "showAddHoursButton"
	keyServerURL            = "serverUrl"
	keySupervisorToken      = "supervisorToken"
)

// Settings reads and writes the preference file.
type Settings struct {
	v    *viper.Viper
	path string
}

// Load opens the settings file at path, falling back to defaults when it
// does not exist yet.
func Load(path string) (*Settings, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("json")

	v.SetDefault(keyEmployeeName, "")
	v.SetDefault(keyAutoFillFromTemplate, false)
	v.SetDefault(keySalaryMode, false)
	v.SetDefault(keyShowAddHoursButton, false)
	v.SetDefault(keyServerURL, "")
	v.SetDefault(keySupervisorToken, "")

	// A missing file just means first run; anything else is a real error.
	if err := v.ReadInConfig(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read settings %s: %w", path, err)
	}
	return &Settings{v: v, path: path}, nil
}

// Save writes the settings file, creating the directory when needed.
func (s *Settings) Save() error {
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create settings dir: %w", err)
		}
	}
	return s.v.WriteConfigAs(s.path)
}

func (s *Settings) EmployeeName() string       { return s.v.GetString(keyEmployeeName) }
func (s *Settings) AutoFillFromTemplate() bool { return s.v.GetBool(keyAutoFillFromTemplate) }
func (s *Settings) SalaryMode() bool           { return s.v.GetBool(keySalaryMode) }
func (s *Settings) ShowAddHoursButton() bool   { return s.v.GetBool(keyShowAddHoursButton) }
func (s *Settings) ServerURL() string          { return s.v.GetString(keyServerURL) }
func (s *Settings) SupervisorToken() string    { return s.v.GetString(keySupervisorToken) }

func (s *Settings) SetEmployeeName(name string)     { s.v.Set(keyEmployeeName, name) }
func (s *Settings) SetAutoFillFromTemplate(on bool) { s.v.Set(keyAutoFillFromTemplate, on) }
func (s *Settings) SetSalaryMode(on bool)           { s.v.Set(keySalaryMode, on) }
func (s *Settings) SetShowAddHoursButton(on bool)   { s.v.Set(keyShowAddHoursButton, on) }
func (s *Settings) SetServerURL(url string)         { s.v.Set(keyServerURL, url) }
func (s *Settings) SetSupervisorToken(tok string)   { s.v.Set(keySupervisorToken, tok) }
