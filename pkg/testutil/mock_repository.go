package testutil

import (
	"fmt"
	"sort"
	"sync"

	"github.com/arthur-debert/fuga/pkg/types"
)

// MockConfigRepository is an in-memory types.ConfigRepository
type MockConfigRepository struct {
	mu            sync.Mutex
	config        types.AppConfig
	calls         []string
	errorOn       string
	errorToReturn error
}

// NewMockConfigRepository creates a repository holding marks
func NewMockConfigRepository(marks ...string) *MockConfigRepository {
	return &MockConfigRepository{
		config: types.AppConfig{
			Data: types.Data{
				Targets: append([]string(nil), marks...),
				Presets: map[string][]string{},
			},
		},
	}
}

// WithError makes method fail with err
func (m *MockConfigRepository) WithError(method string, err error) *MockConfigRepository {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.errorOn = method
	m.errorToReturn = err
	return m
}

// WithPreset seeds a preset
func (m *MockConfigRepository) WithPreset(name string, targets ...string) *MockConfigRepository {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.config.Data.Presets[name] = append([]string(nil), targets...)
	return m
}

// GetCalls returns the recorded method calls
func (m *MockConfigRepository) GetCalls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.calls...)
}

// Marks returns the current mark list without recording a call
func (m *MockConfigRepository) Marks() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.config.Data.Targets...)
}

func (m *MockConfigRepository) record(call string) error {
	m.calls = append(m.calls, call)
	name := call
	for i, r := range call {
		if r == '(' {
			name = call[:i]
			break
		}
	}
	if m.errorOn == name {
		return m.errorToReturn
	}
	return nil
}

func (m *MockConfigRepository) Load() (*types.AppConfig, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.record("Load()"); err != nil {
		return nil, err
	}
	cfg := m.config
	return &cfg, nil
}

func (m *MockConfigRepository) Store(cfg *types.AppConfig) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.record("Store()"); err != nil {
		return err
	}
	m.config = *cfg
	return nil
}

func (m *MockConfigRepository) GetMarkedTargets() ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.record("GetMarkedTargets()"); err != nil {
		return nil, err
	}
	return append([]string(nil), m.config.Data.Targets...), nil
}

func (m *MockConfigRepository) SetMarkedTargets(targets []string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.record(fmt.Sprintf("SetMarkedTargets(%d)", len(targets))); err != nil {
		return err
	}
	m.config.Data.Targets = append([]string(nil), targets...)
	m.config.Data.Target = ""
	return nil
}

func (m *MockConfigRepository) ResetMarks() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.record("ResetMarks()"); err != nil {
		return err
	}
	m.config.Data.Targets = nil
	return nil
}

func (m *MockConfigRepository) ListPresets() ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.record("ListPresets()"); err != nil {
		return nil, err
	}
	names := make([]string, 0, len(m.config.Data.Presets))
	for name := range m.config.Data.Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

func (m *MockConfigRepository) GetPreset(name string) ([]string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.record(fmt.Sprintf("GetPreset(%s)", name)); err != nil {
		return nil, false, err
	}
	targets, ok := m.config.Data.Presets[name]
	return append([]string(nil), targets...), ok, nil
}

func (m *MockConfigRepository) SavePreset(name string, targets []string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.record(fmt.Sprintf("SavePreset(%s)", name)); err != nil {
		return err
	}
	m.config.Data.Presets[name] = append([]string(nil), targets...)
	return nil
}

func (m *MockConfigRepository) DeletePreset(name string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.record(fmt.Sprintf("DeletePreset(%s)", name)); err != nil {
		return false, err
	}
	_, ok := m.config.Data.Presets[name]
	delete(m.config.Data.Presets, name)
	return ok, nil
}
