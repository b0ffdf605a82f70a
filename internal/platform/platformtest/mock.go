// Package platformtest provides a testify mock of platform.Agent.
package platformtest

import (
	"github.com/stretchr/testify/mock"

	"github.com/thoreinstein/aisync/internal/model"
	"github.com/thoreinstein/aisync/internal/platform"
)

var _ platform.Agent = (*MockAgent)(nil)

// MockAgent is a platform.Agent whose behavior is scripted with On.
// Name, DisplayName, Root and Supports come from fields so tests only
// script the read and write calls they care about.
type MockAgent struct {
	mock.Mock

	AgentName    string
	AgentRoot    string
	Capabilities model.FieldSupport
}

// NewMockAgent returns a mock with the given name and capabilities.
func NewMockAgent(name string, supports model.FieldSupport) *MockAgent {
	return &MockAgent{AgentName: name, Capabilities: supports}
}

func (m *MockAgent) Name() string                 { return m.AgentName }
func (m *MockAgent) DisplayName() string          { return m.AgentName }
func (m *MockAgent) Root() string                 { return m.AgentRoot }
func (m *MockAgent) Supports() model.FieldSupport { return m.Capabilities }

func (m *MockAgent) ReadCommands(opts model.ReadOptions) ([]model.Command, error) {
	args := m.Called(opts)
	return commands(args, 0), args.Error(1)
}

func (m *MockAgent) ReadMCPServers() ([]model.MCPServer, error) {
	args := m.Called()
	servers, _ := args.Get(0).([]model.MCPServer)
	return servers, args.Error(1)
}

func (m *MockAgent) ReadPreferences() (model.Preferences, error) {
	args := m.Called()
	prefs, _ := args.Get(0).(model.Preferences)
	return prefs, args.Error(1)
}

func (m *MockAgent) ReadSkills() ([]model.Command, error) {
	args := m.Called()
	return commands(args, 0), args.Error(1)
}

func (m *MockAgent) ReadHooks() ([]model.Command, error) {
	args := m.Called()
	return commands(args, 0), args.Error(1)
}

func (m *MockAgent) ReadAgents() ([]model.Command, error) {
	args := m.Called()
	return commands(args, 0), args.Error(1)
}

func (m *MockAgent) WriteCommands(items []model.Command, opts model.WriteOptions) (model.WriteReport, error) {
	args := m.Called(items, opts)
	return report(args), args.Error(1)
}

func (m *MockAgent) WriteMCPServers(servers []model.MCPServer, opts model.WriteOptions) (model.WriteReport, error) {
	args := m.Called(servers, opts)
	return report(args), args.Error(1)
}

func (m *MockAgent) WritePreferences(prefs model.Preferences, opts model.WriteOptions) (model.WriteReport, error) {
	args := m.Called(prefs, opts)
	return report(args), args.Error(1)
}

func (m *MockAgent) WriteSkills(items []model.Command, opts model.WriteOptions) (model.WriteReport, error) {
	args := m.Called(items, opts)
	return report(args), args.Error(1)
}

func (m *MockAgent) WriteHooks(items []model.Command, opts model.WriteOptions) (model.WriteReport, error) {
	args := m.Called(items, opts)
	return report(args), args.Error(1)
}

func (m *MockAgent) WriteAgents(items []model.Command, opts model.WriteOptions) (model.WriteReport, error) {
	args := m.Called(items, opts)
	return report(args), args.Error(1)
}

func commands(args mock.Arguments, i int) []model.Command {
	cmds, _ := args.Get(i).([]model.Command)
	return cmds
}

func report(args mock.Arguments) model.WriteReport {
	r, _ := args.Get(0).(model.WriteReport)
	return r
}
