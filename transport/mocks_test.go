package transport

import "github.com/stretchr/testify/mock"

// --- Connection ---

type MockConnection struct {
	mock.Mock
}

func (m *MockConnection) Close(reason string) {
	m.Called(reason)
}

func (m *MockConnection) Write(data []byte) error {
	args := m.Called(data)
	return args.Error(0)
}

func (m *MockConnection) Read() ([]byte, error) {
	args := m.Called()
	data, _ := args.Get(0).([]byte)
	return data, args.Error(1)
}

func (m *MockConnection) Ping() error {
	args := m.Called()
	return args.Error(0)
}
