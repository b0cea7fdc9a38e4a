package api

import (
	"github.com/diogo/tripchat/internal/models"
)

// MockClient is a mock implementation of ChatClient for testing
type MockClient struct {
	// Mock return values
	SendVal     *models.TurnReply
	SendErr     error
	EndpointVal string

	// Call counters/recorders
	SendCalled  int
	LastMessage string
}

// Ensure MockClient implements ChatClient
var _ ChatClient = (*MockClient)(nil)

func (m *MockClient) Send(message string) (*models.TurnReply, error) {
	m.SendCalled++
	m.LastMessage = message
	if m.SendErr != nil {
		return nil, m.SendErr
	}
	return m.SendVal, nil
}

func (m *MockClient) Endpoint() string {
	if m.EndpointVal == "" {
		return DefaultEndpoint
	}
	return m.EndpointVal
}
