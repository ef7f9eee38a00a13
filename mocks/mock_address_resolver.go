package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockAddressResolver is a mock implementation of port.AddressResolver.
type MockAddressResolver struct {
	mock.Mock
}

func (m *MockAddressResolver) Resolve(ctx context.Context, companyName string) (string, bool) {
	args := m.Called(ctx, companyName)
	return args.String(0), args.Bool(1)
}
