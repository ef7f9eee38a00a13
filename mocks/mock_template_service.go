package mocks

import (
	"github.com/stretchr/testify/mock"

	"ndagen/internal/domain"
)

// MockTemplateService is a mock implementation of service.TemplateService.
type MockTemplateService struct {
	mock.Mock
}

func (m *MockTemplateService) Status() *domain.TemplateStatus {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).(*domain.TemplateStatus)
}

func (m *MockTemplateService) Locate(text string) *domain.PlaceholderReport {
	args := m.Called(text)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).(*domain.PlaceholderReport)
}

func (m *MockTemplateService) Fill(companyName, address string) ([]byte, error) {
	args := m.Called(companyName, address)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}
