package mocks

import (
	"context"

	service "github.com/zdziszkee/swift-registry/internal/services"
)

// MockSwiftService implements service.SwiftService.
type MockSwiftService struct {
	GetSwiftCodeDetailsFunc    func(ctx context.Context, code string) (*service.SwiftCodeDetails, error)
	GetSwiftCodesByCountryFunc func(ctx context.Context, countryCode string) (*service.CountrySwiftCodes, error)
	CreateSwiftCodeFunc        func(ctx context.Context, request *service.CreateSwiftCodeRequest) error
	DeleteSwiftCodeFunc        func(ctx context.Context, code string) error
}

func (m *MockSwiftService) GetSwiftCodeDetails(ctx context.Context, code string) (*service.SwiftCodeDetails, error) {
	return m.GetSwiftCodeDetailsFunc(ctx, code)
}

func (m *MockSwiftService) GetSwiftCodesByCountry(ctx context.Context, countryCode string) (*service.CountrySwiftCodes, error) {
	return m.GetSwiftCodesByCountryFunc(ctx, countryCode)
}

func (m *MockSwiftService) CreateSwiftCode(ctx context.Context, request *service.CreateSwiftCodeRequest) error {
	return m.CreateSwiftCodeFunc(ctx, request)
}

func (m *MockSwiftService) DeleteSwiftCode(ctx context.Context, code string) error {
	return m.DeleteSwiftCodeFunc(ctx, code)
}
