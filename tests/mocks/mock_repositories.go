package mocks

import (
	"context"
	"errors"

	"github.com/zdziszkee/swift-registry/internal/models"
	repository "github.com/zdziszkee/swift-registry/internal/repositories"
)

// MockCountryRepository implements repository.CountryRepository for testing
type MockCountryRepository struct {
	FindFunc func(ctx context.Context, iso2 string) (*models.Country, error)
	SaveFunc func(ctx context.Context, country *models.Country) error
}

func (m *MockCountryRepository) Find(ctx context.Context, iso2 string) (*models.Country, error) {
	if m.FindFunc != nil {
		return m.FindFunc(ctx, iso2)
	}
	return nil, errors.New("Find not implemented")
}

func (m *MockCountryRepository) Save(ctx context.Context, country *models.Country) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, country)
	}
	return errors.New("Save not implemented")
}

// MockBankRepository implements repository.BankRepository for testing
type MockBankRepository struct {
	FindFunc          func(ctx context.Context, code string) (*models.Bank, error)
	FindByCountryFunc func(ctx context.Context, iso2 string) ([]models.Bank, error)
	SaveFunc          func(ctx context.Context, bank *models.Bank) error
	DeleteFunc        func(ctx context.Context, code string) error
}

func (m *MockBankRepository) Find(ctx context.Context, code string) (*models.Bank, error) {
	if m.FindFunc != nil {
		return m.FindFunc(ctx, code)
	}
	return nil, errors.New("Find not implemented")
}

func (m *MockBankRepository) FindByCountry(ctx context.Context, iso2 string) ([]models.Bank, error) {
	if m.FindByCountryFunc != nil {
		return m.FindByCountryFunc(ctx, iso2)
	}
	return nil, errors.New("FindByCountry not implemented")
}

func (m *MockBankRepository) Save(ctx context.Context, bank *models.Bank) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, bank)
	}
	return errors.New("Save not implemented")
}

func (m *MockBankRepository) Delete(ctx context.Context, code string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, code)
	}
	return errors.New("Delete not implemented")
}

// MockBranchRepository implements repository.BranchRepository for testing
type MockBranchRepository struct {
	FindFunc                 func(ctx context.Context, code string) (*models.Branch, error)
	FindByCountryFunc        func(ctx context.Context, iso2 string) ([]models.Branch, error)
	FindByHeadquartersFunc   func(ctx context.Context, hqCode string) ([]models.Branch, error)
	SaveFunc                 func(ctx context.Context, branch *models.Branch) error
	DeleteFunc               func(ctx context.Context, code string) error
	DeleteByHeadquartersFunc func(ctx context.Context, hqCode string) error
}

func (m *MockBranchRepository) Find(ctx context.Context, code string) (*models.Branch, error) {
	if m.FindFunc != nil {
		return m.FindFunc(ctx, code)
	}
	return nil, errors.New("Find not implemented")
}

func (m *MockBranchRepository) FindByCountry(ctx context.Context, iso2 string) ([]models.Branch, error) {
	if m.FindByCountryFunc != nil {
		return m.FindByCountryFunc(ctx, iso2)
	}
	return nil, errors.New("FindByCountry not implemented")
}

func (m *MockBranchRepository) FindByHeadquarters(ctx context.Context, hqCode string) ([]models.Branch, error) {
	if m.FindByHeadquartersFunc != nil {
		return m.FindByHeadquartersFunc(ctx, hqCode)
	}
	return nil, errors.New("FindByHeadquarters not implemented")
}

func (m *MockBranchRepository) Save(ctx context.Context, branch *models.Branch) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, branch)
	}
	return errors.New("Save not implemented")
}

func (m *MockBranchRepository) Delete(ctx context.Context, code string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, code)
	}
	return errors.New("Delete not implemented")
}

func (m *MockBranchRepository) DeleteByHeadquarters(ctx context.Context, hqCode string) error {
	if m.DeleteByHeadquartersFunc != nil {
		return m.DeleteByHeadquartersFunc(ctx, hqCode)
	}
	return errors.New("DeleteByHeadquarters not implemented")
}

var _ repository.CountryRepository = (*MockCountryRepository)(nil)
var _ repository.BankRepository = (*MockBankRepository)(nil)
var _ repository.BranchRepository = (*MockBranchRepository)(nil)
