package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/zdziszkee/swift-registry/internal/codes"
	"github.com/zdziszkee/swift-registry/internal/models"
	repository "github.com/zdziszkee/swift-registry/internal/repositories"
)

var (
	ErrNotFound      = errors.New("swift code not found")
	ErrInvalidInput  = errors.New("invalid input provided")
	ErrAlreadyExists = errors.New("swift code already exists")
)

// SwiftService handles business logic for SWIFT codes
type SwiftService interface {
	GetSwiftCodeDetails(ctx context.Context, code string) (*SwiftCodeDetails, error)
	GetSwiftCodesByCountry(ctx context.Context, countryCode string) (*CountrySwiftCodes, error)
	CreateSwiftCode(ctx context.Context, request *CreateSwiftCodeRequest) error
	DeleteSwiftCode(ctx context.Context, code string) error
}

type swiftService struct {
	countries repository.CountryRepository
	banks     repository.BankRepository
	branches  repository.BranchRepository
}

func NewSwiftService(
	countries repository.CountryRepository,
	banks repository.BankRepository,
	branches repository.BranchRepository,
) SwiftService {
	return &swiftService{countries: countries, banks: banks, branches: branches}
}

// GetSwiftCodeDetails retrieves a headquarters with its branches, or
// a single branch, depending on what the code identifies.
func (s *swiftService) GetSwiftCodeDetails(ctx context.Context, code string) (*SwiftCodeDetails, error) {
	code = strings.ToUpper(code)
	if len(code) < 8 {
		return nil, ErrInvalidInput
	}

	if codes.IsHeadquarters(code) {
		return s.getHeadquartersDetails(ctx, code)
	}
	return s.getBranchDetails(ctx, code)
}

func (s *swiftService) getHeadquartersDetails(ctx context.Context, code string) (*SwiftCodeDetails, error) {
	bank, err := s.banks.Find(ctx, code)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	countryName, err := s.countryName(ctx, bank.CountryISOCode)
	if err != nil {
		return nil, err
	}

	branches, err := s.branches.FindByHeadquarters(ctx, code)
	if err != nil {
		return nil, err
	}

	branchSummaries := make([]SwiftCode, 0, len(branches))
	for _, branch := range branches {
		branchSummaries = append(branchSummaries, SwiftCode{
			SwiftCode:     branch.SwiftCode,
			BankName:      branch.BankName,
			Address:       branch.Address,
			CountryISO2:   branch.CountryISOCode,
			IsHeadquarter: false,
		})
	}

	return &SwiftCodeDetails{
		SwiftCode:     bank.SwiftCode,
		BankName:      bank.BankName,
		Address:       bank.Address,
		CountryISO2:   bank.CountryISOCode,
		CountryName:   countryName,
		IsHeadquarter: true,
		Branches:      branchSummaries,
	}, nil
}

func (s *swiftService) getBranchDetails(ctx context.Context, code string) (*SwiftCodeDetails, error) {
	branch, err := s.branches.Find(ctx, code)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	countryName, err := s.countryName(ctx, branch.CountryISOCode)
	if err != nil {
		return nil, err
	}

	return &SwiftCodeDetails{
		SwiftCode:     branch.SwiftCode,
		BankName:      branch.BankName,
		Address:       branch.Address,
		CountryISO2:   branch.CountryISOCode,
		CountryName:   countryName,
		IsHeadquarter: false,
	}, nil
}

// GetSwiftCodesByCountry lists every code for a country, banks before
// branches, each in store retrieval order.
func (s *swiftService) GetSwiftCodesByCountry(ctx context.Context, countryCode string) (*CountrySwiftCodes, error) {
	countryCode = strings.ToUpper(countryCode)
	if len(countryCode) != 2 {
		return nil, ErrInvalidInput
	}

	country, err := s.countries.Find(ctx, countryCode)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	banks, err := s.banks.FindByCountry(ctx, countryCode)
	if err != nil {
		return nil, err
	}
	branches, err := s.branches.FindByCountry(ctx, countryCode)
	if err != nil {
		return nil, err
	}

	swiftCodes := make([]SwiftCode, 0, len(banks)+len(branches))
	for _, bank := range banks {
		swiftCodes = append(swiftCodes, SwiftCode{
			SwiftCode:     bank.SwiftCode,
			BankName:      bank.BankName,
			Address:       bank.Address,
			CountryISO2:   bank.CountryISOCode,
			IsHeadquarter: true,
		})
	}
	for _, branch := range branches {
		swiftCodes = append(swiftCodes, SwiftCode{
			SwiftCode:     branch.SwiftCode,
			BankName:      branch.BankName,
			Address:       branch.Address,
			CountryISO2:   branch.CountryISOCode,
			IsHeadquarter: false,
		})
	}

	return &CountrySwiftCodes{
		CountryISO2: country.ISO2,
		CountryName: country.Name,
		SwiftCodes:  swiftCodes,
	}, nil
}

// CreateSwiftCode adds a new code to the registry. The code shape
// decides whether a bank or a branch is created; the request's
// IsHeadquarter flag is not trusted. Adding a branch whose
// headquarters is unknown auto-creates the headquarters from the
// request's fields.
func (s *swiftService) CreateSwiftCode(ctx context.Context, request *CreateSwiftCodeRequest) error {
	if request == nil {
		return ErrInvalidInput
	}
	if request.SwiftCode == "" || request.BankName == "" || request.CountryISO2 == "" || request.CountryName == "" {
		return ErrInvalidInput
	}
	if len(request.SwiftCode) < 8 || len(request.SwiftCode) > 11 {
		return ErrInvalidInput
	}
	if len(request.CountryISO2) != 2 {
		return ErrInvalidInput
	}

	swiftCode := strings.ToUpper(request.SwiftCode)
	countryISO := strings.ToUpper(request.CountryISO2)
	countryName := strings.ToUpper(request.CountryName)

	if err := s.ensureCountry(ctx, countryISO, countryName); err != nil {
		return err
	}

	if codes.IsHeadquarters(swiftCode) {
		bank := &models.Bank{
			SwiftCode:      swiftCode,
			BankName:       request.BankName,
			Address:        request.Address,
			CountryISOCode: countryISO,
		}
		err := s.banks.Save(ctx, bank)
		if errors.Is(err, repository.ErrDuplicate) {
			return ErrAlreadyExists
		}
		return err
	}

	hqCode := codes.HeadquartersCode(swiftCode)
	if err := s.ensureHeadquarters(ctx, hqCode, request, countryISO); err != nil {
		return err
	}

	branch := &models.Branch{
		SwiftCode:        swiftCode,
		BankName:         request.BankName,
		Address:          request.Address,
		CountryISOCode:   countryISO,
		HeadquartersCode: hqCode,
	}
	err := s.branches.Save(ctx, branch)
	if errors.Is(err, repository.ErrDuplicate) {
		return ErrAlreadyExists
	}
	return err
}

// DeleteSwiftCode removes a code; deleting a headquarters cascades to
// its branches first. NotFound is reported for a missing headquarters
// even when orphan branches were cascaded away.
func (s *swiftService) DeleteSwiftCode(ctx context.Context, code string) error {
	code = strings.ToUpper(code)
	if len(code) < 8 {
		return ErrInvalidInput
	}

	if codes.IsHeadquarters(code) {
		if err := s.branches.DeleteByHeadquarters(ctx, code); err != nil {
			return err
		}
		err := s.banks.Delete(ctx, code)
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}

	err := s.branches.Delete(ctx, code)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrNotFound
	}
	return err
}

// countryName resolves the display name for an ISO code; a gap in the
// countries table degrades to an empty name instead of failing the
// lookup.
func (s *swiftService) countryName(ctx context.Context, iso2 string) (string, error) {
	country, err := s.countries.Find(ctx, iso2)
	if errors.Is(err, repository.ErrNotFound) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return country.Name, nil
}

func (s *swiftService) ensureCountry(ctx context.Context, iso2, name string) error {
	_, err := s.countries.Find(ctx, iso2)
	if err == nil {
		return nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return err
	}

	saveErr := s.countries.Save(ctx, &models.Country{ISO2: iso2, Name: name})
	if saveErr != nil && !errors.Is(saveErr, repository.ErrDuplicate) {
		return fmt.Errorf("create country %s: %w", iso2, saveErr)
	}
	return nil
}

// ensureHeadquarters auto-creates a headquarters stub from branch
// request data when none exists yet. A duplicate on the stub save is
// fine: someone else created it in the meantime.
func (s *swiftService) ensureHeadquarters(ctx context.Context, hqCode string, request *CreateSwiftCodeRequest, countryISO string) error {
	_, err := s.banks.Find(ctx, hqCode)
	if err == nil {
		return nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return err
	}

	stub := &models.Bank{
		SwiftCode:      hqCode,
		BankName:       request.BankName,
		Address:        request.Address,
		CountryISOCode: countryISO,
	}
	saveErr := s.banks.Save(ctx, stub)
	if saveErr != nil && !errors.Is(saveErr, repository.ErrDuplicate) {
		return fmt.Errorf("create headquarters %s: %w", hqCode, saveErr)
	}
	return nil
}
