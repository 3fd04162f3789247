// Package repository is the persistence boundary of the registry:
// one repository per entity kind over Trino. Trino/Iceberg enforces
// no unique constraints, so every Save emulates a duplicate-key
// signal with a check-then-insert, and callers rely on ErrDuplicate
// being distinguishable from infrastructure failures.
package repository

import (
	"context"
	"errors"

	"github.com/zdziszkee/swift-registry/internal/models"
)

var (
	ErrNotFound    = errors.New("entity not found")
	ErrDuplicate   = errors.New("entity already exists")
	ErrInvalidData = errors.New("invalid data provided")
)

// CountryRepository persists countries. Countries are never updated
// or deleted once created.
type CountryRepository interface {
	Find(ctx context.Context, iso2 string) (*models.Country, error)
	Save(ctx context.Context, country *models.Country) error
}

// BankRepository persists headquarters banks.
type BankRepository interface {
	Find(ctx context.Context, code string) (*models.Bank, error)
	FindByCountry(ctx context.Context, iso2 string) ([]models.Bank, error)
	Save(ctx context.Context, bank *models.Bank) error
	Delete(ctx context.Context, code string) error
}

// BranchRepository persists branch offices.
type BranchRepository interface {
	Find(ctx context.Context, code string) (*models.Branch, error)
	FindByCountry(ctx context.Context, iso2 string) ([]models.Branch, error)
	FindByHeadquarters(ctx context.Context, hqCode string) ([]models.Branch, error)
	Save(ctx context.Context, branch *models.Branch) error
	Delete(ctx context.Context, code string) error
	DeleteByHeadquarters(ctx context.Context, hqCode string) error
}
