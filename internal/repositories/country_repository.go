package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/zdziszkee/swift-registry/internal/database"
	"github.com/zdziszkee/swift-registry/internal/models"
)

// SQLCountryRepository implements CountryRepository using Trino via database/sql
type SQLCountryRepository struct {
	db    *sql.DB
	table string
}

func NewSQLCountryRepository(db *database.Database) CountryRepository {
	return &SQLCountryRepository{db: db.DB, table: db.Config.Table("countries")}
}

func (r *SQLCountryRepository) Find(ctx context.Context, iso2 string) (*models.Country, error) {
	query := fmt.Sprintf("SELECT iso2, name FROM %s WHERE iso2 = ?", r.table)
	var country models.Country
	err := r.db.QueryRowContext(ctx, query, strings.ToUpper(iso2)).Scan(&country.ISO2, &country.Name)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("trino query failed: %w", err)
	}
	return &country, nil
}

func (r *SQLCountryRepository) Save(ctx context.Context, country *models.Country) error {
	country.ISO2 = strings.ToUpper(country.ISO2)
	country.Name = strings.ToUpper(country.Name)

	if err := checkDuplicate(ctx, r.db, r.table, "iso2", country.ISO2); err != nil {
		return err
	}

	query := fmt.Sprintf("INSERT INTO %s (iso2, name) VALUES (?, ?)", r.table)
	if _, err := r.db.ExecContext(ctx, query, country.ISO2, country.Name); err != nil {
		return fmt.Errorf("trino insert failed: %w", err)
	}
	return nil
}
