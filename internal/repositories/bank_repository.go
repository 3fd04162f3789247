package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/zdziszkee/swift-registry/internal/database"
	"github.com/zdziszkee/swift-registry/internal/models"
)

const bankColumns = "swift_code, bank_name, address, country_iso_code"

// SQLBankRepository implements BankRepository using Trino via database/sql
type SQLBankRepository struct {
	db    *sql.DB
	table string
}

func NewSQLBankRepository(db *database.Database) BankRepository {
	return &SQLBankRepository{db: db.DB, table: db.Config.Table("banks")}
}

func (r *SQLBankRepository) Find(ctx context.Context, code string) (*models.Bank, error) {
	query := fmt.Sprintf("SELECT %s FROM %s WHERE swift_code = ?", bankColumns, r.table)
	row := r.db.QueryRowContext(ctx, query, strings.ToUpper(code))
	bank, err := scanBank(row)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("trino query failed: %w", err)
	}
	return bank, nil
}

func (r *SQLBankRepository) FindByCountry(ctx context.Context, iso2 string) ([]models.Bank, error) {
	query := fmt.Sprintf("SELECT %s FROM %s WHERE country_iso_code = ?", bankColumns, r.table)
	rows, err := r.db.QueryContext(ctx, query, strings.ToUpper(iso2))
	if err != nil {
		return nil, fmt.Errorf("trino query failed: %w", err)
	}
	defer rows.Close()

	var banks []models.Bank
	for rows.Next() {
		bank, err := scanBank(rows)
		if err != nil {
			return nil, fmt.Errorf("trino scan failed: %w", err)
		}
		banks = append(banks, *bank)
	}
	return banks, rows.Err()
}

func (r *SQLBankRepository) Save(ctx context.Context, bank *models.Bank) error {
	bank.SwiftCode = strings.ToUpper(bank.SwiftCode)
	bank.CountryISOCode = strings.ToUpper(bank.CountryISOCode)

	if err := checkDuplicate(ctx, r.db, r.table, "swift_code", bank.SwiftCode); err != nil {
		return err
	}

	query := fmt.Sprintf("INSERT INTO %s (%s) VALUES (?, ?, ?, ?)", r.table, bankColumns)
	_, err := r.db.ExecContext(ctx, query,
		bank.SwiftCode,
		bank.BankName,
		bank.Address,
		bank.CountryISOCode,
	)
	if err != nil {
		return fmt.Errorf("trino insert failed: %w", err)
	}
	return nil
}

func (r *SQLBankRepository) Delete(ctx context.Context, code string) error {
	code = strings.ToUpper(code)
	if err := checkExists(ctx, r.db, r.table, "swift_code", code); err != nil {
		return err
	}

	query := fmt.Sprintf("DELETE FROM %s WHERE swift_code = ?", r.table)
	if _, err := r.db.ExecContext(ctx, query, code); err != nil {
		return fmt.Errorf("trino delete failed: %w", err)
	}
	return nil
}

func scanBank(scanner interface {
	Scan(dest ...any) error
}) (*models.Bank, error) {
	var bank models.Bank
	err := scanner.Scan(
		&bank.SwiftCode,
		&bank.BankName,
		&bank.Address,
		&bank.CountryISOCode,
	)
	if err != nil {
		return nil, err
	}
	return &bank, nil
}

// Shared emulation helpers for duplicate-key and existence checks.

func checkDuplicate(ctx context.Context, db *sql.DB, table, column, value string) error {
	query := fmt.Sprintf("SELECT 1 FROM %s WHERE %s = ? LIMIT 1", table, column)
	var exists int
	err := db.QueryRowContext(ctx, query, value).Scan(&exists)
	if err == nil {
		return ErrDuplicate
	}
	if err != sql.ErrNoRows {
		return fmt.Errorf("trino check duplicate failed: %w", err)
	}
	return nil
}

func checkExists(ctx context.Context, db *sql.DB, table, column, value string) error {
	query := fmt.Sprintf("SELECT 1 FROM %s WHERE %s = ? LIMIT 1", table, column)
	var exists int
	err := db.QueryRowContext(ctx, query, value).Scan(&exists)
	if err == sql.ErrNoRows {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("trino check exists failed: %w", err)
	}
	return nil
}
