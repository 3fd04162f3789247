package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/zdziszkee/swift-registry/internal/codes"
	"github.com/zdziszkee/swift-registry/internal/database"
	"github.com/zdziszkee/swift-registry/internal/models"
)

const branchColumns = "swift_code, bank_name, address, country_iso_code, headquarters_code"

// SQLBranchRepository implements BranchRepository using Trino via database/sql
type SQLBranchRepository struct {
	db    *sql.DB
	table string
}

func NewSQLBranchRepository(db *database.Database) BranchRepository {
	return &SQLBranchRepository{db: db.DB, table: db.Config.Table("branches")}
}

func (r *SQLBranchRepository) Find(ctx context.Context, code string) (*models.Branch, error) {
	query := fmt.Sprintf("SELECT %s FROM %s WHERE swift_code = ?", branchColumns, r.table)
	row := r.db.QueryRowContext(ctx, query, strings.ToUpper(code))
	branch, err := scanBranch(row)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("trino query failed: %w", err)
	}
	return branch, nil
}

func (r *SQLBranchRepository) FindByCountry(ctx context.Context, iso2 string) ([]models.Branch, error) {
	query := fmt.Sprintf("SELECT %s FROM %s WHERE country_iso_code = ?", branchColumns, r.table)
	return r.queryBranches(ctx, query, strings.ToUpper(iso2))
}

func (r *SQLBranchRepository) FindByHeadquarters(ctx context.Context, hqCode string) ([]models.Branch, error) {
	query := fmt.Sprintf("SELECT %s FROM %s WHERE headquarters_code = ?", branchColumns, r.table)
	return r.queryBranches(ctx, query, strings.ToUpper(hqCode))
}

func (r *SQLBranchRepository) Save(ctx context.Context, branch *models.Branch) error {
	branch.SwiftCode = strings.ToUpper(branch.SwiftCode)
	branch.CountryISOCode = strings.ToUpper(branch.CountryISOCode)
	if branch.HeadquartersCode == "" {
		branch.HeadquartersCode = codes.HeadquartersCode(branch.SwiftCode)
	}

	if err := checkDuplicate(ctx, r.db, r.table, "swift_code", branch.SwiftCode); err != nil {
		return err
	}

	query := fmt.Sprintf("INSERT INTO %s (%s) VALUES (?, ?, ?, ?, ?)", r.table, branchColumns)
	_, err := r.db.ExecContext(ctx, query,
		branch.SwiftCode,
		branch.BankName,
		branch.Address,
		branch.CountryISOCode,
		branch.HeadquartersCode,
	)
	if err != nil {
		return fmt.Errorf("trino insert failed: %w", err)
	}
	return nil
}

func (r *SQLBranchRepository) Delete(ctx context.Context, code string) error {
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

// DeleteByHeadquarters removes every branch owned by hqCode. Deleting
// zero rows is not an error: the cascade caller does not know up
// front whether branches exist.
func (r *SQLBranchRepository) DeleteByHeadquarters(ctx context.Context, hqCode string) error {
	query := fmt.Sprintf("DELETE FROM %s WHERE headquarters_code = ?", r.table)
	if _, err := r.db.ExecContext(ctx, query, strings.ToUpper(hqCode)); err != nil {
		return fmt.Errorf("trino delete failed: %w", err)
	}
	return nil
}

func (r *SQLBranchRepository) queryBranches(ctx context.Context, query string, arg string) ([]models.Branch, error) {
	rows, err := r.db.QueryContext(ctx, query, arg)
	if err != nil {
		return nil, fmt.Errorf("trino query failed: %w", err)
	}
	defer rows.Close()

	var branches []models.Branch
	for rows.Next() {
		branch, err := scanBranch(rows)
		if err != nil {
			return nil, fmt.Errorf("trino scan failed: %w", err)
		}
		branches = append(branches, *branch)
	}
	return branches, rows.Err()
}

func scanBranch(scanner interface {
	Scan(dest ...any) error
}) (*models.Branch, error) {
	var branch models.Branch
	err := scanner.Scan(
		&branch.SwiftCode,
		&branch.BankName,
		&branch.Address,
		&branch.CountryISOCode,
		&branch.HeadquartersCode,
	)
	if err != nil {
		return nil, err
	}
	return &branch, nil
}
