// Package importer seeds the registry from a normalized record set.
// Countries and banks are persisted first and tolerate duplicates so
// a reimport is idempotent; branch problems never abort the run.
package importer

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/zdziszkee/swift-registry/internal/parsers"
	readers "github.com/zdziszkee/swift-registry/internal/readers"
	csvreader "github.com/zdziszkee/swift-registry/internal/readers/csv"
	xlsxreader "github.com/zdziszkee/swift-registry/internal/readers/xlsx"
	repository "github.com/zdziszkee/swift-registry/internal/repositories"
)

// Summary reports how many rows of each kind were persisted by a run.
type Summary struct {
	Countries int
	Banks     int
	Branches  int
}

type SwiftImporter struct {
	countries  repository.CountryRepository
	banks      repository.BankRepository
	branches   repository.BranchRepository
	normalizer parsers.SwiftRecordsNormalizer
}

func NewSwiftImporter(
	countries repository.CountryRepository,
	banks repository.BankRepository,
	branches repository.BranchRepository,
) *SwiftImporter {
	return &SwiftImporter{
		countries:  countries,
		banks:      banks,
		branches:   branches,
		normalizer: parsers.NewSwiftRecordsNormalizer(),
	}
}

// Run persists a record set in dependency order: countries, banks,
// branches. A duplicate country or bank is swallowed (reimports are
// idempotent), any other country or bank failure aborts the run. A
// branch whose headquarters cannot be resolved is skipped with a
// warning, and no branch failure ever aborts the run.
func (i *SwiftImporter) Run(ctx context.Context, set *parsers.RecordSet) (Summary, error) {
	var summary Summary

	for _, country := range set.Countries.Values() {
		localCountry := country
		err := i.countries.Save(ctx, &localCountry)
		if errors.Is(err, repository.ErrDuplicate) {
			continue
		}
		if err != nil {
			return summary, fmt.Errorf("save country %s: %w", country.ISO2, err)
		}
		summary.Countries++
	}

	for _, bank := range set.Banks.Values() {
		localBank := bank
		err := i.banks.Save(ctx, &localBank)
		if errors.Is(err, repository.ErrDuplicate) {
			continue
		}
		if err != nil {
			return summary, fmt.Errorf("save bank %s: %w", bank.SwiftCode, err)
		}
		summary.Banks++
	}

	for _, branch := range set.Branches.Values() {
		if _, err := i.banks.Find(ctx, branch.HeadquartersCode); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				log.Printf("WARNING: skipping branch %s: headquarters %s not found", branch.SwiftCode, branch.HeadquartersCode)
			} else {
				log.Printf("WARNING: skipping branch %s: headquarters lookup failed: %v", branch.SwiftCode, err)
			}
			continue
		}

		localBranch := branch
		err := i.branches.Save(ctx, &localBranch)
		if errors.Is(err, repository.ErrDuplicate) {
			log.Printf("WARNING: skipping branch %s: already exists", branch.SwiftCode)
			continue
		}
		if err != nil {
			log.Printf("WARNING: skipping branch %s: %v", branch.SwiftCode, err)
			continue
		}
		summary.Branches++
	}

	return summary, nil
}

// ImportFile reads, normalizes and persists a bulk source file,
// picking the reader from the file extension.
func (i *SwiftImporter) ImportFile(ctx context.Context, filePath string) (Summary, error) {
	startTime := time.Now()

	reader, err := readerForFile(filePath)
	if err != nil {
		return Summary{}, err
	}

	file, err := os.Open(filePath)
	if err != nil {
		return Summary{}, fmt.Errorf("failed to open file %s: %w", filePath, err)
	}
	defer file.Close()

	records, err := reader.ReadRecords(file)
	if err != nil {
		return Summary{}, fmt.Errorf("failed to read SWIFT data: %w", err)
	}

	set, err := i.normalizer.Normalize(records)
	if err != nil {
		return Summary{}, fmt.Errorf("failed to normalize SWIFT data: %w", err)
	}

	summary, err := i.Run(ctx, set)
	if err != nil {
		return summary, err
	}

	log.Printf("Imported %d countries, %d banks, %d branches from %s in %v",
		summary.Countries, summary.Banks, summary.Branches, filePath, time.Since(startTime))
	return summary, nil
}

// FindDataFile returns the first file in dir with a recognized
// tabular extension.
func FindDataFile(dir string) (string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", fmt.Errorf("failed to read data directory %s: %w", dir, err)
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		switch strings.ToLower(filepath.Ext(entry.Name())) {
		case ".csv", ".xlsx":
			return filepath.Join(dir, entry.Name()), nil
		}
	}
	return "", fmt.Errorf("no CSV or XLSX file found in %s", dir)
}

func readerForFile(filePath string) (readers.SwiftRecordsReader, error) {
	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".csv":
		return csvreader.NewCSVSwiftRecordsReader(), nil
	case ".xlsx":
		return xlsxreader.NewXLSXSwiftRecordsReader(), nil
	default:
		return nil, fmt.Errorf("unsupported data file extension: %s", filePath)
	}
}
