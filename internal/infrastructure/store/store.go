// Package store is the flat-file record store: generic load-all/save-all
// operations over named, schema-typed tables. A save replaces the entire
// table file from the in-memory working set; there are no partial writes.
package store

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"
	"github.com/kiptoo/carebill/pkg/apperror"
)

// Table file names. The schema (ordered column list) of each table is fixed
// by the csv tags on its record type.
const (
	PatientsTable      = "patients.csv"
	DoctorsTable       = "doctors.csv"
	AppointmentsTable  = "appointments.csv"
	PharmacyTable      = "pharmacy.csv"
	BillsTable         = "bills.csv"
	PrescriptionsTable = "prescriptions.csv"
	LabReportsTable    = "labreports.csv"
)

// Store locates table files under one data directory.
type Store struct {
	dataDir string
}

// New creates the data directory if needed and returns a Store over it.
func New(dataDir string) (*Store, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, apperror.NewPersistenceError(
			fmt.Sprintf("create data directory %s", dataDir), err)
	}
	return &Store{dataDir: dataDir}, nil
}

// Path returns the file path for a table name.
func (s *Store) Path(table string) string {
	return filepath.Join(s.dataDir, table)
}

// LoadTable reads the whole table into memory. A missing or empty file is
// an empty table, not an error.
func LoadTable[T any](s *Store, table string) ([]T, error) {
	data, err := os.ReadFile(s.Path(table))
	if os.IsNotExist(err) {
		return []T{}, nil
	}
	if err != nil {
		return nil, apperror.NewPersistenceError(fmt.Sprintf("read table %s", table), err)
	}
	if len(data) == 0 {
		return []T{}, nil
	}

	var rows []T
	if err := gocsv.UnmarshalBytes(data, &rows); err != nil {
		return nil, apperror.NewPersistenceError(fmt.Sprintf("decode table %s", table), err)
	}
	return rows, nil
}

// SaveTable replaces the table file with the given rows. The new content is
// written to a temp file in the same directory and renamed over the target,
// so from the caller's point of view either the new file is written or the
// old one remains.
func SaveTable[T any](s *Store, table string, rows []T) error {
	data, err := gocsv.MarshalBytes(&rows)
	if err != nil {
		return apperror.NewPersistenceError(fmt.Sprintf("encode table %s", table), err)
	}

	tmp, err := os.CreateTemp(s.dataDir, table+".tmp-*")
	if err != nil {
		return apperror.NewPersistenceError(fmt.Sprintf("stage table %s", table), err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return apperror.NewPersistenceError(fmt.Sprintf("write table %s", table), err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return apperror.NewPersistenceError(fmt.Sprintf("close table %s", table), err)
	}
	if err := os.Rename(tmpName, s.Path(table)); err != nil {
		os.Remove(tmpName)
		return apperror.NewPersistenceError(fmt.Sprintf("replace table %s", table), err)
	}
	return nil
}
