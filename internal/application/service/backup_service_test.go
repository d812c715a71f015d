package service

import (
	"archive/zip"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestExportPackageBundlesDataAndArtifacts(t *testing.T) {
	dataDir := t.TempDir()
	artifactDir := t.TempDir()
	require.NoError(t, os.WriteFile(
		filepath.Join(dataDir, "bills.csv"), []byte("id\n1\n"), 0o644))
	require.NoError(t, os.WriteFile(
		filepath.Join(artifactDir, "bill_1.pdf"), []byte("%PDF-1.4"), 0o644))

	svc := NewBackupService(dataDir, artifactDir, zap.NewNop())
	dest := filepath.Join(t.TempDir(), "backup.zip")
	require.NoError(t, svc.ExportPackage(dest))

	zr, err := zip.OpenReader(dest)
	require.NoError(t, err)
	defer zr.Close()

	var names []string
	for _, f := range zr.File {
		names = append(names, f.Name)
	}
	sort.Strings(names)
	assert.Equal(t, []string{"artifacts/bill_1.pdf", "data/bills.csv"}, names)
}

func TestExportPackageRemovesArchiveOnFailure(t *testing.T) {
	dataDir := t.TempDir()
	require.NoError(t, os.WriteFile(
		filepath.Join(dataDir, "bills.csv"), []byte("id\n1\n"), 0o644))
	// A regular file where a directory is expected fails the read, after
	// the archive has already been created.
	notADir := filepath.Join(t.TempDir(), "artifacts")
	require.NoError(t, os.WriteFile(notADir, []byte("x"), 0o644))

	svc := NewBackupService(dataDir, notADir, zap.NewNop())
	dest := filepath.Join(t.TempDir(), "backup.zip")

	err := svc.ExportPackage(dest)

	require.Error(t, err)
	assert.NoFileExists(t, dest)
}

func TestExportPackageSkipsMissingDirectories(t *testing.T) {
	svc := NewBackupService(
		filepath.Join(t.TempDir(), "no-data"),
		filepath.Join(t.TempDir(), "no-artifacts"),
		zap.NewNop(),
	)
	dest := filepath.Join(t.TempDir(), "backup.zip")

	require.NoError(t, svc.ExportPackage(dest))

	zr, err := zip.OpenReader(dest)
	require.NoError(t, err)
	defer zr.Close()
	assert.Empty(t, zr.File)
}
