package service

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/kiptoo/carebill/pkg/apperror"
	"go.uber.org/zap"
)

// BackupService packages the data and artifact directories into a single
// portable zip archive.
type BackupService struct {
	dataDir     string
	artifactDir string
	logger      *zap.Logger
}

// NewBackupService creates a new backup service
func NewBackupService(dataDir, artifactDir string, logger *zap.Logger) *BackupService {
	return &BackupService{dataDir: dataDir, artifactDir: artifactDir, logger: logger}
}

// ExportPackage writes a zip archive to destPath containing the table files
// under data/ and the rendered invoices under artifacts/. Missing source
// directories are skipped, not errors. A failed export removes the partial
// archive so destPath is never left holding a corrupt package.
func (s *BackupService) ExportPackage(destPath string) error {
	out, err := os.Create(destPath)
	if err != nil {
		return apperror.NewPersistenceError(
			fmt.Sprintf("create backup archive %s", destPath), err)
	}

	zw := zip.NewWriter(out)
	err = s.addDir(zw, s.dataDir, "data")
	if err == nil {
		err = s.addDir(zw, s.artifactDir, "artifacts")
	}
	if cerr := zw.Close(); err == nil && cerr != nil {
		err = apperror.NewPersistenceError(
			fmt.Sprintf("finalize backup archive %s", destPath), cerr)
	}
	if cerr := out.Close(); err == nil && cerr != nil {
		err = apperror.NewPersistenceError(
			fmt.Sprintf("close backup archive %s", destPath), cerr)
	}
	if err != nil {
		os.Remove(destPath)
		return err
	}
	s.logger.Info("backup package written", zap.String("dest", destPath))
	return nil
}

func (s *BackupService) addDir(zw *zip.Writer, srcDir, prefix string) error {
	entries, err := os.ReadDir(srcDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return apperror.NewPersistenceError(
			fmt.Sprintf("read backup source %s", srcDir), err)
	}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if err := s.addFile(zw, filepath.Join(srcDir, entry.Name()), prefix+"/"+entry.Name()); err != nil {
			return err
		}
	}
	return nil
}

func (s *BackupService) addFile(zw *zip.Writer, srcPath, archivePath string) error {
	src, err := os.Open(srcPath)
	if err != nil {
		return apperror.NewPersistenceError(
			fmt.Sprintf("open backup source %s", srcPath), err)
	}
	defer src.Close()

	dst, err := zw.Create(archivePath)
	if err != nil {
		return apperror.NewPersistenceError(
			fmt.Sprintf("add %s to backup archive", archivePath), err)
	}
	if _, err := io.Copy(dst, src); err != nil {
		return apperror.NewPersistenceError(
			fmt.Sprintf("copy %s into backup archive", archivePath), err)
	}
	return nil
}
