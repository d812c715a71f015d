package service

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/kiptoo/carebill/internal/domain/entity"
	"github.com/kiptoo/carebill/pkg/apperror"
	"github.com/kiptoo/carebill/pkg/invoice"
	"go.uber.org/zap"
)

// InvoiceService renders durable invoice artifacts for paid bills and keeps
// the artifact registry. An artifact is rendered exactly once per bill, at
// the transition into Paid; export copies the already-rendered bytes and
// never re-renders.
type InvoiceService struct {
	renderer    invoice.Renderer
	artifactDir string
	header      invoice.Header
	currency    string
	artifacts   map[string]entity.Artifact
	logger      *zap.Logger
}

// NewInvoiceService creates an invoice service writing artifacts under
// artifactDir with the renderer selected at startup.
func NewInvoiceService(
	renderer invoice.Renderer,
	artifactDir string,
	header invoice.Header,
	currency string,
	logger *zap.Logger,
) (*InvoiceService, error) {
	if err := os.MkdirAll(artifactDir, 0o755); err != nil {
		return nil, apperror.NewPersistenceError(
			fmt.Sprintf("create artifact directory %s", artifactDir), err)
	}
	return &InvoiceService{
		renderer:    renderer,
		artifactDir: artifactDir,
		header:      header,
		currency:    currency,
		artifacts:   make(map[string]entity.Artifact),
		logger:      logger,
	}, nil
}

// Render produces the artifact for a bill that has just become Paid.
// A second render for the same bill id is rejected.
func (s *InvoiceService) Render(bill entity.Bill) (*entity.Artifact, error) {
	if _, exists := s.artifacts[bill.ID]; exists {
		return nil, apperror.NewConflictError(
			fmt.Sprintf("invoice for bill %s already rendered", bill.ID))
	}

	inv := invoice.Invoice{
		Header:    s.header,
		BillID:    bill.ID,
		PatientID: bill.PatientID,
		Amount:    bill.Amount,
		Currency:  s.currency,
		Date:      bill.Date,
		Mode:      bill.Mode.String(),
		Paid:      bill.Paid(),
	}
	data, err := s.renderer.Render(inv)
	if err != nil {
		return nil, err
	}

	path := filepath.Join(s.artifactDir, "bill_"+bill.ID+s.renderer.Ext())
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return nil, apperror.NewPersistenceError(
			fmt.Sprintf("write invoice artifact for bill %s", bill.ID), err)
	}

	artifact := entity.Artifact{
		ID:         uuid.New(),
		BillID:     bill.ID,
		Path:       path,
		Format:     s.renderer.Ext(),
		RenderedAt: time.Now(),
	}
	s.artifacts[bill.ID] = artifact
	s.logger.Info("invoice rendered",
		zap.String("bill_id", bill.ID),
		zap.String("path", path),
	)
	return &artifact, nil
}

// Forget drops the registry entry for a bill whose creation was undone.
// The identifier may be reallocated to a later bill, which must be able to
// render its own invoice; the undone bill's file is left behind on disk.
func (s *InvoiceService) Forget(billID string) {
	if _, exists := s.artifacts[billID]; !exists {
		return
	}
	delete(s.artifacts, billID)
	s.logger.Info("invoice artifact forgotten", zap.String("bill_id", billID))
}

// Artifact returns the registered artifact for a bill, or a not-found
// error when none was rendered.
func (s *InvoiceService) Artifact(billID string) (*entity.Artifact, error) {
	artifact, exists := s.artifacts[billID]
	if !exists {
		return nil, apperror.NewNotFoundError("Invoice artifact")
	}
	return &artifact, nil
}

// Export copies the already-rendered artifact to a caller-chosen path. It
// does not re-render; a bill without an artifact surfaces as not found.
func (s *InvoiceService) Export(billID, destPath string) error {
	artifact, err := s.Artifact(billID)
	if err != nil {
		return err
	}
	data, err := os.ReadFile(artifact.Path)
	if err != nil {
		return apperror.NewPersistenceError(
			fmt.Sprintf("read invoice artifact for bill %s", billID), err)
	}
	if err := os.WriteFile(destPath, data, 0o644); err != nil {
		return apperror.NewPersistenceError(
			fmt.Sprintf("export invoice artifact for bill %s", billID), err)
	}
	s.logger.Info("invoice exported",
		zap.String("bill_id", billID),
		zap.String("dest", destPath),
	)
	return nil
}
