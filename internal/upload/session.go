// Package upload coordinates the parse-review-commit cycle for transaction
// file uploads: a preview-only remote parse, a human review step, and a
// committing remote process call.
package upload

import (
	"context"
	"errors"
	"path/filepath"
	"strings"

	"fbarbosa/invest-recon/internal/logging"
	"fbarbosa/invest-recon/internal/models"
	"fbarbosa/invest-recon/internal/parsererror"
)

// Phase is a stage of the upload cycle. Transitions are linear with no
// skips; the only way back is an explicit file change, which resets the
// session. A closed enum keeps illegal phase combinations unrepresentable.
type Phase int

const (
	// PhaseParse is the initial phase: the next submit previews the file.
	PhaseParse Phase = iota
	// PhaseProcess holds the parse results for review; the next submit
	// commits the file.
	PhaseProcess
	// PhaseDone is terminal for the session; only closing remains.
	PhaseDone
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseParse:
		return "parse"
	case PhaseProcess:
		return "process"
	case PhaseDone:
		return "done"
	default:
		return "unknown"
	}
}

// MaxFileSize bounds the uploaded file to 100 KiB.
const MaxFileSize = 100 * 1024

var (
	// ErrBusy is returned when a submit arrives while a call is in flight.
	ErrBusy = errors.New("upload session busy")
	// ErrDone is returned when submitting a completed session.
	ErrDone = errors.New("upload session already completed")
	// ErrNoFile is returned when submitting without a selected file.
	ErrNoFile = errors.New("no file selected")
	// ErrFileTooLarge rejects files over MaxFileSize.
	ErrFileTooLarge = errors.New("file exceeds the 100 KiB upload limit")
	// ErrFileType rejects anything but .csv and .txt files.
	ErrFileType = errors.New("unsupported file format, expected .csv or .txt")
)

// FileUploader is the slice of the repository the session needs.
type FileUploader interface {
	ParseUploadFile(ctx context.Context, req models.UploadRequest) (*models.UploadResponse, error)
	CommitUploadFile(ctx context.Context, req models.UploadRequest) (*models.UploadResponse, error)
}

// Session owns one upload cycle for one account. All state is mutated only
// by the user-driven call currently in flight; concurrent submits are
// rejected with ErrBusy rather than queued.
type Session struct {
	uploader  FileUploader
	logger    logging.Logger
	accountID int64

	phase   Phase
	file    *models.UploadFile
	results []models.UploadLineResult
	busy    bool
}

// NewSession creates a session in PhaseParse with an empty result list.
func NewSession(uploader FileUploader, logger logging.Logger, accountID int64) *Session {
	return &Session{
		uploader:  uploader,
		logger:    logger,
		accountID: accountID,
	}
}

// Phase returns the current phase.
func (s *Session) Phase() Phase {
	return s.phase
}

// Results returns the per-line results of the last successful call.
func (s *Session) Results() []models.UploadLineResult {
	return s.results
}

// SetFile validates and selects a file. Selecting a file from any phase
// resets the session to PhaseParse and clears prior results: the review
// cycle restarts after a file swap.
func (s *Session) SetFile(name string, data []byte) error {
	if len(data) > MaxFileSize {
		return ErrFileTooLarge
	}
	switch strings.ToLower(filepath.Ext(name)) {
	case ".csv", ".txt":
	default:
		return ErrFileType
	}

	s.file = &models.UploadFile{Name: name, Data: data}
	s.phase = PhaseParse
	s.results = nil

	s.logger.Info("Upload file selected",
		logging.Field{Key: logging.FieldFile, Value: name},
		logging.Field{Key: logging.FieldCount, Value: len(data)})
	return nil
}

// Submit advances the session: in PhaseParse it runs the preview-only
// parse call, in PhaseProcess it commits the file. On failure the phase is
// left unchanged so the user can resubmit; there is no automatic retry.
func (s *Session) Submit(ctx context.Context) error {
	if s.busy {
		return ErrBusy
	}
	if s.phase == PhaseDone {
		return ErrDone
	}
	if s.file == nil {
		return ErrNoFile
	}

	s.busy = true
	defer func() { s.busy = false }()

	req := models.UploadRequest{
		AccountID: s.accountID,
		File:      *s.file,
	}

	switch s.phase {
	case PhaseParse:
		resp, err := s.uploader.ParseUploadFile(ctx, req)
		if err != nil {
			return &parsererror.SubmissionError{Op: "parse upload", Err: err}
		}
		s.results = resp.Items
		s.phase = PhaseProcess

	case PhaseProcess:
		resp, err := s.uploader.CommitUploadFile(ctx, req)
		if err != nil {
			return &parsererror.SubmissionError{Op: "process upload", Err: err}
		}
		s.results = resp.Items
		s.phase = PhaseDone
		s.file = nil
	}

	s.logger.Info("Upload phase completed",
		logging.Field{Key: logging.FieldPhase, Value: s.phase.String()},
		logging.Field{Key: logging.FieldCount, Value: len(s.results)})
	return nil
}
