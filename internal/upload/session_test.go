package upload_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fbarbosa/invest-recon/internal/logging"
	"fbarbosa/invest-recon/internal/models"
	"fbarbosa/invest-recon/internal/parsererror"
	"fbarbosa/invest-recon/internal/upload"
)

// fakeUploader answers the upload endpoints with canned results.
type fakeUploader struct {
	parseCalls   int
	commitCalls  int
	parseErr     error
	commitErr    error
	parseResult  []models.UploadLineResult
	commitResult []models.UploadLineResult
}

func (f *fakeUploader) ParseUploadFile(_ context.Context, req models.UploadRequest) (*models.UploadResponse, error) {
	f.parseCalls++
	if f.parseErr != nil {
		return nil, f.parseErr
	}
	return &models.UploadResponse{Items: f.parseResult}, nil
}

func (f *fakeUploader) CommitUploadFile(_ context.Context, req models.UploadRequest) (*models.UploadResponse, error) {
	f.commitCalls++
	if f.commitErr != nil {
		return nil, f.commitErr
	}
	return &models.UploadResponse{Items: f.commitResult}, nil
}

func lineResults(n int) []models.UploadLineResult {
	items := make([]models.UploadLineResult, 0, n)
	for i := 0; i < n; i++ {
		items = append(items, models.UploadLineResult{LineNumber: i + 1, Success: true})
	}
	return items
}

func newSession(uploader *fakeUploader) *upload.Session {
	return upload.NewSession(uploader, &logging.MockLogger{}, 7)
}

func TestSessionStartsInParsePhase(t *testing.T) {
	session := newSession(&fakeUploader{})

	assert.Equal(t, upload.PhaseParse, session.Phase())
	assert.Empty(t, session.Results())
}

func TestSessionFullCycle(t *testing.T) {
	uploader := &fakeUploader{
		parseResult:  lineResults(3),
		commitResult: lineResults(3),
	}
	session := newSession(uploader)
	require.NoError(t, session.SetFile("extrato.csv", []byte("a;b;c")))

	// Parse phase previews the file.
	require.NoError(t, session.Submit(context.Background()))
	assert.Equal(t, upload.PhaseProcess, session.Phase())
	assert.Len(t, session.Results(), 3)
	assert.Equal(t, 1, uploader.parseCalls)
	assert.Equal(t, 0, uploader.commitCalls)

	// Process phase commits it.
	require.NoError(t, session.Submit(context.Background()))
	assert.Equal(t, upload.PhaseDone, session.Phase())
	assert.Equal(t, 1, uploader.commitCalls)
}

func TestSessionDoneIsTerminal(t *testing.T) {
	uploader := &fakeUploader{}
	session := newSession(uploader)
	require.NoError(t, session.SetFile("extrato.csv", []byte("x")))
	require.NoError(t, session.Submit(context.Background()))
	require.NoError(t, session.Submit(context.Background()))

	err := session.Submit(context.Background())
	assert.ErrorIs(t, err, upload.ErrDone)
	assert.Equal(t, 1, uploader.parseCalls)
	assert.Equal(t, 1, uploader.commitCalls)
}

func TestSessionSetFileResetsFromAnyPhase(t *testing.T) {
	uploader := &fakeUploader{parseResult: lineResults(2)}
	session := newSession(uploader)
	require.NoError(t, session.SetFile("um.csv", []byte("x")))
	require.NoError(t, session.Submit(context.Background()))
	require.Equal(t, upload.PhaseProcess, session.Phase())

	// Swapping the file restarts the review cycle.
	require.NoError(t, session.SetFile("dois.txt", []byte("y")))
	assert.Equal(t, upload.PhaseParse, session.Phase())
	assert.Empty(t, session.Results())
}

func TestSessionFailureLeavesPhaseUnchanged(t *testing.T) {
	uploader := &fakeUploader{parseErr: errors.New("server unavailable")}
	session := newSession(uploader)
	require.NoError(t, session.SetFile("extrato.csv", []byte("x")))

	err := session.Submit(context.Background())

	var submission *parsererror.SubmissionError
	require.ErrorAs(t, err, &submission)
	assert.Contains(t, err.Error(), "server unavailable")
	assert.Equal(t, upload.PhaseParse, session.Phase(), "failed call must not advance the phase")

	// The user can simply resubmit.
	uploader.parseErr = nil
	require.NoError(t, session.Submit(context.Background()))
	assert.Equal(t, upload.PhaseProcess, session.Phase())
}

func TestSessionCommitFailureStaysInProcess(t *testing.T) {
	uploader := &fakeUploader{commitErr: errors.New("validation failed")}
	session := newSession(uploader)
	require.NoError(t, session.SetFile("extrato.csv", []byte("x")))
	require.NoError(t, session.Submit(context.Background()))

	err := session.Submit(context.Background())

	require.Error(t, err)
	assert.Equal(t, upload.PhaseProcess, session.Phase())
}

func TestSessionSubmitWithoutFile(t *testing.T) {
	session := newSession(&fakeUploader{})

	err := session.Submit(context.Background())
	assert.ErrorIs(t, err, upload.ErrNoFile)
}

func TestSessionFileValidation(t *testing.T) {
	session := newSession(&fakeUploader{})

	tests := []struct {
		name     string
		fileName string
		data     []byte
		expected error
	}{
		{
			name:     "oversized file",
			fileName: "big.csv",
			data:     bytes.Repeat([]byte("a"), upload.MaxFileSize+1),
			expected: upload.ErrFileTooLarge,
		},
		{
			name:     "unsupported extension",
			fileName: "statement.pdf",
			data:     []byte("x"),
			expected: upload.ErrFileType,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, session.SetFile(tt.fileName, tt.data), tt.expected)
		})
	}
}

func TestPhaseString(t *testing.T) {
	assert.Equal(t, "parse", upload.PhaseParse.String())
	assert.Equal(t, "process", upload.PhaseProcess.String())
	assert.Equal(t, "done", upload.PhaseDone.String())
}
