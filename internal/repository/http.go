package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"fbarbosa/invest-recon/internal/dateutils"
	"fbarbosa/invest-recon/internal/logging"
	"fbarbosa/invest-recon/internal/models"
)

// HTTPRepository implements Repository against the bank-account HTTP API.
type HTTPRepository struct {
	baseURL string
	client  *http.Client
	logger  logging.Logger
}

// NewHTTPRepository creates a repository client for the given base URL.
// A zero timeout disables the client-side deadline.
func NewHTTPRepository(baseURL string, timeout time.Duration, logger logging.Logger) *HTTPRepository {
	return &HTTPRepository{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
		logger:  logger,
	}
}

// ListAccounts returns all known accounts.
func (r *HTTPRepository) ListAccounts(ctx context.Context) ([]models.Account, error) {
	var accounts []models.Account
	if err := r.getJSON(ctx, "/api/account", nil, &accounts); err != nil {
		return nil, err
	}
	return accounts, nil
}

// ListTransactions returns an account's transactions from the start date onward.
func (r *HTTPRepository) ListTransactions(ctx context.Context, accountID int64, since time.Time) ([]models.Transaction, error) {
	params := url.Values{
		"accountId":            {strconv.FormatInt(accountID, 10)},
		"startTransactionDate": {dateutils.ToISODate(since)},
	}

	var transactions []models.Transaction
	if err := r.getJSON(ctx, "/api/transaction", params, &transactions); err != nil {
		return nil, err
	}
	return transactions, nil
}

// CreateOrUpdateTransaction submits one candidate payload. The API accepts
// a batch array; this client always sends a single-element batch and
// returns the first created transaction, or nil when the repository
// rejected the payload.
func (r *HTTPRepository) CreateOrUpdateTransaction(ctx context.Context, req models.CreateTransactionRequest) (*models.Transaction, error) {
	body, err := json.Marshal([]models.CreateTransactionRequest{req})
	if err != nil {
		return nil, fmt.Errorf("encoding transaction payload: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, r.baseURL+"/transaction", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	var created []models.Transaction
	if err := r.do(httpReq, &created); err != nil {
		return nil, err
	}
	if len(created) == 0 {
		return nil, nil
	}
	return &created[0], nil
}

// ParseUploadFile runs the preview-only parse of an uploaded file.
func (r *HTTPRepository) ParseUploadFile(ctx context.Context, req models.UploadRequest) (*models.UploadResponse, error) {
	return r.uploadFile(ctx, "/api/transaction/parse-file", req)
}

// CommitUploadFile parses and persists an uploaded file.
func (r *HTTPRepository) CommitUploadFile(ctx context.Context, req models.UploadRequest) (*models.UploadResponse, error) {
	return r.uploadFile(ctx, "/api/transaction/upload-file", req)
}

// uploadFile posts the file and account id as a fresh multipart form and
// wraps the per-line results. Both upload endpoints share this shape.
func (r *HTTPRepository) uploadFile(ctx context.Context, endpoint string, req models.UploadRequest) (*models.UploadResponse, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile("fileUpload", req.File.Name)
	if err != nil {
		return nil, fmt.Errorf("building upload form: %w", err)
	}
	if _, err := part.Write(req.File.Data); err != nil {
		return nil, fmt.Errorf("building upload form: %w", err)
	}
	if err := writer.WriteField("accountId", strconv.FormatInt(req.AccountID, 10)); err != nil {
		return nil, fmt.Errorf("building upload form: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("building upload form: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, r.baseURL+endpoint, &buf)
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", writer.FormDataContentType())

	r.logger.Info("Uploading transaction file",
		logging.Field{Key: logging.FieldEndpoint, Value: endpoint},
		logging.Field{Key: logging.FieldFile, Value: req.File.Name},
		logging.Field{Key: logging.FieldAccountID, Value: req.AccountID})

	var items []models.UploadLineResult
	if err := r.do(httpReq, &items); err != nil {
		return nil, err
	}
	return &models.UploadResponse{Items: items}, nil
}

// getJSON issues a GET against the API and decodes the JSON response.
func (r *HTTPRepository) getJSON(ctx context.Context, endpoint string, params url.Values, out interface{}) error {
	target := r.baseURL + endpoint
	if len(params) > 0 {
		target += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return err
	}
	return r.do(req, out)
}

// do executes the request and decodes a 2xx JSON body into out. Non-2xx
// responses become errors carrying the status and a body snippet so the
// underlying cause reaches the user.
func (r *HTTPRepository) do(req *http.Request, out interface{}) error {
	resp, err := r.client.Do(req)
	if err != nil {
		return fmt.Errorf("calling %s: %w", req.URL.Path, err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			r.logger.WithError(err).Warn("Failed to close response body",
				logging.Field{Key: logging.FieldEndpoint, Value: req.URL.Path})
		}
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("%s returned %s: %s", req.URL.Path, resp.Status, strings.TrimSpace(string(snippet)))
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding %s response: %w", req.URL.Path, err)
	}
	return nil
}
