package bankapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go-bank-console/logger"
	"go-bank-console/model"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// The backend declares amounts as JSON numbers.
func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// maxErrorBody bounds how much of an error response is kept as its message.
const maxErrorBody = 4096

// Client talks to the banking backend REST API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a client for baseURL (e.g. http://localhost:8080/api).
// A zero timeout leaves requests bounded only by their context.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// ListCustomers returns every customer known to the backend.
func (c *Client) ListCustomers(ctx context.Context) ([]model.Customer, error) {
	var customers []model.Customer
	if err := c.do(ctx, http.MethodGet, "/customers", nil, &customers); err != nil {
		return nil, err
	}
	return customers, nil
}

// GetCustomer returns the customer with id. A 404 from the backend is
// reported as *CustomerNotFoundError.
func (c *Client) GetCustomer(ctx context.Context, id int64) (*model.Customer, error) {
	var customer model.Customer
	path := "/customers/" + strconv.FormatInt(id, 10)
	if err := c.do(ctx, http.MethodGet, path, nil, &customer); err != nil {
		if statusOf(err) == http.StatusNotFound {
			return nil, &CustomerNotFoundError{ID: id}
		}
		return nil, err
	}
	return &customer, nil
}

// CreateCustomer registers a new customer and returns it with its id.
func (c *Client) CreateCustomer(ctx context.Context, data model.NewCustomer) (*model.Customer, error) {
	var customer model.Customer
	if err := c.do(ctx, http.MethodPost, "/customers", data, &customer); err != nil {
		return nil, err
	}
	return &customer, nil
}

// Transfer asks the backend to move money between two accounts. Validation
// (sufficient funds, existing and distinct accounts) is the backend's; a
// rejected transfer comes back as a 400 *APIError carrying the reason.
func (c *Client) Transfer(ctx context.Context, req model.TransferRequest) (*model.Transaction, error) {
	var tx model.Transaction
	if err := c.do(ctx, http.MethodPost, "/transactions", req, &tx); err != nil {
		return nil, err
	}
	return &tx, nil
}

// GetHistory returns the transactions in which accountNumber took part.
func (c *Client) GetHistory(ctx context.Context, accountNumber string) ([]model.Transaction, error) {
	var txs []model.Transaction
	path := "/transactions/" + url.PathEscape(accountNumber)
	if err := c.do(ctx, http.MethodGet, path, nil, &txs); err != nil {
		return nil, err
	}
	return txs, nil
}

func (c *Client) do(ctx context.Context, method, path string, in, out interface{}) error {
	log := logger.Log.WithFields(logrus.Fields{
		"method": method,
		"path":   path,
	})

	var body io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode %s %s request: %w", method, path, err)
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("build %s %s request: %w", method, path, err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.WithError(err).Warn("Backend request failed")
		return fmt.Errorf("%w: %s %s: %w", ErrUnavailable, method, path, err)
	}
	defer resp.Body.Close()

	log = log.WithFields(logrus.Fields{
		"status":   resp.StatusCode,
		"duration": time.Since(start),
	})

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		apiErr := &APIError{
			Method:     method,
			Path:       path,
			StatusCode: resp.StatusCode,
			Body:       errorMessage(raw),
		}
		log.WithField("body", apiErr.Body).Warn("Backend returned an error response")
		return apiErr
	}

	log.Debug("Backend request completed")

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		log.WithError(err).Error("Failed to decode backend response")
		return fmt.Errorf("decode %s %s response: %w", method, path, err)
	}
	return nil
}

// errorMessage extracts the human-readable part of an error payload. Plain
// text bodies are kept as-is; JSON error documents contribute their
// "message" field when it is set.
func errorMessage(raw []byte) string {
	text := strings.TrimSpace(string(raw))
	if !strings.HasPrefix(text, "{") {
		return text
	}
	var doc struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal([]byte(text), &doc); err == nil && doc.Message != "" {
		return doc.Message
	}
	return text
}
