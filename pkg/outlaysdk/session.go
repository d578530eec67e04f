package outlaysdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// Session is an authenticated view of the API, carrying the bearer token
// obtained at login. Tokens are stateless and short-lived; when one expires
// the session is done and the caller logs in again.
type Session struct {
	client      *Client
	accessToken string
}

func newSession(c *Client, token *TokenResponse) *Session {
	return &Session{client: c, accessToken: token.AccessToken}
}

// AccessToken returns the raw bearer token, e.g. for persisting across
// process restarts.
func (s *Session) AccessToken() string { return s.accessToken }

// CreateExpense records a new expense for the authenticated user.
func (s *Session) CreateExpense(ctx context.Context, req ExpenseRequest) (*ExpenseResponse, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, err
	}

	resp, err := s.doAuthRequest(ctx, http.MethodPost, "/v1/expenses", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}

	var expense ExpenseResponse
	if err := decodeJSON(resp, &expense, http.StatusOK); err != nil {
		return nil, err
	}

	return &expense, nil
}

// ListExpenses returns the authenticated user's expenses matching opts.
func (s *Session) ListExpenses(ctx context.Context, opts ListExpensesOptions) ([]ExpenseResponse, error) {
	q := url.Values{}
	if opts.FilterType != "" {
		q.Set("filter_type", opts.FilterType)
	}
	if opts.StartDate != nil {
		q.Set("start_date", opts.StartDate.Format(time.RFC3339))
	}
	if opts.EndDate != nil {
		q.Set("end_date", opts.EndDate.Format(time.RFC3339))
	}
	for _, c := range opts.Categories {
		q.Add("categories", c)
	}

	path := "/v1/expenses"
	if encoded := q.Encode(); encoded != "" {
		path += "?" + encoded
	}

	resp, err := s.doAuthRequest(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}

	var expenses []ExpenseResponse
	if err := decodeJSON(resp, &expenses, http.StatusOK); err != nil {
		return nil, err
	}

	return expenses, nil
}

// UpdateExpense overwrites the expense with the given id.
func (s *Session) UpdateExpense(ctx context.Context, id string, req ExpenseRequest) (*ExpenseResponse, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, err
	}

	resp, err := s.doAuthRequest(ctx, http.MethodPut, "/v1/expenses/"+url.PathEscape(id), bytes.NewReader(body))
	if err != nil {
		return nil, err
	}

	var expense ExpenseResponse
	if err := decodeJSON(resp, &expense, http.StatusOK); err != nil {
		return nil, err
	}

	return &expense, nil
}

// DeleteExpense removes the expense with the given id and returns the
// record as it was just before deletion.
func (s *Session) DeleteExpense(ctx context.Context, id string) (*ExpenseResponse, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodDelete, "/v1/expenses/"+url.PathEscape(id), nil)
	if err != nil {
		return nil, err
	}

	var expense ExpenseResponse
	if err := decodeJSON(resp, &expense, http.StatusOK); err != nil {
		return nil, err
	}

	return &expense, nil
}

// doAuthRequest performs an HTTP request with the session's bearer token.
func (s *Session) doAuthRequest(
	ctx context.Context,
	method, path string,
	body io.Reader,
) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, s.client.url(path), body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+s.accessToken)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := s.client.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}

	return resp, nil
}

// decodeJSON decodes a JSON response into target, converting non-expected
// statuses into a typed *APIError.
func decodeJSON(resp *http.Response, target any, expectedStatus int) error {
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != expectedStatus {
		return parseErrorResponse(resp, bodyBytes)
	}

	if err := json.Unmarshal(bodyBytes, target); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}
