package genai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Client talks to the external AI model gateway over JSON/HTTP.
// The gateway hosts the document-extraction and payroll-summary prompts;
// this client knows nothing about prompts or models.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

// APIError represents a gateway error response.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("ai gateway error [%d]: %s", e.StatusCode, e.Message)
}

type ExtractEmployeeRequest struct {
	PhotoDataURI string `json:"photo_data_uri"`
	Context      string `json:"context,omitempty"`
}

// ExtractedEmployee is one candidate record pulled from the document image.
type ExtractedEmployee struct {
	Name        string  `json:"name"`
	Designation string  `json:"designation"`
	Salary      float64 `json:"salary"`
	Nationality string  `json:"nationality"`
}

type extractEmployeeResponse struct {
	Employees []ExtractedEmployee `json:"employees"`
}

func (c *Client) ExtractEmployeeInfo(ctx context.Context, req ExtractEmployeeRequest) ([]ExtractedEmployee, error) {
	var resp extractEmployeeResponse
	if err := c.post(ctx, "/v1/flows/extract-employee-info", req, &resp); err != nil {
		return nil, err
	}
	return resp.Employees, nil
}

type SalarySummaryRequest struct {
	Year         int    `json:"year"`
	Month        int    `json:"month"`
	EmployeeData string `json:"employee_data"` // serialized payroll rows, one line per employee
}

type salarySummaryResponse struct {
	Summary string `json:"summary"`
}

func (c *Client) GenerateSalarySummary(ctx context.Context, req SalarySummaryRequest) (string, error) {
	var resp salarySummaryResponse
	if err := c.post(ctx, "/v1/flows/monthly-salary-summary", req, &resp); err != nil {
		return "", err
	}
	return resp.Summary, nil
}

func (c *Client) post(ctx context.Context, path string, payload interface{}, out interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("call ai gateway: %w", err)
	}
	defer httpResp.Body.Close()

	if httpResp.StatusCode != http.StatusOK {
		var gatewayErr struct {
			Message string `json:"message"`
		}
		_ = json.NewDecoder(httpResp.Body).Decode(&gatewayErr)
		return &APIError{StatusCode: httpResp.StatusCode, Message: gatewayErr.Message}
	}

	if err := json.NewDecoder(httpResp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode ai gateway response: %w", err)
	}
	return nil
}
