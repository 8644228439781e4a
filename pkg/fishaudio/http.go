package fishaudio

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"strings"
	"sync/atomic"
	"time"

	"github.com/vmihailenco/msgpack/v5"
)

// httpClient handles HTTP communication with the Fish Audio API.
type httpClient struct {
	client    *http.Client
	baseURL   string
	apiKey    string
	userAgent string
	logger    *slog.Logger
	closed    atomic.Bool
}

// newHTTPClient creates a new HTTP client.
func newHTTPClient(cfg *clientConfig) *httpClient {
	return &httpClient{
		client:    cfg.httpClient,
		baseURL:   strings.TrimRight(cfg.baseURL, "/"),
		apiKey:    cfg.apiKey,
		userAgent: cfg.userAgent,
		logger:    cfg.logger,
	}
}

// formField is a single multipart text field. Names may repeat.
type formField struct {
	name  string
	value string
}

// formFile is a single multipart file part.
type formFile struct {
	field    string
	filename string
	data     []byte
}

// request makes a JSON request to the API. body and result may be nil.
func (h *httpClient) request(ctx context.Context, method, path string, body any, result any) error {
	var bodyReader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(data)
	}

	req, err := h.newRequest(ctx, method, path, bodyReader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := h.do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	return h.handleResponse(resp, result)
}

// requestMsgpack posts a msgpack-encoded body and returns the raw response
// body.
func (h *httpClient) requestMsgpack(ctx context.Context, path string, body any) ([]byte, error) {
	data, err := msgpack.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshal msgpack body: %w", err)
	}

	req, err := h.newRequest(ctx, http.MethodPost, path, bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/msgpack")

	resp, err := h.do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, h.handleErrorResponse(resp)
	}

	out, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}
	return out, nil
}

// uploadMultipart posts a multipart form.
// The form is written through a pipe so the request starts before encoding
// finishes.
func (h *httpClient) uploadMultipart(ctx context.Context, path string, fields []formField, files []formFile, result any) error {
	pr, pw := io.Pipe()
	writer := multipart.NewWriter(pw)

	errCh := make(chan error, 1)
	go func() {
		defer pw.Close()

		for _, f := range fields {
			if err := writer.WriteField(f.name, f.value); err != nil {
				errCh <- fmt.Errorf("write field %s: %w", f.name, err)
				return
			}
		}

		for _, f := range files {
			part, err := writer.CreateFormFile(f.field, f.filename)
			if err != nil {
				errCh <- fmt.Errorf("create form file: %w", err)
				return
			}
			if _, err := part.Write(f.data); err != nil {
				errCh <- fmt.Errorf("copy file: %w", err)
				return
			}
		}

		if err := writer.Close(); err != nil {
			errCh <- fmt.Errorf("close writer: %w", err)
			return
		}

		errCh <- nil
	}()

	req, err := h.newRequest(ctx, http.MethodPost, path, pr)
	if err != nil {
		pr.Close()
		<-errCh
		return err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := h.do(req)
	if err != nil {
		pr.CloseWithError(err)
		<-errCh
		return err
	}
	defer resp.Body.Close()

	// The server may answer before consuming the whole form; unblock the
	// writer and prefer the API error over the resulting pipe error.
	pr.Close()
	writeErr := <-errCh

	if err := h.handleResponse(resp, result); err != nil {
		return err
	}
	return writeErr
}

func (h *httpClient) newRequest(ctx context.Context, method, path string, body io.Reader) (*http.Request, error) {
	if h.closed.Load() {
		return nil, ErrClosed
	}

	req, err := http.NewRequestWithContext(ctx, method, h.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	h.setHeaders(req)
	return req, nil
}

func (h *httpClient) do(req *http.Request) (*http.Response, error) {
	start := time.Now()
	resp, err := h.client.Do(req)
	if err != nil {
		h.logger.Debug("fishaudio request failed", "method", req.Method, "path", req.URL.Path, "error", err)
		return nil, fmt.Errorf("do request: %w", err)
	}
	h.logger.Debug("fishaudio request",
		"method", req.Method,
		"path", req.URL.Path,
		"status", resp.StatusCode,
		"elapsed", time.Since(start),
	)
	return resp, nil
}

// setHeaders sets common headers for API requests.
func (h *httpClient) setHeaders(req *http.Request) {
	req.Header.Set("Authorization", "Bearer "+h.apiKey)
	req.Header.Set("User-Agent", h.userAgent)
}

// handleResponse handles the API response.
func (h *httpClient) handleResponse(resp *http.Response, result any) error {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return parseError(body, resp.StatusCode)
	}

	if result != nil && len(body) > 0 {
		if err := json.Unmarshal(body, result); err != nil {
			return fmt.Errorf("unmarshal response: %w", err)
		}
	}

	return nil
}

// handleErrorResponse handles an error response.
func (h *httpClient) handleErrorResponse(resp *http.Response) error {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read error response: %w", err)
	}
	return parseError(body, resp.StatusCode)
}

func (h *httpClient) close() {
	h.closed.Store(true)
	h.client.CloseIdleConnections()
}

// parseError parses an error response body.
//
// The API answers with {"status": ..., "message": ...}; validation failures
// come back as {"detail": ...} instead.
func parseError(body []byte, httpStatus int) error {
	var apiResp struct {
		Status  int             `json:"status"`
		Message string          `json:"message"`
		Detail  json.RawMessage `json:"detail"`
	}
	if err := json.Unmarshal(body, &apiResp); err == nil {
		msg := apiResp.Message
		if msg == "" && len(apiResp.Detail) > 0 {
			var s string
			if json.Unmarshal(apiResp.Detail, &s) == nil {
				msg = s
			} else {
				msg = string(apiResp.Detail)
			}
		}
		if msg != "" {
			status := apiResp.Status
			if status == 0 {
				status = httpStatus
			}
			return &Error{
				Status:     status,
				Message:    msg,
				HTTPStatus: httpStatus,
			}
		}
	}

	msg := strings.TrimSpace(string(body))
	if msg == "" {
		msg = http.StatusText(httpStatus)
	}
	return &Error{
		Status:     httpStatus,
		Message:    msg,
		HTTPStatus: httpStatus,
	}
}
