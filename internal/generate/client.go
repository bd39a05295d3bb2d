// File: internal/generate/client.go

// Package generate submits assembled reports to the remote rendering
// service and saves the returned document through a storage capability.
package generate

import (
	"bytes"
	"context"
	"io"
	"net/http"

	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"
	"go.uber.org/zap"

	"github.com/hollisng/reportforge/api/schemas"
	"github.com/hollisng/reportforge/internal/pipeline"
	"github.com/hollisng/reportforge/internal/storage"
)

// generateEndpoint is the rendering service's report path, relative to the
// configured base URL.
const generateEndpoint = "/api/generate-report"

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Result describes a completed report generation: the filename resolved
// from the response, where the saver placed the document, and its size.
type Result struct {
	Filename string
	Path     string
	Size     int
}

// Client submits generation payloads and processes the rendering service's
// responses. One Client is one pipeline instance: its guard admits at most
// one outstanding submission at a time.
type Client struct {
	httpClient *http.Client
	baseURL    string
	saver      storage.Saver
	logger     *zap.Logger
	guard      pipeline.Guard
}

// NewClient creates a submission client for the rendering service at
// baseURL. The base URL is injected once at startup; nothing here reads
// service location ambiently.
func NewClient(baseURL string, httpClient *http.Client, saver storage.Saver, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
		saver:      saver,
		logger:     logger.Named("generate"),
	}
}

// State exposes the pipeline's current lifecycle position.
func (c *Client) State() pipeline.State {
	return c.guard.Current()
}

// Submit sends the payload to the rendering service and, on success, saves
// the returned document under the resolved filename.
//
// Outcome classification:
//   - 2xx: the body is the document; save it and return a Result.
//   - non-2xx with a decodable {"error": ...} body: *ServerError carrying
//     that message.
//   - non-2xx otherwise: generic *ServerError.
//   - transport failure: *NetworkError.
//
// A second Submit while one is outstanding fails with
// ErrSubmissionInFlight; it is rejected, not queued. The in-flight guard is
// released on every terminal path.
func (c *Client) Submit(ctx context.Context, payload schemas.GenerationPayload) (*Result, error) {
	if !c.guard.Enter(pipeline.StateSubmitting) {
		return nil, pipeline.ErrSubmissionInFlight
	}
	defer c.guard.Release()

	submissionID := uuid.NewString()
	logger := c.logger.With(zap.String("submission_id", submissionID))

	body, err := json.Marshal(payload)
	if err != nil {
		// Payload structs marshal unconditionally; treat this as a bug.
		logger.Error("Failed to encode generation payload.", zap.Error(err))
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+generateEndpoint, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", submissionID)

	logger.Info("Submitting report for generation.",
		zap.String("system", payload.SystemName),
		zap.Int("findings", len(payload.Vulnerabilities)))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.Warn("Report submission failed at transport level.", zap.Error(err))
		return nil, &pipeline.NetworkError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, classifyFailure(resp, logger)
	}

	result, err := c.processResponse(resp, payload.SystemName)
	if err != nil {
		return nil, err
	}
	logger.Info("Report document saved.",
		zap.String("filename", result.Filename),
		zap.String("path", result.Path),
		zap.Int("bytes", result.Size))
	return result, nil
}

// processResponse extracts the binary document and a display filename from
// a 2xx response and hands both to the saver. The body bytes live only for
// the duration of this call; this component never writes storage itself.
func (c *Client) processResponse(resp *http.Response, systemName string) (*Result, error) {
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &pipeline.NetworkError{Err: err}
	}

	name, ok := pipeline.FilenameFromHeader(resp.Header.Get("Content-Disposition"))
	if !ok {
		name = pipeline.DefaultFilename(systemName)
	}

	path, err := c.saver.Save(name, data)
	if err != nil {
		return nil, err
	}
	return &Result{Filename: name, Path: path, Size: len(data)}, nil
}

// classifyFailure turns a non-2xx response into a ServerError, preserving
// the service's structured message when the body decodes.
func classifyFailure(resp *http.Response, logger *zap.Logger) error {
	serverErr := &pipeline.ServerError{StatusCode: resp.StatusCode}

	body, err := io.ReadAll(resp.Body)
	if err == nil && len(body) > 0 {
		var eb schemas.ErrorBody
		if jsonErr := json.Unmarshal(body, &eb); jsonErr == nil && eb.Error != "" {
			serverErr.Message = eb.Error
		}
	}

	logger.Warn("Service rejected submission.",
		zap.Int("status", resp.StatusCode),
		zap.String("message", serverErr.Message))
	return serverErr
}
