// File: internal/convert/strategies.go
package convert

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"go.uber.org/zap"

	"github.com/hollisng/reportforge/api/schemas"
	"github.com/hollisng/reportforge/internal/pipeline"
	"github.com/hollisng/reportforge/internal/storage"
)

const (
	// blobEndpoint returns the converted document directly in the response
	// body.
	blobEndpoint = "/api/excel-to-html"
	// redirectEndpoint answers with a redirect to the generated artifact.
	redirectEndpoint = "/upload"
	// generatedPathSegment marks a successful redirect target.
	generatedPathSegment = "/generated/"

	// fileField is the multipart form field carrying the spreadsheet.
	fileField = "file"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// BlobStrategy posts the spreadsheet to {baseURL}/api/excel-to-html and
// saves the HTML document returned in the response body. This is the
// primary contract.
type BlobStrategy struct {
	HTTPClient *http.Client
	BaseURL    string
	Saver      storage.Saver
	Logger     *zap.Logger
}

func (s *BlobStrategy) Name() string { return "blob" }

func (s *BlobStrategy) AllowedExtensions() []string { return []string{".xlsx"} }

func (s *BlobStrategy) Convert(ctx context.Context, filename string, data []byte) (*Result, error) {
	resp, err := postMultipart(ctx, s.HTTPClient, s.BaseURL+blobEndpoint, filename, data)
	if err != nil {
		return nil, &pipeline.NetworkError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, serverError(resp)
	}

	return saveBody(resp, filename, s.Saver)
}

// RedirectStrategy posts the spreadsheet to the fixed conversion host's
// /upload endpoint. Success is signaled by the response's resolved URL
// containing a /generated/ path segment; the strategy follows the redirect
// (its HTTP client must be configured to do so) and saves the body it lands
// on. This is a documented alternative endpoint contract, not a fallback of
// the blob strategy.
type RedirectStrategy struct {
	HTTPClient *http.Client
	DailyURL   string
	Saver      storage.Saver
	Logger     *zap.Logger
}

func (s *RedirectStrategy) Name() string { return "redirect" }

func (s *RedirectStrategy) AllowedExtensions() []string { return []string{".xls", ".xlsx"} }

func (s *RedirectStrategy) Convert(ctx context.Context, filename string, data []byte) (*Result, error) {
	resp, err := postMultipart(ctx, s.HTTPClient, s.DailyURL+redirectEndpoint, filename, data)
	if err != nil {
		return nil, &pipeline.NetworkError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, serverError(resp)
	}

	// The service redirects failed conversions back to its upload page, so
	// a 2xx terminal response alone proves nothing. Only a resolved URL
	// under /generated/ carries the artifact.
	resolved := resp.Request.URL
	if !strings.Contains(resolved.Path, generatedPathSegment) {
		return nil, &pipeline.ServerError{
			StatusCode: resp.StatusCode,
			Message:    "conversion service did not produce a generated document",
		}
	}

	return saveBody(resp, resolved.Path, s.Saver)
}

// postMultipart uploads data as a multipart body under the file field.
func postMultipart(ctx context.Context, client *http.Client, url, filename string, data []byte) (*http.Response, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile(fileField, filename)
	if err != nil {
		return nil, err
	}
	if _, err := part.Write(data); err != nil {
		return nil, err
	}
	if err := writer.Close(); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, &buf)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	return client.Do(req)
}

// saveBody reads the document from the response and hands it to the saver,
// resolving the name from the Content-Disposition header when present.
func saveBody(resp *http.Response, sourceName string, saver storage.Saver) (*Result, error) {
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &pipeline.NetworkError{Err: err}
	}

	name, ok := pipeline.FilenameFromHeader(resp.Header.Get("Content-Disposition"))
	if !ok {
		name = htmlName(sourceName)
	}

	path, err := saver.Save(name, data)
	if err != nil {
		return nil, err
	}
	return &Result{Filename: name, Path: path, Size: len(data)}, nil
}

// serverError decodes a structured error body when the service sent one.
func serverError(resp *http.Response) error {
	serverErr := &pipeline.ServerError{StatusCode: resp.StatusCode}
	body, err := io.ReadAll(resp.Body)
	if err == nil && len(body) > 0 {
		var eb schemas.ErrorBody
		if jsonErr := json.Unmarshal(body, &eb); jsonErr == nil && eb.Error != "" {
			serverErr.Message = eb.Error
		}
	}
	return serverErr
}
