package strava

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// DefaultBaseURL is the root of the Strava v3 REST API.
const DefaultBaseURL = "https://www.strava.com/api/v3"

// Dispatcher executes Requests and decodes their responses.
type Dispatcher struct {
	baseURL    string
	httpClient *http.Client
	userAgent  string
	logger     zerolog.Logger
}

// NewDispatcher creates a dispatcher rooted at baseURL.
func NewDispatcher(baseURL string, httpClient *http.Client, logger zerolog.Logger) *Dispatcher {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Dispatcher{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
		userAgent:  "stravactl",
		logger:     logger,
	}
}

// Object dispatches req and decodes a single JSON object.
func Object[T any](ctx context.Context, d *Dispatcher, req *Request) Result[*T] {
	body, err := d.do(ctx, req)
	if err != nil {
		return Failure[*T](err)
	}
	v := new(T)
	if err := json.Unmarshal(body, v); err != nil {
		return Failure[*T](decodeError(req, body, err))
	}
	return Success(v)
}

// Array dispatches req and decodes a JSON array.
func Array[T any](ctx context.Context, d *Dispatcher, req *Request) Result[[]T] {
	body, err := d.do(ctx, req)
	if err != nil {
		return Failure[[]T](err)
	}
	var v []T
	if err := json.Unmarshal(body, &v); err != nil {
		return Failure[[]T](decodeError(req, body, err))
	}
	if v == nil {
		v = []T{}
	}
	return Success(v)
}

// Confirm dispatches req and reports only whether it succeeded; the body is discarded.
func (d *Dispatcher) Confirm(ctx context.Context, req *Request) Result[struct{}] {
	if _, err := d.do(ctx, req); err != nil {
		return Failure[struct{}](err)
	}
	return Success(struct{}{})
}

func decodeError(req *Request, body []byte, err error) *Error {
	return &Error{
		Kind:    KindDecode,
		Message: fmt.Sprintf("failed to decode %s %s response: %v", req.Method, req.Path, err),
		Body:    string(body),
		Err:     errors.Wrap(err, "decode response"),
	}
}

// do performs the request and returns the body of a 2xx response.
func (d *Dispatcher) do(ctx context.Context, req *Request) (body []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			body = nil
			err = &Error{
				Kind:    KindTransport,
				Message: fmt.Sprintf("request panicked: %v", r),
				Err:     errors.Errorf("panic: %v", r),
			}
		}
	}()

	httpReq, err := d.build(ctx, req)
	if err != nil {
		return nil, &Error{
			Kind:    KindTransport,
			Message: fmt.Sprintf("failed to create request: %v", err),
			Err:     errors.Wrap(err, "build request"),
		}
	}

	start := time.Now()
	resp, err := d.httpClient.Do(httpReq)
	if err != nil {
		return nil, &Error{
			Kind:    KindTransport,
			Message: fmt.Sprintf("request failed: %v", err),
			Err:     errors.Wrapf(err, "%s %s", req.Method, httpReq.URL.Path),
		}
	}
	defer resp.Body.Close()

	body, err = io.ReadAll(resp.Body)
	if err != nil {
		return nil, &Error{
			Kind:       KindTransport,
			StatusCode: resp.StatusCode,
			Message:    fmt.Sprintf("failed to read response body: %v", err),
			Err:        errors.Wrap(err, "read body"),
		}
	}

	d.logger.Debug().
		Str("method", req.Method).
		Str("path", httpReq.URL.Path).
		Int("status", resp.StatusCode).
		Dur("duration", time.Since(start)).
		Strs("omitted", req.omitted).
		Msg("Strava API request")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, statusError(resp.StatusCode, body)
	}
	return body, nil
}

func statusError(status int, body []byte) *Error {
	e := &Error{
		Kind:       KindValidation,
		StatusCode: status,
		Message:    http.StatusText(status),
		Body:       string(body),
	}
	var fault Fault
	if err := json.Unmarshal(body, &fault); err == nil && fault.Message != "" {
		e.Fault = &fault
		e.Message = fault.String()
	} else if len(body) > 0 {
		e.Message = fmt.Sprintf("%s: %s", e.Message, strings.TrimSpace(string(body)))
	}
	e.Err = errors.New(e.Message)
	return e
}

func (d *Dispatcher) build(ctx context.Context, req *Request) (*http.Request, error) {
	target := req.URL
	if target == "" {
		target = d.baseURL + req.Path
	}

	var (
		body        io.Reader
		contentType string
	)
	switch {
	case req.file != nil:
		buf, ct, err := encodeMultipart(req)
		if err != nil {
			return nil, err
		}
		body, contentType = buf, ct
	case req.paramsInBody():
		body = strings.NewReader(req.params.Encode())
		contentType = "application/x-www-form-urlencoded"
	case len(req.params) > 0:
		sep := "?"
		if strings.Contains(target, "?") {
			sep = "&"
		}
		target += sep + req.params.Encode()
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, target, body)
	if err != nil {
		return nil, err
	}
	for k, v := range req.headers {
		httpReq.Header[k] = v
	}
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("User-Agent", d.userAgent)
	if contentType != "" {
		httpReq.Header.Set("Content-Type", contentType)
	}
	return httpReq, nil
}

func encodeMultipart(req *Request) (*bytes.Buffer, string, error) {
	buf := &bytes.Buffer{}
	w := multipart.NewWriter(buf)

	for key, values := range req.params {
		for _, v := range values {
			if err := w.WriteField(key, v); err != nil {
				return nil, "", errors.Wrapf(err, "write field %s", key)
			}
		}
	}

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`, req.file.field, req.file.filename))
	h.Set("Content-Type", req.file.contentType)
	part, err := w.CreatePart(h)
	if err != nil {
		return nil, "", errors.Wrap(err, "create file part")
	}
	if req.file.data != nil {
		if _, err := io.Copy(part, req.file.data); err != nil {
			return nil, "", errors.Wrap(err, "copy file")
		}
	}
	if err := w.Close(); err != nil {
		return nil, "", errors.Wrap(err, "close multipart writer")
	}
	return buf, w.FormDataContentType(), nil
}
