package strava

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"reflect"
	"strconv"
	"strings"
	"time"
)

// Request describes one API call before it is dispatched.
type Request struct {
	Method string
	// Path is appended to the dispatcher's base URL.
	Path string
	// URL, when set, replaces base URL and Path entirely.
	URL string

	params  url.Values
	headers http.Header
	omitted []string
	file    *filePart
}

type filePart struct {
	field       string
	filename    string
	contentType string
	data        io.Reader
}

// NewRequest creates a request for method and a path relative to the API base URL.
func NewRequest(method, path string) *Request {
	return &Request{
		Method:  method,
		Path:    path,
		params:  url.Values{},
		headers: http.Header{},
	}
}

// AddParam sets a parameter. A nil value, including a nil pointer, is
// omitted; an empty string is sent as an empty value.
func (r *Request) AddParam(key string, value any) *Request {
	s, ok := formatParam(value)
	if !ok {
		r.omitted = append(r.omitted, key)
		return r
	}
	r.params.Set(key, s)
	return r
}

// AddHeader sets a header. An empty value is ignored.
func (r *Request) AddHeader(key, value string) *Request {
	if value == "" {
		return r
	}
	r.headers.Set(key, value)
	return r
}

// AddToken attaches bearer authentication.
func (r *Request) AddToken(token string) *Request {
	return r.AddHeader("Authorization", "Bearer "+token)
}

// AttachFile turns the request into a multipart upload: parameters become
// form fields and data is sent as a single named file part.
func (r *Request) AttachFile(field, filename, contentType string, data io.Reader) *Request {
	r.file = &filePart{
		field:       field,
		filename:    filename,
		contentType: contentType,
		data:        data,
	}
	return r
}

// Params returns a copy of the parameters set so far.
func (r *Request) Params() url.Values {
	out := make(url.Values, len(r.params))
	for k, v := range r.params {
		out[k] = append([]string(nil), v...)
	}
	return out
}

// Header returns the value of a header set on the request.
func (r *Request) Header(key string) string {
	return r.headers.Get(key)
}

// Omitted lists the parameter keys that were dropped because their value was nil.
func (r *Request) Omitted() []string {
	return r.omitted
}

// Multipart reports whether a file is attached.
func (r *Request) Multipart() bool {
	return r.file != nil
}

func (r *Request) paramsInBody() bool {
	return r.Method == http.MethodPost || r.Method == http.MethodPut || r.Method == http.MethodPatch
}

// formatParam renders a parameter value; ok is false for nil.
func formatParam(value any) (string, bool) {
	if value == nil {
		return "", false
	}

	rv := reflect.ValueOf(value)
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return "", false
		}
		rv = rv.Elem()
	}
	switch rv.Kind() {
	case reflect.Slice, reflect.Map:
		if rv.IsNil() {
			return "", false
		}
	}

	v := rv.Interface()
	switch t := v.(type) {
	case time.Time:
		return FormatDate(t), true
	case Time:
		return FormatDate(t.Time), true
	case fmt.Stringer:
		return t.String(), true
	}

	switch rv.Kind() {
	case reflect.String:
		return rv.String(), true
	case reflect.Bool:
		return strconv.FormatBool(rv.Bool()), true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(rv.Uint(), 10), true
	case reflect.Float32:
		return strconv.FormatFloat(rv.Float(), 'f', -1, 32), true
	case reflect.Float64:
		return strconv.FormatFloat(rv.Float(), 'f', -1, 64), true
	case reflect.Slice, reflect.Array:
		parts := make([]string, 0, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			if s, ok := formatParam(rv.Index(i).Interface()); ok {
				parts = append(parts, s)
			}
		}
		return strings.Join(parts, ","), true
	default:
		return fmt.Sprint(v), true
	}
}

// Page selects one page of a list endpoint. It is sent only when both
// fields are positive.
type Page struct {
	Page    int
	PerPage int
}

func (p Page) apply(r *Request) {
	if p.Page > 0 && p.PerPage > 0 {
		r.AddParam("page", p.Page)
		r.AddParam("per_page", p.PerPage)
	}
}

// epoch converts an optional time to UNIX seconds.
func epoch(t *time.Time) *int64 {
	if t == nil {
		return nil
	}
	s := t.Unix()
	return &s
}
