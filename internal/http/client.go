// Package http is the transport used by every resource client. It sends
// requests through go-retryablehttp and hands back the raw status code and
// body; classification of the outcome is left to the caller.
package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	nethttp "net/http"
	"net/url"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/timmik994/GitHubApiLib/internal/auth"
	"github.com/timmik994/GitHubApiLib/internal/constants"
	"github.com/timmik994/GitHubApiLib/pkg/ghapi"
)

// Static errors for err113 compliance.
var (
	ErrRequestRequired = errors.New("request is required")
)

// Logger is the logging interface used by the transport.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Request describes a single API call. Path is appended to the base URL
// unless it is already an absolute http(s) URL.
type Request struct {
	Method  string
	Path    string
	Query   url.Values
	Body    interface{}
	Headers map[string]string
}

// Response is the raw outcome of a request. Any status code is a valid response.
type Response struct {
	StatusCode int
	Headers    nethttp.Header
	Body       []byte
}

// Client sends requests to the API.
type Client struct {
	baseURL         string
	httpClient      *retryablehttp.Client
	tokenManager    auth.TokenManager
	authInterceptor ghapi.RequestInterceptor
	interceptors    *ghapi.InterceptorChain
	logger          Logger
	debug           bool
	userAgent       string
}

// Option configures a Client.
type Option func(*Client)

// WithLogger sets the logger used for debug output and retry diagnostics.
func WithLogger(logger Logger) Option {
	return func(c *Client) {
		c.logger = logger
		c.httpClient.Logger = &leveledLogger{logger: logger}
	}
}

// WithDebug enables request/response logging.
func WithDebug(debug bool) Option {
	return func(c *Client) {
		c.debug = debug
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}

// WithRetryConfig enables retries for connection errors, 429 and 5xx responses.
func WithRetryConfig(retryMax int, waitMin, waitMax time.Duration) Option {
	return func(c *Client) {
		c.httpClient.RetryMax = retryMax
		c.httpClient.RetryWaitMin = waitMin
		c.httpClient.RetryWaitMax = waitMax
	}
}

// WithTimeout bounds every request, including retries.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.HTTPClient.Timeout = timeout
	}
}

// WithInterceptors replaces the interceptor chain.
func WithInterceptors(chain *ghapi.InterceptorChain) Option {
	return func(c *Client) {
		if chain != nil {
			c.interceptors = chain
		}
	}
}

// NewClient creates a transport for baseURL. tokenManager may be nil for
// unauthenticated access.
func NewClient(baseURL string, tokenManager auth.TokenManager, opts ...Option) *Client {
	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = 0
	retryClient.RetryWaitMin = constants.DefaultRetryWaitMin
	retryClient.RetryWaitMax = constants.DefaultRetryWaitMax
	retryClient.HTTPClient.Timeout = constants.DefaultHTTPTimeout
	retryClient.ErrorHandler = retryablehttp.PassthroughErrorHandler
	retryClient.Logger = nil

	client := &Client{
		baseURL:      strings.TrimSuffix(baseURL, "/"),
		httpClient:   retryClient,
		tokenManager: tokenManager,
		interceptors: ghapi.DefaultInterceptorChain(nil),
		userAgent:    constants.DefaultUserAgent,
	}

	if tokenManager != nil {
		client.authInterceptor = ghapi.AuthenticationInterceptor(tokenManager.GetToken)
	}

	for _, opt := range opts {
		opt(client)
	}

	return client
}

// BaseURL returns the API root requests are sent to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Do sends req and returns the raw response. The error is non-nil only when
// the request could not be built or performed.
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	if req == nil {
		return nil, ErrRequestRequired
	}

	body, err := encodeBody(req.Body)
	if err != nil {
		return nil, err
	}

	intercepted := &ghapi.Request{
		Method:  req.Method,
		Path:    req.Path,
		Headers: c.buildHeaders(req, body != nil),
		Body:    body,
	}

	if c.authInterceptor != nil {
		err = c.authInterceptor(ctx, intercepted)
		if err != nil {
			return nil, fmt.Errorf("authenticating request: %w", err)
		}
	}

	err = c.interceptors.ExecuteRequestInterceptors(ctx, intercepted)
	if err != nil {
		return nil, err
	}

	httpReq, err := c.newRequest(ctx, req, intercepted)
	if err != nil {
		return nil, err
	}

	c.logRequest(httpReq)

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		_ = c.interceptors.ExecuteResponseInterceptors(ctx, intercepted, &ghapi.Response{Error: err})

		return nil, fmt.Errorf("sending request: %w", err)
	}

	defer func() {
		_ = httpResp.Body.Close()
	}()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	resp := &Response{
		StatusCode: httpResp.StatusCode,
		Headers:    httpResp.Header,
		Body:       respBody,
	}

	c.logResponse(resp)

	err = c.interceptors.ExecuteResponseInterceptors(ctx, intercepted, &ghapi.Response{
		StatusCode: resp.StatusCode,
		Headers:    resp.Headers,
		Body:       resp.Body,
	})
	if err != nil {
		return resp, err
	}

	return resp, nil
}

// Get performs a GET request.
func (c *Client) Get(ctx context.Context, path string, query url.Values) (*Response, error) {
	return c.Do(ctx, &Request{
		Method: nethttp.MethodGet,
		Path:   path,
		Query:  query,
	})
}

// Post performs a POST request with a JSON body.
func (c *Client) Post(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{
		Method: nethttp.MethodPost,
		Path:   path,
		Body:   body,
	})
}

// Put performs a PUT request with a JSON body.
func (c *Client) Put(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{
		Method: nethttp.MethodPut,
		Path:   path,
		Body:   body,
	})
}

// Patch performs a PATCH request with a JSON body.
func (c *Client) Patch(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{
		Method: nethttp.MethodPatch,
		Path:   path,
		Body:   body,
	})
}

// Delete performs a DELETE request.
func (c *Client) Delete(ctx context.Context, path string) (*Response, error) {
	return c.Do(ctx, &Request{
		Method: nethttp.MethodDelete,
		Path:   path,
	})
}

func (c *Client) buildHeaders(req *Request, hasBody bool) nethttp.Header {
	headers := make(nethttp.Header)
	headers.Set("Accept", constants.JSONContentType)
	headers.Set(constants.HeaderUserAgent, c.userAgent)

	if hasBody {
		headers.Set("Content-Type", constants.JSONContentType)
	}

	for key, value := range req.Headers {
		headers.Set(key, value)
	}

	return headers
}

func (c *Client) newRequest(ctx context.Context, req *Request, intercepted *ghapi.Request) (*retryablehttp.Request, error) {
	fullURL, err := c.resolveURL(req.Path, req.Query)
	if err != nil {
		return nil, err
	}

	var rawBody interface{}
	if intercepted.Body != nil {
		rawBody = intercepted.Body
	}

	httpReq, err := retryablehttp.NewRequestWithContext(ctx, intercepted.Method, fullURL, rawBody)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	for key, values := range intercepted.Headers {
		for _, value := range values {
			httpReq.Header.Add(key, value)
		}
	}

	return httpReq, nil
}

func (c *Client) resolveURL(path string, query url.Values) (string, error) {
	target := path
	if !strings.HasPrefix(path, "http://") && !strings.HasPrefix(path, "https://") {
		if !strings.HasPrefix(path, "/") {
			path = "/" + path
		}

		target = c.baseURL + path
	}

	parsed, err := url.Parse(target)
	if err != nil {
		return "", fmt.Errorf("parsing request URL: %w", err)
	}

	if len(query) > 0 {
		values := parsed.Query()
		for key, vals := range query {
			for _, val := range vals {
				values.Add(key, val)
			}
		}

		parsed.RawQuery = values.Encode()
	}

	return parsed.String(), nil
}

func encodeBody(body interface{}) ([]byte, error) {
	switch typed := body.(type) {
	case nil:
		return nil, nil
	case []byte:
		return typed, nil
	case json.RawMessage:
		return typed, nil
	case string:
		return []byte(typed), nil
	}

	var buf bytes.Buffer

	err := json.NewEncoder(&buf).Encode(body)
	if err != nil {
		return nil, fmt.Errorf("encoding request body: %w", err)
	}

	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

func (c *Client) logRequest(req *retryablehttp.Request) {
	if !c.debug || c.logger == nil {
		return
	}

	c.logger.Debug("HTTP Request", map[string]interface{}{
		"method":     req.Method,
		"url":        req.URL.String(),
		"request_id": req.Header.Get(constants.HeaderRequestID),
	})
}

func (c *Client) logResponse(resp *Response) {
	if !c.debug || c.logger == nil {
		return
	}

	c.logger.Debug("HTTP Response", map[string]interface{}{
		"status_code": resp.StatusCode,
		"body_size":   len(resp.Body),
	})
}

// leveledLogger adapts Logger to retryablehttp.LeveledLogger.
type leveledLogger struct {
	logger Logger
}

func (l *leveledLogger) Error(msg string, keysAndValues ...interface{}) {
	l.logger.Error(msg, fieldsFromKeysAndValues(keysAndValues))
}

func (l *leveledLogger) Info(msg string, keysAndValues ...interface{}) {
	l.logger.Info(msg, fieldsFromKeysAndValues(keysAndValues))
}

func (l *leveledLogger) Debug(msg string, keysAndValues ...interface{}) {
	l.logger.Debug(msg, fieldsFromKeysAndValues(keysAndValues))
}

func (l *leveledLogger) Warn(msg string, keysAndValues ...interface{}) {
	l.logger.Warn(msg, fieldsFromKeysAndValues(keysAndValues))
}

func fieldsFromKeysAndValues(keysAndValues []interface{}) map[string]interface{} {
	fields := make(map[string]interface{}, len(keysAndValues)/2)

	for i := 0; i+1 < len(keysAndValues); i += 2 {
		fields[fmt.Sprint(keysAndValues[i])] = keysAndValues[i+1]
	}

	return fields
}
