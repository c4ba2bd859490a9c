package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/dmitrijs2005/youquote/internal/common"
	"github.com/dmitrijs2005/youquote/internal/logging"
	"github.com/dmitrijs2005/youquote/internal/models"
	"github.com/google/uuid"
)

// maxErrorBody bounds how much of a failed response is read for the
// message/errors fields.
const maxErrorBody = 64 << 10

type HTTPClient struct {
	baseURL     *url.URL
	httpClient  *http.Client
	credentials CredentialSource
	log         logging.Logger
	requestID   func() string
}

type Option func(*HTTPClient)

func WithHTTPClient(h *http.Client) Option {
	return func(c *HTTPClient) { c.httpClient = h }
}

func WithTimeout(d time.Duration) Option {
	return func(c *HTTPClient) { c.httpClient.Timeout = d }
}

func WithLogger(l logging.Logger) Option {
	return func(c *HTTPClient) { c.log = l }
}

// NewHTTPClient returns a Client talking JSON over HTTP to baseURL. The
// credential is read from creds on every request, never cached.
func NewHTTPClient(baseURL string, creds CredentialSource, opts ...Option) (*HTTPClient, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse api base url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("api base url must be http(s): %q", baseURL)
	}

	c := &HTTPClient{
		baseURL:     u,
		httpClient:  &http.Client{Timeout: 10 * time.Second},
		credentials: creds,
		log:         logging.Discard(),
		requestID:   uuid.NewString,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

type errorBody struct {
	Message string              `json:"message"`
	Errors  map[string][]string `json:"errors"`
}

func (c *HTTPClient) do(ctx context.Context, method string, path string, in any, out any) error {
	endpoint := c.baseURL.JoinPath(path)

	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint.String(), body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	reqID := c.requestID()
	req.Header.Set(common.RequestIDHeaderName, reqID)
	if c.credentials != nil {
		if token, ok := c.credentials.Credential(); ok {
			req.Header.Set(common.AuthorizationHeaderName, common.BearerPrefix+token)
		}
	}

	started := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Error(ctx, "request failed", "method", method, "path", path, "request_id", reqID, "error", err)
		return &APIError{Kind: KindTransport, Err: err}
	}
	defer resp.Body.Close()

	c.log.Debug(ctx, "request done", "method", method, "path", path, "request_id", reqID,
		"status", resp.StatusCode, "duration", time.Since(started))

	if resp.StatusCode >= http.StatusBadRequest {
		apiErr := &APIError{Kind: KindForStatus(resp.StatusCode), Status: resp.StatusCode}
		var eb errorBody
		if raw, rerr := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody)); rerr == nil {
			if json.Unmarshal(raw, &eb) == nil {
				apiErr.Message = eb.Message
				apiErr.Fields = eb.Errors
			}
		}
		return apiErr
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	// A read that expects a payload must not turn an empty body into an
	// empty collection.
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		if errors.Is(err, io.EOF) {
			err = errors.New("empty response body")
		}
		return &APIError{Kind: KindUnexpected, Status: resp.StatusCode, Err: fmt.Errorf("decode response: %w", err)}
	}
	return nil
}

func idPath(prefix string, id int64, suffix ...string) string {
	p := prefix + "/" + strconv.FormatInt(id, 10)
	for _, s := range suffix {
		p += "/" + s
	}
	return p
}

func (c *HTTPClient) Login(ctx context.Context, form models.LoginForm) (*models.LoginResult, error) {
	var res models.LoginResult
	if err := c.do(ctx, http.MethodPost, "/login", form, &res); err != nil {
		return nil, err
	}
	if res.Token == "" {
		return nil, &APIError{Kind: KindUnexpected, Message: "login response carried no token"}
	}
	return &res, nil
}

func (c *HTTPClient) Register(ctx context.Context, form models.RegisterForm) (*models.User, error) {
	var res struct {
		User models.User `json:"user"`
	}
	if err := c.do(ctx, http.MethodPost, "/register", form, &res); err != nil {
		return nil, err
	}
	return &res.User, nil
}

func (c *HTTPClient) ListQuotes(ctx context.Context) ([]models.Quote, error) {
	var res []models.Quote
	if err := c.do(ctx, http.MethodGet, "/quotes", nil, &res); err != nil {
		return nil, err
	}
	return res, nil
}

func (c *HTTPClient) GetQuote(ctx context.Context, id int64) (*models.Quote, error) {
	var res models.Quote
	if err := c.do(ctx, http.MethodGet, idPath("/quotes", id), nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *HTTPClient) ListAuthors(ctx context.Context) ([]models.Author, error) {
	var res []models.Author
	if err := c.do(ctx, http.MethodGet, "/authors", nil, &res); err != nil {
		return nil, err
	}
	return res, nil
}

func (c *HTTPClient) GetAuthor(ctx context.Context, id int64) (*models.AuthorQuotes, error) {
	var res models.AuthorQuotes
	if err := c.do(ctx, http.MethodGet, idPath("/authors", id), nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *HTTPClient) ListUsers(ctx context.Context) ([]models.User, error) {
	var res []models.User
	if err := c.do(ctx, http.MethodGet, "/admin/users", nil, &res); err != nil {
		return nil, err
	}
	return res, nil
}

func (c *HTTPClient) ChangeUserRole(ctx context.Context, id int64, role models.Role) error {
	return c.do(ctx, http.MethodPatch, idPath("/admin/users", id, "role"), models.RoleChange{Role: role}, nil)
}

func (c *HTTPClient) DeleteUser(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, idPath("/admin/users", id), nil, nil)
}

func (c *HTTPClient) ListActiveQuotes(ctx context.Context) ([]models.Quote, error) {
	var res []models.Quote
	if err := c.do(ctx, http.MethodGet, "/admin/quotes", nil, &res); err != nil {
		return nil, err
	}
	return res, nil
}

func (c *HTTPClient) ListDeletedQuotes(ctx context.Context) ([]models.Quote, error) {
	var res []models.Quote
	if err := c.do(ctx, http.MethodGet, "/admin/quotes/deleted", nil, &res); err != nil {
		return nil, err
	}
	return res, nil
}

func (c *HTTPClient) DeleteQuote(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, idPath("/admin/quotes", id), nil, nil)
}

func (c *HTTPClient) RestoreQuote(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodPost, idPath("/admin/quotes", id, "restore"), nil, nil)
}

func (c *HTTPClient) PurgeQuote(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, idPath("/admin/quotes", id, "force"), nil, nil)
}

func (c *HTTPClient) RestoreAllQuotes(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "/admin/quotes/restore-all", nil, nil)
}

func (c *HTTPClient) PurgeAllQuotes(ctx context.Context) error {
	return c.do(ctx, http.MethodDelete, "/admin/quotes/force-delete-all", nil, nil)
}
