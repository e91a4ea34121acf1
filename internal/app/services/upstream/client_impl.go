package upstream

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"ogec-service/internal/app/config"
	"ogec-service/internal/app/contracts"
	"ogec-service/internal/app/models"
	"ogec-service/internal/pkg/constvars"
	"ogec-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
)

const (
	loginPath          = "/login"
	registerPath       = "/register"
	forgotPasswordPath = "/forgot-password"
	logoutPath         = "/logout"
	currentUserPath    = "/user"
	changePasswordFmt  = "/users/%d/change-password"
	userByIDFmt        = "/users/%d"
)

type client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient builds the one outbound adapter to the OGEC backend. The
// http.Client timeout is the single fixed ceiling of every call; exceeding
// it surfaces as the network-error class, never as a distinct timeout type.
func NewClient(internalConfig *config.InternalConfig) contracts.UpstreamClient {
	return &client{
		baseURL: internalConfig.Upstream.BaseURL,
		httpClient: &http.Client{
			Timeout: time.Duration(internalConfig.Upstream.TimeoutInSeconds) * time.Second,
		},
	}
}

// envelope covers the Laravel response wrappers the backend answers with.
type envelope struct {
	Success *bool           `json:"success,omitempty"`
	Message string          `json:"message,omitempty"`
	Error   string          `json:"error,omitempty"`
	Data    json.RawMessage `json:"data,omitempty"`
}

func (c *client) send(ctx context.Context, method, path, token string, body interface{}) (int, []byte, error) {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			return 0, nil, exceptions.ErrCannotMarshalJSON(err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, &buf)
	if err != nil {
		return 0, nil, exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	req.Header.Set(constvars.HeaderAccept, constvars.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set(constvars.HeaderAuthorization, "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, nil, exceptions.ErrUpstreamUnreachable(err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, nil, exceptions.ErrUpstreamUnreachable(err)
	}
	return resp.StatusCode, raw, nil
}

// classify turns a non-2xx upstream answer into its exceptions class. The
// login endpoint is exempt from the unauthorized classification so the
// login form can render its own message instead of triggering the global
// forced logout.
func classify(statusCode int, raw []byte, path string) error {
	if statusCode < 400 {
		return nil
	}

	var env envelope
	_ = json.Unmarshal(raw, &env)
	message := env.Message
	if message == "" {
		message = env.Error
	}

	if statusCode == constvars.StatusUnauthorized && path != loginPath {
		return exceptions.ErrUpstreamUnauthorized(nil)
	}
	if statusCode == constvars.StatusUnauthorized {
		if message == "" {
			return exceptions.ErrInvalidCredentials(nil)
		}
		return exceptions.ErrUpstreamRejected(nil, statusCode, message)
	}
	return exceptions.ErrUpstreamRejected(nil, statusCode, message)
}

func (c *client) Login(ctx context.Context, email, password string) (*contracts.LoginExchange, error) {
	statusCode, raw, err := c.send(ctx, constvars.MethodPost, loginPath, "", map[string]string{
		"email":    email,
		"password": password,
	})
	if err != nil {
		return nil, err
	}
	if err := classify(statusCode, raw, loginPath); err != nil {
		return nil, err
	}

	var body struct {
		Data struct {
			User        *models.User `json:"user"`
			AccessToken string       `json:"access_token"`
		} `json:"data"`
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		return nil, exceptions.ErrUpstreamDecodeResponse(err, loginPath)
	}
	if body.Data.User == nil || body.Data.AccessToken == "" {
		return nil, exceptions.ErrMalformedUpstreamResponse(nil)
	}

	return &contracts.LoginExchange{
		User:        body.Data.User,
		AccessToken: body.Data.AccessToken,
	}, nil
}

func (c *client) Register(ctx context.Context, payload interface{}) error {
	statusCode, raw, err := c.send(ctx, constvars.MethodPost, registerPath, "", payload)
	if err != nil {
		return err
	}
	return classify(statusCode, raw, registerPath)
}

func (c *client) ForgotPassword(ctx context.Context, email string) error {
	statusCode, raw, err := c.send(ctx, constvars.MethodPost, forgotPasswordPath, "", map[string]string{
		"email": email,
	})
	if err != nil {
		return err
	}
	return classify(statusCode, raw, forgotPasswordPath)
}

func (c *client) Logout(ctx context.Context, token string) error {
	statusCode, raw, err := c.send(ctx, constvars.MethodPost, logoutPath, token, nil)
	if err != nil {
		return err
	}
	return classify(statusCode, raw, logoutPath)
}

func (c *client) CurrentUser(ctx context.Context, token string) (*models.User, error) {
	statusCode, raw, err := c.send(ctx, constvars.MethodGet, currentUserPath, token, nil)
	if err != nil {
		return nil, err
	}
	if err := classify(statusCode, raw, currentUserPath); err != nil {
		return nil, err
	}
	return decodeUser(raw, currentUserPath)
}

func (c *client) UpdateUser(ctx context.Context, token string, userID int, payload interface{}) (*models.User, error) {
	path := fmt.Sprintf(userByIDFmt, userID)
	statusCode, raw, err := c.send(ctx, constvars.MethodPut, path, token, payload)
	if err != nil {
		return nil, err
	}
	if err := classify(statusCode, raw, path); err != nil {
		return nil, err
	}
	return decodeUser(raw, path)
}

func (c *client) ChangePassword(ctx context.Context, token string, userID int, payload interface{}) error {
	path := fmt.Sprintf(changePasswordFmt, userID)
	statusCode, raw, err := c.send(ctx, constvars.MethodPost, path, token, payload)
	if err != nil {
		return err
	}
	return classify(statusCode, raw, path)
}

func (c *client) List(ctx context.Context, token, resource string) (json.RawMessage, error) {
	path := "/" + resource
	statusCode, raw, err := c.send(ctx, constvars.MethodGet, path, token, nil)
	if err != nil {
		return nil, err
	}
	if err := classify(statusCode, raw, path); err != nil {
		return nil, err
	}
	return UnwrapList(raw), nil
}

func (c *client) GetByID(ctx context.Context, token, resource string, id int) (json.RawMessage, error) {
	path := fmt.Sprintf("/%s/%d", resource, id)
	statusCode, raw, err := c.send(ctx, constvars.MethodGet, path, token, nil)
	if err != nil {
		return nil, err
	}
	if err := classify(statusCode, raw, path); err != nil {
		return nil, err
	}
	return UnwrapData(raw), nil
}

func (c *client) Create(ctx context.Context, token, resource string, payload interface{}) (json.RawMessage, error) {
	path := "/" + resource
	statusCode, raw, err := c.send(ctx, constvars.MethodPost, path, token, payload)
	if err != nil {
		return nil, err
	}
	if err := classify(statusCode, raw, path); err != nil {
		return nil, err
	}
	return UnwrapData(raw), nil
}

func (c *client) Update(ctx context.Context, token, resource string, id int, payload interface{}) (json.RawMessage, error) {
	path := fmt.Sprintf("/%s/%d", resource, id)
	statusCode, raw, err := c.send(ctx, constvars.MethodPut, path, token, payload)
	if err != nil {
		return nil, err
	}
	if err := classify(statusCode, raw, path); err != nil {
		return nil, err
	}
	return UnwrapData(raw), nil
}

func (c *client) Delete(ctx context.Context, token, resource string, id int) error {
	path := fmt.Sprintf("/%s/%d", resource, id)
	statusCode, raw, err := c.send(ctx, constvars.MethodDelete, path, token, nil)
	if err != nil {
		return err
	}
	return classify(statusCode, raw, path)
}

// decodeUser accepts both answer shapes the backend uses for user records:
// the bare record and the {data: record} wrapper.
func decodeUser(raw []byte, path string) (*models.User, error) {
	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, exceptions.ErrUpstreamDecodeResponse(err, path)
	}

	candidate := raw
	if len(env.Data) > 0 {
		candidate = env.Data
	}

	user := new(models.User)
	if err := json.Unmarshal(candidate, user); err != nil {
		return nil, exceptions.ErrUpstreamDecodeResponse(err, path)
	}
	if user.ID == 0 {
		return nil, exceptions.ErrUpstreamDecodeResponse(nil, path)
	}
	return user, nil
}
