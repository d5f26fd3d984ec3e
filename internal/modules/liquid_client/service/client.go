package service

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/bytedance/sonic"
	"github.com/opentracing/opentracing-go"
	"github.com/pkg/errors"

	"liquid_relay/internal/modules/config"
	"liquid_relay/internal/notify"
	"liquid_relay/pkg/logger"
)

const (
	apiPrefix      = "/dxsca-web"
	requestTimeout = 10 * time.Second
	// после третьей попытки (retries > 2) запрос не уходит в сеть
	maxAuthRetries = 2

	challengeDescription = "Authorization required"
)

// Client — типизированный клиент торгового REST API.
// Креденшлы иммутабельны, account_id один раз экранируется в account code.
type Client struct {
	username    string
	password    string
	baseURL     string
	accountCode string

	http *http.Client
	n    notify.Notifier // опционален, nil-безопасен

	// mu закрывает ячейку токена от рваных чтений. Два конкурентных
	// вызова, поймавших протухший токен, могут обновить его наперегонки —
	// выигрывает последняя запись. Контракт "один повтор на поколение,
	// потом отказ" от этого не страдает.
	mu           sync.RWMutex
	sessionToken string
}

// NewClient конструирует клиента и сразу логинится: клиент не должен
// существовать без валидного токена.
func NewClient(cfg *config.Config) (*Client, error) {
	return NewClientWithNotifier(cfg, nil)
}

// NewClientFromEnv собирает конфигурацию из окружения и файла
// (см. config.NewConfig) и сразу логинится.
func NewClientFromEnv() (*Client, error) {
	cfg, err := config.NewConfig()
	if err != nil {
		return nil, err
	}
	return NewClient(cfg)
}

func NewClientWithNotifier(cfg *config.Config, n notify.Notifier) (*Client, error) {
	logger.Info("initializing liquid client for account_id: %s", cfg.Liquid.AccountID)
	c := &Client{
		username:    cfg.Liquid.Username,
		password:    cfg.Liquid.Password,
		baseURL:     cfg.Liquid.BaseURL,
		accountCode: url.QueryEscape("default:" + cfg.Liquid.AccountID),
		http:        &http.Client{Timeout: requestTimeout},
		n:           n,
	}
	token, err := c.getSessionToken(context.Background())
	if err != nil {
		return nil, err
	}
	c.setToken(token)
	return c, nil
}

func (c *Client) token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.sessionToken
}

func (c *Client) setToken(token string) {
	c.mu.Lock()
	c.sessionToken = token
	c.mu.Unlock()
}

// getSessionToken меняет креденшлы на сессионный токен через POST /login.
func (c *Client) getSessionToken(ctx context.Context) (string, error) {
	logger.Debug("attempting to acquire session token for user: %s", c.username)
	resp, err := c.query(ctx, http.MethodPost, "/login", map[string]any{
		"username": c.username,
		"password": c.password,
		"domain":   "default",
	}, nil, 0)
	if err != nil {
		return "", err
	}
	var payload struct {
		SessionToken *string `json:"sessionToken"`
	}
	if uErr := json.Unmarshal(resp.body, &payload); uErr != nil || payload.SessionToken == nil {
		logger.Error("failed to receive session token. result: %s", string(resp.body))
		return "", &AuthError{Reason: "session token not received", Payload: resp.body}
	}
	logger.Info("successfully acquired session token")
	return *payload.SessionToken, nil
}

func (c *Client) refreshToken(ctx context.Context) error {
	token, err := c.getSessionToken(ctx)
	if err != nil {
		if c.n != nil {
			c.n.Sendf("liquid: token refresh failed: %v", err)
		}
		return err
	}
	c.setToken(token)
	return nil
}

type rawResponse struct {
	status int
	body   []byte
}

// query собирает и выполняет запрос. Не-2xx ответ НЕ считается ошибкой —
// он логируется и возвращается как есть; в ошибку его превращает (или нет)
// проверка формы на стороне конкретной операции.
func (c *Client) query(
	ctx context.Context,
	method string,
	path string,
	data map[string]any,
	params url.Values,
	retries int,
) (*rawResponse, error) {
	if retries > maxAuthRetries {
		logger.Error("too many retries for path: %s", path)
		return nil, &AuthError{Reason: "too many retries"}
	}

	sep := ""
	if !strings.HasPrefix(path, "/") {
		sep = "/"
	}
	fullURL := c.baseURL + apiPrefix + sep + path
	if len(params) > 0 {
		fullURL += "?" + params.Encode()
	}

	var body io.Reader
	if data != nil {
		payload, mErr := sonic.Marshal(data)
		if mErr != nil {
			return nil, errors.Wrap(mErr, "marshal request body")
		}
		body = bytes.NewReader(payload)
	}

	span, ctx := opentracing.StartSpanFromContext(ctx, "liquid.query")
	span.SetTag("http.method", method)
	span.SetTag("http.path", path)
	defer span.Finish()

	req, rErr := http.NewRequestWithContext(ctx, method, fullURL, body)
	if rErr != nil {
		return nil, errors.Wrap(rErr, "build request")
	}
	req.Header.Set("Content-Type", "application/json")
	if token := c.token(); token != "" {
		req.Header.Set("Authorization", "DXAPI "+token)
	}

	logger.Debug("executing %s request to %s", method, fullURL)
	resp, dErr := c.http.Do(req)
	if dErr != nil {
		return nil, errors.Wrap(dErr, "do request")
	}
	defer resp.Body.Close()

	raw, readErr := io.ReadAll(resp.Body)
	if readErr != nil {
		return nil, errors.Wrap(readErr, "read response body")
	}
	span.SetTag("http.status_code", resp.StatusCode)

	// протухший токен сервер сигналит телом, а не статусом
	var challenge struct {
		Description string `json:"description"`
	}
	_ = sonic.Unmarshal(raw, &challenge)
	if challenge.Description == challengeDescription {
		logger.Warn("authorization required for %s, attempting token refresh", path)
		if err := c.refreshToken(ctx); err != nil {
			return nil, err
		}
		return c.query(ctx, method, path, data, params, retries+1)
	}

	if resp.StatusCode/100 != 2 {
		logger.Error("request to %s failed with status %d: %s", path, resp.StatusCode, string(raw))
	}

	return &rawResponse{status: resp.StatusCode, body: raw}, nil
}
