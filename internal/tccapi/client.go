package tccapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const defaultTimeout = 15 * time.Second

// APIError 远端接口返回非 2xx 状态时的错误
type APIError struct {
	Status  int
	Message string
	Body    []byte
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("tcc api %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("tcc api %d", e.Status)
}

// Client TCC REST API 客户端
// 每个方法只负责拼接 URL、编码请求体、附加 Bearer 令牌并解码响应，不做重试与缓存。
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
	token      string
}

// Option 客户端配置项
type Option func(*Client)

// WithTimeout 设置请求超时
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.HTTPClient.Timeout = d
		}
	}
}

// WithHTTPClient 替换底层 http.Client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.HTTPClient = hc
		}
	}
}

// New 创建 API 客户端
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		BaseURL:    strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		HTTPClient: &http.Client{Timeout: defaultTimeout},
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// As 返回携带指定访问令牌的客户端副本
func (c *Client) As(token string) *Client {
	scoped := *c
	scoped.token = strings.TrimSpace(token)
	return &scoped
}

// Token 返回当前附加的访问令牌
func (c *Client) Token() string {
	return c.token
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(b)
	}

	target := c.BaseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return newAPIError(resp.StatusCode, payload)
	}
	if out == nil || len(bytes.TrimSpace(payload)) == 0 {
		return nil
	}
	return json.Unmarshal(payload, out)
}

func newAPIError(status int, payload []byte) *APIError {
	apiErr := &APIError{Status: status, Body: payload}
	var envelope struct {
		Error string `json:"error"`
		Msg   string `json:"msg"`
	}
	if err := json.Unmarshal(payload, &envelope); err == nil {
		apiErr.Message = strings.TrimSpace(envelope.Error)
		if apiErr.Message == "" {
			apiErr.Message = strings.TrimSpace(envelope.Msg)
		}
	}
	return apiErr
}

func resourcePath(collection, id string) string {
	return collection + "/" + url.PathEscape(strings.TrimSpace(id))
}
