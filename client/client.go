// Package client 是管理后台调用审核服务的 Go 客户端。
// 除了 HTTP 调用外还提供本地评论缓存 (CommentCache) 与乐观更新协调器 (Coordinator)：
// 先在本地应用预期结果，服务端确认后保留，失败则回滚到调用前的快照。
package client

import (
	"bytes"
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/zap"

	"github.com/Xushengqwer/comment_service/models/dto"
	"github.com/Xushengqwer/comment_service/models/enums"
	"github.com/Xushengqwer/comment_service/models/vo"
	"github.com/Xushengqwer/comment_service/myErrors"
)

const (
	adminBasePath = "/api/v1/comment/admin"

	// UserIDHeader 网关注入的调用方身份，服务端由 UserContextMiddleware 读取
	UserIDHeader = "X-User-ID"
	csrfCookie   = "csrf_token"
	csrfHeader   = "X-CSRF-Token"

	defaultTimeout = 10 * time.Second
)

// Config 客户端配置
type Config struct {
	BaseURL string
	// UserID 写操作的操作者，空值会被服务端以 401 拒绝
	UserID string
	// Timeout 单次请求超时，<=0 时为 10s。超时按传输失败处理。
	Timeout time.Duration
	// Transport 底层传输，为空时使用 http.DefaultTransport，外层总是包一层 otelhttp
	Transport http.RoundTripper
	Logger    *zap.Logger
}

// Client 审核服务的 HTTP 客户端
type Client struct {
	baseURL   string
	userID    string
	csrfToken string
	http      *http.Client
	logger    *zap.Logger
}

// APIError 服务端返回的非 2xx 响应。Unwrap 返回对应的业务或传输错误。
type APIError struct {
	StatusCode int
	Message    string
	kind       error
}

func (e *APIError) Error() string {
	return fmt.Sprintf("审核服务返回 %d: %s", e.StatusCode, e.Message)
}

func (e *APIError) Unwrap() error { return e.kind }

type envelope struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func New(cfg Config) (*Client, error) {
	if _, err := url.ParseRequestURI(cfg.BaseURL); err != nil {
		return nil, fmt.Errorf("无效的 BaseURL %q: %w", cfg.BaseURL, err)
	}
	base := cfg.Transport
	if base == nil {
		base = http.DefaultTransport
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	// 双重提交：同一个随机值同时放在 Cookie 和请求头里
	token := make([]byte, 32)
	if _, err := rand.Read(token); err != nil {
		return nil, fmt.Errorf("生成 CSRF 令牌失败: %w", err)
	}

	return &Client{
		baseURL:   cfg.BaseURL,
		userID:    cfg.UserID,
		csrfToken: hex.EncodeToString(token),
		http: &http.Client{
			Transport: otelhttp.NewTransport(base),
			Timeout:   timeout,
		},
		logger: logger,
	}, nil
}

func (c *Client) ListComments(ctx context.Context, req dto.ListCommentsRequest) (*vo.CommentListVO, error) {
	q := url.Values{}
	setIfNotEmpty(q, "search", req.Search)
	setIfNotEmpty(q, "status", req.Status)
	setIfNotEmpty(q, "deleted_status", req.DeletedStatus)
	if req.PostID != nil {
		q.Set("post", strconv.FormatUint(*req.PostID, 10))
	}
	if req.Page > 0 {
		q.Set("page", strconv.Itoa(req.Page))
	}
	if req.PageSize > 0 {
		q.Set("page_size", strconv.Itoa(req.PageSize))
	}
	var out vo.CommentListVO
	if err := c.do(ctx, http.MethodGet, "/comments?"+q.Encode(), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) SetStatus(ctx context.Context, id uint64, status enums.CommentStatus) (*vo.StatusChangeVO, error) {
	var out vo.StatusChangeVO
	body := dto.SetCommentStatusRequest{Status: string(status)}
	if err := c.do(ctx, http.MethodPost, fmt.Sprintf("/comments/%d/status", id), body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) SoftDelete(ctx context.Context, id uint64) (*vo.DeletionChangeVO, error) {
	var out vo.DeletionChangeVO
	if err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/comments/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Restore(ctx context.Context, id uint64) (*vo.DeletionChangeVO, error) {
	var out vo.DeletionChangeVO
	if err := c.do(ctx, http.MethodPost, fmt.Sprintf("/comments/%d/restore", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// BulkApply 调用 /comments/bulk-{action}。空集合在本地直接返回 ErrEmptySelection，不发请求。
func (c *Client) BulkApply(ctx context.Context, action enums.BulkAction, ids []uint64) (*vo.BulkResultVO, error) {
	if len(ids) == 0 {
		return nil, myErrors.ErrEmptySelection
	}
	var out vo.BulkResultVO
	body := dto.BulkCommentsRequest{IDs: ids}
	if err := c.do(ctx, http.MethodPost, "/comments/bulk-"+string(action), body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ResolveReport(ctx context.Context, id uint64, outcome enums.ReportStatus, notes string) (*vo.ReportVO, error) {
	var out vo.ReportVO
	body := dto.ResolveReportRequest{Status: string(outcome), Notes: notes}
	if err := c.do(ctx, http.MethodPost, fmt.Sprintf("/comment-reports/%d/resolve", id), body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("序列化请求体失败: %w", err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+adminBasePath+path, reader)
	if err != nil {
		return fmt.Errorf("构造请求失败: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.userID != "" {
		req.Header.Set(UserIDHeader, c.userID)
	}
	req.AddCookie(&http.Cookie{Name: csrfCookie, Value: c.csrfToken})
	req.Header.Set(csrfHeader, c.csrfToken)

	// 请求已发出后的任何失败 (网络错误、超时、5xx、响应无法解析) 都无法确定服务端是否已生效
	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Warn("请求审核服务失败", zap.String("method", method), zap.String("path", path), zap.Error(err))
		return fmt.Errorf("%w: %v", myErrors.ErrTransportFailure, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: 读取响应失败: %v", myErrors.ErrTransportFailure, err)
	}
	var env envelope
	decodeErr := json.Unmarshal(raw, &env)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg := env.Message
		if decodeErr != nil || msg == "" {
			msg = http.StatusText(resp.StatusCode)
		}
		apiErr := &APIError{StatusCode: resp.StatusCode, Message: msg, kind: kindForResponse(resp)}
		c.logger.Debug("审核服务返回错误", zap.String("path", path), zap.Int("status", resp.StatusCode), zap.String("message", msg))
		return apiErr
	}
	if decodeErr != nil {
		return fmt.Errorf("%w: 解析响应失败: %v", myErrors.ErrTransportFailure, decodeErr)
	}
	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("%w: 解析响应数据失败: %v", myErrors.ErrTransportFailure, err)
		}
	}
	return nil
}

// kindForResponse 优先按响应头中的错误分类还原具体错误，没有时退回按状态码映射。
// 5xx 一律视为结果未知。
func kindForResponse(resp *http.Response) error {
	if resp.StatusCode < http.StatusInternalServerError {
		if kind, ok := myErrors.FromKind(resp.Header.Get(myErrors.ErrorKindHeader)); ok {
			return kind
		}
	}
	return kindForStatus(resp.StatusCode)
}

// kindForStatus 把 HTTP 状态码映射回错误分类。
// 没有分类头的 422 视为非法转换：状态值在发请求前已经在本地校验过。
func kindForStatus(status int) error {
	switch {
	case status == http.StatusNotFound:
		return myErrors.ErrNotFound
	case status == http.StatusUnprocessableEntity:
		return myErrors.ErrInvalidTransition
	case status == http.StatusConflict:
		return myErrors.ErrAlreadyResolved
	case status == http.StatusBadRequest:
		return myErrors.ErrInvalidInput
	case status == http.StatusUnauthorized, status == http.StatusForbidden:
		return myErrors.ErrUnauthorized
	default:
		return myErrors.ErrTransportFailure
	}
}

func setIfNotEmpty(q url.Values, key, value string) {
	if value != "" {
		q.Set(key, value)
	}
}

// IsTransportFailure 判断错误是否意味着"结果未知"
func IsTransportFailure(err error) bool {
	return errors.Is(err, myErrors.ErrTransportFailure)
}
