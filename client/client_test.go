package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Xushengqwer/comment_service/models/dto"
	"github.com/Xushengqwer/comment_service/models/enums"
	"github.com/Xushengqwer/comment_service/models/vo"
	"github.com/Xushengqwer/comment_service/myErrors"
)

// fakeServer 模拟审核服务：按路径返回固定的响应，并记录收到的请求
type fakeServer struct {
	*httptest.Server
	hits     int32
	status   int
	kind     string
	data     interface{}
	lastReq  *http.Request
	lastBody map[string]interface{}
}

func newFakeServer(t *testing.T) *fakeServer {
	fs := &fakeServer{status: http.StatusOK}
	fs.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&fs.hits, 1)
		fs.lastReq = r
		fs.lastBody = nil
		_ = json.NewDecoder(r.Body).Decode(&fs.lastBody)

		w.Header().Set("Content-Type", "application/json")
		if fs.kind != "" {
			w.Header().Set(myErrors.ErrorKindHeader, fs.kind)
		}
		w.WriteHeader(fs.status)
		msg := "ok"
		if fs.status >= 300 {
			msg = "failed"
		}
		_ = json.NewEncoder(w).Encode(map[string]interface{}{"code": 0, "message": msg, "data": fs.data})
	}))
	t.Cleanup(fs.Close)
	return fs
}

func newTestClient(t *testing.T, baseURL string) *Client {
	c, err := New(Config{BaseURL: baseURL, UserID: "admin-1", Timeout: 2 * time.Second})
	require.NoError(t, err)
	return c
}

func TestClient_SendsIdentityAndCSRF(t *testing.T) {
	srv := newFakeServer(t)
	srv.data = vo.StatusChangeVO{Comment: &vo.CommentVO{ID: 4, Status: enums.CommentSpam}, To: enums.CommentSpam, Changed: true}
	c := newTestClient(t, srv.URL)

	change, err := c.SetStatus(context.Background(), 4, enums.CommentSpam)
	require.NoError(t, err)
	assert.Equal(t, enums.CommentSpam, change.Comment.Status)

	req := srv.lastReq
	assert.Equal(t, http.MethodPost, req.Method)
	assert.Equal(t, "/api/v1/comment/admin/comments/4/status", req.URL.Path)
	assert.Equal(t, "admin-1", req.Header.Get(UserIDHeader))
	cookie, err := req.Cookie("csrf_token")
	require.NoError(t, err)
	assert.NotEmpty(t, cookie.Value)
	assert.Equal(t, cookie.Value, req.Header.Get("X-CSRF-Token"))
	assert.Equal(t, "spam", srv.lastBody["status"])
}

func TestClient_MapsStatusCodes(t *testing.T) {
	cases := []struct {
		status int
		want   error
	}{
		{http.StatusNotFound, myErrors.ErrNotFound},
		{http.StatusUnprocessableEntity, myErrors.ErrInvalidTransition},
		{http.StatusConflict, myErrors.ErrAlreadyResolved},
		{http.StatusBadRequest, myErrors.ErrInvalidInput},
		{http.StatusUnauthorized, myErrors.ErrUnauthorized},
		{http.StatusInternalServerError, myErrors.ErrTransportFailure},
		{http.StatusBadGateway, myErrors.ErrTransportFailure},
	}
	for _, tc := range cases {
		t.Run(http.StatusText(tc.status), func(t *testing.T) {
			srv := newFakeServer(t)
			srv.status = tc.status
			_, err := newTestClient(t, srv.URL).ResolveReport(context.Background(), 1, enums.ReportResolved, "")
			require.Error(t, err)
			assert.ErrorIs(t, err, tc.want)

			var apiErr *APIError
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, tc.status, apiErr.StatusCode)
		})
	}
}

func TestClient_KeepsErrorsSharingAStatusApart(t *testing.T) {
	cases := []struct {
		status int
		kind   string
		want   error
		other  error
	}{
		{http.StatusUnprocessableEntity, "invalid_status", myErrors.ErrInvalidStatus, myErrors.ErrInvalidTransition},
		{http.StatusUnprocessableEntity, "invalid_transition", myErrors.ErrInvalidTransition, myErrors.ErrInvalidStatus},
		{http.StatusBadRequest, "empty_selection", myErrors.ErrEmptySelection, myErrors.ErrInvalidInput},
		{http.StatusBadRequest, "invalid_input", myErrors.ErrInvalidInput, myErrors.ErrEmptySelection},
	}
	for _, tc := range cases {
		t.Run(tc.kind, func(t *testing.T) {
			srv := newFakeServer(t)
			srv.status = tc.status
			srv.kind = tc.kind
			_, err := newTestClient(t, srv.URL).BulkApply(context.Background(), enums.BulkApprove, []uint64{1})
			require.Error(t, err)
			assert.ErrorIs(t, err, tc.want)
			assert.NotErrorIs(t, err, tc.other)
		})
	}

	// 5xx 即使带了分类头也是结果未知
	srv := newFakeServer(t)
	srv.status = http.StatusBadGateway
	srv.kind = "not_found"
	_, err := newTestClient(t, srv.URL).SoftDelete(context.Background(), 1)
	assert.ErrorIs(t, err, myErrors.ErrTransportFailure)
	assert.NotErrorIs(t, err, myErrors.ErrNotFound)
}

func TestClient_NetworkErrorIsTransportFailure(t *testing.T) {
	srv := newFakeServer(t)
	url := srv.URL
	srv.Close()

	_, err := newTestClient(t, url).SoftDelete(context.Background(), 1)
	assert.ErrorIs(t, err, myErrors.ErrTransportFailure)
	assert.True(t, IsTransportFailure(err))
}

func TestClient_BulkEmptySelectionNeverSends(t *testing.T) {
	srv := newFakeServer(t)
	_, err := newTestClient(t, srv.URL).BulkApply(context.Background(), enums.BulkSpam, nil)
	assert.ErrorIs(t, err, myErrors.ErrEmptySelection)
	assert.Zero(t, atomic.LoadInt32(&srv.hits))
}

func TestClient_ListCommentsQuery(t *testing.T) {
	srv := newFakeServer(t)
	srv.data = vo.CommentListVO{Comments: []*vo.CommentVO{{ID: 1}}, Total: 1, Page: 2, PageSize: 30}
	post := uint64(9)

	list, err := newTestClient(t, srv.URL).ListComments(context.Background(), dto.ListCommentsRequest{
		Status: "spam", DeletedStatus: "all", PostID: &post, Page: 2, PageSize: 30,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), list.Total)

	q := srv.lastReq.URL.Query()
	assert.Equal(t, "spam", q.Get("status"))
	assert.Equal(t, "all", q.Get("deleted_status"))
	assert.Equal(t, "9", q.Get("post"))
	assert.Equal(t, "30", q.Get("page_size"))
}
