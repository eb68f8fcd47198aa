package controller

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Xushengqwer/go-common/commonerrors"
	"github.com/Xushengqwer/go-common/constants"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Xushengqwer/comment_service/middleware"
	"github.com/Xushengqwer/comment_service/models/dto"
	"github.com/Xushengqwer/comment_service/models/enums"
	"github.com/Xushengqwer/comment_service/models/vo"
	"github.com/Xushengqwer/comment_service/myErrors"
	"github.com/Xushengqwer/comment_service/service"
)

func init() {
	gin.SetMode(gin.TestMode)
	if err := middleware.RegisterValidators(); err != nil {
		panic(err)
	}
}

// 未覆盖的方法直接 panic，测试只实现用到的那几个
type fakeModerationService struct {
	service.CommentModerationService

	setStatusErr error
	bulkErr      error
	gotActor     string
	gotAction    enums.BulkAction
	gotIDs       []uint64
	gotStatus    enums.CommentStatus
}

func (f *fakeModerationService) SetStatus(_ context.Context, id uint64, status enums.CommentStatus, actor string) (*vo.StatusChangeVO, error) {
	f.gotActor, f.gotStatus = actor, status
	if f.setStatusErr != nil {
		return nil, f.setStatusErr
	}
	return &vo.StatusChangeVO{Comment: &vo.CommentVO{ID: id, Status: status}, From: enums.CommentPending, To: status, Changed: true, Celebrate: status == enums.CommentApproved}, nil
}

func (f *fakeModerationService) SoftDelete(_ context.Context, id uint64, actor string) (*vo.DeletionChangeVO, error) {
	f.gotActor = actor
	return &vo.DeletionChangeVO{Comment: &vo.CommentVO{ID: id}, Changed: true}, nil
}

func (f *fakeModerationService) BulkApply(_ context.Context, ids []uint64, action enums.BulkAction, actor string) (*vo.BulkResultVO, error) {
	f.gotIDs, f.gotAction, f.gotActor = ids, action, actor
	if f.bulkErr != nil {
		return nil, f.bulkErr
	}
	return &vo.BulkResultVO{Action: action, Requested: len(ids), Processed: len(ids), Succeeded: ids}, nil
}

func (f *fakeModerationService) List(_ context.Context, req *dto.ListCommentsRequest) (*vo.CommentListVO, error) {
	return &vo.CommentListVO{Comments: []*vo.CommentVO{}, Page: req.Page, PageSize: req.PageSize}, nil
}

type fakeReportService struct {
	service.ReportService
	err error
}

func (f *fakeReportService) Resolve(_ context.Context, id uint64, outcome enums.ReportStatus, notes, reviewer string) (*vo.ReportVO, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &vo.ReportVO{ID: id, Status: outcome}, nil
}

type envelope struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func newTestRouter(mod service.CommentModerationService, rep service.ReportService) *gin.Engine {
	r := gin.New()
	r.Use(func(c *gin.Context) {
		if id := c.GetHeader("X-Test-User"); id != "" {
			c.Set(string(constants.UserIDKey), id)
		}
		c.Next()
	})
	admin := r.Group("/admin")
	NewCommentAdminController(mod).RegisterRoutes(admin, admin)
	NewReportAdminController(rep).RegisterRoutes(admin, admin)
	return r
}

func doJSON(t *testing.T, r http.Handler, method, path string, body interface{}) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Test-User", "admin-7")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	return w, env
}

func TestSetStatus_Success(t *testing.T) {
	mod := &fakeModerationService{}
	r := newTestRouter(mod, &fakeReportService{})

	w, env := doJSON(t, r, http.MethodPost, "/admin/comments/42/status", map[string]string{"status": " Approved "})
	require.Equal(t, http.StatusOK, w.Code)

	var change vo.StatusChangeVO
	require.NoError(t, json.Unmarshal(env.Data, &change))
	assert.Equal(t, uint64(42), change.Comment.ID)
	assert.True(t, change.Celebrate)
	assert.Equal(t, enums.CommentApproved, mod.gotStatus)
	assert.Equal(t, "admin-7", mod.gotActor)
}

func TestSetStatus_ErrorMapping(t *testing.T) {
	cases := []struct {
		name   string
		body   map[string]string
		err    error
		path   string
		status int
	}{
		{"invalid status value", map[string]string{"status": "trash"}, nil, "/admin/comments/1/status", http.StatusUnprocessableEntity},
		{"missing status", map[string]string{}, nil, "/admin/comments/1/status", http.StatusBadRequest},
		{"bad id", map[string]string{"status": "spam"}, nil, "/admin/comments/abc/status", http.StatusBadRequest},
		{"not found", map[string]string{"status": "spam"}, fmt.Errorf("获取评论失败: %w", commonerrors.ErrRepoNotFound), "/admin/comments/1/status", http.StatusNotFound},
		{"store down", map[string]string{"status": "spam"}, fmt.Errorf("%w: db", myErrors.ErrTransportFailure), "/admin/comments/1/status", http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := newTestRouter(&fakeModerationService{setStatusErr: tc.err}, &fakeReportService{})
			w, _ := doJSON(t, r, http.MethodPost, tc.path, tc.body)
			assert.Equal(t, tc.status, w.Code)
		})
	}
}

func TestBulkRoutes(t *testing.T) {
	cases := []struct {
		method string
		path   string
		action enums.BulkAction
	}{
		{http.MethodPost, "/admin/comments/bulk-approve", enums.BulkApprove},
		{http.MethodPost, "/admin/comments/bulk-spam", enums.BulkSpam},
		{http.MethodPost, "/admin/comments/bulk-reject", enums.BulkReject},
		{http.MethodPost, "/admin/comments/bulk-restore", enums.BulkRestore},
		{http.MethodPost, "/admin/comments/bulk-delete", enums.BulkDelete},
		{http.MethodDelete, "/admin/comments/bulk", enums.BulkDelete},
		{http.MethodDelete, "/admin/comments/bulk-delete", enums.BulkDelete},
	}
	for _, tc := range cases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			mod := &fakeModerationService{}
			r := newTestRouter(mod, &fakeReportService{})
			w, env := doJSON(t, r, tc.method, tc.path, map[string][]uint64{"ids": {1, 2, 3}})
			require.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, tc.action, mod.gotAction)
			assert.Equal(t, []uint64{1, 2, 3}, mod.gotIDs)

			var result vo.BulkResultVO
			require.NoError(t, json.Unmarshal(env.Data, &result))
			assert.Equal(t, []uint64{1, 2, 3}, result.Succeeded)
		})
	}
}

func TestBulkDelete_ViaMethodOverride(t *testing.T) {
	mod := &fakeModerationService{}
	r := middleware.MethodOverride(newTestRouter(mod, &fakeReportService{}))

	body, err := json.Marshal(map[string][]uint64{"ids": {1, 2, 3}})
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/admin/comments/bulk-delete", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Test-User", "admin-7")
	req.Header.Set(middleware.MethodOverrideHeader, "DELETE")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, enums.BulkDelete, mod.gotAction)
	assert.Equal(t, []uint64{1, 2, 3}, mod.gotIDs)
}

func TestBulk_EmptySelectionIs400(t *testing.T) {
	mod := &fakeModerationService{bulkErr: myErrors.ErrEmptySelection}
	r := newTestRouter(mod, &fakeReportService{})
	w, _ := doJSON(t, r, http.MethodPost, "/admin/comments/bulk-spam", map[string][]uint64{"ids": {}})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "empty_selection", w.Header().Get(myErrors.ErrorKindHeader))
}

func TestServiceErrors_CarryErrorKind(t *testing.T) {
	cases := []struct {
		err    error
		status int
		kind   string
	}{
		{fmt.Errorf("状态 %q: %w", "trash", myErrors.ErrInvalidStatus), http.StatusUnprocessableEntity, "invalid_status"},
		{myErrors.ErrInvalidTransition, http.StatusUnprocessableEntity, "invalid_transition"},
		{fmt.Errorf("获取评论失败: %w", commonerrors.ErrRepoNotFound), http.StatusNotFound, "not_found"},
		{fmt.Errorf("%w: db", myErrors.ErrTransportFailure), http.StatusInternalServerError, ""},
	}
	for _, tc := range cases {
		t.Run(fmt.Sprint(tc.status, tc.kind), func(t *testing.T) {
			r := newTestRouter(&fakeModerationService{setStatusErr: tc.err}, &fakeReportService{})
			w, _ := doJSON(t, r, http.MethodPost, "/admin/comments/1/status", map[string]string{"status": "spam"})
			assert.Equal(t, tc.status, w.Code)
			assert.Equal(t, tc.kind, w.Header().Get(myErrors.ErrorKindHeader))
		})
	}
}

func TestBulk_RejectsZeroID(t *testing.T) {
	mod := &fakeModerationService{}
	r := newTestRouter(mod, &fakeReportService{})
	w, _ := doJSON(t, r, http.MethodPost, "/admin/comments/bulk-spam", map[string][]uint64{"ids": {0}})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Nil(t, mod.gotIDs, "service must not be reached")
}

func TestSoftDelete(t *testing.T) {
	mod := &fakeModerationService{}
	r := newTestRouter(mod, &fakeReportService{})
	w, env := doJSON(t, r, http.MethodDelete, "/admin/comments/9", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var change vo.DeletionChangeVO
	require.NoError(t, json.Unmarshal(env.Data, &change))
	assert.True(t, change.Changed)
	assert.Equal(t, "admin-7", mod.gotActor)
}

func TestListComments_BindsQuery(t *testing.T) {
	r := newTestRouter(&fakeModerationService{}, &fakeReportService{})

	w, env := doJSON(t, r, http.MethodGet, "/admin/comments?status=spam&deleted_status=all&page=2&page_size=30", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var list vo.CommentListVO
	require.NoError(t, json.Unmarshal(env.Data, &list))
	assert.Equal(t, 2, list.Page)
	assert.Equal(t, 30, list.PageSize)
}

func TestResolveReport_ErrorMapping(t *testing.T) {
	cases := []struct {
		name   string
		body   map[string]string
		err    error
		status int
	}{
		{"resolved", map[string]string{"status": "resolved", "notes": "ok"}, nil, http.StatusOK},
		{"pending outcome", map[string]string{"status": "pending"}, myErrors.ErrInvalidTransition, http.StatusUnprocessableEntity},
		{"unknown outcome", map[string]string{"status": "archived"}, nil, http.StatusUnprocessableEntity},
		{"already resolved", map[string]string{"status": "dismissed"}, myErrors.ErrAlreadyResolved, http.StatusConflict},
		{"not found", map[string]string{"status": "dismissed"}, commonerrors.ErrRepoNotFound, http.StatusNotFound},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := newTestRouter(&fakeModerationService{}, &fakeReportService{err: tc.err})
			w, _ := doJSON(t, r, http.MethodPost, "/admin/comment-reports/5/resolve", tc.body)
			assert.Equal(t, tc.status, w.Code)
		})
	}
}
