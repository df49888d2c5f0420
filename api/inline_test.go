package api

import (
	"encoding/json"
	"errors"
	"testing"

	"giftbook/config"
	"giftbook/ledger"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupInlineRouter(form *ledger.InlineForm) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(setUserIDMiddleware(1))
	h := NewInlineHandler(form)
	router.GET("/inline", h.State)
	router.PUT("/inline/draft", h.Draft)
	router.POST("/inline/add", h.Add)
	return router
}

func TestInlineHandler_StateDefaults(t *testing.T) {
	router := setupInlineRouter(ledger.NewInlineForm())

	w := doJSON(router, "GET", "/inline", "")
	assert.Equal(t, 200, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	draft := data["draft"].(map[string]interface{})
	assert.Equal(t, "其他", draft["relation"])
	assert.Equal(t, "现金", draft["payment_method"])
	assert.Equal(t, "1", draft["companions"])
}

func TestInlineHandler_Add(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	form := ledger.NewInlineForm()
	router := setupInlineRouter(form)

	w := doJSON(router, "PUT", "/inline/draft", `{"name":"张伟","amount":"888","relation":"朋友","companions":"2","payment_method":"转账","memo":"大学同学"}`)
	assert.Equal(t, 200, w.Code)

	expectEventQuery(mock)
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `gift_records`").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	w = doJSON(router, "POST", "/inline/add", `{"event_id":1}`)
	assert.Equal(t, 200, w.Code)

	// 成功后清空姓名/金额/备注，保留关系和方式
	draft := form.Draft()
	assert.Empty(t, draft.Name)
	assert.Empty(t, draft.Amount)
	assert.Empty(t, draft.Memo)
	assert.Equal(t, "朋友", draft.Relation)
	assert.Equal(t, "转账", draft.PaymentMethod)
	assert.Equal(t, "1", draft.Companions)
	require.NoError(t, mock.ExpectationsWereMet())
}

// 未选择活动：400，草稿原样保留
func TestInlineHandler_Add_NoEventSelected(t *testing.T) {
	form := ledger.NewInlineForm()
	form.SetDraft(ledger.RecordInput{Name: "张伟", Amount: "888", Relation: "朋友", Companions: "1", PaymentMethod: "现金"})
	router := setupInlineRouter(form)

	w := doJSON(router, "POST", "/inline/add", `{"event_id":0}`)
	assert.Equal(t, 400, w.Code)
	assert.Contains(t, w.Body.String(), "请先选择活动")

	draft := form.Draft()
	assert.Equal(t, "张伟", draft.Name)
	assert.Equal(t, "888", draft.Amount)
}

func TestInlineHandler_Add_ValidationFailureKeepsDraft(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	form := ledger.NewInlineForm()
	form.SetDraft(ledger.RecordInput{Name: "", Amount: "888", Relation: "朋友", Companions: "1", PaymentMethod: "现金"})
	router := setupInlineRouter(form)

	expectEventQuery(mock)

	w := doJSON(router, "POST", "/inline/add", `{"event_id":1}`)
	assert.Equal(t, 400, w.Code)
	assert.Contains(t, w.Body.String(), "请输入姓名")

	// 校验失败不清空草稿
	draft := form.Draft()
	assert.Equal(t, "888", draft.Amount)
	assert.Equal(t, "请输入姓名", form.Err())
	require.NoError(t, mock.ExpectationsWereMet())
}

// 存储写入失败按服务器错误处理：500、release 模式不暴露数据库错误、
// 草稿保留、表单错误保持为空
func TestInlineHandler_Add_StoreFailure(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	config.GlobalConfig = &config.Config{Server: config.ServerConfig{Mode: "release"}}
	defer func() { config.GlobalConfig = nil }()

	form := ledger.NewInlineForm()
	form.SetDraft(ledger.RecordInput{Name: "张伟", Amount: "888", Relation: "朋友", Companions: "1", PaymentMethod: "现金"})
	router := setupInlineRouter(form)

	expectEventQuery(mock)
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `gift_records`").
		WillReturnError(errors.New("disk I/O error"))
	mock.ExpectRollback()

	w := doJSON(router, "POST", "/inline/add", `{"event_id":1}`)
	assert.Equal(t, 500, w.Code)
	assert.NotContains(t, w.Body.String(), "disk I/O error")
	assert.Contains(t, w.Body.String(), "录入失败")

	draft := form.Draft()
	assert.Equal(t, "张伟", draft.Name)
	assert.Empty(t, form.Err())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestInlineHandler_Add_EventNotOwned(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	router := setupInlineRouter(ledger.NewInlineForm())

	mock.ExpectQuery("SELECT .* FROM `events`").
		WithArgs(99, 1).
		WillReturnRows(sqlmock.NewRows([]string{}))

	w := doJSON(router, "POST", "/inline/add", `{"event_id":99}`)
	assert.Equal(t, 404, w.Code)
	require.NoError(t, mock.ExpectationsWereMet())
}
