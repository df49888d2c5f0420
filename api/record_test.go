package api

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func expectOwnedRecordQuery(mock sqlmock.Sqlmock, recordID int) {
	mock.ExpectQuery("SELECT .* FROM `gift_records`").
		WithArgs(recordID, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "event_id", "name", "amount", "relation", "companions", "payment_method", "memo", "created_at", "updated_at"}).
			AddRow(recordID, 1, "张伟", 888.0, "朋友", 2, "现金", "大学同学", time.Now(), time.Now()))
}

func TestRecordHandler_LedgerView(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	expectEventQuery(mock)
	expectRecordsQuery(mock)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(setUserIDMiddleware(1))
	router.GET("/events/:id/ledger", NewRecordHandler().LedgerView)

	req := httptest.NewRequest("GET", "/events/1/ledger", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	records := data["records"].([]interface{})
	assert.Len(t, records, 2)
	totals := data["totals"].(map[string]interface{})
	assert.Equal(t, 1488.0, totals["total_amount"])
	assert.Equal(t, float64(3), totals["total_people"])
	require.NoError(t, mock.ExpectationsWereMet())
}

// 筛选条件作用于返回的记录和汇总
func TestRecordHandler_LedgerView_Filtered(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	expectEventQuery(mock)
	expectRecordsQuery(mock)

	router := gin.New()
	router.Use(setUserIDMiddleware(1))
	router.GET("/events/:id/ledger", NewRecordHandler().LedgerView)

	req := httptest.NewRequest("GET", "/events/1/ledger?search=同学", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	records := data["records"].([]interface{})
	require.Len(t, records, 1)
	totals := data["totals"].(map[string]interface{})
	assert.Equal(t, 888.0, totals["total_amount"])
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRecordHandler_LedgerView_EventNotFound(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectQuery("SELECT .* FROM `events`").
		WithArgs(99, 1).
		WillReturnRows(sqlmock.NewRows([]string{}))

	router := gin.New()
	router.Use(setUserIDMiddleware(1))
	router.GET("/events/:id/ledger", NewRecordHandler().LedgerView)

	req := httptest.NewRequest("GET", "/events/99/ledger", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 404, w.Code)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRecordHandler_Update(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	expectOwnedRecordQuery(mock, 5)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `gift_records`").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	// 更新成功后重新读取记录
	mock.ExpectQuery("SELECT .* FROM `gift_records`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "event_id", "name", "amount", "relation", "companions", "payment_method", "memo", "created_at", "updated_at"}).
			AddRow(5, 1, "张伟", 1000.0, "朋友", 3, "转账", nil, time.Now(), time.Now()))

	router := gin.New()
	router.Use(setUserIDMiddleware(1))
	router.PUT("/records/:id", NewRecordHandler().Update)

	body := `{"name":"张伟","amount":"1000","relation":"朋友","companions":"3","payment_method":"转账"}`
	req := httptest.NewRequest("PUT", "/records/5", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "更新成功", resp["message"])
	require.NoError(t, mock.ExpectationsWereMet())
}

// 校验失败：不发起任何写入
func TestRecordHandler_Update_ValidationFailure(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	expectOwnedRecordQuery(mock, 5)

	router := gin.New()
	router.Use(setUserIDMiddleware(1))
	router.PUT("/records/:id", NewRecordHandler().Update)

	body := `{"name":"张伟","amount":"abc"}`
	req := httptest.NewRequest("PUT", "/records/5", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 400, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "请输入金额", resp["message"])
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRecordHandler_Delete(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	expectOwnedRecordQuery(mock, 5)

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM `gift_records`").
		WithArgs(5).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	router := gin.New()
	router.Use(setUserIDMiddleware(1))
	router.DELETE("/records/:id", NewRecordHandler().Delete)

	req := httptest.NewRequest("DELETE", "/records/5", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "删除成功", resp["message"])
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRecordHandler_Delete_NotOwned(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectQuery("SELECT .* FROM `gift_records`").
		WithArgs(5, 1).
		WillReturnRows(sqlmock.NewRows([]string{}))

	router := gin.New()
	router.Use(setUserIDMiddleware(1))
	router.DELETE("/records/:id", NewRecordHandler().Delete)

	req := httptest.NewRequest("DELETE", "/records/5", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 404, w.Code)
	require.NoError(t, mock.ExpectationsWereMet())
}

// 批量导入：任意一行不合法则整批拒绝，返回行号
func TestRecordHandler_Import_RowValidationFailure(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	expectEventQuery(mock)

	router := gin.New()
	router.Use(setUserIDMiddleware(1))
	router.POST("/events/:id/records/import", NewRecordHandler().Import)

	body := `{"records":[
		{"name":"张伟","amount":"888"},
		{"name":"王芳","amount":"abc"}
	]}`
	req := httptest.NewRequest("POST", "/events/1/records/import", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 400, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "第 2 行: 请输入金额", resp["message"])
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRecordHandler_Import(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	expectEventQuery(mock)

	for i := 0; i < 2; i++ {
		mock.ExpectBegin()
		mock.ExpectExec("INSERT INTO `gift_records`").
			WillReturnResult(sqlmock.NewResult(int64(i+1), 1))
		mock.ExpectCommit()
	}

	router := gin.New()
	router.Use(setUserIDMiddleware(1))
	router.POST("/events/:id/records/import", NewRecordHandler().Import)

	body := `{"records":[
		{"name":"张伟","amount":"888","relation":"朋友"},
		{"name":"王芳","amount":"600","payment_method":"转账"}
	]}`
	req := httptest.NewRequest("POST", "/events/1/records/import", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "已导入 2 条记录", resp["message"])
	require.NoError(t, mock.ExpectationsWereMet())
}
