package api

import (
	"bytes"
	"net/http/httptest"
	"testing"
	"time"

	"giftbook/config"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setUserIDMiddleware(userID uint) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("userID", userID)
		c.Next()
	}
}

func expectEventQuery(mock sqlmock.Sqlmock) {
	mock.ExpectQuery("SELECT .* FROM `events`").
		WithArgs(1, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "type", "date", "location", "host", "created_at", "updated_at", "deleted_at"}).
			AddRow(1, 1, "婚礼", "2024-10-01", "阳光酒店宴会厅", "张三", time.Now(), time.Now(), nil))
}

func expectRecordsQuery(mock sqlmock.Sqlmock) {
	mock.ExpectQuery("SELECT .* FROM `gift_records`").
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "event_id", "name", "amount", "relation", "companions", "payment_method", "memo", "created_at", "updated_at"}).
			AddRow(1, 1, "张伟", 888.0, "朋友", 2, "现金", "大学同学", time.Now(), time.Now()).
			AddRow(2, 1, "王芳", 600.0, "同事", 1, "转账", nil, time.Now(), time.Now()))
}

func TestExportHandler_ExportCSV(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	expectEventQuery(mock)
	expectRecordsQuery(mock)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(setUserIDMiddleware(1))
	router.GET("/export/csv", NewExportHandler(&config.Config{}).ExportCSV)

	req := httptest.NewRequest("GET", "/export/csv?event_id=1", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/csv")

	body := w.Body.String()
	// BOM 开头，Excel 打开不乱码
	assert.True(t, len(body) > 3 && body[:3] == "\xEF\xBB\xBF")
	assert.Contains(t, body, "序号,姓名,金额,人数")
	assert.Contains(t, body, "张伟")
	assert.Contains(t, body, "王芳")
	// 汇总行：总金额在金额列、总人数在人数列
	assert.Contains(t, body, "总金额,,1488,")
	assert.Contains(t, body, "总人数,,,3")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestExportHandler_ExportCSV_MissingEventID(t *testing.T) {
	router := gin.New()
	router.Use(setUserIDMiddleware(1))
	router.GET("/export/csv", NewExportHandler(&config.Config{}).ExportCSV)

	req := httptest.NewRequest("GET", "/export/csv", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 400, w.Code)
}

func TestExportHandler_ExportCSV_RespectsFilters(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	expectEventQuery(mock)
	expectRecordsQuery(mock)

	router := gin.New()
	router.Use(setUserIDMiddleware(1))
	router.GET("/export/csv", NewExportHandler(&config.Config{}).ExportCSV)

	req := httptest.NewRequest("GET", "/export/csv?event_id=1&relation=朋友", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "张伟")
	assert.NotContains(t, body, "王芳")
	// 汇总随筛选结果变化
	assert.Contains(t, body, "总金额,,888,")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestExportHandler_ExportExcel(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	expectEventQuery(mock)
	expectRecordsQuery(mock)

	router := gin.New()
	router.Use(setUserIDMiddleware(1))
	router.GET("/export/excel", NewExportHandler(&config.Config{}).ExportExcel)

	req := httptest.NewRequest("GET", "/export/excel?event_id=1", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "spreadsheetml")
	// 文件名带活动日期
	assert.Contains(t, w.Header().Get("Content-Disposition"), "礼金簿-2024-10-01.xlsx")
	assert.NotEmpty(t, w.Body.Bytes())
	require.NoError(t, mock.ExpectationsWereMet())
}

// 邮件服务未启用时测试邮件接口按服务器错误处理，不尝试连接 SMTP
func TestExportHandler_SendTestEmail_Disabled(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(setUserIDMiddleware(1))
	router.POST("/export/email/test", NewExportHandler(&config.Config{}).SendTestEmail)

	req := httptest.NewRequest("POST", "/export/email/test", bytes.NewBufferString(`{"to":"a@b.com"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 500, w.Code)
	assert.Contains(t, w.Body.String(), "邮件服务未启用")
}

func TestExportHandler_SendTestEmail_InvalidRecipient(t *testing.T) {
	router := gin.New()
	router.Use(setUserIDMiddleware(1))
	router.POST("/export/email/test", NewExportHandler(&config.Config{}).SendTestEmail)

	req := httptest.NewRequest("POST", "/export/email/test", bytes.NewBufferString(`{"to":"not-an-email"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 400, w.Code)
}

func TestExportHandler_ExportJSON(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	expectEventQuery(mock)
	expectRecordsQuery(mock)

	router := gin.New()
	router.Use(setUserIDMiddleware(1))
	router.GET("/export/json", NewExportHandler(&config.Config{}).ExportJSON)

	req := httptest.NewRequest("GET", "/export/json?event_id=1", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	assert.Contains(t, w.Body.String(), `"total_amount":1488`)
	assert.Contains(t, w.Body.String(), `"total_people":3`)
	require.NoError(t, mock.ExpectationsWereMet())
}
