package api

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"net/http"
	"strconv"

	"giftbook/config"
	"giftbook/database"
	"giftbook/ledger"
	"giftbook/middleware"
	"giftbook/models"
	"giftbook/service"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

// ExportHandler 导出处理器
type ExportHandler struct {
	emailService *service.EmailService
}

// NewExportHandler 创建导出处理器
func NewExportHandler(cfg *config.Config) *ExportHandler {
	return &ExportHandler{
		emailService: service.NewEmailService(&cfg.Email),
	}
}

// exportSheetName 导出工作表名称
const exportSheetName = "名单"

// exportHeaders 导出列：序号、姓名、金额、人数
var exportHeaders = []string{"序号", "姓名", "金额", "人数"}

// loadExportData 按 event_id 查询参数定位活动并应用当前筛选条件。
// 导出内容必须与名单视图看到的过滤结果和汇总完全一致
func (h *ExportHandler) loadExportData(c *gin.Context) (models.Event, []models.GiftRecord, ledger.Totals, bool) {
	userID := middleware.GetCurrentUserID(c)

	eventID, err := strconv.ParseUint(c.Query("event_id"), 10, 32)
	if err != nil || eventID == 0 {
		BadRequest(c, "请提供活动ID")
		return models.Event{}, nil, ledger.Totals{}, false
	}

	var event models.Event
	if err := database.DB.Where("id = ? AND user_id = ?", eventID, userID).First(&event).Error; err != nil {
		NotFound(c, "活动不存在")
		return models.Event{}, nil, ledger.Totals{}, false
	}

	filtered, err := queryRecords(c, event.ID)
	if err != nil {
		InternalError(c, SafeErrorMessage(err, "查询失败"))
		return models.Event{}, nil, ledger.Totals{}, false
	}

	return event, filtered, ledger.ComputeTotals(filtered), true
}

// buildExcel 生成带样式的 Excel 工作簿：名单区 A1:D{n}，
// 汇总区固定在 F3:G4（总金额、总人数）
func buildExcel(records []models.GiftRecord, totals ledger.Totals) (*excelize.File, error) {
	f := excelize.NewFile()
	f.SetSheetName("Sheet1", exportSheetName)

	// 表头样式
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 12, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"4F81BD"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border: []excelize.Border{
			{Type: "left", Color: "000000", Style: 1},
			{Type: "top", Color: "000000", Style: 1},
			{Type: "bottom", Color: "000000", Style: 1},
			{Type: "right", Color: "000000", Style: 1},
		},
	})
	if err != nil {
		return nil, err
	}

	// 数据样式
	dataStyle, err := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border: []excelize.Border{
			{Type: "left", Color: "CBD5E1", Style: 1},
			{Type: "top", Color: "CBD5E1", Style: 1},
			{Type: "bottom", Color: "CBD5E1", Style: 1},
			{Type: "right", Color: "CBD5E1", Style: 1},
		},
	})
	if err != nil {
		return nil, err
	}

	// 设置列宽
	f.SetColWidth(exportSheetName, "A", "A", 6)
	f.SetColWidth(exportSheetName, "B", "B", 14)
	f.SetColWidth(exportSheetName, "C", "C", 12)
	f.SetColWidth(exportSheetName, "D", "D", 8)
	f.SetColWidth(exportSheetName, "E", "E", 4)
	f.SetColWidth(exportSheetName, "F", "F", 10)
	f.SetColWidth(exportSheetName, "G", "G", 12)

	// 写入表头
	for i, header := range exportHeaders {
		cell := fmt.Sprintf("%c1", 'A'+i)
		f.SetCellValue(exportSheetName, cell, header)
		f.SetCellStyle(exportSheetName, cell, cell, headerStyle)
	}

	// 写入名单
	for i := range records {
		record := &records[i]
		row := i + 2
		f.SetCellValue(exportSheetName, fmt.Sprintf("A%d", row), i+1)
		f.SetCellValue(exportSheetName, fmt.Sprintf("B%d", row), record.Name)
		f.SetCellValue(exportSheetName, fmt.Sprintf("C%d", row), record.Amount)
		f.SetCellValue(exportSheetName, fmt.Sprintf("D%d", row), record.CompanionsOrDefault())
		f.SetCellStyle(exportSheetName, fmt.Sprintf("A%d", row), fmt.Sprintf("D%d", row), dataStyle)
	}

	// 汇总区固定在 F3:G4
	f.SetCellValue(exportSheetName, "F3", "总金额")
	f.SetCellValue(exportSheetName, "G3", totals.TotalAmount)
	f.SetCellValue(exportSheetName, "F4", "总人数")
	f.SetCellValue(exportSheetName, "G4", totals.TotalPeople)
	f.SetCellStyle(exportSheetName, "F3", "G4", dataStyle)

	return f, nil
}

// ExportExcel 导出名单为 Excel
// @Summary 导出名单为 Excel
// @Description 按当前筛选条件把名单和汇总导出为带样式的 xlsx 文件，文件名含活动日期
// @Tags 导出
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security BearerAuth
// @Param event_id query int true "活动ID"
// @Param search query string false "搜索词"
// @Param relation query string false "关系筛选" default(all)
// @Param payment query string false "礼金方式筛选" default(all)
// @Success 200 {file} file "Excel 文件"
// @Failure 400 {object} Response "请求参数错误"
// @Failure 401 {object} Response "未授权"
// @Failure 404 {object} Response "活动不存在"
// @Router /api/v1/export/excel [get]
func (h *ExportHandler) ExportExcel(c *gin.Context) {
	event, records, totals, ok := h.loadExportData(c)
	if !ok {
		return
	}

	f, err := buildExcel(records, totals)
	if err != nil {
		InternalError(c, SafeErrorMessage(err, "生成 Excel 失败"))
		return
	}
	defer f.Close()

	filename := fmt.Sprintf("礼金簿-%s.xlsx", event.Date)
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename*=UTF-8''%s", filename))

	if err := f.Write(c.Writer); err != nil {
		InternalError(c, SafeErrorMessage(err, "生成 Excel 失败"))
		return
	}
}

// csvRows 生成 CSV 行：表头、名单、空行、总金额行、总人数行。
// 汇总行与名单共用列：总金额写在“金额”列，总人数写在“人数”列
func csvRows(records []models.GiftRecord, totals ledger.Totals) [][]string {
	rows := [][]string{exportHeaders}
	for i := range records {
		record := &records[i]
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			record.Name,
			strconv.FormatFloat(record.Amount, 'f', -1, 64),
			strconv.Itoa(record.CompanionsOrDefault()),
		})
	}
	rows = append(rows,
		[]string{"", "", "", ""},
		[]string{"总金额", "", strconv.FormatFloat(totals.TotalAmount, 'f', -1, 64), ""},
		[]string{"总人数", "", "", strconv.Itoa(totals.TotalPeople)},
	)
	return rows
}

// ExportCSV 导出名单为 CSV
// @Summary 导出名单为 CSV
// @Description 按当前筛选条件把名单和汇总导出为 CSV 文件
// @Tags 导出
// @Produce text/csv
// @Security BearerAuth
// @Param event_id query int true "活动ID"
// @Param search query string false "搜索词"
// @Param relation query string false "关系筛选" default(all)
// @Param payment query string false "礼金方式筛选" default(all)
// @Success 200 {file} file "CSV 文件"
// @Failure 400 {object} Response "请求参数错误"
// @Failure 401 {object} Response "未授权"
// @Failure 404 {object} Response "活动不存在"
// @Router /api/v1/export/csv [get]
func (h *ExportHandler) ExportCSV(c *gin.Context) {
	event, records, totals, ok := h.loadExportData(c)
	if !ok {
		return
	}

	buf := new(bytes.Buffer)
	// 添加 BOM 以支持 Excel 中文显示
	buf.WriteString("\xEF\xBB\xBF")

	writer := csv.NewWriter(buf)
	for _, row := range csvRows(records, totals) {
		if err := writer.Write(row); err != nil {
			InternalError(c, "生成 CSV 失败")
			return
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		InternalError(c, "生成 CSV 失败")
		return
	}

	filename := fmt.Sprintf("礼金簿-%s.csv", event.Date)
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename*=UTF-8''%s", filename))
	c.Header("Content-Length", fmt.Sprintf("%d", buf.Len()))

	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

// ExportJSON 导出名单为 JSON
// @Summary 导出名单为 JSON
// @Description 按当前筛选条件导出名单和汇总的 JSON 形式
// @Tags 导出
// @Produce json
// @Security BearerAuth
// @Param event_id query int true "活动ID"
// @Param search query string false "搜索词"
// @Param relation query string false "关系筛选" default(all)
// @Param payment query string false "礼金方式筛选" default(all)
// @Success 200 {object} Response{data=LedgerViewResponse} "导出成功"
// @Failure 400 {object} Response "请求参数错误"
// @Failure 401 {object} Response "未授权"
// @Router /api/v1/export/json [get]
func (h *ExportHandler) ExportJSON(c *gin.Context) {
	event, records, totals, ok := h.loadExportData(c)
	if !ok {
		return
	}

	Success(c, LedgerViewResponse{
		Event:   event,
		Records: records,
		Totals:  totals,
	})
}

// SendTestEmailRequest 测试邮件请求
type SendTestEmailRequest struct {
	To string `json:"to" binding:"required,email"`
}

// SendTestEmail 发送测试邮件
// @Summary 发送测试邮件
// @Description 向指定邮箱发送一封测试邮件，用于验证 SMTP 配置是否正确
// @Tags 导出
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body SendTestEmailRequest true "收件人"
// @Success 200 {object} Response "发送成功"
// @Failure 400 {object} Response "请求参数错误"
// @Failure 500 {object} Response "邮件服务未启用或发送失败"
// @Router /api/v1/export/email/test [post]
func (h *ExportHandler) SendTestEmail(c *gin.Context) {
	var req SendTestEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "参数错误"))
		return
	}

	if err := h.emailService.SendTestEmail(req.To); err != nil {
		InternalError(c, SafeErrorMessage(err, "发送邮件失败"))
		return
	}

	SuccessWithMessage(c, "测试邮件已发送", nil)
}

// SendEmailRequest 邮件导出请求
type SendEmailRequest struct {
	EventID  uint   `json:"event_id" binding:"required"`
	To       string `json:"to" binding:"required,email"`
	Search   string `json:"search"`
	Relation string `json:"relation"`
	Payment  string `json:"payment"`
}

// SendEmail 将名单 Excel 作为附件发送到指定邮箱
// @Summary 邮件发送名单
// @Description 按筛选条件生成 Excel 并作为附件发送到指定邮箱，需要在配置中启用邮件服务
// @Tags 导出
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body SendEmailRequest true "收件人与筛选条件"
// @Success 200 {object} Response "发送成功"
// @Failure 400 {object} Response "请求参数错误或邮件服务未启用"
// @Failure 401 {object} Response "未授权"
// @Failure 404 {object} Response "活动不存在"
// @Router /api/v1/export/email [post]
func (h *ExportHandler) SendEmail(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)

	var req SendEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "参数错误"))
		return
	}

	var event models.Event
	if err := database.DB.Where("id = ? AND user_id = ?", req.EventID, userID).First(&event).Error; err != nil {
		NotFound(c, "活动不存在")
		return
	}

	var records []models.GiftRecord
	if err := database.DB.Where("event_id = ?", event.ID).Find(&records).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "查询失败"))
		return
	}

	relationFilter := req.Relation
	if relationFilter == "" {
		relationFilter = ledger.FilterAll
	}
	paymentFilter := req.Payment
	if paymentFilter == "" {
		paymentFilter = ledger.FilterAll
	}
	filtered := ledger.FilterRecords(records, req.Search, relationFilter, paymentFilter)
	totals := ledger.ComputeTotals(filtered)

	f, err := buildExcel(filtered, totals)
	if err != nil {
		InternalError(c, SafeErrorMessage(err, "生成 Excel 失败"))
		return
	}
	defer f.Close()

	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		InternalError(c, SafeErrorMessage(err, "生成 Excel 失败"))
		return
	}

	filename := fmt.Sprintf("礼金簿-%s.xlsx", event.Date)
	if err := h.emailService.SendLedgerExport(req.To, &event, filename, buf.Bytes()); err != nil {
		InternalError(c, SafeErrorMessage(err, "发送邮件失败"))
		return
	}

	SuccessWithMessage(c, "发送成功", nil)
}
