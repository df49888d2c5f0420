package api

import (
	"fmt"
	"strconv"
	"time"

	"giftbook/database"
	"giftbook/ledger"
	"giftbook/middleware"
	"giftbook/models"

	"github.com/gin-gonic/gin"
)

// RecordHandler 礼金记录处理器
type RecordHandler struct{}

// NewRecordHandler 创建礼金记录处理器
func NewRecordHandler() *RecordHandler {
	return &RecordHandler{}
}

// LedgerViewResponse 名单视图：过滤后的记录加实时汇总
type LedgerViewResponse struct {
	Event   models.Event        `json:"event"`
	Records []models.GiftRecord `json:"records"`
	Totals  ledger.Totals       `json:"totals"`
}

// queryRecords 读取活动的全部记录并按请求参数过滤。
// 每次请求都重新读库、重新计算，保证视图与存储完全一致
func queryRecords(c *gin.Context, eventID uint) ([]models.GiftRecord, error) {
	var records []models.GiftRecord
	if err := database.DB.Where("event_id = ?", eventID).Find(&records).Error; err != nil {
		return nil, err
	}

	search := c.Query("search")
	relationFilter := c.DefaultQuery("relation", ledger.FilterAll)
	paymentFilter := c.DefaultQuery("payment", ledger.FilterAll)

	return ledger.FilterRecords(records, search, relationFilter, paymentFilter), nil
}

// LedgerView 获取名单视图
// @Summary 获取名单视图
// @Description 获取活动的礼金名单。支持搜索词（姓名/备注，忽略大小写）、关系、礼金方式三个筛选条件，返回过滤后的记录和对应的结算汇总。
// @Tags 礼金记录
// @Produce json
// @Security BearerAuth
// @Param id path int true "活动ID"
// @Param search query string false "搜索词"
// @Param relation query string false "关系筛选，all 表示全部" default(all)
// @Param payment query string false "礼金方式筛选，all 表示全部" default(all)
// @Success 200 {object} Response{data=LedgerViewResponse} "获取成功"
// @Failure 401 {object} Response "未授权"
// @Failure 404 {object} Response "活动不存在"
// @Router /api/v1/events/{id}/ledger [get]
func (h *RecordHandler) LedgerView(c *gin.Context) {
	event, ok := getOwnedEvent(c)
	if !ok {
		return
	}

	filtered, err := queryRecords(c, event.ID)
	if err != nil {
		InternalError(c, SafeErrorMessage(err, "查询失败"))
		return
	}

	Success(c, LedgerViewResponse{
		Event:   event,
		Records: filtered,
		Totals:  ledger.ComputeTotals(filtered),
	})
}

// GetStatistics 获取结算汇总
// @Summary 获取结算汇总
// @Description 按当前筛选条件统计总金额、总条数、总人数，以及按关系、按礼金方式的金额分组
// @Tags 礼金记录
// @Produce json
// @Security BearerAuth
// @Param id path int true "活动ID"
// @Param search query string false "搜索词"
// @Param relation query string false "关系筛选" default(all)
// @Param payment query string false "礼金方式筛选" default(all)
// @Success 200 {object} Response{data=ledger.Totals} "获取成功"
// @Failure 401 {object} Response "未授权"
// @Failure 404 {object} Response "活动不存在"
// @Router /api/v1/events/{id}/statistics [get]
func (h *RecordHandler) GetStatistics(c *gin.Context) {
	event, ok := getOwnedEvent(c)
	if !ok {
		return
	}

	filtered, err := queryRecords(c, event.ID)
	if err != nil {
		InternalError(c, SafeErrorMessage(err, "查询失败"))
		return
	}

	Success(c, ledger.ComputeTotals(filtered))
}

// Update 更新礼金记录
// @Summary 更新礼金记录
// @Description 更新记录的可编辑字段（姓名、金额、关系、随行人数、礼金方式、备注）。所属活动和创建时间不可修改。
// @Tags 礼金记录
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "记录ID"
// @Param request body ledger.RecordInput true "记录字段（字符串形式）"
// @Success 200 {object} Response{data=models.GiftRecord} "更新成功"
// @Failure 400 {object} Response "请求参数错误"
// @Failure 401 {object} Response "未授权"
// @Failure 404 {object} Response "记录不存在"
// @Router /api/v1/records/{id} [put]
func (h *RecordHandler) Update(c *gin.Context) {
	record, ok := getOwnedRecord(c)
	if !ok {
		return
	}

	var req ledger.RecordInput
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "参数错误"))
		return
	}

	values, err := ledger.ValidateRecord(req)
	if err != nil {
		BadRequest(c, err.Error())
		return
	}

	store := ledger.NewGormStore(database.DB)
	if err := store.UpdateRecord(record.ID, values); err != nil {
		InternalError(c, SafeErrorMessage(err, "更新失败"))
		return
	}

	// 重新获取更新后的记录
	database.DB.First(&record, record.ID)
	SuccessWithMessage(c, "更新成功", record)
}

// Delete 删除礼金记录
// @Summary 删除礼金记录
// @Description 按 ID 物理删除记录，无确认步骤，不可恢复
// @Tags 礼金记录
// @Produce json
// @Security BearerAuth
// @Param id path int true "记录ID"
// @Success 200 {object} Response "删除成功"
// @Failure 401 {object} Response "未授权"
// @Failure 404 {object} Response "记录不存在"
// @Router /api/v1/records/{id} [delete]
func (h *RecordHandler) Delete(c *gin.Context) {
	record, ok := getOwnedRecord(c)
	if !ok {
		return
	}

	store := ledger.NewGormStore(database.DB)
	if err := store.DeleteRecord(record.ID); err != nil {
		InternalError(c, SafeErrorMessage(err, "删除失败"))
		return
	}

	SuccessWithMessage(c, "删除成功", nil)
}

// ImportRecordsRequest 批量导入请求
type ImportRecordsRequest struct {
	Records []ledger.RecordInput `json:"records" binding:"required"`
}

// Import 批量导入礼金记录
// @Summary 批量导入礼金记录
// @Description 向活动批量追加记录。每行经过与单条录入相同的校验，任意一行不合法则整批拒绝并返回行号和原因。
// @Tags 礼金记录
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "活动ID"
// @Param request body ImportRecordsRequest true "记录数组"
// @Success 200 {object} Response "导入成功"
// @Failure 400 {object} Response "某一行校验失败"
// @Failure 401 {object} Response "未授权"
// @Failure 404 {object} Response "活动不存在"
// @Router /api/v1/events/{id}/records/import [post]
func (h *RecordHandler) Import(c *gin.Context) {
	event, ok := getOwnedEvent(c)
	if !ok {
		return
	}

	var req ImportRecordsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "参数错误"))
		return
	}
	if len(req.Records) == 0 {
		BadRequest(c, "导入内容为空")
		return
	}

	// 先整批校验，再整批写入
	values := make([]ledger.RecordValues, 0, len(req.Records))
	for i, input := range req.Records {
		v, err := ledger.ValidateRecord(input)
		if err != nil {
			BadRequest(c, fmt.Sprintf("第 %d 行: %s", i+1, err.Error()))
			return
		}
		values = append(values, v)
	}

	store := ledger.NewGormStore(database.DB)
	for _, v := range values {
		if _, err := store.CreateRecord(event.ID, v, time.Now()); err != nil {
			InternalError(c, SafeErrorMessage(err, "导入失败"))
			return
		}
	}

	SuccessWithMessage(c, fmt.Sprintf("已导入 %d 条记录", len(values)), gin.H{
		"count": len(values),
	})
}

// getOwnedRecord 解析路径中的记录 ID 并校验其所属活动的归属
func getOwnedRecord(c *gin.Context) (models.GiftRecord, bool) {
	userID := middleware.GetCurrentUserID(c)

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		BadRequest(c, "无效的ID")
		return models.GiftRecord{}, false
	}

	var record models.GiftRecord
	if err := database.DB.
		Joins("JOIN events ON events.id = gift_records.event_id").
		Where("gift_records.id = ? AND events.user_id = ?", id, userID).
		First(&record).Error; err != nil {
		NotFound(c, "记录不存在")
		return models.GiftRecord{}, false
	}
	return record, true
}
