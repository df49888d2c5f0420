package api

import (
	"strconv"

	"giftbook/database"
	"giftbook/ledger"
	"giftbook/middleware"
	"giftbook/models"

	"github.com/gin-gonic/gin"
)

// EventHandler 活动处理器
type EventHandler struct{}

// NewEventHandler 创建活动处理器
func NewEventHandler() *EventHandler {
	return &EventHandler{}
}

// CreateEventRequest 创建活动请求，字段均为字符串，由校验层做规范化
type CreateEventRequest struct {
	Type     string `json:"type" example:"婚礼"`
	Date     string `json:"date" example:"2024-10-01"`
	Location string `json:"location" example:"阳光酒店宴会厅"`
	Host     string `json:"host" example:"张三"`
}

// Create 创建活动
// @Summary 创建活动
// @Description 创建一场需要记录礼金的活动。类型必须为固定取值之一，日期、地点、主办人均必填。
// @Tags 活动
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateEventRequest true "活动信息"
// @Success 200 {object} Response{data=models.Event} "创建成功"
// @Failure 400 {object} Response "请求参数错误"
// @Failure 401 {object} Response "未授权"
// @Router /api/v1/events [post]
func (h *EventHandler) Create(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)

	var req CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "参数错误"))
		return
	}

	values, err := ledger.ValidateEvent(ledger.EventInput{
		Type:     req.Type,
		Date:     req.Date,
		Location: req.Location,
		Host:     req.Host,
	})
	if err != nil {
		BadRequest(c, err.Error())
		return
	}

	event := models.Event{
		UserID:   userID,
		Type:     values.Type,
		Date:     values.Date,
		Location: values.Location,
		Host:     values.Host,
	}

	if err := database.DB.Create(&event).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "创建活动失败"))
		return
	}

	SuccessWithMessage(c, "创建成功", event)
}

// List 获取活动列表
// @Summary 获取活动列表
// @Description 获取当前用户的全部活动，按创建顺序返回
// @Tags 活动
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Response{data=[]models.Event} "获取成功"
// @Failure 401 {object} Response "未授权"
// @Router /api/v1/events [get]
func (h *EventHandler) List(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)

	var events []models.Event
	if err := database.DB.Where("user_id = ?", userID).Order("id ASC").Find(&events).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "查询失败"))
		return
	}

	Success(c, events)
}

// Get 获取单场活动
// @Summary 获取单场活动
// @Tags 活动
// @Produce json
// @Security BearerAuth
// @Param id path int true "活动ID"
// @Success 200 {object} Response{data=models.Event} "获取成功"
// @Failure 401 {object} Response "未授权"
// @Failure 404 {object} Response "活动不存在"
// @Router /api/v1/events/{id} [get]
func (h *EventHandler) Get(c *gin.Context) {
	event, ok := getOwnedEvent(c)
	if !ok {
		return
	}
	Success(c, event)
}

// getOwnedEvent 解析路径中的活动 ID 并校验归属，失败时已写入响应
func getOwnedEvent(c *gin.Context) (models.Event, bool) {
	userID := middleware.GetCurrentUserID(c)

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		BadRequest(c, "无效的ID")
		return models.Event{}, false
	}

	var event models.Event
	if err := database.DB.Where("id = ? AND user_id = ?", id, userID).First(&event).Error; err != nil {
		NotFound(c, "活动不存在")
		return models.Event{}, false
	}
	return event, true
}
