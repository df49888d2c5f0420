package api

import (
	"errors"
	"strconv"

	"giftbook/database"
	"giftbook/ledger"
	"giftbook/middleware"
	"giftbook/models"

	"github.com/gin-gonic/gin"
)

// InlineHandler 快速录入处理器，持有常驻的录入行草稿。
// 与编辑会话相互独立，可同时使用。
type InlineHandler struct {
	form *ledger.InlineForm
}

// NewInlineHandler 创建快速录入处理器
func NewInlineHandler(form *ledger.InlineForm) *InlineHandler {
	return &InlineHandler{form: form}
}

// InlineStateResponse 快速录入行状态
type InlineStateResponse struct {
	Draft ledger.RecordInput `json:"draft"`
	Error string             `json:"error"`
}

// InlineAddRequest 快速录入请求，只需指定目标活动
type InlineAddRequest struct {
	EventID uint `json:"event_id"`
}

// State 获取快速录入行状态
// @Summary 获取快速录入行状态
// @Tags 快速录入
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Response{data=InlineStateResponse} "获取成功"
// @Router /api/v1/inline [get]
func (h *InlineHandler) State(c *gin.Context) {
	Success(c, InlineStateResponse{
		Draft: h.form.Draft(),
		Error: h.form.Err(),
	})
}

// Draft 更新快速录入草稿
// @Summary 更新快速录入草稿
// @Tags 快速录入
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body ledger.RecordInput true "草稿字段"
// @Success 200 {object} Response{data=InlineStateResponse} "已更新"
// @Router /api/v1/inline/draft [put]
func (h *InlineHandler) Draft(c *gin.Context) {
	var draft ledger.RecordInput
	if err := c.ShouldBindJSON(&draft); err != nil {
		BadRequest(c, SafeErrorMessage(err, "参数错误"))
		return
	}

	h.form.SetDraft(draft)
	Success(c, InlineStateResponse{
		Draft: h.form.Draft(),
		Error: h.form.Err(),
	})
}

// Add 快速录入一条记录
// @Summary 快速录入一条记录
// @Description 校验当前草稿并向指定活动追加记录。未选择活动或校验失败时草稿保持不变、不做任何写入。成功后清空姓名/金额/备注、随行人数复位为 "1"，关系和礼金方式保留为下一条的默认值。
// @Tags 快速录入
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body InlineAddRequest true "目标活动"
// @Success 200 {object} Response{data=models.GiftRecord} "录入成功"
// @Failure 400 {object} Response{data=InlineStateResponse} "未选择活动或校验失败"
// @Failure 404 {object} Response "活动不存在"
// @Router /api/v1/inline/add [post]
func (h *InlineHandler) Add(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)

	var req InlineAddRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "参数错误"))
		return
	}

	// 校验活动归属（event_id 为 0 交给录入行报“请先选择活动”）
	if req.EventID != 0 {
		var event models.Event
		if err := database.DB.Where("id = ? AND user_id = ?", req.EventID, userID).First(&event).Error; err != nil {
			NotFound(c, "活动不存在")
			return
		}
	}

	record, err := h.form.Add(ledger.NewGormStore(database.DB), req.EventID)
	if err != nil {
		var storeErr *ledger.StoreError
		if errors.As(err, &storeErr) {
			// 存储写入失败属于服务器错误，不作为表单错误展示
			InternalError(c, SafeErrorMessage(err, "录入失败"))
			return
		}
		// 未选择活动和校验失败都返回 400，错误信息保留在录入行状态中
		c.JSON(400, Response{
			Code:    400,
			Message: err.Error(),
			Data: InlineStateResponse{
				Draft: h.form.Draft(),
				Error: h.form.Err(),
			},
		})
		return
	}

	SuccessWithMessage(c, "已录入 "+record.Name+"（"+strconv.FormatFloat(record.Amount, 'f', -1, 64)+"）", record)
}
