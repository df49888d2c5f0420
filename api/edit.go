package api

import (
	"errors"

	"giftbook/database"
	"giftbook/ledger"

	"github.com/gin-gonic/gin"
)

// EditHandler 行内编辑处理器，持有全局唯一的编辑会话。
// 同一时刻最多只有一条记录处于编辑状态；在编辑另一条记录时发起新的编辑，
// 旧草稿会被直接丢弃（以最后一次进入编辑为准）。
type EditHandler struct {
	session *ledger.EditSession
}

// NewEditHandler 创建行内编辑处理器
func NewEditHandler(session *ledger.EditSession) *EditHandler {
	return &EditHandler{session: session}
}

// EditStateResponse 编辑会话状态
type EditStateResponse struct {
	Editing  bool               `json:"editing"`
	RecordID uint               `json:"record_id,omitempty"`
	Draft    ledger.RecordInput `json:"draft"`
	Error    string             `json:"error"`
}

func (h *EditHandler) stateResponse() EditStateResponse {
	recordID, draft, isEditing := h.session.State()
	return EditStateResponse{
		Editing:  isEditing,
		RecordID: recordID,
		Draft:    draft,
		Error:    h.session.Err(),
	}
}

// State 获取编辑会话状态
// @Summary 获取编辑会话状态
// @Tags 行内编辑
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Response{data=EditStateResponse} "获取成功"
// @Router /api/v1/edit [get]
func (h *EditHandler) State(c *gin.Context) {
	Success(c, h.stateResponse())
}

// Start 进入编辑状态
// @Summary 进入编辑状态
// @Description 开始编辑指定记录，草稿以记录当前字段值初始化（关系默认“其他”、礼金方式默认“现金”、随行人数默认 "1"）。若已有记录在编辑，旧草稿被直接替换。
// @Tags 行内编辑
// @Produce json
// @Security BearerAuth
// @Param id path int true "记录ID"
// @Success 200 {object} Response{data=EditStateResponse} "已进入编辑"
// @Failure 401 {object} Response "未授权"
// @Failure 404 {object} Response "记录不存在"
// @Router /api/v1/edit/start/{id} [post]
func (h *EditHandler) Start(c *gin.Context) {
	record, ok := getOwnedRecord(c)
	if !ok {
		return
	}

	replaced, ok := h.session.Start(record)
	if !ok {
		BadRequest(c, "该记录无法编辑")
		return
	}

	resp := gin.H{"state": h.stateResponse()}
	if replaced != 0 {
		// 上一条未保存的草稿已被丢弃
		resp["replaced_record_id"] = replaced
	}
	Success(c, resp)
}

// Draft 更新编辑草稿
// @Summary 更新编辑草稿
// @Description 修改草稿字段。草稿只存在于编辑会话中，保存前不会写入存储。
// @Tags 行内编辑
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body ledger.RecordInput true "草稿字段"
// @Success 200 {object} Response{data=EditStateResponse} "已更新"
// @Failure 400 {object} Response "当前没有正在编辑的记录"
// @Router /api/v1/edit/draft [put]
func (h *EditHandler) Draft(c *gin.Context) {
	var draft ledger.RecordInput
	if err := c.ShouldBindJSON(&draft); err != nil {
		BadRequest(c, SafeErrorMessage(err, "参数错误"))
		return
	}

	if !h.session.SetDraft(draft) {
		BadRequest(c, ledger.ErrNotEditing.Error())
		return
	}
	Success(c, h.stateResponse())
}

// Save 保存编辑
// @Summary 保存编辑
// @Description 校验草稿并写回存储。校验失败时保持编辑状态并返回错误信息，存储不受影响；成功后回到空闲状态。
// @Tags 行内编辑
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Response "保存成功"
// @Failure 400 {object} Response{data=EditStateResponse} "校验失败"
// @Router /api/v1/edit/save [post]
func (h *EditHandler) Save(c *gin.Context) {
	err := h.session.Save(ledger.NewGormStore(database.DB))
	if err != nil {
		if errors.Is(err, ledger.ErrNotEditing) {
			BadRequest(c, err.Error())
			return
		}
		var storeErr *ledger.StoreError
		if errors.As(err, &storeErr) {
			// 存储写入失败属于服务器错误，不作为表单错误展示
			InternalError(c, SafeErrorMessage(err, "保存失败"))
			return
		}
		// 校验失败：会话保持编辑状态，错误信息保留在会话中
		c.JSON(400, Response{
			Code:    400,
			Message: err.Error(),
			Data:    h.stateResponse(),
		})
		return
	}

	SuccessWithMessage(c, "保存成功", h.stateResponse())
}

// Cancel 取消编辑
// @Summary 取消编辑
// @Description 无条件丢弃草稿并清除错误，回到空闲状态
// @Tags 行内编辑
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Response "已取消"
// @Router /api/v1/edit/cancel [post]
func (h *EditHandler) Cancel(c *gin.Context) {
	h.session.Cancel()
	SuccessWithMessage(c, "已取消", h.stateResponse())
}
