package api

import (
	"giftbook/models"

	"github.com/gin-gonic/gin"
)

// MetaHandler 枚举元数据处理器
type MetaHandler struct{}

// NewMetaHandler 创建枚举元数据处理器
func NewMetaHandler() *MetaHandler {
	return &MetaHandler{}
}

// MetaResponse 固定枚举取值，供前端下拉框使用
type MetaResponse struct {
	EventTypes     []string `json:"event_types"`
	Relations      []string `json:"relations"`
	PaymentMethods []string `json:"payment_methods"`
}

// Get 获取枚举取值
// @Summary 获取枚举取值
// @Description 获取活动类型、关系、礼金方式三组固定枚举
// @Tags 元数据
// @Produce json
// @Success 200 {object} Response{data=MetaResponse} "获取成功"
// @Router /api/v1/meta [get]
func (h *MetaHandler) Get(c *gin.Context) {
	Success(c, MetaResponse{
		EventTypes:     models.GetEventTypes(),
		Relations:      models.GetRelations(),
		PaymentMethods: models.GetPaymentMethods(),
	})
}
