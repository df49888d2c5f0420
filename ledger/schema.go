package ledger

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"giftbook/models"
)

// RecordInput 礼金记录的原始输入，全部为字符串形式（对应表单字段）
type RecordInput struct {
	Name          string `json:"name"`
	Amount        string `json:"amount"`
	Relation      string `json:"relation"`
	Companions    string `json:"companions"`
	PaymentMethod string `json:"payment_method"`
	Memo          string `json:"memo"`
}

// RecordValues 校验通过后的规范化值，可选字段为空时为 nil
type RecordValues struct {
	Name          string
	Amount        float64
	Relation      *string
	Companions    int
	PaymentMethod *string
	Memo          *string
}

// EventInput 活动创建的原始输入
type EventInput struct {
	Type     string `json:"type"`
	Date     string `json:"date"`
	Location string `json:"location"`
	Host     string `json:"host"`
}

// EventValues 校验通过后的活动字段
type EventValues struct {
	Type     string
	Date     string
	Location string
	Host     string
}

// ValidateRecord 校验并规范化一条礼金记录输入。
// 按字段声明顺序（姓名 → 金额 → 关系 → 随行人数 → 礼金方式 → 备注）返回
// 第一个不满足约束的错误信息。
//
// 规范化规则：金额由字符串转为数字，空串视为缺失；随行人数空串默认 1，
// 必须为大于等于 0 的整数；关系、礼金方式、备注为空时置为 nil。
func ValidateRecord(in RecordInput) (RecordValues, error) {
	var out RecordValues

	if strings.TrimSpace(in.Name) == "" {
		return out, errors.New("请输入姓名")
	}
	out.Name = in.Name

	// 金额：缺失、非数字、小于 1 均视为未正确填写
	amountStr := strings.TrimSpace(in.Amount)
	if amountStr == "" {
		return out, errors.New("请输入金额")
	}
	amount, err := strconv.ParseFloat(amountStr, 64)
	if err != nil || math.IsNaN(amount) || math.IsInf(amount, 0) || amount < 1 {
		return out, errors.New("请输入金额")
	}
	out.Amount = amount

	if relation := strings.TrimSpace(in.Relation); relation != "" {
		if !models.IsValidRelation(relation) {
			return out, errors.New("无效的关系类型")
		}
		out.Relation = &relation
	}

	// 随行人数：空串默认 1
	companionsStr := strings.TrimSpace(in.Companions)
	if companionsStr == "" {
		out.Companions = 1
	} else {
		companions, err := strconv.Atoi(companionsStr)
		if err != nil || companions < 0 {
			return out, errors.New("随行人数必须是大于等于0的整数")
		}
		out.Companions = companions
	}

	if method := strings.TrimSpace(in.PaymentMethod); method != "" {
		if !models.IsValidPaymentMethod(method) {
			return out, errors.New("无效的礼金方式")
		}
		out.PaymentMethod = &method
	}

	if memo := strings.TrimSpace(in.Memo); memo != "" {
		out.Memo = &memo
	}

	return out, nil
}

// ValidateEvent 校验活动创建输入，按字段顺序返回第一个错误
func ValidateEvent(in EventInput) (EventValues, error) {
	var out EventValues

	eventType := strings.TrimSpace(in.Type)
	if eventType == "" {
		return out, errors.New("请选择活动类型")
	}
	if !models.IsValidEventType(eventType) {
		return out, errors.New("无效的活动类型")
	}
	out.Type = eventType

	if strings.TrimSpace(in.Date) == "" {
		return out, errors.New("请输入活动日期")
	}
	out.Date = strings.TrimSpace(in.Date)

	if strings.TrimSpace(in.Location) == "" {
		return out, errors.New("请输入活动地点")
	}
	out.Location = in.Location

	if strings.TrimSpace(in.Host) == "" {
		return out, errors.New("请输入主办人姓名")
	}
	out.Host = in.Host

	return out, nil
}
