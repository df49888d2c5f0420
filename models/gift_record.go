package models

import (
	"time"
)

// GiftRecord 礼金记录模型，一条记录对应一位随礼人。
// 删除为物理删除，不保留软删除标记。
type GiftRecord struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	EventID       uint      `json:"event_id" gorm:"index;not null"`
	Name          string    `json:"name" gorm:"size:50;not null"`
	Amount        float64   `json:"amount" gorm:"type:decimal(10,2);not null"`
	Relation      *string   `json:"relation,omitempty" gorm:"size:20"`       // 与主办人的关系，NULL 表示未填写
	Companions    *int      `json:"companions,omitempty"`                    // 随行人数（含本人），NULL 按 1 计
	PaymentMethod *string   `json:"payment_method,omitempty" gorm:"size:20"` // 礼金方式，NULL 表示未填写
	Memo          *string   `json:"memo,omitempty" gorm:"size:255"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
	Event         Event     `json:"-" gorm:"foreignKey:EventID"`
}

// TableName 设置表名
func (GiftRecord) TableName() string {
	return "gift_records"
}

// CompanionsOrDefault 随行人数，未填写按 1 计
func (r *GiftRecord) CompanionsOrDefault() int {
	if r.Companions == nil {
		return 1
	}
	return *r.Companions
}

// Relation 关系常量
const (
	RelationFriend       = "朋友"
	RelationColleague    = "同事"
	RelationFamily       = "家人"
	RelationAcquaintance = "熟人"
	RelationNeighbor     = "邻居"
	RelationOther        = "其他"
)

// PaymentMethod 礼金方式常量
const (
	PaymentCash     = "现金"
	PaymentTransfer = "转账"
	PaymentCard     = "刷卡"
	PaymentMobile   = "移动支付"
	PaymentOther    = "其他"
)

// GetRelations 获取所有关系类型
func GetRelations() []string {
	return []string{
		RelationFriend,
		RelationColleague,
		RelationFamily,
		RelationAcquaintance,
		RelationNeighbor,
		RelationOther,
	}
}

// GetPaymentMethods 获取所有礼金方式
func GetPaymentMethods() []string {
	return []string{
		PaymentCash,
		PaymentTransfer,
		PaymentCard,
		PaymentMobile,
		PaymentOther,
	}
}

// IsValidRelation 判断关系类型是否合法
func IsValidRelation(r string) bool {
	for _, v := range GetRelations() {
		if v == r {
			return true
		}
	}
	return false
}

// IsValidPaymentMethod 判断礼金方式是否合法
func IsValidPaymentMethod(m string) bool {
	for _, v := range GetPaymentMethods() {
		if v == m {
			return true
		}
	}
	return false
}
