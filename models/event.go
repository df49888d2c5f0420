package models

import (
	"time"

	"gorm.io/gorm"
)

// Event 活动模型（婚礼、丧事等一场需要记录礼金的活动）
type Event struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	UserID    uint           `json:"user_id" gorm:"index;not null"`
	Type      string         `json:"type" gorm:"size:20;not null"`
	Date      string         `json:"date" gorm:"size:10;not null"` // 活动日期，格式 2006-01-02
	Location  string         `json:"location" gorm:"size:100;not null"`
	Host      string         `json:"host" gorm:"size:50;not null"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
	User      User           `json:"-" gorm:"foreignKey:UserID"`
}

// TableName 设置表名
func (Event) TableName() string {
	return "events"
}

// EventType 活动类型常量
const (
	EventTypeWedding  = "婚礼"
	EventTypeFuneral  = "丧事"
	EventTypeFullMoon = "满月酒"
	EventTypeBirthday = "生日"
	EventTypeOther    = "其他"
)

// GetEventTypes 获取所有活动类型
func GetEventTypes() []string {
	return []string{
		EventTypeWedding,
		EventTypeFuneral,
		EventTypeFullMoon,
		EventTypeBirthday,
		EventTypeOther,
	}
}

// IsValidEventType 判断活动类型是否合法
func IsValidEventType(t string) bool {
	for _, v := range GetEventTypes() {
		if v == t {
			return true
		}
	}
	return false
}
