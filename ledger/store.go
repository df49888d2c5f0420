package ledger

import (
	"time"

	"giftbook/models"

	"gorm.io/gorm"
)

// StoreError 包装存储写入失败，与校验错误区分开：
// 校验错误属于表单交互的一部分，存储失败属于异常情况
type StoreError struct {
	Err error
}

func (e *StoreError) Error() string { return e.Err.Error() }

func (e *StoreError) Unwrap() error { return e.Err }

// GormStore 基于 gorm 的记录存储实现
type GormStore struct {
	db *gorm.DB
}

// NewGormStore 创建存储实现
func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

// CreateRecord 向指定活动追加一条记录，返回带主键的完整记录
func (s *GormStore) CreateRecord(eventID uint, values RecordValues, createdAt time.Time) (models.GiftRecord, error) {
	companions := values.Companions
	record := models.GiftRecord{
		EventID:       eventID,
		Name:          values.Name,
		Amount:        values.Amount,
		Relation:      values.Relation,
		Companions:    &companions,
		PaymentMethod: values.PaymentMethod,
		Memo:          values.Memo,
		CreatedAt:     createdAt,
	}
	if err := s.db.Create(&record).Error; err != nil {
		return models.GiftRecord{}, err
	}
	return record, nil
}

// UpdateRecord 按 ID 更新记录的可编辑字段。可选字段为 nil 时写入 NULL，
// 活动 ID 与创建时间不允许修改。
func (s *GormStore) UpdateRecord(id uint, values RecordValues) error {
	updates := map[string]interface{}{
		"name":           values.Name,
		"amount":         values.Amount,
		"relation":       values.Relation,
		"companions":     values.Companions,
		"payment_method": values.PaymentMethod,
		"memo":           values.Memo,
	}
	return s.db.Model(&models.GiftRecord{}).Where("id = ?", id).Updates(updates).Error
}

// DeleteRecord 按 ID 物理删除记录
func (s *GormStore) DeleteRecord(id uint) error {
	return s.db.Where("id = ?", id).Delete(&models.GiftRecord{}).Error
}
