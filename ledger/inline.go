package ledger

import (
	"errors"
	"sync"
	"time"

	"giftbook/models"
)

// ErrNoEventSelected 未选择活动时尝试添加记录
var ErrNoEventSelected = errors.New("请先选择活动")

// RecordCreator 快速录入所需的最小存储接口
type RecordCreator interface {
	CreateRecord(eventID uint, values RecordValues, createdAt time.Time) (models.GiftRecord, error)
}

// InlineForm 快速录入行，与编辑状态机相互独立、可同时使用。
// 草稿常驻，添加成功后清空姓名/金额/备注、随行人数复位为 "1"，
// 而关系和礼金方式保留上一次的选择，作为下一条的默认值。
type InlineForm struct {
	mu     sync.Mutex
	draft  RecordInput
	errMsg string
}

// NewInlineForm 创建快速录入行，关系默认“其他”、礼金方式默认“现金”
func NewInlineForm() *InlineForm {
	return &InlineForm{
		draft: RecordInput{
			Relation:      models.RelationOther,
			Companions:    "1",
			PaymentMethod: models.PaymentCash,
		},
	}
}

// Draft 返回当前草稿副本
func (f *InlineForm) Draft() RecordInput {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.draft
}

// SetDraft 更新草稿
func (f *InlineForm) SetDraft(draft RecordInput) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.draft = draft
}

// Err 当前错误信息
func (f *InlineForm) Err() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.errMsg
}

// Add 校验草稿并向指定活动追加一条记录。
// 未选择活动或校验失败时记录错误信息并保持草稿不变，不做任何写入；
// 存储写入失败时草稿同样保留，错误以 StoreError 返回，不写入表单错误。
func (f *InlineForm) Add(store RecordCreator, eventID uint) (models.GiftRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if eventID == 0 {
		f.errMsg = ErrNoEventSelected.Error()
		return models.GiftRecord{}, ErrNoEventSelected
	}

	values, err := ValidateRecord(f.draft)
	if err != nil {
		f.errMsg = err.Error()
		return models.GiftRecord{}, err
	}
	f.errMsg = ""

	record, err := store.CreateRecord(eventID, values, time.Now())
	if err != nil {
		return models.GiftRecord{}, &StoreError{Err: err}
	}

	f.draft = RecordInput{
		Relation:      f.draft.Relation,
		Companions:    "1",
		PaymentMethod: f.draft.PaymentMethod,
	}
	f.errMsg = ""
	return record, nil
}
