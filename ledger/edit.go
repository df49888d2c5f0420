package ledger

import (
	"errors"
	"strconv"
	"sync"

	"giftbook/models"
)

// ErrNotEditing 当前没有处于编辑状态的记录
var ErrNotEditing = errors.New("当前没有正在编辑的记录")

// RecordUpdater 保存编辑结果所需的最小存储接口
type RecordUpdater interface {
	UpdateRecord(id uint, values RecordValues) error
}

// editing 编辑中状态：目标记录 ID 与草稿
type editing struct {
	recordID uint
	draft    RecordInput
}

// EditSession 行内编辑状态机，全局唯一的单个编辑槽位。
// 只有两个状态：空闲、正在编辑某条记录（持有该记录可编辑字段的草稿副本）。
// 草稿在保存成功前不会触碰存储；保存时通过 ValidateRecord 重新校验。
type EditSession struct {
	mu     sync.Mutex
	active *editing
	errMsg string
}

// NewEditSession 创建编辑会话
func NewEditSession() *EditSession {
	return &EditSession{}
}

// Start 进入编辑状态，用记录当前字段值初始化草稿。
// 未填写的关系默认“其他”、礼金方式默认“现金”、随行人数默认 "1"、备注为空串。
// 记录没有 ID 时拒绝进入（返回 false）。若已有其他记录在编辑，直接替换，
// 未保存的旧草稿被丢弃；replaced 返回被替换的记录 ID（没有则为 0）。
func (s *EditSession) Start(record models.GiftRecord) (replaced uint, ok bool) {
	if record.ID == 0 {
		return 0, false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.active != nil {
		replaced = s.active.recordID
	}

	relation := models.RelationOther
	if record.Relation != nil {
		relation = *record.Relation
	}
	paymentMethod := models.PaymentCash
	if record.PaymentMethod != nil {
		paymentMethod = *record.PaymentMethod
	}
	memo := ""
	if record.Memo != nil {
		memo = *record.Memo
	}

	s.active = &editing{
		recordID: record.ID,
		draft: RecordInput{
			Name:          record.Name,
			Amount:        strconv.FormatFloat(record.Amount, 'f', -1, 64),
			Relation:      relation,
			Companions:    strconv.Itoa(record.CompanionsOrDefault()),
			PaymentMethod: paymentMethod,
			Memo:          memo,
		},
	}
	s.errMsg = ""
	return replaced, true
}

// SetDraft 更新草稿字段，仅在编辑状态下有效
func (s *EditSession) SetDraft(draft RecordInput) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.active == nil {
		return false
	}
	s.active.draft = draft
	return true
}

// Cancel 取消编辑，无条件丢弃草稿并清除错误
func (s *EditSession) Cancel() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.active = nil
	s.errMsg = ""
}

// Save 校验草稿并写回存储。校验失败时保持编辑状态并记录错误信息，
// 不触碰存储；校验通过但存储写入失败时同样保持编辑状态，错误以
// StoreError 返回给调用方处理，不写入表单错误；成功后回到空闲状态。
func (s *EditSession) Save(store RecordUpdater) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.active == nil {
		return ErrNotEditing
	}

	values, err := ValidateRecord(s.active.draft)
	if err != nil {
		s.errMsg = err.Error()
		return err
	}
	s.errMsg = ""

	if err := store.UpdateRecord(s.active.recordID, values); err != nil {
		return &StoreError{Err: err}
	}

	s.active = nil
	return nil
}

// State 返回当前状态：编辑中的记录 ID、草稿副本、是否处于编辑状态
func (s *EditSession) State() (recordID uint, draft RecordInput, isEditing bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.active == nil {
		return 0, RecordInput{}, false
	}
	return s.active.recordID, s.active.draft, true
}

// Err 当前错误信息，下一次成功操作或取消前一直保留
func (s *EditSession) Err() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.errMsg
}
