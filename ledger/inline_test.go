package ledger

import (
	"errors"
	"testing"
	"time"

	"giftbook/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeCreator 记录每次创建调用的假存储
type fakeCreator struct {
	nextID  uint
	created []RecordValues
	events  []uint
	err     error
}

func (f *fakeCreator) CreateRecord(eventID uint, values RecordValues, createdAt time.Time) (models.GiftRecord, error) {
	if f.err != nil {
		return models.GiftRecord{}, f.err
	}
	f.nextID++
	f.created = append(f.created, values)
	f.events = append(f.events, eventID)
	companions := values.Companions
	return models.GiftRecord{
		ID:            f.nextID,
		EventID:       eventID,
		Name:          values.Name,
		Amount:        values.Amount,
		Relation:      values.Relation,
		Companions:    &companions,
		PaymentMethod: values.PaymentMethod,
		Memo:          values.Memo,
		CreatedAt:     createdAt,
	}, nil
}

func TestInlineForm_Defaults(t *testing.T) {
	f := NewInlineForm()

	draft := f.Draft()
	assert.Equal(t, models.RelationOther, draft.Relation)
	assert.Equal(t, "1", draft.Companions)
	assert.Equal(t, models.PaymentCash, draft.PaymentMethod)
	assert.Empty(t, draft.Name)
	assert.Empty(t, draft.Amount)
}

func TestInlineForm_AddSuccess(t *testing.T) {
	store := &fakeCreator{}
	f := NewInlineForm()
	f.SetDraft(RecordInput{
		Name:          "张伟",
		Amount:        "888",
		Relation:      "朋友",
		Companions:    "2",
		PaymentMethod: "转账",
		Memo:          "大学同学",
	})

	record, err := f.Add(store, 5)
	require.NoError(t, err)

	assert.Equal(t, uint(5), record.EventID)
	assert.Equal(t, "张伟", record.Name)
	assert.Equal(t, 888.0, record.Amount)
	require.Len(t, store.created, 1)
	assert.Equal(t, uint(5), store.events[0])
	assert.Empty(t, f.Err())
}

// 添加成功后清空姓名/金额/备注，保留关系和礼金方式
func TestInlineForm_AddResetsDraftWithCarryOver(t *testing.T) {
	store := &fakeCreator{}
	f := NewInlineForm()
	f.SetDraft(RecordInput{
		Name:          "张伟",
		Amount:        "888",
		Relation:      "同事",
		Companions:    "3",
		PaymentMethod: "移动支付",
		Memo:          "部门代表",
	})

	_, err := f.Add(store, 5)
	require.NoError(t, err)

	draft := f.Draft()
	assert.Empty(t, draft.Name)
	assert.Empty(t, draft.Amount)
	assert.Empty(t, draft.Memo)
	assert.Equal(t, "1", draft.Companions)
	assert.Equal(t, "同事", draft.Relation)
	assert.Equal(t, "移动支付", draft.PaymentMethod)
}

// 未选择活动：不做校验写入，草稿原样保留
func TestInlineForm_AddWithoutEvent(t *testing.T) {
	store := &fakeCreator{}
	f := NewInlineForm()
	f.SetDraft(RecordInput{Name: "张伟", Amount: "888", Relation: "朋友", Companions: "1", PaymentMethod: "现金"})

	_, err := f.Add(store, 0)
	assert.ErrorIs(t, err, ErrNoEventSelected)
	assert.Equal(t, ErrNoEventSelected.Error(), f.Err())
	assert.Empty(t, store.created)

	draft := f.Draft()
	assert.Equal(t, "张伟", draft.Name)
	assert.Equal(t, "888", draft.Amount)
}

func TestInlineForm_AddValidationFailureKeepsDraft(t *testing.T) {
	store := &fakeCreator{}
	f := NewInlineForm()
	f.SetDraft(RecordInput{Name: "", Amount: "888", Relation: "朋友", Companions: "1", PaymentMethod: "现金"})

	_, err := f.Add(store, 5)
	require.Error(t, err)
	assert.Equal(t, "请输入姓名", f.Err())
	assert.Empty(t, store.created)

	draft := f.Draft()
	assert.Equal(t, "888", draft.Amount)
}

// 存储写入失败：草稿保留，错误以 StoreError 返回而不写入表单错误
func TestInlineForm_AddStoreFailureKeepsDraft(t *testing.T) {
	store := &fakeCreator{err: errors.New("数据库连接失败")}
	f := NewInlineForm()
	f.SetDraft(RecordInput{Name: "张伟", Amount: "888", Relation: "朋友", Companions: "1", PaymentMethod: "现金"})

	_, err := f.Add(store, 5)
	require.Error(t, err)

	var storeErr *StoreError
	require.ErrorAs(t, err, &storeErr)
	assert.Equal(t, "数据库连接失败", storeErr.Error())
	assert.Empty(t, f.Err())

	draft := f.Draft()
	assert.Equal(t, "张伟", draft.Name)
}

// 错误在下一次成功添加后清除
func TestInlineForm_ErrorClearedAfterSuccess(t *testing.T) {
	store := &fakeCreator{}
	f := NewInlineForm()

	_, err := f.Add(store, 0)
	require.Error(t, err)
	require.NotEmpty(t, f.Err())

	f.SetDraft(RecordInput{Name: "张伟", Amount: "888", Relation: "朋友", Companions: "1", PaymentMethod: "现金"})
	_, err = f.Add(store, 5)
	require.NoError(t, err)
	assert.Empty(t, f.Err())
}
