package ledger

import (
	"strings"

	"giftbook/models"
)

// FilterAll 筛选条件取值 "all" 表示不按该字段筛选
const FilterAll = "all"

// FilterRecords 按搜索词、关系、礼金方式过滤记录，纯函数。
//
// 一条记录通过过滤当且仅当：关系筛选为 all 或与记录关系相等，且礼金方式
// 筛选为 all 或与记录方式相等，且搜索词为空或是姓名/备注（忽略大小写）的
// 子串。关系或方式未填写的记录不会匹配任何具体筛选值。
func FilterRecords(records []models.GiftRecord, search, relationFilter, paymentFilter string) []models.GiftRecord {
	query := strings.ToLower(strings.TrimSpace(search))

	filtered := make([]models.GiftRecord, 0, len(records))
	for _, record := range records {
		if relationFilter != FilterAll && (record.Relation == nil || *record.Relation != relationFilter) {
			continue
		}
		if paymentFilter != FilterAll && (record.PaymentMethod == nil || *record.PaymentMethod != paymentFilter) {
			continue
		}
		if query != "" {
			memo := ""
			if record.Memo != nil {
				memo = *record.Memo
			}
			nameMatch := strings.Contains(strings.ToLower(record.Name), query)
			memoMatch := strings.Contains(strings.ToLower(memo), query)
			if !nameMatch && !memoMatch {
				continue
			}
		}
		filtered = append(filtered, record)
	}
	return filtered
}
