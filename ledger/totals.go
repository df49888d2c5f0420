package ledger

import "giftbook/models"

// Totals 结算汇总，由当前过滤后的记录集实时计算得出，从不落库
type Totals struct {
	TotalAmount     float64            `json:"total_amount"`
	TotalCount      int                `json:"total_count"`
	TotalCompanions int                `json:"total_companions"`
	TotalPeople     int                `json:"total_people"` // 与 total_companions 同值
	ByRelation      map[string]float64 `json:"by_relation"`
	ByMethod        map[string]float64 `json:"by_method"`
}

// ComputeTotals 对过滤后的记录集做一次遍历，计算总金额、总条数、总人数
// 以及按关系、按礼金方式的金额分组。未填写关系/方式的记录不进入对应分组，
// 但计入总金额；未填写随行人数按 1 计入总人数。
func ComputeTotals(records []models.GiftRecord) Totals {
	totals := Totals{
		ByRelation: make(map[string]float64),
		ByMethod:   make(map[string]float64),
	}

	for i := range records {
		record := &records[i]
		totals.TotalAmount += record.Amount
		totals.TotalCount++
		totals.TotalCompanions += record.CompanionsOrDefault()

		if record.Relation != nil {
			totals.ByRelation[*record.Relation] += record.Amount
		}
		if record.PaymentMethod != nil {
			totals.ByMethod[*record.PaymentMethod] += record.Amount
		}
	}

	totals.TotalPeople = totals.TotalCompanions
	return totals
}
