package analytics

import (
	"sort"

	"salescope/internal/model"
)

// 消费分层标签，桶 1 为最高消费组
const (
	TierHigh   = "High"
	TierMedium = "Medium"
	TierLow    = "Low"
)

// CustomerSpendingTiers 顾客消费三分层
//
// 按顾客汇总消费额，降序（并列按顾客 ID 升序，保证可复现）后
// 均分成 3 桶：前 n mod 3 个桶各多一人。每位顾客恰好得到一个标签。
func CustomerSpendingTiers(records []*model.SalesRecord) []model.CustomerTierRow {
	sums := GroupSum(records, func(r *model.SalesRecord) float64 { return r.Total }, keyCustomerID)
	if len(sums) == 0 {
		return []model.CustomerTierRow{}
	}

	rows := make([]model.CustomerTierRow, 0, len(sums))
	for customer, sum := range sums {
		rows = append(rows, model.CustomerTierRow{CustomerID: customer, TotalSpend: Round2(sum)})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].TotalSpend != rows[j].TotalSpend {
			return rows[i].TotalSpend > rows[j].TotalSpend
		}
		return rows[i].CustomerID < rows[j].CustomerID
	})

	labels := []string{TierHigh, TierMedium, TierLow}
	sizes := BucketSizes(len(rows), len(labels))
	idx := 0
	for b, size := range sizes {
		for i := 0; i < size; i++ {
			rows[idx].Tier = labels[b]
			idx++
		}
	}
	return rows
}
