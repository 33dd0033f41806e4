package analytics

import (
	"sort"

	"salescope/internal/model"
)

// DefaultTopCustomers 默认返回的 Top 顾客数
const DefaultTopCustomers = 5

// TopCustomersByRevenue 消费额最高的 n 位顾客
//
// 按顾客汇总消费额（保留 2 位小数）后降序，并列按顾客 ID 升序
// 作为稳定的第二排序键，截断落在并列中间时输出仍可复现。
func TopCustomersByRevenue(records []*model.SalesRecord, n int) []model.TopCustomerRow {
	if n <= 0 {
		n = DefaultTopCustomers
	}

	sums := GroupSum(records, func(r *model.SalesRecord) float64 { return r.Total }, keyCustomerID)
	rows := make([]model.TopCustomerRow, 0, len(sums))
	for customer, sum := range sums {
		rows = append(rows, model.TopCustomerRow{CustomerID: customer, TotalRevenue: Round2(sum)})
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].TotalRevenue != rows[j].TotalRevenue {
			return rows[i].TotalRevenue > rows[j].TotalRevenue
		}
		return rows[i].CustomerID < rows[j].CustomerID
	})

	if len(rows) > n {
		rows = rows[:n]
	}
	return rows
}
