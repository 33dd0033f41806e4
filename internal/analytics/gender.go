package analytics

import (
	"sort"

	"salescope/internal/model"
)

// MonthlySalesByGender 按月按性别汇总销售额
//
// 不过滤、不截断，全量返回，按月份再按性别排序。
func MonthlySalesByGender(records []*model.SalesRecord) []model.GenderMonthRow {
	sums := GroupSum(records, func(r *model.SalesRecord) float64 { return r.Total }, keyMonth, keyGender)

	rows := make([]model.GenderMonthRow, 0, len(sums))
	for key, sum := range sums {
		parts := SplitKey(key)
		rows = append(rows, model.GenderMonthRow{
			Month:      parts[0],
			Gender:     parts[1],
			TotalSales: Round2(sum),
		})
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Month != rows[j].Month {
			return rows[i].Month < rows[j].Month
		}
		return rows[i].Gender < rows[j].Gender
	})
	return rows
}
