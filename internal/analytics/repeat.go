package analytics

import (
	"sort"
	"time"

	"salescope/internal/model"
)

// DefaultRepeatWindowDays 默认复购时间窗（天，含边界）
const DefaultRepeatWindowDays = 30

// RepeatPurchasePairs 时间窗内的同客复购交易对
//
// 同一顾客的任意两笔交易，只要后一笔日期严格晚于前一笔且间隔不超过
// windowDays 天（含第 30 天整），就产生一行交易对。这是自连接语义：
// 一个顾客的 N 笔交易会产生所有满足条件的前向组合，不是只取相邻两笔。
// 同日两笔不算复购。结果按顾客、首购日期、复购日期排序。
func RepeatPurchasePairs(records []*model.SalesRecord, windowDays int) []model.RepeatPairRow {
	if windowDays <= 0 {
		windowDays = DefaultRepeatWindowDays
	}

	rows := make([]model.RepeatPairRow, 0)
	for _, group := range GroupRecords(records, keyCustomerID) {
		dates := make([]time.Time, len(group))
		for i, r := range group {
			// 归一化到当天零点，间隔按整天计
			y, m, d := r.Date.Date()
			dates[i] = time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
		}
		sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })

		for i := 0; i < len(dates); i++ {
			for j := i + 1; j < len(dates); j++ {
				gap := int(dates[j].Sub(dates[i]).Hours() / 24)
				if gap == 0 {
					continue
				}
				if gap > windowDays {
					break
				}
				rows = append(rows, model.RepeatPairRow{
					CustomerID:  group[0].CustomerID,
					FirstDate:   dates[i],
					RepeatDate:  dates[j],
					DaysBetween: gap,
				})
			}
		}
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].CustomerID != rows[j].CustomerID {
			return rows[i].CustomerID < rows[j].CustomerID
		}
		if !rows[i].FirstDate.Equal(rows[j].FirstDate) {
			return rows[i].FirstDate.Before(rows[j].FirstDate)
		}
		return rows[i].RepeatDate.Before(rows[j].RepeatDate)
	})
	return rows
}
