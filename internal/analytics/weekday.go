package analytics

import (
	"sort"
	"time"

	"salescope/internal/model"
)

// weekdayOrder 星期名到日历序（周一为 1），并列时作第二排序键
var weekdayOrder = map[string]int{
	time.Monday.String():    1,
	time.Tuesday.String():   2,
	time.Wednesday.String(): 3,
	time.Thursday.String():  4,
	time.Friday.String():    5,
	time.Saturday.String():  6,
	time.Sunday.String():    7,
}

// SalesByWeekday 按星期汇总销售额，按销售额降序
//
// 只统计出现过交易的星期，没有交易的星期不补零行。
func SalesByWeekday(records []*model.SalesRecord) []model.WeekdaySalesRow {
	sums := GroupSum(records, func(r *model.SalesRecord) float64 { return r.Total },
		func(r *model.SalesRecord) string { return r.Weekday() })

	rows := make([]model.WeekdaySalesRow, 0, len(sums))
	for weekday, sum := range sums {
		rows = append(rows, model.WeekdaySalesRow{Weekday: weekday, TotalSales: Round2(sum)})
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].TotalSales != rows[j].TotalSales {
			return rows[i].TotalSales > rows[j].TotalSales
		}
		return weekdayOrder[rows[i].Weekday] < weekdayOrder[rows[j].Weekday]
	})
	return rows
}
