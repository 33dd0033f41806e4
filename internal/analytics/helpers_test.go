package analytics

import (
	"time"

	"salescope/internal/model"
)

// mustDate 解析测试日期（YYYY-MM-DD）
func mustDate(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

// sale 构造一条测试交易，未涉及的字段取零值
func sale(invoice, branch, date string, total float64) *model.SalesRecord {
	return &model.SalesRecord{
		InvoiceID: invoice,
		Branch:    branch,
		Date:      mustDate(date),
		Total:     total,
	}
}
