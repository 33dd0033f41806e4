package model

import "time"

// SalesRecord 超市销售流水（一行一笔交易）
//
// 数据加载后只读，所有分析函数不修改记录本身。
type SalesRecord struct {
	InvoiceID      string    `json:"invoiceId"`      // 发票号（唯一）
	Branch         string    `json:"branch"`         // 门店
	City           string    `json:"city"`           // 城市
	CustomerType   string    `json:"customerType"`   // 会员类型 (Member/Normal)
	Gender         string    `json:"gender"`         // 性别
	ProductLine    string    `json:"productLine"`    // 商品线
	UnitPrice      float64   `json:"unitPrice"`      // 单价
	Quantity       int       `json:"quantity"`       // 数量
	Tax            float64   `json:"tax"`            // 税额
	Total          float64   `json:"total"`          // 含税总额
	Date           time.Time `json:"date"`           // 交易日期（仅日期部分有效）
	Time           string    `json:"time"`           // 交易时间 HH:MM
	Payment        string    `json:"payment"`        // 支付方式
	COGS           float64   `json:"cogs"`           // 销货成本
	GrossMarginPct float64   `json:"grossMarginPct"` // 毛利率（源数据自带，不参与计算）
	GrossIncome    float64   `json:"grossIncome"`    // 毛利额
	Rating         float64   `json:"rating"`         // 顾客评分
	CustomerID     string    `json:"customerId"`     // 顾客ID（回头客会重复出现）
}

// YearMonth 返回交易所属年月，格式 YYYY-MM
func (r *SalesRecord) YearMonth() string {
	return r.Date.Format("2006-01")
}

// Weekday 返回交易日期的英文星期名
func (r *SalesRecord) Weekday() string {
	return r.Date.Weekday().String()
}
