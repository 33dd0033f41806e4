package model

import "time"

// BranchGrowthRow 分店月销售额环比增长
type BranchGrowthRow struct {
	Branch     string  `json:"branch"`
	Month      string  `json:"month"`      // YYYY-MM
	TotalSales float64 `json:"totalSales"` // 当月销售额
	GrowthRate float64 `json:"growthRate"` // 环比增长率 (%)
}

// BranchTopLineRow 分店利润最高的商品线（并列第一全部返回）
type BranchTopLineRow struct {
	Branch      string  `json:"branch"`
	ProductLine string  `json:"productLine"`
	TotalProfit float64 `json:"totalProfit"`
}

// CustomerTierRow 顾客消费分层
type CustomerTierRow struct {
	CustomerID string  `json:"customerId"`
	TotalSpend float64 `json:"totalSpend"`
	Tier       string  `json:"tier"` // High/Medium/Low
}

// AnomalyRow 异常交易（按商品线 Z 分数）
type AnomalyRow struct {
	InvoiceID   string  `json:"invoiceId"`
	ProductLine string  `json:"productLine"`
	Total       float64 `json:"total"`
	ZScore      float64 `json:"zScore"`
}

// CityPaymentRow 各城市最常用支付方式
type CityPaymentRow struct {
	City         string `json:"city"`
	Payment      string `json:"payment"`
	PaymentCount int    `json:"paymentCount"`
}

// GenderMonthRow 按月按性别的销售额
type GenderMonthRow struct {
	Month      string  `json:"month"` // YYYY-MM
	Gender     string  `json:"gender"`
	TotalSales float64 `json:"totalSales"`
}

// CustomerTypeLineRow 各会员类型销量最高的商品线
type CustomerTypeLineRow struct {
	CustomerType   string `json:"customerType"`
	ProductLine    string `json:"productLine"`
	TotalUnitsSold int    `json:"totalUnitsSold"`
}

// RepeatPairRow 30 天内的复购交易对
type RepeatPairRow struct {
	CustomerID  string    `json:"customerId"`
	FirstDate   time.Time `json:"firstDate"`
	RepeatDate  time.Time `json:"repeatDate"`
	DaysBetween int       `json:"daysBetween"`
}

// TopCustomerRow 消费额 Top 顾客
type TopCustomerRow struct {
	CustomerID   string  `json:"customerId"`
	TotalRevenue float64 `json:"totalRevenue"`
}

// WeekdaySalesRow 按星期的销售额
type WeekdaySalesRow struct {
	Weekday    string  `json:"weekday"`
	TotalSales float64 `json:"totalSales"`
}

// FullReport 十项分析的完整结果
type FullReport struct {
	GeneratedAt       time.Time             `json:"generatedAt"`
	RecordCount       int                   `json:"recordCount"`
	BranchGrowth      []BranchGrowthRow     `json:"branchGrowth"`
	BranchTopLines    []BranchTopLineRow    `json:"branchTopLines"`
	CustomerTiers     []CustomerTierRow     `json:"customerTiers"`
	Anomalies         []AnomalyRow          `json:"anomalies"`
	CityPayments      []CityPaymentRow      `json:"cityPayments"`
	GenderMonthly     []GenderMonthRow      `json:"genderMonthly"`
	CustomerTypeLines []CustomerTypeLineRow `json:"customerTypeLines"`
	RepeatPairs       []RepeatPairRow       `json:"repeatPairs"`
	TopCustomers      []TopCustomerRow      `json:"topCustomers"`
	WeekdaySales      []WeekdaySalesRow     `json:"weekdaySales"`
}
