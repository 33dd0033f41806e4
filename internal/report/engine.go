package report

import (
	"time"

	"salescope/internal/analytics"
	"salescope/internal/config"
	"salescope/internal/model"
)

// Engine 报表计算引擎：对只读数据集跑全部十项分析
type Engine struct {
	records []*model.SalesRecord
	cfg     config.AnalysisConfig
}

// NewEngine 创建计算引擎
func NewEngine(records []*model.SalesRecord, cfg config.AnalysisConfig) *Engine {
	return &Engine{records: records, cfg: cfg}
}

// RunAll 计算全部报表
//
// 十项分析相互独立、无副作用，按固定顺序逐一执行，
// 空数据集得到各报表的空结果而不是错误。
func (e *Engine) RunAll() *model.FullReport {
	return &model.FullReport{
		GeneratedAt:       time.Now(),
		RecordCount:       len(e.records),
		BranchGrowth:      analytics.BranchMonthlyGrowth(e.records, e.cfg.GrowthTopN),
		BranchTopLines:    analytics.TopProductLineByBranch(e.records),
		CustomerTiers:     analytics.CustomerSpendingTiers(e.records),
		Anomalies:         analytics.DetectAnomalies(e.records, e.cfg.ZScoreThreshold),
		CityPayments:      analytics.TopPaymentByCity(e.records),
		GenderMonthly:     analytics.MonthlySalesByGender(e.records),
		CustomerTypeLines: analytics.TopProductLineByCustomerType(e.records),
		RepeatPairs:       analytics.RepeatPurchasePairs(e.records, e.cfg.RepeatWindowDays),
		TopCustomers:      analytics.TopCustomersByRevenue(e.records, e.cfg.TopCustomers),
		WeekdaySales:      analytics.SalesByWeekday(e.records),
	}
}
