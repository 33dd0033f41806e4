package exporter

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"salescope/internal/model"
)

// Exporter 把完整报表写成多工作表 Excel
type Exporter struct {
	report *model.FullReport
}

// NewExporter 创建导出器
func NewExporter(report *model.FullReport) *Exporter {
	return &Exporter{report: report}
}

// sheetSpec 单个工作表的列定义与填充逻辑
type sheetSpec struct {
	name    string
	headers []string
	widths  []float64
	fill    func(f *excelize.File, sheet string, moneyStyle int) error
}

// Build 生成报表工作簿
func (e *Exporter) Build() (*excelize.File, error) {
	f := excelize.NewFile()

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"DCE6F1"}},
	})
	if err != nil {
		return nil, fmt.Errorf("创建表头样式失败: %w", err)
	}
	// 金额列统一两位小数
	moneyStyle, err := f.NewStyle(&excelize.Style{NumFmt: 2})
	if err != nil {
		return nil, fmt.Errorf("创建金额样式失败: %w", err)
	}

	for _, spec := range e.sheets() {
		if _, err := f.NewSheet(spec.name); err != nil {
			return nil, fmt.Errorf("创建工作表 %s 失败: %w", spec.name, err)
		}
		if err := f.SetSheetRow(spec.name, "A1", &spec.headers); err != nil {
			return nil, fmt.Errorf("写入 %s 表头失败: %w", spec.name, err)
		}
		lastCol, _ := excelize.ColumnNumberToName(len(spec.headers))
		if err := f.SetCellStyle(spec.name, "A1", lastCol+"1", headerStyle); err != nil {
			return nil, fmt.Errorf("设置 %s 表头样式失败: %w", spec.name, err)
		}
		for i, w := range spec.widths {
			col, _ := excelize.ColumnNumberToName(i + 1)
			if err := f.SetColWidth(spec.name, col, col, w); err != nil {
				return nil, fmt.Errorf("设置 %s 列宽失败: %w", spec.name, err)
			}
		}
		if err := spec.fill(f, spec.name, moneyStyle); err != nil {
			return nil, fmt.Errorf("填充 %s 失败: %w", spec.name, err)
		}
	}

	// 默认工作表替换为汇总页
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("删除默认工作表失败: %w", err)
	}
	f.SetActiveSheet(0)
	return f, nil
}

// SaveReport 生成工作簿并保存到导出目录，返回文件路径
func (e *Exporter) SaveReport(exportDir string) (string, error) {
	f, err := e.Build()
	if err != nil {
		return "", err
	}
	defer f.Close()

	name := fmt.Sprintf("sales_report_%s.xlsx", strings.Split(uuid.New().String(), "-")[0])
	path := filepath.Join(exportDir, name)
	if err := f.SaveAs(path); err != nil {
		return "", fmt.Errorf("保存报表失败: %w", err)
	}
	return path, nil
}

func (e *Exporter) sheets() []sheetSpec {
	rep := e.report
	return []sheetSpec{
		{
			name:    "汇总",
			headers: []string{"项目", "数量"},
			widths:  []float64{32, 14},
			fill: func(f *excelize.File, sheet string, _ int) error {
				rows := [][]interface{}{
					{"交易条数", rep.RecordCount},
					{"环比增长行", len(rep.BranchGrowth)},
					{"分店冠军商品线", len(rep.BranchTopLines)},
					{"分层顾客数", len(rep.CustomerTiers)},
					{"异常交易", len(rep.Anomalies)},
					{"城市支付冠军", len(rep.CityPayments)},
					{"月度性别行", len(rep.GenderMonthly)},
					{"会员类型冠军", len(rep.CustomerTypeLines)},
					{"复购交易对", len(rep.RepeatPairs)},
					{"Top 顾客", len(rep.TopCustomers)},
					{"星期行", len(rep.WeekdaySales)},
					{"生成时间", rep.GeneratedAt.Format("2006-01-02 15:04:05")},
				}
				return writeRows(f, sheet, rows)
			},
		},
		{
			name:    "环比增长",
			headers: []string{"分店", "月份", "销售额", "增速%"},
			widths:  []float64{10, 12, 14, 10},
			fill: func(f *excelize.File, sheet string, money int) error {
				rows := make([][]interface{}, 0, len(rep.BranchGrowth))
				for _, r := range rep.BranchGrowth {
					rows = append(rows, []interface{}{r.Branch, r.Month, r.TotalSales, r.GrowthRate})
				}
				return writeMoneyRows(f, sheet, rows, money, 3, 4)
			},
		},
		{
			name:    "分店冠军商品线",
			headers: []string{"分店", "商品线", "毛利额"},
			widths:  []float64{10, 24, 14},
			fill: func(f *excelize.File, sheet string, money int) error {
				rows := make([][]interface{}, 0, len(rep.BranchTopLines))
				for _, r := range rep.BranchTopLines {
					rows = append(rows, []interface{}{r.Branch, r.ProductLine, r.TotalProfit})
				}
				return writeMoneyRows(f, sheet, rows, money, 3)
			},
		},
		{
			name:    "顾客分层",
			headers: []string{"顾客", "消费额", "层级"},
			widths:  []float64{16, 14, 10},
			fill: func(f *excelize.File, sheet string, money int) error {
				rows := make([][]interface{}, 0, len(rep.CustomerTiers))
				for _, r := range rep.CustomerTiers {
					rows = append(rows, []interface{}{r.CustomerID, r.TotalSpend, r.Tier})
				}
				return writeMoneyRows(f, sheet, rows, money, 2)
			},
		},
		{
			name:    "异常交易",
			headers: []string{"发票号", "商品线", "总额", "Z分数"},
			widths:  []float64{16, 24, 14, 10},
			fill: func(f *excelize.File, sheet string, money int) error {
				rows := make([][]interface{}, 0, len(rep.Anomalies))
				for _, r := range rep.Anomalies {
					rows = append(rows, []interface{}{r.InvoiceID, r.ProductLine, r.Total, r.ZScore})
				}
				return writeMoneyRows(f, sheet, rows, money, 3, 4)
			},
		},
		{
			name:    "城市支付方式",
			headers: []string{"城市", "支付方式", "笔数"},
			widths:  []float64{14, 14, 10},
			fill: func(f *excelize.File, sheet string, _ int) error {
				rows := make([][]interface{}, 0, len(rep.CityPayments))
				for _, r := range rep.CityPayments {
					rows = append(rows, []interface{}{r.City, r.Payment, r.PaymentCount})
				}
				return writeRows(f, sheet, rows)
			},
		},
		{
			name:    "月度性别销售",
			headers: []string{"月份", "性别", "销售额"},
			widths:  []float64{12, 10, 14},
			fill: func(f *excelize.File, sheet string, money int) error {
				rows := make([][]interface{}, 0, len(rep.GenderMonthly))
				for _, r := range rep.GenderMonthly {
					rows = append(rows, []interface{}{r.Month, r.Gender, r.TotalSales})
				}
				return writeMoneyRows(f, sheet, rows, money, 3)
			},
		},
		{
			name:    "会员类型商品线",
			headers: []string{"会员类型", "商品线", "销量"},
			widths:  []float64{12, 24, 10},
			fill: func(f *excelize.File, sheet string, _ int) error {
				rows := make([][]interface{}, 0, len(rep.CustomerTypeLines))
				for _, r := range rep.CustomerTypeLines {
					rows = append(rows, []interface{}{r.CustomerType, r.ProductLine, r.TotalUnitsSold})
				}
				return writeRows(f, sheet, rows)
			},
		},
		{
			name:    "复购交易对",
			headers: []string{"顾客", "首购日期", "复购日期", "间隔天数"},
			widths:  []float64{16, 12, 12, 10},
			fill: func(f *excelize.File, sheet string, _ int) error {
				rows := make([][]interface{}, 0, len(rep.RepeatPairs))
				for _, r := range rep.RepeatPairs {
					rows = append(rows, []interface{}{
						r.CustomerID,
						r.FirstDate.Format("2006-01-02"),
						r.RepeatDate.Format("2006-01-02"),
						r.DaysBetween,
					})
				}
				return writeRows(f, sheet, rows)
			},
		},
		{
			name:    "Top顾客",
			headers: []string{"顾客", "消费额"},
			widths:  []float64{16, 14},
			fill: func(f *excelize.File, sheet string, money int) error {
				rows := make([][]interface{}, 0, len(rep.TopCustomers))
				for _, r := range rep.TopCustomers {
					rows = append(rows, []interface{}{r.CustomerID, r.TotalRevenue})
				}
				return writeMoneyRows(f, sheet, rows, money, 2)
			},
		},
		{
			name:    "星期销售",
			headers: []string{"星期", "销售额"},
			widths:  []float64{14, 14},
			fill: func(f *excelize.File, sheet string, money int) error {
				rows := make([][]interface{}, 0, len(rep.WeekdaySales))
				for _, r := range rep.WeekdaySales {
					rows = append(rows, []interface{}{r.Weekday, r.TotalSales})
				}
				return writeMoneyRows(f, sheet, rows, money, 2)
			},
		},
	}
}

// writeRows 从第 2 行起逐行写入
func writeRows(f *excelize.File, sheet string, rows [][]interface{}) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}
	return nil
}

// writeMoneyRows 写入数据并给指定金额列套两位小数样式
func writeMoneyRows(f *excelize.File, sheet string, rows [][]interface{}, moneyStyle int, moneyCols ...int) error {
	if err := writeRows(f, sheet, rows); err != nil {
		return err
	}
	if len(rows) == 0 {
		return nil
	}
	for _, col := range moneyCols {
		name, err := excelize.ColumnNumberToName(col)
		if err != nil {
			return err
		}
		if err := f.SetCellStyle(sheet, fmt.Sprintf("%s2", name), fmt.Sprintf("%s%d", name, len(rows)+1), moneyStyle); err != nil {
			return err
		}
	}
	return nil
}
