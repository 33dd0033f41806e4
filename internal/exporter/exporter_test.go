package exporter

import (
	"strings"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"

	"salescope/internal/model"
)

func sampleReport() *model.FullReport {
	return &model.FullReport{
		GeneratedAt: time.Date(2019, 3, 1, 12, 0, 0, 0, time.UTC),
		RecordCount: 2,
		BranchGrowth: []model.BranchGrowthRow{
			{Branch: "A", Month: "2019-02", TotalSales: 1100, GrowthRate: 10},
		},
		BranchTopLines: []model.BranchTopLineRow{
			{Branch: "A", ProductLine: "Food", TotalProfit: 150},
		},
		CustomerTiers: []model.CustomerTierRow{
			{CustomerID: "c1", TotalSpend: 250, Tier: "High"},
		},
		TopCustomers: []model.TopCustomerRow{
			{CustomerID: "c1", TotalRevenue: 250},
		},
		WeekdaySales: []model.WeekdaySalesRow{
			{Weekday: "Monday", TotalSales: 250},
		},
	}
}

func TestExporter_Build(t *testing.T) {
	t.Parallel()

	f, err := NewExporter(sampleReport()).Build()
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) != 11 {
		t.Fatalf("want 11 sheets got %d: %v", len(sheets), sheets)
	}
	if sheets[0] != "汇总" {
		t.Fatalf("first sheet want=汇总 got=%s", sheets[0])
	}

	// 环比增长页表头与数据
	if got, _ := f.GetCellValue("环比增长", "A1"); got != "分店" {
		t.Fatalf("header want=分店 got=%q", got)
	}
	if got, _ := f.GetCellValue("环比增长", "B2"); got != "2019-02" {
		t.Fatalf("month want=2019-02 got=%q", got)
	}
	if got, _ := f.GetCellValue("顾客分层", "C2"); got != "High" {
		t.Fatalf("tier want=High got=%q", got)
	}
}

func TestExporter_SaveReport(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path, err := NewExporter(sampleReport()).SaveReport(dir)
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if !strings.HasPrefix(path, dir) || !strings.HasSuffix(path, ".xlsx") {
		t.Fatalf("unexpected path: %s", path)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer f.Close()
	if got, _ := f.GetCellValue("Top顾客", "A2"); got != "c1" {
		t.Fatalf("top customer want=c1 got=%q", got)
	}
}

func TestExporter_EmptyReport(t *testing.T) {
	t.Parallel()

	rep := &model.FullReport{GeneratedAt: time.Now()}
	f, err := NewExporter(rep).Build()
	if err != nil {
		t.Fatalf("empty report build failed: %v", err)
	}
	defer f.Close()

	// 空报表仍然有全部工作表和表头
	if got, _ := f.GetCellValue("星期销售", "A1"); got != "星期" {
		t.Fatalf("header want=星期 got=%q", got)
	}
	if got, _ := f.GetCellValue("星期销售", "A2"); got != "" {
		t.Fatalf("empty sheet A2 want empty got=%q", got)
	}
}
