package analytics

import (
	"fmt"
	"testing"

	"salescope/internal/model"
)

func anomalySale(invoice, line string, total float64) *model.SalesRecord {
	return &model.SalesRecord{
		InvoiceID:   invoice,
		ProductLine: line,
		Total:       total,
		Date:        mustDate("2019-01-01"),
	}
}

func TestDetectAnomalies_ZeroStdDevNoFlags(t *testing.T) {
	t.Parallel()

	// 10 笔完全相同的交易：标准差为 0，不得崩溃也不得标记
	records := make([]*model.SalesRecord, 0, 10)
	for i := 0; i < 10; i++ {
		records = append(records, anomalySale(fmt.Sprintf("i%d", i), "Food", 55.5))
	}

	rows := DetectAnomalies(records, DefaultZThreshold)
	if len(rows) != 0 {
		t.Fatalf("identical totals want 0 anomalies got %d", len(rows))
	}
}

func TestDetectAnomalies_OutlierFlagged(t *testing.T) {
	t.Parallel()

	// 9 笔 100 加 1 笔 1000：离群值 z 远超 2
	records := make([]*model.SalesRecord, 0, 10)
	for i := 0; i < 9; i++ {
		records = append(records, anomalySale(fmt.Sprintf("n%d", i), "Food", 100))
	}
	records = append(records, anomalySale("big", "Food", 1000))

	rows := DetectAnomalies(records, DefaultZThreshold)
	if len(rows) != 1 {
		t.Fatalf("want 1 anomaly got %d: %+v", len(rows), rows)
	}
	if rows[0].InvoiceID != "big" || rows[0].ProductLine != "Food" {
		t.Fatalf("want invoice big got %+v", rows[0])
	}
	if rows[0].ZScore <= DefaultZThreshold {
		t.Fatalf("outlier z want > %v got %v", DefaultZThreshold, rows[0].ZScore)
	}
}

func TestDetectAnomalies_PerProductLineStats(t *testing.T) {
	t.Parallel()

	// Food 内的 300 是离群值；Sports 全部围绕 300，不应标记
	records := []*model.SalesRecord{
		anomalySale("f1", "Food", 10),
		anomalySale("f2", "Food", 11),
		anomalySale("f3", "Food", 9),
		anomalySale("f4", "Food", 10),
		anomalySale("f5", "Food", 12),
		anomalySale("f6", "Food", 8),
		anomalySale("f7", "Food", 300),
		anomalySale("s1", "Sports", 290),
		anomalySale("s2", "Sports", 300),
		anomalySale("s3", "Sports", 310),
	}

	rows := DetectAnomalies(records, DefaultZThreshold)
	if len(rows) != 1 {
		t.Fatalf("want 1 anomaly got %d: %+v", len(rows), rows)
	}
	if rows[0].InvoiceID != "f7" {
		t.Fatalf("want f7 got %s", rows[0].InvoiceID)
	}
}

func TestDetectAnomalies_SortedByZScoreDesc(t *testing.T) {
	t.Parallel()

	// 两端各一个离群值：正 z 在前，负 z 在后
	records := []*model.SalesRecord{
		anomalySale("lo", "Food", -200),
		anomalySale("hi", "Food", 500),
	}
	for i := 0; i < 20; i++ {
		records = append(records, anomalySale(fmt.Sprintf("m%d", i), "Food", float64(100+i%3)))
	}

	rows := DetectAnomalies(records, DefaultZThreshold)
	if len(rows) != 2 {
		t.Fatalf("want 2 anomalies got %d: %+v", len(rows), rows)
	}
	if rows[0].InvoiceID != "hi" || rows[1].InvoiceID != "lo" {
		t.Fatalf("want hi,lo got %s,%s", rows[0].InvoiceID, rows[1].InvoiceID)
	}
	if rows[0].ZScore <= rows[1].ZScore {
		t.Fatalf("z order want desc got %v <= %v", rows[0].ZScore, rows[1].ZScore)
	}
}

func TestDetectAnomalies_EmptyDataset(t *testing.T) {
	t.Parallel()

	if rows := DetectAnomalies(nil, DefaultZThreshold); len(rows) != 0 {
		t.Fatalf("empty dataset want 0 rows got %d", len(rows))
	}
}
