package analytics

import (
	"math"
	"sort"

	"salescope/internal/model"
)

// DefaultZThreshold 默认异常判定阈值（|z| 超过即视为异常）
const DefaultZThreshold = 2.0

// DetectAnomalies 按商品线用 Z 分数标记异常交易
//
// 对每条商品线求交易总额的均值与样本标准差，z = (total - mean) / stddev，
// |z| > threshold 的交易入选。标准差为 0（交易全部相同）或样本数不足 2
// 时 z 无定义，该商品线不产生异常行。结果按 z 降序、发票号升序。
func DetectAnomalies(records []*model.SalesRecord, threshold float64) []model.AnomalyRow {
	if threshold <= 0 {
		threshold = DefaultZThreshold
	}

	rows := make([]model.AnomalyRow, 0)
	for _, group := range GroupRecords(records, keyProductLine) {
		totals := make([]float64, len(group))
		for i, r := range group {
			totals[i] = r.Total
		}
		mean := Mean(totals)
		stddev := SampleStdDev(totals)
		if stddev == 0 {
			continue
		}

		for _, r := range group {
			z := (r.Total - mean) / stddev
			if math.Abs(z) > threshold {
				rows = append(rows, model.AnomalyRow{
					InvoiceID:   r.InvoiceID,
					ProductLine: r.ProductLine,
					Total:       r.Total,
					ZScore:      Round2(z),
				})
			}
		}
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].ZScore != rows[j].ZScore {
			return rows[i].ZScore > rows[j].ZScore
		}
		return rows[i].InvoiceID < rows[j].InvoiceID
	})
	return rows
}
