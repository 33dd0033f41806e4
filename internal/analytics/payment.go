package analytics

import "salescope/internal/model"

// TopPaymentByCity 各城市交易笔数最多的支付方式
//
// 按 (城市, 支付方式) 计数后在城市内竞争排名，返回名次为 1 的行，
// 并列第一全部保留。
func TopPaymentByCity(records []*model.SalesRecord) []model.CityPaymentRow {
	counts := GroupCount(records, keyCity, keyPayment)

	items := make([]RankedItem, 0, len(counts))
	for key, count := range counts {
		parts := SplitKey(key)
		items = append(items, RankedItem{Partition: parts[0], Item: parts[1], Value: float64(count)})
	}

	top := TopPerPartition(items)
	rows := make([]model.CityPaymentRow, 0, len(top))
	for _, it := range top {
		rows = append(rows, model.CityPaymentRow{
			City:         it.Partition,
			Payment:      it.Item,
			PaymentCount: int(it.Value),
		})
	}
	return rows
}
