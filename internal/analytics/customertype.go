package analytics

import "salescope/internal/model"

// TopProductLineByCustomerType 各会员类型销量最高的商品线
//
// 按 (会员类型, 商品线) 汇总销量后在类型内竞争排名，
// 返回名次为 1 的行，并列第一全部保留。
func TopProductLineByCustomerType(records []*model.SalesRecord) []model.CustomerTypeLineRow {
	sums := GroupSum(records, func(r *model.SalesRecord) float64 { return float64(r.Quantity) }, keyCustomerType, keyProductLine)

	items := make([]RankedItem, 0, len(sums))
	for key, sum := range sums {
		parts := SplitKey(key)
		items = append(items, RankedItem{Partition: parts[0], Item: parts[1], Value: sum})
	}

	top := TopPerPartition(items)
	rows := make([]model.CustomerTypeLineRow, 0, len(top))
	for _, it := range top {
		rows = append(rows, model.CustomerTypeLineRow{
			CustomerType:   it.Partition,
			ProductLine:    it.Item,
			TotalUnitsSold: int(it.Value),
		})
	}
	return rows
}
