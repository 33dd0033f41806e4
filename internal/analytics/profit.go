package analytics

import "salescope/internal/model"

// TopProductLineByBranch 各分店毛利额最高的商品线
//
// 按 (分店, 商品线) 汇总毛利额后在分店内竞争排名，
// 只返回名次为 1 的行；并列第一的商品线全部保留。
func TopProductLineByBranch(records []*model.SalesRecord) []model.BranchTopLineRow {
	sums := GroupSum(records, func(r *model.SalesRecord) float64 { return r.GrossIncome }, keyBranch, keyProductLine)

	items := make([]RankedItem, 0, len(sums))
	for key, sum := range sums {
		parts := SplitKey(key)
		items = append(items, RankedItem{Partition: parts[0], Item: parts[1], Value: sum})
	}

	top := TopPerPartition(items)
	rows := make([]model.BranchTopLineRow, 0, len(top))
	for _, it := range top {
		rows = append(rows, model.BranchTopLineRow{
			Branch:      it.Partition,
			ProductLine: it.Item,
			TotalProfit: Round2(it.Value),
		})
	}
	return rows
}
