package analytics

import "sort"

// RankedItem 分区内参与排名的一项
type RankedItem struct {
	Partition string  // 分区键（分店/城市/会员类型）
	Item      string  // 被排名项（商品线/支付方式）
	Value     float64 // 排名依据
	Rank      int     // 竞争排名：并列同名次，下一名次跳号
}

// RankWithinPartitions 在每个分区内按 Value 降序做竞争排名
//
// 并列值共享名次，随后的名次按并列个数跳号（1,1,3 ...）。
// 返回结果按分区、名次、项名排序。
func RankWithinPartitions(items []RankedItem) []RankedItem {
	byPartition := make(map[string][]RankedItem)
	for _, it := range items {
		byPartition[it.Partition] = append(byPartition[it.Partition], it)
	}

	partitions := make([]string, 0, len(byPartition))
	for p := range byPartition {
		partitions = append(partitions, p)
	}
	sort.Strings(partitions)

	ranked := make([]RankedItem, 0, len(items))
	for _, p := range partitions {
		group := byPartition[p]
		sort.Slice(group, func(i, j int) bool {
			if group[i].Value != group[j].Value {
				return group[i].Value > group[j].Value
			}
			return group[i].Item < group[j].Item
		})

		for i := range group {
			if i > 0 && group[i].Value == group[i-1].Value {
				group[i].Rank = group[i-1].Rank
			} else {
				group[i].Rank = i + 1
			}
		}
		ranked = append(ranked, group...)
	}
	return ranked
}

// TopPerPartition 返回每个分区内名次为 1 的全部条目（并列第一都保留）
func TopPerPartition(items []RankedItem) []RankedItem {
	ranked := RankWithinPartitions(items)
	top := make([]RankedItem, 0, len(ranked))
	for _, it := range ranked {
		if it.Rank == 1 {
			top = append(top, it)
		}
	}
	return top
}
