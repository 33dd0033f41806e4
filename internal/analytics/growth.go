package analytics

import (
	"sort"

	"salescope/internal/model"
)

// BranchMonthlyGrowth 各分店月销售额环比增长，按增幅降序取前 topN 行
//
// 每个分店的月份按时间排序后与上月比较：
//
//	growth = round(((本月 - 上月) / 上月) * 100, 2)
//
// 分店首个观测月没有上月，不产生输出行。上月销售额为 0 时增速
// 无定义，同样跳过该行而不是报错（与 Z 分数的零方差约定一致）。
// topN <= 0 表示不截断。
func BranchMonthlyGrowth(records []*model.SalesRecord, topN int) []model.BranchGrowthRow {
	sums := GroupSum(records, func(r *model.SalesRecord) float64 { return r.Total }, keyBranch, keyMonth)

	// 按分店收集月份序列
	months := make(map[string][]string)
	for key := range sums {
		parts := SplitKey(key)
		months[parts[0]] = append(months[parts[0]], parts[1])
	}

	rows := make([]model.BranchGrowthRow, 0, len(sums))
	for branch, ms := range months {
		// YYYY-MM 字典序即时间序
		sort.Strings(ms)
		for i := 1; i < len(ms); i++ {
			prev := sums[branch+keySep+ms[i-1]]
			cur := sums[branch+keySep+ms[i]]
			if prev == 0 {
				continue
			}
			rows = append(rows, model.BranchGrowthRow{
				Branch:     branch,
				Month:      ms[i],
				TotalSales: Round2(cur),
				GrowthRate: Round2((cur - prev) / prev * 100),
			})
		}
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].GrowthRate != rows[j].GrowthRate {
			return rows[i].GrowthRate > rows[j].GrowthRate
		}
		if rows[i].Branch != rows[j].Branch {
			return rows[i].Branch < rows[j].Branch
		}
		return rows[i].Month < rows[j].Month
	})

	if topN > 0 && len(rows) > topN {
		rows = rows[:topN]
	}
	return rows
}
