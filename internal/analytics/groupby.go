package analytics

import (
	"strings"

	"salescope/internal/model"
)

// keySep 复合键分隔符（不会出现在任何列值里）
const keySep = "\x1f"

// KeyFunc 分组键提取函数
type KeyFunc func(r *model.SalesRecord) string

// CompositeKey 由多个提取函数拼出复合分组键
func CompositeKey(r *model.SalesRecord, keys []KeyFunc) string {
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = k(r)
	}
	return strings.Join(parts, keySep)
}

// SplitKey 拆开复合分组键
func SplitKey(key string) []string {
	return strings.Split(key, keySep)
}

// GroupSum 按复合键对指定数值求和
//
// 输出无序，空数据集返回空 map；键只来自观测到的行，不会出现空分组。
func GroupSum(records []*model.SalesRecord, value func(r *model.SalesRecord) float64, keys ...KeyFunc) map[string]float64 {
	sums := make(map[string]float64)
	for _, r := range records {
		sums[CompositeKey(r, keys)] += value(r)
	}
	return sums
}

// GroupCount 按复合键计数
func GroupCount(records []*model.SalesRecord, keys ...KeyFunc) map[string]int {
	counts := make(map[string]int)
	for _, r := range records {
		counts[CompositeKey(r, keys)]++
	}
	return counts
}

// GroupRecords 按复合键收集行本身（异常检测、复购分析用）
func GroupRecords(records []*model.SalesRecord, keys ...KeyFunc) map[string][]*model.SalesRecord {
	groups := make(map[string][]*model.SalesRecord)
	for _, r := range records {
		key := CompositeKey(r, keys)
		groups[key] = append(groups[key], r)
	}
	return groups
}

// 常用键提取函数
func keyBranch(r *model.SalesRecord) string { return r.Branch }
func keyCity(r *model.SalesRecord) string { return r.City }
func keyMonth(r *model.SalesRecord) string { return r.YearMonth() }
func keyGender(r *model.SalesRecord) string { return r.Gender }
func keyPayment(r *model.SalesRecord) string { return r.Payment }
func keyProductLine(r *model.SalesRecord) string { return r.ProductLine }
func keyCustomerID(r *model.SalesRecord) string { return r.CustomerID }
func keyCustomerType(r *model.SalesRecord) string { return r.CustomerType }
