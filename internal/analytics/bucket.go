package analytics

// BucketSizes 把 n 个元素尽量均分到 k 个桶
//
// 前 n mod k 个桶各多放一个，任意两桶大小差不超过 1。
// 100 个顾客分 3 层即得 34/33/33。
func BucketSizes(n, k int) []int {
	if k <= 0 {
		return nil
	}
	sizes := make([]int, k)
	base := n / k
	extra := n % k
	for i := range sizes {
		sizes[i] = base
		if i < extra {
			sizes[i]++
		}
	}
	return sizes
}
