package analytics

import "math"

// Round2 四舍五入到 2 位小数（远离零方向，与报表口径一致）
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Mean 算术平均，空切片返回 0
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// SampleStdDev 样本标准差（n-1），样本数不足 2 时返回 0
func SampleStdDev(values []float64) float64 {
	n := len(values)
	if n < 2 {
		return 0
	}
	mean := Mean(values)
	var ss float64
	for _, v := range values {
		d := v - mean
		ss += d * d
	}
	return math.Sqrt(ss / float64(n-1))
}
