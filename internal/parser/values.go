package parser

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// dateLayouts 支持的日期写法，按出现频率排列
var dateLayouts = []string{
	"1/2/2006",
	"2006-01-02",
	"01-02-2006",
	"2006/01/02",
	"1/2/06",
}

// timeLayouts 支持的时间写法
var timeLayouts = []string{
	"15:04",
	"15:04:05",
	"3:04 PM",
}

// ParseDate 解析交易日期，返回值只保留日期部分
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("日期为空")
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			y, m, d := t.Date()
			return time.Date(y, m, d, 0, 0, 0, 0, time.UTC), nil
		}
	}
	return time.Time{}, fmt.Errorf("无法识别的日期: %q", s)
}

// ParseTimeOfDay 解析交易时间，统一输出 HH:MM
func ParseTimeOfDay(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", nil
	}
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("15:04"), nil
		}
	}
	return "", fmt.Errorf("无法识别的时间: %q", s)
}

// parseFloat 解析数值列，容忍千分位逗号与货币空格
func parseFloat(s string) (float64, error) {
	s = strings.TrimSpace(strings.ReplaceAll(s, ",", ""))
	if s == "" {
		return 0, fmt.Errorf("数值为空")
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("无法解析数值 %q", s)
	}
	return v, nil
}

// parseQuantity 解析数量列，必须是正整数
func parseQuantity(s string) (int, error) {
	v, err := parseFloat(s)
	if err != nil {
		return 0, err
	}
	n := int(v)
	if float64(n) != v {
		return 0, fmt.Errorf("数量不是整数: %q", s)
	}
	if n <= 0 {
		return 0, fmt.Errorf("数量必须为正: %d", n)
	}
	return n, nil
}
