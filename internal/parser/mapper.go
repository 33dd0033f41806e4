package parser

import (
	"fmt"
	"sort"
	"strings"
)

// headerAliases 归一化列名 → 标准字段
//
// 同一字段在不同导出里见过的写法都列在这里
// （Kaggle 原始表头、SQL 导出下划线风格等）。
var headerAliases = map[string]string{
	"invoiceid": FieldInvoiceID,
	"invoice":   FieldInvoiceID,

	"branch": FieldBranch,
	"store":  FieldBranch,

	"city": FieldCity,

	"customertype": FieldCustomerType,

	"gender": FieldGender,

	"productline":     FieldProductLine,
	"productcategory": FieldProductLine,

	"unitprice": FieldUnitPrice,
	"price":     FieldUnitPrice,

	"quantity": FieldQuantity,
	"qty":      FieldQuantity,

	"tax":  FieldTax,
	"tax5": FieldTax,
	"vat":  FieldTax,

	"total": FieldTotal,

	"date":            FieldDate,
	"transactiondate": FieldDate,

	"time":            FieldTime,
	"transactiontime": FieldTime,

	"payment":       FieldPayment,
	"paymentmethod": FieldPayment,

	"cogs": FieldCOGS,

	"grossmarginpercentage": FieldGrossMarginPct,

	"grossincome": FieldGrossIncome,
	"grossprofit": FieldGrossIncome,

	"rating": FieldRating,

	"customerid": FieldCustomerID,
	"customer":   FieldCustomerID,
}

// NormalizeColumnName 归一化列名：小写并去掉空白、下划线、百分号等修饰
func NormalizeColumnName(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	replacer := strings.NewReplacer(
		" ", "",
		"\t", "",
		"_", "",
		"-", "",
		".", "",
		"%", "",
		"(", "",
		")", "",
	)
	return replacer.Replace(s)
}

// MapHeader 把表头行映射成 列索引 → 标准字段
//
// 必填字段缺失立即报错（加载期快速失败），未识别的列忽略。
func MapHeader(columns []string) (map[int]string, error) {
	mapping := make(map[int]string, len(columns))
	seen := make(map[string]bool)

	for idx, col := range columns {
		normalized := NormalizeColumnName(col)
		if normalized == "" {
			continue
		}
		field, ok := headerAliases[normalized]
		if !ok {
			continue
		}
		if seen[field] {
			// 同一字段映射到多列时保留先出现的列
			continue
		}
		seen[field] = true
		mapping[idx] = field
	}

	missing := make([]string, 0)
	for _, field := range requiredFields {
		if !seen[field] {
			missing = append(missing, field)
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return nil, fmt.Errorf("表头缺少必需列: %s", strings.Join(missing, ", "))
	}

	return mapping, nil
}
