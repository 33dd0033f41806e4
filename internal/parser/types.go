package parser

import "time"

// 标准字段名（映射后的列标识）
const (
	FieldInvoiceID      = "invoice_id"
	FieldBranch         = "branch"
	FieldCity           = "city"
	FieldCustomerType   = "customer_type"
	FieldGender         = "gender"
	FieldProductLine    = "product_line"
	FieldUnitPrice      = "unit_price"
	FieldQuantity       = "quantity"
	FieldTax            = "tax"
	FieldTotal          = "total"
	FieldDate           = "date"
	FieldTime           = "time"
	FieldPayment        = "payment"
	FieldCOGS           = "cogs"
	FieldGrossMarginPct = "gross_margin_percentage"
	FieldGrossIncome    = "gross_income"
	FieldRating         = "rating"
	FieldCustomerID     = "customer_id"
)

// requiredFields 缺一即在加载时直接报错的字段
var requiredFields = []string{
	FieldInvoiceID,
	FieldBranch,
	FieldCity,
	FieldCustomerType,
	FieldGender,
	FieldProductLine,
	FieldUnitPrice,
	FieldQuantity,
	FieldTax,
	FieldTotal,
	FieldDate,
	FieldPayment,
	FieldCOGS,
	FieldGrossIncome,
	FieldRating,
	FieldCustomerID,
}

// optionalFields 缺失时取零值的字段
var optionalFields = []string{
	FieldTime,
	FieldGrossMarginPct,
}

// ImportReport 单次导入的统计结果
type ImportReport struct {
	SourceFile   string        `json:"sourceFile"`
	TotalRows    int           `json:"totalRows"`    // 数据行数（不含表头）
	ImportedRows int           `json:"importedRows"`
	ErrorRows    int           `json:"errorRows"`
	Errors       []string      `json:"errors,omitempty"` // 错误样本，最多保留 maxErrorSamples 条
	Duration     time.Duration `json:"duration"`
}

// maxErrorSamples 报告里保留的行级错误样本上限
const maxErrorSamples = 20
