package parser

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"salescope/internal/model"
)

// ParseFile 按扩展名分发到 CSV 或 XLSX 解析
func ParseFile(path string) ([]*model.SalesRecord, *ImportReport, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return ParseCSVFile(path)
	case ".xlsx", ".xlsm":
		return ParseXLSXFile(path)
	default:
		return nil, nil, fmt.Errorf("不支持的文件类型: %s", filepath.Ext(path))
	}
}

// parseRows 共享的行解析管线：表头映射 + 逐行转换
//
// 表头级错误（缺列）直接失败；行级错误计数并保留样本，
// 不中断整个导入。
func parseRows(source string, header []string, rows [][]string) ([]*model.SalesRecord, *ImportReport, error) {
	start := time.Now()

	mapping, err := MapHeader(header)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", source, err)
	}

	report := &ImportReport{SourceFile: source, TotalRows: len(rows)}
	records := make([]*model.SalesRecord, 0, len(rows))

	for i, row := range rows {
		record, err := parseRow(mapping, row)
		if err != nil {
			report.ErrorRows++
			if len(report.Errors) < maxErrorSamples {
				// 数据行号从 2 起（1 是表头）
				report.Errors = append(report.Errors, fmt.Sprintf("第 %d 行: %v", i+2, err))
			}
			continue
		}
		records = append(records, record)
		report.ImportedRows++
	}

	report.Duration = time.Since(start)
	return records, report, nil
}

// parseRow 把一行单元格转换成 SalesRecord
func parseRow(mapping map[int]string, row []string) (*model.SalesRecord, error) {
	cells := make(map[string]string, len(mapping))
	for idx, field := range mapping {
		if idx < len(row) {
			cells[field] = strings.TrimSpace(row[idx])
		}
	}

	for _, field := range requiredFields {
		if cells[field] == "" {
			return nil, fmt.Errorf("字段 %s 为空", field)
		}
	}

	r := &model.SalesRecord{
		InvoiceID:    cells[FieldInvoiceID],
		Branch:       cells[FieldBranch],
		City:         cells[FieldCity],
		CustomerType: cells[FieldCustomerType],
		Gender:       cells[FieldGender],
		ProductLine:  cells[FieldProductLine],
		Payment:      cells[FieldPayment],
		CustomerID:   cells[FieldCustomerID],
	}

	var err error
	if r.UnitPrice, err = parseFloat(cells[FieldUnitPrice]); err != nil {
		return nil, fmt.Errorf("%s: %w", FieldUnitPrice, err)
	}
	if r.Quantity, err = parseQuantity(cells[FieldQuantity]); err != nil {
		return nil, fmt.Errorf("%s: %w", FieldQuantity, err)
	}
	if r.Tax, err = parseFloat(cells[FieldTax]); err != nil {
		return nil, fmt.Errorf("%s: %w", FieldTax, err)
	}
	if r.Total, err = parseFloat(cells[FieldTotal]); err != nil {
		return nil, fmt.Errorf("%s: %w", FieldTotal, err)
	}
	if r.COGS, err = parseFloat(cells[FieldCOGS]); err != nil {
		return nil, fmt.Errorf("%s: %w", FieldCOGS, err)
	}
	if r.GrossIncome, err = parseFloat(cells[FieldGrossIncome]); err != nil {
		return nil, fmt.Errorf("%s: %w", FieldGrossIncome, err)
	}
	if r.Rating, err = parseFloat(cells[FieldRating]); err != nil {
		return nil, fmt.Errorf("%s: %w", FieldRating, err)
	}
	if r.Date, err = ParseDate(cells[FieldDate]); err != nil {
		return nil, fmt.Errorf("%s: %w", FieldDate, err)
	}

	// 可选字段
	if v := cells[FieldGrossMarginPct]; v != "" {
		if r.GrossMarginPct, err = parseFloat(v); err != nil {
			return nil, fmt.Errorf("%s: %w", FieldGrossMarginPct, err)
		}
	}
	if r.Time, err = ParseTimeOfDay(cells[FieldTime]); err != nil {
		return nil, fmt.Errorf("%s: %w", FieldTime, err)
	}

	return r, nil
}
