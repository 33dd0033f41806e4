package parser

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"salescope/internal/model"
)

// ParseXLSXFile 从 Excel 文件加载销售流水（取第一个工作表）
func ParseXLSXFile(path string) ([]*model.SalesRecord, *ImportReport, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("打开 Excel 失败: %w", err)
	}
	defer f.Close()

	return parseWorkbook(f, filepath.Base(path))
}

// ParseXLSX 从 reader 解析 Excel 销售流水
func ParseXLSX(r io.Reader, source string) ([]*model.SalesRecord, *ImportReport, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, nil, fmt.Errorf("打开 Excel 失败: %w", err)
	}
	defer f.Close()

	return parseWorkbook(f, source)
}

func parseWorkbook(f *excelize.File, source string) ([]*model.SalesRecord, *ImportReport, error) {
	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, nil, fmt.Errorf("%s: 工作簿没有工作表", source)
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, nil, fmt.Errorf("读取工作表 %s 失败: %w", sheets[0], err)
	}
	if len(rows) == 0 {
		return nil, nil, fmt.Errorf("%s: 工作表为空，缺少表头", source)
	}

	return parseRows(source, rows[0], rows[1:])
}
