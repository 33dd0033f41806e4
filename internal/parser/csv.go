package parser

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"salescope/internal/model"
)

// ParseCSVFile 从 CSV 文件加载销售流水
func ParseCSVFile(path string) ([]*model.SalesRecord, *ImportReport, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("打开 CSV 失败: %w", err)
	}
	defer f.Close()

	return ParseCSV(f, filepath.Base(path))
}

// ParseCSV 从任意 reader 解析 CSV 销售流水
//
// 第一行必须是表头，空文件视作表头缺失。
func ParseCSV(r io.Reader, source string) ([]*model.SalesRecord, *ImportReport, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // 行宽不齐交给行级校验处理
	reader.TrimLeadingSpace = true

	all, err := reader.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("读取 CSV 失败: %w", err)
	}
	if len(all) == 0 {
		return nil, nil, fmt.Errorf("%s: 文件为空，缺少表头", source)
	}

	return parseRows(source, all[0], all[1:])
}
