package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"salescope/internal/config"
	"salescope/internal/exporter"
	"salescope/internal/model"
	"salescope/internal/parser"
	"salescope/internal/report"
	"salescope/internal/store"
)

var (
	input      = flag.String("input", "", "销售流水文件 (csv/xlsx)；为空时使用上次导入的数据")
	dataDir    = flag.String("dataDir", "", "数据目录 (覆盖配置文件)")
	exportXlsx = flag.Bool("export", true, "是否导出 Excel 报表")
)

func main() {
	flag.Parse()

	fmt.Println("==========================================")
	fmt.Println("  SaleScope - 超市销售数据分析工具")
	fmt.Println("==========================================")

	// 加载配置
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Printf("加载配置失败，使用默认配置: %v", err)
		cfg = config.DefaultConfig()
	}

	// 命令行参数覆盖配置
	if *dataDir != "" {
		cfg.Data.DataDir = *dataDir
	}

	// 确保数据目录存在
	dir, err := config.EnsureDataDir(cfg)
	if err != nil {
		log.Fatalf("创建数据目录失败: %v", err)
	}
	fmt.Printf("数据目录: %s\n", dir)

	// 打开数据库
	st, err := store.New(config.DBPath(cfg, dir))
	if err != nil {
		log.Fatalf("打开数据库失败: %v", err)
	}
	defer st.Close()

	records, err := loadRecords(st, *input)
	if err != nil {
		log.Fatalf("%v", err)
	}
	if len(records) == 0 {
		fmt.Println("数据集为空，报表将没有数据行")
	}

	// 计算十项报表
	engine := report.NewEngine(records, cfg.Analysis)
	rep := engine.RunAll()
	report.Render(os.Stdout, rep)

	// 导出 Excel
	if *exportXlsx {
		path, err := exporter.NewExporter(rep).SaveReport(config.ExportDir(dir))
		if err != nil {
			log.Fatalf("导出报表失败: %v", err)
		}
		fmt.Printf("\n报表已导出: %s\n", path)
	}
}

// loadRecords 解析输入文件并缓存，或从数据库读上次导入的数据
func loadRecords(st *store.Store, input string) ([]*model.SalesRecord, error) {
	if input == "" {
		latest, err := st.LatestImport()
		if err != nil {
			return nil, fmt.Errorf("读取导入日志失败: %w", err)
		}
		if latest == nil {
			return nil, fmt.Errorf("没有历史数据，请用 -input 指定销售流水文件")
		}
		fmt.Printf("使用上次导入: %s (%d 条, 批次 %s)\n",
			latest.SourceFile, latest.ImportedRows, latest.BatchID)

		records, err := st.GetAllSales()
		if err != nil {
			return nil, fmt.Errorf("读取缓存数据失败: %w", err)
		}
		return records, nil
	}

	records, importReport, err := parser.ParseFile(input)
	if err != nil {
		return nil, fmt.Errorf("解析输入文件失败: %w", err)
	}

	fmt.Printf("导入 %s: 共 %d 行，成功 %d，失败 %d (耗时 %s)\n",
		importReport.SourceFile, importReport.TotalRows,
		importReport.ImportedRows, importReport.ErrorRows, importReport.Duration)
	for _, msg := range importReport.Errors {
		fmt.Printf("  跳过 %s\n", msg)
	}

	// 写入缓存，记录批次
	if err := st.ReplaceDataset(records); err != nil {
		return nil, fmt.Errorf("写入缓存失败: %w", err)
	}
	batchID, err := st.LogImport(importReport)
	if err != nil {
		return nil, fmt.Errorf("写入导入日志失败: %w", err)
	}
	fmt.Printf("导入批次: %s\n", batchID)

	return records, nil
}
