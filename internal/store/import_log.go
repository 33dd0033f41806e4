package store

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"salescope/internal/parser"
)

// ImportLogEntry 一次导入的记录
type ImportLogEntry struct {
	BatchID      string    `json:"batchId"`
	SourceFile   string    `json:"sourceFile"`
	TotalRows    int       `json:"totalRows"`
	ImportedRows int       `json:"importedRows"`
	ErrorRows    int       `json:"errorRows"`
	ImportedAt   time.Time `json:"importedAt"`
}

// LogImport 写入导入日志，返回本批次的 uuid
func (s *Store) LogImport(report *parser.ImportReport) (string, error) {
	batchID := uuid.New().String()
	_, err := s.db.Exec(`
		INSERT INTO import_log (batch_id, source_file, total_rows, imported_rows, error_rows, imported_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, batchID, report.SourceFile, report.TotalRows, report.ImportedRows, report.ErrorRows,
		time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return "", fmt.Errorf("failed to log import: %w", err)
	}
	return batchID, nil
}

// LatestImport 最近一次导入记录，没有导入过返回 nil
func (s *Store) LatestImport() (*ImportLogEntry, error) {
	row := s.db.QueryRow(`
		SELECT batch_id, source_file, total_rows, imported_rows, error_rows, imported_at
		FROM import_log ORDER BY imported_at DESC LIMIT 1
	`)

	var e ImportLogEntry
	var importedAt string
	err := row.Scan(&e.BatchID, &e.SourceFile, &e.TotalRows, &e.ImportedRows, &e.ErrorRows, &importedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query import log: %w", err)
	}

	e.ImportedAt, err = time.Parse(time.RFC3339, importedAt)
	if err != nil {
		return nil, fmt.Errorf("invalid imported_at %q: %w", importedAt, err)
	}
	return &e, nil
}
