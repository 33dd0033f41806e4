package store

import (
	"database/sql"
	"fmt"
	"time"

	"salescope/internal/model"
)

const dateLayout = "2006-01-02"

// BatchInsertSales 批量插入销售流水
func (s *Store) BatchInsertSales(records []*model.SalesRecord) error {
	if len(records) == 0 {
		return nil
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`
		INSERT INTO sales (
			invoice_id, branch, city, customer_type, gender, product_line,
			unit_price, quantity, tax, total,
			sale_date, sale_time, payment,
			cogs, gross_margin_pct, gross_income, rating, customer_id
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer stmt.Close()

	for _, r := range records {
		_, err := stmt.Exec(
			r.InvoiceID, r.Branch, r.City, r.CustomerType, r.Gender, r.ProductLine,
			r.UnitPrice, r.Quantity, r.Tax, r.Total,
			r.Date.Format(dateLayout), r.Time, r.Payment,
			r.COGS, r.GrossMarginPct, r.GrossIncome, r.Rating, r.CustomerID,
		)
		if err != nil {
			return fmt.Errorf("failed to insert record %s: %w", r.InvoiceID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// ReplaceDataset 清空旧数据后整批写入新数据集
func (s *Store) ReplaceDataset(records []*model.SalesRecord) error {
	if _, err := s.db.Exec("DELETE FROM sales"); err != nil {
		return fmt.Errorf("failed to clear sales: %w", err)
	}
	return s.BatchInsertSales(records)
}

// GetAllSales 读出全部销售流水（按主键序）
func (s *Store) GetAllSales() ([]*model.SalesRecord, error) {
	rows, err := s.db.Query(`
		SELECT invoice_id, branch, city, customer_type, gender, product_line,
		       unit_price, quantity, tax, total,
		       sale_date, sale_time, payment,
		       cogs, gross_margin_pct, gross_income, rating, customer_id
		FROM sales ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query sales: %w", err)
	}
	defer rows.Close()

	records := make([]*model.SalesRecord, 0)
	for rows.Next() {
		var r model.SalesRecord
		var saleDate string
		var saleTime sql.NullString
		var marginPct sql.NullFloat64

		err := rows.Scan(
			&r.InvoiceID, &r.Branch, &r.City, &r.CustomerType, &r.Gender, &r.ProductLine,
			&r.UnitPrice, &r.Quantity, &r.Tax, &r.Total,
			&saleDate, &saleTime, &r.Payment,
			&r.COGS, &marginPct, &r.GrossIncome, &r.Rating, &r.CustomerID,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan record: %w", err)
		}

		r.Date, err = time.Parse(dateLayout, saleDate)
		if err != nil {
			return nil, fmt.Errorf("invalid sale_date %q: %w", saleDate, err)
		}
		r.Time = saleTime.String
		r.GrossMarginPct = marginPct.Float64

		records = append(records, &r)
	}
	return records, rows.Err()
}

// CountSales 当前缓存的流水条数
func (s *Store) CountSales() (int, error) {
	var n int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM sales").Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count sales: %w", err)
	}
	return n, nil
}
