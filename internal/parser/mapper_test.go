package parser

import (
	"strings"
	"testing"
)

func TestNormalizeColumnName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{"Invoice ID", "invoiceid"},
		{"Tax 5%", "tax5"},
		{"gross margin percentage", "grossmarginpercentage"},
		{"Customer_Type", "customertype"},
		{"  Product line  ", "productline"},
		{"Unit-Price", "unitprice"},
	}

	for _, tt := range tests {
		if got := NormalizeColumnName(tt.in); got != tt.want {
			t.Fatalf("NormalizeColumnName(%q) want=%q got=%q", tt.in, tt.want, got)
		}
	}
}

// kaggleHeader 原始数据集的表头写法
func kaggleHeader() []string {
	return []string{
		"Invoice ID", "Branch", "City", "Customer type", "Gender",
		"Product line", "Unit price", "Quantity", "Tax 5%", "Total",
		"Date", "Time", "Payment", "cogs", "gross margin percentage",
		"gross income", "Rating", "Customer ID",
	}
}

func TestMapHeader_KaggleStyle(t *testing.T) {
	t.Parallel()

	mapping, err := MapHeader(kaggleHeader())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if mapping[0] != FieldInvoiceID {
		t.Fatalf("col 0 want=%s got=%s", FieldInvoiceID, mapping[0])
	}
	if mapping[8] != FieldTax {
		t.Fatalf("col 8 want=%s got=%s", FieldTax, mapping[8])
	}
	if mapping[17] != FieldCustomerID {
		t.Fatalf("col 17 want=%s got=%s", FieldCustomerID, mapping[17])
	}
	if len(mapping) != 18 {
		t.Fatalf("want 18 mapped columns got %d", len(mapping))
	}
}

func TestMapHeader_SnakeCaseStyle(t *testing.T) {
	t.Parallel()

	header := []string{
		"invoice_id", "branch", "city", "customer_type", "gender",
		"product_line", "unit_price", "quantity", "tax", "total",
		"date", "time", "payment", "cogs", "gross_margin_percentage",
		"gross_income", "rating", "customer_id",
	}
	if _, err := MapHeader(header); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestMapHeader_MissingRequiredColumns(t *testing.T) {
	t.Parallel()

	_, err := MapHeader([]string{"Invoice ID", "Branch", "Date"})
	if err == nil {
		t.Fatalf("want error for missing columns")
	}
	// 错误信息列出缺失字段
	if !strings.Contains(err.Error(), FieldTotal) || !strings.Contains(err.Error(), FieldCustomerID) {
		t.Fatalf("error should name missing fields: %v", err)
	}
}

func TestMapHeader_UnknownColumnsIgnored(t *testing.T) {
	t.Parallel()

	header := append(kaggleHeader(), "some extra column")
	mapping, err := MapHeader(header)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := mapping[len(header)-1]; ok {
		t.Fatalf("unknown column must not be mapped")
	}
}
