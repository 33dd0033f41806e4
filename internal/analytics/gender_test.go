package analytics

import (
	"testing"

	"salescope/internal/model"
)

func TestMonthlySalesByGender(t *testing.T) {
	t.Parallel()

	records := []*model.SalesRecord{
		{Gender: "Female", Total: 100.456, Date: mustDate("2019-01-05")},
		{Gender: "Female", Total: 50, Date: mustDate("2019-01-20")},
		{Gender: "Male", Total: 80, Date: mustDate("2019-01-10")},
		{Gender: "Male", Total: 200, Date: mustDate("2019-02-01")},
	}

	rows := MonthlySalesByGender(records)
	want := []model.GenderMonthRow{
		{Month: "2019-01", Gender: "Female", TotalSales: 150.46},
		{Month: "2019-01", Gender: "Male", TotalSales: 80},
		{Month: "2019-02", Gender: "Male", TotalSales: 200},
	}
	if len(rows) != len(want) {
		t.Fatalf("want %d rows got %d: %+v", len(want), len(rows), rows)
	}
	for i, w := range want {
		if rows[i] != w {
			t.Fatalf("row %d want=%+v got=%+v", i, w, rows[i])
		}
	}
}

func TestMonthlySalesByGender_EmptyDataset(t *testing.T) {
	t.Parallel()

	if rows := MonthlySalesByGender(nil); len(rows) != 0 {
		t.Fatalf("empty dataset want 0 rows got %d", len(rows))
	}
}
