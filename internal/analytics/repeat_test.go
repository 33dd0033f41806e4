package analytics

import (
	"testing"

	"salescope/internal/model"
)

func visit(customer, date string) *model.SalesRecord {
	return &model.SalesRecord{
		CustomerID: customer,
		Date:       mustDate(date),
	}
}

func TestRepeatPurchasePairs_WindowFiltering(t *testing.T) {
	t.Parallel()

	// 第 0/10/40 天三次购买：只有 0→10 在窗口内，
	// 0→40 与 10→40 的间隔都是 30 天以上
	records := []*model.SalesRecord{
		visit("c1", "2019-01-01"),
		visit("c1", "2019-01-11"),
		visit("c1", "2019-02-10"),
	}

	rows := RepeatPurchasePairs(records, 30)
	if len(rows) != 1 {
		t.Fatalf("want 1 pair got %d: %+v", len(rows), rows)
	}
	if !rows[0].FirstDate.Equal(mustDate("2019-01-01")) || !rows[0].RepeatDate.Equal(mustDate("2019-01-11")) {
		t.Fatalf("unexpected pair: %+v", rows[0])
	}
	if rows[0].DaysBetween != 10 {
		t.Fatalf("days want=10 got=%d", rows[0].DaysBetween)
	}
}

func TestRepeatPurchasePairs_ThirtyDayBoundaryInclusive(t *testing.T) {
	t.Parallel()

	records := []*model.SalesRecord{
		visit("c1", "2019-01-01"),
		visit("c1", "2019-01-31"), // 恰好 30 天
	}

	rows := RepeatPurchasePairs(records, 30)
	if len(rows) != 1 {
		t.Fatalf("30-day boundary want 1 pair got %d", len(rows))
	}
	if rows[0].DaysBetween != 30 {
		t.Fatalf("days want=30 got=%d", rows[0].DaysBetween)
	}
}

func TestRepeatPurchasePairs_AllForwardPairs(t *testing.T) {
	t.Parallel()

	// 自连接语义：0/10/20 天三次购买产生全部 3 个前向组合
	records := []*model.SalesRecord{
		visit("c1", "2019-01-01"),
		visit("c1", "2019-01-11"),
		visit("c1", "2019-01-21"),
	}

	rows := RepeatPurchasePairs(records, 30)
	if len(rows) != 3 {
		t.Fatalf("want 3 pairs got %d: %+v", len(rows), rows)
	}
	wantDays := []int{10, 20, 10}
	for i, w := range wantDays {
		if rows[i].DaysBetween != w {
			t.Fatalf("pair %d days want=%d got=%d", i, w, rows[i].DaysBetween)
		}
	}
}

func TestRepeatPurchasePairs_SameDayNotRepeat(t *testing.T) {
	t.Parallel()

	records := []*model.SalesRecord{
		visit("c1", "2019-01-01"),
		visit("c1", "2019-01-01"),
	}

	if rows := RepeatPurchasePairs(records, 30); len(rows) != 0 {
		t.Fatalf("same-day visits want 0 pairs got %d", len(rows))
	}
}

func TestRepeatPurchasePairs_CustomersIndependent(t *testing.T) {
	t.Parallel()

	records := []*model.SalesRecord{
		visit("c1", "2019-01-01"),
		visit("c2", "2019-01-05"),
	}

	if rows := RepeatPurchasePairs(records, 30); len(rows) != 0 {
		t.Fatalf("different customers want 0 pairs got %d", len(rows))
	}
}

func TestRepeatPurchasePairs_OrderedByCustomerThenDate(t *testing.T) {
	t.Parallel()

	records := []*model.SalesRecord{
		visit("c2", "2019-01-01"),
		visit("c2", "2019-01-05"),
		visit("c1", "2019-01-03"),
		visit("c1", "2019-01-10"),
	}

	rows := RepeatPurchasePairs(records, 30)
	if len(rows) != 2 {
		t.Fatalf("want 2 pairs got %d", len(rows))
	}
	if rows[0].CustomerID != "c1" || rows[1].CustomerID != "c2" {
		t.Fatalf("order want c1,c2 got %s,%s", rows[0].CustomerID, rows[1].CustomerID)
	}
}
