package report

import (
	"fmt"
	"io"
	"text/tabwriter"

	"salescope/internal/model"
)

// Render 把完整报表按十个小节输出到控制台
func Render(w io.Writer, rep *model.FullReport) {
	fmt.Fprintf(w, "数据集: %d 条交易\n", rep.RecordCount)

	section(w, "1. 分店月销售额环比增长 (Top)", func(tw *tabwriter.Writer) {
		fmt.Fprintln(tw, "分店\t月份\t销售额\t增速%")
		for _, r := range rep.BranchGrowth {
			fmt.Fprintf(tw, "%s\t%s\t%.2f\t%.2f\n", r.Branch, r.Month, r.TotalSales, r.GrowthRate)
		}
	}, len(rep.BranchGrowth))

	section(w, "2. 各分店利润最高商品线", func(tw *tabwriter.Writer) {
		fmt.Fprintln(tw, "分店\t商品线\t毛利额")
		for _, r := range rep.BranchTopLines {
			fmt.Fprintf(tw, "%s\t%s\t%.2f\n", r.Branch, r.ProductLine, r.TotalProfit)
		}
	}, len(rep.BranchTopLines))

	section(w, "3. 顾客消费分层", func(tw *tabwriter.Writer) {
		fmt.Fprintln(tw, "顾客\t消费额\t层级")
		for _, r := range rep.CustomerTiers {
			fmt.Fprintf(tw, "%s\t%.2f\t%s\n", r.CustomerID, r.TotalSpend, r.Tier)
		}
	}, len(rep.CustomerTiers))

	section(w, "4. 异常交易 (Z 分数)", func(tw *tabwriter.Writer) {
		fmt.Fprintln(tw, "发票号\t商品线\t总额\tZ")
		for _, r := range rep.Anomalies {
			fmt.Fprintf(tw, "%s\t%s\t%.2f\t%.2f\n", r.InvoiceID, r.ProductLine, r.Total, r.ZScore)
		}
	}, len(rep.Anomalies))

	section(w, "5. 各城市最常用支付方式", func(tw *tabwriter.Writer) {
		fmt.Fprintln(tw, "城市\t支付方式\t笔数")
		for _, r := range rep.CityPayments {
			fmt.Fprintf(tw, "%s\t%s\t%d\n", r.City, r.Payment, r.PaymentCount)
		}
	}, len(rep.CityPayments))

	section(w, "6. 按月按性别销售额", func(tw *tabwriter.Writer) {
		fmt.Fprintln(tw, "月份\t性别\t销售额")
		for _, r := range rep.GenderMonthly {
			fmt.Fprintf(tw, "%s\t%s\t%.2f\n", r.Month, r.Gender, r.TotalSales)
		}
	}, len(rep.GenderMonthly))

	section(w, "7. 各会员类型销量最高商品线", func(tw *tabwriter.Writer) {
		fmt.Fprintln(tw, "会员类型\t商品线\t销量")
		for _, r := range rep.CustomerTypeLines {
			fmt.Fprintf(tw, "%s\t%s\t%d\n", r.CustomerType, r.ProductLine, r.TotalUnitsSold)
		}
	}, len(rep.CustomerTypeLines))

	section(w, "8. 30 天内复购交易对", func(tw *tabwriter.Writer) {
		fmt.Fprintln(tw, "顾客\t首购\t复购\t间隔天数")
		for _, r := range rep.RepeatPairs {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%d\n",
				r.CustomerID, r.FirstDate.Format("2006-01-02"), r.RepeatDate.Format("2006-01-02"), r.DaysBetween)
		}
	}, len(rep.RepeatPairs))

	section(w, "9. 消费额 Top 顾客", func(tw *tabwriter.Writer) {
		fmt.Fprintln(tw, "顾客\t消费额")
		for _, r := range rep.TopCustomers {
			fmt.Fprintf(tw, "%s\t%.2f\n", r.CustomerID, r.TotalRevenue)
		}
	}, len(rep.TopCustomers))

	section(w, "10. 按星期销售额", func(tw *tabwriter.Writer) {
		fmt.Fprintln(tw, "星期\t销售额")
		for _, r := range rep.WeekdaySales {
			fmt.Fprintf(tw, "%s\t%.2f\n", r.Weekday, r.TotalSales)
		}
	}, len(rep.WeekdaySales))
}

func section(w io.Writer, title string, fill func(tw *tabwriter.Writer), rows int) {
	fmt.Fprintf(w, "\n—— %s ——\n", title)
	if rows == 0 {
		fmt.Fprintln(w, "(无数据)")
		return
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fill(tw)
	tw.Flush()
}
