package report

import (
	"flag"
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"golang.org/x/exp/maps"

	"pocketledger/internal/cli"
	"pocketledger/internal/config"
	"pocketledger/internal/dashboard"
	"pocketledger/internal/ledger"
	"pocketledger/internal/logger"
	"pocketledger/internal/store"
	"pocketledger/internal/util"
)

type reportCommand struct {
	months int
	date   string
}

func NewCommand() cli.Command {
	return &reportCommand{}
}

func (c *reportCommand) Description() string {
	return "Displays the spending dashboard for the trailing months"
}

func (c *reportCommand) SetFlags(fs *flag.FlagSet) {
	fs.IntVar(&c.months, "months", dashboard.DefaultTrailingMonths, "how many trailing months to include in the trend")
	fs.StringVar(&c.date, "date", "", "reference date (YYYY-MM-DD, defaults to today)")
}

func (c *reportCommand) Run(conf *config.Config, s *store.Store, _ *logger.Logger) error {
	ref := time.Now()
	if c.date != "" {
		parsed, ok := ledger.ParseDate(c.date)
		if !ok {
			return fmt.Errorf("invalid reference date %q, expected YYYY-MM-DD", c.date)
		}
		ref = parsed
	}

	snapshot := s.Snapshot()
	summary := dashboard.Summarize(snapshot.Expenses, snapshot.Categories, c.months, ref)

	fmt.Println(util.ColorOutput(fmt.Sprintf("Report for %s %d", ref.Month(), ref.Year()), "bold", "underline"))
	fmt.Println()

	fmt.Printf("%s %s (%d transactions)\n",
		util.ColorOutput("Total spent:", "bold"),
		util.FormatAmount(summary.Total, conf.Currency),
		summary.Count)
	fmt.Printf("%s %s\n",
		util.ColorOutput("This month:", "bold"),
		util.FormatAmount(summary.MonthTotal, conf.Currency))
	fmt.Printf("%s %s\n",
		util.ColorOutput("Average expense:", "bold"),
		util.FormatAmount(summary.Average, conf.Currency))

	if summary.TopCategory != nil {
		fmt.Printf("%s %s %s (%s)\n",
			util.ColorOutput("Top category:", "bold"),
			summary.TopCategory.Icon,
			summary.TopCategory.Name,
			util.FormatAmount(summary.TopCategory.Total, conf.Currency))
	}

	fmt.Println()
	fmt.Println(util.ColorOutput("Monthly trend", "bold"))
	for _, point := range summary.Monthly {
		fmt.Printf("  %s  %s\n", point.Label, util.FormatAmount(point.Amount, conf.Currency))
	}

	if len(summary.Distribution) > 0 {
		fmt.Println()
		fmt.Println(util.ColorOutput("By category", "bold"))
		for _, slice := range summary.Distribution {
			fmt.Printf("  %-20s %s\n", slice.Name, util.FormatAmount(slice.Value, conf.Currency))
		}
	}

	printCurrencyTotals(snapshot.Expenses)

	if len(summary.TopExpenses) > 0 {
		fmt.Println()
		fmt.Println(util.ColorOutput("Top expenses", "bold"))
		for _, e := range summary.TopExpenses {
			fmt.Printf("  %-30s %s  %s\n",
				truncate(e.Title, 30),
				util.FormatAmount(e.Amount, e.Currency),
				e.Date)
		}
	}

	return nil
}

// printCurrencyTotals breaks spending down per currency code. Currency is
// free-form on the record, so multi-currency data sets are possible.
func printCurrencyTotals(expenses []ledger.Expense) {
	totals := map[string]float64{}
	for _, e := range expenses {
		if math.IsNaN(e.Amount) {
			continue
		}
		totals[e.Currency] += e.Amount
	}

	if len(totals) <= 1 {
		return
	}

	currencies := maps.Keys(totals)
	sort.Strings(currencies)

	fmt.Println()
	fmt.Println(util.ColorOutput("By currency", "bold"))
	for _, currency := range currencies {
		fmt.Printf("  %s\n", util.FormatAmount(totals[currency], currency))
	}
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return strings.TrimSpace(s[:max-3]) + "..."
}
