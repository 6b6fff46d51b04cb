package filter

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"pocketledger/internal/ledger"
)

func parseAmount(s string) (float64, error) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid amount format: %w", err)
	}
	return f, nil
}

// parseSort parses a sort string like "date:desc" into SortOptions.
func parseSort(s string) (*SortOptions, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return nil, fmt.Errorf("invalid sort format, expected field:direction")
	}

	field := SortField(parts[0])
	direction := SortDirection(parts[1])

	if field != SortByDate && field != SortByAmount {
		return nil, fmt.Errorf("invalid sort field: %s (must be date or amount)", field)
	}
	if direction != SortAsc && direction != SortDesc {
		return nil, fmt.Errorf("invalid sort direction: %s (must be asc or desc)", direction)
	}

	return &SortOptions{Field: field, Direction: direction}, nil
}

// ParseExpenseFilters parses URL query parameters into filter and sort
// options. An absent sort parameter yields a nil sort, keeping insertion
// order.
func ParseExpenseFilters(params url.Values) (*ExpenseFilter, *SortOptions, error) {
	f := &ExpenseFilter{}

	if q := params.Get("q"); q != "" {
		f.Query = &q
	}

	if minStr := params.Get("amount_min"); minStr != "" {
		val, err := parseAmount(minStr)
		if err != nil {
			return nil, nil, fmt.Errorf("invalid amount_min: %w", err)
		}
		f.AmountMin = &val
	}

	if maxStr := params.Get("amount_max"); maxStr != "" {
		val, err := parseAmount(maxStr)
		if err != nil {
			return nil, nil, fmt.Errorf("invalid amount_max: %w", err)
		}
		f.AmountMax = &val
	}

	if fromStr := params.Get("date_from"); fromStr != "" {
		val, err := time.Parse(ledger.DateLayout, fromStr)
		if err != nil {
			return nil, nil, fmt.Errorf("invalid date_from: %w", err)
		}
		f.DateFrom = &val
	}

	if toStr := params.Get("date_to"); toStr != "" {
		val, err := time.Parse(ledger.DateLayout, toStr)
		if err != nil {
			return nil, nil, fmt.Errorf("invalid date_to: %w", err)
		}
		f.DateTo = &val
	}

	var sortOpts *SortOptions
	if sortStr := params.Get("sort"); sortStr != "" {
		parsed, err := parseSort(sortStr)
		if err != nil {
			return nil, nil, err
		}
		sortOpts = parsed
	}

	return f, sortOpts, nil
}
