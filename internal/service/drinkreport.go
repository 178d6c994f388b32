package service

// Monthly drink write-off reporting: aggregate a month of raw orders by
// (category, name), stack unit volumes into liter totals for configured
// categories, and render the report text.

import (
	"encoding/json"
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/verumrexo/tip-harmony/internal/config"
	"github.com/verumrexo/tip-harmony/internal/dto"
	"github.com/verumrexo/tip-harmony/internal/model"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// StackingPolicy decides which aggregated items get their trailing size
// token parsed and summed into a single liter total per base name. The
// category sets have drifted over time, so they come from configuration.
type StackingPolicy struct {
	KegPrefix        string
	DraftCategory    string
	WineCategories   map[string]bool
	SpiritCategories map[string]bool
}

func NewStackingPolicy(cfg *config.Config) StackingPolicy {
	return StackingPolicy{
		KegPrefix:        cfg.StackKegPrefix,
		DraftCategory:    cfg.StackDraftCategory,
		WineCategories:   toSet(cfg.StackWineCategories),
		SpiritCategories: toSet(cfg.StackSpiritCategories),
	}
}

func toSet(values []string) map[string]bool {
	set := make(map[string]bool, len(values))
	for _, v := range values {
		set[v] = true
	}
	return set
}

// stacks reports whether an item is eligible for volume stacking. Wine
// categories only stack the 150ml pour sizes; bottles keep unit counts.
func (p StackingPolicy) stacks(name, category string) bool {
	switch {
	case p.KegPrefix != "" && strings.HasPrefix(name, p.KegPrefix):
		return true
	case category == p.DraftCategory:
		return true
	case p.SpiritCategories[category]:
		return true
	case p.WineCategories[category] && strings.Contains(name, "150ml"):
		return true
	}
	return false
}

// Item names encode their size as a trailing "<number><unit>" token,
// e.g. "Kvass 0.3l" or "Vīns 150ml".
var volumePattern = regexp.MustCompile(`(?i)^(.+?)\s+([0-9.]+)\s*(ml|cl|l)?$`)

// parseVolume splits "<base> <number><unit>" into the base name and the
// size in liters. The unit defaults to liters when omitted.
func parseVolume(name string) (base string, liters decimal.Decimal, ok bool) {
	m := volumePattern.FindStringSubmatch(name)
	if m == nil {
		return "", decimal.Zero, false
	}
	v, err := decimal.NewFromString(m[2])
	if err != nil {
		return "", decimal.Zero, false
	}
	switch strings.ToLower(m[3]) {
	case "ml":
		v = v.Shift(-3)
	case "cl":
		v = v.Shift(-2)
	}
	return strings.TrimSpace(m[1]), v, true
}

// formatLiters renders a liter total: whole numbers without decimals,
// otherwise two decimal places with trailing zeros stripped ("1.5l").
func formatLiters(total decimal.Decimal) string {
	if total.IsInteger() {
		return total.Truncate(0).String() + "l"
	}
	s := strings.TrimRight(total.Round(2).StringFixed(2), "0")
	s = strings.TrimSuffix(s, ".")
	return s + "l"
}

// ProcessOrders aggregates raw orders into sorted display rows. An order
// with an unparseable items payload is skipped with a warning — one bad
// row must not kill the whole report. Aggregation is keyed on
// (category, name), so record order never changes the totals; ties under
// the category sort keep first-seen order.
func ProcessOrders(orders []model.DrinkOrder, policy StackingPolicy) []dto.DrinkReportItem {
	type aggItem struct {
		name     string
		category string
		quantity int
	}
	totals := make(map[string]*aggItem)
	var seen []string

	for _, o := range orders {
		var items []model.DrinkOrderItem
		if err := json.Unmarshal([]byte(o.Items), &items); err != nil {
			log.Warn().Err(err).Str("order_id", o.ID.String()).
				Msg("skipping drink order with malformed items payload")
			continue
		}
		for _, it := range items {
			if it.Quantity <= 0 {
				continue
			}
			key := it.Category + "::" + it.Name
			if agg, ok := totals[key]; ok {
				agg.quantity += it.Quantity
			} else {
				totals[key] = &aggItem{name: it.Name, category: it.Category, quantity: it.Quantity}
				seen = append(seen, key)
			}
		}
	}

	aggregated := make([]*aggItem, 0, len(seen))
	for _, key := range seen {
		aggregated = append(aggregated, totals[key])
	}
	sort.SliceStable(aggregated, func(i, j int) bool {
		return aggregated[i].category < aggregated[j].category
	})

	// Volume stacking. A (category, base) group only exists once an order
	// contributed a positive quantity — stacking never invents rows.
	type volGroup struct {
		base     string
		category string
		liters   decimal.Decimal
	}
	volumes := make(map[string]*volGroup)
	var volSeen []string

	items := make([]dto.DrinkReportItem, 0, len(aggregated))
	for _, it := range aggregated {
		if policy.stacks(it.name, it.category) {
			if base, liters, ok := parseVolume(it.name); ok {
				key := it.category + "::" + base
				g := volumes[key]
				if g == nil {
					g = &volGroup{base: base, category: it.category}
					volumes[key] = g
					volSeen = append(volSeen, key)
				}
				g.liters = g.liters.Add(liters.Mul(decimal.NewFromInt(int64(it.quantity))))
				continue
			}
		}
		items = append(items, dto.DrinkReportItem{
			Name:     it.name,
			Category: it.category,
			Display:  strconv.Itoa(it.quantity),
			Quantity: it.quantity,
		})
	}

	for _, key := range volSeen {
		g := volumes[key]
		items = append(items, dto.DrinkReportItem{
			Name:     g.base,
			Category: g.category,
			Display:  formatLiters(g.liters),
		})
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Category < items[j].Category
	})
	return items
}

// FormatReport renders the plain-text monthly report: a header, then item
// lines grouped under a category line whenever the category changes.
func FormatReport(items []dto.DrinkReportItem, totalOrders, month, year int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Dzērienu atskaite — %d/%d\n", month, year)
	fmt.Fprintf(&b, "Kopā ieraksti: %d\n\n", totalOrders)

	currentCat := ""
	for _, it := range items {
		if it.Category != currentCat {
			currentCat = it.Category
			fmt.Fprintf(&b, "\n%s\n", currentCat)
		}
		fmt.Fprintf(&b, "  %s: %s\n", it.Name, it.Display)
	}
	return b.String()
}
