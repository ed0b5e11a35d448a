package services

import (
	"sort"
	"time"

	"github.com/google/uuid"

	"rentpro-backend/models"
)

// ObligationSnapshot is the read-only view of one obligation taken at scan
// time. It carries the customer contact fields so grouping and rendering
// never go back to the database.
type ObligationSnapshot struct {
	ID             uuid.UUID
	Kind           models.ObligationKind
	CustomerID     uuid.UUID
	CustomerType   string
	SpaceLabel     string
	Amount         float64
	DueDate        time.Time
	DaysToDeadline int

	CustomerNameEnglish string
	CustomerNameAmharic string
	CustomerPhone       string
	CustomerLanguage    string
}

// CustomerGroup is the set of obligations consolidated into a single
// notification. Rebuilt on every scan, never persisted.
type CustomerGroup struct {
	CustomerID   uuid.UUID
	CustomerType string

	NameEnglish       string
	NameAmharic       string
	Phone             string
	PreferredLanguage string

	Obligations      []ObligationSnapshot
	Count            int
	TotalAmount      float64
	EarliestDeadline time.Time
}

// EarliestDaysToDeadline returns the days-to-deadline of the most urgent
// obligation in the group. Obligations are sorted by due date, so that is
// the first one.
func (g *CustomerGroup) EarliestDaysToDeadline() int {
	if len(g.Obligations) == 0 {
		return 0
	}
	return g.Obligations[0].DaysToDeadline
}

// SameDueDate reports whether every obligation in the group falls due on
// the same day.
func (g *CustomerGroup) SameDueDate() bool {
	if len(g.Obligations) < 2 {
		return true
	}
	first := g.Obligations[0].DueDate
	for _, o := range g.Obligations[1:] {
		if !sameDay(first, o.DueDate) {
			return false
		}
	}
	return true
}

// DisplayName resolves the group's customer name for the requested
// language, falling back to the other language, then to a generic
// placeholder.
func (g *CustomerGroup) DisplayName(language string) string {
	primary, secondary := g.NameEnglish, g.NameAmharic
	if language == models.LanguageAmharic {
		primary, secondary = g.NameAmharic, g.NameEnglish
	}
	if primary != "" {
		return primary
	}
	if secondary != "" {
		return secondary
	}
	if language == models.LanguageAmharic {
		return "ደንበኛ"
	}
	return "Customer"
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// GroupingPolicy turns raw obligation snapshots into consolidated groups.
type GroupingPolicy func([]ObligationSnapshot) []CustomerGroup

// GroupByCustomer consolidates obligations per (customerID, customerType).
// A group may mix due dates.
func GroupByCustomer(obligations []ObligationSnapshot) []CustomerGroup {
	return groupBy(obligations, func(o ObligationSnapshot) string {
		return o.CustomerID.String() + "|" + o.CustomerType
	})
}

// GroupByCustomerAndDate consolidates obligations per
// (customerID, customerType, dueDate), so every group shares one due date.
func GroupByCustomerAndDate(obligations []ObligationSnapshot) []CustomerGroup {
	return groupBy(obligations, func(o ObligationSnapshot) string {
		return o.CustomerID.String() + "|" + o.CustomerType + "|" + o.DueDate.Format("2006-01-02")
	})
}

func groupBy(obligations []ObligationSnapshot, keyOf func(ObligationSnapshot) string) []CustomerGroup {
	byKey := make(map[string]*CustomerGroup)
	var order []string

	for _, o := range obligations {
		key := keyOf(o)
		group, ok := byKey[key]
		if !ok {
			group = &CustomerGroup{
				CustomerID:        o.CustomerID,
				CustomerType:      o.CustomerType,
				NameEnglish:       o.CustomerNameEnglish,
				NameAmharic:       o.CustomerNameAmharic,
				Phone:             o.CustomerPhone,
				PreferredLanguage: o.CustomerLanguage,
			}
			byKey[key] = group
			order = append(order, key)
		}
		group.Obligations = append(group.Obligations, o)
	}

	groups := make([]CustomerGroup, 0, len(order))
	for _, key := range order {
		group := byKey[key]
		sort.SliceStable(group.Obligations, func(i, j int) bool {
			return group.Obligations[i].DueDate.Before(group.Obligations[j].DueDate)
		})
		group.Count = len(group.Obligations)
		group.TotalAmount = 0
		for _, o := range group.Obligations {
			group.TotalAmount += o.Amount
		}
		group.EarliestDeadline = group.Obligations[0].DueDate
		groups = append(groups, *group)
	}

	// Most urgent customer first; ties keep insertion order.
	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].EarliestDeadline.Before(groups[j].EarliestDeadline)
	})
	return groups
}
