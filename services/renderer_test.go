package services

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rentpro-backend/models"
)

func testRenderer() (*MessageRenderer, *fakeTemplateStore) {
	templates := newFakeTemplateStore()
	templates.add(models.TemplateCategoryPayment, models.TemplateVariantApproaching,
		"Dear {customer_name}, your rent payment of {amount} for {spaces} is due {when} ({due_date}).",
		"ውድ {customer_name}፣ የ{spaces} ክፍያዎ {amount} መክፈያ ቀን {when} ({due_date}) ነው።")
	templates.add(models.TemplateCategoryPayment, models.TemplateVariantPassed,
		"Dear {customer_name}, your rent payment of {amount} for {spaces} was due {when} ({due_date}).",
		"ውድ {customer_name}፣ የ{spaces} ክፍያዎ {amount} መክፈያ ቀን {when} ({due_date}) አልፏል።")

	renderer := NewMessageRenderer(templates)
	renderer.now = func() time.Time { return day(0) }
	return renderer, templates
}

func paymentGroup(daysToDeadline ...int) *CustomerGroup {
	customer := uuid.New()
	snapshots := make([]ObligationSnapshot, 0, len(daysToDeadline))
	labels := []string{"A-101", "A-102", "A-103"}
	amounts := []float64{1500, 2000, 700}
	for i, d := range daysToDeadline {
		snapshots = append(snapshots, snapshot(customer, labels[i], amounts[i], d))
	}
	groups := GroupByCustomer(snapshots)
	return &groups[0]
}

// Scenario: two payments with differing due dates get per-item day
// suffixes and the consolidated sentence.
func TestRender_MixedDueDates(t *testing.T) {
	renderer, _ := testRenderer()
	group := paymentGroup(3, 5)

	message, err := renderer.Render(group, models.KindPayment, models.LanguageEnglish)
	require.NoError(t, err)

	assert.Contains(t, message, "A-101 (3 days), A-102 (5 days)")
	assert.Contains(t, message, "3,500.00 Birr")
}

// Scenario: the same two payments due on one date render a plain
// comma-joined list with no per-item qualifier.
func TestRender_SharedDueDate(t *testing.T) {
	renderer, _ := testRenderer()
	group := paymentGroup(5, 5)

	message, err := renderer.Render(group, models.KindPayment, models.LanguageEnglish)
	require.NoError(t, err)

	assert.Contains(t, message, "A-101, A-102")
	assert.NotContains(t, message, "(5 days)")
	assert.Contains(t, message, "3,500.00 Birr")
	assert.Contains(t, message, "in 5 days")
}

// Scenario: six days overdue selects the passed variant and the
// "6 days ago" urgency phrase.
func TestRender_OverdueUsesPassedVariant(t *testing.T) {
	renderer, _ := testRenderer()
	group := paymentGroup(-6)

	message, err := renderer.Render(group, models.KindPayment, models.LanguageEnglish)
	require.NoError(t, err)

	assert.Contains(t, message, "was due")
	assert.Contains(t, message, "6 days ago")
}

// Variant selection is by sign only: a large positive day count still
// renders the approaching variant.
func TestRender_VariantBySignNotMagnitude(t *testing.T) {
	renderer, _ := testRenderer()

	message, err := renderer.Render(paymentGroup(45), models.KindPayment, models.LanguageEnglish)
	require.NoError(t, err)
	assert.Contains(t, message, "is due")

	message, err = renderer.Render(paymentGroup(-1), models.KindPayment, models.LanguageEnglish)
	require.NoError(t, err)
	assert.Contains(t, message, "was due")
	assert.Contains(t, message, "YESTERDAY")
}

func TestRender_DueTodayIsNeverInZeroDays(t *testing.T) {
	renderer, _ := testRenderer()
	group := paymentGroup(0)

	message, err := renderer.Render(group, models.KindPayment, models.LanguageEnglish)
	require.NoError(t, err)

	assert.Contains(t, message, "TODAY")
	assert.NotContains(t, message, "in 0 days")
}

func TestRender_AmharicTemplate(t *testing.T) {
	renderer, _ := testRenderer()
	customer := uuid.New()
	s := snapshot(customer, "A-101", 1500, 0)
	s.CustomerNameAmharic = "አበበ ከበደ"
	groups := GroupByCustomer([]ObligationSnapshot{s})

	message, err := renderer.Render(&groups[0], models.KindPayment, models.LanguageAmharic)
	require.NoError(t, err)

	assert.Contains(t, message, "አበበ ከበደ")
	assert.Contains(t, message, "ዛሬ")
	assert.Contains(t, message, "1,500.00 ብር")
}

func TestRender_UnresolvedPlaceholderLeftAsIs(t *testing.T) {
	templates := newFakeTemplateStore()
	templates.add(models.TemplateCategoryPayment, models.TemplateVariantApproaching,
		"Hello {customer_name}, penalty: {penalty}.", "{penalty}")
	renderer := NewMessageRenderer(templates)
	renderer.now = func() time.Time { return day(0) }

	message, err := renderer.Render(paymentGroup(5), models.KindPayment, models.LanguageEnglish)
	require.NoError(t, err)

	assert.Contains(t, message, "{penalty}")
	assert.NotContains(t, message, "{customer_name}")
}

func TestRender_MissingTemplate(t *testing.T) {
	renderer := NewMessageRenderer(newFakeTemplateStore())
	renderer.now = func() time.Time { return day(0) }

	_, err := renderer.Render(paymentGroup(5), models.KindPayment, models.LanguageEnglish)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTemplateNotFound)
}

// Mixed-date groups never touch the template store, so a missing template
// cannot fail them.
func TestRender_ConsolidatedPathSkipsTemplates(t *testing.T) {
	renderer := NewMessageRenderer(newFakeTemplateStore())
	renderer.now = func() time.Time { return day(0) }

	message, err := renderer.Render(paymentGroup(3, 5), models.KindPayment, models.LanguageEnglish)
	require.NoError(t, err)
	assert.Contains(t, message, "A-101 (3 days)")
}

func TestUrgencyPhrase_Buckets(t *testing.T) {
	cases := []struct {
		days    int
		english string
		amharic string
	}{
		{0, "TODAY", "ዛሬ"},
		{1, "TOMORROW", "ነገ"},
		{-1, "YESTERDAY", "ትናንት"},
		{3, "in 3 days", "በ3 ቀን ውስጥ"},
		{-6, "6 days ago", "ከ6 ቀን በፊት"},
		{30, "in 30 days", "በ30 ቀን ውስጥ"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.english, UrgencyPhrase(tc.days, models.LanguageEnglish), "days=%d", tc.days)
		assert.Equal(t, tc.amharic, UrgencyPhrase(tc.days, models.LanguageAmharic), "days=%d", tc.days)
	}
}
