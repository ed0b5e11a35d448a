package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"rentpro-backend/models"
	"rentpro-backend/utils"
)

// ErrTemplateNotFound means no active template exists for the needed
// category/variant pair. Fatal for the group being rendered, caught at the
// per-group boundary.
var ErrTemplateNotFound = errors.New("sms template not found")

// TemplateStore reads SMS template reference data.
type TemplateStore interface {
	FindActive(category, variant string) (*models.SmsTemplate, error)
}

type GormTemplateStore struct {
	db *gorm.DB
}

func NewGormTemplateStore(db *gorm.DB) *GormTemplateStore {
	return &GormTemplateStore{db: db}
}

func (s *GormTemplateStore) FindActive(category, variant string) (*models.SmsTemplate, error) {
	var template models.SmsTemplate
	err := s.db.Where("category = ? AND variant = ? AND is_active = true", category, variant).
		First(&template).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: %s/%s", ErrTemplateNotFound, category, variant)
	}
	if err != nil {
		return nil, fmt.Errorf("query template %s/%s: %w", category, variant, err)
	}
	return &template, nil
}

// MessageRenderer turns a consolidated group into the final SMS text.
type MessageRenderer struct {
	templates TemplateStore
	now       func() time.Time
}

func NewMessageRenderer(templates TemplateStore) *MessageRenderer {
	return &MessageRenderer{templates: templates, now: time.Now}
}

// Render produces the localized notification text for a group.
//
// Groups whose obligations share one due date go through the template path
// with a plain comma-joined space list. Groups with differing due dates get
// a consolidated sentence built here, with a per-item day suffix on every
// space, because urgency differs per line item.
func (r *MessageRenderer) Render(group *CustomerGroup, kind models.ObligationKind, language string) (string, error) {
	daysRemaining := utils.DaysBetween(r.now(), group.EarliestDeadline)

	// Variant is decided by sign only, never by magnitude.
	variant := models.TemplateVariantApproaching
	if daysRemaining < 0 {
		variant = models.TemplateVariantPassed
	}

	if !group.SameDueDate() {
		return r.renderConsolidated(group, kind, language, variant, daysRemaining), nil
	}

	template, err := r.templates.FindActive(models.TemplateCategoryForKind(kind), variant)
	if err != nil {
		return "", err
	}

	labels := make([]string, 0, len(group.Obligations))
	for _, o := range group.Obligations {
		labels = append(labels, o.SpaceLabel)
	}

	replacements := map[string]string{
		"customer_name": group.DisplayName(language),
		"spaces":        strings.Join(labels, ", "),
		"amount":        utils.FormatBirr(group.TotalAmount, language),
		"due_date":      utils.FormatEthiopicDate(group.EarliestDeadline, language),
		"when":          UrgencyPhrase(daysRemaining, language),
		"count":         fmt.Sprintf("%d", group.Count),
	}

	message := template.Message(language)
	for token, value := range replacements {
		message = strings.ReplaceAll(message, "{"+token+"}", value)
	}
	// Tokens without a computed value stay in the text untouched.
	return message, nil
}

// renderConsolidated builds the multi-deadline sentence outside the template
// path. Each space carries its own day suffix.
func (r *MessageRenderer) renderConsolidated(group *CustomerGroup, kind models.ObligationKind, language, variant string, daysRemaining int) string {
	items := make([]string, 0, len(group.Obligations))
	for _, o := range group.Obligations {
		items = append(items, fmt.Sprintf("%s (%s)", o.SpaceLabel, daySuffix(o.DaysToDeadline, language)))
	}
	spaces := strings.Join(items, ", ")

	name := group.DisplayName(language)
	amount := utils.FormatBirr(group.TotalAmount, language)
	earliest := utils.FormatEthiopicDate(group.EarliestDeadline, language)
	when := UrgencyPhrase(daysRemaining, language)

	if language == models.LanguageAmharic {
		if kind.IsContract() {
			if variant == models.TemplateVariantPassed {
				return fmt.Sprintf("ውድ %s፣ ለ%s ያሉዎት %d የኪራይ ውሎች አብቅተዋል። የመጀመሪያው %s (%s) አብቅቷል። ለማደስ እባክዎ ቢሮአችን ይምጡ።",
					name, spaces, group.Count, when, earliest)
			}
			return fmt.Sprintf("ውድ %s፣ ለ%s ያሉዎት %d የኪራይ ውሎች ሊያበቁ ነው። የመጀመሪያው %s (%s) ያበቃል። ለማደስ እባክዎ ቢሮአችን ይምጡ።",
				name, spaces, group.Count, when, earliest)
		}
		if variant == models.TemplateVariantPassed {
			return fmt.Sprintf("ውድ %s፣ ለ%s ያለዎት ጠቅላላ %s የኪራይ ክፍያ ጊዜው አልፏል። የመጀመሪያው መክፈያ ቀን %s (%s) ነበር። እባክዎ በአስቸኳይ ይክፈሉ።",
				name, spaces, amount, when, earliest)
		}
		return fmt.Sprintf("ውድ %s፣ ለ%s ጠቅላላ %s የኪራይ ክፍያ አለብዎት። የመጀመሪያው መክፈያ ቀን %s (%s) ነው። እባክዎ በወቅቱ ይክፈሉ።",
			name, spaces, amount, when, earliest)
	}

	if kind.IsContract() {
		if variant == models.TemplateVariantPassed {
			return fmt.Sprintf("Dear %s, %d of your rental contracts for %s have expired. The earliest expired %s (%s). Please visit our office to renew them.",
				name, group.Count, spaces, when, earliest)
		}
		return fmt.Sprintf("Dear %s, %d of your rental contracts for %s are expiring. The earliest expires %s (%s). Please visit our office to renew them.",
			name, group.Count, spaces, when, earliest)
	}
	if variant == models.TemplateVariantPassed {
		return fmt.Sprintf("Dear %s, your rent payments totaling %s for %s are overdue. The earliest was due %s (%s). Please settle them immediately.",
			name, amount, spaces, when, earliest)
	}
	return fmt.Sprintf("Dear %s, you have rent payments totaling %s for %s. The earliest is due %s (%s). Please settle them on time.",
		name, amount, spaces, when, earliest)
}

// daySuffix renders the per-item qualifier for mixed-date groups,
// e.g. "3 days" / "1 day" / "ቀን 3".
func daySuffix(days int, language string) string {
	n := days
	if n < 0 {
		n = -n
	}
	if language == models.LanguageAmharic {
		return fmt.Sprintf("%d ቀን", n)
	}
	if n == 1 {
		return fmt.Sprintf("%d day", n)
	}
	return fmt.Sprintf("%d days", n)
}

// UrgencyPhrase maps a day count onto the localized urgency wording. The
// six buckets are exhaustive and mutually exclusive.
func UrgencyPhrase(days int, language string) string {
	amharic := language == models.LanguageAmharic
	switch {
	case days == 0:
		if amharic {
			return "ዛሬ"
		}
		return "TODAY"
	case days == 1:
		if amharic {
			return "ነገ"
		}
		return "TOMORROW"
	case days == -1:
		if amharic {
			return "ትናንት"
		}
		return "YESTERDAY"
	case days > 1:
		if amharic {
			return fmt.Sprintf("በ%d ቀን ውስጥ", days)
		}
		return fmt.Sprintf("in %d days", days)
	default: // days < -1
		if amharic {
			return fmt.Sprintf("ከ%d ቀን በፊት", -days)
		}
		return fmt.Sprintf("%d days ago", -days)
	}
}
