package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Template categories mirror the scanner kinds.
const (
	TemplateCategoryPayment         = "payment"
	TemplateCategoryContract        = "contract"
	TemplateCategoryDisplayPayment  = "display_payment"
	TemplateCategoryDisplayContract = "display_contract"
)

// Template variants. approaching is used while the deadline is ahead,
// passed once it is behind.
const (
	TemplateVariantApproaching = "approaching"
	TemplateVariantPassed      = "passed"
)

// SmsTemplate holds the message text for one category/variant pair in both
// languages. Text contains {placeholder} tokens substituted at render time.
type SmsTemplate struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key"`
	Category string    `gorm:"type:varchar(40);not null;uniqueIndex:idx_category_variant,priority:1"`
	Variant  string    `gorm:"type:varchar(20);not null;uniqueIndex:idx_category_variant,priority:2"`

	MessageEnglish string `gorm:"type:text;not null"`
	MessageAmharic string `gorm:"type:text;not null"`
	IsActive       bool   `gorm:"default:true"`

	gorm.Model
}

func (t *SmsTemplate) BeforeCreate(tx *gorm.DB) (err error) {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return
}

// Message returns the template text for the given language.
func (t *SmsTemplate) Message(language string) string {
	if language == LanguageAmharic {
		return t.MessageAmharic
	}
	return t.MessageEnglish
}

// TemplateCategoryForKind maps a scanner kind to its template category.
func TemplateCategoryForKind(kind ObligationKind) string {
	return string(kind)
}
