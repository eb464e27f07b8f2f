package validation

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"github.com/iudanet/muslimguide/internal/models"
)

// EmailPattern простая проверка формата email: локальная часть, @, домен с точкой
var EmailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

const (
	// MaxReportNameLen максимальная длина имени автора обращения
	MaxReportNameLen = 100
	// MaxReportDescriptionLen максимальная длина текста обращения
	MaxReportDescriptionLen = 2000
)

// ValidateEmail проверяет формат email адреса
func ValidateEmail(email string) error {
	if strings.TrimSpace(email) == "" {
		return fmt.Errorf("email cannot be empty")
	}
	if !EmailPattern.MatchString(email) {
		return fmt.Errorf("invalid email address: %s", email)
	}
	return nil
}

// ResolveReportCategory turns the picked category and the free-form text into the
// stored category. "Others" with text becomes "Others: <text>".
func ResolveReportCategory(category, other string) string {
	if category != models.ReportCategoryOthers {
		return category
	}
	if other = strings.TrimSpace(other); other != "" {
		return fmt.Sprintf("%s: %s", models.ReportCategoryOthers, other)
	}
	return models.ReportCategoryOthers
}

// ValidateReportCategory accepts one of models.ReportCategories or an "Others" category.
func ValidateReportCategory(category string) error {
	if category == "" {
		return fmt.Errorf("category cannot be empty")
	}
	if category == models.ReportCategoryOthers || strings.HasPrefix(category, models.ReportCategoryOthers+": ") {
		return nil
	}
	for _, known := range models.ReportCategories {
		if known == category {
			return nil
		}
	}
	return fmt.Errorf("unknown report category: %s", category)
}

// ValidateReport проверяет, что все поля обращения заполнены
// Описание должно содержать хотя бы один непробельный символ
func ValidateReport(r *models.Report) error {
	name := strings.TrimSpace(r.Name)
	if name == "" {
		return fmt.Errorf("name cannot be empty")
	}
	if len(name) > MaxReportNameLen {
		return fmt.Errorf("name must not exceed %d characters", MaxReportNameLen)
	}

	if err := ValidateEmail(r.Email); err != nil {
		return err
	}

	if err := ValidateReportCategory(r.Category); err != nil {
		return err
	}

	if strings.IndexFunc(r.Description, func(c rune) bool { return !unicode.IsSpace(c) }) < 0 {
		return fmt.Errorf("description cannot be empty")
	}
	if len(r.Description) > MaxReportDescriptionLen {
		return fmt.Errorf("description must not exceed %d characters", MaxReportDescriptionLen)
	}

	return nil
}

// ValidateListingCategory проверяет категорию заведения
func ValidateListingCategory(category string) error {
	if !models.IsListingCategory(category) {
		return fmt.Errorf("unknown category %q. Use: %s", category, strings.Join(models.ListingCategories, ", "))
	}
	return nil
}

// ValidateCampaignCategory проверяет категорию кампании (event или promotion)
func ValidateCampaignCategory(category string) error {
	if category != models.CampaignEvent && category != models.CampaignPromotion {
		return fmt.Errorf("unknown campaign category %q. Use: event, promotion", category)
	}
	return nil
}
