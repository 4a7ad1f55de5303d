package constants

import "strings"

// TemplateCategory selects the business-rule set applied on top of a
// template's own field definitions.
type TemplateCategory string

const (
	CategoryInvoice  TemplateCategory = "Invoice"
	CategoryContract TemplateCategory = "Contract"
	CategoryReceipt  TemplateCategory = "Receipt"
	CategoryGeneric  TemplateCategory = "Generic"
)

var allCategories = []TemplateCategory{
	CategoryInvoice,
	CategoryContract,
	CategoryReceipt,
	CategoryGeneric,
}

func CategoryNames() []string {
	result := make([]string, len(allCategories))
	for i, cat := range allCategories {
		result[i] = string(cat)
	}
	return result
}

// CanonicalizeCategory maps free-form labels onto a known category.
func CanonicalizeCategory(input string) (TemplateCategory, bool) {
	normalized := strings.ToLower(strings.TrimSpace(input))
	if normalized == "" {
		return CategoryGeneric, false
	}

	synonyms := map[string]TemplateCategory{
		"invoice":        CategoryInvoice,
		"bill":           CategoryInvoice,
		"purchase order": CategoryInvoice,
		"contract":       CategoryContract,
		"agreement":      CategoryContract,
		"lease":          CategoryContract,
		"receipt":        CategoryReceipt,
		"expense":        CategoryReceipt,
		"generic":        CategoryGeneric,
		"other":          CategoryGeneric,
	}
	if cat, ok := synonyms[normalized]; ok {
		return cat, true
	}
	for _, cat := range allCategories {
		if strings.EqualFold(string(cat), normalized) {
			return cat, true
		}
	}
	return CategoryGeneric, false
}
