package track

import (
	"strconv"
	"strings"

	"github.com/mhenke/logbuch/models"
)

// Legacy label fragments used when a category defines no role-tagged fields.
// They match the labels of the seeded nutrition category and whatever
// similarly-named fields users define themselves.
const (
	labelProduct = "Produkt"
	labelCalorie = "Kalorien"
	labelAmount  = "Menge"
)

// matchTargets resolves which slots a lookup write should land in.
//
// Role tags take precedence: when at least one field carries the wanted
// role, exactly those fields are targeted and label matching is skipped.
// Otherwise the legacy behavior applies: every field whose label contains
// labelPart (case-insensitively) is targeted, so ambiguous label sets can
// still cause multi-slot writes.
func matchTargets(form Form, role models.FieldRole, labelPart string) []int {
	var targets []int
	for i, slot := range form {
		if slot.Field.Role == role {
			targets = append(targets, i)
		}
	}
	if targets != nil {
		return targets
	}

	part := strings.ToLower(labelPart)
	for i, slot := range form {
		if strings.Contains(strings.ToLower(slot.Field.Label), part) {
			targets = append(targets, i)
		}
	}

	return targets
}

// ApplyProduct writes the lookup result into the form: the product name into
// every product-name slot and the energy value into every calorie slot.
// It returns the index of the slot that should receive input focus next
// (the amount field), or -1 when the form has none.
//
// ApplyProduct mutates only the targeted slots; on the caller's side a
// failed lookup must therefore simply not call it.
func ApplyProduct(form Form, product models.Product) int {
	for _, i := range matchTargets(form, models.RoleProductName, labelProduct) {
		form[i].Value = product.Name
	}

	energy := strconv.FormatFloat(product.EnergyKcal100g, 'f', -1, 64)
	for _, i := range matchTargets(form, models.RoleCalorieValue, labelCalorie) {
		form[i].Value = energy
	}

	if focus := matchTargets(form, models.RoleAmount, labelAmount); len(focus) > 0 {
		return focus[0]
	}

	return -1
}
