package models

import "strconv"

// SpecialType flags a category for optional UI assistance (icon, product
// lookup widget). It is not a structural schema constraint: a special-typed
// category still carries an ordinary user-defined field list.
type SpecialType string

const (
	// SpecialTypeNone marks a category without any special UI behavior.
	SpecialTypeNone SpecialType = ""

	// SpecialTypeNutrition enables the product lookup widget above the
	// entry form of the category.
	SpecialTypeNutrition SpecialType = "nutrition"

	// SpecialTypeFitness marks a fitness category. Decorative only.
	SpecialTypeFitness SpecialType = "fitness"

	// SpecialTypeMood marks a mood category. Decorative only.
	SpecialTypeMood SpecialType = "mood"

	// SpecialTypeCustom is assigned by the server to every user-created
	// category. Behaves exactly like SpecialTypeNone.
	SpecialTypeCustom SpecialType = "custom"
)

// FieldRole is a capability tag on a field descriptor. It binds category
// automation (the nutrition lookup) to a concrete field without relying on
// how the user labelled it.
type FieldRole string

const (
	// RoleNone marks a plain field with no automation attached.
	RoleNone FieldRole = ""

	// RoleProductName receives the product name returned by the lookup.
	RoleProductName FieldRole = "product_name"

	// RoleCalorieValue receives the energy value returned by the lookup.
	RoleCalorieValue FieldRole = "calorie_value"

	// RoleAmount receives input focus after a successful lookup so the user
	// can type the amount right away. The amount itself is never derivable
	// from the lookup result.
	RoleAmount FieldRole = "amount"
)

// Field is a single typed field descriptor of a category schema.
// Labels are not required to be unique; matching against them is done
// case-insensitively by substring, so ambiguous label sets are possible.
type Field struct {
	// Label is the display name of the field, shown next to its input.
	Label string `json:"label"`

	// Unit is the free-form unit suffix (e.g. "kcal", "g", "min").
	// A unit containing "kcal" promotes the field's value to the entry's
	// primary value during aggregation.
	Unit string `json:"unit"`

	// Role optionally tags the field for lookup automation.
	// Seeded nutrition categories carry roles; user-created categories
	// default to RoleNone and fall back to label matching.
	Role FieldRole `json:"role,omitempty"`
}

// Category is a user-defined record schema: a named, ordered list of field
// descriptors. Categories are immutable after creation; the client holds a
// read-only cached copy for the session.
type Category struct {
	// ID is the unique identifier assigned by the server on creation.
	ID int64 `json:"id"`

	// UserID is the owner of the category.
	// It is not exposed via JSON and is used only at the persistence layer.
	UserID int64 `json:"-"`

	// Name is the display label of the category. Non-empty.
	Name string `json:"name"`

	// SpecialType gates optional UI behavior for the category.
	SpecialType SpecialType `json:"special_type,omitempty"`

	// Fields is the ordered field list. Non-empty for a usable category;
	// this is enforced at creation time only and never re-checked.
	Fields []Field `json:"fields"`
}

// Ref returns the derived key ("cat_" + id) under which entries reference
// this category. No referential integrity is enforced on it.
func (c Category) Ref() string {
	return "cat_" + strconv.FormatInt(c.ID, 10)
}

// TableName returns the name of the database table
// associated with the Category model.
func (c Category) TableName() string {
	return "categories"
}
