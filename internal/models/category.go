package models

// Category is the name of a spending category. Budgets may only use one of
// the predefined categories; expenses reference a category by name.
type Category string

const (
	CategoryHousing          Category = "Housing"
	CategoryFoodDining       Category = "Food & Dining"
	CategoryTransportation   Category = "Transportation"
	CategoryUtilities        Category = "Utilities"
	CategoryHealthcare       Category = "Healthcare"
	CategoryEntertainment    Category = "Entertainment"
	CategoryPersonal         Category = "Personal"
	CategorySavings          Category = "Savings"
	CategoryEducation        Category = "Education"
	CategoryShopping         Category = "Shopping"
	CategoryMiscellaneous    Category = "Miscellaneous"
	CategoryDebtPayments     Category = "Debt Payments"
	CategoryGiftsDonations   Category = "Gifts & Donations"
	CategoryChildcare        Category = "Childcare"
	CategoryPets             Category = "Pets"
	CategoryTravel           Category = "Travel"
	CategoryInsurance        Category = "Insurance"
	CategorySubscriptions    Category = "Subscriptions"
	CategoryTaxes            Category = "Taxes"
	CategoryFitnessWellness  Category = "Fitness & Wellness"
	CategoryInvestments      Category = "Investments"
	CategoryBusinessExpenses Category = "Business Expenses"
)

// CategoryUncategorized labels expenses with an empty category in summaries.
const CategoryUncategorized Category = "Uncategorized"

var allCategories = []Category{
	CategoryHousing,
	CategoryFoodDining,
	CategoryTransportation,
	CategoryUtilities,
	CategoryHealthcare,
	CategoryEntertainment,
	CategoryPersonal,
	CategorySavings,
	CategoryEducation,
	CategoryShopping,
	CategoryMiscellaneous,
	CategoryDebtPayments,
	CategoryGiftsDonations,
	CategoryChildcare,
	CategoryPets,
	CategoryTravel,
	CategoryInsurance,
	CategorySubscriptions,
	CategoryTaxes,
	CategoryFitnessWellness,
	CategoryInvestments,
	CategoryBusinessExpenses,
}

// AllCategories returns the predefined budget categories in display order.
func AllCategories() []Category {
	out := make([]Category, len(allCategories))
	copy(out, allCategories)
	return out
}

// IsValid reports whether c is one of the predefined categories.
func (c Category) IsValid() bool {
	for _, known := range allCategories {
		if c == known {
			return true
		}
	}
	return false
}
