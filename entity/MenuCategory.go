package entity

type MenuCategory string

const (
	CategoryAppetizer MenuCategory = "appetizer"
	CategoryMain      MenuCategory = "main"
	CategoryDessert   MenuCategory = "dessert"
	CategoryBeverage  MenuCategory = "beverage"
)

var MenuCategories = []MenuCategory{CategoryAppetizer, CategoryMain, CategoryDessert, CategoryBeverage}

func (c MenuCategory) Valid() bool {
	for _, v := range MenuCategories {
		if v == c {
			return true
		}
	}
	return false
}
