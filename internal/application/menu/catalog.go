package menu

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/foodhub/internal/domain/entity"
)

// DefaultCatalog carta fija con la que arranca cada sesión.
func DefaultCatalog() entity.Menu {
	p := decimal.NewFromInt
	return entity.NewMenu(
		[]entity.MenuItem{
			{ID: "s1", Name: "Garlic Bread", Price: p(65), Image: "assets/a1.jpg", Description: "Cheesy and delicious"},
			{ID: "s2", Name: "Soup of the Day", Price: p(78), Image: "assets/s1.jpg", Description: "Ask your waiter"},
			{ID: "s3", Name: "Asparagus wrapped in bacon", Price: p(62), Image: "assets/s2.jpg", Description: "Oven roasted"},
			{ID: "s4", Name: "Lettuce wraps with sticky chicken", Price: p(61), Image: "assets/s3.jpg", Description: "Fresh and light"},
		},
		[]entity.MenuItem{
			{ID: "m1", Name: "Grilled Chicken", Price: p(175), Image: "assets/m1.jpg", Description: "Served with fries"},
			{ID: "m2", Name: "Pasta Alfredo", Price: p(129), Image: "assets/m2.jpg", Description: "Creamy white sauce"},
			{ID: "m3", Name: "Bang Bang Burgers", Price: p(148), Image: "assets/m3.jpg", Description: "Our signature double patty"},
			{ID: "m4", Name: "Tomahawk Steak", Price: p(110), Image: "assets/m4.jpg", Description: "Best cut of meat"},
		},
		[]entity.MenuItem{
			{ID: "d1", Name: "Chocolate Cake", Price: p(90), Image: "assets/d1.jpg", Description: "Rich and decadent"},
			{ID: "d2", Name: "Ice Cream", Price: p(79), Image: "assets/d2.jpg", Description: "Vanilla or Chocolate"},
			{ID: "d3", Name: "Apple Cannoli", Price: p(72), Image: "assets/d3.jpg", Description: "Italian delight"},
			{ID: "d4", Name: "Baked Apple Roses", Price: p(68), Image: "assets/d4.jpg", Description: "Sweet pastry"},
		},
	)
}
