package catalog

import (
	"strings"

	"github.com/marcelomiracles/storefront-service/internal/entities"
)

// Категория "Все товары" означает отсутствие фильтра.
const AllCategory = "Все товары"

var products = []entities.Product{
	{ID: "1", Name: "La Seine Coat Black", Price: 22000, Category: "Верхняя одежда", Image: "/placeholder-LaSeineCoatBlack.jpg"},
	{ID: "2", Name: "Reversible Fur Zip Hoodie Black", Price: 15000, Category: "Худи и свитера", Image: "/placeholder-ReversibleFurZipHoodieBlack.jpg"},
	{ID: "3", Name: "Fragment Shirt Grey", Price: 10000, Category: "Рубашки", Image: "/placeholder-FragmentShirtGrey.jpg"},
	{ID: "4", Name: "Paris Longsleeve Black", Price: 7500, Category: "Футболки и лонгсливы", Image: "/placeholder-ParisLongsleeveBlack.jpg"},
	{ID: "5", Name: "Serpent Flare Denim Grey", Price: 10000, Category: "Штаны и деним", Image: "/placeholder-SerpentFlareDenimGrey.jpg"},
	{ID: "6", Name: "Diana Bag Black", Price: 50000, Category: "Сумки", Image: "/placeholder-DianaBagBlack.jpg"},
	{ID: "7", Name: "Address iPhone Case Black", Price: 2000, Category: "Аксессуары", Image: "/placeholder-AddressiPhoneCaseBlack.jpg"},
	{ID: "8", Name: "Siberian Bomber Black", Price: 25000, Category: "Верхняя одежда", Image: "/placeholder-SiberianBomberBlack.jpg"},
	{ID: "9", Name: "Paris Hoodie Black", Price: 9000, Category: "Худи и свитера", Image: "/placeholder-ParisHoodieBlack.jpg"},
	{ID: "10", Name: "EDEC T-Shirt Black", Price: 4000, Category: "Футболки и лонгсливы", Image: "/placeholder-EDEC-T-Shirt-Black.jpg"},
}

var categories = []string{
	AllCategory,
	"Верхняя одежда",
	"Худи и свитера",
	"Рубашки",
	"Футболки и лонгсливы",
	"Штаны и деним",
	"Сумки",
	"Аксессуары",
}

func Products() []entities.Product {
	return products
}

func Categories() []string {
	return categories
}

func FindByID(id string) (entities.Product, bool) {
	for _, p := range products {
		if p.ID == id {
			return p, true
		}
	}
	return entities.Product{}, false
}

// Filter отбирает товары по категории и подстроке названия (без учёта регистра).
func Filter(category, query string) []entities.Product {
	query = strings.ToLower(query)

	result := make([]entities.Product, 0, len(products))
	for _, p := range products {
		if category != "" && category != AllCategory && p.Category != category {
			continue
		}
		if query != "" && !strings.Contains(strings.ToLower(p.Name), query) {
			continue
		}
		result = append(result, p)
	}
	return result
}
