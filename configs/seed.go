package configs

import (
	"log"

	"github.com/ColdCodePlay/FoodFusion/entity"
)

// SeedCatalog loads the demo restaurants, categories and menu items on an
// empty database. Safe to call on every boot.
func SeedCatalog() error {
	db := DB()

	var count int64
	if err := db.Model(&entity.Restaurant{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Println("catalog already seeded, skipping")
		return nil
	}

	gourmet := entity.Restaurant{
		Name: "The Gourmet Kitchen", Image: "https://images.unsplash.com/photo-1517248135467-4c7edcad34c4",
		Cuisines: "Italian, Continental", Rating: 4.5, DeliveryTime: "30-40 min", PriceRange: "$$$",
		Distance: "2.1 km away", DeliveryFee: "₹30", Promoted: true, Offer: "50% off up to ₹100",
	}
	spice := entity.Restaurant{
		Name: "Spice Junction", Image: "https://images.unsplash.com/photo-1555396273-367ea4eb4db5",
		Cuisines: "Indian, North Indian", Rating: 4.2, DeliveryTime: "15-25 min", PriceRange: "$$",
		Distance: "1.3 km away", DeliveryFee: "₹20", Offer: "Free delivery on orders above ₹199",
	}
	dragon := entity.Restaurant{
		Name: "Golden Dragon", Image: "https://images.unsplash.com/photo-1514933651103-005eec06c04b",
		Cuisines: "Chinese, Thai", Rating: 4.7, DeliveryTime: "40-50 min", PriceRange: "$$$",
		Distance: "3.5 km away", DeliveryFee: "₹40", Offer: "₹100 off on orders above ₹499",
	}
	cafe := entity.Restaurant{
		Name: "Urban Cafe", Image: "https://images.unsplash.com/photo-1550966871-3ed3cdb5ed0c",
		Cuisines: "Cafe, Beverages", Rating: 3.9, DeliveryTime: "25-35 min", PriceRange: "$$",
		Distance: "1.8 km away", DeliveryFee: "₹25", Offer: "Buy 1 Get 1 on all beverages",
	}
	pizza := entity.Restaurant{
		Name: "Pizza Paradise", Image: "https://images.unsplash.com/photo-1482049016688-2d3e1b311543",
		Cuisines: "Pizza, Italian", Rating: 4.3, DeliveryTime: "20-30 min", PriceRange: "$$",
		Distance: "2.3 km away", DeliveryFee: "₹35", Offer: "Flat 20% off on all orders",
	}
	burger := entity.Restaurant{
		Name: "Burger Bliss", Image: "https://images.unsplash.com/photo-1565557623262-b51c2513a641",
		Cuisines: "Burgers, Fast Food", Rating: 4.4, DeliveryTime: "35-45 min", PriceRange: "$$",
		Distance: "2.7 km away", DeliveryFee: "₹30", Promoted: true, Offer: "Free fries on orders above ₹299",
	}
	for _, r := range []*entity.Restaurant{&gourmet, &spice, &dragon, &cafe, &pizza, &burger} {
		if err := db.Create(r).Error; err != nil {
			return err
		}
	}

	categories := func(restaurantID uint, names ...string) ([]entity.MenuCategory, error) {
		rows := make([]entity.MenuCategory, 0, len(names))
		for _, name := range names {
			mc := entity.MenuCategory{RestaurantID: restaurantID, Name: name}
			if err := db.Create(&mc).Error; err != nil {
				return nil, err
			}
			rows = append(rows, mc)
		}
		return rows, nil
	}

	gourmetCats, err := categories(gourmet.ID, "Recommended", "Appetizers", "Pastas", "Mains", "Desserts")
	if err != nil {
		return err
	}
	spiceCats, err := categories(spice.ID, "Recommended", "Starters", "Main Course", "Beverages", "Desserts")
	if err != nil {
		return err
	}
	dragonCats, err := categories(dragon.ID, "Recommended", "Appetizers", "Soups", "Main Course", "Noodles & Rice")
	if err != nil {
		return err
	}
	cafeCats, err := categories(cafe.ID, "Recommended", "Coffee", "Snacks", "Sandwiches", "Desserts")
	if err != nil {
		return err
	}

	items := []entity.MenuItem{
		{RestaurantID: gourmet.ID, CategoryID: gourmetCats[0].ID, Name: "Truffle Risotto",
			Description: "Creamy Arborio rice with wild mushrooms and truffle oil", Price: 449,
			Image: "https://images.unsplash.com/photo-1633964913295-ceb43956a0c7", Rating: 4.8, NumRatings: 120, IsVeg: true, IsBestseller: true},
		{RestaurantID: gourmet.ID, CategoryID: gourmetCats[0].ID, Name: "Lobster Ravioli",
			Description: "Homemade ravioli filled with fresh lobster in a creamy sauce", Price: 599,
			Image: "https://images.unsplash.com/photo-1551504734-5ee1c4a1479b", Rating: 4.9, NumRatings: 85, IsBestseller: true},
		{RestaurantID: gourmet.ID, CategoryID: gourmetCats[1].ID, Name: "Bruschetta",
			Description: "Toasted bread topped with fresh tomatoes, basil and olive oil", Price: 249,
			Image: "https://images.unsplash.com/photo-1572695157366-5e585ab2b69f", Rating: 4.5, NumRatings: 65, IsVeg: true},
		{RestaurantID: gourmet.ID, CategoryID: gourmetCats[2].ID, Name: "Spaghetti Carbonara",
			Description: "Classic pasta with eggs, cheese, pancetta and black pepper", Price: 399,
			Image: "https://images.unsplash.com/photo-1588013273468-315fd88ea34c", Rating: 4.7, NumRatings: 90},

		{RestaurantID: spice.ID, CategoryID: spiceCats[0].ID, Name: "Butter Chicken",
			Description: "Tender chicken in a creamy tomato sauce", Price: 299,
			Image: "https://images.unsplash.com/photo-1603894584373-5ac82b2ae398", Rating: 4.5, NumRatings: 100, IsBestseller: true},
		{RestaurantID: spice.ID, CategoryID: spiceCats[0].ID, Name: "Paneer Tikka",
			Description: "Grilled cottage cheese with spices", Price: 249,
			Image: "https://images.unsplash.com/photo-1599487488170-d11ec9c172f0", Rating: 4.3, NumRatings: 80, IsVeg: true},
		{RestaurantID: spice.ID, CategoryID: spiceCats[0].ID, Name: "Dal Makhani",
			Description: "Black lentils slow cooked with cream", Price: 199,
			Image: "https://images.unsplash.com/photo-1505253716362-afaea1d3d1af", Rating: 4.7, NumRatings: 150, IsVeg: true, IsBestseller: true},
		{RestaurantID: spice.ID, CategoryID: spiceCats[1].ID, Name: "Chilli Paneer",
			Description: "Crispy paneer tossed with bell peppers in a spicy sauce", Price: 229,
			Image: "https://images.unsplash.com/photo-1567188040759-fb8a254b3128", Rating: 4.2, NumRatings: 65, IsVeg: true},
		{RestaurantID: spice.ID, CategoryID: spiceCats[2].ID, Name: "Chicken Biryani",
			Description: "Fragrant rice cooked with marinated chicken and spices", Price: 329,
			Image: "https://images.unsplash.com/photo-1589302168068-964664d93dc0", Rating: 4.8, NumRatings: 200, IsBestseller: true},

		{RestaurantID: dragon.ID, CategoryID: dragonCats[0].ID, Name: "Kung Pao Chicken",
			Description: "Stir-fried chicken with peanuts, vegetables and chili peppers", Price: 349,
			Image: "https://images.unsplash.com/photo-1525755662778-989d0524087e", Rating: 4.6, NumRatings: 110, IsBestseller: true},
		{RestaurantID: dragon.ID, CategoryID: dragonCats[0].ID, Name: "Dim Sum Platter",
			Description: "Assorted steamed dumplings with various fillings", Price: 399,
			Image: "https://images.unsplash.com/photo-1563245372-f21724e3856d", Rating: 4.7, NumRatings: 95, IsBestseller: true},
		{RestaurantID: dragon.ID, CategoryID: dragonCats[2].ID, Name: "Hot and Sour Soup",
			Description: "Spicy and tangy soup with vegetables and tofu", Price: 179,
			Image: "https://images.unsplash.com/photo-1547592166-23ac45744acd", Rating: 4.5, NumRatings: 70, IsVeg: true},

		{RestaurantID: cafe.ID, CategoryID: cafeCats[0].ID, Name: "Cappuccino",
			Description: "Espresso with steamed milk and a deep layer of foam", Price: 159,
			Image: "https://images.unsplash.com/photo-1534778101976-62847782c213", Rating: 4.4, NumRatings: 85, IsVeg: true, IsBestseller: true},
		{RestaurantID: cafe.ID, CategoryID: cafeCats[0].ID, Name: "Avocado Toast",
			Description: "Multigrain toast topped with mashed avocado, cherry tomatoes and feta cheese", Price: 229,
			Image: "https://images.unsplash.com/photo-1603046891744-76035f536b5b", Rating: 4.6, NumRatings: 75, IsVeg: true, IsBestseller: true},
		{RestaurantID: cafe.ID, CategoryID: cafeCats[3].ID, Name: "Grilled Chicken Sandwich",
			Description: "Grilled chicken with lettuce, tomato and mayo on ciabatta bread", Price: 249,
			Image: "https://images.unsplash.com/photo-1554433607-66b5efe9d304", Rating: 4.3, NumRatings: 60},
	}
	for i := range items {
		if err := db.Create(&items[i]).Error; err != nil {
			return err
		}
	}

	log.Printf("seeded catalog: %d restaurants, %d menu items", 6, len(items))
	return nil
}
