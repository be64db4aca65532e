// Package seed holds the static fixture data loaded at process start: the
// menu, the table plan and the account list. Nothing here is persisted.
package seed

import (
	"time"

	"spice-palace/internal/model"
)

// Menu returns the full catalogue. Review timestamps are stamped at load time.
func Menu() []model.MenuItem {
	now := time.Now()
	return []model.MenuItem{
		{
			ID: "1", Name: "Samosa", Price: 8.99, Category: "Appetizer", Available: true,
			Description: "Crispy triangular pastry filled with spiced potatoes and peas",
			PrepTime:    10,
			ImageURL:    "https://upload.wikimedia.org/wikipedia/commons/6/6f/Samosachutney.jpg",
			Reviews: []model.Review{
				{Author: "Asha", Rating: 5, Comment: "Crispy and flavorful!", CreatedAt: now},
				{Author: "Rahul", Rating: 4, Comment: "Great snack with chutney.", CreatedAt: now},
			},
		},
		{
			ID: "2", Name: "Paneer Tikka", Price: 14.99, Category: "Appetizer", Available: true,
			Description: "Grilled cottage cheese marinated in aromatic spices",
			PrepTime:    15,
			ImageURL:    "https://upload.wikimedia.org/wikipedia/commons/2/2b/Paneer_Tikka.jpg",
			Reviews: []model.Review{
				{Author: "Priya", Rating: 5, Comment: "Soft paneer and smoky taste!", CreatedAt: now},
			},
		},
		{
			ID: "3", Name: "Chicken 65", Price: 16.99, Category: "Appetizer", Available: true,
			Description: "Spicy deep-fried chicken with curry leaves and green chilies",
			PrepTime:    12,
			ImageURL:    "https://upload.wikimedia.org/wikipedia/commons/5/5a/Chicken_65.jpg",
			Reviews: []model.Review{
				{Author: "Vijay", Rating: 4, Comment: "Nice heat, juicy pieces.", CreatedAt: now},
			},
		},
		{
			ID: "4", Name: "Butter Chicken", Price: 22.99, Category: "Main Course", Available: true,
			Description: "Tender chicken in rich tomato and cream sauce",
			PrepTime:    25,
			ImageURL:    "https://upload.wikimedia.org/wikipedia/commons/3/3f/Chicken_makhani.jpg",
			Reviews: []model.Review{
				{Author: "Neha", Rating: 5, Comment: "Rich and creamy!", CreatedAt: now},
			},
		},
		{
			ID: "5", Name: "Biryani", Price: 19.99, Category: "Main Course", Available: true,
			Description: "Fragrant basmati rice with spiced meat and aromatic herbs",
			PrepTime:    30,
			ImageURL:    "https://upload.wikimedia.org/wikipedia/commons/b/b9/Chicken_Biryani.jpg",
			Reviews: []model.Review{
				{Author: "Aman", Rating: 5, Comment: "Aromatic and perfectly spiced.", CreatedAt: now},
			},
		},
		{
			ID: "6", Name: "Dal Makhani", Price: 15.99, Category: "Main Course", Available: true,
			Description: "Creamy black lentils slow-cooked with butter and spices",
			PrepTime:    20,
			ImageURL:    "https://upload.wikimedia.org/wikipedia/commons/2/2e/Dal_Makhani.jpg",
			Reviews: []model.Review{
				{Author: "Kiran", Rating: 4, Comment: "Comfort food!", CreatedAt: now},
			},
		},
		{
			ID: "7", Name: "Palak Paneer", Price: 17.99, Category: "Main Course", Available: true,
			Description: "Cottage cheese in creamy spinach gravy",
			PrepTime:    18,
			ImageURL:    "https://upload.wikimedia.org/wikipedia/commons/1/1c/Palak_paneer.jpg",
			Reviews: []model.Review{
				{Author: "Ishita", Rating: 4, Comment: "Creamy spinach goodness.", CreatedAt: now},
			},
		},
		{
			ID: "8", Name: "Tandoori Chicken", Price: 24.99, Category: "Main Course", Available: false,
			Description: "Chicken marinated in yogurt and spices, cooked in tandoor",
			PrepTime:    35,
			ImageURL:    "https://upload.wikimedia.org/wikipedia/commons/5/5f/Tandoori_chicken.jpg",
			Reviews: []model.Review{
				{Author: "Rohit", Rating: 3, Comment: "Tasty but currently unavailable.", CreatedAt: now},
			},
		},
		{
			ID: "9", Name: "Naan", Price: 4.99, Category: "Bread", Available: true,
			Description: "Soft leavened bread baked in tandoor",
			PrepTime:    8,
			ImageURL:    "https://upload.wikimedia.org/wikipedia/commons/5/5b/Naanbread.jpg",
			Reviews: []model.Review{
				{Author: "Meera", Rating: 5, Comment: "Soft and fluffy!", CreatedAt: now},
			},
		},
		{
			ID: "10", Name: "Garlic Naan", Price: 5.99, Category: "Bread", Available: true,
			Description: "Naan topped with fresh garlic and herbs",
			PrepTime:    10,
			ImageURL:    "https://upload.wikimedia.org/wikipedia/commons/8/8b/Garlic_naan.jpg",
			Reviews: []model.Review{
				{Author: "Sachin", Rating: 5, Comment: "Garlic aroma is perfect.", CreatedAt: now},
			},
		},
		{
			ID: "11", Name: "Roti", Price: 3.99, Category: "Bread", Available: true,
			Description: "Traditional whole wheat flatbread",
			PrepTime:    5,
			ImageURL:    "https://upload.wikimedia.org/wikipedia/commons/1/19/Chapati%2C_roti.jpg",
			Reviews: []model.Review{
				{Author: "Sneha", Rating: 4, Comment: "Healthy and light.", CreatedAt: now},
			},
		},
		{
			ID: "12", Name: "Gulab Jamun", Price: 7.99, Category: "Dessert", Available: true,
			Description: "Sweet milk dumplings in rose-flavored syrup",
			PrepTime:    5,
			ImageURL:    "https://upload.wikimedia.org/wikipedia/commons/0/06/Gulab_Jamun_%28GJB%29.jpg",
			Reviews: []model.Review{
				{Author: "Arjun", Rating: 5, Comment: "Melt-in-mouth!", CreatedAt: now},
			},
		},
		{
			ID: "13", Name: "Kulfi", Price: 6.99, Category: "Dessert", Available: true,
			Description: "Traditional Indian ice cream with cardamom and pistachios",
			PrepTime:    3,
			ImageURL:    "https://upload.wikimedia.org/wikipedia/commons/b/b0/Kulfi.jpg",
			Reviews: []model.Review{
				{Author: "Ritika", Rating: 5, Comment: "So creamy!", CreatedAt: now},
			},
		},
		{
			ID: "14", Name: "Masala Chai", Price: 3.99, Category: "Beverage", Available: true,
			Description: "Spiced tea with milk and aromatic herbs",
			PrepTime:    5,
			ImageURL:    "https://upload.wikimedia.org/wikipedia/commons/7/7b/Masala_Chai_tea.jpg",
			Reviews: []model.Review{
				{Author: "Dev", Rating: 5, Comment: "Perfect masala balance.", CreatedAt: now},
			},
		},
		{
			ID: "15", Name: "Lassi", Price: 5.99, Category: "Beverage", Available: true,
			Description: "Refreshing yogurt-based drink with mango or sweet flavor",
			PrepTime:    3,
			ImageURL:    "https://upload.wikimedia.org/wikipedia/commons/8/83/Glass_of_Mango_Lassi.jpg",
			Reviews: []model.Review{
				{Author: "Ananya", Rating: 5, Comment: "Refreshing!", CreatedAt: now},
			},
		},
	}
}

// Tables returns the fixed table plan.
func Tables() []model.Table {
	return []model.Table{
		{ID: "t1", Number: 1, Capacity: 4, Status: model.TableAvailable},
		{ID: "t2", Number: 2, Capacity: 2, Status: model.TableAvailable},
		{ID: "t3", Number: 3, Capacity: 6, Status: model.TableAvailable},
		{ID: "t4", Number: 4, Capacity: 4, Status: model.TableAvailable},
	}
}

// Users returns the static account list: one staff account and one diner
// account per table.
func Users() []model.User {
	return []model.User{
		{ID: "admin1", Username: "admin", Password: "admin123", Role: model.RoleAdmin},
		{ID: "user1", Username: "table1", Password: "user123", Role: model.RoleUser, TableNumber: 1},
		{ID: "user2", Username: "table2", Password: "user123", Role: model.RoleUser, TableNumber: 2},
		{ID: "user3", Username: "table3", Password: "user123", Role: model.RoleUser, TableNumber: 3},
		{ID: "user4", Username: "table4", Password: "user123", Role: model.RoleUser, TableNumber: 4},
	}
}
