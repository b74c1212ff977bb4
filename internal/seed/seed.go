// Package seed holds the static fixtures the stores are constructed
// with at process start. Nothing here is persisted; a restart returns
// the catalog to exactly this state.
package seed

import (
	"time"

	"github.com/rl1809/storefront/internal/core/domain"
)

// DemoPasswordHash is bcrypt("password"). Every seeded account accepts
// it; there are no real credentials anywhere in the fixtures.
const DemoPasswordHash = "$2a$10$LDjo/QmlutrfYDivXPlByOVmL9LEzW9U6d.jSgV4oLr3ci2ACUJTe"

func Products() []domain.Product {
	return []domain.Product{
		{
			ID:            "1",
			Name:          "MacBook Pro 16-inch M3 Max",
			Brand:         "Apple",
			Processor:     "Apple M3 Max",
			Memory:        "32GB",
			Storage:       "1TB SSD",
			Graphics:      "Apple M3 Max GPU",
			Display:       "16.2\" Liquid Retina XDR",
			Price:         3499,
			OriginalPrice: 3999,
			Image:         "https://images.pexels.com/photos/205421/pexels-photo-205421.jpeg?auto=compress&cs=tinysrgb&w=800",
			Images: []string{
				"https://images.pexels.com/photos/205421/pexels-photo-205421.jpeg?auto=compress&cs=tinysrgb&w=800",
				"https://images.pexels.com/photos/18105/pexels-photo.jpg?auto=compress&cs=tinysrgb&w=800",
			},
			Rating:      4.9,
			Reviews:     2847,
			Description: "The most powerful MacBook Pro ever built, featuring the revolutionary M3 Max chip with incredible performance for pro workflows.",
			Features: []string{
				"Apple M3 Max chip with 16-core CPU",
				"40-core GPU for extreme graphics performance",
				"32GB unified memory",
				"Up to 22 hours battery life",
			},
		},
		{
			ID:            "2",
			Name:          "Dell XPS 15 OLED",
			Brand:         "Dell",
			Processor:     "Intel i9-13900H",
			Memory:        "32GB",
			Storage:       "1TB SSD",
			Graphics:      "NVIDIA RTX 4070",
			Display:       "15.6\" 4K OLED Touch",
			Price:         2899,
			OriginalPrice: 3299,
			Image:         "https://images.pexels.com/photos/1229861/pexels-photo-1229861.jpeg?auto=compress&cs=tinysrgb&w=800",
			Images: []string{
				"https://images.pexels.com/photos/1229861/pexels-photo-1229861.jpeg?auto=compress&cs=tinysrgb&w=800",
				"https://images.pexels.com/photos/777001/pexels-photo-777001.jpeg?auto=compress&cs=tinysrgb&w=800",
			},
			Rating:      4.7,
			Reviews:     1923,
			Description: "Premium laptop with stunning 4K OLED display and powerful performance for creators and professionals.",
			Features: []string{
				"13th Gen Intel Core i9 processor",
				"NVIDIA GeForce RTX 4070 GPU",
				"15.6\" 4K OLED InfinityEdge touch display",
				"Thunderbolt 4 ports",
			},
		},
		{
			ID:            "3",
			Name:          "ThinkPad X1 Carbon Gen 11",
			Brand:         "Lenovo",
			Processor:     "Intel i7-1365U",
			Memory:        "16GB",
			Storage:       "512GB SSD",
			Graphics:      "Intel Iris Xe",
			Display:       "14\" 2.8K OLED",
			Price:         1899,
			OriginalPrice: 2199,
			Image:         "https://images.pexels.com/photos/1112598/pexels-photo-1112598.jpeg?auto=compress&cs=tinysrgb&w=800",
			Images: []string{
				"https://images.pexels.com/photos/1112598/pexels-photo-1112598.jpeg?auto=compress&cs=tinysrgb&w=800",
			},
			Rating:      4.6,
			Reviews:     1456,
			Description: "Legendary business laptop with military-grade durability and all-day battery life.",
			Features: []string{
				"13th Gen Intel Core i7 processor",
				"14\" 2.8K OLED display",
				"Carbon fiber construction",
				"Rapid charge technology",
			},
		},
		{
			ID:            "4",
			Name:          "ROG Zephyrus G14",
			Brand:         "ASUS",
			Processor:     "AMD Ryzen 9 7940HS",
			Memory:        "16GB",
			Storage:       "1TB SSD",
			Graphics:      "NVIDIA RTX 4060",
			Display:       "14\" QHD+ 165Hz",
			Price:         1599,
			Image:         "https://images.pexels.com/photos/777001/pexels-photo-777001.jpeg?auto=compress&cs=tinysrgb&w=800",
			Images: []string{
				"https://images.pexels.com/photos/777001/pexels-photo-777001.jpeg?auto=compress&cs=tinysrgb&w=800",
			},
			Rating:      4.5,
			Reviews:     987,
			Description: "Compact gaming powerhouse with AMD Ryzen 9 and a 165Hz QHD+ display.",
			Features: []string{
				"AMD Ryzen 9 7940HS processor",
				"NVIDIA GeForce RTX 4060 GPU",
				"165Hz QHD+ display",
				"AniMe Matrix LED lid",
			},
		},
	}
}

func Users() []domain.User {
	return []domain.User{
		{
			ID:           "1",
			Name:         "John Smith",
			Email:        "john.smith@email.com",
			Role:         domain.RoleCustomer,
			Status:       domain.UserStatusActive,
			JoinDate:     date(2024, 1, 15),
			TotalOrders:  5,
			PasswordHash: DemoPasswordHash,
		},
		{
			ID:           "2",
			Name:         "Sarah Johnson",
			Email:        "sarah.johnson@email.com",
			Role:         domain.RoleCustomer,
			Status:       domain.UserStatusActive,
			JoinDate:     date(2024, 2, 20),
			TotalOrders:  3,
			PasswordHash: DemoPasswordHash,
		},
		{
			ID:           "3",
			Name:         "Emily Davis",
			Email:        "emily.davis@email.com",
			Role:         domain.RoleCustomer,
			Status:       domain.UserStatusBlocked,
			JoinDate:     date(2024, 1, 5),
			TotalOrders:  2,
			PasswordHash: DemoPasswordHash,
		},
		{
			ID:           "5",
			Name:         "Admin User",
			Email:        "admin@laptopshop.com",
			Role:         domain.RoleAdmin,
			Status:       domain.UserStatusActive,
			JoinDate:     date(2023, 12, 1),
			TotalOrders:  0,
			PasswordHash: DemoPasswordHash,
		},
	}
}

func Orders() []domain.Order {
	products := Products()
	return []domain.Order{
		{
			ID:        "ORD-001",
			UserID:    "1",
			UserName:  "John Smith",
			UserEmail: "john.smith@email.com",
			Items: []domain.CartLine{
				{Product: products[0], Quantity: 1},
			},
			Total:           3499,
			Status:          domain.OrderStatusDelivered,
			OrderDate:       date(2024, 12, 1),
			ShippingAddress: "123 Main St, New York, NY 10001",
		},
		{
			ID:        "ORD-002",
			UserID:    "2",
			UserName:  "Sarah Johnson",
			UserEmail: "sarah.johnson@email.com",
			Items: []domain.CartLine{
				{Product: products[1], Quantity: 1},
				{Product: products[3], Quantity: 1},
			},
			Total:           4498,
			Status:          domain.OrderStatusShipped,
			OrderDate:       date(2024, 12, 15),
			ShippingAddress: "456 Oak Ave, Los Angeles, CA 90210",
		},
		{
			ID:        "ORD-003",
			UserID:    "3",
			UserName:  "Emily Davis",
			UserEmail: "emily.davis@email.com",
			Items: []domain.CartLine{
				{Product: products[2], Quantity: 2},
			},
			Total:           3798,
			Status:          domain.OrderStatusPending,
			OrderDate:       date(2024, 12, 20),
			ShippingAddress: "789 Pine Rd, Chicago, IL 60601",
		},
	}
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
