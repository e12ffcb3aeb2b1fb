package pricing

// SeedPlans returns the built-in plan dataset.
func SeedPlans() []Plan {
	return []Plan{
		{
			ID:          1,
			Name:        "Hot Desk",
			Description: "Any open seat in the shared area, first come first served.",
			Category:    CategoryCoworking,
			Price:       499,
			Unit:        "day",
			Features: []string{
				"High-speed WiFi",
				"Coffee and tea",
				"Access 9am to 9pm",
			},
			DisplayOrder: 1,
			IsActive:     true,
		},
		{
			ID:          2,
			Name:        "Dedicated Desk",
			Description: "Your own desk with a locker, in the shared area.",
			Category:    CategoryCoworking,
			Price:       7999,
			Unit:        "month",
			Features: []string{
				"Fixed seat with locker",
				"24/7 access",
				"10 meeting room hours",
				"Printing credits",
			},
			IsPopular:    true,
			DisplayOrder: 2,
			IsActive:     true,
		},
		{
			ID:          3,
			Name:        "Private Cabin",
			Description: "Lockable office for teams of two to eight.",
			Category:    CategoryPrivate,
			Price:       24999,
			Unit:        "month",
			Features: []string{
				"Lockable cabin",
				"24/7 access",
				"20 meeting room hours",
				"Company signage",
			},
			DisplayOrder: 3,
			IsActive:     true,
		},
		{
			ID:          4,
			Name:        "Virtual Office",
			Description: "Business address with GST registration support.",
			Category:    CategoryVirtual,
			Price:       1999,
			Unit:        "month",
			Features: []string{
				"Business address",
				"GST registration",
				"Mail handling",
			},
			DisplayOrder: 4,
			IsActive:     true,
		},
		{
			ID:           5,
			Name:         "Weekend Pass",
			Description:  "Retired trial plan.",
			Category:     CategoryCoworking,
			Price:        299,
			Unit:         "day",
			Features:     []string{"Weekend access only"},
			DisplayOrder: 5,
			IsActive:     false,
		},
	}
}

// SeedAddons returns the built-in add-on dataset.
func SeedAddons() []AddonService {
	return []AddonService{
		{ID: 1, Name: "Meeting Room Hour", Description: "Extra meeting room time beyond plan quota.", Price: 500, Unit: "hour", DisplayOrder: 1, IsActive: true},
		{ID: 2, Name: "Parking Spot", Description: "Reserved parking at supported locations.", Price: 2000, Unit: "month", DisplayOrder: 2, IsActive: true},
		{ID: 3, Name: "Event Space Rental", Description: "Evening and weekend event floor rental.", Price: 15000, Unit: "day", DisplayOrder: 3, IsActive: true},
	}
}

// SeedFAQs returns the built-in FAQ dataset.
func SeedFAQs() []FAQ {
	return []FAQ{
		{ID: 1, Question: "Can I upgrade my plan mid-month?", Answer: "Yes. Upgrades are pro-rated from the day you switch; the difference is added to your next invoice.", DisplayOrder: 1, IsActive: true},
		{ID: 2, Question: "Is GST registration included with the virtual office plan?", Answer: "Yes. We provide the documentation needed for GST registration at no extra charge.", DisplayOrder: 2, IsActive: true},
		{ID: 3, Question: "Do unused meeting room hours roll over?", Answer: "No, meeting room quotas reset at the start of each billing cycle.", DisplayOrder: 3, IsActive: true},
	}
}
