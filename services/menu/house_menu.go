package menu

import "github.com/QuickPrimeTech/kenyan-restaurant-sub000/models"

var portionChoice = models.MenuChoice{
	ID: "portion", Title: "Portion", Required: true, MaxSelectable: 1,
	Options: []models.MenuOption{
		{Label: "Regular"},
		{Label: "Large", Price: kes(250)},
	},
}

var sideChoice = models.MenuChoice{
	ID: "sides", Title: "Sides", MaxSelectable: 2,
	Options: []models.MenuOption{
		{Label: "Ugali", Price: kes(80)},
		{Label: "Chapati", Price: kes(60)},
		{Label: "Kachumbari", Price: kes(50)},
		{Label: "Sukuma Wiki", Price: kes(70)},
		{Label: "Fries", Price: kes(150)},
	},
}

var houseMenu = []models.MenuItem{
	{
		ID: "nyama-choma", Name: "Nyama Choma", Category: "Grill",
		Description: "Slow roasted goat on charcoal, served with kachumbari",
		ImageURL:    "/images/menu/nyama-choma.jpg",
		BasePrice:   kes(1200),
		Choices: []models.MenuChoice{
			{
				ID: "doneness", Title: "Doneness", Required: true, MaxSelectable: 1,
				Options: []models.MenuOption{{Label: "Medium"}, {Label: "Well done"}},
			},
			{
				ID: "weight", Title: "Weight", Required: true, MaxSelectable: 1,
				Options: []models.MenuOption{{Label: "Half kilo"}, {Label: "One kilo", Price: kes(1000)}},
			},
			sideChoice,
		},
	},
	{
		ID: "kuku-choma", Name: "Kuku Choma", Category: "Grill",
		Description: "Grilled free range chicken with lemon and pili pili",
		ImageURL:    "/images/menu/kuku-choma.jpg",
		BasePrice:   kes(950),
		Choices:     []models.MenuChoice{portionChoice, sideChoice},
	},
	{
		ID: "tilapia-wet-fry", Name: "Tilapia Wet Fry", Category: "Mains",
		Description: "Whole lake tilapia in tomato and coriander stew",
		ImageURL:    "/images/menu/tilapia.jpg",
		BasePrice:   kes(1100),
		Choices:     []models.MenuChoice{sideChoice},
	},
	{
		ID: "pilau", Name: "Beef Pilau", Category: "Mains",
		Description: "Spiced rice with tender beef, Swahili coast style",
		ImageURL:    "/images/menu/pilau.jpg",
		BasePrice:   kes(650),
		Choices: []models.MenuChoice{
			portionChoice,
			{
				ID: "extras", Title: "Extras", MaxSelectable: 3,
				Options: []models.MenuOption{
					{Label: "Kachumbari", Price: kes(50)},
					{Label: "Avocado", Price: kes(80)},
					{Label: "Pili Pili"},
				},
			},
		},
	},
	{
		ID: "githeri", Name: "Githeri", Category: "Mains",
		Description: "Maize and beans stewed with potatoes and greens",
		ImageURL:    "/images/menu/githeri.jpg",
		BasePrice:   kes(450),
		Choices: []models.MenuChoice{
			{
				ID: "protein", Title: "Add protein", MaxSelectable: 1,
				Options: []models.MenuOption{{Label: "Beef", Price: kes(200)}, {Label: "Eggs", Price: kes(100)}},
			},
		},
	},
	{
		ID: "samosa", Name: "Samosa (3 pcs)", Category: "Starters",
		Description: "Crisp pastry triangles with tamarind dip",
		ImageURL:    "/images/menu/samosa.jpg",
		BasePrice:   kes(300),
		Choices: []models.MenuChoice{
			{
				ID: "filling", Title: "Filling", Required: true, MaxSelectable: 1,
				Options: []models.MenuOption{{Label: "Beef"}, {Label: "Chicken"}, {Label: "Vegetable"}},
			},
		},
	},
	{
		ID: "mandazi", Name: "Mandazi", Category: "Desserts",
		Description: "Coconut and cardamom doughnuts",
		ImageURL:    "/images/menu/mandazi.jpg",
		BasePrice:   kes(200),
		Choices: []models.MenuChoice{
			{
				ID: "toppings", Title: "Toppings", MaxSelectable: 2,
				Options: []models.MenuOption{{Label: "Honey", Price: kes(50)}, {Label: "Cinnamon sugar", Price: kes(30)}},
			},
		},
	},
	{
		ID: "dawa", Name: "Dawa Cocktail", Category: "Drinks",
		Description: "Vodka, lime, honey and crushed ice",
		ImageURL:    "/images/menu/dawa.jpg",
		BasePrice:   kes(700),
	},
	{
		ID: "chai", Name: "Chai ya Tangawizi", Category: "Drinks",
		Description: "Ginger spiced milk tea",
		ImageURL:    "/images/menu/chai.jpg",
		BasePrice:   kes(180),
		Choices: []models.MenuChoice{
			{
				ID: "milk", Title: "Milk", MaxSelectable: 1,
				Options: []models.MenuOption{{Label: "Whole"}, {Label: "Oat", Price: kes(60)}},
			},
		},
	},
}
