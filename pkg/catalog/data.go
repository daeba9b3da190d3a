package catalog

// Reference data for the grocery catalog. One canonical dataset; category and
// item order below is the declared display order and is load-bearing for
// category resolution.

var masterList = []Category{
	{Name: "Produce - Fruits", Items: []Item{
		{"Apples", "lb"},
		{"Avocados", "each"},
		{"Bananas", "bunch"},
		{"Blackberries", "pint"},
		{"Blueberries", "pint"},
		{"Cantaloupe", "each"},
		{"Cherries", "lb"},
		{"Grapefruit", "each"},
		{"Grapes", "lb"},
		{"Honeydew", "each"},
		{"Kiwi", "each"},
		{"Lemons", "each"},
		{"Limes", "each"},
		{"Mango", "each"},
		{"Oranges", "lb"},
		{"Peaches", "lb"},
		{"Pears", "lb"},
		{"Pineapple", "each"},
		{"Plums", "lb"},
		{"Raspberries", "pint"},
		{"Strawberries", "lb"},
		{"Watermelon", "each"},
	}},
	{Name: "Produce - Vegetables", Items: []Item{
		{"Acorn Squash", "each"},
		{"Arugula", "bag"},
		{"Asparagus", "bunch"},
		{"Beets", "lb"},
		{"Bell Peppers (Green)", "each"},
		{"Bell Peppers (Red)", "each"},
		{"Bell Peppers (Yellow)", "each"},
		{"Broccoli", "lb"},
		{"Brussels Sprouts", "lb"},
		{"Butternut Squash", "each"},
		{"Cabbage (Green)", "head"},
		{"Cabbage (Red)", "head"},
		{"Carrots", "lb"},
		{"Cauliflower", "head"},
		{"Celery", "bunch"},
		{"Cherry Tomatoes", "pint"},
		{"Corn on the Cob", "each"},
		{"Cucumbers", "each"},
		{"Eggplant", "each"},
		{"Garlic", "head"},
		{"Grape Tomatoes", "pint"},
		{"Green Beans", "lb"},
		{"Jalape\u221a\u00b1os", "each"},
		{"Kale", "bunch"},
		{"Lettuce (Iceberg)", "head"},
		{"Lettuce (Romaine)", "head"},
		{"Mixed Greens", "bag"},
		{"Mushrooms (Cremini)", "oz"},
		{"Mushrooms (Portobello)", "each"},
		{"Mushrooms (White)", "oz"},
		{"Onions (Red)", "each"},
		{"Onions (White)", "each"},
		{"Onions (Yellow)", "each"},
		{"Parsnips", "lb"},
		{"Potatoes (Red)", "lb"},
		{"Potatoes (Russet)", "lb"},
		{"Potatoes (Yukon Gold)", "lb"},
		{"Radishes", "bunch"},
		{"Serrano Peppers", "each"},
		{"Snap Peas", "lb"},
		{"Spaghetti Squash", "each"},
		{"Spinach", "bag"},
		{"Sweet Potatoes", "lb"},
		{"Tomatoes", "lb"},
		{"Turnips", "lb"},
		{"Yellow Squash", "each"},
		{"Zucchini", "each"},
	}},
	{Name: "Produce - Herbs", Items: []Item{
		{"Basil (Fresh)", "bunch"},
		{"Chives", "bunch"},
		{"Cilantro", "bunch"},
		{"Dill", "bunch"},
		{"Ginger Root", "each"},
		{"Green Onions/Scallions", "bunch"},
		{"Mint", "bunch"},
		{"Parsley (Curly)", "bunch"},
		{"Parsley (Flat)", "bunch"},
		{"Rosemary", "bunch"},
		{"Sage", "bunch"},
		{"Thyme", "bunch"},
	}},
	{Name: "Dairy", Items: []Item{
		{"2% Milk", "half gal"},
		{"American Cheese", "lb"},
		{"Blue Cheese", "oz"},
		{"Brie", "each"},
		{"Butter (Salted)", "lb"},
		{"Butter (Unsalted)", "lb"},
		{"Cheddar Cheese", "lb"},
		{"Cottage Cheese", "oz"},
		{"Cream Cheese", "oz"},
		{"Eggs (Large)", "dozen"},
		{"Feta Cheese", "oz"},
		{"Goat Cheese", "oz"},
		{"Half & Half", "pint"},
		{"Heavy Cream", "pint"},
		{"Mozzarella Cheese", "lb"},
		{"Parmesan Cheese", "lb"},
		{"Pepper Jack Cheese", "lb"},
		{"Provolone Cheese", "lb"},
		{"Ricotta Cheese", "oz"},
		{"Shredded Mexican Blend", "bag"},
		{"Skim Milk", "half gal"},
		{"Sour Cream", "oz"},
		{"Swiss Cheese", "lb"},
		{"Whole Milk", "half gal"},
		{"Yogurt (Greek)", "oz"},
		{"Yogurt (Plain)", "oz"},
	}},
	{Name: "Dairy Alternatives", Items: []Item{
		{"Almond Milk", "carton"},
		{"Coconut Milk (Carton)", "carton"},
		{"Oat Milk", "carton"},
		{"Soy Milk", "carton"},
		{"Vegan Butter", "each"},
		{"Vegan Cheese", "each"},
	}},
	{Name: "Meat - Beef", Items: []Item{
		{"Brisket", "lb"},
		{"Chuck Roast", "lb"},
		{"Filet Mignon", "lb"},
		{"Flank Steak", "lb"},
		{"Ground Beef (80/20)", "lb"},
		{"Ground Beef (90/10)", "lb"},
		{"NY Strip Steak", "lb"},
		{"Pastrami Slices", "lb"},
		{"Ribeye Steak", "lb"},
		{"Short Ribs", "lb"},
		{"Sirloin Steak", "lb"},
		{"Skirt Steak", "lb"},
		{"Stew Meat", "lb"},
	}},
	{Name: "Meat - Pork", Items: []Item{
		{"Baby Back Ribs", "lb"},
		{"Bacon", "pack"},
		{"Bratwurst", "pack"},
		{"Breakfast Sausage", "pack"},
		{"Ground Pork", "lb"},
		{"Ham (Sliced)", "lb"},
		{"Ham (Whole)", "lb"},
		{"Hot Dogs", "pack"},
		{"Italian Sausage", "lb"},
		{"Pepperoni", "pack"},
		{"Pork Chops (Bone-In)", "lb"},
		{"Pork Chops (Boneless)", "lb"},
		{"Pork Loin Roast", "lb"},
		{"Pork Shoulder", "lb"},
		{"Pork Tenderloin", "lb"},
		{"Prosciutto", "oz"},
		{"Salami", "oz"},
		{"Spare Ribs", "lb"},
	}},
	{Name: "Meat - Poultry", Items: []Item{
		{"Chicken Breast (Bone-In)", "lb"},
		{"Chicken Breast (Boneless)", "lb"},
		{"Chicken Drumsticks", "lb"},
		{"Chicken Thighs (Bone-In)", "lb"},
		{"Chicken Thighs (Boneless)", "lb"},
		{"Chicken Wings", "lb"},
		{"Ground Chicken", "lb"},
		{"Ground Turkey", "lb"},
		{"Rotisserie Chicken", "each"},
		{"Turkey (Deli Sliced)", "lb"},
		{"Turkey Breast", "lb"},
		{"Whole Chicken", "each"},
	}},
	{Name: "Seafood", Items: []Item{
		{"Crab Meat", "lb"},
		{"Salmon Fillet", "lb"},
		{"Sea Bass", "lb"},
		{"Shrimp (Cooked)", "lb"},
		{"Shrimp (Raw)", "lb"},
	}},
	{Name: "Canned Goods", Items: []Item{
		{"Artichoke Hearts", "can"},
		{"Baked Beans", "can"},
		{"Beef Broth", "carton"},
		{"Black Beans", "can"},
		{"Chicken Broth", "carton"},
		{"Chipotle in Adobo", "can"},
		{"Coconut Milk (Canned)", "can"},
		{"Corn (Canned)", "can"},
		{"Crushed Tomatoes", "can"},
		{"Diced Tomatoes", "can"},
		{"Evaporated Milk", "can"},
		{"Green Beans (Canned)", "can"},
		{"Green Chiles", "can"},
		{"Jalape\u221a\u00b1os (Pickled)", "jar"},
		{"Kidney Beans", "can"},
		{"Mixed Vegetables", "can"},
		{"Olives (Black)", "can"},
		{"Olives (Green)", "jar"},
		{"Peas (Canned)", "can"},
		{"Pinto Beans", "can"},
		{"Pumpkin Puree", "can"},
		{"Refried Beans", "can"},
		{"Roasted Red Peppers", "jar"},
		{"Sweetened Condensed Milk", "can"},
		{"Tomato Paste", "can"},
		{"Tomato Sauce", "can"},
		{"Tuna (Canned)", "can"},
		{"Vegetable Broth", "carton"},
	}},
	{Name: "Grains & Pasta", Items: []Item{
		{"Angel Hair", "box"},
		{"Arborio Rice", "lb"},
		{"Barley", "lb"},
		{"Basmati Rice", "lb"},
		{"Brown Rice", "lb"},
		{"Bulgur", "lb"},
		{"Couscous", "box"},
		{"Egg Noodles", "bag"},
		{"Farfalle (Bow Tie)", "box"},
		{"Farro", "lb"},
		{"Fettuccine", "box"},
		{"Fusilli", "box"},
		{"Jasmine Rice", "lb"},
		{"Lasagna Noodles", "box"},
		{"Linguine", "box"},
		{"Macaroni", "box"},
		{"Oats (Instant)", "box"},
		{"Oats (Rolled)", "container"},
		{"Oats (Steel Cut)", "container"},
		{"Orzo", "box"},
		{"Penne", "box"},
		{"Quinoa", "lb"},
		{"Ramen Noodles", "pack"},
		{"Ravioli", "pack"},
		{"Rice Noodles", "pack"},
		{"Rigatoni", "box"},
		{"Soba Noodles", "pack"},
		{"Spaghetti", "box"},
		{"Tortellini", "pack"},
		{"Udon Noodles", "pack"},
		{"White Rice (Long Grain)", "lb"},
		{"Wild Rice", "lb"},
	}},
	{Name: "Bread & Bakery", Items: []Item{
		{"Bagels", "pack"},
		{"Breadcrumbs", "container"},
		{"Ciabatta", "each"},
		{"Corn Tortillas", "pack"},
		{"Croissants", "pack"},
		{"Croutons", "bag"},
		{"English Muffins", "pack"},
		{"Flour Tortillas", "pack"},
		{"French Bread", "loaf"},
		{"Hamburger Buns", "pack"},
		{"Hot Dog Buns", "pack"},
		{"Italian Bread", "loaf"},
		{"Multigrain Bread", "loaf"},
		{"Naan", "pack"},
		{"Panko Breadcrumbs", "container"},
		{"Pita Bread", "pack"},
		{"Rye Bread", "loaf"},
		{"Sourdough Bread", "loaf"},
		{"Wheat Bread", "loaf"},
		{"White Bread", "loaf"},
	}},
	{Name: "Baking", Items: []Item{
		{"Active Dry Yeast", "pack"},
		{"Agave Nectar", "bottle"},
		{"All-Purpose Flour", "lb"},
		{"Almond Extract", "bottle"},
		{"Almond Flour", "lb"},
		{"Baking Chocolate", "bar"},
		{"Baking Powder", "can"},
		{"Baking Soda", "box"},
		{"Bread Flour", "lb"},
		{"Brown Sugar", "lb"},
		{"Cake Flour", "lb"},
		{"Chocolate Chips", "bag"},
		{"Cocoa Powder", "container"},
		{"Coconut Flour", "lb"},
		{"Corn Syrup", "bottle"},
		{"Cornmeal", "lb"},
		{"Cornstarch", "box"},
		{"Cream of Tartar", "container"},
		{"Granulated Sugar", "lb"},
		{"Honey", "bottle"},
		{"Instant Yeast", "pack"},
		{"Maple Syrup", "bottle"},
		{"Molasses", "bottle"},
		{"Powdered Sugar", "lb"},
		{"Shortening", "can"},
		{"Vanilla Extract", "bottle"},
		{"Whole Wheat Flour", "lb"},
	}},
	{Name: "Oils & Vinegars", Items: []Item{
		{"Apple Cider Vinegar", "bottle"},
		{"Avocado Oil", "bottle"},
		{"Balsamic Vinegar", "bottle"},
		{"Canola Oil", "bottle"},
		{"Coconut Oil", "jar"},
		{"Cooking Spray", "can"},
		{"Olive Oil (Extra Virgin)", "bottle"},
		{"Olive Oil (Light)", "bottle"},
		{"Peanut Oil", "bottle"},
		{"Red Wine Vinegar", "bottle"},
		{"Rice Vinegar", "bottle"},
		{"Sesame Oil", "bottle"},
		{"Vegetable Oil", "bottle"},
		{"White Vinegar", "bottle"},
	}},
	{Name: "Spices & Seasonings", Items: []Item{
		{"Allspice", "container"},
		{"Basil (Dried)", "container"},
		{"Bay Leaves", "container"},
		{"Black Pepper", "container"},
		{"Caraway Seeds", "container"},
		{"Cardamom", "container"},
		{"Cayenne Pepper", "container"},
		{"Celery Salt", "container"},
		{"Celery Seed", "container"},
		{"Chili Powder", "container"},
		{"Cinnamon (Ground)", "container"},
		{"Cinnamon Sticks", "container"},
		{"Cloves", "container"},
		{"Coriander", "container"},
		{"Cumin", "container"},
		{"Curry Powder", "container"},
		{"Dill (Dried)", "container"},
		{"Fennel Seeds", "container"},
		{"Garam Masala", "container"},
		{"Garlic Powder", "container"},
		{"Ginger (Ground)", "container"},
		{"Herbs de Provence", "container"},
		{"Italian Seasoning", "container"},
		{"Mustard (Dry)", "container"},
		{"Mustard Seeds", "container"},
		{"Nutmeg", "container"},
		{"Onion Powder", "container"},
		{"Oregano (Dried)", "container"},
		{"Paprika", "container"},
		{"Poppy Seeds", "container"},
		{"Ranch Seasoning", "pack"},
		{"Red Pepper Flakes", "container"},
		{"Rosemary (Dried)", "container"},
		{"Saffron", "container"},
		{"Salt (Kosher)", "box"},
		{"Salt (Sea)", "container"},
		{"Salt (Table)", "container"},
		{"Sesame Seeds", "container"},
		{"Smoked Paprika", "container"},
		{"Taco Seasoning", "pack"},
		{"Thyme (Dried)", "container"},
		{"Turmeric", "container"},
		{"White Pepper", "container"},
	}},
	{Name: "Condiments", Items: []Item{
		{"Alfredo Sauce", "jar"},
		{"BBQ Sauce", "bottle"},
		{"Blue Cheese Dressing", "bottle"},
		{"Caesar Dressing", "bottle"},
		{"Capers", "jar"},
		{"Fish Sauce", "bottle"},
		{"Guacamole", "container"},
		{"Hoisin Sauce", "bottle"},
		{"Hot Sauce", "bottle"},
		{"Hummus", "container"},
		{"Italian Dressing", "bottle"},
		{"Ketchup", "bottle"},
		{"Kimchi", "jar"},
		{"Marinara Sauce", "jar"},
		{"Mayonnaise", "jar"},
		{"Mustard (Dijon)", "jar"},
		{"Mustard (Spicy Brown)", "bottle"},
		{"Mustard (Yellow)", "bottle"},
		{"Oyster Sauce", "bottle"},
		{"Pesto", "jar"},
		{"Pickles (Bread & Butter)", "jar"},
		{"Pickles (Dill)", "jar"},
		{"Pico de Gallo", "container"},
		{"Ranch Dressing", "bottle"},
		{"Relish", "jar"},
		{"Salsa", "jar"},
		{"Sauerkraut", "jar"},
		{"Soy Sauce", "bottle"},
		{"Sriracha", "bottle"},
		{"Sun-Dried Tomatoes", "jar"},
		{"Tahini", "jar"},
		{"Teriyaki Sauce", "bottle"},
		{"Thousand Island", "bottle"},
		{"Vinaigrette", "bottle"},
		{"Worcestershire Sauce", "bottle"},
	}},
	{Name: "Nuts & Seeds", Items: []Item{
		{"Almond Butter", "jar"},
		{"Almonds", "bag"},
		{"Brazil Nuts", "bag"},
		{"Cashews", "bag"},
		{"Chia Seeds", "bag"},
		{"Flax Seeds", "bag"},
		{"Hazelnuts", "bag"},
		{"Hemp Seeds", "bag"},
		{"Macadamia Nuts", "bag"},
		{"Peanut Butter", "jar"},
		{"Peanuts", "bag"},
		{"Pecans", "bag"},
		{"Pine Nuts", "bag"},
		{"Pistachios", "bag"},
		{"Pumpkin Seeds", "bag"},
		{"Sunflower Seeds", "bag"},
		{"Walnuts", "bag"},
	}},
	{Name: "Dried Fruits", Items: []Item{
		{"Dates", "container"},
		{"Dried Apricots", "bag"},
		{"Dried Cranberries", "bag"},
		{"Dried Figs", "bag"},
		{"Dried Mango", "bag"},
		{"Dried Pineapple", "bag"},
		{"Prunes", "bag"},
		{"Raisins", "box"},
		{"Trail Mix", "bag"},
	}},
	{Name: "Frozen - Vegetables", Items: []Item{
		{"Frozen Broccoli", "bag"},
		{"Frozen Cauliflower Rice", "bag"},
		{"Frozen Corn", "bag"},
		{"Frozen Edamame", "bag"},
		{"Frozen Green Beans", "bag"},
		{"Frozen Mixed Vegetables", "bag"},
		{"Frozen Peas", "bag"},
		{"Frozen Spinach", "bag"},
		{"Frozen Stir Fry Mix", "bag"},
	}},
	{Name: "Frozen - Fruits", Items: []Item{
		{"Frozen Bananas", "bag"},
		{"Frozen Blueberries", "bag"},
		{"Frozen Mango", "bag"},
		{"Frozen Mixed Berries", "bag"},
		{"Frozen Peaches", "bag"},
		{"Frozen Pineapple", "bag"},
		{"Frozen Raspberries", "bag"},
		{"Frozen Strawberries", "bag"},
	}},
	{Name: "Frozen - Meats", Items: []Item{
		{"Frozen Burgers", "box"},
		{"Frozen Chicken Breasts", "bag"},
		{"Frozen Chicken Wings", "bag"},
		{"Frozen Ground Beef", "lb"},
		{"Frozen Meatballs", "bag"},
	}},
	{Name: "Frozen - Seafood", Items: []Item{
		{"Frozen Fish Sticks", "box"},
		{"Frozen Salmon", "lb"},
		{"Frozen Shrimp", "bag"},
		{"Frozen Tilapia", "bag"},
	}},
	{Name: "Frozen - Prepared", Items: []Item{
		{"Frozen Burritos", "pack"},
		{"Frozen Dinner Entrees", "each"},
		{"Frozen French Fries", "bag"},
		{"Frozen Hash Browns", "bag"},
		{"Frozen Pancakes", "box"},
		{"Frozen Pizza", "each"},
		{"Frozen Pot Pies", "each"},
		{"Frozen Tater Tots", "bag"},
		{"Frozen Waffles", "box"},
	}},
	{Name: "Frozen - Desserts", Items: []Item{
		{"Frozen Phyllo Dough", "box"},
		{"Frozen Pie Crusts", "pack"},
		{"Frozen Puff Pastry", "box"},
		{"Frozen Yogurt", "pint"},
		{"Ice Cream", "pint"},
		{"Ice Cream Bars", "box"},
	}},
	{Name: "Beverages", Items: []Item{
		{"Apple Juice", "bottle"},
		{"Bottled Water", "pack"},
		{"Club Soda", "bottle"},
		{"Coconut Water", "carton"},
		{"Cranberry Juice", "bottle"},
		{"Energy Drinks", "pack"},
		{"Fresca", "pack"},
		{"Grape Juice", "bottle"},
		{"Iced Tea", "bottle"},
		{"Lemonade", "carton"},
		{"Orange Juice", "carton"},
		{"Soda (Cola)", "cans"},
		{"Soda (Ginger Ale)", "pack"},
		{"Soda (Lemon-Lime)", "pack"},
		{"Sparkling Water", "pack"},
		{"Sports Drinks", "pack"},
		{"Tonic Water", "bottle"},
	}},
	{Name: "Coffee & Tea", Items: []Item{
		{"Black Tea", "box"},
		{"Chai Tea", "box"},
		{"Chamomile Tea", "box"},
		{"Coffee (Ground)", "bag"},
		{"Coffee (Instant)", "jar"},
		{"Coffee (K-Cups)", "box"},
		{"Coffee (Whole Bean)", "bag"},
		{"Decaf Coffee", "bag"},
		{"Earl Grey Tea", "box"},
		{"Espresso", "bag"},
		{"Green Tea", "box"},
		{"Herbal Tea", "box"},
		{"Matcha Powder", "container"},
		{"Peppermint Tea", "box"},
	}},
	{Name: "Snacks", Items: []Item{
		{"Beef Jerky", "bag"},
		{"Cheese Puffs", "bag"},
		{"Crackers (Cheese)", "box"},
		{"Crackers (Graham)", "box"},
		{"Crackers (Saltine)", "box"},
		{"Crackers (Wheat)", "box"},
		{"Fruit Snacks", "box"},
		{"Granola Bars", "box"},
		{"Popcorn", "bag"},
		{"Potato Chips", "bag"},
		{"Pretzels", "bag"},
		{"Protein Bars", "box"},
		{"Rice Cakes", "bag"},
		{"Tortilla Chips", "bag"},
		{"Veggie Straws", "bag"},
	}},
	{Name: "Breakfast", Items: []Item{
		{"Breakfast Bars", "box"},
		{"Cereal (Cold)", "box"},
		{"Granola", "bag"},
		{"Muesli", "bag"},
		{"Muffin Mix", "box"},
		{"Pancake Mix", "box"},
		{"Pop-Tarts", "box"},
		{"Waffle Mix", "box"},
	}},
	{Name: "Baby & Infant", Items: []Item{
		{"Baby Cereal", "box"},
		{"Baby Food (Jars)", "jar"},
		{"Baby Food (Pouches)", "each"},
		{"Baby Formula", "can"},
		{"Teething Biscuits", "box"},
	}},
	{Name: "Pet Food", Items: []Item{
		{"Cat Food (Dry)", "bag"},
		{"Cat Food (Wet)", "can"},
		{"Cat Treats", "bag"},
		{"Dog Food (Dry)", "bag"},
		{"Dog Food (Wet)", "can"},
		{"Dog Treats", "bag"},
	}},
	{Name: "Household - Paper", Items: []Item{
		{"Aluminum Foil", "roll"},
		{"Facial Tissues", "box"},
		{"Napkins", "pack"},
		{"Paper Cups", "pack"},
		{"Paper Plates", "pack"},
		{"Paper Towels", "pack"},
		{"Parchment Paper", "roll"},
		{"Plastic Wrap", "roll"},
		{"Toilet Paper", "pack"},
		{"Trash Bags (Kitchen)", "box"},
		{"Trash Bags (Large)", "box"},
		{"Wax Paper", "roll"},
		{"Zip-Lock Bags (Gallon)", "box"},
		{"Zip-Lock Bags (Quart)", "box"},
		{"Zip-Lock Bags (Sandwich)", "box"},
	}},
	{Name: "Household - Cleaning", Items: []Item{
		{"All-Purpose Cleaner", "bottle"},
		{"Bleach", "bottle"},
		{"Broom", "each"},
		{"Dish Soap", "bottle"},
		{"Dishwasher Detergent", "bottle"},
		{"Disinfecting Wipes", "container"},
		{"Dryer Sheets", "box"},
		{"Fabric Softener", "bottle"},
		{"Glass Cleaner", "bottle"},
		{"Laundry Detergent", "bottle"},
		{"Mop", "each"},
		{"Scrub Brushes", "each"},
		{"Sponges", "pack"},
	}},
	{Name: "Personal Care", Items: []Item{
		{"Bar Soap", "pack"},
		{"Body Wash", "bottle"},
		{"Conditioner", "bottle"},
		{"Cotton Balls", "bag"},
		{"Cotton Swabs", "box"},
		{"Dental Floss", "each"},
		{"Deodorant", "each"},
		{"Hand Sanitizer", "bottle"},
		{"Hand Soap", "bottle"},
		{"Lip Balm", "each"},
		{"Lotion", "bottle"},
		{"Mouthwash", "bottle"},
		{"Razors", "pack"},
		{"Shampoo", "bottle"},
		{"Shaving Cream", "can"},
		{"Sunscreen", "bottle"},
		{"Toothbrush", "each"},
		{"Toothpaste", "each"},
	}},
	{Name: "Health", Items: []Item{
		{"Allergy Medicine", "box"},
		{"Antacid", "bottle"},
		{"Bandages", "box"},
		{"Cold Medicine", "bottle"},
		{"Cough Drops", "bag"},
		{"First Aid Kit", "each"},
		{"Fish Oil", "bottle"},
		{"Melatonin", "bottle"},
		{"Multivitamins", "bottle"},
		{"Pain Reliever (Acetaminophen)", "bottle"},
		{"Pain Reliever (Ibuprofen)", "bottle"},
		{"Probiotics", "bottle"},
		{"Vitamin C", "bottle"},
		{"Vitamin D", "bottle"},
	}},
	{Name: "International", Items: []Item{
		{"Coconut Cream", "can"},
		{"Curry Paste", "jar"},
		{"Enchilada Sauce", "can"},
		{"Miso Paste", "container"},
		{"Mole Sauce", "jar"},
		{"Seaweed/Nori", "pack"},
		{"Taco Shells", "box"},
		{"Tempeh", "pack"},
		{"Tofu", "pack"},
	}},
}

// brandGroups clusters items that share one brand vocabulary. An item appears
// in at most one group.
var brandGroups = map[string][]string{
	"cheese": {
		"Cheddar Cheese",
		"Swiss Cheese",
		"Mozzarella Cheese",
		"Parmesan Cheese",
		"Provolone Cheese",
		"American Cheese",
		"Pepper Jack Cheese",
		"Feta Cheese",
		"Blue Cheese",
		"Goat Cheese",
		"Ricotta Cheese",
		"Brie",
		"Shredded Mexican Blend",
		"Cottage Cheese",
	},
	"milk": {
		"Whole Milk",
		"2% Milk",
		"Skim Milk",
	},
	"cream": {
		"Half & Half",
		"Heavy Cream",
	},
	"butter": {
		"Butter (Salted)",
		"Butter (Unsalted)",
	},
	"yogurt": {
		"Yogurt (Plain)",
		"Yogurt (Greek)",
	},
	"milk_alt": {
		"Almond Milk",
		"Oat Milk",
	},
	"canned_tomatoes": {
		"Diced Tomatoes",
		"Crushed Tomatoes",
		"Tomato Paste",
		"Tomato Sauce",
	},
	"canned_beans": {
		"Black Beans",
		"Kidney Beans",
		"Pinto Beans",
	},
	"broth": {
		"Chicken Broth",
		"Beef Broth",
		"Vegetable Broth",
	},
	"coffee": {
		"Coffee (Ground)",
		"Coffee (Whole Bean)",
	},
	"nut_butter": {
		"Peanut Butter",
		"Almond Butter",
	},
}

// itemBrands lists the selectable brands per item. The leading empty string is
// the "no preference" sentinel and is always first.
var itemBrands = map[string][]string{
	"Whole Milk": {"", "Prairie Farms", "Organic Valley", "Fairlife", "Kirkland"},
	"2% Milk": {"", "Prairie Farms", "Organic Valley", "Fairlife", "Kirkland"},
	"Skim Milk": {"", "Prairie Farms", "Organic Valley", "Fairlife"},
	"Half & Half": {"", "Prairie Farms", "Organic Valley", "Land O'Lakes"},
	"Heavy Cream": {"", "Prairie Farms", "Organic Valley", "Land O'Lakes"},
	"Butter (Salted)": {"", "Kerrygold", "Land O'Lakes", "Kirkland", "Prairie Farms"},
	"Butter (Unsalted)": {"", "Kerrygold", "Land O'Lakes", "Kirkland", "Prairie Farms"},
	"Eggs (Large)": {"", "Kirkland", "Eggland's Best", "Vital Farms", "Store Brand"},
	"Yogurt (Plain)": {"", "Fage", "Chobani", "Kirkland", "Stonyfield"},
	"Yogurt (Greek)": {"", "Fage", "Chobani", "Kirkland", "Stonyfield"},
	"Cream Cheese": {"", "Philadelphia", "Prairie Farms", "Store Brand"},
	"Sour Cream": {"", "Daisy", "Prairie Farms", "Store Brand"},
	"Cottage Cheese": {"", "Prairie Farms", "Daisy", "Breakstone's", "Store Brand"},
	"Cheddar Cheese": {"", "Tillamook", "Kerrygold", "Cabot", "Boar's Head", "Kirkland"},
	"Swiss Cheese": {"", "Boar's Head", "Tillamook", "Finlandia", "Kirkland"},
	"Mozzarella Cheese": {"", "BelGioioso", "Galbani", "Boar's Head", "Kirkland"},
	"Parmesan Cheese": {"", "Parmigiano-Reggiano", "BelGioioso", "Kirkland"},
	"Provolone Cheese": {"", "Boar's Head", "BelGioioso", "Tillamook", "Kirkland"},
	"American Cheese": {"", "Boar's Head", "Tillamook", "Land O'Lakes", "Kirkland"},
	"Pepper Jack Cheese": {"", "Tillamook", "Boar's Head", "Cabot", "Kirkland"},
	"Feta Cheese": {"", "Mt Vikos", "Athenos", "Kirkland", "BelGioioso"},
	"Blue Cheese": {"", "Rogue Creamery", "Maytag", "Point Reyes", "Kirkland"},
	"Goat Cheese": {"", "Montchevre", "Laura Chenel", "Kirkland"},
	"Ricotta Cheese": {"", "BelGioioso", "Galbani", "Calabro"},
	"Brie": {"", "President", "St. Andre", "Kirkland"},
	"Shredded Mexican Blend": {"", "Tillamook", "Kirkland", "Sargento"},
	"Almond Milk": {"", "Silk", "Kirkland", "Blue Diamond"},
	"Oat Milk": {"", "Oatly", "Chobani", "Kirkland", "Planet Oat"},
	"Diced Tomatoes": {"", "Muir Glen", "Cento", "Kirkland", "San Marzano"},
	"Crushed Tomatoes": {"", "Muir Glen", "Cento", "Kirkland", "San Marzano"},
	"Tomato Paste": {"", "Muir Glen", "Cento", "Amore"},
	"Tomato Sauce": {"", "Muir Glen", "Cento", "Kirkland"},
	"Black Beans": {"", "Bush's", "Goya", "Kirkland", "Store Brand"},
	"Kidney Beans": {"", "Bush's", "Goya", "Store Brand"},
	"Pinto Beans": {"", "Bush's", "Goya", "Store Brand"},
	"Tuna (Canned)": {"", "Wild Planet", "Kirkland", "Starkist", "Bumble Bee"},
	"Chicken Broth": {"", "Swanson", "Kirkland", "Pacific", "Store Brand"},
	"Beef Broth": {"", "Swanson", "Kirkland", "Pacific", "Store Brand"},
	"Vegetable Broth": {"", "Swanson", "Kirkland", "Pacific", "Store Brand"},
	"Ketchup": {"", "Heinz", "Hunt's", "Store Brand"},
	"Mustard (Yellow)": {"", "French's", "Heinz"},
	"Mustard (Dijon)": {"", "Grey Poupon", "Maille"},
	"Mayonnaise": {"", "Hellmann's", "Duke's", "Kirkland"},
	"Hot Sauce": {"", "Tabasco", "Frank's RedHot", "Cholula", "Sriracha"},
	"Soy Sauce": {"", "Kikkoman", "San-J", "Kirkland"},
	"Marinara Sauce": {"", "Rao's", "La San Marzano", "Victoria", "Kirkland"},
	"Peanut Butter": {"", "Smucker's Natural", "Justin's", "Kirkland", "Jif"},
	"Almond Butter": {"", "Justin's", "MaraNatha", "Kirkland"},
	"Olive Oil (Extra Virgin)": {"", "California Olive Ranch", "Kirkland", "Lucini", "Colavita"},
	"Bacon": {"", "Nueske's", "Applegate", "Wright", "Kirkland"},
	"Coffee (Ground)": {"", "Peet's", "Intelligentsia", "Starbucks", "Kirkland"},
	"Coffee (Whole Bean)": {"", "Intelligentsia", "Peet's", "Lavazza", "Kirkland"},
}

// customUnits overrides the catalog default unit with an ordered option list
// and the index of the preselected option.
var customUnits = map[string]UnitSpec{
	"Whole Milk": {Options: []string{"quart", "half gallon", "gallon"}, Default: 1},
	"2% Milk": {Options: []string{"quart", "half gallon", "gallon"}, Default: 1},
	"Skim Milk": {Options: []string{"quart", "half gallon", "gallon"}, Default: 1},
	"Half & Half": {Options: []string{"pint", "quart"}, Default: 0},
	"Heavy Cream": {Options: []string{"half pint", "pint", "quart"}, Default: 1},
	"Butter (Salted)": {Options: []string{"stick", "lb"}, Default: 0},
	"Butter (Unsalted)": {Options: []string{"stick", "lb"}, Default: 0},
	"Eggs (Large)": {Options: []string{"half dozen", "dozen", "18-count"}, Default: 1},
	"Sour Cream": {Options: []string{"8 oz", "16 oz"}, Default: 1},
	"Cream Cheese": {Options: []string{"8 oz", "tub"}, Default: 0},
	"Cottage Cheese": {Options: []string{"16 oz", "24 oz"}, Default: 0},
	"Ricotta Cheese": {Options: []string{"15 oz", "32 oz"}, Default: 0},
	"Yogurt (Plain)": {Options: []string{"5.3 oz", "32 oz"}, Default: 1},
	"Yogurt (Greek)": {Options: []string{"5.3 oz", "32 oz"}, Default: 0},
	"Cheddar Cheese": {Options: []string{"slices", "block", "lb", "8 oz shredded"}, Default: 1},
	"Swiss Cheese": {Options: []string{"slices", "block", "lb"}, Default: 0},
	"Mozzarella Cheese": {Options: []string{"slices", "block", "lb", "8 oz shredded", "fresh ball"}, Default: 1},
	"Parmesan Cheese": {Options: []string{"wedge", "grated", "lb"}, Default: 0},
	"Provolone Cheese": {Options: []string{"slices", "block", "lb"}, Default: 0},
	"American Cheese": {Options: []string{"slices", "block", "lb"}, Default: 0},
	"Pepper Jack Cheese": {Options: []string{"slices", "block", "lb", "8 oz shredded"}, Default: 1},
	"Feta Cheese": {Options: []string{"4 oz crumbles", "8 oz block", "lb"}, Default: 0},
	"Blue Cheese": {Options: []string{"4 oz crumbles", "8 oz wedge", "lb"}, Default: 0},
	"Goat Cheese": {Options: []string{"4 oz log", "8 oz log", "crumbles"}, Default: 0},
	"Brie": {Options: []string{"small wheel", "wedge", "lb"}, Default: 0},
	"Shredded Mexican Blend": {Options: []string{"8 oz", "16 oz", "32 oz"}, Default: 1},
}

// unitVocabulary is the general-purpose unit list offered when an item has no
// unit spec of its own.
var unitVocabulary = []string{
	"each",
	"lb",
	"oz",
	"kg",
	"g",
	"gal",
	"half gal",
	"qt",
	"pint",
	"cup",
	"fl oz",
	"L",
	"mL",
	"tsp",
	"tbsp",
	"dozen",
	"pack",
	"box",
	"bag",
	"bundle",
	"roll",
	"carton",
	"bottle",
	"cans",
	"jar",
	"container",
	"loaf",
	"bunch",
	"head",
	"clove",
}
