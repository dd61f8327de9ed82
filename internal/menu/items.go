package menu

var restaurantMenu = []Category{
	{
		ID:   "sabzi",
		Name: "Sabzi",
		Items: []Item{
			{1, "Aloo Palak"},
			{2, "Aloo Mutter"},
			{3, "Kari Pakoda"},
			{4, "Baigan Bharta"},
			{5, "Dal Makhani"},
			{6, "Dal Arhar Butter Fry"},
			{7, "Punjabi Dal Tadka"},
			{8, "Palak Mutter"},
			{9, "Aloo Gobhi"},
			{10, "Aloo Jeera"},
			{11, "Rajma"},
			{12, "Mix Vegetable"},
			{13, "Baigan Bharta Mutter"},
			{14, "Mutter Masala"},
			{15, "Khoya Mutter"},
			{16, "Dum Aloo Special"},
			{17, "Mutter Mushroom"},
			{18, "Mushroom Masala"},
			{19, "Kadai Chaap"},
			{20, "Malai Chaap"},
			{21, "Chaap Masala"},
			{22, "Keema Chaap"},
		},
	},
	{
		ID:   "paneer_special",
		Name: "Paneer Special",
		Items: []Item{
			{101, "Sahi Paneer"},
			{102, "Paneer Tomato"},
			{103, "Paneer Masala"},
			{104, "Paneer Bhurji"},
			{105, "Khoya Paneer"},
			{106, "Paneer Mutter Masala"},
			{107, "Mutter Paneer"},
			{108, "Palak Paneer"},
			{109, "Malai Kofta"},
			{110, "Paneer Do Piyaza"},
			{111, "Paneer Labdar"},
			{112, "Kadai Paneer"},
			{113, "Paneer Butter Masala"},
			{114, "Stuff Tomato"},
		},
	},
	{
		ID:   "raita_salad",
		Name: "Raita & Salad",
		Items: []Item{
			{201, "Mix Raita"},
			{202, "Dahi"},
			{203, "Raita Bundi"},
			{204, "Family Green Salad"},
			{205, "Green Salad Small"},
			{206, "Papad"},
			{207, "Papad Fry"},
			{208, "Masala Papad"},
		},
	},
	{
		ID:   "basmati_ka_khajana",
		Name: "Basmati Ka Khajana",
		Items: []Item{
			{301, "Sada Rice"},
			{302, "Jeera Rice"},
			{303, "Fry Rice"},
			{304, "Mix Pulao"},
			{305, "Mutter Pulao"},
			{306, "Paneer Pulao"},
			{307, "Veg. Biryani"},
		},
	},
	{
		ID:   "roti",
		Name: "Roti & Paratha",
		Items: []Item{
			{401, "Roti"},
			{402, "Butter Roti"},
			{403, "Missi Roti"},
			{404, "Dhania Roti"},
			{405, "Laccha Parantha"},
			{406, "Aloo Parantha"},
			{407, "Gobhi Parantha"},
			{408, "Missi Piyaz Parantha"},
			{409, "Mirchi Lacha Parantha"},
			{410, "Aloo Piyaz Parantha"},
			{411, "Mooli Parantha"},
			{412, "Mix Parantha"},
			{413, "Paneer Stuff Parantha"},
			{414, "Sada Naan"},
			{415, "Butter Naan"},
			{416, "Garlic Naan"},
			{417, "Aloo Naan"},
			{418, "Paneer Naan"},
			{419, "Mix Naan"},
		},
	},
	{
		ID:   "snacks",
		Name: "Snacks",
		Items: []Item{
			{501, "Cheese Chilly"},
			{502, "Munchurian"},
			{503, "Honey Chilli Potato"},
			{504, "Paneer Pakora"},
			{505, "Vegetable Pakora"},
			{506, "Szechwan Chilli Potato"},
			{507, "Chicken Pakora"},
			{508, "Chicken Chilli"},
			{509, "Burger"},
			{510, "Noodles"},
			{511, "Pao Bhaji"},
			{512, "Idli Sambhar"},
			{513, "Momos"},
			{514, "Sandwich"},
			{515, "Aalo Tikki"},
			{516, "Chaat Papdi"},
			{517, "Samosa"},
			{518, "Kebab"},
			{519, "Bhel Puri"},
		},
	},
}
