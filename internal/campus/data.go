// Package campus holds the static campus reference data served by the portal:
// mess menus, clubs, nearby places, and street-food listings. The data is
// fixed display content, not user state.
package campus

// MenuItem is one dish on a mess menu.
type MenuItem struct {
	Name    string `json:"name"`
	Veg     bool   `json:"veg"`
	Popular bool   `json:"popular,omitempty"`
}

// Days lists the mess menu days in display order.
var Days = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

// menuBase holds the authored menus; remaining days fall back to Tuesday.
var menuBase = map[string]map[string][]MenuItem{
	"Monday": {
		"Breakfast": {
			{Name: "Aloo Paratha", Veg: true, Popular: true},
			{Name: "Curd", Veg: true},
			{Name: "Boiled Eggs", Veg: false},
			{Name: "Tea/Coffee", Veg: true},
		},
		"Lunch": {
			{Name: "Rajma Chawal", Veg: true, Popular: true},
			{Name: "Roti", Veg: true},
			{Name: "Mixed Veg", Veg: true},
			{Name: "Salad", Veg: true},
		},
		"Dinner": {
			{Name: "Paneer Butter Masala", Veg: true, Popular: true},
			{Name: "Rice", Veg: true},
			{Name: "Dal Tadka", Veg: true},
			{Name: "Gulab Jamun", Veg: true},
		},
	},
	"Tuesday": {
		"Breakfast": {
			{Name: "Poha", Veg: true},
			{Name: "Banana", Veg: true},
			{Name: "Omelette", Veg: false, Popular: true},
			{Name: "Tea/Coffee", Veg: true},
		},
		"Lunch": {
			{Name: "Chole Bhature", Veg: true, Popular: true},
			{Name: "Rice", Veg: true},
			{Name: "Raita", Veg: true},
		},
		"Dinner": {
			{Name: "Chicken Curry", Veg: false, Popular: true},
			{Name: "Veg Kofta", Veg: true},
			{Name: "Roti", Veg: true},
			{Name: "Rice", Veg: true},
		},
	},
}

// MenuFor returns the meals for a day. Days without an authored menu reuse
// Tuesday's, matching the portal's placeholder behavior.
func MenuFor(day string) map[string][]MenuItem {
	if menu, ok := menuBase[day]; ok {
		return menu
	}
	return menuBase["Tuesday"]
}

// Club is one student club listing.
type Club struct {
	Name       string   `json:"name"`
	Emoji      string   `json:"emoji"`
	Members    int      `json:"members"`
	Desc       string   `json:"desc"`
	Activities []string `json:"activities"`
}

// Clubs is the campus club directory.
var Clubs = []Club{
	{Name: "Robotics Club", Emoji: "🤖", Members: 45, Desc: "Build robots, compete in national competitions. Weekly workshops on Arduino and ROS.", Activities: []string{"Robocon", "Workshops", "Hackathons"}},
	{Name: "Coding Club", Emoji: "💻", Members: 120, Desc: "Competitive programming, open source, and development. Regular contests and mentorship.", Activities: []string{"CP Contests", "Open Source", "Dev Sprints"}},
	{Name: "Photography Club", Emoji: "📸", Members: 35, Desc: "Capture campus life and beyond. Photo walks, exhibitions, and workshops.", Activities: []string{"Photo Walks", "Exhibitions", "Workshops"}},
	{Name: "Music Club", Emoji: "🎵", Members: 60, Desc: "Jam sessions, performances at campus events, and music production.", Activities: []string{"Jam Sessions", "Open Mic", "Band Night"}},
	{Name: "Entrepreneurship Cell", Emoji: "🚀", Members: 80, Desc: "Startup talks, pitch competitions, and mentorship from industry leaders.", Activities: []string{"Pitch Nights", "Startup Weekend", "Speaker Series"}},
	{Name: "Literary Society", Emoji: "📚", Members: 40, Desc: "Debates, creative writing, poetry slams, and book discussions.", Activities: []string{"Debates", "Poetry Slam", "Book Club"}},
	{Name: "Sports Council", Emoji: "🏅", Members: 150, Desc: "Inter-IIT sports, intramural leagues, and fitness programs.", Activities: []string{"Cricket", "Football", "Badminton", "Athletics"}},
	{Name: "NSS", Emoji: "🤝", Members: 90, Desc: "Community service, blood donation drives, and social awareness campaigns.", Activities: []string{"Blood Drives", "Teaching", "Cleanliness"}},
}

// FoodItem is one street-food listing near campus.
type FoodItem struct {
	Name     string  `json:"name"`
	Shop     string  `json:"shop"`
	Location string  `json:"location"`
	Price    string  `json:"price"`
	Rating   float64 `json:"rating"`
	Distance string  `json:"distance"`
	Emoji    string  `json:"emoji"`
}

// FoodItems is the street-food directory.
var FoodItems = []FoodItem{
	{Name: "Momos", Shop: "Momo Point", Location: "Near Main Gate", Price: "₹40-80", Rating: 4.6, Distance: "0.8 km", Emoji: "🥟"},
	{Name: "Burger", Shop: "Burger Point", Location: "Rupnagar Market", Price: "₹80-150", Rating: 4.3, Distance: "1.5 km", Emoji: "🍔"},
	{Name: "Tea & Pakoda", Shop: "Ropar Chaiwala", Location: "Near Campus", Price: "₹20-40", Rating: 4.5, Distance: "1.2 km", Emoji: "🍵"},
	{Name: "Thali", Shop: "Spice Junction", Location: "Main Road", Price: "₹100-180", Rating: 4.2, Distance: "2.0 km", Emoji: "🍛"},
	{Name: "Pizza", Shop: "Pizza Hub", Location: "Rupnagar", Price: "₹150-350", Rating: 4.1, Distance: "2.5 km", Emoji: "🍕"},
	{Name: "Coffee", Shop: "The Study Café", Location: "Near IT Park", Price: "₹50-120", Rating: 4.7, Distance: "1.8 km", Emoji: "☕"},
	{Name: "Maggi", Shop: "Night Canteen", Location: "Hostel Area", Price: "₹30-50", Rating: 4.0, Distance: "0.2 km", Emoji: "🍜"},
	{Name: "Lassi", Shop: "Punjab Dairy", Location: "Main Road", Price: "₹30-60", Rating: 4.4, Distance: "1.0 km", Emoji: "🥛"},
	{Name: "Chole Bhature", Shop: "Sharma Ji", Location: "Rupnagar", Price: "₹60-100", Rating: 4.5, Distance: "2.2 km", Emoji: "🫓"},
	{Name: "Ice Cream", Shop: "Cream Bell Parlour", Location: "Market", Price: "₹40-120", Rating: 4.0, Distance: "1.6 km", Emoji: "🍦"},
}

// Place is one nearby hangout or service listing.
type Place struct {
	Name     string   `json:"name"`
	Type     string   `json:"type"`
	Distance string   `json:"distance"`
	Rating   float64  `json:"rating"`
	Vibe     []string `json:"vibe"`
	Desc     string   `json:"desc"`
	Image    string   `json:"image"`
}

// Places is the nearby-hub directory.
var Places = []Place{
	{Name: "Ropar Chaiwala", Type: "Café", Distance: "1.2 km", Rating: 4.5, Vibe: []string{"Chill", "Budget"}, Desc: "Best tea near campus. Popular student hangout.", Image: "🍵"},
	{Name: "Spice Junction", Type: "Restaurant", Distance: "2.0 km", Rating: 4.2, Vibe: []string{"Family", "North Indian"}, Desc: "Full meals at affordable prices. Known for thalis.", Image: "🍛"},
	{Name: "The Study Café", Type: "Café", Distance: "1.8 km", Rating: 4.7, Vibe: []string{"WiFi", "Quiet"}, Desc: "Great for group study sessions. Good coffee & snacks.", Image: "☕"},
	{Name: "Campus Mart", Type: "Store", Distance: "0.5 km", Rating: 4.0, Vibe: []string{"Essentials", "Quick"}, Desc: "Stationery, snacks, daily essentials near gate.", Image: "🏪"},
	{Name: "Burger Point", Type: "Fast Food", Distance: "1.5 km", Rating: 4.3, Vibe: []string{"Fast Food", "Late Night"}, Desc: "Late-night burgers and fries. Student favorite.", Image: "🍔"},
	{Name: "Fresh Juice Corner", Type: "Juice Bar", Distance: "1.0 km", Rating: 4.1, Vibe: []string{"Healthy", "Quick"}, Desc: "Fresh fruit juices and smoothies.", Image: "🧃"},
	{Name: "Punjab Sports", Type: "Sports", Distance: "3.0 km", Rating: 3.9, Vibe: []string{"Equipment", "Games"}, Desc: "Sports equipment and accessories.", Image: "🏏"},
	{Name: "Photocopy Centre", Type: "Services", Distance: "0.3 km", Rating: 4.0, Vibe: []string{"Print", "Quick"}, Desc: "Printing, photocopying, binding services.", Image: "📄"},
}
