package ingredients

import "github.com/five82/memoix/internal/model"

type rule struct {
	keyword string
	cat     model.IngredientCategory
}

func group(cat model.IngredientCategory, keywords ...string) []rule {
	out := make([]rule, len(keywords))
	for i, kw := range keywords {
		out[i] = rule{keyword: kw, cat: cat}
	}
	return out
}

func concat(groups ...[]rule) []rule {
	var out []rule
	for _, g := range groups {
		out = append(out, g...)
	}
	return out
}

// nameRules is checked in order and the first match wins. Classify runs the
// multi-word keywords before the single words so "olive oil" is an oil and
// not an olive.
var nameRules = concat(
	group(model.CategoryPantry,
		"stock", "vegetable stock", "chicken stock", "beef stock",
		"chicken broth", "beef broth", "vegetable broth", "bouillon",
		"tomato sauce", "tomato puree", "sun-dried tomato", "sundried tomato",
		"sun dried tomato", "canned tomato", "diced tomato", "crushed tomato",
		"whole tomato", "roasted pepper", "artichoke heart", "olive", "caper",
		"pickle", "gherkin", "coconut cream", "coconut milk", "anchovy paste",
		"chipotle", "harissa", "gochujang", "doubanjiang", "doenjang",
		"preserved mustard", "sesame paste", "dashi", "bonito", "kombu", "nori",
		"seaweed", "dried shrimp", "shrimp paste", "fish paste", "curry paste",
		"bean paste", "chili paste", "miso", "kimchi", "tahini", "pesto"),
	group(model.CategoryCondiment,
		"hoisin", "tomato ketchup", "soy sauce", "fish sauce", "hot sauce",
		"barbecue sauce", "bbq sauce", "teriyaki", "steak sauce", "oyster sauce",
		"worcestershire", "sriracha", "mustard", "mayonnaise", "ketchup",
		"salsa", "sambal", "chutney", "relish", "dressing"),
	group(model.CategoryPantry,
		"peanut butter", "almond butter", "cashew butter", "nutella",
		"hazelnut spread", "oyster mushroom sauce", "starch water",
		"stick rice flour", "wakame"),
	group(model.CategoryCheese, "cream cheese", "goat cheese", "blue cheese", "cottage cheese"),
	group(model.CategoryPantry, "almond milk", "oat milk", "soy milk"),
	group(model.CategoryOil,
		"olive oil", "sesame oil", "coconut oil", "canola oil", "vegetable oil",
		"sunflower oil", "avocado oil", "truffle oil"),
	group(model.CategoryVinegar,
		"balsamic vinegar", "red wine vinegar", "white wine vinegar",
		"apple cider vinegar", "rice vinegar", "sherry vinegar"),
	group(model.CategoryJuice,
		"lemon juice", "lime juice", "orange juice", "apple juice",
		"cranberry juice", "grapefruit juice", "pomegranate juice"),
	group(model.CategorySugar,
		"maple syrup", "corn syrup", "agave", "molasses", "vanilla extract", "cocoa powder"),
	group(model.CategoryLeavening,
		"baking powder", "baking soda", "bicarbonate", "yeast", "cream of tartar",
		"gelatin", "agar", "pectin"),
	group(model.CategoryFlour,
		"bread flour", "all-purpose flour", "all purpose flour", "cake flour",
		"pastry flour", "self-raising flour", "self raising flour",
		"whole wheat flour", "vital wheat gluten", "wheat gluten", "vital gluten",
		"shortening", "cornstarch", "corn starch", "cornflour", "almond flour",
		"rice flour", "tapioca", "arrowroot", "semolina"),
	group(model.CategorySugar,
		"brown sugar", "powdered sugar", "icing sugar", "confectioner",
		"demerara", "turbinado", "muscovado", "caster sugar", "granulated sugar",
		"dark chocolate", "white chocolate", "milk chocolate", "chocolate chip"),
	group(model.CategoryMeat, "ground beef", "ground pork"),
	group(model.CategoryPoultry, "ground turkey", "ground chicken"),
	group(model.CategoryProduce,
		"sweet potato", "green bean", "bell pepper",
		"banana", "strawberry", "blueberry", "raspberry", "blackberry", "grape",
		"peach", "pear", "cherry", "plum", "watermelon", "cantaloupe", "honeydew",
		"mango", "pineapple", "kiwi", "papaya", "ya cai",
		"leek", "shiitake", "enoki", "portobello", "bok choy", "napa cabbage",
		"radish", "turnip", "beet", "watercress", "arugula", "endive",
		"radicchio", "rhubarb", "plantain", "fig", "guava", "lemon zest",
		"lime zest", "orange zest"),
	group(model.CategoryLegume,
		"black bean", "kidney bean", "pinto bean", "navy bean", "chickpea", "lentil"),
	group(model.CategoryNut,
		"pine nut", "sesame seed", "sunflower seed", "pumpkin seed", "poppy seed",
		"flax seed", "chia seed"),
	group(model.CategoryAlcohol, "red wine", "white wine", "rice wine"),
	group(model.CategorySpice,
		"kosher salt", "sea salt", "maldon salt", "fine salt", "table salt",
		"fleur de sel", "black pepper", "white pepper", "cayenne pepper",
		"chili flake", "red pepper flake", "chili powder", "curry powder",
		"garam masala", "italian seasoning", "five spice", "onion powder",
		"garlic powder"),
	group(model.CategoryDairy,
		"heavy cream", "whipping cream", "sour cream", "half and half",
		"crème fraîche", "creme fraiche", "evaporated milk", "condensed milk",
		"buttermilk"),

	// Alcohol before beverage so beer never reads as a drink.
	group(model.CategoryAlcohol,
		"wine", "beer", "ale", "lager", "stout", "brandy", "cognac", "rum",
		"vodka", "whiskey", "whisky", "bourbon", "tequila", "gin", "sake",
		"mirin", "sherry", "port", "marsala", "kahlua", "amaretto", "grappa",
		"absinthe", "vermouth", "champagne", "prosecco", "cider", "mead",
		"liqueur", "campari", "aperol", "cointreau", "grand marnier",
		"triple sec", "limoncello", "chartreuse"),
	group(model.CategoryPop, "cola", "soda", "tonic", "sprite", "ginger ale"),
	group(model.CategoryBeverage, "coffee", "tea", "broth", "stock", "water"),
	group(model.CategoryJuice, "juice"),
	group(model.CategoryMeat,
		"beef", "steak", "pork", "bacon", "ham", "prosciutto", "pancetta",
		"guanciale", "chorizo", "sausage", "salami", "pepperoni", "lamb", "veal",
		"venison", "bison", "rabbit", "lardon", "bresaola", "nduja",
		"short ribs", "slab ribs", "spare ribs", "beef ribs", "pork ribs",
		"oxtail", "tongue", "liver", "kidney", "heart", "offal"),
	group(model.CategoryPoultry, "chicken", "turkey", "duck", "goose", "quail"),
	group(model.CategorySeafood,
		"salmon", "tuna", "shrimp", "prawn", "crab", "lobster", "scallop",
		"mussel", "clam", "oyster", "anchovy", "sardine", "cod", "halibut",
		"tilapia", "trout", "bass", "mackerel", "squid", "calamari", "octopus",
		"fish", "seafood", "crustacean"),
	group(model.CategoryEgg, "egg"),
	group(model.CategoryCheese,
		"cheese", "cheddar", "parmesan", "parmigiano", "mozzarella", "gruyere",
		"gruyère", "feta", "brie", "camembert", "gouda", "ricotta", "mascarpone",
		"pecorino", "emmental", "havarti", "provolone", "halloumi", "burrata",
		"paneer", "manchego", "roquefort", "gorgonzola", "stilton"),
	group(model.CategoryDairy, "milk", "butter", "cream", "yogurt", "yoghurt", "dairy", "ghee"),
	group(model.CategoryGrain,
		"rice", "bread", "sourdough", "brioche", "ciabatta", "focaccia", "pita",
		"naan", "baguette", "oat", "quinoa", "barley", "couscous", "bulgur",
		"millet", "polenta", "grits", "breadcrumb", "panko", "tortilla",
		"cracker", "cereal", "granola"),
	group(model.CategoryPasta,
		"pasta", "spaghetti", "penne", "rigatoni", "linguine", "fettuccine",
		"noodle", "lasagna", "lasagne", "macaroni", "orzo", "fusilli", "farfalle",
		"tagliatelle", "gnocchi", "ramen", "udon", "soba", "vermicelli",
		"ravioli", "tortellini"),
	group(model.CategoryLegume, "bean", "lentil", "chickpea"),
	// Tofu sits in the chilled section next to dairy.
	group(model.CategoryDairy, "tofu"),
	group(model.CategoryLegume, "tempeh", "edamame"),
	group(model.CategoryNut,
		"almond", "walnut", "pecan", "cashew", "pistachio", "peanut", "hazelnut",
		"macadamia", "chestnut", "coconut"),
	group(model.CategorySpice,
		"salt", "pepper", "cumin", "paprika", "cayenne", "cinnamon", "nutmeg",
		"oregano", "turmeric", "coriander", "cardamom", "clove", "allspice",
		"saffron", "anise", "fennel", "tsaoko", "dill", "thyme", "rosemary",
		"sage", "basil", "parsley", "cilantro", "mint", "tarragon", "chive",
		"bay leaf", "bay leaves", "marjoram", "five spice", "gochugaru", "sumac",
		"zaatar", "za'atar", "lemongrass", "fenugreek", "msg", "spice",
		"seasoning", "herb"),
	group(model.CategoryCondiment, "sauce", "paste", "marinade", "glaze"),
	group(model.CategoryOil, "oil"),
	group(model.CategoryVinegar, "vinegar"),
	group(model.CategoryFlour, "flour", "starch"),
	group(model.CategorySugar,
		"sugar", "honey", "syrup", "chocolate", "candy", "caramel", "jam",
		"jelly", "marmalade", "vanilla"),
)

type offRule struct {
	keyword string
	cat     model.IngredientCategory
	skip    bool // keyword is too ambiguous; stop without a category
}

// offRules map an Open Food Facts category string to a category. Checked
// in order as plain substrings.
var offRules = []offRule{
	{keyword: "plant-based", skip: true},
	{keyword: "breakfast cereal", cat: model.CategoryGrain},
	{keyword: "ice cream", cat: model.CategoryDairy},
	{keyword: "frozen meal", skip: true},
	{keyword: "ready meal", skip: true},
	{keyword: "meat", cat: model.CategoryMeat},
	{keyword: "ham", cat: model.CategoryMeat},
	{keyword: "beef", cat: model.CategoryMeat},
	{keyword: "pork", cat: model.CategoryMeat},
	{keyword: "sausage", cat: model.CategoryMeat},
	{keyword: "deli", cat: model.CategoryMeat},
	{keyword: "poultry", cat: model.CategoryPoultry},
	{keyword: "chicken", cat: model.CategoryPoultry},
	{keyword: "turkey", cat: model.CategoryPoultry},
	{keyword: "fish", cat: model.CategorySeafood},
	{keyword: "seafood", cat: model.CategorySeafood},
	{keyword: "crustacean", cat: model.CategorySeafood},
	{keyword: "cheese", cat: model.CategoryCheese},
	{keyword: "dairy", cat: model.CategoryDairy},
	{keyword: "milk", cat: model.CategoryDairy},
	{keyword: "butter", cat: model.CategoryDairy},
	{keyword: "cream", cat: model.CategoryDairy},
	{keyword: "yogurt", cat: model.CategoryDairy},
	{keyword: "egg", cat: model.CategoryEgg},
	{keyword: "bread", cat: model.CategoryGrain},
	{keyword: "cereal", cat: model.CategoryGrain},
	{keyword: "rice", cat: model.CategoryGrain},
	{keyword: "grain", cat: model.CategoryGrain},
	{keyword: "pasta", cat: model.CategoryPasta},
	{keyword: "noodle", cat: model.CategoryPasta},
	{keyword: "legume", cat: model.CategoryLegume},
	{keyword: "bean", cat: model.CategoryLegume},
	{keyword: "lentil", cat: model.CategoryLegume},
	{keyword: "nut", cat: model.CategoryNut},
	{keyword: "seed", cat: model.CategoryNut},
	{keyword: "spice", cat: model.CategorySpice},
	{keyword: "herb", cat: model.CategorySpice},
	{keyword: "seasoning", cat: model.CategorySpice},
	{keyword: "sauce", cat: model.CategoryCondiment},
	{keyword: "condiment", cat: model.CategoryCondiment},
	{keyword: "dressing", cat: model.CategoryCondiment},
	{keyword: "mustard", cat: model.CategoryCondiment},
	{keyword: "ketchup", cat: model.CategoryCondiment},
	{keyword: "oil", cat: model.CategoryOil},
	{keyword: "vinegar", cat: model.CategoryVinegar},
	{keyword: "flour", cat: model.CategoryFlour},
	{keyword: "sugar", cat: model.CategorySugar},
	{keyword: "sweetener", cat: model.CategorySugar},
	{keyword: "honey", cat: model.CategorySugar},
	{keyword: "syrup", cat: model.CategorySugar},
	{keyword: "chocolate", cat: model.CategorySugar},
	{keyword: "candy", cat: model.CategorySugar},
	{keyword: "confectionery", cat: model.CategorySugar},
	{keyword: "baking", cat: model.CategoryLeavening},
	{keyword: "alcohol", cat: model.CategoryAlcohol},
	{keyword: "wine", cat: model.CategoryAlcohol},
	{keyword: "beer", cat: model.CategoryAlcohol},
	{keyword: "spirit", cat: model.CategoryAlcohol},
	{keyword: "soda", cat: model.CategoryPop},
	{keyword: "soft drink", cat: model.CategoryPop},
	{keyword: "juice", cat: model.CategoryJuice},
	{keyword: "coffee", cat: model.CategoryBeverage},
	{keyword: "tea", cat: model.CategoryBeverage},
	{keyword: "water", cat: model.CategoryBeverage},
	{keyword: "beverage", cat: model.CategoryBeverage},
	{keyword: "drink", cat: model.CategoryBeverage},
	{keyword: "snack", skip: true},
	{keyword: "frozen", skip: true},
	{keyword: "canned", skip: true},
}

// Product names containing any of these are prepared foods, not ingredients.
var nonIngredientWords = []string{
	"pizza", "sandwich", "burger", "wrap", "meal kit", "ready to eat",
	"frozen dinner", "tv dinner", "microwave", "instant", "protein bar",
	"energy bar", "snack bar", "chips", "crisps", "cookie", "biscuit",
	"crouton", "popcorn", "pretzel",
}
