package taxonomy

// Dietary tag ids
const (
	TagVegetarian  = "vegetarian"
	TagHalal       = "halal"
	TagPorkFree    = "pork_free"
	TagGlutenFree  = "gluten_free"
	TagLactoseFree = "lactose_free"
)

// Certification ids
const (
	CertBio        = "bio"
	CertLocal      = "local"
	CertFrenchMeat = "french_meat"
)

// Menu category ids
const (
	CategoryEntree  = "entree"
	CategoryPlat    = "plat"
	CategoryVG      = "vg"
	CategoryDessert = "dessert"
)

// KeywordSet binds one tag or certification id to the lowercase
// substrings that signal it in free text. Order is significant: results
// are reported in table order so output stays deterministic.
type KeywordSet struct {
	ID       string
	Keywords []string
}

// DietaryTagKeywords drives tag detection during CSV import. Adding a
// keyword or a language touches this table only.
var DietaryTagKeywords = []KeywordSet{
	{TagVegetarian, []string{
		"végétarien", "vegetarien", "vegan", "végan", "vg", "veggie", "sans viande",
		"🌱", "🥬", "🥗", "🥦",
	}},
	{TagHalal, []string{"halal", "🕌", "hl"}},
	{TagPorkFree, []string{"sans porc", "sans-porc", "no pork", "sp", "volaille", "dinde", "poulet"}},
	{TagGlutenFree, []string{"sans gluten", "gluten-free", "gluten free", "sg", "gf"}},
	{TagLactoseFree, []string{"sans lactose", "lactose-free", "lactose free", "sl", "lf"}},
}

// CertificationKeywords drives certification detection during CSV import.
var CertificationKeywords = []KeywordSet{
	{CertBio, []string{"bio", "biologique", "organic", "ab", "agriculture biologique", "🌿"}},
	{CertLocal, []string{"local", "locaux", "région", "régional", "circuit court", "fermier"}},
	{CertFrenchMeat, []string{"france", "français", "française", "viande française", "vf", "volaille française", "🇫🇷", "origine france"}},
}

// DateColumnPatterns marks a source column as the date column when its
// lowercased name contains any of these substrings.
var DateColumnPatterns = []string{"date", "jour", "day", "fecha"}

// CategoryColumnPatterns binds a source column to a menu category the
// same way. First matching category wins.
var CategoryColumnPatterns = []KeywordSet{
	{CategoryEntree, []string{"entrée", "entree", "starter", "appetizer", "hors d'oeuvre"}},
	{CategoryPlat, []string{"plat", "plat principal", "main", "main course", "dish", "principal"}},
	{CategoryVG, []string{"vg", "végétarien", "vegetarien", "végé", "vege", "vegan", "vegetarian"}},
	{CategoryDessert, []string{"dessert", "sweet", "postre"}},
}

// decorativeEmojis are stripped from display names.
var decorativeEmojis = []string{"🌱", "🥬", "🥗", "🕌", "🌿", "🇫🇷", "♻️", "🐟", "🐄", "🐔"}
