package concepts

// Concept is one entry in the curriculum catalog.
type Concept struct {
	Name        string
	Description string
}

// catalog is the built-in Python curriculum, in teaching order.
var catalog = []Concept{
	{
		Name:        "Variables & Data Types",
		Description: "Names, assignment, and the core types: int, float, str, bool, None",
	},
	{
		Name:        "Control Flow",
		Description: "if/elif/else, for and while loops, break and continue",
	},
	{
		Name:        "Functions",
		Description: "def, parameters and defaults, return values, scope, lambdas",
	},
	{
		Name:        "Classes & Objects",
		Description: "Defining classes, __init__, methods, attributes, inheritance",
	},
	{
		Name:        "Modules & Packages",
		Description: "import, the standard library, pip, and structuring your own code",
	},
}

// All returns the catalog in teaching order.
func All() []Concept {
	out := make([]Concept, len(catalog))
	copy(out, catalog)
	return out
}

// Find returns the catalog entry with the given name.
func Find(name string) (Concept, bool) {
	for _, c := range catalog {
		if c.Name == name {
			return c, true
		}
	}
	return Concept{}, false
}
