package quizbank

// Default reference links keyed by 1-based question number. These are
// built in and cannot be removed; user-added links live in the link store.
var defaultMCQLinks = map[int][]string{
	1:  {"https://en.wikipedia.org/wiki/Periodic_table"},
	2:  {"https://en.wikipedia.org/wiki/Ostrich"},
	3:  {"https://en.wikipedia.org/wiki/Atmosphere_of_Earth"},
	4:  {"https://en.wikipedia.org/wiki/Human_skeleton"},
	5:  {"https://solarsystem.nasa.gov/planets/venus/overview/"},
	6:  {"https://en.wikipedia.org/wiki/Gold"},
	7:  {"https://en.wikipedia.org/wiki/Heart"},
	8:  {"https://en.wikipedia.org/wiki/Structure_of_the_Earth"},
	9:  {"https://en.wikipedia.org/wiki/Cell_nucleus"},
	10: {"https://solarsystem.nasa.gov/planets/jupiter/overview/"},
	11: {"https://en.wikipedia.org/wiki/Mitochondrion"},
	12: {"https://en.wikipedia.org/wiki/Photosynthesis"},
	13: {"https://solarsystem.nasa.gov/planets/jupiter/overview/"},
	14: {"https://en.wikipedia.org/wiki/White_blood_cell"},
	15: {"https://en.wikipedia.org/wiki/Mercury_(element)"},
	16: {"https://en.wikipedia.org/wiki/Evaporation"},
	17: {"https://solarsystem.nasa.gov/planets/mars/overview/"},
	18: {"https://en.wikipedia.org/wiki/Diamond"},
	19: {"https://en.wikipedia.org/wiki/Heart"},
	20: {"https://en.wikipedia.org/wiki/Newton%27s_laws_of_motion"},
	21: {"https://en.wikipedia.org/wiki/Cell_(biology)"},
	22: {"https://solarsystem.nasa.gov/planets/uranus/overview/"},
	23: {"https://en.wikipedia.org/wiki/Water#Boiling_point"},
	24: {"https://en.wikipedia.org/wiki/Vitamin_D"},
	25: {"https://en.wikipedia.org/wiki/Oxygen"},
	26: {"https://en.wikipedia.org/wiki/Milky_Way"},
	27: {"https://en.wikipedia.org/wiki/Oxygen"},
	28: {"https://en.wikipedia.org/wiki/Femur"},
	29: {"https://en.wikipedia.org/wiki/Rayleigh_scattering"},
	30: {"https://solarsystem.nasa.gov/planets/saturn/overview/"},
}

var defaultFillLinks = map[int][]string{
	1: {"https://en.wikipedia.org/wiki/Gold"},
	2: {"https://solarsystem.nasa.gov/planets/jupiter/overview/"},
	3: {"https://en.wikipedia.org/wiki/Mitochondrion"},
	4: {"https://en.wikipedia.org/wiki/Oxygen"},
	5: {"https://en.wikipedia.org/wiki/Diamond"},
}

// DefaultMCQLinks returns the built-in links for a 1-based MCQ number.
func DefaultMCQLinks(index int) []string {
	return defaultMCQLinks[index]
}

// DefaultFillLinks returns the built-in links for a 1-based fill-in number.
func DefaultFillLinks(index int) []string {
	return defaultFillLinks[index]
}
