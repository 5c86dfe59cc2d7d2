package quizbank

import (
	"strings"

	"github.com/hbatra/quizforge/internal/models"
)

// The static question bank. Questions are immutable; option order is
// meaningful because the "A."–"D." label prefix encodes the answer letter.
var mcqs = []models.Question{
	{Text: "Which element has the chemical symbol 'O'?", Options: []string{"A. Osmium", "B. Oxygen", "C. Gold", "D. Silver"}, Answer: "B", Topic: "Chemistry", Difficulty: models.Easy},
	{Text: "Which is the largest bird in the world?", Options: []string{"A. Eagle", "B. Albatross", "C. Ostrich", "D. Condor"}, Answer: "C", Topic: "Biology", Difficulty: models.Easy},
	{Text: "Which gas makes up most of Earth's atmosphere?", Options: []string{"A. Oxygen", "B. Carbon dioxide", "C. Nitrogen", "D. Argon"}, Answer: "C", Topic: "Science", Difficulty: models.Medium},
	{Text: "How many bones are in the adult human body?", Options: []string{"A. 196", "B. 206", "C. 216", "D. 226"}, Answer: "B", Topic: "Biology", Difficulty: models.Medium},
	{Text: "Which planet in the solar system is the hottest?", Options: []string{"A. Mercury", "B. Venus", "C. Earth", "D. Mars"}, Answer: "B", Topic: "Space", Difficulty: models.Medium},
	{Text: "What is the chemical symbol for gold?", Options: []string{"A. Go", "B. Gd", "C. Au", "D. Ag"}, Answer: "C", Topic: "Chemistry", Difficulty: models.Easy},
	{Text: "How many chambers does the human heart have?", Options: []string{"A. Two", "B. Three", "C. Four", "D. Five"}, Answer: "C", Topic: "Biology", Difficulty: models.Easy},
	{Text: "Which layer of the Earth is liquid?", Options: []string{"A. Crust", "B. Mantle", "C. Outer core", "D. Inner core"}, Answer: "C", Topic: "Science", Difficulty: models.Hard},
	{Text: "Which part of the cell contains the genetic material?", Options: []string{"A. Cytoplasm", "B. Nucleus", "C. Ribosome", "D. Membrane"}, Answer: "B", Topic: "Biology", Difficulty: models.Easy},
	{Text: "Which is the largest planet in the solar system?", Options: []string{"A. Saturn", "B. Neptune", "C. Jupiter", "D. Uranus"}, Answer: "C", Topic: "Space", Difficulty: models.Easy},
	{Text: "Which organelle is known as the powerhouse of the cell?", Options: []string{"A. Nucleus", "B. Mitochondria", "C. Golgi body", "D. Lysosome"}, Answer: "B", Topic: "Biology", Difficulty: models.Easy},
	{Text: "Which gas do plants absorb during photosynthesis?", Options: []string{"A. Oxygen", "B. Nitrogen", "C. Carbon dioxide", "D. Hydrogen"}, Answer: "C", Topic: "Biology", Difficulty: models.Easy},
	{Text: "Which planet has the most moons?", Options: []string{"A. Earth", "B. Mars", "C. Jupiter", "D. Venus"}, Answer: "C", Topic: "Space", Difficulty: models.Medium},
	{Text: "Which blood cells fight infection?", Options: []string{"A. Red blood cells", "B. White blood cells", "C. Platelets", "D. Plasma cells"}, Answer: "B", Topic: "Biology", Difficulty: models.Medium},
	{Text: "Which metal is liquid at room temperature?", Options: []string{"A. Iron", "B. Mercury", "C. Aluminium", "D. Copper"}, Answer: "B", Topic: "Chemistry", Difficulty: models.Medium},
	{Text: "What is the process of water turning into vapour called?", Options: []string{"A. Condensation", "B. Sublimation", "C. Evaporation", "D. Precipitation"}, Answer: "C", Topic: "Science", Difficulty: models.Easy},
	{Text: "Which planet is known as the Red Planet?", Options: []string{"A. Venus", "B. Mars", "C. Jupiter", "D. Saturn"}, Answer: "B", Topic: "Space", Difficulty: models.Easy},
	{Text: "What is the hardest natural substance on Earth?", Options: []string{"A. Gold", "B. Iron", "C. Diamond", "D. Quartz"}, Answer: "C", Topic: "Science", Difficulty: models.Easy},
	{Text: "Which organ pumps blood around the body?", Options: []string{"A. Lungs", "B. Liver", "C. Heart", "D. Kidneys"}, Answer: "C", Topic: "Biology", Difficulty: models.Easy},
	{Text: "Whose laws describe motion and gravity?", Options: []string{"A. Einstein", "B. Newton", "C. Galileo", "D. Kepler"}, Answer: "B", Topic: "Physics", Difficulty: models.Medium},
	{Text: "What is the basic unit of life?", Options: []string{"A. Atom", "B. Molecule", "C. Cell", "D. Tissue"}, Answer: "C", Topic: "Biology", Difficulty: models.Easy},
	{Text: "Which planet rotates on its side?", Options: []string{"A. Neptune", "B. Saturn", "C. Uranus", "D. Mercury"}, Answer: "C", Topic: "Space", Difficulty: models.Hard},
	{Text: "At what temperature does water boil at sea level?", Options: []string{"A. 90°C", "B. 95°C", "C. 100°C", "D. 110°C"}, Answer: "C", Topic: "Science", Difficulty: models.Easy},
	{Text: "Which vitamin does sunlight help the body produce?", Options: []string{"A. Vitamin A", "B. Vitamin B12", "C. Vitamin C", "D. Vitamin D"}, Answer: "D", Topic: "Biology", Difficulty: models.Medium},
	{Text: "Which gas do humans need to breathe to survive?", Options: []string{"A. Nitrogen", "B. Oxygen", "C. Helium", "D. Methane"}, Answer: "B", Topic: "Science", Difficulty: models.Easy},
	{Text: "What is the name of our galaxy?", Options: []string{"A. Andromeda", "B. Whirlpool", "C. Milky Way", "D. Sombrero"}, Answer: "C", Topic: "Space", Difficulty: models.Easy},
	{Text: "Which element is most abundant in the Earth's crust?", Options: []string{"A. Silicon", "B. Oxygen", "C. Iron", "D. Aluminium"}, Answer: "B", Topic: "Chemistry", Difficulty: models.Hard},
	{Text: "What is the longest bone in the human body?", Options: []string{"A. Tibia", "B. Humerus", "C. Femur", "D. Fibula"}, Answer: "C", Topic: "Biology", Difficulty: models.Medium},
	{Text: "Why does the sky appear blue?", Options: []string{"A. Ocean reflection", "B. Rayleigh scattering", "C. Ozone absorption", "D. Cloud refraction"}, Answer: "B", Topic: "Physics", Difficulty: models.Hard},
	{Text: "Which planet is famous for its rings?", Options: []string{"A. Jupiter", "B. Saturn", "C. Uranus", "D. Neptune"}, Answer: "B", Topic: "Space", Difficulty: models.Easy},
}

var fillIns = []models.FillInQuestion{
	{Text: "The chemical symbol Au stands for ____.", Answer: "gold", Topic: "Chemistry", Difficulty: models.Easy},
	{Text: "The largest planet in the solar system is ____.", Answer: "jupiter", Topic: "Space", Difficulty: models.Easy},
	{Text: "The organelle called the powerhouse of the cell is the ____.", Answer: "mitochondria|mitochondrion", Topic: "Biology", Difficulty: models.Medium},
	{Text: "The gas humans breathe in to survive is ____.", Answer: "oxygen|o2", Topic: "Science", Difficulty: models.Easy},
	{Text: "The hardest natural substance on Earth is ____.", Answer: "diamond", Topic: "Science", Difficulty: models.Easy},
}

// All returns the full MCQ bank. Callers must not mutate the returned slice.
func All() []models.Question {
	return mcqs
}

// FillIns returns the fill-in-the-blank bank.
func FillIns() []models.FillInQuestion {
	return fillIns
}

// ByTopic returns the MCQs whose topic matches, case-insensitively.
func ByTopic(topic string) []models.Question {
	var out []models.Question
	for _, q := range mcqs {
		if strings.EqualFold(q.Topic, strings.TrimSpace(topic)) {
			out = append(out, q)
		}
	}
	return out
}

// ByDifficulty returns the MCQs at the given difficulty level.
func ByDifficulty(d models.Difficulty) []models.Question {
	var out []models.Question
	for _, q := range mcqs {
		if q.Difficulty == d {
			out = append(out, q)
		}
	}
	return out
}

// Topics returns the distinct topics in bank order.
func Topics() []string {
	seen := make(map[string]bool)
	var out []string
	for _, q := range mcqs {
		if !seen[q.Topic] {
			seen[q.Topic] = true
			out = append(out, q.Topic)
		}
	}
	return out
}

// AnswerLetters returns the canonical answer letters for a question set,
// trimmed and uppercased.
func AnswerLetters(qs []models.Question) []string {
	letters := make([]string, len(qs))
	for i, q := range qs {
		letters[i] = strings.ToUpper(strings.TrimSpace(q.Answer))
	}
	return letters
}

// OptionText resolves the full display text of the option whose label
// prefix matches the given letter, e.g. "B" -> "B. Oxygen".
func OptionText(options []string, letter string) string {
	letter = strings.ToUpper(strings.TrimSpace(letter))
	for _, opt := range options {
		if strings.HasPrefix(strings.ToUpper(strings.TrimSpace(opt)), letter+".") {
			return opt
		}
	}
	return letter + " (option text not found)"
}
