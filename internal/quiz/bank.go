package quiz

import (
	"math/rand"
	"sort"

	"github.com/abhisek/pylearn/internal/tutor"
)

// The built-in question bank, keyed by skill level and topic. Used when no
// LLM provider is configured and as the seed set for a fresh quiz round.
var bank = map[tutor.SkillLevel]map[string][]Question{
	tutor.LevelBeginner: {
		"Variables & Data Types": {
			{
				Text:        "What is the output of: x = 5; print(type(x))?",
				Options:     []string{"<class 'int'>", "<class 'str'>", "<class 'float'>", "<class 'bool'>"},
				Correct:     0,
				Explanation: "In Python, whole numbers are of type 'int' by default.",
			},
			{
				Text:        "Which is the correct way to create a string in Python?",
				Options:     []string{"'Hello'", "Hello", "@Hello", "Hello$"},
				Correct:     0,
				Explanation: "Strings in Python are created using single or double quotes.",
			},
		},
		"Control Flow": {
			{
				Text:        "What is the output of: if True: print('Python')?",
				Options:     []string{"Python", "True", "False", "Error"},
				Correct:     0,
				Explanation: "When the if condition is True, the code block is executed.",
			},
		},
	},
	tutor.LevelIntermediate: {
		"Functions": {
			{
				Text:        "What is the output of:\ndef func(x, y=10): return x + y\nprint(func(5))?",
				Options:     []string{"15", "5", "10", "Error"},
				Correct:     0,
				Explanation: "When y is not provided, it uses the default value 10.",
			},
		},
		"Lists": {
			{
				Text:        "What does [1, 2, 3].append([4, 5]) leave in the list?",
				Options:     []string{"[1, 2, 3, [4, 5]]", "[1, 2, 3, 4, 5]", "[1, 2, 3]", "Error"},
				Correct:     0,
				Explanation: "append() adds the entire object as a single element.",
			},
		},
	},
	tutor.LevelAdvanced: {
		"Classes & Objects": {
			{
				Text:        "What is the output of:\nclass A:\n    def __init__(self): print('A')\nA()?",
				Options:     []string{"A", "None", "Error", "Object"},
				Correct:     0,
				Explanation: "The constructor prints 'A' when the object is created.",
			},
		},
		"Generators": {
			{
				Text:        "What type of object is returned by a generator function?",
				Options:     []string{"Generator iterator", "List", "Tuple", "Dictionary"},
				Correct:     0,
				Explanation: "Generator functions return generator iterator objects.",
			},
		},
	},
}

// BankTopics returns the topics available in the bank for a level,
// in stable order.
func BankTopics(level tutor.SkillLevel) []string {
	topics := make([]string, 0, len(bank[level]))
	for topic := range bank[level] {
		topics = append(topics, topic)
	}
	sort.Strings(topics)
	return topics
}

// FromBank picks a bank question for the level and topic, skipping any whose
// text appears in prior. Returns nil when the topic is exhausted or unknown.
// The question is returned with shuffled options.
func FromBank(level tutor.SkillLevel, topic string, prior []string, rng *rand.Rand) *Question {
	asked := make(map[string]bool, len(prior))
	for _, p := range prior {
		asked[p] = true
	}

	var candidates []Question
	for _, q := range bank[level][topic] {
		if !asked[q.Text] {
			candidates = append(candidates, q)
		}
	}
	if len(candidates) == 0 {
		return nil
	}

	q := candidates[rng.Intn(len(candidates))]
	q.Topic = topic
	q.Level = level
	shuffleOptions(&q, rng)
	return &q
}

// shuffleOptions permutes the options in place, keeping Correct pointing at
// the right answer.
func shuffleOptions(q *Question, rng *rand.Rand) {
	options := make([]string, len(q.Options))
	copy(options, q.Options)
	correct := options[q.Correct]

	rng.Shuffle(len(options), func(i, j int) {
		options[i], options[j] = options[j], options[i]
	})

	q.Options = options
	for i, opt := range options {
		if opt == correct {
			q.Correct = i
			break
		}
	}
}
