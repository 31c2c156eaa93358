package problemgen

// identifyEntry is one prompt in the shape-identification bank, keyed by
// the description a learner must match to a shape name.
type identifyEntry struct {
	clue   string
	answer string
	tier   Difficulty // minimum tier the clue appears at
}

// Clues are ordered roughly by how much vocabulary they assume. Beginner
// runs only see the Beginner rows; higher tiers mix in the harder ones.
var identifyBank = []identifyEntry{
	{"I have four equal sides and four right angles. What shape am I?", "square", Beginner},
	{"I have four right angles and my opposite sides are equal. What shape am I?", "rectangle", Beginner},
	{"I have three sides. What shape am I?", "triangle", Beginner},
	{"I am perfectly round and every point on me is the same distance from my centre. What shape am I?", "circle", Beginner},
	{"I look like a stretched circle with two different axes. What shape am I?", "ellipse", Intermediate},
	{"My opposite sides are parallel and equal, but my angles need not be right angles. What shape am I?", "parallelogram", Intermediate},
	{"I have four equal sides but my angles need not be right angles. What shape am I?", "rhombus", Intermediate},
	{"I have exactly one pair of parallel sides. What shape am I?", "trapezium", Advanced},
	{"My diagonals bisect each other at right angles and all my sides are equal. What shape am I?", "rhombus", Advanced},
	{"Every chord through my centre is a diameter of the same length. What shape am I?", "circle", Advanced},
}

var shapeNames = []string{
	"square", "rectangle", "triangle", "circle",
	"ellipse", "parallelogram", "rhombus", "trapezium",
}

func tierRank(d Difficulty) int {
	switch d {
	case Intermediate:
		return 1
	case Advanced:
		return 2
	default:
		return 0
	}
}

// identify builds a multiple-choice shape-naming question. The correct
// name plus three distinct distractors, shuffled.
func (g *Generator) identify(d Difficulty) Question {
	var pool []identifyEntry
	for _, e := range identifyBank {
		if tierRank(e.tier) <= tierRank(d) {
			pool = append(pool, e)
		}
	}
	e := pool[g.rng.Intn(len(pool))]

	choices := []string{e.answer}
	for _, i := range g.rng.Perm(len(shapeNames)) {
		if len(choices) == 4 {
			break
		}
		if shapeNames[i] != e.answer {
			choices = append(choices, shapeNames[i])
		}
	}
	g.rng.Shuffle(len(choices), func(i, j int) {
		choices[i], choices[j] = choices[j], choices[i]
	})

	return Question{
		Prompt:     e.clue,
		Kind:       KindIdentify,
		Difficulty: d,
		Format:     FormatMultipleChoice,
		Choices:    choices,
		Correct:    e.answer,
	}
}
