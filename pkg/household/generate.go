package household

import (
	"fmt"
	"math/rand"

	"github.com/aretw0/strategos/pkg/domain"
)

// GenerateConfig shapes a generated household problem. The layout is a
// Width x Height grid of cells with 4-neighborhood adjacency; the first row
// is the kitchen where dishes spawn, the last row holds the chairs.
type GenerateConfig struct {
	Width  int
	Height int
	People int
}

// Generate builds a random household problem: balanced vegan and
// non-vegetarian preferences across the people (with at least one of each
// once there are two or more), one matching dish per person scattered over
// free kitchen cells, every person seated at a chair in the last row, and a
// goal asking for everyone to be served. Output is deterministic for a given
// source of randomness.
func Generate(rng *rand.Rand, cfg GenerateConfig) (*domain.Problem, error) {
	if cfg.Width < 1 || cfg.Height < 2 {
		return nil, fmt.Errorf("grid must be at least 1x2, got %dx%d", cfg.Width, cfg.Height)
	}
	if cfg.People < 1 {
		return nil, fmt.Errorf("need at least one person, got %d", cfg.People)
	}
	// One kitchen cell stays free for the robot.
	if cfg.People > cfg.Width-1 {
		return nil, fmt.Errorf("%d dishes do not fit %d free kitchen cells", cfg.People, cfg.Width-1)
	}

	cell := func(row, col int) string { return fmt.Sprintf("c_%d_%d", row, col) }

	p := &domain.Problem{
		Name:   fmt.Sprintf("household-%dx%d-%dp", cfg.Width, cfg.Height, cfg.People),
		Domain: "household",
	}
	c := domain.Const

	p.Objects = append(p.Objects, domain.Object{Name: "r1", Type: "robot"})
	for row := 0; row < cfg.Height; row++ {
		for col := 0; col < cfg.Width; col++ {
			p.Objects = append(p.Objects, domain.Object{Name: cell(row, col), Type: "cell"})
		}
	}

	// 4-neighborhood adjacency, both directions.
	for row := 0; row < cfg.Height; row++ {
		for col := 0; col < cfg.Width; col++ {
			if col+1 < cfg.Width {
				p.Init = append(p.Init,
					atom(PredAdjacent, c(cell(row, col)), c(cell(row, col+1))),
					atom(PredAdjacent, c(cell(row, col+1)), c(cell(row, col))))
			}
			if row+1 < cfg.Height {
				p.Init = append(p.Init,
					atom(PredAdjacent, c(cell(row, col)), c(cell(row+1, col))),
					atom(PredAdjacent, c(cell(row+1, col)), c(cell(row, col))))
			}
		}
	}

	// Preferences: first half random, then keep the mix balanced so both
	// kinds appear once there are two or more people.
	vegan := make([]bool, cfg.People)
	for i := range vegan {
		if i < cfg.People/2 {
			vegan[i] = rng.Intn(2) == 0
			continue
		}
		var vegans, nonVegans int
		for _, v := range vegan[:i] {
			if v {
				vegans++
			} else {
				nonVegans++
			}
		}
		switch {
		case vegans == 0:
			vegan[i] = true
		case nonVegans == 0:
			vegan[i] = false
		default:
			vegan[i] = rng.Intn(2) == 0
		}
	}

	// People sit on chairs along the last row.
	lastRow := cfg.Height - 1
	for i := 0; i < cfg.People; i++ {
		person := fmt.Sprintf("p%d", i+1)
		chair := fmt.Sprintf("ch%d", i+1)
		at := cell(lastRow, i)
		p.Objects = append(p.Objects,
			domain.Object{Name: person, Type: "person"},
			domain.Object{Name: chair, Type: "chair"})
		p.Init = append(p.Init,
			atom(PredAtPerson, c(person), c(at)),
			atom(PredAtChair, c(chair), c(at)),
			atom(PredSeated, c(person)))
		if vegan[i] {
			p.Init = append(p.Init, atom(PredPrefersVegan, c(person)))
		}
	}

	// Robot starts in the kitchen's last column.
	robotCell := cell(0, cfg.Width-1)
	p.Init = append(p.Init,
		atom(PredAtRobot, c("r1"), c(robotCell)),
		atom(PredOccupies, c("r1"), c(robotCell)),
		atom(PredHandsFree, c("r1")))

	// One dish per preference, shuffled over the remaining kitchen cells.
	dishVegan := append([]bool(nil), vegan...)
	rng.Shuffle(len(dishVegan), func(i, j int) {
		dishVegan[i], dishVegan[j] = dishVegan[j], dishVegan[i]
	})
	free := make([]string, 0, cfg.Width-1)
	for col := 0; col < cfg.Width-1; col++ {
		free = append(free, cell(0, col))
	}
	rng.Shuffle(len(free), func(i, j int) { free[i], free[j] = free[j], free[i] })

	for i, isVegan := range dishVegan {
		dish := fmt.Sprintf("d%d", i+1)
		p.Objects = append(p.Objects, domain.Object{Name: dish, Type: "dish"})
		p.Init = append(p.Init, atom(PredAtDish, c(dish), c(free[i])))
		if isVegan {
			p.Init = append(p.Init, atom(PredVeganDish, c(dish)))
		}
	}

	p.Goal = domain.ForAll("p", "person", atom(PredServed, domain.Var("p")))
	return p, nil
}
