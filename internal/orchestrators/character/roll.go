package character

import (
	"sort"
	"strconv"
	"strings"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/aldenmoor/levelforge/internal/entities/character"
	"github.com/aldenmoor/levelforge/internal/errors"
)

// rollBaseStats rolls 4d6-drop-lowest once per stat
func rollBaseStats() (map[character.Stat]int, error) {
	out := make(map[character.Stat]int, len(character.Stats()))
	for _, stat := range character.Stats() {
		value, err := rollDropLowest(4, 6)
		if err != nil {
			return nil, err
		}
		out[stat] = value
	}
	return out, nil
}

// rollDie rolls a single die of the given size
func rollDie(size int) (int, error) {
	roll, err := dice.NewRoll(1, size)
	if err != nil {
		return 0, errors.Wrapf(err, "failed to create d%d roll", size)
	}
	return roll.GetValue(), nil
}

// rollDropLowest rolls count dice of the given size and sums all but the
// lowest
func rollDropLowest(count, size int) (int, error) {
	roll, err := dice.NewRoll(count, size)
	if err != nil {
		return 0, errors.Wrapf(err, "failed to create %dd%d roll", count, size)
	}

	values := parseRolledDice(roll.GetDescription())
	if len(values) != count {
		// Description did not expose individual dice, fall back to the total
		return roll.GetValue(), nil
	}

	sort.Ints(values)
	total := 0
	for _, v := range values[1:] {
		total += v
	}
	return total, nil
}

// parseRolledDice extracts individual dice values from a roll description
// like "+4d6[3,4,1,6]=14". The toolkit does not expose them directly.
func parseRolledDice(description string) []int {
	start := strings.Index(description, "[")
	end := strings.Index(description, "]")
	if start < 0 || end <= start {
		return nil
	}

	var values []int
	for _, part := range strings.Split(description[start+1:end], ",") {
		v, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil
		}
		values = append(values, v)
	}
	return values
}
