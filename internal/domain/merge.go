package domain

import "github.com/google/uuid"

// OddsLineChanges is the explicit diff applied to an odds line collection.
type OddsLineChanges struct {
	Add    []OddsLine
	Update []OddsLine
	Remove []uuid.UUID
}

func (c OddsLineChanges) Empty() bool {
	return len(c.Add) == 0 && len(c.Update) == 0 && len(c.Remove) == 0
}

type lineKey struct {
	side  string
	phase string
}

// MergeOddsLines diffs incoming lines against existing ones by their stable
// business key (side, phase): missing keys are added, changed values
// updated, vanished keys removed. Incoming lines are assigned ids here so
// the caller persists exactly what the diff says.
func MergeOddsLines(oddsID uuid.UUID, existing, incoming []OddsLine) OddsLineChanges {
	current := make(map[lineKey]OddsLine, len(existing))
	for _, line := range existing {
		current[lineKey{line.Side, line.Phase}] = line
	}

	var changes OddsLineChanges
	seen := make(map[lineKey]bool, len(incoming))

	for _, line := range incoming {
		key := lineKey{line.Side, line.Phase}
		seen[key] = true

		prev, ok := current[key]
		if !ok {
			line.ID = uuid.New()
			line.OddsID = oddsID
			changes.Add = append(changes.Add, line)
			continue
		}
		if !oddsLineEqual(prev, line) {
			line.ID = prev.ID
			line.OddsID = oddsID
			changes.Update = append(changes.Update, line)
		}
	}

	for key, line := range current {
		if !seen[key] {
			changes.Remove = append(changes.Remove, line.ID)
		}
	}

	return changes
}

func oddsLineEqual(a, b OddsLine) bool {
	return float64PtrEqual(a.Value, b.Value) &&
		stringPtrEqual(a.PriceUS, b.PriceUS) &&
		a.Favorite == b.Favorite &&
		a.Underdog == b.Underdog
}

func float64PtrEqual(a, b *float64) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func stringPtrEqual(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
