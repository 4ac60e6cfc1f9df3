package diary

// rowRole is the structural role a classified row plays in the report.
type rowRole int

const (
	roleDiscard rowRole = iota
	roleMeal
	roleTotal
	roleGoal
	roleRemaining
)

// classified partitions the body rows of a table by structural role.
// Indexes refer back into the original row slice; -1 means absent.
type classified struct {
	mealRows  []int
	total     int
	goal      int
	remaining int
}

// classifyRows partitions body rows according to the layout variant.
//
// Under LayoutFull, rows are pre-tagged: spacer rows are discarded, total
// rows split into goal (alt), remaining, and daily total, and everything
// else is meal-scoped. Under LayoutPrintable all rows live in one body and
// the last row is the daily total; goal and remaining do not exist.
func classifyRows(layout Layout, rows []Row) classified {
	c := classified{total: -1, goal: -1, remaining: -1}

	switch layout {
	case LayoutFull:
		for i, row := range rows {
			switch classifyFullRow(row) {
			case roleDiscard:
			case roleTotal:
				c.total = i
			case roleGoal:
				c.goal = i
			case roleRemaining:
				c.remaining = i
			default:
				c.mealRows = append(c.mealRows, i)
			}
		}

	case LayoutPrintable:
		if len(rows) == 0 {
			return c
		}
		for i := 0; i < len(rows)-1; i++ {
			c.mealRows = append(c.mealRows, i)
		}
		c.total = len(rows) - 1
	}

	return c
}

func classifyFullRow(row Row) rowRole {
	if row.HasTag(tagSpacer) {
		return roleDiscard
	}
	if row.HasTag(tagTotal) {
		switch {
		case row.HasTag(tagGoal):
			return roleGoal
		case row.HasTag(tagRemaining):
			return roleRemaining
		default:
			return roleTotal
		}
	}
	return roleMeal
}

// mealGroup collects the row indexes making up one meal.
type mealGroup struct {
	header   int
	subtotal int // -1 when the meal has no subtotal row
	foods    []int
}

// groupMeals partitions meal-scoped rows into per-meal groups. A row tagged
// as a meal header or title opens a new group; a row tagged bottom closes
// the current group as its subtotal; all other rows are food rows. Rows
// encountered before any header row are discarded: there is no anonymous
// meal.
func groupMeals(rows []Row, mealRows []int) []mealGroup {
	var groups []mealGroup
	var current *mealGroup

	for _, i := range mealRows {
		row := rows[i]

		if row.HasTag(tagMealHeader) || row.HasTag(tagTitle) {
			groups = append(groups, mealGroup{header: i, subtotal: -1})
			current = &groups[len(groups)-1]
			continue
		}
		if current == nil {
			continue
		}
		if row.HasTag(tagMealBottom) {
			current.subtotal = i
			continue
		}
		current.foods = append(current.foods, i)
	}

	return groups
}
