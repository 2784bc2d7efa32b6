package rules

/*
ApplyConwayRules applies Conway's Game of Life rules to determine the next state of a cell.

  - alive with 2 or 3 alive neighbors survives
  - alive with fewer than 2 or more than 3 dies
  - dead with exactly 3 becomes alive
  - dead otherwise stays dead
*/
func ApplyConwayRules(neighbors int, alive bool) bool {
	if alive {
		return neighbors == 2 || neighbors == 3
	}
	return neighbors == 3
}
