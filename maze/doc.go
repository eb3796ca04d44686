// Package maze models a rectangular grid maze as a search problem:
// states are grid positions, actions are the four orthogonal moves,
// every step costs 1.
//
// What:
//
//   - Maze wraps an immutable [][]Cell with cached Start and Goal positions.
//   - Actions(p) lists legal moves in the fixed order North, South, West, East.
//     The order is part of the contract: searches use it to break ties.
//   - Result(p, a) applies a move; StepCost is constant; GoalTest compares with Goal.
//   - Parse/Load read the text format ('.' open, '#' wall, 'S' start, 'G' goal).
//   - Generate builds a seeded random maze for benchmarks and experiments.
//
// Complexity:
//
//   - New, Parse:           O(H×W) time and memory.
//   - Actions, Result:      O(1).
//   - Generate:             O(H×W).
//
// Errors:
//
//   - ErrMalformedMaze wraps every construction failure: ErrEmptyGrid,
//     ErrNonRectangular, ErrUnknownCell, ErrMissingStart, ErrMissingGoal,
//     ErrDuplicateStart, ErrDuplicateGoal.
//   - ErrFileNotFound:   Load was given a path that does not exist.
//   - ErrInvalidAction:  Result with an unknown action or a blocked destination.
//   - ErrInvalidConfig:  Generate with bad dimensions or density.
package maze
