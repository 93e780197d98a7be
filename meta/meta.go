// meta/meta.go
package meta

// DefaultCutoff is the cutoff ply for alphabeta-cutoff searches.
const DefaultCutoff = 2

// NumProblems is the number of generated problems per comparison experiment.
const NumProblems = 50

// DefaultDepth and DefaultBranching shape the generated problems.
const DefaultDepth = 6
const DefaultBranching = 3

// MaxTurns bounds the length of a game played by the engine.
const MaxTurns = 300
