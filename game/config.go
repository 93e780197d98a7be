package game

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

var validate = validator.New()

// DAGConfig describes a GameDAG in a YAML file. The graph is given either as
// a full adjacency matrix or as an edge list over a number of vertices.
type DAGConfig struct {
	Vertices  int               `yaml:"vertices" validate:"required_with=Edges,gte=0"`
	Matrix    [][]bool          `yaml:"matrix" validate:"required_without=Edges,excluded_with=Edges"`
	Edges     map[int][]int     `yaml:"edges" validate:"required_without=Matrix"`
	Start     StartConfig       `yaml:"start"`
	Terminals map[int][]float64 `yaml:"terminals" validate:"required,min=1,dive,min=1"`
	Turns     []int             `yaml:"turns" validate:"required,dive,gte=0"`
	Table     *HeuristicConfig  `yaml:"heuristic"`
}

type StartConfig struct {
	Index  int `yaml:"index" validate:"gte=0"`
	Player int `yaml:"player" validate:"gte=0"`
}

// HeuristicConfig is a lookup table from vertex index to heuristic value,
// with a fallback for vertices not in the table.
type HeuristicConfig struct {
	Values  map[int]float64 `yaml:"values"`
	Default float64         `yaml:"default"`
}

// LoadDAGConfig reads and validates a DAG description from a YAML file.
func LoadDAGConfig(path string) (*DAGConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read dag config: %w", err)
	}
	return ParseDAGConfig(data)
}

func ParseDAGConfig(data []byte) (*DAGConfig, error) {
	var cfg DAGConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse dag config: %w", err)
	}
	if err := validate.Struct(&cfg); err != nil {
		return nil, &ConfigurationError{Msg: err.Error()}
	}
	return &cfg, nil
}

// Build constructs the GameDAG the config describes.
func (c *DAGConfig) Build() (*GameDAG, error) {
	matrix := c.Matrix
	if matrix == nil {
		matrix = make([][]bool, c.Vertices)
		for i := range matrix {
			matrix[i] = make([]bool, c.Vertices)
		}
		for from, tos := range c.Edges {
			if from < 0 || from >= c.Vertices {
				return nil, configurationf("edge source %d out of range [0, %d)", from, c.Vertices)
			}
			for _, to := range tos {
				if to < 0 || to >= c.Vertices {
					return nil, configurationf("edge %d -> %d out of range [0, %d)", from, to, c.Vertices)
				}
				matrix[from][to] = true
			}
		}
	}

	terminals := make([]int, 0, len(c.Terminals))
	for v := range c.Terminals {
		terminals = append(terminals, v)
	}

	return NewGameDAG(matrix, NewDAGState(c.Start.Index, c.Start.Player), terminals, c.Terminals, c.Turns)
}

// Heuristic returns the configured lookup-table heuristic. Without a
// heuristic section every state scores 0.
func (c *DAGConfig) Heuristic() Heuristic[DAGState] {
	if c.Table == nil {
		return func(DAGState) float64 { return 0 }
	}
	return TableHeuristic(c.Table.Values, c.Table.Default)
}

// TableHeuristic scores a state by looking up its vertex in values.
func TableHeuristic(values map[int]float64, fallback float64) Heuristic[DAGState] {
	table := make(map[int]float64, len(values))
	for v, score := range values {
		table[v] = score
	}
	return func(s DAGState) float64 {
		if score, ok := table[s.Index()]; ok {
			return score
		}
		return fallback
	}
}
