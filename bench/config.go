// Package bench drives collection types with configurable concurrent
// workloads: a YAML-described mix of reads, inserts and erases executed
// by a pool of workers under an optional ops/sec budget.
package bench

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Structure names accepted by Workload.Structure.
const (
	StructureOrderedMap = "ordered_map"
	StructureSyncMap    = "sync_map"
)

// Structures lists the selectable target structures.
func Structures() []string {
	return []string{StructureOrderedMap, StructureSyncMap}
}

// Workload describes one harness run.
type Workload struct {
	// Structure selects the target container, see Structures.
	Structure string `yaml:"structure"`
	// Ops is the total number of operations across all workers.
	Ops int `yaml:"ops"`
	// KeySpace bounds the random key range, so smaller values force more
	// collisions.
	KeySpace int `yaml:"key_space"`
	// ReadRatio in [0,1] is the fraction of operations that are Gets.
	ReadRatio float64 `yaml:"read_ratio"`
	// Workers is the number of concurrent worker goroutines.
	Workers int `yaml:"workers"`
	// Rate caps the aggregate operations per second; 0 means unlimited.
	Rate float64 `yaml:"rate"`
	// Seed makes the generated workload reproducible.
	Seed int64 `yaml:"seed"`
}

// FileConfig is the root of the harness YAML file.
type FileConfig struct {
	Workload Workload `yaml:"workload"`
}

// DefaultWorkload returns a small single-worker workload against the
// ordered map.
func DefaultWorkload() Workload {
	return Workload{
		Structure: StructureOrderedMap,
		Ops:       100000,
		KeySpace:  1024,
		ReadRatio: 0.8,
		Workers:   1,
		Seed:      1,
	}
}

// Validate checks the workload for contradictions.
func (w *Workload) Validate() error {
	switch w.Structure {
	case StructureOrderedMap, StructureSyncMap:
	case "":
		return fmt.Errorf("workload.structure must be specified")
	default:
		return fmt.Errorf("workload.structure %q is not one of %v", w.Structure, Structures())
	}
	if w.Ops <= 0 {
		return fmt.Errorf("workload.ops must be positive, got %d", w.Ops)
	}
	if w.KeySpace <= 0 {
		return fmt.Errorf("workload.key_space must be positive, got %d", w.KeySpace)
	}
	if w.ReadRatio < 0 || w.ReadRatio > 1 {
		return fmt.Errorf("workload.read_ratio must be within [0, 1], got %v", w.ReadRatio)
	}
	if w.Workers <= 0 {
		return fmt.Errorf("workload.workers must be positive, got %d", w.Workers)
	}
	if w.Workers > 1 && w.Structure == StructureOrderedMap {
		return fmt.Errorf("workload.structure %q is not safe for concurrent use, pick %q or set workers to 1",
			StructureOrderedMap, StructureSyncMap)
	}
	if w.Rate < 0 {
		return fmt.Errorf("workload.rate must not be negative, got %v", w.Rate)
	}
	return nil
}

// LoadFileConfig loads and validates a harness configuration from a YAML
// file.
func LoadFileConfig(filePath string) (*FileConfig, error) {
	buf, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file '%s': %w", filePath, err)
	}

	var config FileConfig
	if err := yaml.Unmarshal(buf, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := config.Workload.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &config, nil
}
