package config

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrMissingKeys is wrapped by ValidationError when required keys are absent.
var ErrMissingKeys = errors.New("missing required keys")

// ValidationError contains details about validation failure.
type ValidationError struct {
	Code    string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap lets errors.Is match ErrMissingKeys.
func (e ValidationError) Unwrap() error {
	if e.Code == CodeMissingKeys {
		return ErrMissingKeys
	}
	return nil
}

// Validation error codes.
const (
	CodeMissingKeys  = "MISSING_KEYS"
	CodeInvalidValue = "INVALID_VALUE"
)

// Required keys for each level and block definition.
var (
	LevelRequiredKeys    = []string{"name", "paddle_speed", "paddle_width", "velocities", "blocks"}
	BlockRequiredKeys    = []string{"x", "y", "width", "height", "hit_points"}
	VelocityRequiredKeys = []string{"angle", "speed"}
)

// LevelSet is a YAML file with any number of levels.
type LevelSet struct {
	Levels []LevelSpec `yaml:"levels"`
}

// LevelSpec is one level as written in a level set file.
type LevelSpec struct {
	Name           string         `yaml:"name"`
	Background     string         `yaml:"background,omitempty"`
	PaddleSpeed    int            `yaml:"paddle_speed"`
	PaddleWidth    int            `yaml:"paddle_width"`
	BlocksToRemove int            `yaml:"blocks_to_remove,omitempty"`
	Velocities     []VelocitySpec `yaml:"velocities"`
	Blocks         []BlockSpec    `yaml:"blocks"`
}

// VelocitySpec is an initial ball velocity as angle (degrees, 0 = up) and speed.
type VelocitySpec struct {
	Angle float64 `yaml:"angle"`
	Speed float64 `yaml:"speed"`
}

// BlockSpec is one block placement. Fills are colour names or
// image(path) references, one per remaining hit point.
type BlockSpec struct {
	X         float64  `yaml:"x"`
	Y         float64  `yaml:"y"`
	Width     float64  `yaml:"width"`
	Height    float64  `yaml:"height"`
	HitPoints int      `yaml:"hit_points"`
	Fills     []string `yaml:"fills,omitempty"`
	Stroke    string   `yaml:"stroke,omitempty"`
}

// ValidateRequired checks that every key in required is present in fields.
// Missing keys are reported together, sorted.
func ValidateRequired(fields map[string]any, required []string) error {
	var missing []string
	for _, key := range required {
		if _, ok := fields[key]; !ok {
			missing = append(missing, key)
		}
	}
	if len(missing) == 0 {
		return nil
	}
	slices.Sort(missing)
	return ValidationError{
		Code:    CodeMissingKeys,
		Message: strings.Join(missing, ", "),
	}
}

// LoadLevelSet reads and validates a level set file.
func LoadLevelSet(path string) ([]LevelSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading level set %s: %w", path, err)
	}
	levels, err := ParseLevelSet(data)
	if err != nil {
		return nil, fmt.Errorf("parsing level set %s: %w", path, err)
	}
	return levels, nil
}

// ParseLevelSet decodes and validates level set YAML.
func ParseLevelSet(data []byte) ([]LevelSpec, error) {
	var raw struct {
		Levels []map[string]any `yaml:"levels"`
	}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("yaml unmarshal: %w", err)
	}
	for i, level := range raw.Levels {
		if err := validateLevelFields(level); err != nil {
			return nil, fmt.Errorf("level %d: %w", i+1, err)
		}
	}

	var set LevelSet
	if err := yaml.Unmarshal(data, &set); err != nil {
		return nil, fmt.Errorf("yaml unmarshal: %w", err)
	}
	if len(set.Levels) == 0 {
		return nil, ValidationError{Code: CodeInvalidValue, Message: "level set has no levels"}
	}
	for i, level := range set.Levels {
		if err := level.Validate(); err != nil {
			return nil, fmt.Errorf("level %d (%s): %w", i+1, level.Name, err)
		}
	}
	return set.Levels, nil
}

// Validate checks values that cannot be caught by key presence alone.
func (l LevelSpec) Validate() error {
	if l.PaddleWidth <= 0 || l.PaddleSpeed <= 0 {
		return ValidationError{Code: CodeInvalidValue, Message: "paddle width and speed must be positive"}
	}
	if len(l.Velocities) == 0 {
		return ValidationError{Code: CodeInvalidValue, Message: "at least one ball velocity is required"}
	}
	for i, b := range l.Blocks {
		if b.Width <= 0 || b.Height <= 0 {
			return ValidationError{
				Code:    CodeInvalidValue,
				Message: fmt.Sprintf("block %d has non-positive size", i+1),
			}
		}
	}
	return nil
}

func validateLevelFields(level map[string]any) error {
	if err := ValidateRequired(level, LevelRequiredKeys); err != nil {
		return err
	}
	if err := validateEntries(level["velocities"], VelocityRequiredKeys, "velocity"); err != nil {
		return err
	}
	return validateEntries(level["blocks"], BlockRequiredKeys, "block")
}

func validateEntries(v any, required []string, what string) error {
	entries, ok := v.([]any)
	if !ok {
		return ValidationError{Code: CodeInvalidValue, Message: what + "s must be a list"}
	}
	for i, e := range entries {
		fields, ok := e.(map[string]any)
		if !ok {
			return ValidationError{
				Code:    CodeInvalidValue,
				Message: fmt.Sprintf("%s %d is not a mapping", what, i+1),
			}
		}
		if err := ValidateRequired(fields, required); err != nil {
			return fmt.Errorf("%s %d: %w", what, i+1, err)
		}
	}
	return nil
}
