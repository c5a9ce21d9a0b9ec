// Package scenario replays scripted keyboard sessions against the simulated host.
package scenario

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultScenario []byte

// ErrInvalidStep is returned for steps that set no action or more than one.
var ErrInvalidStep = errors.New("invalid scenario step")

// Step kinds.
const (
	KindKeyboardHeight  = "keyboard_height"
	KindDeviceHeight    = "device_height"
	KindDeviceSupported = "device_supported"
	KindFullScreen      = "fullscreen"
	KindTouch           = "touch"
	KindLayout          = "layout"
	KindWait            = "wait"
	KindShow            = "show"
	KindHide            = "hide"
)

// Scenario is an ordered list of host mutations.
type Scenario struct {
	Name  string `yaml:"name"`
	Steps []Step `yaml:"steps"`
}

// Step holds exactly one action.
type Step struct {
	KeyboardHeight  *int          `yaml:"keyboard_height,omitempty"`
	DeviceHeight    *int          `yaml:"device_height,omitempty"`
	DeviceSupported *bool         `yaml:"device_supported,omitempty"`
	FullScreen      *bool         `yaml:"fullscreen,omitempty"`
	Touch           bool          `yaml:"touch,omitempty"`
	Layout          bool          `yaml:"layout,omitempty"`
	Wait            time.Duration `yaml:"wait,omitempty"`
	Show            bool          `yaml:"show,omitempty"`
	Hide            bool          `yaml:"hide,omitempty"`
}

// Kind returns the name of the action set on the step.
func (s Step) Kind() (string, error) {
	var kinds []string
	if s.KeyboardHeight != nil {
		kinds = append(kinds, KindKeyboardHeight)
	}
	if s.DeviceHeight != nil {
		kinds = append(kinds, KindDeviceHeight)
	}
	if s.DeviceSupported != nil {
		kinds = append(kinds, KindDeviceSupported)
	}
	if s.FullScreen != nil {
		kinds = append(kinds, KindFullScreen)
	}
	if s.Touch {
		kinds = append(kinds, KindTouch)
	}
	if s.Layout {
		kinds = append(kinds, KindLayout)
	}
	if s.Wait > 0 {
		kinds = append(kinds, KindWait)
	}
	if s.Show {
		kinds = append(kinds, KindShow)
	}
	if s.Hide {
		kinds = append(kinds, KindHide)
	}

	switch len(kinds) {
	case 1:
		return kinds[0], nil
	case 0:
		return "", fmt.Errorf("%w: no action", ErrInvalidStep)
	default:
		return "", fmt.Errorf("%w: multiple actions %s", ErrInvalidStep, strings.Join(kinds, ", "))
	}
}

// Validate checks every step of the scenario.
func (sc *Scenario) Validate() error {
	for i, step := range sc.Steps {
		if _, err := step.Kind(); err != nil {
			return fmt.Errorf("step %d: %w", i+1, err)
		}
		if step.Wait < 0 {
			return fmt.Errorf("step %d: %w: negative wait", i+1, ErrInvalidStep)
		}
		if step.KeyboardHeight != nil && *step.KeyboardHeight < 0 {
			return fmt.Errorf("step %d: %w: negative keyboard height", i+1, ErrInvalidStep)
		}
	}
	return nil
}

// Duration returns the total wait time of the scenario.
func (sc *Scenario) Duration() time.Duration {
	var total time.Duration
	for _, step := range sc.Steps {
		total += step.Wait
	}
	return total
}

// Parse decodes and validates a YAML scenario. Unknown keys are rejected.
func Parse(r io.Reader) (*Scenario, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var sc Scenario
	if err := dec.Decode(&sc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("empty scenario")
		}
		return nil, fmt.Errorf("decode scenario: %w", err)
	}
	if err := sc.Validate(); err != nil {
		return nil, err
	}
	return &sc, nil
}

// Load reads a scenario file.
func Load(path string) (*Scenario, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open scenario: %w", err)
	}
	defer f.Close()

	sc, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if sc.Name == "" {
		sc.Name = path
	}
	return sc, nil
}

// Default returns the built-in demo scenario.
func Default() *Scenario {
	sc, err := Parse(bytes.NewReader(defaultScenario))
	if err != nil {
		panic(fmt.Sprintf("built-in scenario: %v", err))
	}
	return sc
}
