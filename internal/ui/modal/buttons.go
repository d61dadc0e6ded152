package modal

import (
	"fmt"
	"strings"
)

// ButtonSet names a preset button combination. The zero value means no
// preset was chosen.
type ButtonSet int

const (
	ButtonsYes ButtonSet = iota + 1
	ButtonsNo
	ButtonsYesNo
	ButtonsYesNoCancel
)

var buttonSetNames = map[ButtonSet]string{
	ButtonsYes:         "YES",
	ButtonsNo:          "NO",
	ButtonsYesNo:       "YES_NO",
	ButtonsYesNoCancel: "YES_NO_CANCEL",
}

func (b ButtonSet) String() string {
	if name, ok := buttonSetNames[b]; ok {
		return name
	}
	if b == 0 {
		return "UNSET"
	}
	return fmt.Sprintf("ButtonSet(%d)", int(b))
}

// ParseButtonSet maps a preset name such as "YES_NO" onto its ButtonSet.
// Matching ignores case and accepts '-' or '/' for '_'.
func ParseButtonSet(s string) (ButtonSet, error) {
	norm := strings.ToUpper(strings.NewReplacer("-", "_", "/", "_", " ", "").Replace(strings.TrimSpace(s)))
	for set, name := range buttonSetNames {
		if name == norm {
			return set, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownButtonSet, s)
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (b *ButtonSet) UnmarshalText(text []byte) error {
	set, err := ParseButtonSet(string(text))
	if err != nil {
		return err
	}
	*b = set
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (b ButtonSet) MarshalText() ([]byte, error) {
	if _, ok := buttonSetNames[b]; !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownButtonSet, int(b))
	}
	return []byte(b.String()), nil
}

// Result is the outcome a modal closed with.
type Result int

const (
	ResultNone Result = iota
	ResultYes
	ResultNo
	ResultCancel
	// ResultDismissed means the modal was closed without a button: Esc,
	// the title close marker or an overlay click.
	ResultDismissed
)

func (r Result) String() string {
	switch r {
	case ResultNone:
		return "none"
	case ResultYes:
		return "yes"
	case ResultNo:
		return "no"
	case ResultCancel:
		return "cancel"
	case ResultDismissed:
		return "dismissed"
	default:
		return fmt.Sprintf("Result(%d)", int(r))
	}
}

// Bool returns the boolean answer of a Yes or No result. ok is false for
// every other result.
func (r Result) Bool() (value, ok bool) {
	switch r {
	case ResultYes:
		return true, true
	case ResultNo:
		return false, true
	default:
		return false, false
	}
}

// Preset is a standard button produced by resolving a ButtonSet.
type Preset struct {
	Title  string
	Class  string
	Result Result
}

var (
	presetYes    = Preset{Title: "Yes", Class: "green", Result: ResultYes}
	presetNo     = Preset{Title: "No", Class: "red", Result: ResultNo}
	presetCancel = Preset{Title: "Cancel", Result: ResultCancel}
)

// presets is read-only after package initialisation.
var presets = map[ButtonSet][]Preset{
	ButtonsYes:         {presetYes},
	ButtonsNo:          {presetNo},
	ButtonsYesNo:       {presetYes, presetNo},
	ButtonsYesNoCancel: {presetYes, presetNo, presetCancel},
}

// Resolve returns the ordered standard buttons of set. The returned slice is
// a copy; changing it does not affect later calls.
func Resolve(set ButtonSet) ([]Preset, error) {
	p, ok := presets[set]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownButtonSet, set)
	}
	return append([]Preset(nil), p...), nil
}
