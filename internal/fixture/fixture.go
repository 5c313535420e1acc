// Package fixture loads the YAML document describing the widgets shown in the
// playground.
package fixture

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Widget kinds accepted in the tabs list.
const (
	KindDialog    = "dialog"
	KindMenu      = "menu"
	KindSelect    = "select"
	KindTextField = "textfield"
	KindTooltip   = "tooltip"
)

// Menu item actions understood by the command bus.
const (
	ActionNone       = ""
	ActionOpenDialog = "open-dialog"
	ActionResetField = "reset-field"
	ActionDismiss    = "dismiss-tooltip"
	ActionFail       = "fail"
)

// Fixture describes one playground session.
type Fixture struct {
	Tabs      []string  `yaml:"tabs" validate:"required,min=1,unique,dive,oneof=dialog menu select textfield tooltip"`
	Dialog    Dialog    `yaml:"dialog"`
	Menu      Menu      `yaml:"menu"`
	Select    Select    `yaml:"select"`
	TextField TextField `yaml:"textfield"`
	Tooltip   Tooltip   `yaml:"tooltip"`
}

type Dialog struct {
	Title        string `yaml:"title" validate:"required"`
	Body         string `yaml:"body"`
	Modal        bool   `yaml:"modal"`
	EscapeCloses bool   `yaml:"escape_closes"`
}

type Menu struct {
	Label string     `yaml:"label" validate:"required"`
	Items []MenuItem `yaml:"items" validate:"dive"`
}

type MenuItem struct {
	Label  string `yaml:"label" validate:"required"`
	Action string `yaml:"action" validate:"omitempty,oneof=open-dialog reset-field dismiss-tooltip fail"`
}

type Select struct {
	Placeholder string   `yaml:"placeholder"`
	Options     []Option `yaml:"options" validate:"dive"`
	Fuzzy       bool     `yaml:"fuzzy"`
}

type Option struct {
	Label    string `yaml:"label" validate:"required"`
	Disabled bool   `yaml:"disabled"`
}

type TextField struct {
	Label    string `yaml:"label" validate:"required"`
	Initial  string `yaml:"initial"`
	Required bool   `yaml:"required"`
	MaxLen   int    `yaml:"max_length" validate:"min=0"`
}

type Tooltip struct {
	Anchor string `yaml:"anchor" validate:"required"`
	Text   string `yaml:"text" validate:"required"`
}

// Default returns the built-in fixture used when no file is configured.
func Default() Fixture {
	return Fixture{
		Tabs: []string{KindDialog, KindMenu, KindSelect, KindTextField, KindTooltip},
		Dialog: Dialog{
			Title:        "Discard changes?",
			Body:         "Unsaved edits in this form will be lost.",
			Modal:        true,
			EscapeCloses: true,
		},
		Menu: Menu{
			Label: "Actions",
			Items: []MenuItem{
				{Label: "Open dialog", Action: ActionOpenDialog},
				{Label: "Reset field", Action: ActionResetField},
				{Label: "Dismiss tooltip", Action: ActionDismiss},
				{Label: "Break something", Action: ActionFail},
			},
		},
		Select: Select{
			Placeholder: "Pick a fruit",
			Options: []Option{
				{Label: "Apple"},
				{Label: "Apricot", Disabled: true},
				{Label: "Banana"},
				{Label: "Blueberry"},
				{Label: "Cherry", Disabled: true},
				{Label: "Grape"},
			},
		},
		TextField: TextField{
			Label:    "Display name",
			Required: true,
			MaxLen:   32,
		},
		Tooltip: Tooltip{
			Anchor: "Hover or focus me",
			Text:   "Tooltips wait before showing and linger before hiding.",
		},
	}
}

// Load reads the fixture at path. An empty path returns Default.
func Load(path string) (Fixture, error) {
	if strings.TrimSpace(path) == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Fixture{}, fmt.Errorf("read fixture %s: %w", path, err)
	}
	f, err := Parse(data)
	if err != nil {
		return Fixture{}, fmt.Errorf("fixture %s: %w", path, err)
	}
	return f, nil
}

// Parse decodes data on top of Default, so omitted sections keep their
// built-in values, then validates the result.
func Parse(data []byte) (Fixture, error) {
	f := Default()
	if err := yaml.Unmarshal(data, &f); err != nil {
		return Fixture{}, fmt.Errorf("parse yaml: %w", err)
	}
	if err := Validate(f); err != nil {
		return Fixture{}, err
	}
	return f, nil
}

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		v.RegisterTagNameFunc(yamlFieldName)
		validateInst = v
	})
	return validateInst
}

// Validate checks the fixture's structural rules.
func Validate(f Fixture) error {
	err := validatorInstance().Struct(f)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("validate fixture: %w", err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s: failed %q", trimRoot(fe.Namespace()), fe.Tag()))
	}
	return fmt.Errorf("invalid fixture: %s", strings.Join(msgs, "; "))
}

// Labels returns the option labels of s in order.
func (s Select) Labels() []string {
	labels := make([]string, len(s.Options))
	for i, opt := range s.Options {
		labels[i] = opt.Label
	}
	return labels
}

// Labels returns the item labels of m in order.
func (m Menu) Labels() []string {
	labels := make([]string, len(m.Items))
	for i, item := range m.Items {
		labels[i] = item.Label
	}
	return labels
}
