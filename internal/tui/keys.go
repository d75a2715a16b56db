package tui

import (
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

const (
	scopeList  = "list"
	scopeEntry = "entry"
)

const (
	actionQuit   = "quit"
	actionUp     = "up"
	actionDown   = "down"
	actionNew    = "new"
	actionToggle = "toggle"
	actionShake  = "shake"
	actionSubmit = "submit"
	actionCancel = "cancel"
)

type KeyBinding struct {
	Keys        []string
	Action      string
	Description string
	Scopes      []string
}

type KeyRegistry struct {
	bindings []KeyBinding
}

func NewKeyRegistry(bindings []KeyBinding) *KeyRegistry {
	return &KeyRegistry{bindings: slices.Clone(bindings)}
}

// DefaultKeyBindings maps the touch gestures onto the keyboard: pulling
// past the top row opens the entry, a leading swipe becomes right/space.
func DefaultKeyBindings() []KeyBinding {
	return []KeyBinding{
		{Keys: []string{"up", "k"}, Action: actionUp, Description: "up / pull to add", Scopes: []string{scopeList}},
		{Keys: []string{"down", "j"}, Action: actionDown, Description: "down", Scopes: []string{scopeList}},
		{Keys: []string{"n", "a"}, Action: actionNew, Description: "new", Scopes: []string{scopeList}},
		{Keys: []string{"right", "l", "x", " ", "space"}, Action: actionToggle, Description: "complete", Scopes: []string{scopeList}},
		{Keys: []string{"S"}, Action: actionShake, Description: "shake", Scopes: []string{scopeList}},
		{Keys: []string{"enter"}, Action: actionSubmit, Description: "add", Scopes: []string{scopeEntry}},
		{Keys: []string{"esc"}, Action: actionCancel, Description: "cancel", Scopes: []string{scopeEntry}},
		{Keys: []string{"q", "ctrl+c"}, Action: actionQuit, Description: "quit", Scopes: []string{scopeList}},
		{Keys: []string{"ctrl+c"}, Action: actionQuit, Scopes: []string{scopeEntry}},
	}
}

func (r *KeyRegistry) BindingsForScope(scope string) []KeyBinding {
	out := make([]KeyBinding, 0, len(r.bindings))
	for _, b := range r.bindings {
		if scopeMatch(scope, b.Scopes) {
			out = append(out, b)
		}
	}
	return out
}

func (r *KeyRegistry) IsAction(msg tea.KeyMsg, action, scope string) bool {
	pressed := normalizeKey(msg.String())
	for _, b := range r.bindings {
		if b.Action != action || !scopeMatch(scope, b.Scopes) {
			continue
		}
		for _, k := range b.Keys {
			if normalizeKey(k) == pressed {
				return true
			}
		}
	}
	return false
}

// Action returns the first action bound to msg in scope.
func (r *KeyRegistry) Action(msg tea.KeyMsg, scope string) (string, bool) {
	for _, b := range r.bindings {
		if r.IsAction(msg, b.Action, scope) {
			return b.Action, true
		}
	}
	return "", false
}

// normalizeKey trims but keeps case, so "S" and "s" stay distinct. A bare
// space is a key of its own.
func normalizeKey(k string) string {
	if k == " " {
		return k
	}
	return strings.TrimSpace(k)
}

func scopeMatch(scope string, scopes []string) bool {
	if len(scopes) == 0 {
		return true
	}
	for _, s := range scopes {
		if s == "*" || s == scope {
			return true
		}
	}
	return false
}
