package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Action
	}{
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionConfirm},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionFlap},
		{"q", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}}, core.ActionQuit},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionQuit},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{"other rune", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}}, core.ActionNone},
		{"arrow", tea.KeyMsg{Type: tea.KeyUp}, core.ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := km.MapKey(tt.msg); got != tt.want {
				t.Errorf("MapKey(%q) = %v, want %v", tt.msg.String(), got, tt.want)
			}
		})
	}
}

func TestMapKeyToFrame(t *testing.T) {
	km := NewKeyMapper()
	frame := core.NewInputFrame()

	if km.MapKeyToFrame(tea.KeyMsg{Type: tea.KeyEnter}, &frame) {
		t.Error("enter should not quit")
	}
	if !frame.Has(core.ActionConfirm) {
		t.Error("enter should set Confirm")
	}

	if !km.MapKeyToFrame(tea.KeyMsg{Type: tea.KeyEsc}, &frame) {
		t.Error("esc should quit")
	}
	if frame.Has(core.ActionQuit) {
		t.Error("quit is reported, not recorded in the frame")
	}

	km.MapKeyToFrame(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'z'}}, &frame)
	if frame.Has(core.ActionNone) {
		t.Error("unknown keys must not reach the frame")
	}
}
