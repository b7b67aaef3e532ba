package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func typeKeys(m LobbyModel, keys ...tea.KeyMsg) LobbyModel {
	for _, k := range keys {
		next, _ := m.Update(k)
		m = next.(LobbyModel)
	}
	return m
}

func TestValidInitials(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"ABC", true},
		{"AB", false},
		{"ABCD", false},
		{"abc", false},
		{"A1C", false},
		{"", false},
	}
	for _, tc := range tests {
		if got := ValidInitials(tc.in); got != tc.want {
			t.Errorf("ValidInitials(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestNormalizeInitials(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"abc", "ABC"},
		{"a1b", "AB"},
		{"abcd", "ABC"},
		{"j-d", "JD"},
		{"", ""},
	}
	for _, tc := range tests {
		if got := normalizeInitials(tc.in); got != tc.want {
			t.Errorf("normalizeInitials(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestLobbyTypingUppercases(t *testing.T) {
	m := NewLobbyModel(nil, 80, 24, "")
	m = typeKeys(m, runeKey("a"), runeKey("7"), runeKey("b"), runeKey("c"), runeKey("d"))

	if got := m.Choice().Player; got != "ABC" {
		t.Errorf("Player = %q, want ABC", got)
	}
}

func TestLobbyStartNeedsInitials(t *testing.T) {
	m := NewLobbyModel(nil, 80, 24, "")
	m = typeKeys(m, runeKey("a"), runeKey("b"), tea.KeyMsg{Type: tea.KeyEnter})

	if m.Selected() != nil {
		t.Fatal("start should be refused with two letters")
	}
	if m.errMsg == "" {
		t.Error("an error message should explain the refusal")
	}

	m = typeKeys(m, runeKey("c"), tea.KeyMsg{Type: tea.KeyEnter})
	if m.Selected() == nil || *m.Selected() != LobbyStart {
		t.Fatalf("Selected() = %v, want start", m.Selected())
	}
	if choice := m.Choice(); choice.Player != "ABC" || choice.Tutorial {
		t.Errorf("Choice() = %+v, want ABC without tutorial", choice)
	}
}

func TestLobbyRedoTutorial(t *testing.T) {
	m := NewLobbyModel(nil, 80, 24, "XYZ")
	m = typeKeys(m, tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyEnter})

	if m.Selected() == nil || *m.Selected() != LobbyTutorial {
		t.Fatalf("Selected() = %v, want tutorial", m.Selected())
	}
	if !m.Choice().Tutorial {
		t.Error("Choice().Tutorial should be set")
	}
}

func TestLobbyScoresWithoutInitials(t *testing.T) {
	m := NewLobbyModel(nil, 80, 24, "")
	m = typeKeys(m, tea.KeyMsg{Type: tea.KeyUp}, tea.KeyMsg{Type: tea.KeyUp}, tea.KeyMsg{Type: tea.KeyEnter})

	if m.Selected() == nil || *m.Selected() != LobbyScores {
		t.Errorf("Selected() = %v, want scores", m.Selected())
	}
}

func TestLobbyEscClearsInitials(t *testing.T) {
	m := NewLobbyModel(nil, 80, 24, "ABC")
	m = typeKeys(m, tea.KeyMsg{Type: tea.KeyEscape})

	if got := m.Choice().Player; got != "" {
		t.Errorf("Player = %q, want empty", got)
	}
}
