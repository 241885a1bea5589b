package session

import "testing"

func TestNewCopiesHistory(t *testing.T) {
	history := []Turn{{Role: RoleUser, Text: "hello"}}
	s := New(history, "", "", "")

	history[0].Text = "mutated"
	if got := s.Turns()[0].Text; got != "hello" {
		t.Errorf("session turn = %q, caller mutation leaked in", got)
	}
}

func TestAppendOrder(t *testing.T) {
	s := New(nil, "p1", "u1", "FOREMAN")
	s.Append(RoleUser, "first")
	s.Append(RoleAssistant, "second")
	s.Append(RoleUser, "third")

	turns := s.Turns()
	if len(turns) != 3 {
		t.Fatalf("len = %d, want 3", len(turns))
	}
	for i, want := range []string{"first", "second", "third"} {
		if turns[i].Text != want {
			t.Errorf("turns[%d] = %q, want %q", i, turns[i].Text, want)
		}
	}
}

func TestTurnsReturnsCopy(t *testing.T) {
	s := New(nil, "", "", "")
	s.Append(RoleUser, "hello")

	got := s.Turns()
	got[0].Text = "mutated"
	if s.Turns()[0].Text != "hello" {
		t.Error("mutating the returned slice changed session state")
	}
}

func TestLastUserText(t *testing.T) {
	tests := []struct {
		name  string
		turns []Turn
		want  string
	}{
		{"empty session", nil, ""},
		{"single user turn", []Turn{{RoleUser, "hi"}}, "hi"},
		{
			"skips assistant turns",
			[]Turn{{RoleUser, "first"}, {RoleAssistant, "reply"}},
			"first",
		},
		{
			"latest user wins",
			[]Turn{{RoleUser, "first"}, {RoleAssistant, "reply"}, {RoleUser, "second"}},
			"second",
		},
		{"label stripped", []Turn{{RoleUser, "USER: what now"}}, "what now"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New(tt.turns, "", "", "")
			if got := s.LastUserText(); got != tt.want {
				t.Errorf("LastUserText = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestStripLabel(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"user: hello", "hello"},
		{"USER: hello", "hello"},
		{"User:hello", "hello"},
		{"  user:  hello  ", "hello"},
		{"plain text", "plain text"},
		{"username is taken", "username is taken"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := StripLabel(tt.in); got != tt.want {
			t.Errorf("StripLabel(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
