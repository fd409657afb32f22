package register

import (
	"errors"
	"strings"
	"testing"
)

func TestSetAndGet(t *testing.T) {
	s := New()

	if _, err := s.Set('a', "hello"); err != nil {
		t.Fatalf("Set: %v", err)
	}

	e, ok := s.Get('a')
	if !ok || e.Text != "hello" {
		t.Errorf("Get('a') = %q, %v, want %q, true", e.Text, ok, "hello")
	}

	if _, ok := s.Get('b'); ok {
		t.Error("Get('b') on unset register should report no entry")
	}
}

func TestOverwriteWins(t *testing.T) {
	s := New()

	s.Set('k', "first")
	s.Set('k', "second")

	e, _ := s.Get('k')
	if e.Text != "second" {
		t.Errorf("Get after overwrite = %q, want %q", e.Text, "second")
	}
	if s.Len() != 1 {
		t.Errorf("Len = %d, want 1", s.Len())
	}
}

func TestSetInvalidKey(t *testing.T) {
	s := New()

	if _, err := s.Set('\n', "x"); !errors.Is(err, ErrInvalidKey) {
		t.Errorf("Set('\\n') err = %v, want ErrInvalidKey", err)
	}
	if s.Len() != 0 {
		t.Error("invalid key should not touch the store")
	}
}

func TestParseKey(t *testing.T) {
	tests := []struct {
		in      string
		want    rune
		wantErr bool
	}{
		{"a", 'a', false},
		{"Z", 'Z', false},
		{"5", '5', false},
		{"ä", 'ä', false},
		{"�", '�', false},
		{"", 0, true},
		{"ab", 0, true},
		{"\t", 0, true},
		{"\x00", 0, true},
		{"\x80", 0, true},
		{"\xff\xfe", 0, true},
	}

	for _, tt := range tests {
		got, err := ParseKey(tt.in)
		if tt.wantErr {
			if !errors.Is(err, ErrInvalidKey) {
				t.Errorf("ParseKey(%q) err = %v, want ErrInvalidKey", tt.in, err)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Errorf("ParseKey(%q) = %q, %v, want %q", tt.in, got, err, tt.want)
		}
	}
}

func TestReset(t *testing.T) {
	seed := func() *Store {
		s := New()
		s.Set('1', "digit")
		s.Set('a', "lower")
		s.Set('A', "upper")
		s.Set('%', "other")
		return s
	}

	tests := []struct {
		name  string
		class Class
		kept  []rune
		gone  []rune
	}{
		{"all", ClassAll, nil, []rune{'1', 'a', 'A', '%'}},
		{"digits", ClassDigits, []rune{'a', 'A', '%'}, []rune{'1'}},
		{"lower", ClassLower, []rune{'1', 'A', '%'}, []rune{'a'}},
		{"upper", ClassUpper, []rune{'1', 'a', '%'}, []rune{'A'}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := seed()
			s.Reset(tt.class)
			for _, key := range tt.kept {
				if _, ok := s.Get(key); !ok {
					t.Errorf("register %q should survive", key)
				}
			}
			for _, key := range tt.gone {
				if _, ok := s.Get(key); ok {
					t.Errorf("register %q should be cleared", key)
				}
			}
		})
	}
}

func TestListSorted(t *testing.T) {
	s := New()
	s.Set('z', "last")
	s.Set('a', "first")
	s.Set('m', "middle\nline")

	items := s.List(64)
	if len(items) != 3 {
		t.Fatalf("len(items) = %d, want 3", len(items))
	}
	if items[0].Key != 'a' || items[1].Key != 'm' || items[2].Key != 'z' {
		t.Errorf("items not sorted by key: %v", items)
	}
	if items[1].Preview != `middle\nline` {
		t.Errorf("preview not escaped: %q", items[1].Preview)
	}
}

func TestDescribe(t *testing.T) {
	s := New()
	s.Set('a', "hello")

	out := s.Describe()
	if !strings.Contains(out, "CLIPBOARD REGISTERS (1)") {
		t.Errorf("missing header: %q", out)
	}
	if !strings.Contains(out, "a: hello") {
		t.Errorf("missing register row: %q", out)
	}
}
