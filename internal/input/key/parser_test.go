package key

import "testing"

func TestParse(t *testing.T) {
	tests := []struct {
		spec string
		want Event
	}{
		{"a", Event{Code: 'a'}},
		{"A", Event{Code: 'A'}},
		{"1", Event{Code: '1'}},
		{"@", Event{Code: '@'}},
		{"Enter", Event{Code: CodeEnter}},
		{"escape", Event{Code: CodeEscape}},
		{"Tab", Event{Code: CodeTab}},
		{"Space", Event{Code: CodeSpace}},
		{"Up", Event{Code: CodeUp}},
		{"PgDn", Event{Code: CodePageDown}},
		{"F5", Event{Code: CodeF5}},
		{"Ctrl+S", Event{Code: 'S', Mod: ModCtrl}},
		{"Alt+F4", Event{Code: CodeF4, Mod: ModAlt}},
		{"Ctrl+Shift+P", Event{Code: 'P', Mod: ModCtrl | ModShift}},
		{"<C-s>", Event{Code: 's', Mod: ModCtrl}},
		{"<A-f>", Event{Code: 'f', Mod: ModAlt}},
		{"<C-S-p>", Event{Code: 'p', Mod: ModCtrl | ModShift}},
		{"<CR>", Event{Code: CodeEnter}},
		{"<Esc>", Event{Code: CodeEscape}},
		{"<BS>", Event{Code: CodeBackspace}},
		{"<Up>", Event{Code: CodeUp}},
	}

	for _, tt := range tests {
		t.Run(tt.spec, func(t *testing.T) {
			got, err := Parse(tt.spec)
			if err != nil {
				t.Fatalf("Parse(%q) error: %v", tt.spec, err)
			}
			if got != tt.want {
				t.Errorf("Parse(%q) = %#v, want %#v", tt.spec, got, tt.want)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	specs := []string{"", "  ", "NotAKey", "Hyper+x", "<Q-s>"}

	for _, spec := range specs {
		if _, err := Parse(spec); err == nil {
			t.Errorf("Parse(%q) should fail", spec)
		}
	}
}

func TestParseMatchesDecodedCtrlByte(t *testing.T) {
	// A parsed Ctrl+letter binding must structurally match the raw control
	// byte the decoder produces.
	parsed := MustParse("Ctrl+s")
	raw := Event{Code: 19}
	if !parsed.Equals(raw) {
		t.Errorf("Ctrl+s (%#v) should equal raw 0x13 (%#v)", parsed, raw)
	}
}

func TestMustParsePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustParse should panic on invalid spec")
		}
	}()
	MustParse("NotAKey")
}
