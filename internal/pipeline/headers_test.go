package pipeline

import "testing"

func TestHeaderPass(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"h1", "# Title", "\n<h1>Title</h1>\n"},
		{"h6", "###### Deep", "\n<h6>Deep</h6>\n"},
		{"tab separator", "##\tTab", "\n<h2>Tab</h2>\n"},
		{"verbatim body", "# a <b>c</b>", "\n<h1>a <b>c</b></h1>\n"},
		{"no space", "#tag", "#tag"},
		{"too many hashes", "####### x", "####### x"},
		{"not at line start", "text # x", "text # x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := headerPass(tt.input)
			if got != tt.expected {
				t.Errorf("headerPass(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestRuleLine(t *testing.T) {
	t.Parallel()

	tests := []struct {
		line       string
		wantIndent string
		wantOK     bool
	}{
		{"---", "", true},
		{"***", "", true},
		{"___", "", true},
		{"- - -", "", true},
		{"*  *  *  *", "", true},
		{"  ---", "  ", true},
		{"----------", "", true},
		{"--", "", false},
		{"-*-", "", false},
		{"--- x", "", false},
		{"", "", false},
		{"===", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			t.Parallel()

			indent, ok := ruleLine(tt.line)
			if ok != tt.wantOK || indent != tt.wantIndent {
				t.Errorf("ruleLine(%q) = (%q, %v), want (%q, %v)", tt.line, indent, ok, tt.wantIndent, tt.wantOK)
			}
		})
	}
}

func TestHorizontalRulePass_BeforeEmphasis(t *testing.T) {
	t.Parallel()

	got := Parse("a\n\n***\n\nb")
	want := "<p>a</p>\n<hr>\n<p>b</p>\n"
	if got != want {
		t.Errorf("Parse() = %q, want %q", got, want)
	}
}
