package markup

import "testing"

func TestScan_NoMarkup(t *testing.T) {
	for _, raw := range []string{"", "hello", "[[", "[x]", "[[1]]", "[[abc]]", "a]]b[[c"} {
		if toks := Scan(raw); len(toks) != 0 {
			t.Errorf("Scan(%q) = %d tokens, want 0", raw, len(toks))
		}
	}
}

func TestScan_Tokens(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []Token
	}{
		{
			name: "emoji",
			raw:  "a[[07]]b",
			want: []Token{{Kind: TokenEmoji, Start: 1, End: 7, Text: "[[07]]", ID: "07"}},
		},
		{
			name: "href",
			raw:  "[[hi@http://x]]",
			want: []Token{{Kind: TokenHref, Start: 0, End: 15, Text: "[[hi@http://x]]", Description: "hi", Target: "http://x"}},
		},
		{
			name: "digits with at are a link",
			raw:  "[[12@x]]",
			want: []Token{{Kind: TokenHref, Start: 0, End: 8, Text: "[[12@x]]", Description: "12", Target: "x"}},
		},
		{
			name: "first at splits",
			raw:  "[[a@b@c]]",
			want: []Token{{Kind: TokenHref, Start: 0, End: 9, Text: "[[a@b@c]]", Description: "a", Target: "b@c"}},
		},
		{
			name: "leading at gives empty description",
			raw:  "[[@@x]]",
			want: []Token{{Kind: TokenHref, Start: 0, End: 7, Text: "[[@@x]]", Description: "", Target: "@x"}},
		},
		{
			name: "lazy target stops at first closing brackets",
			raw:  "[[a@b]]c]]",
			want: []Token{{Kind: TokenHref, Start: 0, End: 7, Text: "[[a@b]]", Description: "a", Target: "b"}},
		},
		{
			name: "inner brackets are stripped",
			raw:  "[[a[[b@c]]",
			want: []Token{{Kind: TokenHref, Start: 0, End: 10, Text: "[[a[[b@c]]", Description: "ab", Target: "c"}},
		},
		{
			name: "mixed in order",
			raw:  "x[[01]][[go@g]]y[[02]]",
			want: []Token{
				{Kind: TokenEmoji, Start: 1, End: 7, Text: "[[01]]", ID: "01"},
				{Kind: TokenHref, Start: 7, End: 15, Text: "[[go@g]]", Description: "go", Target: "g"},
				{Kind: TokenEmoji, Start: 16, End: 22, Text: "[[02]]", ID: "02"},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Scan(tt.raw)
			if len(got) != len(tt.want) {
				t.Fatalf("Scan(%q) = %+v, want %+v", tt.raw, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("token %d = %+v, want %+v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestScan_NoNewlineInHref(t *testing.T) {
	if toks := Scan("[[a\nb@c]]"); len(toks) != 0 {
		t.Errorf("link spanning a newline matched: %+v", toks)
	}
}

func TestTokenKind_String(t *testing.T) {
	if TokenEmoji.String() != "Emoji" || TokenHref.String() != "Href" || TokenKind(0).String() != "Unknown" {
		t.Error("unexpected TokenKind strings")
	}
}
