package curriculum

import "testing"

func TestNormalize(t *testing.T) {
	cases := map[string]string{
		"":                                        "",
		"[Intro to CS](http://x.com/a)":           "Intro to CS",
		"**Bold** and __under__ text":             "Bold and under text",
		"Topics covered: `hidden` basics":         "basics",
		"topics   COVERED: loops":                 "loops",
		"Computer Science • Core programming":     "Core programming",
		"  spread \n\n over\tlines  ":             "spread over lines",
		"stray ` backtick":                        "stray backtick",
		"[Nand2Tetris](https://nand2tetris.org)!": "Nand2Tetris!",
	}

	for in, expected := range cases {
		if got := Normalize(in); got != expected {
			t.Errorf("Expected Normalize(%q) to be %q, got %q", in, expected, got)
		}
	}
}

func TestNormalizeIsIdempotent(t *testing.T) {
	inputs := []string{
		"[Intro to CS](http://x.com/a)",
		"**Topics covered**: `a`, `b` and more",
		"Topics Topics covered: covered: x",
		"*_*_ mixed __**markers**__",
		"[[nested](a)](b)",
		"Computer Science •  Computer Science • tail",
		"``` fenced ```",
	}

	for _, in := range inputs {
		once := Normalize(in)
		if twice := Normalize(once); twice != once {
			t.Errorf("Expected Normalize to be idempotent for %q, got %q then %q", in, once, twice)
		}
	}
}

func TestStripMarkup(t *testing.T) {
	got := stripMarkup("[How to Code](#core-programming), `Python`, **Calculus**")
	expected := "How to Code, Python, Calculus"
	if got != expected {
		t.Errorf("Expected %q, got %q", expected, got)
	}
}
