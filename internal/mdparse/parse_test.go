package mdparse

import (
	"strings"
	"testing"
)

const sampleSheet = `# Vim Cheat Sheet

## Motions

* ` + "`h`" + ` - Move the cursor left
* ` + "`dd`" + ` - Delete the current line

## Files and Buffers

* ` + "`:wq`, `:x`, `ZZ`" + ` - Save and quit
* not a command bullet
`

func TestParse(t *testing.T) {
	items, err := Parse(strings.NewReader(sampleSheet))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(items) != 3 {
		t.Fatalf("got %d items, want 3", len(items))
	}

	if items[0].Category != "Motions" || items[0].Prompt != "Move the cursor left" {
		t.Errorf("item 0 = %+v", items[0])
	}
	if len(items[0].Answers) != 1 || items[0].Answers[0] != "h" {
		t.Errorf("item 0 answers = %v, want [h]", items[0].Answers)
	}

	if items[2].Category != "Files and Buffers" {
		t.Errorf("item 2 category = %q", items[2].Category)
	}
	want := []string{":wq", ":x", "ZZ"}
	if len(items[2].Answers) != len(want) {
		t.Fatalf("item 2 answers = %v, want %v", items[2].Answers, want)
	}
	for i, a := range want {
		if items[2].Answers[i] != a {
			t.Errorf("item 2 answer %d = %q, want %q", i, items[2].Answers[i], a)
		}
	}

	for _, it := range items {
		if it.ID == "" {
			t.Errorf("item %q has no id", it.Prompt)
		}
	}
}

func TestParseStableIDs(t *testing.T) {
	a, err := Parse(strings.NewReader(sampleSheet))
	if err != nil {
		t.Fatal(err)
	}
	b, _ := Parse(strings.NewReader(sampleSheet))
	for i := range a {
		if a[i].ID != b[i].ID {
			t.Errorf("item %d id differs across parses", i)
		}
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"empty", ""},
		{"no bullets", "## Motions\n\nprose only\n"},
		{"bullet before heading", "* `h` - Move left\n"},
	}
	for _, tt := range tests {
		if _, err := Parse(strings.NewReader(tt.in)); err == nil {
			t.Errorf("%s: Parse succeeded, want error", tt.name)
		}
	}
}
