package quiz

import "testing"

func TestLocationFor(t *testing.T) {
	tests := []struct {
		phase Phase
		mode  ModeID
		count int
		want  string
	}{
		{PhaseIntro, "", 0, "/"},
		{PhaseModeSelect, ModeFlash, 0, "/mode/flash"},
		{PhaseModeSelect, ModeFlashcard, 20, "/mode/flashcard/20"},
		{PhasePlaying, ModeRegular, 0, "/play/regular"},
		{PhaseFlashcard, ModeFlashcardUnknown, 0, "/play/flashcard-unknown"},
		{PhaseMultiChoice, ModeMCHard, 5, "/play/mc-hard/5"},
		{PhaseFinished, ModeFlash, 0, "/results/flash"},
		{PhaseReview, ModeFlash, 0, "/review/flash"},
	}

	for _, tt := range tests {
		got := LocationFor(tt.phase, tt.mode, tt.count)
		if got != tt.want {
			t.Errorf("LocationFor(%s, %s, %d) = %q, want %q", tt.phase, tt.mode, tt.count, got, tt.want)
		}
	}
}

func TestParseLocation(t *testing.T) {
	tests := []struct {
		path      string
		wantPhase Phase
		wantMode  ModeID
		wantCount int
	}{
		{"/", PhaseIntro, "", 0},
		{"", PhaseIntro, "", 0},
		{"/mode/flash", PhaseModeSelect, ModeFlash, 0},
		{"/mode/flashcard/20", PhaseModeSelect, ModeFlashcard, 20},
		{"/play/regular", PhasePlaying, ModeRegular, 0},
		{"/play/flashcard-repeat", PhaseFlashcard, ModeFlashcardRepeat, 0},
		{"/play/mc-medium", PhaseMultiChoice, ModeMCMedium, 0},
		{"/results/all", PhaseFinished, ModeAll, 0},
		{"/review/mc-easy", PhaseReview, ModeMCEasy, 0},
	}

	for _, tt := range tests {
		loc, err := ParseLocation(tt.path)
		if err != nil {
			t.Errorf("ParseLocation(%q): %v", tt.path, err)
			continue
		}
		if loc.Phase != tt.wantPhase || loc.Mode != tt.wantMode || loc.Count != tt.wantCount {
			t.Errorf("ParseLocation(%q) = %+v, want (%s, %s, %d)",
				tt.path, loc, tt.wantPhase, tt.wantMode, tt.wantCount)
		}
	}
}

func TestParseLocationErrors(t *testing.T) {
	bad := []string{
		"/mode/bogus",
		"/play/flash/zero",
		"/play/flash/-1",
		"/results/flash/10",
		"/settings",
		"/mode",
	}
	for _, path := range bad {
		if _, err := ParseLocation(path); err == nil {
			t.Errorf("ParseLocation(%q) succeeded, want error", path)
		}
	}
}

func TestLocationRoundTrip(t *testing.T) {
	s := startedSession(t, ModeMCEasy, newMemStore())

	loc, err := ParseLocation(s.CurrentLocation())
	if err != nil {
		t.Fatalf("ParseLocation(%q): %v", s.CurrentLocation(), err)
	}
	if loc.Phase != PhaseMultiChoice || loc.Mode != ModeMCEasy {
		t.Errorf("round trip = %+v, want multiple-choice/mc-easy", loc)
	}
}
