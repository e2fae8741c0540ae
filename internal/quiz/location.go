package quiz

import (
	"fmt"
	"strconv"
	"strings"
)

// Location is a logical navigation path for a session phase. These are
// the shareable locations the presentation layer maps to real routes:
//
//	/
//	/mode/{mode}[/{count}]
//	/play/{mode}[/{count}]
//	/results/{mode}
//	/review/{mode}
type Location struct {
	Phase Phase
	Mode  ModeID
	Count int // 0 when no custom count
}

// LocationFor maps a session phase to its logical path.
func LocationFor(phase Phase, mode ModeID, count int) string {
	suffix := ""
	if count > 0 {
		suffix = "/" + strconv.Itoa(count)
	}
	switch phase {
	case PhaseModeSelect:
		return fmt.Sprintf("/mode/%s%s", mode, suffix)
	case PhasePlaying, PhaseFlashcard, PhaseMultiChoice:
		return fmt.Sprintf("/play/%s%s", mode, suffix)
	case PhaseFinished:
		return fmt.Sprintf("/results/%s", mode)
	case PhaseReview:
		return fmt.Sprintf("/review/%s", mode)
	}
	return "/"
}

// CurrentLocation is the session's logical location.
func (s *Session) CurrentLocation() string {
	return LocationFor(s.phase, s.mode.ID, s.customCount)
}

// ParseLocation re-derives a Location from a logical path. External
// navigation is authoritative: a /play/ path resolves its play phase
// from the mode's kind. Unknown paths and modes are errors so callers
// can fall back to the intro.
func ParseLocation(path string) (Location, error) {
	path = strings.Trim(path, "/")
	if path == "" {
		return Location{Phase: PhaseIntro}, nil
	}

	parts := strings.Split(path, "/")
	head := parts[0]

	if len(parts) < 2 {
		return Location{}, fmt.Errorf("unrecognized location %q", path)
	}
	mode, ok := ModeByID(ModeID(parts[1]))
	if !ok {
		return Location{}, fmt.Errorf("unknown mode %q", parts[1])
	}

	count := 0
	if len(parts) == 3 && (head == "mode" || head == "play") {
		n, err := strconv.Atoi(parts[2])
		if err != nil || n <= 0 {
			return Location{}, fmt.Errorf("bad question count %q", parts[2])
		}
		count = n
	} else if len(parts) > 2 {
		return Location{}, fmt.Errorf("unrecognized location %q", path)
	}

	loc := Location{Mode: mode.ID, Count: count}
	switch head {
	case "mode":
		loc.Phase = PhaseModeSelect
	case "play":
		switch mode.Kind {
		case KindFlashcard:
			loc.Phase = PhaseFlashcard
		case KindMultiChoice:
			loc.Phase = PhaseMultiChoice
		default:
			loc.Phase = PhasePlaying
		}
	case "results":
		loc.Phase = PhaseFinished
	case "review":
		loc.Phase = PhaseReview
	default:
		return Location{}, fmt.Errorf("unrecognized location %q", path)
	}
	return loc, nil
}
