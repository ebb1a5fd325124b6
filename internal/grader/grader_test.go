package grader

import "testing"

func TestGradeFreeText_ExactMatchIgnoresCaseAndPunctuation(t *testing.T) {
	r := GradeFreeText("i am here", "I am here.", nil, StrictnessNormal)
	if r.Verdict != VerdictCorrect {
		t.Errorf("verdict = %s, want correct", r.Verdict)
	}
	if r.Canonical != "I am here" {
		t.Errorf("canonical = %q, want %q", r.Canonical, "I am here")
	}
}

func TestGradeFreeText_NearMissByStrictness(t *testing.T) {
	tests := []struct {
		mode Strictness
		want Verdict
	}{
		{StrictnessEasy, VerdictCorrect},
		{StrictnessNormal, VerdictAlmost},
		{StrictnessStrict, VerdictAlmost},
	}
	for _, tt := range tests {
		t.Run(string(tt.mode), func(t *testing.T) {
			// "doesnt" vs "doesn't" is distance 0 after normalization, so use
			// a real near miss.
			r := GradeFreeText("she dosent work", "She doesn't work.", nil, tt.mode)
			if r.Verdict != tt.want {
				t.Errorf("verdict = %s, want %s", r.Verdict, tt.want)
			}
		})
	}
}

func TestGradeFreeText_ApostropheVariantIsExact(t *testing.T) {
	// The comparison key strips apostrophes, so "doesnt" and "doesn't" are
	// the same answer in every mode.
	for _, mode := range []Strictness{StrictnessEasy, StrictnessNormal, StrictnessStrict} {
		r := GradeFreeText("doesnt", "doesn't", nil, mode)
		if r.Verdict != VerdictCorrect {
			t.Errorf("mode %s: verdict = %s, want correct", mode, r.Verdict)
		}
	}
}

func TestGradeFreeText_AcceptedVariants(t *testing.T) {
	r := GradeFreeText("I'm here", "I am here.", []string{"I'm here"}, StrictnessStrict)
	if r.Verdict != VerdictCorrect {
		t.Errorf("verdict = %s, want correct", r.Verdict)
	}
}

func TestGradeFreeText_WrongBeyondThreshold(t *testing.T) {
	r := GradeFreeText("completely different", "I am here.", nil, StrictnessEasy)
	if r.Verdict != VerdictWrong {
		t.Errorf("verdict = %s, want wrong", r.Verdict)
	}
}

func TestGradeFreeText_ThresholdByLength(t *testing.T) {
	// Short target (<=20 chars): distance 2 is close, 3 is not.
	if r := GradeFreeText("wark", "work", nil, StrictnessNormal); r.Verdict != VerdictAlmost {
		t.Errorf("short target distance 1: verdict = %s, want almost", r.Verdict)
	}
	if r := GradeFreeText("xyzk", "work", nil, StrictnessNormal); r.Verdict != VerdictWrong {
		t.Errorf("short target distance 3: verdict = %s, want wrong", r.Verdict)
	}
	// Long target (>20 chars): distance 3 is still close.
	canonical := "she has been working here for years"
	answer := "she has ben werking here for year"
	if r := GradeFreeText(answer, canonical, nil, StrictnessNormal); r.Verdict != VerdictAlmost {
		t.Errorf("long target distance 3: verdict = %s, want almost", r.Verdict)
	}
}

func TestGradeFreeText_EmptyAnswerIsWrong(t *testing.T) {
	r := GradeFreeText("", "I am here.", nil, StrictnessEasy)
	if r.Verdict != VerdictWrong {
		t.Errorf("verdict = %s, want wrong", r.Verdict)
	}
}

func TestEffectiveCorrect(t *testing.T) {
	tests := []struct {
		verdict Verdict
		flipped bool
		mode    Strictness
		want    bool
	}{
		{VerdictCorrect, false, StrictnessStrict, true},
		{VerdictAlmost, false, StrictnessEasy, true},
		{VerdictAlmost, false, StrictnessNormal, true},
		{VerdictAlmost, false, StrictnessStrict, false},
		{VerdictWrong, false, StrictnessEasy, false},
		{VerdictWrong, true, StrictnessStrict, true},
	}
	for _, tt := range tests {
		got := EffectiveCorrect(tt.verdict, tt.flipped, tt.mode)
		if got != tt.want {
			t.Errorf("EffectiveCorrect(%s, %v, %s) = %v, want %v",
				tt.verdict, tt.flipped, tt.mode, got, tt.want)
		}
	}
}

func TestParseStrictness(t *testing.T) {
	if got := ParseStrictness("strict", StrictnessNormal); got != StrictnessStrict {
		t.Errorf("got %s, want strict", got)
	}
	if got := ParseStrictness("bogus", StrictnessNormal); got != StrictnessNormal {
		t.Errorf("got %s, want normal fallback", got)
	}
}
