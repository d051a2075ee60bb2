package model

import "testing"

func TestEffectivePassingMarksDefault40Percent(t *testing.T) {
	exam := ExamModel{ExamTotalMarks: 50}
	if got := exam.EffectivePassingMarks(); got != 20 {
		t.Fatalf("passing = %d, want 20", got)
	}
}

func TestEffectivePassingMarksExplicitOverride(t *testing.T) {
	passing := 35
	exam := ExamModel{ExamTotalMarks: 50, ExamPassingMarks: &passing}
	if got := exam.EffectivePassingMarks(); got != 35 {
		t.Fatalf("passing = %d, want 35", got)
	}
}

func TestEffectivePassingMarksZeroTotal(t *testing.T) {
	exam := ExamModel{}
	if got := exam.EffectivePassingMarks(); got != 0 {
		t.Fatalf("passing = %d, want 0", got)
	}
}
