package service

import (
	"math"
	"testing"

	"github.com/google/uuid"

	attemptModel "studyabroad_backend/internals/features/assessments/attempts/model"
	questionModel "studyabroad_backend/internals/features/assessments/questions/model"
)

func question(id uuid.UUID, correct questionModel.Option, marks int) questionModel.QuestionModel {
	return questionModel.QuestionModel{
		QuestionID:      id,
		QuestionCorrect: correct,
		QuestionMarks:   marks,
	}
}

func TestScoreAttemptPartialCredit(t *testing.T) {
	q1 := uuid.New()
	q2 := uuid.New()
	q3 := uuid.New()
	questions := []questionModel.QuestionModel{
		question(q1, questionModel.OptionA, 1),
		question(q2, questionModel.OptionB, 1),
		question(q3, questionModel.OptionC, 1),
	}
	answers := attemptModel.AnswerMap{
		q1: questionModel.OptionA, // benar
		q2: questionModel.OptionC, // salah
		// q3 tidak dijawab
	}

	got := ScoreAttempt(answers, questions)
	if got.Score != 1 {
		t.Fatalf("score = %d, want 1", got.Score)
	}
	if got.TotalMarks != 3 {
		t.Fatalf("total = %d, want 3", got.TotalMarks)
	}
	if math.Abs(got.Percentage-100.0/3.0) > 0.01 {
		t.Fatalf("percentage = %f, want ~33.33", got.Percentage)
	}
}

func TestScoreAttemptWeightedMarks(t *testing.T) {
	q1 := uuid.New()
	q2 := uuid.New()
	questions := []questionModel.QuestionModel{
		question(q1, questionModel.OptionD, 5),
		question(q2, questionModel.OptionA, 3),
	}
	answers := attemptModel.AnswerMap{
		q1: questionModel.OptionD,
		q2: questionModel.OptionB,
	}

	got := ScoreAttempt(answers, questions)
	if got.Score != 5 || got.TotalMarks != 8 {
		t.Fatalf("score/total = %d/%d, want 5/8", got.Score, got.TotalMarks)
	}
}

func TestScoreAttemptNoQuestions(t *testing.T) {
	got := ScoreAttempt(attemptModel.AnswerMap{}, nil)
	if got.Score != 0 || got.TotalMarks != 0 {
		t.Fatalf("score/total = %d/%d, want 0/0", got.Score, got.TotalMarks)
	}
	if got.Percentage != 0 {
		t.Fatalf("percentage = %f, want 0 (bukan NaN)", got.Percentage)
	}
}

func TestScoreAttemptIgnoresUnknownQuestionIDs(t *testing.T) {
	q1 := uuid.New()
	questions := []questionModel.QuestionModel{question(q1, questionModel.OptionA, 2)}
	answers := attemptModel.AnswerMap{
		q1:         questionModel.OptionA,
		uuid.New(): questionModel.OptionB, // bukan bagian dari ujian
	}

	got := ScoreAttempt(answers, questions)
	if got.Score != 2 || got.TotalMarks != 2 {
		t.Fatalf("score/total = %d/%d, want 2/2", got.Score, got.TotalMarks)
	}
}
