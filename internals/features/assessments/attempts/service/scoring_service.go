package service

import (
	attemptModel "studyabroad_backend/internals/features/assessments/attempts/model"
	questionModel "studyabroad_backend/internals/features/assessments/questions/model"
)

type ScoreSummary struct {
	Score      int
	TotalMarks int
	Percentage float64
}

// ScoreAttempt: fungsi murni tanpa akses DB supaya gampang diuji.
// Jawaban kosong atau salah tidak menambah skor; ujian tanpa soal
// menghasilkan persentase 0, bukan pembagian nol.
func ScoreAttempt(answers attemptModel.AnswerMap, questions []questionModel.QuestionModel) ScoreSummary {
	var summary ScoreSummary
	for _, q := range questions {
		summary.TotalMarks += q.QuestionMarks
		if answers[q.QuestionID] == q.QuestionCorrect {
			summary.Score += q.QuestionMarks
		}
	}
	if summary.TotalMarks > 0 {
		summary.Percentage = float64(summary.Score) * 100 / float64(summary.TotalMarks)
	}
	return summary
}
