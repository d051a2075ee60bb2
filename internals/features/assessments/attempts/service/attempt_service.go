package service

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	attemptModel "studyabroad_backend/internals/features/assessments/attempts/model"
	examModel "studyabroad_backend/internals/features/assessments/exams/model"
	questionModel "studyabroad_backend/internals/features/assessments/questions/model"
	resultModel "studyabroad_backend/internals/features/assessments/results/model"
	enrollmentService "studyabroad_backend/internals/features/learning/enrollments/service"
)

var (
	ErrExamNotFound      = errors.New("exam not found")
	ErrExamNotPublished  = errors.New("exam not published")
	ErrNotEnrolled       = errors.New("student has no active enrollment")
	ErrAttemptNotFound   = errors.New("attempt not found")
	ErrAlreadySubmitted  = errors.New("attempt already submitted")
	ErrDeadlinePassed    = errors.New("attempt deadline passed")
	ErrQuestionNotInExam = errors.New("question does not belong to the attempt's exam")
	ErrInvalidOption     = errors.New("invalid answer option")
)

// StartResult: attempt plus info waktu yang diturunkan dari started_at
// tersimpan. Deadline tidak pernah maju gara-gara start dipanggil ulang.
type StartResult struct {
	Attempt          attemptModel.ExamAttemptModel
	Exam             examModel.ExamModel
	Deadline         time.Time
	RemainingSeconds int
	Resumed          bool
}

// StartAttempt: idempotent. Attempt yang sudah ada dilanjutkan, bukan
// dibuat ulang; race dua start bersamaan jatuh ke unique index lalu
// diselesaikan dengan resume.
func StartAttempt(db *gorm.DB, examID, studentID uuid.UUID) (*StartResult, error) {
	var exam examModel.ExamModel
	if err := db.First(&exam, "exam_id = ?", examID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrExamNotFound
		}
		return nil, err
	}
	if !exam.ExamIsPublished {
		return nil, ErrExamNotPublished
	}

	enrolled, err := enrollmentService.HasActiveEnrollment(db, studentID, exam.ExamBatchID)
	if err != nil {
		return nil, err
	}
	if !enrolled {
		return nil, ErrNotEnrolled
	}

	var attempt attemptModel.ExamAttemptModel
	resumed := true
	err = db.First(&attempt, "exam_attempt_exam_id = ? AND exam_attempt_student_id = ?", examID, studentID).Error
	switch {
	case err == nil:
		// resume
	case errors.Is(err, gorm.ErrRecordNotFound):
		resumed = false
		attempt = attemptModel.ExamAttemptModel{
			ExamAttemptExamID:    examID,
			ExamAttemptStudentID: studentID,
			ExamAttemptAnswers:   attemptModel.AnswerMap{},
			ExamAttemptStartedAt: time.Now(),
		}
		if createErr := db.Create(&attempt).Error; createErr != nil {
			// Start ganda: baris milik pemenang race diambil sebagai resume.
			if findErr := db.First(&attempt,
				"exam_attempt_exam_id = ? AND exam_attempt_student_id = ?", examID, studentID).Error; findErr != nil {
				return nil, createErr
			}
			resumed = true
		}
	default:
		return nil, err
	}

	if attempt.ExamAttemptIsSubmitted {
		return nil, ErrAlreadySubmitted
	}

	deadline := attempt.Deadline(exam.ExamDurationMinutes)
	remaining := int(time.Until(deadline).Seconds())
	if remaining < 0 {
		remaining = 0
	}
	return &StartResult{
		Attempt:          attempt,
		Exam:             exam,
		Deadline:         deadline,
		RemainingSeconds: remaining,
		Resumed:          resumed,
	}, nil
}

// RecordAnswer meng-upsert satu jawaban. Lewat deadline berarti attempt
// di-submit otomatis dulu, lalu tetap ditolak.
func RecordAnswer(db *gorm.DB, attemptID, studentID, questionID uuid.UUID, option questionModel.Option) error {
	if !option.IsValid() {
		return ErrInvalidOption
	}

	var attempt attemptModel.ExamAttemptModel
	if err := db.First(&attempt,
		"exam_attempt_id = ? AND exam_attempt_student_id = ?", attemptID, studentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrAttemptNotFound
		}
		return err
	}
	if attempt.ExamAttemptIsSubmitted {
		return ErrAlreadySubmitted
	}

	var exam examModel.ExamModel
	if err := db.First(&exam, "exam_id = ?", attempt.ExamAttemptExamID).Error; err != nil {
		return err
	}
	if time.Now().After(attempt.Deadline(exam.ExamDurationMinutes)) {
		if _, err := SubmitAttempt(db, attemptID, studentID); err != nil && !errors.Is(err, ErrAlreadySubmitted) {
			return err
		}
		return ErrDeadlinePassed
	}

	var belongs int64
	if err := db.Model(&questionModel.QuestionModel{}).
		Where("question_id = ? AND question_exam_id = ?", questionID, attempt.ExamAttemptExamID).
		Count(&belongs).Error; err != nil {
		return err
	}
	if belongs == 0 {
		return ErrQuestionNotInExam
	}

	if attempt.ExamAttemptAnswers == nil {
		attempt.ExamAttemptAnswers = attemptModel.AnswerMap{}
	}
	attempt.ExamAttemptAnswers[questionID] = option
	return db.Model(&attemptModel.ExamAttemptModel{}).
		Where("exam_attempt_id = ?", attempt.ExamAttemptID).
		Update("exam_attempt_answers", attempt.ExamAttemptAnswers).Error
}

// SubmitAttempt: tepat satu kali. Flag is_submitted dipakai sebagai guard
// lewat conditional update; pemanggil kedua menerima result yang sudah ada
// tanpa membuat apa pun.
func SubmitAttempt(db *gorm.DB, attemptID, studentID uuid.UUID) (*resultModel.ResultModel, error) {
	var attempt attemptModel.ExamAttemptModel
	if err := db.First(&attempt,
		"exam_attempt_id = ? AND exam_attempt_student_id = ?", attemptID, studentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAttemptNotFound
		}
		return nil, err
	}

	var result resultModel.ResultModel
	err := db.Transaction(func(tx *gorm.DB) error {
		now := time.Now()
		claim := tx.Model(&attemptModel.ExamAttemptModel{}).
			Where("exam_attempt_id = ? AND exam_attempt_is_submitted = ?", attemptID, false).
			Updates(map[string]any{
				"exam_attempt_is_submitted": true,
				"exam_attempt_submitted_at": now,
			})
		if claim.Error != nil {
			return claim.Error
		}
		if claim.RowsAffected == 0 {
			return ErrAlreadySubmitted
		}

		var exam examModel.ExamModel
		if err := tx.First(&exam, "exam_id = ?", attempt.ExamAttemptExamID).Error; err != nil {
			return err
		}
		var questions []questionModel.QuestionModel
		if err := tx.Where("question_exam_id = ?", exam.ExamID).Find(&questions).Error; err != nil {
			return err
		}

		summary := ScoreAttempt(attempt.ExamAttemptAnswers, questions)
		passing := exam.ExamPassingMarks
		passingMarks := 0
		if passing != nil {
			passingMarks = *passing
		} else {
			passingMarks = summary.TotalMarks * 40 / 100
		}

		result = resultModel.ResultModel{
			ResultAttemptID:  attempt.ExamAttemptID,
			ResultExamID:     exam.ExamID,
			ResultStudentID:  attempt.ExamAttemptStudentID,
			ResultScore:      summary.Score,
			ResultTotalMarks: summary.TotalMarks,
			ResultPercentage: summary.Percentage,
			ResultPassed:     summary.Score >= passingMarks,
		}
		return tx.Create(&result).Error
	})
	if err != nil {
		if errors.Is(err, ErrAlreadySubmitted) {
			// submit kedua: kembalikan result milik submit pertama
			if findErr := db.First(&result, "result_attempt_id = ?", attemptID).Error; findErr == nil {
				return &result, ErrAlreadySubmitted
			}
			return nil, ErrAlreadySubmitted
		}
		return nil, err
	}
	return &result, nil
}
