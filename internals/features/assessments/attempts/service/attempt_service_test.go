package service

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	attemptModel "studyabroad_backend/internals/features/assessments/attempts/model"
	examModel "studyabroad_backend/internals/features/assessments/exams/model"
	questionModel "studyabroad_backend/internals/features/assessments/questions/model"
	resultModel "studyabroad_backend/internals/features/assessments/results/model"
	batchModel "studyabroad_backend/internals/features/learning/batches/model"
	enrollmentModel "studyabroad_backend/internals/features/learning/enrollments/model"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	// nama unik per test supaya tiap test dapat DB segar, cache=shared
	// supaya seluruh pool koneksi melihat schema yang sama
	dsn := "file:" + uuid.NewString() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(
		&batchModel.BatchModel{},
		&enrollmentModel.BatchStudentModel{},
		&examModel.ExamModel{},
		&questionModel.QuestionModel{},
		&attemptModel.ExamAttemptModel{},
		&resultModel.ResultModel{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

type fixture struct {
	db        *gorm.DB
	studentID uuid.UUID
	exam      examModel.ExamModel
	questions []questionModel.QuestionModel
}

// seedExam: satu batch, satu student ter-enroll, satu exam published
// berdurasi durationMinutes dengan tiga soal A/B/C bernilai 1.
func seedExam(t *testing.T, durationMinutes int) fixture {
	t.Helper()
	db := openTestDB(t)

	batch := batchModel.BatchModel{
		BatchName:      "IELTS Prep",
		BatchStartDate: time.Now(),
		BatchEndDate:   time.Now().Add(90 * 24 * time.Hour),
		BatchStatus:    "active",
	}
	if err := db.Create(&batch).Error; err != nil {
		t.Fatalf("create batch: %v", err)
	}

	studentID := uuid.New()
	enrollment := enrollmentModel.BatchStudentModel{
		BatchStudentBatchID:      batch.BatchID,
		BatchStudentStudentID:    studentID,
		BatchStudentAccessExpiry: time.Now().Add(30 * 24 * time.Hour),
	}
	if err := db.Create(&enrollment).Error; err != nil {
		t.Fatalf("create enrollment: %v", err)
	}

	exam := examModel.ExamModel{
		ExamBatchID:         batch.BatchID,
		ExamTitle:           "Mock Test 1",
		ExamDurationMinutes: durationMinutes,
		ExamIsPublished:     true,
	}
	if err := db.Create(&exam).Error; err != nil {
		t.Fatalf("create exam: %v", err)
	}

	correct := []questionModel.Option{questionModel.OptionA, questionModel.OptionB, questionModel.OptionC}
	questions := make([]questionModel.QuestionModel, 0, 3)
	for i, opt := range correct {
		q := questionModel.QuestionModel{
			QuestionExamID:     exam.ExamID,
			QuestionText:       "soal",
			QuestionOptionA:    "a",
			QuestionOptionB:    "b",
			QuestionOptionC:    "c",
			QuestionOptionD:    "d",
			QuestionCorrect:    opt,
			QuestionMarks:      1,
			QuestionOrderIndex: i + 1,
		}
		if err := db.Create(&q).Error; err != nil {
			t.Fatalf("create question: %v", err)
		}
		questions = append(questions, q)
	}

	return fixture{db: db, studentID: studentID, exam: exam, questions: questions}
}

func TestStartAttemptCreatesThenResumes(t *testing.T) {
	f := seedExam(t, 60)

	first, err := StartAttempt(f.db, f.exam.ExamID, f.studentID)
	if err != nil {
		t.Fatalf("first start: %v", err)
	}
	if first.Resumed {
		t.Fatalf("first start marked as resumed")
	}

	second, err := StartAttempt(f.db, f.exam.ExamID, f.studentID)
	if err != nil {
		t.Fatalf("second start: %v", err)
	}
	if !second.Resumed {
		t.Fatalf("second start should resume")
	}
	if second.Attempt.ExamAttemptID != first.Attempt.ExamAttemptID {
		t.Fatalf("second start created a new attempt")
	}

	var count int64
	f.db.Model(&attemptModel.ExamAttemptModel{}).Count(&count)
	if count != 1 {
		t.Fatalf("attempt rows = %d, want 1", count)
	}
}

func TestStartAttemptDeadlineFromPersistedStart(t *testing.T) {
	f := seedExam(t, 60)

	first, err := StartAttempt(f.db, f.exam.ExamID, f.studentID)
	if err != nil {
		t.Fatalf("start: %v", err)
	}

	// start ulang tidak boleh menggeser deadline
	second, err := StartAttempt(f.db, f.exam.ExamID, f.studentID)
	if err != nil {
		t.Fatalf("restart: %v", err)
	}
	if !second.Deadline.Equal(first.Deadline) {
		t.Fatalf("deadline moved: %v -> %v", first.Deadline, second.Deadline)
	}
	if second.RemainingSeconds > first.RemainingSeconds {
		t.Fatalf("remaining grew on restart: %d -> %d", first.RemainingSeconds, second.RemainingSeconds)
	}
}

func TestStartAttemptRequiresPublishedExam(t *testing.T) {
	f := seedExam(t, 60)
	if err := f.db.Model(&examModel.ExamModel{}).
		Where("exam_id = ?", f.exam.ExamID).
		Update("exam_is_published", false).Error; err != nil {
		t.Fatalf("unpublish: %v", err)
	}

	if _, err := StartAttempt(f.db, f.exam.ExamID, f.studentID); !errors.Is(err, ErrExamNotPublished) {
		t.Fatalf("err = %v, want ErrExamNotPublished", err)
	}
}

func TestStartAttemptRequiresActiveEnrollment(t *testing.T) {
	f := seedExam(t, 60)
	outsider := uuid.New()

	if _, err := StartAttempt(f.db, f.exam.ExamID, outsider); !errors.Is(err, ErrNotEnrolled) {
		t.Fatalf("err = %v, want ErrNotEnrolled", err)
	}
}

func TestStartAttemptExpiredEnrollmentRejected(t *testing.T) {
	f := seedExam(t, 60)
	if err := f.db.Model(&enrollmentModel.BatchStudentModel{}).
		Where("batch_student_student_id = ?", f.studentID).
		Update("batch_student_access_expiry", time.Now().Add(-time.Hour)).Error; err != nil {
		t.Fatalf("expire enrollment: %v", err)
	}

	if _, err := StartAttempt(f.db, f.exam.ExamID, f.studentID); !errors.Is(err, ErrNotEnrolled) {
		t.Fatalf("err = %v, want ErrNotEnrolled", err)
	}
}

func TestRecordAnswerUpsertsAndOverwrites(t *testing.T) {
	f := seedExam(t, 60)
	started, err := StartAttempt(f.db, f.exam.ExamID, f.studentID)
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	attemptID := started.Attempt.ExamAttemptID
	q := f.questions[0]

	if err := RecordAnswer(f.db, attemptID, f.studentID, q.QuestionID, questionModel.OptionB); err != nil {
		t.Fatalf("first answer: %v", err)
	}
	// jawaban boleh diganti sebelum submit
	if err := RecordAnswer(f.db, attemptID, f.studentID, q.QuestionID, questionModel.OptionA); err != nil {
		t.Fatalf("overwrite answer: %v", err)
	}

	var attempt attemptModel.ExamAttemptModel
	if err := f.db.First(&attempt, "exam_attempt_id = ?", attemptID).Error; err != nil {
		t.Fatalf("reload: %v", err)
	}
	if got := attempt.ExamAttemptAnswers[q.QuestionID]; got != questionModel.OptionA {
		t.Fatalf("stored answer = %q, want A", got)
	}
	if len(attempt.ExamAttemptAnswers) != 1 {
		t.Fatalf("answer count = %d, want 1", len(attempt.ExamAttemptAnswers))
	}
}

func TestRecordAnswerRejectsForeignQuestion(t *testing.T) {
	f := seedExam(t, 60)
	started, err := StartAttempt(f.db, f.exam.ExamID, f.studentID)
	if err != nil {
		t.Fatalf("start: %v", err)
	}

	err = RecordAnswer(f.db, started.Attempt.ExamAttemptID, f.studentID, uuid.New(), questionModel.OptionA)
	if !errors.Is(err, ErrQuestionNotInExam) {
		t.Fatalf("err = %v, want ErrQuestionNotInExam", err)
	}
}

func TestRecordAnswerOwnershipEnforced(t *testing.T) {
	f := seedExam(t, 60)
	started, err := StartAttempt(f.db, f.exam.ExamID, f.studentID)
	if err != nil {
		t.Fatalf("start: %v", err)
	}

	err = RecordAnswer(f.db, started.Attempt.ExamAttemptID, uuid.New(), f.questions[0].QuestionID, questionModel.OptionA)
	if !errors.Is(err, ErrAttemptNotFound) {
		t.Fatalf("err = %v, want ErrAttemptNotFound", err)
	}
}

func TestSubmitAttemptScoresAndPersistsResult(t *testing.T) {
	f := seedExam(t, 60)
	started, err := StartAttempt(f.db, f.exam.ExamID, f.studentID)
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	attemptID := started.Attempt.ExamAttemptID

	// 1 benar, 1 salah, 1 kosong
	if err := RecordAnswer(f.db, attemptID, f.studentID, f.questions[0].QuestionID, questionModel.OptionA); err != nil {
		t.Fatalf("answer 1: %v", err)
	}
	if err := RecordAnswer(f.db, attemptID, f.studentID, f.questions[1].QuestionID, questionModel.OptionD); err != nil {
		t.Fatalf("answer 2: %v", err)
	}

	result, err := SubmitAttempt(f.db, attemptID, f.studentID)
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if result.ResultScore != 1 || result.ResultTotalMarks != 3 {
		t.Fatalf("score/total = %d/%d, want 1/3", result.ResultScore, result.ResultTotalMarks)
	}
	// passing default 40% dari 3 = 1 (integer), skor 1 berarti lulus
	if !result.ResultPassed {
		t.Fatalf("expected pass with score 1 vs default passing marks 1")
	}

	var attempt attemptModel.ExamAttemptModel
	if err := f.db.First(&attempt, "exam_attempt_id = ?", attemptID).Error; err != nil {
		t.Fatalf("reload: %v", err)
	}
	if !attempt.ExamAttemptIsSubmitted || attempt.ExamAttemptSubmittedAt == nil {
		t.Fatalf("attempt not flagged submitted")
	}
}

func TestSubmitAttemptExactlyOnce(t *testing.T) {
	f := seedExam(t, 60)
	started, err := StartAttempt(f.db, f.exam.ExamID, f.studentID)
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	attemptID := started.Attempt.ExamAttemptID

	first, err := SubmitAttempt(f.db, attemptID, f.studentID)
	if err != nil {
		t.Fatalf("first submit: %v", err)
	}

	second, err := SubmitAttempt(f.db, attemptID, f.studentID)
	if !errors.Is(err, ErrAlreadySubmitted) {
		t.Fatalf("second submit err = %v, want ErrAlreadySubmitted", err)
	}
	if second == nil || second.ResultID != first.ResultID {
		t.Fatalf("second submit should return the existing result")
	}

	var count int64
	f.db.Model(&resultModel.ResultModel{}).Where("result_attempt_id = ?", attemptID).Count(&count)
	if count != 1 {
		t.Fatalf("result rows = %d, want 1", count)
	}
}

func TestRecordAnswerAfterSubmitRejected(t *testing.T) {
	f := seedExam(t, 60)
	started, err := StartAttempt(f.db, f.exam.ExamID, f.studentID)
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	attemptID := started.Attempt.ExamAttemptID

	if _, err := SubmitAttempt(f.db, attemptID, f.studentID); err != nil {
		t.Fatalf("submit: %v", err)
	}
	err = RecordAnswer(f.db, attemptID, f.studentID, f.questions[0].QuestionID, questionModel.OptionA)
	if !errors.Is(err, ErrAlreadySubmitted) {
		t.Fatalf("err = %v, want ErrAlreadySubmitted", err)
	}
}

func TestStartAfterSubmitConflicts(t *testing.T) {
	f := seedExam(t, 60)
	started, err := StartAttempt(f.db, f.exam.ExamID, f.studentID)
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	if _, err := SubmitAttempt(f.db, started.Attempt.ExamAttemptID, f.studentID); err != nil {
		t.Fatalf("submit: %v", err)
	}

	if _, err := StartAttempt(f.db, f.exam.ExamID, f.studentID); !errors.Is(err, ErrAlreadySubmitted) {
		t.Fatalf("err = %v, want ErrAlreadySubmitted", err)
	}
}

func TestRecordAnswerPastDeadlineAutoSubmits(t *testing.T) {
	f := seedExam(t, 30)
	started, err := StartAttempt(f.db, f.exam.ExamID, f.studentID)
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	attemptID := started.Attempt.ExamAttemptID

	if err := RecordAnswer(f.db, attemptID, f.studentID, f.questions[0].QuestionID, questionModel.OptionA); err != nil {
		t.Fatalf("answer: %v", err)
	}

	// mundurkan started_at melewati durasi: deadline dihitung dari nilai
	// tersimpan, bukan dari jam pemanggil
	if err := f.db.Model(&attemptModel.ExamAttemptModel{}).
		Where("exam_attempt_id = ?", attemptID).
		Update("exam_attempt_started_at", time.Now().Add(-31*time.Minute)).Error; err != nil {
		t.Fatalf("backdate: %v", err)
	}

	err = RecordAnswer(f.db, attemptID, f.studentID, f.questions[1].QuestionID, questionModel.OptionB)
	if !errors.Is(err, ErrDeadlinePassed) {
		t.Fatalf("err = %v, want ErrDeadlinePassed", err)
	}

	// auto-submit: jawaban sebelum deadline tetap dinilai, yang telat tidak
	var result resultModel.ResultModel
	if err := f.db.First(&result, "result_attempt_id = ?", attemptID).Error; err != nil {
		t.Fatalf("result missing after auto-submit: %v", err)
	}
	if result.ResultScore != 1 {
		t.Fatalf("score = %d, want 1 (late answer must not count)", result.ResultScore)
	}
}

func TestSubmitAttemptExplicitPassingMarks(t *testing.T) {
	f := seedExam(t, 60)
	passing := 3
	if err := f.db.Model(&examModel.ExamModel{}).
		Where("exam_id = ?", f.exam.ExamID).
		Update("exam_passing_marks", passing).Error; err != nil {
		t.Fatalf("set passing marks: %v", err)
	}

	started, err := StartAttempt(f.db, f.exam.ExamID, f.studentID)
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	attemptID := started.Attempt.ExamAttemptID
	if err := RecordAnswer(f.db, attemptID, f.studentID, f.questions[0].QuestionID, questionModel.OptionA); err != nil {
		t.Fatalf("answer: %v", err)
	}

	result, err := SubmitAttempt(f.db, attemptID, f.studentID)
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if result.ResultPassed {
		t.Fatalf("score 1 vs passing 3 must not pass")
	}
}
