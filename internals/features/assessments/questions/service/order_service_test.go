package service

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	examModel "studyabroad_backend/internals/features/assessments/exams/model"
	"studyabroad_backend/internals/features/assessments/questions/model"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := "file:" + uuid.NewString() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&examModel.ExamModel{}, &model.QuestionModel{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func seedQuestions(t *testing.T, db *gorm.DB, orderIndexes ...int) (uuid.UUID, []model.QuestionModel) {
	t.Helper()
	exam := examModel.ExamModel{
		ExamBatchID:         uuid.New(),
		ExamTitle:           "Grammar Quiz",
		ExamDurationMinutes: 30,
	}
	if err := db.Create(&exam).Error; err != nil {
		t.Fatalf("create exam: %v", err)
	}

	questions := make([]model.QuestionModel, 0, len(orderIndexes))
	for _, idx := range orderIndexes {
		q := model.QuestionModel{
			QuestionExamID:     exam.ExamID,
			QuestionText:       "soal",
			QuestionOptionA:    "a",
			QuestionOptionB:    "b",
			QuestionOptionC:    "c",
			QuestionOptionD:    "d",
			QuestionCorrect:    model.OptionA,
			QuestionMarks:      1,
			QuestionOrderIndex: idx,
		}
		if err := db.Create(&q).Error; err != nil {
			t.Fatalf("create question: %v", err)
		}
		questions = append(questions, q)
	}
	return exam.ExamID, questions
}

func orderOf(t *testing.T, db *gorm.DB, questionID uuid.UUID) int {
	t.Helper()
	var q model.QuestionModel
	if err := db.First(&q, "question_id = ?", questionID).Error; err != nil {
		t.Fatalf("reload question: %v", err)
	}
	return q.QuestionOrderIndex
}

func TestNextOrderIndexAppendsAtEnd(t *testing.T) {
	db := openTestDB(t)
	examID, _ := seedQuestions(t, db, 1, 2, 3)

	next, err := NextOrderIndex(db, examID)
	if err != nil {
		t.Fatalf("next order: %v", err)
	}
	if next != 4 {
		t.Fatalf("next = %d, want 4", next)
	}
}

func TestNextOrderIndexEmptyExam(t *testing.T) {
	db := openTestDB(t)
	examID, _ := seedQuestions(t, db)

	next, err := NextOrderIndex(db, examID)
	if err != nil {
		t.Fatalf("next order: %v", err)
	}
	if next != 1 {
		t.Fatalf("next = %d, want 1", next)
	}
}

func TestMoveQuestionSwapsWithNeighbor(t *testing.T) {
	db := openTestDB(t)
	_, qs := seedQuestions(t, db, 1, 2, 3)

	if err := MoveQuestion(db, qs[1].QuestionID, "up"); err != nil {
		t.Fatalf("move up: %v", err)
	}
	if got := orderOf(t, db, qs[1].QuestionID); got != 1 {
		t.Fatalf("moved question order = %d, want 1", got)
	}
	if got := orderOf(t, db, qs[0].QuestionID); got != 2 {
		t.Fatalf("neighbor order = %d, want 2", got)
	}
	if got := orderOf(t, db, qs[2].QuestionID); got != 3 {
		t.Fatalf("untouched question order = %d, want 3", got)
	}
}

func TestMoveQuestionBoundaryNoOp(t *testing.T) {
	db := openTestDB(t)
	_, qs := seedQuestions(t, db, 1, 2)

	if err := MoveQuestion(db, qs[0].QuestionID, "up"); err != nil {
		t.Fatalf("move top up: %v", err)
	}
	if err := MoveQuestion(db, qs[1].QuestionID, "down"); err != nil {
		t.Fatalf("move bottom down: %v", err)
	}
	if got := orderOf(t, db, qs[0].QuestionID); got != 1 {
		t.Fatalf("top order = %d, want 1", got)
	}
	if got := orderOf(t, db, qs[1].QuestionID); got != 2 {
		t.Fatalf("bottom order = %d, want 2", got)
	}
}

func TestMoveQuestionNotFound(t *testing.T) {
	db := openTestDB(t)
	seedQuestions(t, db, 1)

	if err := MoveQuestion(db, uuid.New(), "up"); !errors.Is(err, ErrQuestionNotFound) {
		t.Fatalf("err = %v, want ErrQuestionNotFound", err)
	}
}

func TestRepairOrderIndexesRenumbersDuplicatesAndGaps(t *testing.T) {
	db := openTestDB(t)
	examID, qs := seedQuestions(t, db, 1, 1, 5)

	if err := RepairOrderIndexes(db, examID); err != nil {
		t.Fatalf("repair: %v", err)
	}

	var repaired []model.QuestionModel
	if err := db.
		Where("question_exam_id = ?", examID).
		Order("question_order_index ASC").
		Find(&repaired).Error; err != nil {
		t.Fatalf("reload: %v", err)
	}
	if len(repaired) != len(qs) {
		t.Fatalf("question count changed: %d -> %d", len(qs), len(repaired))
	}
	for i, q := range repaired {
		if q.QuestionOrderIndex != i+1 {
			t.Fatalf("order[%d] = %d, want %d", i, q.QuestionOrderIndex, i+1)
		}
	}
}

func TestRepairOrderIndexesLeavesCleanSequenceAlone(t *testing.T) {
	db := openTestDB(t)
	examID, qs := seedQuestions(t, db, 1, 2, 3)

	if err := RepairOrderIndexes(db, examID); err != nil {
		t.Fatalf("repair: %v", err)
	}
	for i, q := range qs {
		if got := orderOf(t, db, q.QuestionID); got != i+1 {
			t.Fatalf("order changed for clean sequence: %d -> %d", i+1, got)
		}
	}
}

func TestSyncExamTotalMarks(t *testing.T) {
	db := openTestDB(t)
	examID, qs := seedQuestions(t, db, 1, 2, 3)

	if err := db.Model(&model.QuestionModel{}).
		Where("question_id = ?", qs[2].QuestionID).
		Update("question_marks", 5).Error; err != nil {
		t.Fatalf("bump marks: %v", err)
	}
	if err := SyncExamTotalMarks(db, examID); err != nil {
		t.Fatalf("sync: %v", err)
	}

	var exam examModel.ExamModel
	if err := db.First(&exam, "exam_id = ?", examID).Error; err != nil {
		t.Fatalf("reload exam: %v", err)
	}
	if exam.ExamTotalMarks != 7 {
		t.Fatalf("total marks = %d, want 7", exam.ExamTotalMarks)
	}
}
