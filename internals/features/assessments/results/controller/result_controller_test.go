package controller

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	examModel "studyabroad_backend/internals/features/assessments/exams/model"
	"studyabroad_backend/internals/features/assessments/results/model"
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
	if err := db.AutoMigrate(&examModel.ExamModel{}, &model.ResultModel{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

// newResultTestApp menanam user_id ke Locals sebagaimana AuthMiddleware,
// lalu mount route result student.
func newResultTestApp(db *gorm.DB, studentID uuid.UUID) *fiber.App {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("user_id", studentID)
		c.Locals("user_role", "student")
		return c.Next()
	})
	ctrl := NewResultController(db)
	app.Get("/results/me", ctrl.GetMyResults)
	app.Get("/results/exam/:examId/me", ctrl.GetMyResult)
	return app
}

func seedResult(t *testing.T, db *gorm.DB, studentID uuid.UUID, publishResult bool) examModel.ExamModel {
	t.Helper()
	exam := examModel.ExamModel{
		ExamBatchID:         uuid.New(),
		ExamTitle:           "Final Mock",
		ExamDurationMinutes: 60,
		ExamTotalMarks:      10,
		ExamIsPublished:     true,
		ExamPublishResult:   publishResult,
	}
	if err := db.Create(&exam).Error; err != nil {
		t.Fatalf("create exam: %v", err)
	}
	result := model.ResultModel{
		ResultAttemptID:  uuid.New(),
		ResultExamID:     exam.ExamID,
		ResultStudentID:  studentID,
		ResultScore:      7,
		ResultTotalMarks: 10,
		ResultPercentage: 70,
		ResultPassed:     true,
	}
	if err := db.Create(&result).Error; err != nil {
		t.Fatalf("create result: %v", err)
	}
	return exam
}

func TestGetMyResultPublished(t *testing.T) {
	db := openTestDB(t)
	studentID := uuid.New()
	exam := seedResult(t, db, studentID, true)
	app := newResultTestApp(db, studentID)

	resp, err := app.Test(httptest.NewRequest("GET", "/results/exam/"+exam.ExamID.String()+"/me", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
}

func TestGetMyResultUnpublishedMaskedAsNotFound(t *testing.T) {
	db := openTestDB(t)
	studentID := uuid.New()
	exam := seedResult(t, db, studentID, false)
	app := newResultTestApp(db, studentID)

	resp, err := app.Test(httptest.NewRequest("GET", "/results/exam/"+exam.ExamID.String()+"/me", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()
	// 404, bukan 403: keberadaan result tidak boleh bocor
	if resp.StatusCode != fiber.StatusNotFound {
		t.Fatalf("status = %d, want 404", resp.StatusCode)
	}
}

func TestGetMyResultForeignStudentMasked(t *testing.T) {
	db := openTestDB(t)
	owner := uuid.New()
	exam := seedResult(t, db, owner, true)

	app := newResultTestApp(db, uuid.New()) // bukan pemilik

	resp, err := app.Test(httptest.NewRequest("GET", "/results/exam/"+exam.ExamID.String()+"/me", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != fiber.StatusNotFound {
		t.Fatalf("status = %d, want 404", resp.StatusCode)
	}
}

func TestGetMyResultsExcludesGatedRows(t *testing.T) {
	db := openTestDB(t)
	studentID := uuid.New()
	seedResult(t, db, studentID, true)
	seedResult(t, db, studentID, false) // belum publish_result
	app := newResultTestApp(db, studentID)

	resp, err := app.Test(httptest.NewRequest("GET", "/results/me", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	raw, _ := io.ReadAll(resp.Body)
	var envelope struct {
		Data []json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(raw, &envelope); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if len(envelope.Data) != 1 {
		t.Fatalf("visible results = %d, want 1 (gated row must be excluded)", len(envelope.Data))
	}
}
