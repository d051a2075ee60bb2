package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	batchModel "studyabroad_backend/internals/features/learning/batches/model"
	"studyabroad_backend/internals/features/learning/enrollments/model"
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
	if err := db.AutoMigrate(&batchModel.BatchModel{}, &model.BatchStudentModel{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func enroll(t *testing.T, db *gorm.DB, studentID uuid.UUID, expiry time.Time) uuid.UUID {
	t.Helper()
	batch := batchModel.BatchModel{
		BatchName:      "TOEFL Prep",
		BatchStartDate: time.Now(),
		BatchEndDate:   time.Now().Add(60 * 24 * time.Hour),
		BatchStatus:    "active",
	}
	if err := db.Create(&batch).Error; err != nil {
		t.Fatalf("create batch: %v", err)
	}
	row := model.BatchStudentModel{
		BatchStudentBatchID:      batch.BatchID,
		BatchStudentStudentID:    studentID,
		BatchStudentAccessExpiry: expiry,
	}
	if err := db.Create(&row).Error; err != nil {
		t.Fatalf("create enrollment: %v", err)
	}
	return batch.BatchID
}

func TestHasActiveEnrollment(t *testing.T) {
	db := openTestDB(t)
	studentID := uuid.New()
	activeBatch := enroll(t, db, studentID, time.Now().Add(24*time.Hour))
	expiredBatch := enroll(t, db, studentID, time.Now().Add(-time.Minute))

	ok, err := HasActiveEnrollment(db, studentID, activeBatch)
	if err != nil || !ok {
		t.Fatalf("active enrollment: ok=%v err=%v, want true", ok, err)
	}

	// expiry sudah lewat berarti akses tertutup, meskipun barisnya masih ada
	ok, err = HasActiveEnrollment(db, studentID, expiredBatch)
	if err != nil || ok {
		t.Fatalf("expired enrollment: ok=%v err=%v, want false", ok, err)
	}

	ok, err = HasActiveEnrollment(db, uuid.New(), activeBatch)
	if err != nil || ok {
		t.Fatalf("stranger: ok=%v err=%v, want false", ok, err)
	}
}

func TestActiveBatchIDsExcludesExpired(t *testing.T) {
	db := openTestDB(t)
	studentID := uuid.New()
	activeBatch := enroll(t, db, studentID, time.Now().Add(24*time.Hour))
	enroll(t, db, studentID, time.Now().Add(-time.Hour))

	ids, err := ActiveBatchIDs(db, studentID)
	if err != nil {
		t.Fatalf("ActiveBatchIDs: %v", err)
	}
	if len(ids) != 1 || ids[0] != activeBatch {
		t.Fatalf("ids = %v, want [%s]", ids, activeBatch)
	}
}
