package service

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"studyabroad_backend/internals/features/learning/enrollments/model"
)

// HasActiveEnrollment: guard di lapisan data-access, dipakai semua fitur
// konten batch (video, live class, exam) sebelum melayani student.
func HasActiveEnrollment(db *gorm.DB, studentID, batchID uuid.UUID) (bool, error) {
	var count int64
	err := db.Model(&model.BatchStudentModel{}).
		Where("batch_student_student_id = ? AND batch_student_batch_id = ? AND batch_student_access_expiry > ?",
			studentID, batchID, time.Now()).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// ActiveBatchIDs mengembalikan batch yang masih bisa diakses student.
func ActiveBatchIDs(db *gorm.DB, studentID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := db.Model(&model.BatchStudentModel{}).
		Where("batch_student_student_id = ? AND batch_student_access_expiry > ?", studentID, time.Now()).
		Pluck("batch_student_batch_id", &ids).Error
	return ids, err
}
