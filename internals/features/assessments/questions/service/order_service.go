package service

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	examModel "studyabroad_backend/internals/features/assessments/exams/model"
	"studyabroad_backend/internals/features/assessments/questions/model"
)

var ErrQuestionNotFound = errors.New("question not found")

// NextOrderIndex: soal baru selalu ditempatkan di akhir urutan.
func NextOrderIndex(db *gorm.DB, examID uuid.UUID) (int, error) {
	var max int
	err := db.Model(&model.QuestionModel{}).
		Where("question_exam_id = ?", examID).
		Select("COALESCE(MAX(question_order_index), 0)").
		Scan(&max).Error
	if err != nil {
		return 0, err
	}
	return max + 1, nil
}

// MoveQuestion menukar order_index dengan soal tetangga dalam SATU transaksi,
// sehingga keunikan index tidak pernah rusak di tengah jalan. Di batas atas
// atau bawah urutan, pemindahan jadi no-op.
func MoveQuestion(db *gorm.DB, questionID uuid.UUID, direction string) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var q model.QuestionModel
		if err := tx.First(&q, "question_id = ?", questionID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrQuestionNotFound
			}
			return err
		}

		neighborQuery := tx.Model(&model.QuestionModel{}).
			Where("question_exam_id = ?", q.QuestionExamID)
		if direction == "up" {
			neighborQuery = neighborQuery.
				Where("question_order_index < ?", q.QuestionOrderIndex).
				Order("question_order_index DESC")
		} else {
			neighborQuery = neighborQuery.
				Where("question_order_index > ?", q.QuestionOrderIndex).
				Order("question_order_index ASC")
		}

		var neighbor model.QuestionModel
		if err := neighborQuery.First(&neighbor).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil // sudah paling atas/bawah
			}
			return err
		}

		a, b := q.QuestionOrderIndex, neighbor.QuestionOrderIndex
		if err := tx.Model(&model.QuestionModel{}).
			Where("question_id = ?", q.QuestionID).
			Update("question_order_index", b).Error; err != nil {
			return err
		}
		return tx.Model(&model.QuestionModel{}).
			Where("question_id = ?", neighbor.QuestionID).
			Update("question_order_index", a).Error
	})
}

// RepairOrderIndexes menomori ulang 1..n bila ditemukan duplikat atau gap
// (repair-on-read; sisa dari histori data yang pernah di-update non-atomik).
func RepairOrderIndexes(db *gorm.DB, examID uuid.UUID) error {
	var questions []model.QuestionModel
	if err := db.
		Where("question_exam_id = ?", examID).
		Order("question_order_index ASC, question_created_at ASC").
		Find(&questions).Error; err != nil {
		return err
	}
	if !orderNeedsRepair(questions) {
		return nil
	}

	return db.Transaction(func(tx *gorm.DB) error {
		for i, q := range questions {
			want := i + 1
			if q.QuestionOrderIndex == want {
				continue
			}
			if err := tx.Model(&model.QuestionModel{}).
				Where("question_id = ?", q.QuestionID).
				Update("question_order_index", want).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func orderNeedsRepair(questions []model.QuestionModel) bool {
	for i, q := range questions {
		if q.QuestionOrderIndex != i+1 {
			return true
		}
	}
	return false
}

// SyncExamTotalMarks menjaga exam_total_marks = Σ marks soal. Dipanggil
// setiap soal dibuat, diubah bobotnya, atau dihapus.
func SyncExamTotalMarks(db *gorm.DB, examID uuid.UUID) error {
	var total int
	if err := db.Model(&model.QuestionModel{}).
		Where("question_exam_id = ?", examID).
		Select("COALESCE(SUM(question_marks), 0)").
		Scan(&total).Error; err != nil {
		return err
	}
	return db.Model(&examModel.ExamModel{}).
		Where("exam_id = ?", examID).
		Update("exam_total_marks", total).Error
}
