package model

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"studyabroad_backend/internals/constants"
)

// Validator instance
var validate = validator.New()

// UserModel merepresentasikan tabel users di database.
// Role hanya bisa berubah lewat endpoint admin, tidak pernah dari payload
// register/update profil.
type UserModel struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserName string    `gorm:"size:50;not null" json:"user_name" validate:"required,min=3,max=50"`
	Email    string    `gorm:"size:255;unique;not null" json:"email" validate:"required,email"`
	Password string    `gorm:"not null" json:"-" validate:"required,min=8"`
	Phone    string    `gorm:"size:20" json:"phone"`
	GoogleID *string   `gorm:"size:255;unique" json:"google_id,omitempty"`
	Role     string    `gorm:"type:varchar(20);not null;default:'student'" json:"role" validate:"omitempty,oneof=student admin"`
	IsActive bool      `gorm:"not null;default:true" json:"is_active"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (UserModel) TableName() string {
	return "users"
}

func (u *UserModel) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

// SetDefaultValues memastikan nilai default sebelum validasi
func (u *UserModel) SetDefaultValues() {
	if u.Role == "" {
		u.Role = constants.RoleStudent
	}
}

// Validate memeriksa apakah input sesuai aturan yang telah didefinisikan
func (u *UserModel) Validate() error {
	u.SetDefaultValues()

	if err := validate.Struct(u); err != nil {
		return formatValidationError(err)
	}
	return nil
}

func formatValidationError(err error) error {
	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	msg := ""
	for _, fieldErr := range validationErrs {
		switch fieldErr.Tag() {
		case "required":
			msg += fieldErr.Field() + " wajib diisi. "
		case "email":
			msg += "Format email tidak valid. "
		case "min":
			msg += fieldErr.Field() + " harus minimal " + fieldErr.Param() + " karakter. "
		case "max":
			msg += fieldErr.Field() + " harus kurang dari " + fieldErr.Param() + " karakter. "
		case "oneof":
			msg += fieldErr.Field() + " harus salah satu dari " + fieldErr.Param() + ". "
		default:
			msg += fieldErr.Field() + ": format tidak valid. "
		}
	}
	return errors.New(msg)
}
