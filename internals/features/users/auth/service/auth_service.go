package service

import (
	"errors"
	"log"
	"strings"
	"time"

	googleAuthIDTokenVerifier "github.com/futurenda/google-auth-id-token-verifier"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"studyabroad_backend/internals/configs"
	"studyabroad_backend/internals/constants"
	authHelper "studyabroad_backend/internals/features/users/auth/helper"
	authModel "studyabroad_backend/internals/features/users/auth/model"
	authRepo "studyabroad_backend/internals/features/users/auth/repository"
	userModel "studyabroad_backend/internals/features/users/user/model"
	helpers "studyabroad_backend/internals/helpers"
)

/* ==========================
   REGISTER
========================== */

func Register(db *gorm.DB, c *fiber.Ctx) error {
	var input struct {
		UserName string `json:"user_name"`
		Email    string `json:"email"`
		Password string `json:"password"`
		Phone    string `json:"phone"`
	}
	if err := c.BodyParser(&input); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := authHelper.ValidateRegisterInput(input.UserName, input.Email, input.Password); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	// Role selalu student saat register; eskalasi hanya lewat endpoint admin.
	user := userModel.UserModel{
		UserName: strings.TrimSpace(input.UserName),
		Email:    strings.ToLower(strings.TrimSpace(input.Email)),
		Password: input.Password,
		Phone:    strings.TrimSpace(input.Phone),
		Role:     constants.RoleStudent,
		IsActive: true,
	}
	if err := user.Validate(); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	passwordHash, err := authHelper.HashPassword(input.Password)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Password hashing failed")
	}
	user.Password = passwordHash

	if err := authRepo.CreateUser(db, &user); err != nil {
		if strings.Contains(err.Error(), "duplicate") || strings.Contains(err.Error(), "UNIQUE") {
			return helpers.JsonError(c, fiber.StatusConflict, "Email sudah terdaftar")
		}
		log.Println("[ERROR] Register gagal:", err)
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat akun")
	}

	return helpers.JsonCreated(c, "Registrasi berhasil", fiber.Map{
		"id":        user.ID,
		"user_name": user.UserName,
		"email":     user.Email,
		"role":      user.Role,
	})
}

/* ==========================
   LOGIN (email + password)
========================== */

func Login(db *gorm.DB, c *fiber.Ctx) error {
	var input struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&input); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid input format")
	}
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))
	if input.Email == "" || input.Password == "" {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Email dan password wajib diisi")
	}

	user, err := authRepo.FindUserByEmail(db, input.Email)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Email atau Password salah")
	}
	if !user.IsActive {
		return helpers.JsonError(c, fiber.StatusForbidden, "Akun Anda telah dinonaktifkan. Hubungi admin.")
	}
	if err := authHelper.ComparePassword(user.Password, input.Password); err != nil {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Email atau Password salah")
	}

	return issueTokens(c, db, *user)
}

/* ==========================
   LOGIN GOOGLE (ID token)
========================== */

func LoginGoogle(db *gorm.DB, c *fiber.Ctx) error {
	var input struct {
		IDToken string `json:"id_token"`
	}
	if err := c.BodyParser(&input); err != nil || strings.TrimSpace(input.IDToken) == "" {
		return helpers.JsonError(c, fiber.StatusBadRequest, "id_token wajib diisi")
	}
	if configs.GoogleClientID == "" {
		return helpers.JsonError(c, fiber.StatusServiceUnavailable, "Login Google belum dikonfigurasi")
	}

	v := googleAuthIDTokenVerifier.Verifier{}
	if err := v.VerifyIDToken(input.IDToken, []string{configs.GoogleClientID}); err != nil {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "ID token Google tidak valid")
	}
	claimSet, err := googleAuthIDTokenVerifier.Decode(input.IDToken)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Gagal membaca ID token")
	}

	email := strings.ToLower(strings.TrimSpace(claimSet.Email))
	if email == "" {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "ID token tanpa email")
	}

	user, err := authRepo.FindUserByEmail(db, email)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		// Auto-provision akun student baru dari identitas Google
		googleID := claimSet.Sub
		randomPass, herr := authHelper.HashPassword(googleID + time.Now().String())
		if herr != nil {
			return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat akun")
		}
		newUser := userModel.UserModel{
			UserName: strings.TrimSpace(claimSet.Name),
			Email:    email,
			Password: randomPass,
			GoogleID: &googleID,
			Role:     constants.RoleStudent,
			IsActive: true,
		}
		if newUser.UserName == "" {
			newUser.UserName = strings.Split(email, "@")[0]
		}
		if cerr := authRepo.CreateUser(db, &newUser); cerr != nil {
			log.Println("[ERROR] LoginGoogle create user:", cerr)
			return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat akun")
		}
		user = &newUser
	} else if err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}

	if !user.IsActive {
		return helpers.JsonError(c, fiber.StatusForbidden, "Akun Anda telah dinonaktifkan. Hubungi admin.")
	}
	return issueTokens(c, db, *user)
}

/* ==========================
   LOGOUT
========================== */

func Logout(db *gorm.DB, c *fiber.Ctx) error {
	// Blacklist access token yang sedang dipakai
	auth := strings.TrimSpace(c.Get("Authorization"))
	tokenString := ""
	if fields := strings.Fields(auth); len(fields) == 2 && strings.EqualFold(fields[0], "Bearer") {
		tokenString = fields[1]
	}
	if tokenString == "" {
		tokenString = c.Cookies("access_token")
	}

	if tokenString != "" {
		row := authModel.TokenBlacklist{
			Token:     tokenString,
			ExpiredAt: time.Now().Add(accessTTLDefault),
		}
		if err := db.Create(&row).Error; err != nil {
			log.Println("[ERROR] Gagal blacklist token:", err)
		}
	}

	// Cabut refresh token aktif milik sesi ini
	if refreshCookie := strings.TrimSpace(c.Cookies("refresh_token")); refreshCookie != "" {
		if refreshSecret, err := getRefreshSecret(); err == nil {
			h := computeRefreshHash(refreshCookie, refreshSecret)
			now := time.Now()
			_ = db.Model(&authModel.RefreshToken{}).
				Where("token_hash = ? AND revoked_at IS NULL", h).
				Update("revoked_at", &now).Error
		}
	}

	c.Cookie(&fiber.Cookie{Name: "access_token", Value: "", Expires: time.Now().Add(-time.Hour), HTTPOnly: true})
	c.Cookie(&fiber.Cookie{Name: "refresh_token", Value: "", Expires: time.Now().Add(-time.Hour), HTTPOnly: true})

	return helpers.JsonOK(c, "Logout berhasil", nil)
}
