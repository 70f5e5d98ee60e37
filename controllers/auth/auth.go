package authController

import (
	"elimunova/config"
	"elimunova/database"
	"elimunova/middleware"
	"elimunova/models"
	"elimunova/utils"
	"errors"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

// RedirectForRole maps a resolved role to the landing path for that role.
// The server only reports the decision; navigation itself is the caller's job.
func RedirectForRole(role string) string {
	switch role {
	case models.RoleStudent:
		return "/student-dashboard"
	case models.RoleInstructor:
		return "/instructor-dashboard"
	default:
		return "/"
	}
}

func Signup(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedSignup").(*struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
		Role     string `json:"role"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	// Check if email already exists
	if err := db.Where("email = ? AND is_deleted = ?", reqData.Email, false).First(&models.User{}).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "An account with this email already exists!", nil)
	}

	// Hash Password
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(reqData.Password), config.AppConfig.SaltRound)
	if err != nil {
		log.Printf("Error hashing password: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process your request!", nil)
	}

	newUser := models.User{
		Name:     reqData.Name,
		Email:    reqData.Email,
		Password: string(hashedPassword),
	}

	// User and role record are created together; the role is immutable after this.
	tx := db.Begin()
	if err := tx.Create(&newUser).Error; err != nil {
		tx.Rollback()
		// A concurrent signup with the same email lands here via the unique index
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return middleware.JsonResponse(c, fiber.StatusConflict, false, "An account with this email already exists!", nil)
		}
		log.Printf("Error saving user to database: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Registration failed. Please try again.", nil)
	}
	userRole := models.UserRole{
		UserID: newUser.ID,
		Role:   reqData.Role,
	}
	if err := tx.Create(&userRole).Error; err != nil {
		tx.Rollback()
		log.Printf("Error saving user role: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Registration failed. Please try again.", nil)
	}
	tx.Commit()

	token, err := middleware.GenerateJWT(newUser.ID, newUser.Name, newUser.Email)
	if err != nil {
		log.Printf("Error generating token: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Registration succeeded but login failed. Please log in.", nil)
	}

	go func(user models.User) {
		if err := utils.SendWelcomeEmail(user.Email, user.Name); err != nil {
			log.Printf("Error sending welcome email to %s: %v", user.Email, err)
		}
	}(newUser)

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "User registered successfully.", fiber.Map{
		"user":     newUser,
		"role":     userRole.Role,
		"token":    token,
		"redirect": RedirectForRole(userRole.Role),
	})
}

func Login(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedLogin").(*struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var user models.User
	if err := db.Where("email = ? AND is_deleted = ?", reqData.Email, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid email or password!", nil)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(reqData.Password)); err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid email or password!", nil)
	}

	role, err := middleware.LookupRole(db, user.ID)
	if err != nil {
		log.Printf("Error fetching role for user %d: %v", user.ID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Login failed. Please try again.", nil)
	}

	user.LastLogin = time.Now()
	db.Save(&user)

	token, err := middleware.GenerateJWT(user.ID, user.Name, user.Email)
	if err != nil {
		log.Printf("Error generating token: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Login failed. Please try again.", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Logged in successfully.", fiber.Map{
		"user":     user,
		"role":     role,
		"token":    token,
		"redirect": RedirectForRole(role),
	})
}

// Me resolves the current user. Profile and role are two independent lookups
// run concurrently and merged only once both resolve; a missing role record
// comes back as role "" which every gate treats as a deny, not a default.
func Me(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	db := database.Database.Db

	var user models.User
	var role string

	g := new(errgroup.Group)
	g.Go(func() error {
		return db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error
	})
	g.Go(func() error {
		var err error
		role, err = middleware.LookupRole(db, userID)
		return err
	})
	if err := g.Wait(); err != nil {
		if err == gorm.ErrRecordNotFound {
			return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
		}
		log.Printf("Error fetching current user %d: %v", userID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch profile!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Profile fetched successfully.", fiber.Map{
		"user": user,
		"role": role,
	})
}
