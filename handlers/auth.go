package handlers

import (
	"fmt"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"travel-webapp/config"
	"travel-webapp/errors"
	"travel-webapp/model"
)

// The demo account is the only credential the service knows.
var demoUser = struct {
	Id        string
	Email     string
	FirstName string
	LastName  string
}{
	Id:        "1",
	Email:     "user@example.com",
	FirstName: "John",
	LastName:  "Doe",
}

// demoPasswordHash is derived once at startup so signin exercises the same
// bcrypt compare a real user table would.
var demoPasswordHash []byte

func init() {
	demoPasswordHash, _ = bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
}

func isPasswordHashCorrect(dbHash []byte, pass string) bool {
	err := bcrypt.CompareHashAndPassword(dbHash, []byte(pass))
	return err == nil
}

func (h *Handler) SignIn(c *fiber.Ctx) error {
	type Credentials struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	creds := new(Credentials)
	if jsonErr := c.BodyParser(creds); jsonErr != nil {
		return errors.RaiseBadRequestError(c, fmt.Sprintf("unacceptable credentials: %v", jsonErr))
	}

	if creds.Email == "" || creds.Password == "" {
		return errors.RaiseBadRequestError(c, "email and password are required")
	}

	if creds.Email != demoUser.Email || !isPasswordHashCorrect(demoPasswordHash, creds.Password) {
		return errors.RaiseUnauthorizedError(c, "invalid credentials")
	}

	user := h.Store.UpsertUser(model.User{
		Id:        demoUser.Id,
		Email:     demoUser.Email,
		FirstName: demoUser.FirstName,
		LastName:  demoUser.LastName,
	})

	token := jwt.New(jwt.SigningMethodHS256)
	claims := token.Claims.(jwt.MapClaims)
	claims["sub"] = user.Id
	claims["email"] = user.Email
	claims["firstName"] = user.FirstName
	claims["lastName"] = user.LastName
	claims["exp"] = time.Now().Add(time.Hour * 8).Unix()

	sign, envErr := config.GetSecret("SIGN")
	if envErr != nil {
		log.Print(envErr)
		return errors.RaiseInternalServerError(c, "sign in failed")
	}

	t, signErr := token.SignedString([]byte(sign))
	if signErr != nil {
		return errors.RaiseInternalServerError(c, "sign in failed")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"user": fiber.Map{
			"id":        user.Id,
			"email":     user.Email,
			"firstName": user.FirstName,
			"lastName":  user.LastName,
		},
		"token": t,
	})
}

// SignUp acknowledges a registration without persisting it. The password
// still goes through the bcrypt path so malformed input surfaces here and
// never in a log line.
func (h *Handler) SignUp(c *fiber.Ctx) error {
	type SignUpInput struct {
		FirstName string `json:"firstName"`
		LastName  string `json:"lastName"`
		Email     string `json:"email"`
		Phone     string `json:"phone"`
		Password  string `json:"password"`
	}

	input := new(SignUpInput)
	if jsonErr := c.BodyParser(input); jsonErr != nil {
		return errors.RaiseBadRequestError(c, fmt.Sprintf("unacceptable signup parameters: %v", jsonErr))
	}

	if input.FirstName == "" || input.LastName == "" || input.Email == "" || input.Password == "" {
		return errors.RaiseBadRequestError(c, "missing required fields")
	}

	if _, hashErr := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost); hashErr != nil {
		return errors.RaiseInternalServerError(c, "sign up failed")
	}

	log.Printf("new user registered: id=%v email=%v name=%v %v",
		uuid.NewString(), input.Email, input.FirstName, input.LastName)

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Account created successfully",
	})
}
