package auth

import (
	"net/http"
	"regexp"
	"time"

	"novelas-app/config"
	"novelas-app/database"
	"novelas-app/internal/domain/usuarios"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// bcryptCost is fixed; changing it only affects newly stored hashes.
const bcryptCost = 12

// tokenTTL bounds every session. There is no refresh flow — the client logs
// in again after expiry.
const tokenTTL = time.Hour

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

func isEmailValid(email string) bool {
	return emailPattern.MatchString(email)
}

// GenerateToken signs an HS256 token carrying the user id. Exported for the
// handler tests, which need tokens for arbitrary users.
func GenerateToken(userID uint, expiresAt time.Time) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":  userID,
		"exp": expiresAt.Unix(),
	})
	return token.SignedString([]byte(config.JWT_SECRET))
}

// Cadastrar handles POST /api/cadastrar.
func Cadastrar(c *gin.Context) {
	var input struct {
		Nome  string `json:"nome" binding:"required"`
		Email string `json:"email" binding:"required"`
		Senha string `json:"senha" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Campos obrigatórios ausentes"})
		return
	}
	if !isEmailValid(input.Email) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "E-mail inválido"})
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Senha), bcryptCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao criar usuário"})
		return
	}

	user := usuarios.Usuario{
		Name:         input.Nome,
		Email:        input.Email,
		PasswordHash: string(hashed),
	}

	// Duplicate email surfaces here as a unique-constraint violation. The
	// response stays generic either way.
	if err := database.DB.Create(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao criar usuário"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Usuário cadastrado com sucesso!"})
}

// Login handles POST /api/login.
func Login(c *gin.Context) {
	var input struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Campos obrigatórios ausentes"})
		return
	}

	var user usuarios.Usuario
	if err := database.DB.Where("email = ?", input.Email).First(&user).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Usuário não encontrado"})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Credenciais inválidas"})
		return
	}

	tokenString, err := GenerateToken(user.ID, time.Now().Add(tokenTTL))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro interno do servidor"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": tokenString})
}
