package domain

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// User é um usuário do backoffice; o id é o uuid da tabela users
type User struct {
	ID           string     `json:"id"`
	Email        string     `json:"email"`
	Name         *string    `json:"name"`
	PasswordHash string     `json:"-"`
	ImageURL     *string    `json:"image_url"`
	CreatedAt    time.Time  `json:"created_at"`
	DeletedAt    *time.Time `json:"deleted_at,omitempty"`
}

// MetaBusinessAccount é a conexão de um usuário com o Meta. O token nunca sai da API.
type MetaBusinessAccount struct {
	ID             string     `json:"id"`
	UserID         string     `json:"user_id"`
	FacebookUserID string     `json:"facebook_user_id"`
	Name           *string    `json:"name"`
	PictureURL     *string    `json:"picture_url"`
	AccessToken    string     `json:"-"`
	TokenExpiresAt *time.Time `json:"token_expires_at"`
}

type Claims struct {
	UserID    string
	UserEmail string
	jwt.RegisteredClaims
}
