package dto

import authdomain "contactbook-backend/internal/auth/domain"

type SignupRequest struct {
	Username string `json:"username" binding:"required,max=150"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type RequestEmailRequest struct {
	Email string `json:"email" binding:"required,email"`
}

type SignupResponse struct {
	User   *authdomain.User `json:"user"`
	Detail string           `json:"detail"`
}

type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
}
