package api

import (
	"context"
	"net/http"
)

type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
	Role  string `json:"role"`
}

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Phone    string `json:"phone"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type AuthAPI struct {
	client *Client
}

func NewAuthAPI(client *Client) *AuthAPI {
	return &AuthAPI{client: client}
}

func (a *AuthAPI) Register(ctx context.Context, req RegisterRequest) (*TokenPair, error) {
	var pair TokenPair
	err := a.client.do(ctx, "/api/auth/register", requestOptions{method: http.MethodPost, body: req}, &pair)
	if err != nil {
		return nil, err
	}
	return &pair, nil
}

func (a *AuthAPI) Login(ctx context.Context, req LoginRequest) (*TokenPair, error) {
	var pair TokenPair
	err := a.client.do(ctx, "/api/auth/login", requestOptions{method: http.MethodPost, body: req}, &pair)
	if err != nil {
		return nil, err
	}
	return &pair, nil
}

func (a *AuthAPI) Me(ctx context.Context, token string) (*User, error) {
	var user User
	err := a.client.do(ctx, "/api/auth/me", requestOptions{token: token}, &user)
	if err != nil {
		return nil, err
	}
	return &user, nil
}
