package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"users-backend/internal/dto"
	"users-backend/internal/models"
	"users-backend/internal/services"
	"users-backend/utils/response"

	"github.com/go-chi/chi/v5"
)

type UserHandler struct {
	service *services.UserService
}

func NewUserHandler(service *services.UserService) *UserHandler {
	return &UserHandler{service: service}
}

func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, err := h.service.Register(r.Context(), &req)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, dto.UserResponse{
		Message: "User registered successfully",
		User:    dto.NewUserProjection(user),
	})
}

func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, accessToken, err := h.service.Login(r.Context(), &req)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, dto.LoginUserResponse{
		Message:     "User authenticated successfully",
		User:        user,
		AccessToken: accessToken,
	})
}

func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.service.ListUsers(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}

	projections := make([]dto.UserProjection, 0, len(users))
	for i := range users {
		projections = append(projections, dto.NewUserProjection(&users[i]))
	}

	response.JSON(w, http.StatusOK, dto.UsersResponse{
		Message: "Users retrieved successfully",
		Users:   projections,
	})
}

func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	user, err := h.service.GetUser(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, err)
		return
	}

	h.writeUser(w, "User retrieved successfully", user)
}

func (h *UserHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	user, err := h.service.DeleteUser(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, err)
		return
	}

	h.writeUser(w, "User deleted successfully", user)
}

func (h *UserHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	var req dto.UpdateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, err := h.service.UpdateUser(r.Context(), chi.URLParam(r, "id"), &req)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	h.writeUser(w, "User updated successfully", user)
}

func (h *UserHandler) writeUser(w http.ResponseWriter, message string, user *models.User) {
	response.JSON(w, http.StatusOK, dto.UserResponse{
		Message: message,
		User:    dto.NewUserProjection(user),
	})
}

func writeServiceError(w http.ResponseWriter, err error) {
	var validationErr *dto.ValidationError

	switch {
	case errors.As(err, &validationErr):
		response.Error(w, http.StatusBadRequest, validationErr.Message)
	case errors.Is(err, services.ErrUserExists),
		errors.Is(err, services.ErrEmailTaken),
		errors.Is(err, services.ErrEmptyUpdate):
		response.Error(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrInvalidCredentials):
		response.Error(w, http.StatusUnauthorized, err.Error())
	case errors.Is(err, services.ErrUserNotFound),
		errors.Is(err, services.ErrNoUsers):
		response.Error(w, http.StatusNotFound, err.Error())
	default:
		response.Error(w, http.StatusInternalServerError, err.Error())
	}
}
