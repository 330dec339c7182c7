package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/lingoread/internal/domain"
	"github.com/heartmarshall/lingoread/internal/service/user"
)

type userService interface {
	Create(ctx context.Context, input user.CreateUserInput) (*domain.User, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	Update(ctx context.Context, id uuid.UUID, input user.UpdateUserInput) (*domain.User, error)
}

// UserHandler serves learner profile endpoints.
type UserHandler struct {
	users userService
	log   *slog.Logger
}

func NewUserHandler(users userService, logger *slog.Logger) *UserHandler {
	return &UserHandler{users: users, log: logger.With("handler", "user")}
}

type createUserRequest struct {
	Username       string  `json:"username" validate:"required,max=50"`
	NativeLanguage string  `json:"nativeLanguage" validate:"required"`
	CurrentLevel   *string `json:"currentLevel"`
}

type updateUserRequest struct {
	NativeLanguage *string   `json:"nativeLanguage"`
	CurrentLevel   *string   `json:"currentLevel"`
	StreakDays     *int      `json:"streakDays" validate:"omitempty,gte=0"`
	Achievements   *[]string `json:"achievements" validate:"omitempty,max=100"`
}

// Create handles POST /api/users.
func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createUserRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	level, err := parseLevel("currentLevel", req.CurrentLevel)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	u, err := h.users.Create(r.Context(), user.CreateUserInput{
		Username:       req.Username,
		NativeLanguage: *parseLanguage(&req.NativeLanguage),
		CurrentLevel:   level,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toUserResponse(u))
}

// Get handles GET /api/users/{id}.
func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	u, err := h.users.Get(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toUserResponse(u))
}

// GetByUsername handles GET /api/usernames/{username}.
func (h *UserHandler) GetByUsername(w http.ResponseWriter, r *http.Request) {
	u, err := h.users.GetByUsername(r.Context(), strings.TrimSpace(r.PathValue("username")))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toUserResponse(u))
}

// Update handles PATCH /api/users/{id}.
func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	var req updateUserRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	level, err := parseLevel("currentLevel", req.CurrentLevel)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	u, err := h.users.Update(r.Context(), id, user.UpdateUserInput{
		NativeLanguage: parseLanguage(req.NativeLanguage),
		CurrentLevel:   level,
		StreakDays:     req.StreakDays,
		Achievements:   req.Achievements,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toUserResponse(u))
}
