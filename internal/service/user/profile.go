package user

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/heartmarshall/lingoread/internal/domain"
)

// Create registers a new learner. The level defaults to A1.
// Returns ErrAlreadyExists if the username is taken.
func (s *Service) Create(ctx context.Context, input CreateUserInput) (*domain.User, error) {
	// Step 1: Validate input
	if err := input.Validate(); err != nil {
		return nil, err
	}

	level := domain.LevelA1
	if input.CurrentLevel != nil {
		level = *input.CurrentLevel
	}

	// Step 2: Insert
	user, err := s.users.Create(ctx, &domain.User{
		Username:       strings.TrimSpace(input.Username),
		NativeLanguage: input.NativeLanguage,
		CurrentLevel:   level,
		Achievements:   []string{},
	})
	if err != nil {
		return nil, fmt.Errorf("user.Create: %w", err)
	}

	s.log.InfoContext(ctx, "user created",
		slog.String("user_id", user.ID.String()),
		slog.String("native_language", user.NativeLanguage.String()))

	return user, nil
}

// Get returns a user by ID.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("user.Get: %w", err)
	}
	return user, nil
}

// GetByUsername returns a user by username.
func (s *Service) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, domain.NewValidationError("username", "required")
	}

	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("user.GetByUsername: %w", err)
	}
	return user, nil
}

// Update changes the explicitly set fields of a user. Aggregate counters
// are not updatable here; they change only when progress is recorded.
func (s *Service) Update(ctx context.Context, id uuid.UUID, input UpdateUserInput) (*domain.User, error) {
	// Step 1: Validate input
	if err := input.Validate(); err != nil {
		return nil, err
	}

	params := domain.UserUpdateParams{
		NativeLanguage: input.NativeLanguage,
		CurrentLevel:   input.CurrentLevel,
		StreakDays:     input.StreakDays,
	}
	if input.Achievements != nil {
		achievements := domain.NormalizeWordList(*input.Achievements)
		params.Achievements = &achievements
	}

	// Step 2: Nothing to change is a plain read
	if params.IsEmpty() {
		return s.Get(ctx, id)
	}

	// Step 3: Update
	user, err := s.users.Update(ctx, id, params)
	if err != nil {
		return nil, fmt.Errorf("user.Update: %w", err)
	}

	s.log.InfoContext(ctx, "user updated", slog.String("user_id", id.String()))

	return user, nil
}
