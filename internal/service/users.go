package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"golang.org/x/crypto/bcrypt"

	"github.com/ANIKETSHETTY47/smart-climate-monitoring-system/internal/domain"
)

const (
	ActionUserRegistered = "USER_REGISTERED"
	ActionUserLogin      = "USER_LOGIN"
	ActionUserBlocked    = "USER_BLOCKED"
	ActionUserUnblocked  = "USER_UNBLOCKED"
	ActionUserUpdated    = "USER_UPDATED"
)

type UserService struct {
	base
}

// Create registers a user. The password is stored as a bcrypt hash.
func (s *UserService) Create(ctx context.Context, in domain.UserCreate) (domain.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return domain.User{}, fmt.Errorf("failed to hash password: %w", err)
	}

	u := domain.User{
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: string(hash),
		Role:         in.Role,
		IsActive:     true,
		CreatedAt:    s.now(),
		Homes:        []domain.Home{},
	}
	if u.Role == "" {
		u.Role = domain.RoleUser
	}

	err = s.store.InTx(ctx, func(tx *sqlx.Tx) error {
		r := s.repos.WithTx(tx)
		if err := r.CreateUser(ctx, &u); err != nil {
			return fmt.Errorf("create user: %w", err)
		}
		return s.audit(ctx, r, u.ID, ActionUserRegistered, "")
	})
	if err != nil {
		return domain.User{}, err
	}
	return u, nil
}

// Get returns the user with the homes they own.
func (s *UserService) Get(ctx context.Context, id int64) (domain.User, error) {
	u, err := s.repos.GetUser(ctx, id)
	if err != nil {
		return domain.User{}, err
	}
	u.Homes, err = s.repos.ListHomesByOwner(ctx, id)
	if err != nil {
		return domain.User{}, fmt.Errorf("list homes: %w", err)
	}
	return u, nil
}

// Login checks credentials. It issues no token; callers get the user back.
func (s *UserService) Login(ctx context.Context, in domain.LoginRequest) (domain.User, error) {
	u, err := s.repos.GetUserByUsername(ctx, in.Username)
	if errors.Is(err, domain.ErrNotFound) {
		return domain.User{}, domain.ErrInvalidCredentials
	}
	if err != nil {
		return domain.User{}, err
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(in.Password)) != nil {
		return domain.User{}, domain.ErrInvalidCredentials
	}
	if u.IsBlocked {
		return domain.User{}, fmt.Errorf("user %d is blocked: %w", u.ID, domain.ErrForbidden)
	}
	if err := s.audit(ctx, s.repos, u.ID, ActionUserLogin, ""); err != nil {
		return domain.User{}, err
	}
	return s.Get(ctx, u.ID)
}

// SetBlocked blocks or unblocks a user on behalf of the admin actorID.
func (s *UserService) SetBlocked(ctx context.Context, actorID, userID int64, blocked bool) (domain.User, error) {
	action := ActionUserUnblocked
	if blocked {
		action = ActionUserBlocked
	}
	return s.update(ctx, actorID, userID, action, func(u *domain.User) {
		u.IsBlocked = blocked
	})
}

// Update applies a partial role/blocked change on behalf of the admin actorID.
func (s *UserService) Update(ctx context.Context, actorID, userID int64, in domain.UserUpdate) (domain.User, error) {
	return s.update(ctx, actorID, userID, ActionUserUpdated, func(u *domain.User) {
		if in.IsBlocked != nil {
			u.IsBlocked = *in.IsBlocked
		}
		if in.Role != nil {
			u.Role = *in.Role
		}
	})
}

func (s *UserService) update(ctx context.Context, actorID, userID int64, action string, apply func(*domain.User)) (domain.User, error) {
	var u domain.User
	err := s.store.InTx(ctx, func(tx *sqlx.Tx) error {
		r := s.repos.WithTx(tx)
		var err error
		if u, err = r.GetUser(ctx, userID); err != nil {
			return err
		}
		apply(&u)
		if err := r.UpdateUserAccess(ctx, u); err != nil {
			return fmt.Errorf("update user: %w", err)
		}
		details := fmt.Sprintf("user_id=%d role=%s is_blocked=%t", u.ID, u.Role, u.IsBlocked)
		return s.audit(ctx, r, actorID, action, details)
	})
	if err != nil {
		return domain.User{}, err
	}
	return s.Get(ctx, userID)
}
