package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/haghnazari/Havirkesht/internal/model/entity"
	"github.com/haghnazari/Havirkesht/internal/repository"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// UserService implements the operator account operations.
type UserService struct {
	repo  *repository.UserRepository
	roles *repository.RoleRepository
}

func NewUserService(repo *repository.UserRepository, roles *repository.RoleRepository) *UserService {
	return &UserService{repo: repo, roles: roles}
}

// CreateUserRequest carries the admin-created user payload.
type CreateUserRequest struct {
	Username    string  `json:"username" binding:"required,min=3,max=50"`
	Password    string  `json:"password" binding:"required,min=8"`
	Fullname    string  `json:"fullname" binding:"required,min=2,max=150"`
	Email       string  `json:"email" binding:"required,email"`
	PhoneNumber *string `json:"phone_number" binding:"omitempty,len=11,numeric"`
	RoleID      int64   `json:"role_id" binding:"required"`
}

// UpdateUserRequest is a partial update; nil fields keep their stored
// value. A non-nil password is re-hashed.
type UpdateUserRequest struct {
	Username    *string `json:"username" binding:"omitempty,min=3,max=50"`
	Password    *string `json:"password" binding:"omitempty,min=8"`
	Fullname    *string `json:"fullname" binding:"omitempty,min=2,max=150"`
	Email       *string `json:"email" binding:"omitempty,email"`
	PhoneNumber *string `json:"phone_number" binding:"omitempty,len=11,numeric"`
	RoleID      *int64  `json:"role_id"`
}

func (s *UserService) checkIdentity(ctx context.Context, username, email string, phone *string, excludeID int64) error {
	taken, err := s.repo.UsernameTaken(ctx, username, excludeID)
	if err != nil {
		return fmt.Errorf("check username: %w", err)
	}
	if taken {
		return repository.Conflictf("Username already exists")
	}

	taken, err = s.repo.EmailTaken(ctx, email, excludeID)
	if err != nil {
		return fmt.Errorf("check email: %w", err)
	}
	if taken {
		return repository.Conflictf("Email already exists")
	}

	if phone != nil {
		taken, err = s.repo.PhoneTaken(ctx, *phone, excludeID)
		if err != nil {
			return fmt.Errorf("check phone number: %w", err)
		}
		if taken {
			return repository.Conflictf("Phone number already exists")
		}
	}
	return nil
}

func (s *UserService) Create(ctx context.Context, req *CreateUserRequest) (*entity.User, error) {
	if err := s.checkIdentity(ctx, req.Username, req.Email, req.PhoneNumber, 0); err != nil {
		return nil, err
	}

	if _, err := s.roles.FindByID(ctx, req.RoleID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, repository.NotFoundf("Role not found")
		}
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &entity.User{
		Username:    req.Username,
		Password:    string(hash),
		Fullname:    req.Fullname,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		RoleID:      req.RoleID,
	}
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) Get(ctx context.Context, id int64) (*entity.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, repository.NotFoundf("User not found")
		}
		return nil, err
	}
	return user, nil
}

func (s *UserService) Update(ctx context.Context, id int64, req *UpdateUserRequest) (*entity.User, error) {
	user, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	username := user.Username
	if req.Username != nil {
		username = *req.Username
	}
	email := user.Email
	if req.Email != nil {
		email = *req.Email
	}
	phone := req.PhoneNumber
	if err := s.checkIdentity(ctx, username, email, phone, id); err != nil {
		return nil, err
	}

	if req.RoleID != nil {
		if _, err := s.roles.FindByID(ctx, *req.RoleID); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return nil, repository.NotFoundf("Role not found")
			}
			return nil, err
		}
		user.RoleID = *req.RoleID
	}

	user.Username = username
	user.Email = email
	if req.PhoneNumber != nil {
		user.PhoneNumber = req.PhoneNumber
	}
	if req.Fullname != nil {
		user.Fullname = *req.Fullname
	}
	if req.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
		user.Password = string(hash)
	}

	if err := s.repo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// SetDisabled flips the account lock. Disabled users keep their data but
// cannot log in.
func (s *UserService) SetDisabled(ctx context.Context, id int64, disabled bool) (*entity.User, error) {
	user, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	user.Disabled = disabled
	if err := s.repo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) List(ctx context.Context, q repository.ListQuery) (*repository.Page[entity.User], error) {
	return s.repo.List(ctx, q)
}

func (s *UserService) Delete(ctx context.Context, id int64) (string, error) {
	user, err := s.Get(ctx, id)
	if err != nil {
		return "", err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return "", err
	}
	return user.Username, nil
}

// SeedRoles inserts the fixed role set if missing. Role ids are stable so
// reruns are no-ops.
func SeedRoles(db *gorm.DB) error {
	roles := []entity.Role{
		{ID: entity.RoleAdmin, Name: "پیمانکار/ادمین", Scopes: entity.StringList{"admin", "contractor"}},
		{ID: entity.RoleDriver, Name: "راننده", Scopes: entity.StringList{"driver"}},
		{ID: entity.RoleFarmer, Name: "کشاورز", Scopes: entity.StringList{"farmer"}},
	}
	for i := range roles {
		var n int64
		if err := db.Model(&entity.Role{}).Where("id = ?", roles[i].ID).Count(&n).Error; err != nil {
			return fmt.Errorf("probe role %d: %w", roles[i].ID, err)
		}
		if n > 0 {
			continue
		}
		if err := db.Create(&roles[i]).Error; err != nil {
			return fmt.Errorf("seed role %d: %w", roles[i].ID, err)
		}
	}
	return nil
}

// EnsureAdmin creates the bootstrap admin account when no user exists yet.
// Credentials come from configuration; empty credentials skip the step.
func (s *UserService) EnsureAdmin(ctx context.Context, username, password, email string) error {
	if username == "" || password == "" {
		return nil
	}
	n, err := s.repo.Count(ctx)
	if err != nil {
		return fmt.Errorf("count users: %w", err)
	}
	if n > 0 {
		return nil
	}
	_, err = s.Create(ctx, &CreateUserRequest{
		Username: username,
		Password: password,
		Fullname: "Administrator",
		Email:    email,
		RoleID:   entity.RoleAdmin,
	})
	return err
}
