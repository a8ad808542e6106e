package service

import (
	"StorySphere/internal/api/dto"
	"StorySphere/internal/model"
	"StorySphere/internal/pkg/consts"
	"StorySphere/internal/pkg/security"
	"StorySphere/internal/pkg/util"
	"StorySphere/internal/repository"
	"context"
	"errors"
	"io"
	"strings"
	"time"

	"github.com/jinzhu/copier"
)

// ObjectStore 对象存储，上传后返回可公开访问的 URL
type ObjectStore interface {
	Put(ctx context.Context, prefix, ext string, reader io.Reader, size int64, contentType string) (string, error)
}

// TokenRevoker 令牌吊销名单
type TokenRevoker interface {
	Revoke(ctx context.Context, signature string, ttl time.Duration) error
}

type UserService interface {
	Register(ctx context.Context, req *dto.RegisterDTO) (*dto.AuthDTO, error)
	Login(ctx context.Context, req *dto.LoginDTO) (*dto.AuthDTO, error)
	Logout(ctx context.Context, token string) error
	GetUserInfo(ctx context.Context, userID uint64) (*dto.UserDTO, error)
	UpdateProfile(ctx context.Context, userID uint64, req *dto.UpdateProfileDTO) (*dto.UserDTO, error)
	UploadAvatar(ctx context.Context, userID uint64, file io.Reader) (*dto.UserDTO, error)
}

type UserServiceImpl struct {
	userRepo       repository.UserRepo
	userFollowRepo repository.UserFollowRepo
	objectStore    ObjectStore
	revoker        TokenRevoker
}

func NewUserService(
	userRepo repository.UserRepo,
	userFollowRepo repository.UserFollowRepo,
	objectStore ObjectStore,
	revoker TokenRevoker,
) UserService {
	return &UserServiceImpl{
		userRepo:       userRepo,
		userFollowRepo: userFollowRepo,
		objectStore:    objectStore,
		revoker:        revoker,
	}
}

// Register 邮箱转小写后唯一，用户名唯一
func (s *UserServiceImpl) Register(ctx context.Context, req *dto.RegisterDTO) (*dto.AuthDTO, error) {
	req.Username = strings.TrimSpace(req.Username)
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if req.Username == "" || req.Email == "" || req.Password == "" {
		return nil, ErrMissingFields
	}
	if err := util.ValidateDTO(req); err != nil {
		return nil, err
	}

	existing, err := s.userRepo.GetUserByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrUserExist
	}
	existing, err = s.userRepo.GetUserByUsername(ctx, req.Username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrUsernameExist
	}

	hash, err := security.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: hash,
		Role:         model.RoleUser,
	}
	if err = s.userRepo.CreateUser(ctx, user); err != nil {
		if repository.IsDuplicateError(err) {
			return nil, ErrUserExist
		}
		return nil, err
	}

	return &dto.AuthDTO{User: s.toUserDTO(user, nil, nil)}, nil
}

// Login 未注册邮箱返回 404，密码错误返回 401
func (s *UserServiceImpl) Login(ctx context.Context, req *dto.LoginDTO) (*dto.AuthDTO, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" || req.Password == "" {
		return nil, ErrMissingFields
	}

	user, err := s.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	if err = security.CheckPasswordHash(req.Password, user.PasswordHash); err != nil {
		if errors.Is(err, security.ErrInvalidCredentials) {
			return nil, ErrPasswordIncorrect
		}
		return nil, err
	}

	token, err := security.GenerateToken(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, err
	}

	return &dto.AuthDTO{Token: token, User: s.toUserDTO(user, nil, nil)}, nil
}

// Logout 吊销令牌直到其自然过期
func (s *UserServiceImpl) Logout(ctx context.Context, token string) error {
	claims, err := security.ValidateToken(token)
	if err != nil {
		return ErrTokenInvalid
	}
	signature, err := security.ExtractSignature(token)
	if err != nil {
		return ErrTokenInvalid
	}
	return s.revoker.Revoke(ctx, signature, time.Until(claims.ExpiresAt.Time))
}

// GetUserInfo 公开资料，附带粉丝与关注 ID
func (s *UserServiceImpl) GetUserInfo(ctx context.Context, userID uint64) (*dto.UserDTO, error) {
	user, err := s.userRepo.GetUserById(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return s.withFollowGraph(ctx, user)
}

// UpdateProfile 只应用非空字段
func (s *UserServiceImpl) UpdateProfile(ctx context.Context, userID uint64, req *dto.UpdateProfileDTO) (*dto.UserDTO, error) {
	if req.Username != nil {
		trimmed := strings.TrimSpace(*req.Username)
		req.Username = &trimmed
	}
	if err := util.ValidateDTO(req); err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetUserById(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	if req.Username != nil && *req.Username != "" && *req.Username != user.Username {
		other, err := s.userRepo.GetUserByUsername(ctx, *req.Username)
		if err != nil {
			return nil, err
		}
		if other != nil {
			return nil, ErrUsernameExist
		}
		user.Username = *req.Username
	}
	if req.Bio != nil && *req.Bio != "" {
		user.Bio = *req.Bio
	}
	if req.AvatarURL != nil && *req.AvatarURL != "" {
		user.AvatarURL = *req.AvatarURL
	}

	if err = s.userRepo.UpdateUserProfile(ctx, user); err != nil {
		if repository.IsDuplicateError(err) {
			return nil, ErrUsernameExist
		}
		return nil, err
	}
	return s.withFollowGraph(ctx, user)
}

// UploadAvatar 头像等比缩放到 1000x1000 以内后存入对象存储
func (s *UserServiceImpl) UploadAvatar(ctx context.Context, userID uint64, file io.Reader) (*dto.UserDTO, error) {
	user, err := s.userRepo.GetUserById(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	url, err := storeImage(ctx, s.objectStore, consts.AvatarObjectPrefix, file)
	if err != nil {
		return nil, err
	}

	user.AvatarURL = url
	if err = s.userRepo.UpdateUserProfile(ctx, user); err != nil {
		return nil, err
	}
	return s.withFollowGraph(ctx, user)
}

func (s *UserServiceImpl) withFollowGraph(ctx context.Context, user *model.User) (*dto.UserDTO, error) {
	followers, err := s.userFollowRepo.GetFollowerIDs(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	following, err := s.userFollowRepo.GetFollowingIDs(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	return s.toUserDTO(user, followers, following), nil
}

func (s *UserServiceImpl) toUserDTO(user *model.User, followers, following []uint64) *dto.UserDTO {
	res := &dto.UserDTO{}
	_ = copier.Copy(res, user)
	res.Followers = nonNilIDs(followers)
	res.Following = nonNilIDs(following)
	return res
}

func nonNilIDs(ids []uint64) []uint64 {
	if ids == nil {
		return []uint64{}
	}
	return ids
}

// storeImage 校验并缩放图片后上传，返回 URL
func storeImage(ctx context.Context, store ObjectStore, prefix string, file io.Reader) (string, error) {
	if store == nil {
		return "", UnExpectedError
	}
	img, err := util.FitImage(file)
	if err != nil {
		if errors.Is(err, util.ErrUnsupportedImage) {
			return "", ErrFileNotSupported
		}
		return "", err
	}
	return store.Put(ctx, prefix, img.Ext, img.Data, int64(img.Data.Len()), img.ContentType)
}
