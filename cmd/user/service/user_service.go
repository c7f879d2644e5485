package service

import (
	"context"
	"strings"
	"time"

	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/pkg/errors"

	"vidtube.com/cmd/model"
	"vidtube.com/dal/db"
	jwt "vidtube.com/pkg"
	"vidtube.com/pkg/cache"
	"vidtube.com/pkg/constants"
	"vidtube.com/pkg/errno"
	"vidtube.com/pkg/oss"
	"vidtube.com/pkg/utils"
)

// MediaStore is the slice of object storage the profile image flows need.
type MediaStore interface {
	Upload(ctx context.Context, localPath, folder string) (*oss.Object, error)
	Delete(ctx context.Context, key string) error
}

var mediaStore MediaStore = oss.Store{}

type UserService struct {
	ctx context.Context
}

func NewUserService(ctx context.Context) *UserService {
	return &UserService{ctx: ctx}
}

type RegisterRequest struct {
	UserName       string
	Email          string
	FullName       string
	Password       string
	AvatarPath     string
	CoverImagePath string
}

func (s *UserService) Register(req *RegisterRequest) (*model.User, error) {
	if err := validateRegistration(req); err != nil {
		return nil, err
	}
	exists, err := db.UserExists(s.ctx, req.UserName, req.Email)
	if err != nil {
		return nil, errors.WithMessage(err, "dal.UserExists failed")
	}
	if exists {
		return nil, errno.UserAlreadyExistErr
	}

	hashed, err := utils.Crypt(req.Password)
	if err != nil {
		return nil, errors.WithMessage(err, "password hashing failed")
	}

	now := time.Now().Format(constants.TimeFormat)
	user := &model.User{
		UserId:    utils.GenerateID(),
		UserName:  req.UserName,
		Email:     req.Email,
		FullName:  req.FullName,
		Password:  hashed,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if req.AvatarPath != "" {
		obj, err := mediaStore.Upload(s.ctx, req.AvatarPath, constants.AvatarFolder)
		if err != nil {
			return nil, errors.WithMessage(err, "avatar upload failed")
		}
		user.AvatarUrl, user.AvatarKey = obj.Url, obj.Key
	}
	if req.CoverImagePath != "" {
		obj, err := mediaStore.Upload(s.ctx, req.CoverImagePath, constants.CoverFolder)
		if err != nil {
			s.discard(user.AvatarKey)
			return nil, errors.WithMessage(err, "cover image upload failed")
		}
		user.CoverImageUrl, user.CoverImageKey = obj.Url, obj.Key
	}

	if err := db.CreateUser(s.ctx, user); err != nil {
		s.discard(user.AvatarKey, user.CoverImageKey)
		return nil, errors.WithMessage(err, "dal.CreateUser failed")
	}
	return user, nil
}

func validateRegistration(req *RegisterRequest) error {
	switch {
	case strings.TrimSpace(req.UserName) == "" || strings.TrimSpace(req.Email) == "" ||
		strings.TrimSpace(req.FullName) == "" || req.Password == "":
		return errno.ParamErr.WithMessage("All fields are required")
	case len(req.UserName) < constants.MinUsernameLen:
		return errno.ParamErr.WithMessage("Username must be at least 3 characters")
	case !utils.IsLowercase(req.UserName):
		return errno.ParamErr.WithMessage("Username must be lowercase")
	case !utils.IsValidEmail(req.Email):
		return errno.ParamErr.WithMessage("Invalid email address")
	case len(req.Password) < constants.MinPasswordLen:
		return errno.ParamErr.WithMessage("Password must be at least 8 characters")
	}
	return nil
}

type LoginResult struct {
	User         *model.User `json:"user"`
	AccessToken  string      `json:"accessToken"`
	RefreshToken string      `json:"refreshToken"`
}

// Login accepts username or email plus password and hands out a token pair.
// The refresh token is cached so it can be revoked on logout.
func (s *UserService) Login(identifier, password string) (*LoginResult, error) {
	if identifier == "" || password == "" {
		return nil, errno.ParamErr.WithMessage("Username or email is required")
	}
	user, err := db.GetUserByName(s.ctx, identifier)
	if db.IsRecordNotFound(err) {
		user, err = db.GetUserByEmail(s.ctx, identifier)
	}
	if err != nil {
		if db.IsRecordNotFound(err) {
			return nil, errno.NotFoundErr.WithMessage("User does not exist")
		}
		return nil, errors.WithMessage(err, "dal user lookup failed")
	}
	if !utils.VerifyPassword(password, user.Password) {
		return nil, errno.AuthorizationErr.WithMessage("Invalid user credentials")
	}

	access, refresh, err := jwt.GenerateTokens(user.UserId)
	if err != nil {
		return nil, errors.WithMessage(err, "token generation failed")
	}
	if err := cache.SetRefreshToken(s.ctx, user.UserId, refresh); err != nil {
		hlog.Errorf("failed to cache refresh token: %v", err)
	}
	return &LoginResult{User: user, AccessToken: access, RefreshToken: refresh}, nil
}

func (s *UserService) Logout(userId int64) error {
	if err := cache.DelRefreshToken(s.ctx, userId); err != nil {
		return errors.WithMessage(err, "failed to revoke refresh token")
	}
	return nil
}

// RefreshTokens rotates the pair after checking the presented refresh token
// is the one we issued last.
func (s *UserService) RefreshTokens(userId int64, presented string) (access, refresh string, err error) {
	cached, err := cache.GetRefreshToken(s.ctx, userId)
	if err != nil {
		return "", "", errors.WithMessage(err, "refresh token lookup failed")
	}
	if cached == "" || cached != presented {
		return "", "", errno.TokenInvailedErr.WithMessage("Refresh token is expired or used")
	}
	access, refresh, err = jwt.GenerateTokens(userId)
	if err != nil {
		return "", "", errors.WithMessage(err, "token generation failed")
	}
	if err := cache.SetRefreshToken(s.ctx, userId, refresh); err != nil {
		hlog.Errorf("failed to cache refresh token: %v", err)
	}
	return access, refresh, nil
}

func (s *UserService) ChangePassword(userId int64, oldPassword, newPassword string) error {
	if len(newPassword) < constants.MinPasswordLen {
		return errno.ParamErr.WithMessage("Password must be at least 8 characters")
	}
	user, err := s.mustGetUser(userId)
	if err != nil {
		return err
	}
	if !utils.VerifyPassword(oldPassword, user.Password) {
		return errno.AuthorizationErr.WithMessage("Invalid old password")
	}
	hashed, err := utils.Crypt(newPassword)
	if err != nil {
		return errors.WithMessage(err, "password hashing failed")
	}
	return db.UpdateUserPassword(s.ctx, userId, hashed)
}

func (s *UserService) CurrentUser(userId int64) (*model.User, error) {
	return s.mustGetUser(userId)
}

func (s *UserService) UpdateAccount(userId int64, fullName, email string) (*model.User, error) {
	if strings.TrimSpace(fullName) == "" || strings.TrimSpace(email) == "" {
		return nil, errno.ParamErr.WithMessage("All fields are required")
	}
	if !utils.IsValidEmail(email) {
		return nil, errno.ParamErr.WithMessage("Invalid email address")
	}
	user, err := s.mustGetUser(userId)
	if err != nil {
		return nil, err
	}
	if err := db.UpdateUserAccount(s.ctx, userId, fullName, email); err != nil {
		return nil, errors.WithMessage(err, "dal.UpdateUserAccount failed")
	}
	user.FullName = fullName
	user.Email = email
	return user, nil
}

// UpdateAvatar uploads the new image, commits the row and only then removes
// the previous object.
func (s *UserService) UpdateAvatar(userId int64, localPath string) (*model.User, error) {
	user, err := s.mustGetUser(userId)
	if err != nil {
		return nil, err
	}
	obj, err := mediaStore.Upload(s.ctx, localPath, constants.AvatarFolder)
	if err != nil {
		return nil, errors.WithMessage(err, "avatar upload failed")
	}
	if err := db.UpdateUserAvatar(s.ctx, userId, obj.Url, obj.Key); err != nil {
		s.discard(obj.Key)
		return nil, errors.WithMessage(err, "dal.UpdateUserAvatar failed")
	}
	s.discard(user.AvatarKey)
	user.AvatarUrl, user.AvatarKey = obj.Url, obj.Key
	return user, nil
}

func (s *UserService) UpdateCoverImage(userId int64, localPath string) (*model.User, error) {
	user, err := s.mustGetUser(userId)
	if err != nil {
		return nil, err
	}
	obj, err := mediaStore.Upload(s.ctx, localPath, constants.CoverFolder)
	if err != nil {
		return nil, errors.WithMessage(err, "cover image upload failed")
	}
	if err := db.UpdateUserCoverImage(s.ctx, userId, obj.Url, obj.Key); err != nil {
		s.discard(obj.Key)
		return nil, errors.WithMessage(err, "dal.UpdateUserCoverImage failed")
	}
	s.discard(user.CoverImageKey)
	user.CoverImageUrl, user.CoverImageKey = obj.Url, obj.Key
	return user, nil
}

func (s *UserService) ChannelProfile(username string, actingUserId int64) (*model.ChannelProfile, error) {
	if strings.TrimSpace(username) == "" {
		return nil, errno.ParamErr.WithMessage("Username is required")
	}
	profile, err := db.GetChannelProfile(s.ctx, username, actingUserId)
	if err != nil {
		if db.IsRecordNotFound(err) {
			return nil, errno.NotFoundErr.WithMessage("Channel does not exist")
		}
		return nil, errors.WithMessage(err, "dal.GetChannelProfile failed")
	}
	return profile, nil
}

func (s *UserService) WatchHistory(userId int64) ([]*model.WatchHistoryEntry, error) {
	entries, err := db.GetWatchHistory(s.ctx, userId)
	if err != nil {
		return nil, errors.WithMessage(err, "dal.GetWatchHistory failed")
	}
	return entries, nil
}

func (s *UserService) mustGetUser(userId int64) (*model.User, error) {
	user, err := db.GetUserById(s.ctx, userId)
	if err != nil {
		if db.IsRecordNotFound(err) {
			return nil, errno.NotFoundErr.WithMessage("User not found")
		}
		return nil, errors.WithMessage(err, "dal.GetUserById failed")
	}
	return user, nil
}

func (s *UserService) discard(keys ...string) {
	for _, key := range keys {
		if key == "" {
			continue
		}
		if err := mediaStore.Delete(s.ctx, key); err != nil {
			hlog.Errorf("failed to remove object %s: %v", key, err)
		}
	}
}
