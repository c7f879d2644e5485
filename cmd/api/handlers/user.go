package handlers

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/protocol/consts"

	"vidtube.com/cmd/user/service"
	"vidtube.com/pkg/errno"
)

type RegisterParam struct {
	UserName string `form:"username"`
	Email    string `form:"email"`
	FullName string `form:"fullName"`
	Password string `form:"password"`
}

func Register(ctx context.Context, c *app.RequestContext) {
	var req RegisterParam
	if err := c.BindAndValidate(&req); err != nil {
		SendError(c, errno.ParamErr)
		return
	}
	avatarPath, err := stageUpload(c, "avatar", false)
	if err != nil {
		SendError(c, err)
		return
	}
	coverPath, err := stageUpload(c, "coverImage", false)
	if err != nil {
		removeStaged(avatarPath)
		SendError(c, err)
		return
	}
	defer removeStaged(avatarPath, coverPath)

	user, err := service.NewUserService(ctx).Register(&service.RegisterRequest{
		UserName:       req.UserName,
		Email:          req.Email,
		FullName:       req.FullName,
		Password:       req.Password,
		AvatarPath:     avatarPath,
		CoverImagePath: coverPath,
	})
	if err != nil {
		SendError(c, err)
		return
	}
	SendSuccess(c, int64(consts.StatusCreated), user, "User registered successfully")
}

type LoginParam struct {
	UserName string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func Login(ctx context.Context, c *app.RequestContext) {
	var req LoginParam
	if err := c.BindAndValidate(&req); err != nil {
		SendError(c, errno.ParamErr)
		return
	}
	identifier := req.UserName
	if identifier == "" {
		identifier = req.Email
	}
	result, err := service.NewUserService(ctx).Login(identifier, req.Password)
	if err != nil {
		SendError(c, err)
		return
	}
	SendResponse(c, nil, result, "User logged in successfully")
}

func Logout(ctx context.Context, c *app.RequestContext) {
	userId, err := ActingUserId(ctx, c)
	if err != nil {
		SendError(c, err)
		return
	}
	if err := service.NewUserService(ctx).Logout(userId); err != nil {
		SendError(c, err)
		return
	}
	SendResponse(c, nil, nil, "User logged out successfully")
}

type RefreshTokenParam struct {
	RefreshToken string `json:"refreshToken"`
}

func RefreshToken(ctx context.Context, c *app.RequestContext) {
	userId, err := ActingUserId(ctx, c)
	if err != nil {
		SendError(c, err)
		return
	}
	var req RefreshTokenParam
	if err := c.BindAndValidate(&req); err != nil {
		SendError(c, errno.ParamErr)
		return
	}
	access, refresh, err := service.NewUserService(ctx).RefreshTokens(userId, req.RefreshToken)
	if err != nil {
		SendError(c, err)
		return
	}
	data := map[string]string{"accessToken": access, "refreshToken": refresh}
	SendResponse(c, nil, data, "Access token refreshed")
}

type ChangePasswordParam struct {
	OldPassword string `json:"oldPassword"`
	NewPassword string `json:"newPassword"`
}

func ChangePassword(ctx context.Context, c *app.RequestContext) {
	userId, err := ActingUserId(ctx, c)
	if err != nil {
		SendError(c, err)
		return
	}
	var req ChangePasswordParam
	if err := c.BindAndValidate(&req); err != nil {
		SendError(c, errno.ParamErr)
		return
	}
	if err := service.NewUserService(ctx).ChangePassword(userId, req.OldPassword, req.NewPassword); err != nil {
		SendError(c, err)
		return
	}
	SendResponse(c, nil, nil, "Password changed successfully")
}

func CurrentUser(ctx context.Context, c *app.RequestContext) {
	userId, err := ActingUserId(ctx, c)
	if err != nil {
		SendError(c, err)
		return
	}
	user, err := service.NewUserService(ctx).CurrentUser(userId)
	if err != nil {
		SendError(c, err)
		return
	}
	SendResponse(c, nil, user, "Current user fetched successfully")
}

type UpdateAccountParam struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
}

func UpdateAccount(ctx context.Context, c *app.RequestContext) {
	userId, err := ActingUserId(ctx, c)
	if err != nil {
		SendError(c, err)
		return
	}
	var req UpdateAccountParam
	if err := c.BindAndValidate(&req); err != nil {
		SendError(c, errno.ParamErr)
		return
	}
	user, err := service.NewUserService(ctx).UpdateAccount(userId, req.FullName, req.Email)
	if err != nil {
		SendError(c, err)
		return
	}
	SendResponse(c, nil, user, "Account details updated successfully")
}

func UpdateAvatar(ctx context.Context, c *app.RequestContext) {
	userId, err := ActingUserId(ctx, c)
	if err != nil {
		SendError(c, err)
		return
	}
	path, err := stageUpload(c, "avatar", true)
	if err != nil {
		SendError(c, err)
		return
	}
	defer removeStaged(path)
	user, err := service.NewUserService(ctx).UpdateAvatar(userId, path)
	if err != nil {
		SendError(c, err)
		return
	}
	SendResponse(c, nil, user, "Avatar updated successfully")
}

func UpdateCoverImage(ctx context.Context, c *app.RequestContext) {
	userId, err := ActingUserId(ctx, c)
	if err != nil {
		SendError(c, err)
		return
	}
	path, err := stageUpload(c, "coverImage", true)
	if err != nil {
		SendError(c, err)
		return
	}
	defer removeStaged(path)
	user, err := service.NewUserService(ctx).UpdateCoverImage(userId, path)
	if err != nil {
		SendError(c, err)
		return
	}
	SendResponse(c, nil, user, "Cover image updated successfully")
}

func ChannelProfile(ctx context.Context, c *app.RequestContext) {
	userId, err := ActingUserId(ctx, c)
	if err != nil {
		SendError(c, err)
		return
	}
	profile, err := service.NewUserService(ctx).ChannelProfile(c.Param("username"), userId)
	if err != nil {
		SendError(c, err)
		return
	}
	SendResponse(c, nil, profile, "Channel profile fetched successfully")
}

func WatchHistory(ctx context.Context, c *app.RequestContext) {
	userId, err := ActingUserId(ctx, c)
	if err != nil {
		SendError(c, err)
		return
	}
	history, err := service.NewUserService(ctx).WatchHistory(userId)
	if err != nil {
		SendError(c, err)
		return
	}
	SendResponse(c, nil, history, "Watch history fetched successfully")
}
