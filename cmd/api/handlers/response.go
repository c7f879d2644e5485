package handlers

import (
	"context"
	"os"
	"path/filepath"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
	"github.com/google/uuid"

	jwt "vidtube.com/pkg"
	"vidtube.com/pkg/errno"
	"vidtube.com/pkg/utils"
)

// Response is the success envelope every endpoint returns.
type Response struct {
	StatusCode int64       `json:"statusCode"`
	Data       interface{} `json:"data"`
	Message    string      `json:"message"`
	Success    bool        `json:"success"`
}

// ErrorResponse mirrors Response for the failure path.
type ErrorResponse struct {
	StatusCode int64    `json:"statusCode"`
	Message    string   `json:"message"`
	Errors     []string `json:"errors"`
	Success    bool     `json:"success"`
}

func SendSuccess(c *app.RequestContext, statusCode int64, data interface{}, message string) {
	c.JSON(int(statusCode), Response{
		StatusCode: statusCode,
		Data:       data,
		Message:    message,
		Success:    true,
	})
}

// SendError maps the error onto the envelope. The errno code doubles as the
// HTTP status.
func SendError(c *app.RequestContext, err error) {
	e := errno.ConvertErr(err)
	c.JSON(int(e.ErrCode), ErrorResponse{
		StatusCode: e.ErrCode,
		Message:    e.ErrMsg,
		Errors:     []string{},
		Success:    false,
	})
}

// SendResponse is the two-arm shortcut: error wins, otherwise a plain 200
// with data.
func SendResponse(c *app.RequestContext, err error, data interface{}, message string) {
	if err != nil {
		SendError(c, err)
		return
	}
	SendSuccess(c, int64(consts.StatusOK), data, message)
}

// ActingUserId pulls the authenticated user id the jwt middleware stored on
// the request.
func ActingUserId(ctx context.Context, c *app.RequestContext) (int64, error) {
	payload, err := jwt.ConvertJWTPayloadToString(ctx, c)
	if err != nil {
		return 0, errno.AuthorizationErr
	}
	userId := utils.Transfer(payload)
	if userId <= 0 {
		return 0, errno.AuthorizationErr
	}
	return userId, nil
}

func PathInt64(c *app.RequestContext, name string) (int64, error) {
	id, err := utils.ConvertStringToInt64(c.Param(name))
	if err != nil || id <= 0 {
		return 0, errno.ParamErr.WithMessage("Invalid " + name)
	}
	return id, nil
}

// QueryInt64 parses a numeric query value and falls back to def only when the
// parameter is absent, so an explicit "0" still reaches the service.
func QueryInt64(raw string, def int64) (int64, error) {
	if raw == "" {
		return def, nil
	}
	n, err := utils.ConvertStringToInt64(raw)
	if err != nil {
		return 0, errno.ParamErr.WithMessage("Invalid query parameter")
	}
	return n, nil
}

// stageUpload copies a multipart file to a temp path so services work on
// local files. Returns an empty path when the field is absent and required
// is false.
func stageUpload(c *app.RequestContext, field string, required bool) (string, error) {
	file, err := c.FormFile(field)
	if err != nil {
		if !required {
			return "", nil
		}
		return "", errno.ParamErr.WithMessage(field + " file is required")
	}
	path := filepath.Join(os.TempDir(), uuid.NewString()+filepath.Ext(file.Filename))
	if err := c.SaveUploadedFile(file, path); err != nil {
		return "", errno.ServiceErr.WithMessage("failed to save uploaded file")
	}
	return path, nil
}

func removeStaged(paths ...string) {
	for _, p := range paths {
		if p != "" {
			os.Remove(p)
		}
	}
}
