package errno

import (
	"errors"
	"fmt"

	"github.com/cloudwego/hertz/pkg/protocol/consts"
)

// ErrNo carries the HTTP status code mirrored into the response envelope.
type ErrNo struct {
	ErrCode int64
	ErrMsg  string
}

func (e ErrNo) Error() string {
	return fmt.Sprintf("err_code=%d, err_msg=%s", e.ErrCode, e.ErrMsg)
}

func NewErrNo(code int64, msg string) ErrNo {
	return ErrNo{ErrCode: code, ErrMsg: msg}
}

func (e ErrNo) WithMessage(msg string) ErrNo {
	e.ErrMsg = msg
	return e
}

var (
	Success             = NewErrNo(int64(consts.StatusOK), "Success")
	ParamErr            = NewErrNo(int64(consts.StatusBadRequest), "Invalid request parameter")
	AuthorizationErr    = NewErrNo(int64(consts.StatusUnauthorized), "Authorization failed")
	TokenInvailedErr    = NewErrNo(int64(consts.StatusUnauthorized), "Token is invalid")
	PermissionErr       = NewErrNo(int64(consts.StatusForbidden), "Permission denied")
	NotFoundErr         = NewErrNo(int64(consts.StatusNotFound), "Record not found")
	ServiceErr          = NewErrNo(int64(consts.StatusInternalServerError), "Service internal error")
	UserAlreadyExistErr = NewErrNo(int64(consts.StatusBadRequest), "User already exists")
)

// ConvertErr maps any error onto an ErrNo. Errors produced by this package
// (possibly wrapped by github.com/pkg/errors) keep their code; anything else
// becomes ServiceErr carrying the original message.
func ConvertErr(err error) ErrNo {
	Err := ErrNo{}
	if errors.As(err, &Err) {
		return Err
	}
	s := ServiceErr
	if err != nil {
		s.ErrMsg = err.Error()
	}
	return s
}
