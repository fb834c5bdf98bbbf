package errno

import (
	"errors"
	"fmt"

	"github.com/cloudwego/hertz/pkg/protocol/consts"
)

// ErrCode doubles as the HTTP status of the response envelope.
const (
	SuccessCode             = consts.StatusOK
	CreatedCode             = consts.StatusCreated
	ParamErrCode            = consts.StatusBadRequest
	AuthorizationFailedCode = consts.StatusUnauthorized
	ForbiddenCode           = consts.StatusForbidden
	NotFoundCode            = consts.StatusNotFound
	ConflictCode            = consts.StatusConflict
	TooManyRequestsCode     = consts.StatusTooManyRequests
	ServiceErrCode          = consts.StatusInternalServerError
)

type ErrNo struct {
	ErrCode int64
	ErrMsg  string
}

func (e ErrNo) Error() string {
	return fmt.Sprintf("err_code=%d, err_msg=%s", e.ErrCode, e.ErrMsg)
}

func NewErrNo(code int64, msg string) ErrNo {
	return ErrNo{code, msg}
}

func (e ErrNo) WithMessage(msg string) ErrNo {
	e.ErrMsg = msg
	return e
}

var (
	Success                = NewErrNo(SuccessCode, "Success")
	Created                = NewErrNo(CreatedCode, "Created")
	RequestErr             = NewErrNo(ParamErrCode, "Wrong Parameter has been given")
	AuthorizationFailedErr = NewErrNo(AuthorizationFailedCode, "Authorization failed")
	TokenInvalidErr        = NewErrNo(AuthorizationFailedCode, "Token is invalid or expired")
	ForbiddenErr           = NewErrNo(ForbiddenCode, "You are not allowed to modify this resource")
	NotFoundErr            = NewErrNo(NotFoundCode, "Resource not found")
	ConflictErr            = NewErrNo(ConflictCode, "Resource already exists")
	TooManyRequestsErr     = NewErrNo(TooManyRequestsCode, "Too many requests, please try again later")
	ServiceErr             = NewErrNo(ServiceErrCode, "Internal server error")
	UploadErr              = NewErrNo(ServiceErrCode, "Upload failed")
)

// ConvertErr convert error to Errno. Anything that is not an ErrNo becomes ServiceErr,
// so driver and dao text never reaches the client.
func ConvertErr(err error) ErrNo {
	if err == nil {
		return Success
	}
	Err := ErrNo{}
	if errors.As(err, &Err) {
		return Err
	}
	return ServiceErr
}
