package errno

import (
	"errors"
	"fmt"
)

const (
	SuccessCode             = 0
	ServiceErrCode          = 10001
	ParamErrCode            = 10002
	NotFoundErrCode         = 10003
	AuthorizationFailedCode = 10004
	UserAlreadyExistCode    = 10005
	RangeUnsatisfiableCode  = 10006
	StorageErrCode          = 10007
)

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
	Success                = NewErrNo(SuccessCode, "Success")
	ServiceErr             = NewErrNo(ServiceErrCode, "Service internal error")
	ParamErr               = NewErrNo(ParamErrCode, "Wrong parameter has been given")
	NotFoundErr            = NewErrNo(NotFoundErrCode, "Video not found")
	AuthorizationFailedErr = NewErrNo(AuthorizationFailedCode, "Authentication required")
	UserAlreadyExistErr    = NewErrNo(UserAlreadyExistCode, "Username already exists")
	RangeUnsatisfiableErr  = NewErrNo(RangeUnsatisfiableCode, "Requested range not satisfiable")
	StorageErr             = NewErrNo(StorageErrCode, "Failed to persist data store")
)

// ConvertErr convert error to ErrNo, any error that is not an ErrNo
// comes back as ServiceErr carrying the raw message.
func ConvertErr(err error) ErrNo {
	Err := ErrNo{}
	if errors.As(err, &Err) {
		return Err
	}
	s := ServiceErr
	s.ErrMsg = err.Error()
	return s
}
