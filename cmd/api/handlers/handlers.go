package handlers

import (
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"VideoTube.com/config"
	"VideoTube.com/pkg/constants"
	"VideoTube.com/pkg/errno"
	"VideoTube.com/pkg/jwt"
	"VideoTube.com/pkg/utils"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/pkg/errors"
)

type Response struct {
	StatusCode int64       `json:"statusCode"`
	Data       interface{} `json:"data"`
	Message    string      `json:"message"`
	Success    bool        `json:"success"`
}

type ErrorResponse struct {
	StatusCode int64    `json:"statusCode"`
	Message    string   `json:"message"`
	Success    bool     `json:"success"`
	Errors     []string `json:"errors"`
}

// SendResponse pack response
func SendResponse(c *app.RequestContext, code int64, data interface{}, message string) {
	c.JSON(int(code), Response{
		StatusCode: code,
		Data:       data,
		Message:    message,
		Success:    code < 400,
	})
}

// SendError writes the error envelope. The HTTP status is the errno code.
func SendError(c *app.RequestContext, err error, details ...string) {
	Err := errno.ConvertErr(err)
	if Err.ErrCode >= errno.ServiceErrCode {
		hlog.Errorf("%s %s failed: %v", c.Method(), c.Path(), err)
	}
	if details == nil {
		details = []string{}
	}
	c.JSON(int(Err.ErrCode), ErrorResponse{
		StatusCode: Err.ErrCode,
		Message:    Err.ErrMsg,
		Success:    false,
		Errors:     details,
	})
}

// SendBindError reports a request that could not be decoded.
func SendBindError(c *app.RequestContext, err error) {
	SendError(c, errno.RequestErr.WithMessage("Invalid request body"), err.Error())
}

// CurrentUserId is the authenticated caller; it writes a 401 and returns false when missing.
func CurrentUserId(c *app.RequestContext) (string, bool) {
	id, err := jwt.CurrentUserId(c)
	if err != nil {
		SendError(c, err)
		return "", false
	}
	return id, true
}

// Pagination reads page and limit from the query string.
func Pagination(c *app.RequestContext) utils.Pagination {
	defaultLimit := int64(config.ConfigInfo.Pagination.DefaultLimit)
	if defaultLimit <= 0 {
		defaultLimit = constants.DefaultLimit
	}
	maxLimit := int64(config.ConfigInfo.Pagination.MaxLimit)
	if maxLimit <= 0 {
		maxLimit = constants.MaxLimit
	}
	return utils.NewPagination(
		utils.ParseInt64Default(c.Query("page"), constants.DefaultPage),
		utils.ParseInt64Default(c.Query("limit"), defaultLimit),
		defaultLimit,
		maxLimit,
	)
}

// UploadDir creates a private directory for one request's uploaded files.
// The caller removes it with os.RemoveAll.
func UploadDir() (string, error) {
	base := config.ConfigInfo.Upload.TempDir
	if base == "" {
		base = os.TempDir()
	}
	if err := os.MkdirAll(base, os.ModePerm); err != nil {
		return "", errors.Wrap(err, "create upload dir failed")
	}
	dir, err := os.MkdirTemp(base, "upload-*")
	if err != nil {
		return "", errors.Wrap(err, "create upload dir failed")
	}
	return dir, nil
}

// SaveFormFile stores the multipart field into dir as <field><ext>, so two parts
// uploaded under the same client filename never overwrite each other. A missing field yields "".
func SaveFormFile(c *app.RequestContext, field, dir string) (string, error) {
	file, err := c.FormFile(field)
	if err != nil || file == nil {
		return "", nil
	}
	return saveFile(c, file, field, dir)
}

func saveFile(c *app.RequestContext, file *multipart.FileHeader, field, dir string) (string, error) {
	dst := filepath.Join(dir, field+strings.ToLower(filepath.Ext(filepath.Base(file.Filename))))
	if err := c.SaveUploadedFile(file, dst); err != nil {
		return "", errno.UploadErr.WithMessage("Failed to save uploaded file")
	}
	return dst, nil
}
