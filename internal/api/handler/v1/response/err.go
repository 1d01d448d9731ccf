package response

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"

	"github.com/yizeng/gab/gin/gorm/rare-treasures/internal/domain"
)

// Err is the error envelope every failed request gets. Only Detail is sent to clients.
type Err struct {
	HTTPStatusCode int    `json:"-"`
	Detail         string `json:"detail" example:"No treasure found with given ID: 500"`
	Err            error  `json:"-"`
}

func (e *Err) Error() string {
	return e.Detail
}

// RenderErr aborts the request with e. Server errors are logged with their cause.
func RenderErr(ctx *gin.Context, e *Err) {
	if e.HTTPStatusCode >= http.StatusInternalServerError {
		fields := []zap.Field{
			zap.Error(e.Err),
			zap.String("request_id", requestid.Get(ctx)),
			zap.String("method", ctx.Request.Method),
			zap.String("path", ctx.Request.URL.Path),
		}

		var pgErr *pgconn.PgError
		if errors.As(e.Err, &pgErr) {
			fields = append(fields,
				zap.String("sqlstate", pgErr.Code),
				zap.String("constraint", pgErr.ConstraintName),
				zap.Bool("integrity_violation", pgerrcode.IsIntegrityConstraintViolation(pgErr.Code)),
			)
		}

		zap.L().Error("request failed", fields...)
	}

	ctx.AbortWithStatusJSON(e.HTTPStatusCode, e)
}

func ErrInvalidParameter(parameter, value string) *Err {
	return &Err{
		HTTPStatusCode: http.StatusBadRequest,
		Detail:         fmt.Sprintf("Invalid %s: %s", parameter, value),
	}
}

func ErrNotFound(resource string, id any) *Err {
	return &Err{
		HTTPStatusCode: http.StatusNotFound,
		Detail:         fmt.Sprintf("No %s found with given ID: %v", resource, id),
	}
}

func ErrUnprocessable(err error) *Err {
	return &Err{
		HTTPStatusCode: http.StatusUnprocessableEntity,
		Detail:         err.Error(),
		Err:            err,
	}
}

func ErrInternalServerError(err error) *Err {
	return &Err{
		HTTPStatusCode: http.StatusInternalServerError,
		Detail:         http.StatusText(http.StatusInternalServerError),
		Err:            err,
	}
}

func ErrRouteNotFound() *Err {
	return &Err{
		HTTPStatusCode: http.StatusNotFound,
		Detail:         http.StatusText(http.StatusNotFound),
	}
}

func ErrMethodNotAllowed() *Err {
	return &Err{
		HTTPStatusCode: http.StatusMethodNotAllowed,
		Detail:         http.StatusText(http.StatusMethodNotAllowed),
	}
}

// FromError maps errors that carry their own client message; everything else is a 500.
func FromError(err error) *Err {
	var paramErr *domain.InvalidParameterError
	if errors.As(err, &paramErr) {
		return ErrInvalidParameter(paramErr.Parameter, paramErr.Value)
	}

	return ErrInternalServerError(err)
}
