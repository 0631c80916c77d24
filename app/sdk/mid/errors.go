package mid

import (
	"context"
	"errors"
	"net/http"
	"path"

	"github.com/stayvie/floorplan/app/sdk/errs"
	"github.com/stayvie/floorplan/app/sdk/metrics"
	"github.com/stayvie/floorplan/business/sdk/web"
	"github.com/stayvie/floorplan/foundation/logger"
	"github.com/stayvie/floorplan/foundation/otel"
)

// Errors handles errors coming out of the call chain. It converts them into
// the uniform error response and makes sure internal details never leave the
// service.
func Errors(log *logger.Logger) web.MidFunc {
	m := func(next web.HandlerFunc) web.HandlerFunc {
		h := func(ctx context.Context, r *http.Request) web.Encoder {
			resp := next(ctx, r)

			err := checkIsError(resp)
			if err == nil {
				return resp
			}

			_, span := otel.AddSpan(ctx, "app.sdk.mid.error")
			span.RecordError(err)
			span.End()

			var appErr *errs.Error
			if !errors.As(err, &appErr) {
				appErr = errs.Errorf(errs.Internal, "internal server error")
			}

			log.Error(ctx, "handled error during request",
				"err", err,
				"source_err_file", path.Base(appErr.FileName),
				"source_err_func", path.Base(appErr.FuncName))

			if appErr.Code == errs.Internal || appErr.Code == errs.InternalOnlyLog {
				metrics.AddErrors(ctx)
			}

			// Details of internal errors stay in the log.
			if appErr.Code == errs.InternalOnlyLog {
				appErr = errs.Errorf(errs.Internal, "internal server error")
			}

			return appErr
		}

		return h
	}

	return m
}
