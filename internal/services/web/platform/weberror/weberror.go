// Package weberror renders error responses for web modules.
package weberror

import (
	"net/http"
	"strings"

	"github.com/louisbranch/teamdocs/internal/platform/requestctx"
	"github.com/louisbranch/teamdocs/internal/services/shared/i18nhttp"
	"github.com/louisbranch/teamdocs/internal/services/shared/templates"
	apperrors "github.com/louisbranch/teamdocs/internal/services/web/platform/errors"
	"github.com/louisbranch/teamdocs/internal/services/web/platform/pagerender"
	"go.uber.org/zap"
)

// ShouldRenderAppError reports whether status gets a full error page.
func ShouldRenderAppError(statusCode int) bool {
	return statusCode == http.StatusNotFound || statusCode >= http.StatusInternalServerError
}

// PublicMessage resolves a reader-safe localized error message.
func PublicMessage(loc templates.Localizer, err error) string {
	if err == nil {
		return ""
	}
	if loc != nil {
		if key := apperrors.LocalizationKey(err); key != "" {
			if localized := strings.TrimSpace(loc.Sprintf(key)); localized != "" {
				return localized
			}
		}
	}
	statusCode := apperrors.HTTPStatus(err)
	if statusCode < http.StatusBadRequest {
		statusCode = http.StatusInternalServerError
	}
	return http.StatusText(statusCode)
}

// WriteAppError writes a localized error page.
func WriteAppError(w http.ResponseWriter, r *http.Request, statusCode int) {
	if w == nil {
		return
	}
	if !ShouldRenderAppError(statusCode) {
		statusCode = http.StatusInternalServerError
	}
	loc, tag := i18nhttp.ResolveLocalizer(w, r)
	err := pagerender.WriteModulePage(w, r, pagerender.Locale{Loc: loc, Tag: tag}, pagerender.ModulePage{
		Title:      templates.ErrorPageTitle(loc),
		StatusCode: statusCode,
		Fragment:   templates.ErrorState(statusCode, loc),
	})
	if err != nil {
		http.Error(w, http.StatusText(statusCode), statusCode)
	}
}

// WriteModuleError logs err and writes the matching error response. Server
// errors and missing pages get a full page; other client errors get text.
func WriteModuleError(w http.ResponseWriter, r *http.Request, err error, logger *zap.Logger) {
	if w == nil {
		return
	}
	statusCode := apperrors.HTTPStatus(err)
	if logger != nil && statusCode >= http.StatusInternalServerError {
		fields := []zap.Field{zap.Error(err), zap.Int("status", statusCode)}
		if r != nil {
			fields = append(fields,
				zap.String("path", r.URL.Path),
				zap.String("request_id", requestctx.RequestIDFromContext(r.Context())),
			)
		}
		logger.Error("request failed", fields...)
	}
	if ShouldRenderAppError(statusCode) {
		WriteAppError(w, r, statusCode)
		return
	}
	loc, _ := i18nhttp.ResolveLocalizer(w, r)
	http.Error(w, PublicMessage(loc, err), statusCode)
}
