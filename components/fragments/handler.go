package fragments

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/goliatone/go-checkboxlist/internal/logging"
	"github.com/goliatone/go-checkboxlist/pkg/model"
	"github.com/goliatone/go-checkboxlist/pkg/render"
)

type HTTPError interface {
	error
	StatusCode() int
}

type StatusError struct {
	Code int
	Err  error
}

func (e StatusError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return http.StatusText(e.Code)
}

func (e StatusError) Unwrap() error { return e.Err }

func (e StatusError) StatusCode() int {
	if e.Code <= 0 {
		return http.StatusInternalServerError
	}
	return e.Code
}

// SubmissionError rejects a POST whose values the list could not have sent.
type SubmissionError struct {
	Errors render.ErrorMapping
}

func (e SubmissionError) Error() string {
	return "fragments: invalid submission: " + strings.Join(e.Errors.Messages(), "; ")
}

func (e SubmissionError) StatusCode() int { return http.StatusUnprocessableEntity }

const allowedMethods = "GET, HEAD, POST"

// Handler builds a net/http handler with default options plus any overrides.
func Handler(fns ...OptionFn) http.Handler {
	return NewHandler(fns...)
}

func NewHandler(fns ...OptionFn) http.Handler {
	opts := NewOptions(fns...)
	return HandlerWithOptions(opts)
}

// HandlerWithOptions builds a net/http handler from a pre-constructed Options value.
func HandlerWithOptions(opts Options) http.Handler {
	opts = NewOptions(func(o *Options) { *o = opts })
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r == nil {
			http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
			return
		}
		ctx := logging.ComponentCtx(r.Context(), "fragments")

		switch r.Method {
		case http.MethodGet, http.MethodHead, http.MethodPost:
		default:
			w.Header().Set("Allow", allowedMethods)
			http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
			return
		}

		if opts.Guard != nil {
			if err := opts.Guard(r); err != nil {
				opts.Logger.WarnContext(ctx, "request rejected by guard", slog.String("path", r.URL.Path), slog.Any("error", err))
				writeError(w, err, http.StatusForbidden)
				return
			}
		}

		id := listID(r)
		ctx = logging.AppendCtx(ctx, slog.String("list", id))
		if id == "" {
			writeError(w, StatusError{Code: http.StatusNotFound}, http.StatusNotFound)
			return
		}
		if opts.Lists == nil {
			opts.Logger.ErrorContext(ctx, "no list source configured")
			writeError(w, StatusError{Code: http.StatusInternalServerError}, http.StatusInternalServerError)
			return
		}

		list, err := opts.Lists.Lookup(id)
		if err != nil {
			opts.Logger.DebugContext(ctx, "list lookup failed", slog.Any("error", err))
			writeError(w, err, http.StatusNotFound)
			return
		}

		list, err = applyRequest(ctx, r, list, opts)
		if err != nil {
			opts.Logger.DebugContext(ctx, "invalid request", slog.Any("error", err))
			writeError(w, err, http.StatusBadRequest)
			return
		}

		renderOptions := opts.RenderOptions
		if locale := strings.TrimSpace(r.URL.Query().Get(opts.LocaleParam)); locale != "" {
			renderOptions.Locale = locale
		}

		out, contentType, err := opts.Registry.Render(ctx, opts.RendererName, list, renderOptions)
		if err != nil {
			opts.Logger.ErrorContext(ctx, "render failed", slog.String("renderer", opts.RendererName), slog.Any("error", err))
			writeError(w, StatusError{Code: http.StatusInternalServerError, Err: err}, http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", contentType)
		w.WriteHeader(http.StatusOK)
		opts.Logger.DebugContext(ctx, "fragment rendered", slog.String("method", r.Method), slog.Int("bytes", len(out)))
		if r.Method == http.MethodHead {
			return
		}
		_, _ = w.Write(out)
	})
}

// applyRequest layers query overrides (GET/HEAD) or the posted selection
// (POST) over the stored list. Posted values outside the list are dropped, or
// rejected when StrictSubmission is set.
func applyRequest(ctx context.Context, r *http.Request, list model.List, opts Options) (model.List, error) {
	query := r.URL.Query()

	if raw := strings.TrimSpace(query.Get(opts.LayoutParam)); raw != "" {
		layout, err := model.ParseLayout(raw)
		if err != nil {
			return list, StatusError{Code: http.StatusBadRequest, Err: err}
		}
		list.Layout = layout
	}

	if values, ok := query[opts.DisabledParam]; ok {
		list.Disabled = model.NewStringSet(splitValues(values)...)
	}

	if r.Method == http.MethodPost {
		if err := r.ParseForm(); err != nil {
			return list, StatusError{Code: http.StatusBadRequest, Err: fmt.Errorf("fragments: parse form: %w", err)}
		}
		if problems := render.ValidateSubmission(list, r.PostForm); !problems.Empty() {
			opts.Logger.DebugContext(ctx, "submission carried values outside the list", slog.Any("messages", problems.Messages()))
			if opts.StrictSubmission {
				return list, SubmissionError{Errors: problems}
			}
		}
		submitted := model.SubmittedValues(list, r.PostForm)
		selected := model.NewStringSet(submitted...)
		// Disabled inputs are never posted, so keep their stored state.
		for value := range list.Selected {
			if list.Disabled.Has(value) {
				selected.Add(value)
			}
		}
		list.Selected = selected
		return list, nil
	}

	if values, ok := query[opts.SelectedParam]; ok {
		list.Selected = model.NewStringSet(splitValues(values)...)
	}
	return list, nil
}

// splitValues accepts both repeated parameters and comma separated values.
func splitValues(values []string) []string {
	out := make([]string, 0, len(values))
	for _, value := range values {
		for _, part := range strings.Split(value, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			out = append(out, part)
		}
	}
	return out
}

func listID(r *http.Request) string {
	if id := strings.TrimSpace(r.PathValue("id")); id != "" {
		return id
	}
	path := r.URL.Path
	if path == "" || strings.HasSuffix(path, "/") {
		return ""
	}
	return strings.TrimSpace(path[strings.LastIndex(path, "/")+1:])
}

func writeError(w http.ResponseWriter, err error, fallback int) {
	if w == nil {
		return
	}
	var submission SubmissionError
	if errors.As(err, &submission) {
		http.Error(w, strings.Join(submission.Errors.Messages(), "\n"), submission.StatusCode())
		return
	}
	code := fallback
	var httpErr HTTPError
	if errors.As(err, &httpErr) && httpErr != nil {
		code = httpErr.StatusCode()
		if code <= 0 {
			code = fallback
		}
	}
	http.Error(w, http.StatusText(code), code)
}
