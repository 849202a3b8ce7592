package logger

import (
	"context"
	"io"
	"log/slog"
	"strings"

	"github.com/muesli/termenv"
	"go.trai.ch/freeze/internal/ui/output"
	"go.trai.ch/freeze/internal/ui/style"
)

// ErrorKey is the attribute key whose error value is expanded into a cause chain.
const ErrorKey = "error"

// PrettyHandler is a slog.Handler that writes one styled block per record.
//
// Debug records are dimmed and marked with a dot. An attribute under ErrorKey
// holding an error is rendered as the zerr headline and "Caused by" list
// instead of a key=value pair.
type PrettyHandler struct {
	out    *termenv.Output
	level  slog.Leveler
	attrs  []slog.Attr
	groups []string
}

// NewPrettyHandler creates a PrettyHandler writing to w. A nil level means Info.
// Passing a *slog.LevelVar lets the caller change the level after construction.
func NewPrettyHandler(w io.Writer, level slog.Leveler) *PrettyHandler {
	if level == nil {
		level = slog.LevelInfo
	}
	return &PrettyHandler{
		out:   output.New(w),
		level: level,
	}
}

// Enabled reports whether the handler handles records at the given level.
func (h *PrettyHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

// Handle formats and writes the record.
//
//nolint:gocritic // slog.Handler interface requires slog.Record by value
func (h *PrettyHandler) Handle(_ context.Context, r slog.Record) error {
	var failure error
	pairs := make([]string, 0, len(h.attrs)+r.NumAttrs())

	for _, attr := range h.attrs {
		pairs = append(pairs, attr.Key+"="+attr.Value.String())
	}
	r.Attrs(func(attr slog.Attr) bool {
		if err, ok := attr.Value.Any().(error); ok && attr.Key == ErrorKey && len(h.groups) == 0 {
			failure = err
			return true
		}
		pairs = append(pairs, h.qualify(attr.Key)+"="+attr.Value.String())
		return true
	})

	body := r.Message
	if len(pairs) > 0 {
		body = strings.TrimSpace(body + " " + strings.Join(pairs, " "))
	}
	if failure != nil {
		block := formatErrorEntries(collectErrorEntries(failure))
		if body != "" {
			block = body + "\n" + block
		}
		body = block
	}

	icon, color := levelStyle(r.Level)
	styled := h.out.String(icon + body).Foreground(color)
	if r.Level < slog.LevelInfo {
		styled = styled.Faint()
	}
	_, err := h.out.WriteString(styled.String() + "\n")
	return err
}

// WithAttrs returns a new Handler with the given attributes appended.
// Their keys are qualified with the current group path.
func (h *PrettyHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	next := h.clone()
	for _, attr := range attrs {
		next.attrs = append(next.attrs, slog.Attr{Key: h.qualify(attr.Key), Value: attr.Value})
	}
	return next
}

// WithGroup returns a new Handler that nests later attributes under name.
func (h *PrettyHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	next := h.clone()
	next.groups = append(next.groups, name)
	return next
}

func (h *PrettyHandler) clone() *PrettyHandler {
	return &PrettyHandler{
		out:    h.out,
		level:  h.level,
		attrs:  append([]slog.Attr(nil), h.attrs...),
		groups: append([]string(nil), h.groups...),
	}
}

func (h *PrettyHandler) qualify(key string) string {
	if len(h.groups) == 0 {
		return key
	}
	return strings.Join(h.groups, ".") + "." + key
}

func levelStyle(level slog.Level) (string, termenv.Color) {
	switch {
	case level >= slog.LevelError:
		return style.Cross + " ", termenv.RGBColor(string(style.Red))
	case level >= slog.LevelWarn:
		return style.Warning + " ", termenv.RGBColor(string(style.Yellow))
	case level >= slog.LevelInfo:
		return "", termenv.RGBColor(string(style.Slate))
	default:
		return style.Dot + " ", termenv.RGBColor(string(style.Slate))
	}
}
