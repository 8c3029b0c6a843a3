package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	colorTeal  = "#3ddbd9"
	colorBlue  = "#4589ff"
	colorLight = "#78a9ff"
	colorRed   = "#da1e28"
	colorAmber = "#ff832b"
	colorGray  = "#8d8d8d"
)

// newLogger builds the command logger from cfg. Output goes to a rotated
// file when cfg.File is set, to a styled console when stderr is a terminal,
// and to stderr as JSON otherwise. The returned close func releases the file.
func newLogger(cfg logConfig, stderr io.Writer) (zerolog.Logger, func() error, error) {
	noop := func() error { return nil }

	level := zerolog.InfoLevel
	if cfg.Level != "" {
		parsed, err := zerolog.ParseLevel(strings.ToLower(cfg.Level))
		if err != nil {
			return zerolog.Nop(), noop, fmt.Errorf("log level %q: %w", cfg.Level, err)
		}
		level = parsed
	}
	// The global level defaults to debug and would swallow trace events.
	if level < zerolog.GlobalLevel() {
		zerolog.SetGlobalLevel(level)
	}

	var (
		out     io.Writer
		closeFn = noop
	)
	switch {
	case cfg.File != "":
		rotated := &lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    cfg.MaxSizeMB,
			MaxBackups: cfg.MaxBackups,
		}
		out, closeFn = rotated, rotated.Close
	case isTerminal(stderr):
		out = consoleWriter(stderr)
	default:
		out = stderr
	}

	logger := zerolog.New(out).Level(level).With().Timestamp().Logger()
	return logger, closeFn, nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// consoleWriter renders log events for a human at a terminal.
func consoleWriter(out io.Writer) zerolog.ConsoleWriter {
	r := lipgloss.NewRenderer(out)
	keyStyle := r.NewStyle().Foreground(lipgloss.Color(colorLight))
	errKeyStyle := r.NewStyle().Foreground(lipgloss.Color(colorRed))
	eqStyle := r.NewStyle().Foreground(lipgloss.Color(colorGray))
	timeStyle := r.NewStyle().Foreground(lipgloss.Color(colorGray))

	return zerolog.ConsoleWriter{
		Out:        out,
		TimeFormat: "15:04:05",

		FormatLevel: func(i any) string {
			lvl := strings.ToLower(fmt.Sprint(i))
			color := colorGray
			switch lvl {
			case "trace", "debug":
				color = colorTeal
			case "info":
				color = colorBlue
			case "warn":
				color = colorAmber
			case "error", "fatal", "panic":
				color = colorRed
			}
			label := strings.ToUpper(lvl)
			if len(label) > 3 {
				label = label[:3]
			}
			return r.NewStyle().
				Foreground(lipgloss.Color("#ffffff")).
				Background(lipgloss.Color(color)).
				Padding(0, 1).
				Render(label)
		},

		FormatTimestamp: func(i any) string {
			return timeStyle.Render(fmt.Sprint(i))
		},

		FormatFieldName: func(i any) string {
			key := fmt.Sprint(i)
			style := keyStyle
			if key == zerolog.ErrorFieldName {
				style = errKeyStyle
			}
			return style.Render(key) + eqStyle.Render("=")
		},
	}
}
