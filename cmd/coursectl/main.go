// Command coursectl checks and inspects course content without starting the
// server.
//
//	coursectl [-data dir] validate
//	coursectl [-data dir] lessons
//	coursectl [-data dir] speak -lesson N
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/yungbote/eerste-dingen/internal/modules/course/audio"
	"github.com/yungbote/eerste-dingen/internal/modules/course/content"
	"github.com/yungbote/eerste-dingen/internal/platform/envutil"
)

func main() {
	_ = godotenv.Load()
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "usage: coursectl [-data dir] <validate|lessons|speak -lesson N>")
}

func run(args []string, stdout, stderr io.Writer) int {
	global := flag.NewFlagSet("coursectl", flag.ContinueOnError)
	global.SetOutput(stderr)
	dataDir := global.String("data", envutil.String("COURSE_DATA_DIR", "data"), "course data directory")
	if err := global.Parse(args); err != nil {
		return 2
	}
	rest := global.Args()
	if len(rest) == 0 {
		usage(stderr)
		return 2
	}

	switch rest[0] {
	case "validate":
		return validate(*dataDir, stdout, stderr)
	case "lessons":
		return lessons(*dataDir, stdout, stderr)
	case "speak":
		return speak(*dataDir, rest[1:], stdout, stderr)
	default:
		fmt.Fprintf(stderr, "unknown command %q\n", rest[0])
		usage(stderr)
		return 2
	}
}

func load(dataDir string, stderr io.Writer) (*content.Course, bool) {
	course, err := content.LoadDir(dataDir)
	if err == nil {
		return course, true
	}
	var le *content.LoadError
	if errors.As(err, &le) {
		for _, line := range le.Lines() {
			fmt.Fprintln(stderr, line)
		}
		fmt.Fprintf(stderr, "%d document(s) failed validation\n", len(le.Failures))
		return nil, false
	}
	fmt.Fprintf(stderr, "load course: %v\n", err)
	return nil, false
}

func validate(dataDir string, stdout, stderr io.Writer) int {
	course, ok := load(dataDir, stderr)
	if !ok {
		return 1
	}
	fmt.Fprintf(stdout, "ok: %q with %d lessons\n", course.Title, course.Len())
	return 0
}

func lessons(dataDir string, stdout, stderr io.Writer) int {
	course, ok := load(dataDir, stderr)
	if !ok {
		return 1
	}
	for _, s := range course.Summaries() {
		if s.Subtitle != "" {
			fmt.Fprintf(stdout, "%3d  %s - %s\n", s.ID, s.Title, s.Subtitle)
			continue
		}
		fmt.Fprintf(stdout, "%3d  %s\n", s.ID, s.Title)
	}
	return 0
}

func speak(dataDir string, args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("speak", flag.ContinueOnError)
	fs.SetOutput(stderr)
	lessonID := fs.Int("lesson", 0, "lesson id")
	lang := fs.String("lang", envutil.String("SPEECH_LANG", audio.DefaultLanguage), "speech language tag")
	rate := fs.Float64("rate", envutil.Float("SPEECH_RATE", audio.DefaultRate), "speech rate")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	course, ok := load(dataDir, stderr)
	if !ok {
		return 1
	}
	lesson, found := course.Lesson(*lessonID)
	if !found {
		fmt.Fprintf(stderr, "lesson %d not found\n", *lessonID)
		return 1
	}

	adapter := audio.New(audio.DetectPlatform(),
		audio.WithLanguage(*lang),
		audio.WithRate(*rate),
		audio.WithNotifier(audio.NotifierFunc(func(msg string) { fmt.Fprintln(stderr, msg) })),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	for _, text := range content.SpokenTexts(lesson) {
		fmt.Fprintln(stdout, text)
		if err := adapter.SpeakWait(ctx.Done(), text); err != nil {
			if errors.Is(err, audio.ErrUnsupported) {
				return 1
			}
			if ctx.Err() != nil {
				return 130
			}
			fmt.Fprintf(stderr, "speak: %v\n", err)
			return 1
		}
	}
	return 0
}
