package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	app "github.com/okian/fittrack/internal/app"
	"github.com/okian/fittrack/internal/config"
	"github.com/okian/fittrack/internal/domain/dispatch"
	"github.com/smartystreets/goconvey/convey"
)

const demoOutput = "Тип тренировки: Swimming; Длительность: 1.000 ч.; Дистанция: 0.994 км; Ср. скорость: 1.000 км/ч; Потрачено ккал: 336.000.\n" +
	"Тип тренировки: Running; Длительность: 1.000 ч.; Дистанция: 9.750 км; Ср. скорость: 9.750 км/ч; Потрачено ккал: 797.805.\n" +
	"Тип тренировки: SportsWalking; Длительность: 1.000 ч.; Дистанция: 5.850 км; Ср. скорость: 5.850 км/ч; Потрачено ккал: 349.252.\n"

func execute(args ...string) (stdout, stderr string, err error) {
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	err = cmd.Execute()
	return out.String(), errOut.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func clearEnv() {
	for _, name := range []string{
		"FITTRACK_CONFIG",
		"FITTRACK_LOG_LEVEL",
		"FITTRACK_LOG_FORMAT",
		"FITTRACK_ON_ERROR",
		"FITTRACK_METRICS_FILE",
	} {
		_ = os.Unsetenv(name)
	}
}

func TestRootCommand(t *testing.T) {
	convey.Convey("Given the fittrack command", t, func() {
		clearEnv()

		convey.Convey("When run without arguments", func() {
			stdout, stderr, err := execute()

			convey.Convey("Then the demo batch is printed to stdout", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(stdout, convey.ShouldEqual, demoOutput)
			})

			convey.Convey("And logs go to stderr only", func() {
				convey.So(stderr, convey.ShouldContainSubstring, "batch finished")
				convey.So(stdout, convey.ShouldNotContainSubstring, "batch finished")
			})
		})

		convey.Convey("When a metrics file is requested", func() {
			path := filepath.Join(t.TempDir(), "fittrack.prom")
			_, _, err := execute("--metrics-file", path)

			convey.Convey("Then the textfile holds the workout counters", func() {
				convey.So(err, convey.ShouldBeNil)
				data, err := os.ReadFile(path)
				convey.So(err, convey.ShouldBeNil)
				convey.So(string(data), convey.ShouldContainSubstring, `fittrack_workouts_processed_total{type="Running"}`)
				convey.So(string(data), convey.ShouldContainSubstring, "fittrack_batch_runs_total")
			})
		})

		convey.Convey("When an input file mixes valid and invalid packages", func() {
			input := writeFile(t, "packages.yaml", `
- code: RUN
  values: [15000, 1, 75]
- code: XYZ
  values: [1, 2, 3]
- code: WLK
  values: [9000, 1, 75, 180]
`)

			convey.Convey("Then skip prints the valid packages and fails at the end", func() {
				stdout, _, err := execute("--input", input)
				lines := strings.Split(strings.TrimSpace(stdout), "\n")
				convey.So(len(lines), convey.ShouldEqual, 2)
				var be *app.BatchError
				convey.So(errors.As(err, &be), convey.ShouldBeTrue)
				convey.So(errors.Is(err, dispatch.ErrUnknownWorkoutType), convey.ShouldBeTrue)
			})

			convey.Convey("And abort stops at the first failure", func() {
				stdout, _, err := execute("--input", input, "--on-error", "ABORT")
				lines := strings.Split(strings.TrimSpace(stdout), "\n")
				convey.So(len(lines), convey.ShouldEqual, 1)
				var pe *app.PackageError
				convey.So(errors.As(err, &pe), convey.ShouldBeTrue)
				convey.So(pe.Index, convey.ShouldEqual, 1)
			})
		})

		convey.Convey("When the config file supplies packages and a policy", func() {
			cfgPath := writeFile(t, "fittrack.yaml", `
on_error: abort
log_format: json
packages:
  - code: SWM
    values: [720, 1, 80, 25, 40]
`)
			stdout, stderr, err := execute("--config", cfgPath)

			convey.Convey("Then those packages are processed with JSON logs", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(stdout, convey.ShouldStartWith, "Тип тренировки: Swimming;")
				convey.So(stderr, convey.ShouldContainSubstring, `"msg":"batch finished"`)
			})
		})

		convey.Convey("When the policy flag is unknown", func() {
			_, _, err := execute("--on-error", "retry")

			convey.Convey("Then the command fails before processing", func() {
				convey.So(errors.Is(err, config.ErrInvalidConfig), convey.ShouldBeTrue)
			})
		})

		convey.Convey("When the input file does not exist", func() {
			_, _, err := execute("--input", filepath.Join(t.TempDir(), "missing.yaml"))

			convey.Convey("Then the command fails", func() {
				convey.So(err, convey.ShouldNotBeNil)
			})
		})

		convey.Convey("When positional arguments are given", func() {
			_, _, err := execute("extra")

			convey.Convey("Then they are rejected", func() {
				convey.So(err, convey.ShouldNotBeNil)
			})
		})
	})
}
