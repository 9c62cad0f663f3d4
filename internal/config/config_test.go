package config_test

import (
	"errors"
	"testing"

	"github.com/okian/fittrack/internal/config"
	"github.com/okian/fittrack/internal/domain/model"
	"github.com/smartystreets/goconvey/convey"
)

func TestConfig_New(t *testing.T) {
	convey.Convey("Given a new config with defaults", t, func() {
		cfg := config.New()

		convey.Convey("Then it should have sensible defaults", func() {
			convey.So(cfg.LogLevel, convey.ShouldEqual, "info")
			convey.So(cfg.LogFormat, convey.ShouldEqual, "text")
			convey.So(cfg.OnError, convey.ShouldEqual, config.OnErrorSkip)
			convey.So(cfg.MetricsFile, convey.ShouldBeEmpty)
			convey.So(cfg.Validate(), convey.ShouldBeNil)
		})
	})
}

func TestConfig_Validate(t *testing.T) {
	convey.Convey("Given configs with invalid enumerations", t, func() {
		cases := []*config.Config{
			{LogFormat: "text", OnError: "retry"},
			{LogFormat: "xml", OnError: "skip"},
			{LogFormat: "json", OnError: "abort", Packages: []model.Package{{Values: []float64{1}}}},
		}

		convey.Convey("Then each is rejected with ErrInvalidConfig", func() {
			for _, cfg := range cases {
				err := cfg.Validate()
				convey.So(errors.Is(err, config.ErrInvalidConfig), convey.ShouldBeTrue)
			}
		})
	})
}
