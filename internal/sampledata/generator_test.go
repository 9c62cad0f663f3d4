package sampledata_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/okian/fittrack/internal/domain/dispatch"
	"github.com/okian/fittrack/internal/sampledata"
	"github.com/okian/fittrack/pkg/logger"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	if err := logger.Init(logger.WithWriter(&bytes.Buffer{})); err != nil {
		panic(err)
	}
}

func TestGenerate(t *testing.T) {
	Convey("Given a generator config", t, func() {
		ctx := context.Background()
		cfg := sampledata.Config{Count: 200, Seed: 42}

		Convey("When generating packages", func() {
			pkgs, err := sampledata.Generate(ctx, cfg)

			Convey("Then every package passes dispatch validation", func() {
				So(err, ShouldBeNil)
				So(len(pkgs), ShouldEqual, 200)

				table, err := dispatch.New()
				So(err, ShouldBeNil)
				for _, p := range pkgs {
					calc, err := table.Lookup(p.Code, p.Values)
					So(err, ShouldBeNil)
					So(calc.SpentCalories(), ShouldBeGreaterThanOrEqualTo, 0)
				}
			})

			Convey("And every package carries a unique uuid", func() {
				seen := make(map[string]bool, len(pkgs))
				for _, p := range pkgs {
					_, err := uuid.Parse(p.ID)
					So(err, ShouldBeNil)
					So(seen[p.ID], ShouldBeFalse)
					seen[p.ID] = true
				}
			})

			Convey("And all default types appear", func() {
				codes := map[string]int{}
				for _, p := range pkgs {
					codes[p.Code]++
				}
				So(codes, ShouldContainKey, "SWM")
				So(codes, ShouldContainKey, "RUN")
				So(codes, ShouldContainKey, "WLK")
			})
		})

		Convey("When generating twice with the same seed", func() {
			a, errA := sampledata.Generate(ctx, cfg)
			b, errB := sampledata.Generate(ctx, cfg)

			Convey("Then the output is identical", func() {
				So(errA, ShouldBeNil)
				So(errB, ShouldBeNil)
				So(a, ShouldResemble, b)
			})
		})

		Convey("When generating with a different seed", func() {
			a, _ := sampledata.Generate(ctx, cfg)
			cfg.Seed = 7
			b, _ := sampledata.Generate(ctx, cfg)

			Convey("Then the output differs", func() {
				So(a[0].ID, ShouldNotEqual, b[0].ID)
			})
		})

		Convey("When restricting the codes", func() {
			cfg.Codes = []string{"WLK"}
			pkgs, err := sampledata.Generate(ctx, cfg)

			Convey("Then only that type is generated", func() {
				So(err, ShouldBeNil)
				for _, p := range pkgs {
					So(p.Code, ShouldEqual, "WLK")
					So(len(p.Values), ShouldEqual, 4)
				}
			})
		})

		Convey("When the count is not positive", func() {
			cfg.Count = 0
			_, err := sampledata.Generate(ctx, cfg)

			Convey("Then it fails with ErrInvalidCount", func() {
				So(errors.Is(err, sampledata.ErrInvalidCount), ShouldBeTrue)
			})
		})

		Convey("When a code is unknown", func() {
			cfg.Codes = []string{"RUN", "BIK"}
			_, err := sampledata.Generate(ctx, cfg)

			Convey("Then it fails with ErrUnknownCode", func() {
				So(errors.Is(err, sampledata.ErrUnknownCode), ShouldBeTrue)
				So(err.Error(), ShouldContainSubstring, "BIK")
			})
		})

		Convey("When the context is cancelled", func() {
			cctx, cancel := context.WithCancel(ctx)
			cancel()
			_, err := sampledata.Generate(cctx, cfg)

			Convey("Then generation stops", func() {
				So(errors.Is(err, context.Canceled), ShouldBeTrue)
			})
		})
	})
}
