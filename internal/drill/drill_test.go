package drill_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/okian/claimtrainer/internal/adapters/claimsource"
	"github.com/okian/claimtrainer/internal/adapters/http/api"
	service "github.com/okian/claimtrainer/internal/app"
	"github.com/okian/claimtrainer/internal/domain/evaluation"
	"github.com/okian/claimtrainer/internal/domain/model"
	"github.com/okian/claimtrainer/internal/domain/quiz"
	"github.com/okian/claimtrainer/internal/drill"
	"github.com/okian/claimtrainer/pkg/logger"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	if err := logger.Init(); err != nil {
		panic(err)
	}
}

func newServer(claims []model.Claim) (*httptest.Server, *service.Service) {
	src := staticSource(claims)
	svc := service.New(service.WithClaimSource(src))
	if err := svc.Start(context.Background()); err != nil {
		panic(err)
	}
	mux := http.NewServeMux()
	api.NewServer(svc, svc).Register(context.Background(), mux)
	return httptest.NewServer(mux), svc
}

type staticSource []model.Claim

func (s staticSource) Load(context.Context) claimsource.Result {
	return claimsource.Result{Claims: s, Origin: claimsource.OriginRemote}
}

func TestRun(t *testing.T) {
	Convey("Given the service serving the sample claims", t, func() {
		srv, svc := newServer(claimsource.Fixture())
		defer srv.Close()
		defer svc.Stop()

		Convey("When the drill runs", func() {
			report, err := drill.Run(context.Background(), &drill.Config{
				BaseURL: srv.URL,
				Workers: 3,
				Timeout: 5 * time.Second,
				Verbose: true,
			})

			Convey("Then every claim should score full marks", func() {
				So(err, ShouldBeNil)
				So(report.Claims, ShouldEqual, 8)
				So(report.Passed, ShouldEqual, 8)
				So(report.Failed, ShouldBeEmpty)
				So(report.Reviewed, ShouldEqual, 8)
			})

			Convey("And no session should be left behind", func() {
				So(svc.GetStats()["activeSessions"], ShouldEqual, 0)
			})
		})
	})

	Convey("Given a medium risk claim", t, func() {
		srv, svc := newServer([]model.Claim{
			{ID: 11, ClaimNumber: "CLM-2024-011", Category: "Home", ClientName: "Dana Park", Status: "Processing", FraudScore: 60},
		})
		defer srv.Close()
		defer svc.Stop()

		report, err := drill.Run(context.Background(), &drill.Config{BaseURL: srv.URL, Timeout: 5 * time.Second})
		So(err, ShouldBeNil)
		So(report.Passed, ShouldEqual, 1)
	})

	Convey("Given no service", t, func() {
		srv := httptest.NewServer(http.NotFoundHandler())
		srv.Close()

		_, err := drill.Run(context.Background(), &drill.Config{BaseURL: srv.URL, Timeout: time.Second})
		So(errors.Is(err, drill.ErrUnhealthy), ShouldBeTrue)
	})
}

func TestIdealActions(t *testing.T) {
	Convey("Given the ideal answers for each band", t, func() {
		claims := []model.Claim{
			{ID: 1, FraudScore: 85},
			{ID: 2, FraudScore: 60},
			{ID: 3, FraudScore: 10},
		}

		for _, c := range claims {
			Convey(fmt.Sprintf("Then replaying them scores 100 for fraud score %.0f", c.FraudScore), func() {
				s := quiz.New()
				for _, a := range drill.IdealActions(c.FraudScore, model.RedFlagOptions, "history") {
					next, err := quiz.Reduce(s, c, quiz.Action{Type: quiz.ActionType(a.Type), Value: a.Value, Checked: a.Checked})
					So(err, ShouldBeNil)
					s = next
				}
				So(s.Result, ShouldNotBeNil)
				So(s.Result.Score, ShouldEqual, 100)
				So(s.Result.Tier, ShouldEqual, evaluation.Excellent)
			})
		}
	})
}
