package api_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/okian/claimtrainer/internal/adapters/claimsource"
	"github.com/okian/claimtrainer/internal/adapters/http/api"
	service "github.com/okian/claimtrainer/internal/app"
	"github.com/okian/claimtrainer/internal/domain/claims"
	"github.com/okian/claimtrainer/pkg/logger"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	if err := logger.Init(); err != nil {
		panic(err)
	}
}

type fixtureSource struct{}

func (fixtureSource) Load(context.Context) claimsource.Result {
	return claimsource.Result{Claims: claimsource.Fixture(), Origin: claimsource.OriginFallback}
}

type mockStatsProvider struct {
	stats map[string]interface{}
}

func (m *mockStatsProvider) GetStats() map[string]interface{} {
	return m.stats
}

func newMux(svc *service.Service, stats api.StatsProvider) *http.ServeMux {
	mux := http.NewServeMux()
	api.NewServer(svc, stats).Register(context.Background(), mux)
	return mux
}

func do(mux http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, http.NoBody)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)
	return w
}

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func decode[T any](w *httptest.ResponseRecorder) T {
	var v T
	So(json.NewDecoder(w.Body).Decode(&v), ShouldBeNil)
	return v
}

func TestServer_Register(t *testing.T) {
	Convey("Given a started service behind the API", t, func() {
		svc := service.New(service.WithClaimSource(fixtureSource{}))
		So(svc.Start(context.Background()), ShouldBeNil)
		defer svc.Stop()
		mux := newMux(svc, &mockStatsProvider{stats: map[string]interface{}{"started": true}})

		Convey("Then the health endpoint should expose metrics", func() {
			w := do(mux, "GET", "/healthz", "")
			So(w.Code, ShouldEqual, http.StatusOK)
			So(w.Body.String(), ShouldContainSubstring, "claimtrainer_training")
		})

		Convey("Then the stats endpoint should return the provider's map", func() {
			w := do(mux, "GET", "/stats", "")
			So(w.Code, ShouldEqual, http.StatusOK)
			So(decode[map[string]any](w)["started"], ShouldEqual, true)
		})

		Convey("Then unknown paths should be 404", func() {
			So(do(mux, "GET", "/unknown", "").Code, ShouldEqual, http.StatusNotFound)
		})

		Convey("Then wrong methods should be rejected", func() {
			So(do(mux, "POST", "/api/claims", "").Code, ShouldEqual, http.StatusMethodNotAllowed)
		})
	})

	Convey("Given a nil mux", t, func() {
		So(func() { api.NewServer(nil, nil).Register(context.Background(), nil) }, ShouldPanic)
	})
}

func TestClaimsHandler(t *testing.T) {
	Convey("Given the claims endpoints", t, func() {
		svc := service.New(service.WithClaimSource(fixtureSource{}))
		So(svc.Start(context.Background()), ShouldBeNil)
		defer svc.Stop()
		mux := newMux(svc, svc)

		type listBody struct {
			Claims []struct {
				ID        int    `json:"id"`
				RiskLevel string `json:"risk_level"`
				RiskColor string `json:"risk_color"`
				Amount    string `json:"amount_display"`
			} `json:"claims"`
			Total int `json:"total"`
		}

		Convey("When listing every claim", func() {
			w := do(mux, "GET", "/api/claims", "")
			So(w.Code, ShouldEqual, http.StatusOK)
			body := decode[listBody](w)
			So(body.Total, ShouldEqual, 8)
			So(body.Claims[0].ID, ShouldEqual, 1)
			So(body.Claims[0].RiskLevel, ShouldEqual, "high")
			So(body.Claims[0].Amount, ShouldEqual, "$45,000")
		})

		Convey("When filtering and sorting", func() {
			w := do(mux, "GET", "/api/claims?category=Auto&sort=fraud_score&dir=desc", "")
			So(w.Code, ShouldEqual, http.StatusOK)
			body := decode[listBody](w)
			ids := make([]int, 0, len(body.Claims))
			for _, c := range body.Claims {
				ids = append(ids, c.ID)
			}
			So(ids, ShouldResemble, []int{3, 1, 5, 8})
		})

		Convey("When sorting by an unknown column", func() {
			w := do(mux, "GET", "/api/claims?sort=colour", "")
			So(w.Code, ShouldEqual, http.StatusBadRequest)
			So(decode[errorBody](w).Code, ShouldEqual, "bad_request")
		})

		Convey("When sorting in an unknown direction", func() {
			So(do(mux, "GET", "/api/claims?sort=1&dir=sideways", "").Code, ShouldEqual, http.StatusBadRequest)
		})

		Convey("When fetching the options", func() {
			w := do(mux, "GET", "/api/claims/options", "")
			So(w.Code, ShouldEqual, http.StatusOK)
			o := decode[api.ListOptions](w)
			So(o.Categories, ShouldContain, claims.AnyCategory)
			So(len(o.RedFlags), ShouldEqual, 8)
		})

		Convey("When fetching one claim", func() {
			w := do(mux, "GET", "/api/claims/2", "")
			So(w.Code, ShouldEqual, http.StatusOK)
			d := decode[map[string]any](w)
			So(d["client_name"], ShouldEqual, "Jane Smith")
			So(d["recommended_action"], ShouldEqual, "approve")
		})

		Convey("When the claim id is not a number", func() {
			So(do(mux, "GET", "/api/claims/abc", "").Code, ShouldEqual, http.StatusBadRequest)
		})

		Convey("When the claim does not exist", func() {
			w := do(mux, "GET", "/api/claims/42", "")
			So(w.Code, ShouldEqual, http.StatusNotFound)
			So(decode[errorBody](w).Code, ShouldEqual, "not_found")
		})
	})
}

func TestSessionsHandler(t *testing.T) {
	Convey("Given the session endpoints", t, func() {
		svc := service.New(service.WithClaimSource(fixtureSource{}))
		So(svc.Start(context.Background()), ShouldBeNil)
		defer svc.Stop()
		mux := newMux(svc, svc)

		Convey("When a session is created", func() {
			w := do(mux, "POST", "/api/sessions", `{"claim_id": 2}`)
			So(w.Code, ShouldEqual, http.StatusCreated)
			sess := decode[api.SessionView](w)
			So(sess.ID, ShouldNotBeEmpty)
			So(sess.Step.Number, ShouldEqual, 1)
			path := "/api/sessions/" + sess.ID

			Convey("Then it can be fetched", func() {
				So(do(mux, "GET", path, "").Code, ShouldEqual, http.StatusOK)
			})

			Convey("Then a full low risk answer scores 100", func() {
				steps := []string{
					`{"type":"set_assessment","value":"low"}`,
					`{"type":"next"}`,
					`{"type":"next"}`,
					`{"type":"set_decision","value":"approve"}`,
					`{"type":"next"}`,
					`{"type":"set_justification","value":"Routine claim, documents in order."}`,
					`{"type":"next"}`,
					`{"type":"submit"}`,
				}
				var last *httptest.ResponseRecorder
				for _, s := range steps {
					last = do(mux, "POST", path+"/actions", s)
					So(last.Code, ShouldEqual, http.StatusOK)
				}
				view := decode[api.SessionView](last)
				So(view.State.Result, ShouldNotBeNil)
				So(view.State.Result.Score, ShouldEqual, 100)

				d := do(mux, "GET", "/api/dashboard", "")
				So(d.Code, ShouldEqual, http.StatusOK)
				So(decode[map[string]any](d)["overall_progress"], ShouldEqual, float64(25))
			})

			Convey("Then an out of order action is a conflict", func() {
				w := do(mux, "POST", path+"/actions", `{"type":"submit"}`)
				So(w.Code, ShouldEqual, http.StatusConflict)
				So(decode[errorBody](w).Code, ShouldEqual, "invalid_transition")
			})

			Convey("Then an unknown value is a bad request", func() {
				w := do(mux, "POST", path+"/actions", `{"type":"set_assessment","value":"extreme"}`)
				So(w.Code, ShouldEqual, http.StatusBadRequest)
			})

			Convey("Then an action without a type is a bad request", func() {
				So(do(mux, "POST", path+"/actions", `{"value":"low"}`).Code, ShouldEqual, http.StatusBadRequest)
			})

			Convey("Then deleting ends it", func() {
				So(do(mux, "DELETE", path, "").Code, ShouldEqual, http.StatusNoContent)
				So(do(mux, "GET", path, "").Code, ShouldEqual, http.StatusNotFound)
				So(do(mux, "DELETE", path, "").Code, ShouldEqual, http.StatusNotFound)
			})
		})

		Convey("When the body is malformed", func() {
			So(do(mux, "POST", "/api/sessions", `{"claim_id":`).Code, ShouldEqual, http.StatusBadRequest)
			So(do(mux, "POST", "/api/sessions", `{}`).Code, ShouldEqual, http.StatusBadRequest)
			So(do(mux, "POST", "/api/sessions", `{"claim_id": -1}`).Code, ShouldEqual, http.StatusBadRequest)
			So(do(mux, "POST", "/api/sessions", `{"claim": 1}`).Code, ShouldEqual, http.StatusBadRequest)
		})

		Convey("When the claim does not exist", func() {
			So(do(mux, "POST", "/api/sessions", `{"claim_id": 99}`).Code, ShouldEqual, http.StatusNotFound)
		})
	})
}

type zeroIDSource struct{}

func (zeroIDSource) Load(context.Context) claimsource.Result {
	claims := claimsource.Fixture()
	claims[0].ID = 0
	return claimsource.Result{Claims: claims, Origin: claimsource.OriginRemote}
}

func TestSessionForClaimZero(t *testing.T) {
	Convey("Given a listed claim with id 0", t, func() {
		svc := service.New(service.WithClaimSource(zeroIDSource{}))
		So(svc.Start(context.Background()), ShouldBeNil)
		defer svc.Stop()
		mux := newMux(svc, svc)

		Convey("Then a session can be started on it", func() {
			w := do(mux, "POST", "/api/sessions", `{"claim_id": 0}`)
			So(w.Code, ShouldEqual, http.StatusCreated)
			So(decode[api.SessionView](w).ClaimID, ShouldEqual, 0)
		})
	})
}

func TestServiceNotStarted(t *testing.T) {
	Convey("Given a service that has not started", t, func() {
		svc := service.New(service.WithClaimSource(fixtureSource{}))
		mux := newMux(svc, svc)

		Convey("Then reads should be unavailable", func() {
			w := do(mux, "GET", "/api/claims", "")
			So(w.Code, ShouldEqual, http.StatusServiceUnavailable)
			So(decode[errorBody](w).Code, ShouldEqual, "unavailable")
			So(do(mux, "GET", "/api/dashboard", "").Code, ShouldEqual, http.StatusServiceUnavailable)
		})
	})
}

func TestKindError(t *testing.T) {
	Convey("Given wrapped API errors", t, func() {
		cause := errors.New("boom")

		Convey("Then kind and cause should both match", func() {
			err := api.WrapKind("api.op", api.ErrBadRequest, cause)
			So(errors.Is(err, api.ErrBadRequest), ShouldBeTrue)
			So(errors.Is(err, cause), ShouldBeTrue)
			So(err.Error(), ShouldEqual, "api.op: bad request: boom")
		})

		Convey("Then NewKind and Wrap should format their parts", func() {
			So(api.NewKind("api.op", api.ErrUnavailable).Error(), ShouldEqual, "api.op: service unavailable")
			So(api.Wrap("api.op", cause).Error(), ShouldEqual, "api.op: boom")
			So(api.Wrap("api.op", nil), ShouldBeNil)
		})
	})
}
