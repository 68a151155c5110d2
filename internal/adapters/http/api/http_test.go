package api_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/tapinapp/wordle-leaderboard/internal/adapters/http/api"
	service "github.com/tapinapp/wordle-leaderboard/internal/app"
	"github.com/tapinapp/wordle-leaderboard/pkg/logger"
)

func TestMain(m *testing.M) {
	if err := logger.Init(); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	svc := service.New(service.WithUsernameSeed(1))
	if err := svc.Start(context.Background()); err != nil {
		t.Fatalf("failed to start service: %v", err)
	}
	t.Cleanup(svc.Stop)

	server := api.NewServer(svc, svc, 5, 10)
	return server.Router(context.Background())
}

func doRequest(router http.Handler, method, target, body string) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var out map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("response is not JSON: %v\nbody: %s", err, rec.Body.String())
	}
	return out
}

func submitScore(router http.Handler, guesses, timeSeconds int, date string) *httptest.ResponseRecorder {
	body := fmt.Sprintf(`{"guesses": %d, "time_seconds": %d, "puzzle_date": %q}`, guesses, timeSeconds, date)
	return doRequest(router, http.MethodPost, "/api/leaderboard/score", body)
}

func TestSubmitScore(t *testing.T) {
	Convey("Given the API router", t, func() {
		router := newTestRouter(t)

		Convey("When posting a valid score", func() {
			rec := submitScore(router, 3, 95, "2026-02-02")

			Convey("Then it returns 201 with the created record", func() {
				So(rec.Code, ShouldEqual, http.StatusCreated)
				So(rec.Header().Get("Content-Type"), ShouldStartWith, "application/json")

				body := decodeBody(t, rec)
				So(body["success"], ShouldBeTrue)

				score := body["score"].(map[string]any)
				So(score["id"], ShouldNotBeEmpty)
				So(score["username"], ShouldNotBeEmpty)
				So(score["guesses"], ShouldEqual, 3)
				So(score["time_seconds"], ShouldEqual, 95)
				So(score["puzzle_date"], ShouldEqual, "2026-02-02")
			})
		})

		Convey("When the body is not JSON", func() {
			rec := doRequest(router, http.MethodPost, "/api/leaderboard/score", "not json")

			Convey("Then it returns 400 with an error envelope", func() {
				So(rec.Code, ShouldEqual, http.StatusBadRequest)

				body := decodeBody(t, rec)
				So(body["success"], ShouldBeFalse)
				So(body["error"], ShouldEqual, "request body must be JSON")
			})
		})

		Convey("When required fields are missing", func() {
			rec := doRequest(router, http.MethodPost, "/api/leaderboard/score", `{"guesses": 3}`)

			Convey("Then the error names the missing fields", func() {
				So(rec.Code, ShouldEqual, http.StatusBadRequest)

				body := decodeBody(t, rec)
				So(body["error"], ShouldEqual, "missing required fields: time_seconds, puzzle_date")
			})
		})

		Convey("When guesses is out of range", func() {
			for _, guesses := range []int{0, 7, -1} {
				rec := submitScore(router, guesses, 95, "2026-02-02")
				So(rec.Code, ShouldEqual, http.StatusBadRequest)
				So(decodeBody(t, rec)["error"], ShouldEqual, "guesses must be an integer between 1 and 6")
			}
		})

		Convey("When time_seconds is negative", func() {
			rec := submitScore(router, 3, -5, "2026-02-02")

			So(rec.Code, ShouldEqual, http.StatusBadRequest)
			So(decodeBody(t, rec)["error"], ShouldEqual, "time_seconds must be a non-negative integer")
		})

		Convey("When the puzzle date is malformed", func() {
			for _, date := range []string{"02-02-2026", "2026/02/02", "2026-13-40", "yesterday"} {
				rec := submitScore(router, 3, 95, date)
				So(rec.Code, ShouldEqual, http.StatusBadRequest)
				So(decodeBody(t, rec)["error"], ShouldEqual, "puzzle_date must be in YYYY-MM-DD format")
			}
		})

		Convey("When a rejected submission is followed by a query", func() {
			submitScore(router, 0, 95, "2026-02-02")
			rec := doRequest(router, http.MethodGet, "/api/leaderboard/2026-02-02", "")

			Convey("Then the day holds no records", func() {
				So(rec.Code, ShouldEqual, http.StatusOK)

				body := decodeBody(t, rec)
				So(body["leaderboard"], ShouldBeEmpty)
			})
		})
	})
}

func TestGetLeaderboard(t *testing.T) {
	Convey("Given a router with three scores on one day", t, func() {
		router := newTestRouter(t)

		submitScore(router, 4, 120, "2026-02-02")
		submitScore(router, 3, 95, "2026-02-02")
		submitScore(router, 3, 200, "2026-02-02")

		Convey("When requesting the day's leaderboard", func() {
			rec := doRequest(router, http.MethodGet, "/api/leaderboard/2026-02-02", "")

			Convey("Then entries come back ranked", func() {
				So(rec.Code, ShouldEqual, http.StatusOK)

				body := decodeBody(t, rec)
				So(body["success"], ShouldBeTrue)
				So(body["puzzle_date"], ShouldEqual, "2026-02-02")

				entries := body["leaderboard"].([]any)
				So(entries, ShouldHaveLength, 3)

				first := entries[0].(map[string]any)
				So(first["rank"], ShouldEqual, 1)
				So(first["guesses"], ShouldEqual, 3)
				So(first["time_seconds"], ShouldEqual, 95)
				So(first["guesses_display"], ShouldEqual, strings.Repeat("🟩", 3))
			})
		})

		Convey("When requesting an empty day", func() {
			rec := doRequest(router, http.MethodGet, "/api/leaderboard/2030-01-01", "")

			Convey("Then it returns 200 with an empty leaderboard", func() {
				So(rec.Code, ShouldEqual, http.StatusOK)

				body := decodeBody(t, rec)
				So(body["success"], ShouldBeTrue)
				So(body["leaderboard"], ShouldBeEmpty)
			})
		})

		Convey("When the date segment is malformed", func() {
			rec := doRequest(router, http.MethodGet, "/api/leaderboard/not-a-date", "")

			Convey("Then it returns 400", func() {
				So(rec.Code, ShouldEqual, http.StatusBadRequest)
				So(decodeBody(t, rec)["error"], ShouldEqual, "invalid date format. Use YYYY-MM-DD")
			})
		})
	})
}

func TestGetLeaderboard_Limit(t *testing.T) {
	Convey("Given a router with twelve scores on one day", t, func() {
		router := newTestRouter(t)

		for i := 0; i < 12; i++ {
			submitScore(router, i%6+1, 60+i, "2026-02-02")
		}

		entriesFor := func(target string) []any {
			rec := doRequest(router, http.MethodGet, target, "")
			So(rec.Code, ShouldEqual, http.StatusOK)
			return decodeBody(t, rec)["leaderboard"].([]any)
		}

		Convey("When no limit is given, the default of five applies", func() {
			So(entriesFor("/api/leaderboard/2026-02-02"), ShouldHaveLength, 5)
		})

		Convey("When the limit exceeds the maximum, it clamps to ten", func() {
			So(entriesFor("/api/leaderboard/2026-02-02?limit=100"), ShouldHaveLength, 10)
		})

		Convey("When the limit is below one, it clamps to one", func() {
			So(entriesFor("/api/leaderboard/2026-02-02?limit=0"), ShouldHaveLength, 1)
			So(entriesFor("/api/leaderboard/2026-02-02?limit=-3"), ShouldHaveLength, 1)
		})

		Convey("When the limit is in range, it is honored", func() {
			So(entriesFor("/api/leaderboard/2026-02-02?limit=7"), ShouldHaveLength, 7)
		})

		Convey("When the limit is not a number", func() {
			rec := doRequest(router, http.MethodGet, "/api/leaderboard/2026-02-02?limit=many", "")

			Convey("Then it returns 400", func() {
				So(rec.Code, ShouldEqual, http.StatusBadRequest)
				So(decodeBody(t, rec)["success"], ShouldBeFalse)
			})
		})
	})
}

func TestDatesAndClear(t *testing.T) {
	Convey("Given a router with scores on two days", t, func() {
		router := newTestRouter(t)

		submitScore(router, 3, 95, "2026-02-01")
		submitScore(router, 4, 120, "2026-02-02")

		Convey("When listing dates", func() {
			rec := doRequest(router, http.MethodGet, "/api/leaderboard/dates", "")

			Convey("Then both days are present", func() {
				So(rec.Code, ShouldEqual, http.StatusOK)

				body := decodeBody(t, rec)
				So(body["success"], ShouldBeTrue)
				So(body["dates"], ShouldHaveLength, 2)
			})
		})

		Convey("When deleting one day", func() {
			rec := doRequest(router, http.MethodDelete, "/api/leaderboard/2026-02-01", "")

			Convey("Then it acknowledges and only the other day remains", func() {
				So(rec.Code, ShouldEqual, http.StatusOK)
				So(decodeBody(t, rec)["success"], ShouldBeTrue)

				dates := decodeBody(t, doRequest(router, http.MethodGet, "/api/leaderboard/dates", ""))
				So(dates["dates"], ShouldHaveLength, 1)
			})
		})

		Convey("When deleting everything", func() {
			rec := doRequest(router, http.MethodDelete, "/api/leaderboard", "")

			Convey("Then no dates remain", func() {
				So(rec.Code, ShouldEqual, http.StatusOK)

				dates := decodeBody(t, doRequest(router, http.MethodGet, "/api/leaderboard/dates", ""))
				So(dates["dates"], ShouldBeEmpty)
			})
		})
	})
}

func TestServiceEndpoints(t *testing.T) {
	Convey("Given the API router", t, func() {
		router := newTestRouter(t)

		Convey("When requesting the health endpoint", func() {
			rec := doRequest(router, http.MethodGet, "/api/leaderboard/health", "")

			Convey("Then it reports healthy", func() {
				So(rec.Code, ShouldEqual, http.StatusOK)

				body := decodeBody(t, rec)
				So(body["status"], ShouldEqual, "healthy")
				So(body["service"], ShouldEqual, "wordle-leaderboard")
			})
		})

		Convey("When requesting the index", func() {
			rec := doRequest(router, http.MethodGet, "/", "")

			Convey("Then it describes the API", func() {
				So(rec.Code, ShouldEqual, http.StatusOK)

				body := decodeBody(t, rec)
				So(body["service"], ShouldEqual, "Wordle Leaderboard API")
				So(body["endpoints"], ShouldNotBeEmpty)
			})
		})

		Convey("When requesting stats", func() {
			rec := doRequest(router, http.MethodGet, "/stats", "")

			Convey("Then the service state is reported", func() {
				So(rec.Code, ShouldEqual, http.StatusOK)
				So(decodeBody(t, rec)["started"], ShouldBeTrue)
			})
		})

		Convey("When requesting the metrics endpoint", func() {
			rec := doRequest(router, http.MethodGet, "/healthz", "")

			Convey("Then Prometheus text exposition comes back", func() {
				So(rec.Code, ShouldEqual, http.StatusOK)
				So(rec.Body.String(), ShouldContainSubstring, "wordle_leaderboard")
			})
		})

		Convey("When requesting an unknown route", func() {
			rec := doRequest(router, http.MethodGet, "/nope", "")

			Convey("Then it returns a JSON 404 envelope", func() {
				So(rec.Code, ShouldEqual, http.StatusNotFound)
				So(decodeBody(t, rec)["success"], ShouldBeFalse)
			})
		})

		Convey("When using a wrong method on a known route", func() {
			rec := doRequest(router, http.MethodPut, "/api/leaderboard/score", `{}`)

			Convey("Then it returns a JSON 405 envelope", func() {
				So(rec.Code, ShouldEqual, http.StatusMethodNotAllowed)
				So(decodeBody(t, rec)["success"], ShouldBeFalse)
			})
		})

		Convey("When sending a CORS preflight", func() {
			req := httptest.NewRequest(http.MethodOptions, "/api/leaderboard/score", nil)
			req.Header.Set("Origin", "http://example.com")
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			Convey("Then it is allowed", func() {
				So(rec.Code, ShouldEqual, http.StatusOK)
				So(rec.Header().Get("Access-Control-Allow-Origin"), ShouldEqual, "*")
				So(rec.Header().Get("Access-Control-Allow-Methods"), ShouldContainSubstring, "POST")
			})
		})
	})
}
