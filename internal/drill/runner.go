package drill

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/okian/claimtrainer/pkg/logger"
)

const defaultWorkers = 4

// Run drills every claim the service lists and reports the outcome. It
// returns ErrDrillFailed when any claim misses full marks.
func Run(ctx context.Context, cfg *Config) (Report, error) {
	start := time.Now()
	workers := cfg.Workers
	if workers < 1 {
		workers = defaultWorkers
	}
	log := logger.Get()
	client := newHTTPClient(cfg.BaseURL, cfg.Timeout)

	log.Info(ctx, "starting claims drill",
		logger.String("baseURL", cfg.BaseURL),
		logger.Int("workers", workers),
		logger.Duration("timeout", cfg.Timeout),
	)

	if err := checkServiceHealth(ctx, client); err != nil {
		return Report{}, err
	}

	var list claimsResponse
	if err := client.get(ctx, "/api/claims", &list); err != nil {
		return Report{}, fmt.Errorf("list claims: %w", err)
	}
	var opts options
	if err := client.get(ctx, "/api/claims/options", &opts); err != nil {
		return Report{}, fmt.Errorf("list options: %w", err)
	}
	nextStep := ""
	if len(opts.NextSteps) > 0 {
		nextStep = opts.NextSteps[0].ID
	}

	outcomes := drillAll(ctx, client, list.Claims, opts.RedFlags, nextStep, workers)

	report := Report{Claims: len(outcomes)}
	for _, o := range outcomes {
		if o.Err != nil {
			report.Failed = append(report.Failed, o)
			log.Error(ctx, "claim drill failed", logger.Int("claim", o.ClaimID), logger.Error(o.Err))
			continue
		}
		report.Passed++
		if cfg.Verbose {
			log.Info(ctx, "claim drilled", logger.Int("claim", o.ClaimID), logger.Int("score", o.Score), logger.String("tier", o.Tier))
		}
	}

	var dash dashboard
	if err := client.get(ctx, "/api/dashboard", &dash); err != nil {
		log.Warn(ctx, "failed to read dashboard", logger.Error(err))
	}
	report.Reviewed = dash.Metrics.ClaimsReviewed
	report.Duration = time.Since(start)

	log.Info(ctx, "drill finished",
		logger.Int("claims", report.Claims),
		logger.Int("passed", report.Passed),
		logger.Int("failed", len(report.Failed)),
		logger.Int("reviewed", report.Reviewed),
		logger.Duration("duration", report.Duration),
	)
	if len(report.Failed) > 0 {
		return report, fmt.Errorf("%w: %d of %d claims", ErrDrillFailed, len(report.Failed), report.Claims)
	}
	return report, nil
}

// drillAll fans claims out to a worker pool and returns outcomes in list order.
func drillAll(ctx context.Context, client *httpClient, rows []claimRow, redFlags []string, nextStep string, workers int) []Outcome {
	outcomes := make([]Outcome, len(rows))
	jobs := make(chan int, workers*2)
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				outcomes[i] = drillClaim(ctx, client, rows[i], redFlags, nextStep)
			}
		}()
	}

	go func() {
		defer close(jobs)
		for i := range rows {
			select {
			case <-ctx.Done():
				return
			case jobs <- i:
			}
		}
	}()

	wg.Wait()

	for i := range outcomes {
		if outcomes[i].ClaimID == 0 && outcomes[i].Err == nil {
			outcomes[i] = Outcome{ClaimID: rows[i].ID, Err: ctx.Err()}
		}
	}
	return outcomes
}

// drillClaim runs one session with the ideal answers and discards it.
func drillClaim(ctx context.Context, client *httpClient, row claimRow, redFlags []string, nextStep string) Outcome {
	out := Outcome{ClaimID: row.ID}

	var sess session
	body := map[string]int{"claim_id": row.ID}
	if err := client.do(ctx, http.MethodPost, "/api/sessions", body, &sess, http.StatusCreated); err != nil {
		out.Err = fmt.Errorf("start session: %w", err)
		return out
	}
	path := "/api/sessions/" + sess.ID
	defer func() {
		if err := client.do(context.WithoutCancel(ctx), http.MethodDelete, path, nil, nil, http.StatusNoContent); err != nil {
			logger.Get().Warn(ctx, "failed to end session", logger.String("session", sess.ID), logger.Error(err))
		}
	}()

	for _, a := range IdealActions(row.FraudScore, redFlags, nextStep) {
		if err := client.do(ctx, http.MethodPost, path+"/actions", a, &sess, http.StatusOK); err != nil {
			out.Err = fmt.Errorf("action %s: %w", a.Type, err)
			return out
		}
	}

	if sess.State.Result == nil {
		out.Err = errors.New("submitted session carries no result")
		return out
	}
	out.Score = sess.State.Result.Score
	out.Tier = sess.State.Result.Tier
	if out.Score != 100 {
		out.Err = fmt.Errorf("%w: claim %d scored %d", ErrNotPerfect, row.ID, out.Score)
	}
	return out
}

// checkServiceHealth verifies the service is running.
func checkServiceHealth(ctx context.Context, client *httpClient) error {
	if err := client.do(ctx, http.MethodGet, "/healthz", nil, nil, http.StatusOK); err != nil {
		return fmt.Errorf("%w: %w", ErrUnhealthy, err)
	}
	logger.Get().Info(ctx, "service is healthy")
	return nil
}
