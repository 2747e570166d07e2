// Package claimsource loads the claims collection from the claims backend,
// substituting a built-in sample collection when the backend cannot serve it.
package claimsource

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/okian/claimtrainer/internal/domain/model"
	"github.com/okian/claimtrainer/internal/domain/risk"
	"github.com/okian/claimtrainer/pkg/logger"
	"github.com/okian/claimtrainer/pkg/metrics"
	"github.com/shopspring/decimal"
)

// ClaimsPath is appended to the backend URL.
const ClaimsPath = "/db/claims"

// Origins of a loaded collection.
const (
	OriginRemote   = "remote"
	OriginFallback = "fallback"
)

// wireClaim is a backend record before validation.
type wireClaim struct {
	ID           int                 `json:"id" validate:"gte=0"`
	ClaimNumber  string              `json:"claim_number" validate:"required"`
	Category     string              `json:"category"`
	ClientName   string              `json:"client_name"`
	PolicyNumber string              `json:"policy_number"`
	Status       string              `json:"status"`
	FraudScore   *float64            `json:"fraud_score" validate:"required,gte=0,lte=100"`
	Amount       decimal.NullDecimal `json:"amount" validate:"-"`
	DateFiled    string              `json:"date_filed" validate:"omitempty,datetime=2006-01-02"`
	RedFlags     []string            `json:"red_flags" validate:"omitempty,dive,required"`
}

// Result is the outcome of one load. Err holds the recovered failure when
// Origin is OriginFallback.
type Result struct {
	Claims   []model.Claim
	Origin   string
	Rejected int
	Err      error
}

// Source fetches {baseURL}/db/claims once per Load.
type Source struct {
	baseURL  string
	client   *http.Client
	timeout  time.Duration
	log      logger.Logger
	validate *validator.Validate
}

// New creates a Source for the given backend URL. An empty URL always
// serves the fixture.
func New(baseURL string, opts ...Option) *Source {
	s := &Source{
		baseURL:  strings.TrimRight(baseURL, "/"),
		client:   &http.Client{},
		log:      logger.Nop(),
		validate: validator.New(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load performs the single fetch. It never fails: any network or payload
// failure is logged and the fixture is returned instead.
func (s *Source) Load(ctx context.Context) Result {
	claims, rejected, err := s.fetch(ctx)
	if err != nil {
		s.log.Warn(ctx, "claims backend unavailable, serving sample claims",
			logger.String("backend", s.baseURL),
			logger.Error(err),
		)
		metrics.RecordClaimsFetch(metrics.FetchFallback)
		fb := Fixture()
		metrics.UpdateClaimsLoaded(len(fb))
		return Result{Claims: fb, Origin: OriginFallback, Err: err}
	}

	metrics.RecordClaimsFetch(metrics.FetchRemote)
	metrics.UpdateClaimsLoaded(len(claims))
	s.log.Info(ctx, "claims loaded",
		logger.String("backend", s.baseURL),
		logger.Int("count", len(claims)),
		logger.Int("rejected", rejected),
	)
	return Result{Claims: claims, Origin: OriginRemote, Rejected: rejected}
}

func (s *Source) fetch(ctx context.Context) ([]model.Claim, int, error) {
	if s.baseURL == "" {
		return nil, 0, ErrNoBackend
	}
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+ClaimsPath, http.NoBody)
	if err != nil {
		return nil, 0, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("get %s: %w", ClaimsPath, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, 0, fmt.Errorf("%w: %d", ErrUnexpectedStatus, resp.StatusCode)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, 0, fmt.Errorf("read body: %w", err)
	}

	var raw []json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, 0, fmt.Errorf("%w: %w", ErrNotArray, err)
	}
	if raw == nil {
		// a literal null decodes without error
		return nil, 0, ErrNotArray
	}

	claims := make([]model.Claim, 0, len(raw))
	rejected := 0
	for i, r := range raw {
		c, err := s.decode(r)
		if err != nil {
			rejected++
			metrics.RecordClaimRejected()
			s.log.Warn(ctx, "dropping claim record", logger.Int("index", i), logger.Error(err))
			continue
		}
		claims = append(claims, c)
	}
	return claims, rejected, nil
}

func (s *Source) decode(raw json.RawMessage) (model.Claim, error) {
	var w wireClaim
	if err := json.Unmarshal(raw, &w); err != nil {
		return model.Claim{}, fmt.Errorf("%w: %w", ErrInvalidRecord, err)
	}
	if err := s.validate.Struct(w); err != nil {
		return model.Claim{}, fmt.Errorf("%w: %w", ErrInvalidRecord, err)
	}
	if err := risk.Validate(*w.FraudScore); err != nil {
		return model.Claim{}, fmt.Errorf("%w: %w", ErrInvalidRecord, err)
	}
	return model.Claim{
		ID:           w.ID,
		ClaimNumber:  w.ClaimNumber,
		Category:     w.Category,
		ClientName:   w.ClientName,
		PolicyNumber: w.PolicyNumber,
		Status:       w.Status,
		FraudScore:   *w.FraudScore,
		Amount:       w.Amount,
		DateFiled:    w.DateFiled,
		RedFlags:     w.RedFlags,
	}, nil
}
