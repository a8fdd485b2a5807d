// Package advice asks a text-generation service for a short,
// prioritized recommendation over the user's debts. The call is best
// effort: any failure yields a fixed fallback sentence, never an error
// surfaced to the user.
package advice

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"sync/atomic"
	"time"

	"github.com/debtflow-control/backend/internal/models"
	"github.com/debtflow-control/backend/internal/types"
	"github.com/rs/zerolog/log"
)

// Fallback is returned whenever the text-generation service cannot be
// reached or answers with garbage.
const Fallback = "O consultor virtual está indisponível no momento. Tente novamente mais tarde."

// emptyAnswer is returned when the service responds without any text.
const emptyAnswer = "Não foi possível gerar uma análise no momento."

// ErrInFlight signals that an advice request is already running.
// Advice is user-triggered and must not be re-triggered while pending.
var ErrInFlight = errors.New("an advice request is already in progress")

const cacheTTL = time.Hour

// Service calls the Gemini generateContent endpoint.
//
// The exported fields exist so tests can point the service at a stub
// server; production code uses NewService.
type Service struct {
	APIKey     string
	BaseURL    string
	Model      string
	HTTPClient *http.Client

	cache    Cache
	inFlight atomic.Bool
}

// NewService configures the advice service from the environment.
// Without GEMINI_API_KEY every request resolves to the fallback.
func NewService(cache Cache) *Service {
	return &Service{
		APIKey:  os.Getenv("GEMINI_API_KEY"),
		BaseURL: "https://generativelanguage.googleapis.com/v1beta/models",
		Model:   "gemini-2.5-flash",
		HTTPClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		cache: cache,
	}
}

// debtSummary is the compact per-debt payload sent to the service.
// Field names follow the original prompt contract.
type debtSummary struct {
	Descricao         string  `json:"descricao"`
	ValorTotal        float64 `json:"valor_total"`
	ParcelasRestantes int     `json:"parcelas_restantes"`
	ProximoVencimento string  `json:"proximo_vencimento"`
	Status            string  `json:"status"`
}

func summarize(debts []models.Debt, today types.Day) []debtSummary {
	summaries := make([]debtSummary, 0, len(debts))

	for _, debt := range debts {
		total, _ := debt.TotalValue.Float64()

		summary := debtSummary{
			Descricao:         debt.Description,
			ValorTotal:        total,
			ParcelasRestantes: debt.TotalInstallments - debt.PaidCount(),
			ProximoVencimento: "N/A",
			Status:            debt.Status(today).Label(),
		}

		if next, ok := debt.NextUnpaid(); ok {
			summary.ProximoVencimento = next.DueDate.String()
		}

		summaries = append(summaries, summary)
	}

	return summaries
}

// Analyze produces the prioritization advice for the debt collection.
//
// It returns ErrInFlight when a request is already pending. All other
// failure modes resolve to the fallback sentence with a nil error,
// logged for diagnostics only.
func (s *Service) Analyze(ctx context.Context, debts []models.Debt, today types.Day) (string, error) {
	if !s.inFlight.CompareAndSwap(false, true) {
		return "", ErrInFlight
	}
	defer s.inFlight.Store(false)

	summaries := summarize(debts, today)

	data, err := json.MarshalIndent(summaries, "", "  ")
	if err != nil {
		log.Error().Err(err).Msg("advice: could not marshal debt summary")
		return Fallback, nil
	}

	if s.cache != nil {
		digest := sha256.Sum256(data)
		key := "advice:" + hex.EncodeToString(digest[:])

		if cached, ok := s.cache.Get(ctx, key); ok {
			return cached, nil
		}

		answer := s.generate(ctx, string(data))
		if answer != Fallback {
			s.cache.Set(ctx, key, answer, cacheTTL)
		}

		return answer, nil
	}

	return s.generate(ctx, string(data)), nil
}

func (s *Service) generate(ctx context.Context, summaryJSON string) string {
	if s.APIKey == "" {
		log.Debug().Msg("advice: GEMINI_API_KEY is not set, returning fallback")
		return Fallback
	}

	prompt := fmt.Sprintf(`Atue como um consultor financeiro pessoal. Analise a lista de dívidas abaixo.

Objetivo: Forneça um plano de ação curto e motivador (máximo 3 frases) focado em qual dívida priorizar pagar primeiro.
Considere datas de vencimento e status.

Dados:
%s

Responda em Português do Brasil.`, summaryJSON)

	answer, err := s.generateContent(ctx, prompt)
	if err != nil {
		log.Error().Err(err).Msg("advice: text generation failed")
		return Fallback
	}

	if answer == "" {
		return emptyAnswer
	}

	return answer
}

// Request and response shapes of the generateContent endpoint, reduced
// to the fields this service touches.
type generateRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

func (s *Service) generateContent(ctx context.Context, prompt string) (string, error) {
	body, err := json.Marshal(generateRequest{
		Contents: []content{
			{Parts: []part{{Text: prompt}}},
		},
	})
	if err != nil {
		return "", err
	}

	url := fmt.Sprintf("%s/%s:generateContent", s.BaseURL, s.Model)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(body))
	if err != nil {
		return "", err
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", s.APIKey)

	resp, err := s.HTTPClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		message, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("API error (status %d): %s", resp.StatusCode, string(message))
	}

	var parsed generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", err
	}

	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		return "", nil
	}

	var text strings.Builder
	for _, p := range parsed.Candidates[0].Content.Parts {
		text.WriteString(p.Text)
	}

	return strings.TrimSpace(text.String()), nil
}
