package oracle

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/XEXEU22/volleyapp/config"
	"github.com/XEXEU22/volleyapp/internal/entities"

	"go.uber.org/zap"
)

// OpenAI calls an OpenAI-responses-style endpoint over plain HTTP.
type OpenAI struct {
	log        *zap.SugaredLogger
	cfg        config.OracleConfig
	httpClient *http.Client
}

// NewOpenAI builds the oracle client. A zero timeout leaves the runtime's own
// network timeout in charge.
func NewOpenAI(log *zap.SugaredLogger, cfg config.OracleConfig) *OpenAI {
	return &OpenAI{
		log:        log.Named("oracle.openai"),
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
	}
}

// BalanceTeams asks the oracle to partition players into teamCount teams and
// returns the validated id assignment.
func (o *OpenAI) BalanceTeams(ctx context.Context, players []entities.Player, teamCount int) ([][]string, error) {
	if strings.TrimSpace(o.cfg.APIKey) == "" {
		return nil, ErrMissingCredential
	}

	prompt, err := BuildPrompt(players, teamCount)
	if err != nil {
		return nil, err
	}

	output, err := o.invoke(ctx, prompt)
	if err != nil {
		return nil, err
	}

	assignment, err := ParseAssignment(output, teamCount)
	if err != nil {
		return nil, err
	}

	o.log.Infow("oracle assignment received", "teams", teamCount, "players", len(players))
	return assignment, nil
}

func (o *OpenAI) invoke(ctx context.Context, prompt string) (string, error) {
	requestBody, err := json.Marshal(map[string]any{
		"model": o.cfg.Model,
		"input": prompt,
	})
	if err != nil {
		return "", fmt.Errorf("marshal invoke request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, o.cfg.APIURL, bytes.NewReader(requestBody))
	if err != nil {
		return "", fmt.Errorf("build invoke request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	// Credential material travels only in the Authorization header and is
	// never echoed into errors or logs.
	req.Header.Set("Authorization", "Bearer "+o.cfg.APIKey)

	res, err := o.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("invoke request failed: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		body, err := io.ReadAll(io.LimitReader(res.Body, 4096))
		if err != nil {
			return "", fmt.Errorf("read invoke error body: %w", err)
		}
		return "", fmt.Errorf("invoke request status %d: %s", res.StatusCode, strings.TrimSpace(string(body)))
	}

	var payload struct {
		OutputText string `json:"output_text"`
		Output     []struct {
			Content []struct {
				Type string `json:"type"`
				Text string `json:"text"`
			} `json:"content"`
		} `json:"output"`
	}
	if err := json.NewDecoder(res.Body).Decode(&payload); err != nil {
		return "", fmt.Errorf("decode invoke response: %w", err)
	}

	outputText := strings.TrimSpace(payload.OutputText)
	if outputText == "" {
		for _, item := range payload.Output {
			for _, content := range item.Content {
				if strings.TrimSpace(content.Text) != "" {
					outputText = strings.TrimSpace(content.Text)
					break
				}
			}
			if outputText != "" {
				break
			}
		}
	}
	if outputText == "" {
		return "", fmt.Errorf("%w: missing output text", ErrBadResponse)
	}
	return outputText, nil
}
