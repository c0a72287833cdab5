// Package suggest calls the external categorization collaborator. The
// collaborator is opaque: it takes a transaction description plus spending
// context and proposes a category. Failures never touch stored state.
package suggest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	apperrors "github.com/zkoymen/Dime-Darling/internal/errors"
)

// Request is the input to the categorization collaborator.
type Request struct {
	Description            string   `json:"description"`
	PastSpendingSummary    string   `json:"pastSpendingSummary"`
	CandidateCategoryNames []string `json:"candidateCategoryNames"`
}

// Suggestion is the collaborator's proposal.
type Suggestion struct {
	SuggestedCategory string  `json:"suggestedCategory"`
	Confidence        float64 `json:"confidence"`
	Reasoning         string  `json:"reasoning,omitempty"`
}

// Suggester proposes a category for a transaction description.
type Suggester interface {
	Suggest(ctx context.Context, req Request) (*Suggestion, error)
}

// Client talks to the categorization flow over HTTP.
type Client struct {
	httpClient *http.Client
	baseURL    string // overridable for tests
}

// NewClient creates a categorization client for the given endpoint.
func NewClient(httpClient *http.Client, baseURL string) *Client {
	return &Client{httpClient: httpClient, baseURL: baseURL}
}

// Suggest posts the request to the flow endpoint and decodes the proposal.
// Any transport, status, or decode failure surfaces as ErrSuggestionFailed.
func (c *Client) Suggest(ctx context.Context, req Request) (*Suggestion, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrSuggestionFailed, err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(body))
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrSuggestionFailed, err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrSuggestionFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, apperrors.Wrap(apperrors.ErrSuggestionFailed,
			fmt.Errorf("categorization flow returned status %d", resp.StatusCode))
	}

	var suggestion Suggestion
	if err := json.NewDecoder(resp.Body).Decode(&suggestion); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrSuggestionFailed, err)
	}
	if suggestion.Confidence < 0 || suggestion.Confidence > 1 {
		return nil, apperrors.Wrap(apperrors.ErrSuggestionFailed,
			fmt.Errorf("confidence %f out of range", suggestion.Confidence))
	}
	return &suggestion, nil
}
