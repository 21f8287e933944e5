package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"quiz-author/internal/domain"
)

// ErrServiceUnavailable wraps transport failures (dial, timeout, reset).
var ErrServiceUnavailable = errors.New("quiz api unavailable")

var validate = validator.New()

// APIError is a non-2xx response from the backend.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if strings.TrimSpace(e.Message) == "" {
		return fmt.Sprintf("request failed with status %d", e.StatusCode)
	}
	return e.Message
}

const (
	pathQuiz        = "/quiz"
	pathComments    = "/quiz/comments"
	pathPrivateRoom = "/api/game/private"
)

// Client talks to the quiz backend over JSON/HTTP.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

type envelope struct {
	Result json.RawMessage `json:"result"`
}

type errorResponse struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

// NewClient builds a client for baseURL. A nil httpClient gets a 10s timeout.
func NewClient(baseURL, token string, httpClient *http.Client) *Client {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		baseURL = "http://127.0.0.1:8080"
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	return &Client{baseURL: baseURL, token: token, httpClient: httpClient}
}

// CreateQuiz posts a new quiz.
func (c *Client) CreateQuiz(ctx context.Context, req domain.CreateQuizRequest) error {
	if err := validate.Struct(req); err != nil {
		return fmt.Errorf("create quiz payload: %w", err)
	}
	return c.doJSON(ctx, http.MethodPost, pathQuiz, req, nil)
}

// UpdateQuiz replaces an existing quiz.
func (c *Client) UpdateQuiz(ctx context.Context, req domain.UpdateQuizRequest) error {
	if err := validate.Struct(req); err != nil {
		return fmt.Errorf("update quiz payload: %w", err)
	}
	return c.doJSON(ctx, http.MethodPut, pathQuiz+"/"+strconv.FormatInt(req.ID, 10), req, nil)
}

// LoadQuiz fetches a quiz record for the edit page.
func (c *Client) LoadQuiz(ctx context.Context, quizID int64) (domain.QuizRecord, error) {
	var env envelope
	err := c.doJSON(ctx, http.MethodGet, pathQuiz+"/"+strconv.FormatInt(quizID, 10), nil, &env)
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound {
		return domain.QuizRecord{}, fmt.Errorf("%w: %d", domain.ErrQuizNotFound, quizID)
	}
	if err != nil {
		return domain.QuizRecord{}, err
	}
	var rec domain.QuizRecord
	if err := json.Unmarshal(env.Result, &rec); err != nil {
		return domain.QuizRecord{}, fmt.Errorf("decode quiz: %w", err)
	}
	if rec.ID == 0 {
		rec.ID = quizID
	}
	return rec, nil
}

// CreatePrivateRoom asks the backend for a private game room. The raw
// response is returned for logging only.
func (c *Client) CreatePrivateRoom(ctx context.Context, req domain.GameRoomRequest) (json.RawMessage, error) {
	if err := validate.Struct(req); err != nil {
		return nil, fmt.Errorf("game room payload: %w", err)
	}
	var raw json.RawMessage
	if err := c.doJSON(ctx, http.MethodPost, pathPrivateRoom, req, &raw); err != nil {
		return nil, err
	}
	return raw, nil
}

// AddComment posts a comment or reply on a quiz.
func (c *Client) AddComment(ctx context.Context, req domain.CommentRequest) error {
	if err := validate.Struct(req); err != nil {
		return fmt.Errorf("comment payload: %w", err)
	}
	return c.doJSON(ctx, http.MethodPost, pathComments, req, nil)
}

func (c *Client) doJSON(ctx context.Context, method, path string, requestBody any, responseBody any) error {
	var body io.Reader
	if requestBody != nil {
		encoded, err := json.Marshal(requestBody)
		if err != nil {
			return err
		}
		body = bytes.NewReader(encoded)
	}

	request, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	request.Header.Set("Accept", "application/json")
	request.Header.Set("X-Request-ID", uuid.NewString())
	if requestBody != nil {
		request.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		request.Header.Set("Authorization", "Bearer "+c.token)
	}

	response, err := c.httpClient.Do(request)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrServiceUnavailable, err)
	}
	defer response.Body.Close()

	if response.StatusCode < http.StatusOK || response.StatusCode >= http.StatusMultipleChoices {
		apiErr := APIError{StatusCode: response.StatusCode}
		var payload errorResponse
		if err := json.NewDecoder(response.Body).Decode(&payload); err == nil {
			apiErr.Message = strings.TrimSpace(payload.Message)
			if apiErr.Message == "" {
				apiErr.Message = strings.TrimSpace(payload.Error)
			}
		}
		if apiErr.Message == "" {
			apiErr.Message = response.Status
		}
		return &apiErr
	}

	if responseBody == nil {
		_, _ = io.Copy(io.Discard, response.Body)
		return nil
	}
	if err := json.NewDecoder(response.Body).Decode(responseBody); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}
