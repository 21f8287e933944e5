package cli

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
)

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append(args, "--config", filepath.Join(t.TempDir(), "missing.yaml")))
	err := cmd.Execute()
	return out.String(), err
}

func TestCategoriesCommand(t *testing.T) {
	out, err := runCLI(t, "categories")
	if err != nil {
		t.Fatalf("categories: %v", err)
	}
	for _, want := range []string{"알고리즘", "SOFTWARE_ENGINEERING", "NORMAL"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}
}

func TestQuizCreateCommand(t *testing.T) {
	var body map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&body)
		w.WriteHeader(http.StatusCreated)
	}))
	defer server.Close()

	out, err := runCLI(t, "quiz", "create", "--api-url", server.URL,
		"--category", "네트워크",
		"--content", "Which port does DNS use?",
		"--option", "53", "--option", "80", "--option", "443", "--option", "22",
		"--answer", "1",
		"--explanation", "DNS listens on 53.",
		"--tag", "dns",
	)
	if err != nil {
		t.Fatalf("quiz create: %v\n%s", err, out)
	}
	if body["category"] != "NETWORK" || body["answerNumber"].(float64) != 1 {
		t.Fatalf("unexpected body %v", body)
	}
	if !strings.Contains(out, "Quiz created!") {
		t.Fatalf("expected success toast in output:\n%s", out)
	}
}

func TestQuizCreateReportsMissingFields(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
	}))
	defer server.Close()

	out, err := runCLI(t, "quiz", "create", "--api-url", server.URL,
		"--category", "네트워크",
		"--option", "53", "--option", "2=80",
	)
	if err == nil {
		t.Fatalf("expected validation error")
	}
	if calls != 0 {
		t.Fatalf("expected no request, got %d", calls)
	}
	for _, want := range []string{"content: question is required", "option 3", "answer:"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}
}

func TestQuizCreateRejectsUnknownCategory(t *testing.T) {
	if _, err := runCLI(t, "quiz", "create", "--category", "요리"); err == nil {
		t.Fatalf("expected unknown category error")
	}
}

func TestProfileCommandUsesStaticProfile(t *testing.T) {
	out, err := runCLI(t, "profile")
	if err != nil {
		t.Fatalf("profile: %v", err)
	}
	if !strings.Contains(out, "퀴즈 마스터") || strings.Contains(out, "지식의 탑") {
		t.Fatalf("unexpected featured output:\n%s", out)
	}
}

func TestParseOption(t *testing.T) {
	if pos, text := parseOption("3=abc", 1); pos != 3 || text != "abc" {
		t.Fatalf("got %d %q", pos, text)
	}
	if pos, text := parseOption("a=b", 2); pos != 2 || text != "a=b" {
		t.Fatalf("got %d %q", pos, text)
	}
}

func TestGameCreateCommand(t *testing.T) {
	var (
		path string
		body map[string]any
	)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		_ = json.NewDecoder(r.Body).Decode(&body)
		_, _ = w.Write([]byte(`{"roomId":"r-9"}`))
	}))
	defer server.Close()

	out, err := runCLI(t, "game", "create", "--api-url", server.URL,
		"--topic", "네트워크", "--difficulty", "중", "--count", "7")
	if err != nil {
		t.Fatalf("game create: %v\n%s", err, out)
	}
	if path != "/api/game/private" {
		t.Fatalf("unexpected path %q", path)
	}
	if body["subject"] != "NETWORK" || body["level"] != "NORMAL" || body["quizCount"].(float64) != 7 {
		t.Fatalf("unexpected body %v", body)
	}
	if !strings.Contains(out, "-> /game/waiting") || !strings.Contains(out, "QuizCount:7") {
		t.Fatalf("expected waiting room handoff in output:\n%s", out)
	}
}

func TestGameCreateReportsMissingChoices(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
	}))
	defer server.Close()

	out, err := runCLI(t, "game", "create", "--api-url", server.URL)
	if err == nil {
		t.Fatalf("expected validation error")
	}
	if calls != 0 {
		t.Fatalf("expected no request, got %d", calls)
	}
	for _, want := range []string{"topic: choose a topic", "difficulty:"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}
}

func TestCommentAddCommand(t *testing.T) {
	var (
		path string
		body map[string]any
	)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		_ = json.NewDecoder(r.Body).Decode(&body)
		w.WriteHeader(http.StatusCreated)
	}))
	defer server.Close()

	out, err := runCLI(t, "comment", "add", "--api-url", server.URL,
		"--quiz-id", "3", "--parent", "11", "--content", "nice one")
	if err != nil {
		t.Fatalf("comment add: %v\n%s", err, out)
	}
	if path != "/quiz/comments" {
		t.Fatalf("unexpected path %q", path)
	}
	if body["quizId"].(float64) != 3 || body["parentCommentId"].(float64) != 11 || body["content"] != "nice one" {
		t.Fatalf("unexpected body %v", body)
	}
	if !strings.Contains(out, "comment posted") {
		t.Fatalf("expected confirmation in output:\n%s", out)
	}
}

func TestCommentAddRejectsBlankContent(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
	}))
	defer server.Close()

	if _, err := runCLI(t, "comment", "add", "--api-url", server.URL, "--quiz-id", "3", "--content", "  "); err == nil {
		t.Fatalf("expected blank comment error")
	}
	if calls != 0 {
		t.Fatalf("expected no request, got %d", calls)
	}
}
