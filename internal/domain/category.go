package domain

import "fmt"

type category struct {
	label string
	code  string
}

// categories is ordered as the dropdowns present them.
var categories = []category{
	{"알고리즘", "ALGORITHM"},
	{"프로그래밍 언어", "PROGRAMMING_LANGUAGE"},
	{"네트워크", "NETWORK"},
	{"운영체제", "OPERATING_SYSTEM"},
	{"웹 개발", "WEB_DEVELOPMENT"},
	{"모바일 개발", "MOBILE_DEVELOPMENT"},
	{"데브옵스/인프라", "DEVOPS_INFRA"},
	{"데이터베이스", "DATABASE"},
	{"소프트웨어 공학", "SOFTWARE_ENGINEERING"},
}

var difficulties = []category{
	{"하", "EASY"},
	{"중", "NORMAL"},
	{"상", "HARD"},
}

// Categories returns the display labels of every quiz category.
func Categories() []string {
	return labels(categories)
}

// Difficulties returns the display labels of every difficulty tier.
func Difficulties() []string {
	return labels(difficulties)
}

// ToBackendCode maps a category display label to the code the API expects.
func ToBackendCode(label string) (string, error) {
	for _, c := range categories {
		if c.label == label {
			return c.code, nil
		}
	}
	return "", fmt.Errorf("%w: label %q", ErrUnknownCategory, label)
}

// ToDisplayLabel maps a backend category code back to its display label.
func ToDisplayLabel(code string) (string, error) {
	for _, c := range categories {
		if c.code == code {
			return c.label, nil
		}
	}
	return "", fmt.Errorf("%w: code %q", ErrUnknownCategory, code)
}

// DifficultyCode maps a difficulty label (하/중/상) to EASY/NORMAL/HARD.
func DifficultyCode(label string) (string, error) {
	for _, d := range difficulties {
		if d.label == label {
			return d.code, nil
		}
	}
	return "", fmt.Errorf("%w: label %q", ErrUnknownDifficulty, label)
}

// DifficultyLabel is the inverse of DifficultyCode.
func DifficultyLabel(code string) (string, error) {
	for _, d := range difficulties {
		if d.code == code {
			return d.label, nil
		}
	}
	return "", fmt.Errorf("%w: code %q", ErrUnknownDifficulty, code)
}

func labels(entries []category) []string {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.label)
	}
	return out
}
