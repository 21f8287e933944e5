package memory

import (
	"context"

	"quiz-author/internal/domain"
)

// StaticProfileLoader serves a fixed profile, used when no database is configured.
type StaticProfileLoader struct {
	profile domain.Profile
}

func NewStaticProfileLoader(profile domain.Profile) *StaticProfileLoader {
	return &StaticProfileLoader{profile: profile}
}

func (l *StaticProfileLoader) LoadProfile(_ context.Context) (domain.Profile, error) {
	p := l.profile
	p.Achievements = append([]domain.Achievement(nil), l.profile.Achievements...)
	return p, nil
}

// DefaultProfile is the demo profile shown before a database is wired.
func DefaultProfile() domain.Profile {
	return domain.Profile{
		Nickname:    "퀴즈마스터",
		AvatarURL:   "https://cdn.pixabay.com/photo/2015/10/05/22/37/blank-profile-picture-973460_1280.png",
		Rating:      1500,
		SolvedCount: 250,
		AccuracyPct: 75,
		Achievements: []domain.Achievement{
			{Icon: "star_outlined", Title: "퀴즈 마스터", Description: "100문제 연속 정답", Achieved: true},
			{Icon: "building_bank", Title: "지식의 탑", Description: "1000문제 해결", Achieved: false},
			{Icon: "flag_outlined", Title: "개근왕", Description: "30일 연속 접속", Achieved: true},
		},
	}
}
