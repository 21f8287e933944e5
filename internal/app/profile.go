package app

import (
	"context"

	"quiz-author/internal/domain"
)

// FeaturedLimit is how many achieved badges the profile summary shows.
const FeaturedLimit = 3

// ProfileView is what the profile page renders.
type ProfileView struct {
	Profile  domain.Profile
	Featured []domain.Achievement
}

// ProfileService assembles the profile page.
type ProfileService struct {
	loader ProfileLoader
}

func NewProfileService(loader ProfileLoader) *ProfileService {
	return &ProfileService{loader: loader}
}

func (s *ProfileService) View(ctx context.Context) (ProfileView, error) {
	profile, err := s.loader.LoadProfile(ctx)
	if err != nil {
		return ProfileView{}, err
	}
	return ProfileView{Profile: profile, Featured: Featured(profile.Achievements, FeaturedLimit)}, nil
}

// Featured returns up to limit achieved badges in catalog order.
func Featured(all []domain.Achievement, limit int) []domain.Achievement {
	if limit <= 0 {
		return nil
	}
	out := make([]domain.Achievement, 0, limit)
	for _, a := range all {
		if len(out) == limit {
			break
		}
		if a.Achieved {
			out = append(out, a)
		}
	}
	return out
}
