package service

import (
	"context"
	"fmt"
	"io"

	"github.com/isrcorgin/ISRC-Backend/internal/blob"
	"github.com/isrcorgin/ISRC-Backend/internal/imageproc"
	"github.com/isrcorgin/ISRC-Backend/internal/model"
	"github.com/isrcorgin/ISRC-Backend/internal/repo"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// TeamForm is the flattened registration form the frontend posts.
type TeamForm struct {
	TeamName    string  `json:"teamName"`
	Country     string  `json:"country"`
	AgeGroup    string  `json:"ageGroup"`
	Topic       string  `json:"topic"`
	Category    string  `json:"category"`
	MentorName  string  `json:"mentorName"`
	MentorAge   string  `json:"mentorAge"`
	MentorEmail string  `json:"mentorEmail"`
	MentorPhone string  `json:"mentorPhone"`
	AmountDue   float64 `json:"amountDue"`
}

// TeamService covers the participant profile and team registration surface.
type TeamService interface {
	Profile(ctx context.Context, uid string) (*model.User, error)
	AllUsers(ctx context.Context) ([]model.User, error)
	RegisterTeam(ctx context.Context, uid string, form TeamForm, members []model.TeamMember) error
	// UpdateRoster replaces the mentor and member list without touching the
	// rest of the team subtree.
	UpdateRoster(ctx context.Context, uid string, mentor model.Mentor, members []model.TeamMember) error
	TeamNameExists(ctx context.Context, name string) (bool, error)
	UploadMemberImage(ctx context.Context, uid, memberName string, image io.Reader) (string, error)
}

type teamService struct {
	users  repo.UserRepository
	blobs  blob.Store
	logger *zap.Logger
}

func NewTeamService(users repo.UserRepository, blobs blob.Store, logger *zap.Logger) TeamService {
	return &teamService{users: users, blobs: blobs, logger: logger}
}

func (s *teamService) Profile(ctx context.Context, uid string) (*model.User, error) {
	return s.users.Get(ctx, uid)
}

func (s *teamService) RegisterTeam(ctx context.Context, uid string, form TeamForm, members []model.TeamMember) error {
	team := model.Team{
		TeamName: form.TeamName,
		Country:  form.Country,
		CompetitionTopic: model.CompetitionTopic{
			AgeGroup: form.AgeGroup,
			Topic:    form.Topic,
			Category: form.Category,
		},
		Mentor: model.Mentor{
			Name:  form.MentorName,
			Age:   form.MentorAge,
			Email: form.MentorEmail,
			Phone: form.MentorPhone,
		},
		Members: members,
	}
	return s.users.SetTeam(ctx, uid, team, form.AmountDue)
}

func (s *teamService) AllUsers(ctx context.Context) ([]model.User, error) {
	return s.users.All(ctx)
}

func (s *teamService) UpdateRoster(ctx context.Context, uid string, mentor model.Mentor, members []model.TeamMember) error {
	return s.users.UpdateTeamRoster(ctx, uid, mentor, members)
}

func (s *teamService) TeamNameExists(ctx context.Context, name string) (bool, error) {
	return s.users.TeamNameExists(ctx, name)
}

func (s *teamService) UploadMemberImage(ctx context.Context, uid, memberName string, image io.Reader) (string, error) {
	user, err := s.users.Get(ctx, uid)
	if err != nil {
		return "", err
	}

	var previousURL string
	if user.Team != nil {
		for _, member := range user.Team.Members {
			if member.Name == memberName {
				previousURL = member.ProfileImageURL
			}
		}
	}

	optimized, err := imageproc.OptimizeWebP(image)
	if err != nil {
		return "", fmt.Errorf("optimizing member image: %w", err)
	}

	key := "profile_images/" + uuid.NewString() + ".webp"
	url, err := s.blobs.Put(ctx, key, optimized)
	if err != nil {
		return "", err
	}

	if err := s.users.SetMemberImage(ctx, uid, memberName, url); err != nil {
		return "", err
	}

	// The old object is orphaned once the member record points elsewhere.
	if previousURL != "" {
		if err := s.blobs.Delete(ctx, previousURL); err != nil {
			s.logger.Warn("previous profile image not deleted",
				zap.String("url", previousURL), zap.Error(err))
		}
	}
	return url, nil
}
