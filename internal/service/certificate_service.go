package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/isrcorgin/ISRC-Backend/internal/certificate"
	"github.com/isrcorgin/ISRC-Backend/internal/model"
	"github.com/isrcorgin/ISRC-Backend/internal/repo"
	"github.com/isrcorgin/ISRC-Backend/internal/spreadsheet"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// CertificateService handles issuance, verification and the admin bulk
// spreadsheet flows.
type CertificateService interface {
	Verify(ctx context.Context, authCode string) (bson.M, error)
	// IssueTeamCertificates creates one "tm" certificate per fully-specified
	// team member. Members missing a name or auth code are skipped, reported
	// in the result list and never abort the rest of the loop.
	IssueTeamCertificates(ctx context.Context, user *model.User) ([]model.IssuanceResult, error)
	GenerateSessionCertificate(ctx context.Context, participantID string) (*model.Certificate, error)
	GenerateAllSessionCertificates(ctx context.Context) ([]model.IssuanceResult, error)
	AdminGenerate(ctx context.Context, cert model.Certificate) (string, error)
	All(ctx context.Context) ([]bson.M, error)
	// AllSession lists the participant forms the session generator works
	// from, which is what the admin panel has always displayed here.
	AllSession(ctx context.Context) ([]bson.M, error)
	Delete(ctx context.Context, id string) error
	ImportWorkbook(ctx context.Context, rows []spreadsheet.Row) ([]model.IssuanceResult, error)
	MatchWorkbook(ctx context.Context, rows []spreadsheet.Row) ([]bson.M, error)
}

type certificateService struct {
	certs  repo.CertificateRepository
	forms  repo.FormRepository // certification forms feed the session generator
	logger *zap.Logger
}

// NewCertificateService builds the service over the certificates collection
// and the certification-forms collection. The form repository must be the
// certification one: session certificate generation and the session listings
// read it, not the session_forms submissions.
func NewCertificateService(certs repo.CertificateRepository, certificationForms repo.FormRepository, logger *zap.Logger) CertificateService {
	return &certificateService{certs: certs, forms: certificationForms, logger: logger}
}

func (s *certificateService) Verify(ctx context.Context, authCode string) (bson.M, error) {
	return s.certs.FindByAuthCode(ctx, authCode)
}

func (s *certificateService) IssueTeamCertificates(ctx context.Context, user *model.User) ([]model.IssuanceResult, error) {
	if user.Team == nil || user.Team.TeamName == "" || len(user.Team.Members) == 0 {
		return nil, fmt.Errorf("team name or members data missing for user %s", user.UID)
	}

	topic := certificate.CleanTopic(user.Team.CompetitionTopic.Topic)
	results := make([]model.IssuanceResult, 0, len(user.Team.Members))

	for _, member := range user.Team.Members {
		if member.Name == "" || member.AuthCode == "" {
			s.logger.Warn("skipping team member without name or auth code",
				zap.String("uid", user.UID), zap.String("member", member.Name))
			results = append(results, model.IssuanceResult{
				Subject: member.Name,
				Status:  model.IssuanceSkipped,
				Reason:  "missing name or authCode",
			})
			continue
		}

		cert := model.Certificate{
			TeamName: user.Team.TeamName,
			Topic:    topic,
			Name:     member.Name,
			AuthCode: member.AuthCode,
			Type:     model.CertificateTypeTeamMember,
		}
		if _, err := s.certs.CreateIssued(ctx, cert); err != nil {
			s.logger.Error("team certificate not issued",
				zap.String("uid", user.UID), zap.String("member", member.Name), zap.Error(err))
			results = append(results, model.IssuanceResult{
				Subject: member.Name,
				Status:  model.IssuanceFailed,
				Reason:  err.Error(),
			})
			continue
		}
		results = append(results, model.IssuanceResult{
			Subject:  member.Name,
			Status:   model.IssuanceIssued,
			AuthCode: member.AuthCode,
		})
	}
	return results, nil
}

func (s *certificateService) GenerateSessionCertificate(ctx context.Context, participantID string) (*model.Certificate, error) {
	form, err := s.forms.Get(ctx, participantID)
	if err != nil {
		return nil, err
	}

	cert := model.Certificate{
		Name:     stringField(form, "name"),
		Whatsapp: stringField(form, "whatsapp"),
		Type:     model.CertificateTypeSession,
		AuthCode: certificate.NewSessionAuthCode(),
	}
	if err := s.certs.CreateForParticipant(ctx, participantID, cert); err != nil {
		return nil, err
	}
	return &cert, nil
}

func (s *certificateService) GenerateAllSessionCertificates(ctx context.Context) ([]model.IssuanceResult, error) {
	forms, err := s.forms.All(ctx)
	if err != nil {
		return nil, err
	}

	results := make([]model.IssuanceResult, 0, len(forms))
	for _, form := range forms {
		participantID := stringField(form, "_id")
		cert := model.Certificate{
			Name:     stringField(form, "name"),
			Whatsapp: stringField(form, "whatsapp"),
			Type:     model.CertificateTypeSession,
			AuthCode: certificate.NewSessionAuthCode(),
		}

		err := s.certs.CreateForParticipant(ctx, participantID, cert)
		switch {
		case errors.Is(err, repo.ErrAlreadyExists):
			results = append(results, model.IssuanceResult{
				Subject: participantID,
				Status:  model.IssuanceSkipped,
				Reason:  "certificate already generated",
			})
		case err != nil:
			s.logger.Error("session certificate not issued",
				zap.String("participant", participantID), zap.Error(err))
			results = append(results, model.IssuanceResult{
				Subject: participantID,
				Status:  model.IssuanceFailed,
				Reason:  err.Error(),
			})
		default:
			results = append(results, model.IssuanceResult{
				Subject:  participantID,
				Status:   model.IssuanceIssued,
				AuthCode: cert.AuthCode,
			})
		}
	}
	return results, nil
}

func (s *certificateService) AdminGenerate(ctx context.Context, cert model.Certificate) (string, error) {
	return s.certs.CreateIssued(ctx, cert)
}

func (s *certificateService) All(ctx context.Context) ([]bson.M, error) {
	return s.certs.All(ctx)
}

func (s *certificateService) AllSession(ctx context.Context) ([]bson.M, error) {
	return s.forms.All(ctx)
}

func (s *certificateService) Delete(ctx context.Context, id string) error {
	return s.certs.Delete(ctx, id)
}

func (s *certificateService) ImportWorkbook(ctx context.Context, rows []spreadsheet.Row) ([]model.IssuanceResult, error) {
	results := make([]model.IssuanceResult, 0, len(rows))
	for i, row := range rows {
		subject := fmt.Sprintf("row %d", i+2) // +2: 1-based with the header row
		if !row.Complete() {
			s.logger.Warn("skipping spreadsheet row with blank fields", zap.String("row", subject))
			results = append(results, model.IssuanceResult{
				Subject: subject,
				Status:  model.IssuanceSkipped,
				Reason:  "blank field",
			})
			continue
		}

		id, err := s.certs.CreateRaw(ctx, row)
		if err != nil {
			results = append(results, model.IssuanceResult{
				Subject: subject,
				Status:  model.IssuanceFailed,
				Reason:  err.Error(),
			})
			continue
		}
		results = append(results, model.IssuanceResult{
			Subject:  id,
			Status:   model.IssuanceIssued,
			AuthCode: row["authCode"],
		})
	}
	return results, nil
}

func (s *certificateService) MatchWorkbook(ctx context.Context, rows []spreadsheet.Row) ([]bson.M, error) {
	authCodes := make([]string, 0, len(rows))
	for _, row := range rows {
		if code := row["authCode"]; code != "" {
			authCodes = append(authCodes, code)
		}
	}
	if len(authCodes) == 0 {
		return nil, nil
	}
	return s.certs.FindByAuthCodes(ctx, authCodes)
}

func stringField(doc bson.M, key string) string {
	if v, ok := doc[key].(string); ok {
		return v
	}
	return ""
}
