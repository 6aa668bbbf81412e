package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/isrcorgin/ISRC-Backend/internal/model"
	"github.com/isrcorgin/ISRC-Backend/internal/repo"
	"github.com/isrcorgin/ISRC-Backend/internal/spreadsheet"

	"go.uber.org/zap"
)

func toRows(maps []map[string]string) []spreadsheet.Row {
	rows := make([]spreadsheet.Row, len(maps))
	for i, m := range maps {
		rows[i] = spreadsheet.Row(m)
	}
	return rows
}

func TestIssueTeamCertificatesSkipsIncompleteMembers(t *testing.T) {
	certs := newFakeCertRepo()
	svc := NewCertificateService(certs, &fakeFormRepo{}, zap.NewNop())

	user := &model.User{
		UID: "u1",
		Team: &model.Team{
			TeamName: "Circuit Breakers",
			CompetitionTopic: model.CompetitionTopic{
				Topic: "Robotics 13 to 18",
			},
			Members: []model.TeamMember{
				{Name: "Asha", AuthCode: "AC1"},
				{Name: "Ravi"}, // no auth code
				{Name: "Meera", AuthCode: "AC3"},
			},
		},
	}

	results, err := svc.IssueTeamCertificates(context.Background(), user)
	if err != nil {
		t.Fatalf("IssueTeamCertificates: %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("expected 3 itemized results, got %d", len(results))
	}

	if results[0].Status != model.IssuanceIssued || results[2].Status != model.IssuanceIssued {
		t.Errorf("complete members should be issued, got %q and %q", results[0].Status, results[2].Status)
	}
	if results[1].Status != model.IssuanceSkipped {
		t.Errorf("member without auth code should be skipped, got %q", results[1].Status)
	}

	if len(certs.issued) != 2 {
		t.Fatalf("expected 2 stored certificates, got %d", len(certs.issued))
	}
	for _, cert := range certs.issued {
		if cert.Topic != "Robotics" {
			t.Errorf("topic not cleaned: %q", cert.Topic)
		}
		if cert.Type != model.CertificateTypeTeamMember {
			t.Errorf("wrong certificate type: %q", cert.Type)
		}
	}
}

func TestIssueTeamCertificatesContinuesPastWriteFailure(t *testing.T) {
	certs := newFakeCertRepo()
	certs.failNames["Ravi"] = true
	svc := NewCertificateService(certs, &fakeFormRepo{}, zap.NewNop())

	user := &model.User{
		UID: "u1",
		Team: &model.Team{
			TeamName: "Circuit Breakers",
			Members: []model.TeamMember{
				{Name: "Asha", AuthCode: "AC1"},
				{Name: "Ravi", AuthCode: "AC2"},
				{Name: "Meera", AuthCode: "AC3"},
			},
		},
	}

	results, err := svc.IssueTeamCertificates(context.Background(), user)
	if err != nil {
		t.Fatalf("IssueTeamCertificates: %v", err)
	}
	if results[1].Status != model.IssuanceFailed {
		t.Errorf("expected failed status for rejected write, got %q", results[1].Status)
	}
	if len(certs.issued) != 2 {
		t.Errorf("remaining members should still be issued, got %d", len(certs.issued))
	}
}

func TestIssueTeamCertificatesRequiresTeam(t *testing.T) {
	svc := NewCertificateService(newFakeCertRepo(), &fakeFormRepo{}, zap.NewNop())

	if _, err := svc.IssueTeamCertificates(context.Background(), &model.User{UID: "u1"}); err == nil {
		t.Fatal("expected error for user without a team")
	}
}

func TestGenerateSessionCertificateFromCertificationForm(t *testing.T) {
	certs := newFakeCertRepo()
	forms := &fakeFormRepo{}
	svc := NewCertificateService(certs, forms, zap.NewNop())

	ctx := context.Background()
	id, err := forms.Create(ctx, map[string]interface{}{"name": "Kiran", "whatsapp": "9876543210"})
	if err != nil {
		t.Fatal(err)
	}

	cert, err := svc.GenerateSessionCertificate(ctx, id)
	if err != nil {
		t.Fatalf("GenerateSessionCertificate: %v", err)
	}
	if cert.Name != "Kiran" || cert.Whatsapp != "9876543210" {
		t.Errorf("certificate not filled from the form: %+v", cert)
	}
	if cert.Type != model.CertificateTypeSession {
		t.Errorf("wrong certificate type: %q", cert.Type)
	}
	if !strings.HasPrefix(cert.AuthCode, "SEC") || len(cert.AuthCode) != 11 {
		t.Errorf("unexpected session auth code %q", cert.AuthCode)
	}

	if _, err := svc.GenerateSessionCertificate(ctx, id); !errors.Is(err, repo.ErrAlreadyExists) {
		t.Errorf("second generation should report a duplicate, got %v", err)
	}
}

func TestAllSessionListsSharedForms(t *testing.T) {
	forms := &fakeFormRepo{}
	svc := NewCertificateService(newFakeCertRepo(), forms, zap.NewNop())

	ctx := context.Background()
	if _, err := forms.Create(ctx, map[string]interface{}{"name": "Lata"}); err != nil {
		t.Fatal(err)
	}

	docs, err := svc.AllSession(ctx)
	if err != nil {
		t.Fatalf("AllSession: %v", err)
	}
	if len(docs) != 1 || docs[0]["name"] != "Lata" {
		t.Errorf("listing should surface the generator's form source, got %v", docs)
	}
}

func TestAdminGenerateCertificateIsVerifiable(t *testing.T) {
	certs := newFakeCertRepo()
	svc := NewCertificateService(certs, &fakeFormRepo{}, zap.NewNop())

	ctx := context.Background()
	id, err := svc.AdminGenerate(ctx, model.Certificate{
		AuthCode: "SEC00000042",
		Name:     "Kiran",
		Type:     model.CertificateTypeSession,
		Whatsapp: "9876543210",
	})
	if err != nil {
		t.Fatalf("AdminGenerate: %v", err)
	}
	if id == "" {
		t.Fatal("expected a generated certificate id")
	}

	doc, err := svc.Verify(ctx, "SEC00000042")
	if err != nil {
		t.Fatalf("Verify after AdminGenerate: %v", err)
	}
	if doc["name"] != "Kiran" {
		t.Errorf("verification returned the wrong certificate: %v", doc)
	}
}

func TestGenerateAllSessionCertificatesSkipsDuplicates(t *testing.T) {
	certs := newFakeCertRepo()
	forms := &fakeFormRepo{}
	svc := NewCertificateService(certs, forms, zap.NewNop())

	ctx := context.Background()
	for _, name := range []string{"Kiran", "Lata"} {
		if _, err := forms.Create(ctx, map[string]interface{}{"name": name, "whatsapp": "9", "_ignored": name}); err != nil {
			t.Fatal(err)
		}
	}

	first, err := svc.GenerateAllSessionCertificates(ctx)
	if err != nil {
		t.Fatalf("first run: %v", err)
	}
	for _, res := range first {
		if res.Status != model.IssuanceIssued {
			t.Errorf("first run should issue everything, got %q for %s", res.Status, res.Subject)
		}
		if !strings.HasPrefix(res.AuthCode, "SEC") || len(res.AuthCode) != 11 {
			t.Errorf("unexpected session auth code %q", res.AuthCode)
		}
	}

	second, err := svc.GenerateAllSessionCertificates(ctx)
	if err != nil {
		t.Fatalf("second run: %v", err)
	}
	for _, res := range second {
		if res.Status != model.IssuanceSkipped {
			t.Errorf("second run should skip duplicates, got %q for %s", res.Status, res.Subject)
		}
	}
}

func TestImportWorkbookSkipsBlankRows(t *testing.T) {
	certs := newFakeCertRepo()
	svc := NewCertificateService(certs, &fakeFormRepo{}, zap.NewNop())

	rows := []map[string]string{
		{"name": "Asha", "authCode": "AC1"},
		{"name": "", "authCode": "AC2"},
		{"name": "Meera", "authCode": "AC3"},
	}

	results, err := svc.ImportWorkbook(context.Background(), toRows(rows))
	if err != nil {
		t.Fatalf("ImportWorkbook: %v", err)
	}
	if results[1].Status != model.IssuanceSkipped {
		t.Errorf("blank row should be skipped, got %q", results[1].Status)
	}
	if len(certs.raw) != 2 {
		t.Errorf("expected 2 imported rows, got %d", len(certs.raw))
	}
}
