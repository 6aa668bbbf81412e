package repo

import (
	"testing"
)

func TestRawCertificateDocIgnoresIDColumn(t *testing.T) {
	doc := rawCertificateDoc(map[string]string{
		"name":     "Asha",
		"authCode": "AC1",
		"_id":      "attacker-chosen",
	})

	id, ok := doc["_id"].(string)
	if !ok || id == "" {
		t.Fatalf("expected a generated string id, got %v", doc["_id"])
	}
	if id == "attacker-chosen" {
		t.Error("spreadsheet _id column must not pick the document id")
	}
	if doc["name"] != "Asha" || doc["authCode"] != "AC1" {
		t.Errorf("row fields should be copied, got %v", doc)
	}
	if _, ok := doc["createdAt"]; !ok {
		t.Error("createdAt should be stamped on import")
	}
}

func TestRawCertificateDocGeneratesDistinctIDs(t *testing.T) {
	a := rawCertificateDoc(map[string]string{"name": "Asha"})
	b := rawCertificateDoc(map[string]string{"name": "Asha"})
	if a["_id"] == b["_id"] {
		t.Errorf("imports must not collide on id, both got %v", a["_id"])
	}
}
