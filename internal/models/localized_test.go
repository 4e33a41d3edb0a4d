package models

import (
	"encoding/json"
	"testing"

	"go.mongodb.org/mongo-driver/bson"
)

func TestLocalizedTextJSONLegacyString(t *testing.T) {
	var lt LocalizedText
	if err := json.Unmarshal([]byte(`"Арабіка"`), &lt); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if lt.Uk != "Арабіка" || lt.En != "Арабіка" {
		t.Errorf("legacy string should fill both sides, got %+v", lt)
	}
}

func TestLocalizedTextJSONMap(t *testing.T) {
	var lt LocalizedText
	if err := json.Unmarshal([]byte(`{"uk":"Зерна","en":"Beans"}`), &lt); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if lt.Uk != "Зерна" || lt.En != "Beans" {
		t.Errorf("got %+v", lt)
	}
}

func TestLocalizedTextJSONAlwaysEncodesMap(t *testing.T) {
	out, err := json.Marshal(LocalizedText{Uk: "Кава", En: "Coffee"})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(out) != `{"uk":"Кава","en":"Coffee"}` {
		t.Errorf("got %s", out)
	}
}

func TestLocalizedTextBSONLegacyString(t *testing.T) {
	raw, err := bson.Marshal(bson.M{"name": "Робуста"})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var doc struct {
		Name LocalizedText `bson:"name"`
	}
	if err := bson.Unmarshal(raw, &doc); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if doc.Name.Uk != "Робуста" || doc.Name.En != "Робуста" {
		t.Errorf("got %+v", doc.Name)
	}
}

func TestLocalizedTextBSONRoundTrip(t *testing.T) {
	type wrapper struct {
		Name LocalizedText `bson:"name"`
	}
	in := wrapper{Name: LocalizedText{Uk: "Купажі", En: "Blends"}}

	raw, err := bson.Marshal(in)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var out wrapper
	if err := bson.Unmarshal(raw, &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if out != in {
		t.Errorf("round trip changed value: %+v != %+v", out, in)
	}
}

func TestLocalizedTextBSONNull(t *testing.T) {
	raw, err := bson.Marshal(bson.M{"name": nil})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var doc struct {
		Name LocalizedText `bson:"name"`
	}
	if err := bson.Unmarshal(raw, &doc); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !doc.Name.IsEmpty() {
		t.Errorf("null should decode empty, got %+v", doc.Name)
	}
}

func TestLocalizedTextFallback(t *testing.T) {
	lt := LocalizedText{Uk: "Кава"}
	if got := lt.Text("en"); got != "Кава" {
		t.Errorf("expected fallback to uk, got %q", got)
	}
	lt = LocalizedText{En: "Coffee"}
	if got := lt.Text("uk"); got != "Coffee" {
		t.Errorf("expected fallback to en, got %q", got)
	}
}
