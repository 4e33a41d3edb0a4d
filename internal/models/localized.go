package models

import (
	"encoding/json"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
)

// LocalizedText is a bilingual field. Legacy documents store these fields as
// plain strings while newer ones store {uk, en} maps; both shapes decode into
// this one type so nothing downstream has to branch on shape. Encoding always
// produces the map shape, which upgrades legacy documents on their next write.
type LocalizedText struct {
	Uk string `bson:"uk" json:"uk"`
	En string `bson:"en" json:"en"`
}

// Text returns the value for a language code, falling back to the other
// language when the requested one is empty.
func (lt LocalizedText) Text(lang string) string {
	if lang == "en" {
		if lt.En != "" {
			return lt.En
		}
		return lt.Uk
	}
	if lt.Uk != "" {
		return lt.Uk
	}
	return lt.En
}

func (lt LocalizedText) IsEmpty() bool {
	return lt.Uk == "" && lt.En == ""
}

func (lt *LocalizedText) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		lt.Uk, lt.En = s, s
		return nil
	}
	type plain LocalizedText
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*lt = LocalizedText(p)
	return nil
}

func (lt LocalizedText) MarshalJSON() ([]byte, error) {
	type plain LocalizedText
	return json.Marshal(plain(lt))
}

func (lt *LocalizedText) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	switch t {
	case bsontype.String:
		rv := bson.RawValue{Type: t, Value: data}
		s, ok := rv.StringValueOK()
		if !ok {
			return fmt.Errorf("localized: malformed string value")
		}
		lt.Uk, lt.En = s, s
		return nil
	case bsontype.EmbeddedDocument:
		var doc struct {
			Uk string `bson:"uk"`
			En string `bson:"en"`
		}
		if err := bson.Unmarshal(data, &doc); err != nil {
			return err
		}
		lt.Uk, lt.En = doc.Uk, doc.En
		return nil
	case bsontype.Null, bsontype.Undefined:
		lt.Uk, lt.En = "", ""
		return nil
	}
	return fmt.Errorf("localized: cannot decode %s", t)
}

func (lt LocalizedText) MarshalBSONValue() (bsontype.Type, []byte, error) {
	return bson.MarshalValue(bson.M{"uk": lt.Uk, "en": lt.En})
}
