package resume

import (
	"bytes"
	"encoding/json"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Resume is the single structured profile record served by this system.
type Resume struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	PersonalInfo PersonalInfo       `bson:"personal_info" json:"personal_info"`
	Education    []Education        `bson:"education" json:"education"`
	Skills       SkillSet           `bson:"skills" json:"skills"`
	Projects     []Project          `bson:"projects" json:"projects"`
	About        string             `bson:"about" json:"about"`
}

// PersonalInfo holds the candidate's contact block.
type PersonalInfo struct {
	Name     string `bson:"name" json:"name"`
	Title    string `bson:"title" json:"title"`
	Email    string `bson:"email" json:"email"`
	Mobile   string `bson:"mobile" json:"mobile"`
	Location string `bson:"location" json:"location"`
}

// Education is one entry in the education history.
type Education struct {
	Degree      string `bson:"degree" json:"degree"`
	Status      string `bson:"status" json:"status"`
	Institution string `bson:"institution" json:"institution"`
}

// Project is one portfolio project.
type Project struct {
	Name         string   `bson:"name" json:"name"`
	Description  string   `bson:"description" json:"description"`
	Technologies []string `bson:"technologies" json:"technologies"`
}

// SkillGroup is one skill category with its ordered skill names.
type SkillGroup struct {
	Category string
	Items    []string
}

// SkillSet is the ordered list of skill categories. On the wire (both JSON and
// BSON) it is an object mapping category to skill list; the slice keeps the
// category order that a Go map would lose, which the rendered context depends on.
type SkillSet []SkillGroup

// MarshalJSON renders the set as an object, preserving category order.
func (s SkillSet) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, group := range s {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(group.Category)
		if err != nil {
			return nil, err
		}
		items := group.Items
		if items == nil {
			items = []string{}
		}
		val, err := json.Marshal(items)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON reads an object of category -> skill list, keeping key order.
func (s *SkillSet) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if tok == nil {
		*s = nil
		return nil
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("skills: expected object, got %v", tok)
	}

	out := SkillSet{}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("skills: expected string key, got %v", keyTok)
		}
		var items []string
		if err := dec.Decode(&items); err != nil {
			return fmt.Errorf("skills.%s: %w", key, err)
		}
		out = append(out, SkillGroup{Category: key, Items: items})
	}
	*s = out
	return nil
}

// MarshalBSON stores the set as an embedded document, preserving category order.
func (s SkillSet) MarshalBSON() ([]byte, error) {
	doc := make(bson.D, 0, len(s))
	for _, group := range s {
		items := group.Items
		if items == nil {
			items = []string{}
		}
		doc = append(doc, bson.E{Key: group.Category, Value: items})
	}
	return bson.Marshal(doc)
}

// UnmarshalBSON reads the embedded document back in stored element order.
func (s *SkillSet) UnmarshalBSON(data []byte) error {
	elems, err := bson.Raw(data).Elements()
	if err != nil {
		return err
	}
	out := make(SkillSet, 0, len(elems))
	for _, el := range elems {
		vals, err := el.Value().Array().Values()
		if err != nil {
			return fmt.Errorf("skills.%s: %w", el.Key(), err)
		}
		items := make([]string, 0, len(vals))
		for _, v := range vals {
			str, ok := v.StringValueOK()
			if !ok {
				return fmt.Errorf("skills.%s: expected string items", el.Key())
			}
			items = append(items, str)
		}
		out = append(out, SkillGroup{Category: el.Key(), Items: items})
	}
	*s = out
	return nil
}
