package rop

import "fmt"

// Variant names used on the wire by both taggings.
const (
	OkTag  = "Ok"
	ErrTag = "Err"
)

const (
	DefaultTagKey     = "type"
	DefaultContentKey = "value"
)

// Tagging selects how a Result is laid out as JSON.
//
// External tagging uses the variant name as the only key: {"Ok":1}.
// Adjacent tagging uses two sibling members, one naming the variant and one
// holding the payload: {"type":"Ok","value":1}.
type Tagging struct {
	tag      string
	content  string
	adjacent bool
}

var (
	External        = Tagging{}
	DefaultAdjacent = Adjacently(DefaultTagKey, DefaultContentKey)
)

// Adjacently returns an adjacent tagging with the given member names.
// tag and content must differ; the codec package validates this for
// configured taggings.
func Adjacently(tag, content string) Tagging {
	return Tagging{tag: tag, content: content, adjacent: true}
}

func (t Tagging) IsAdjacent() bool {
	return t.adjacent
}

func (t Tagging) TagKey() string {
	return t.tag
}

func (t Tagging) ContentKey() string {
	return t.content
}

func (t Tagging) String() string {
	if !t.adjacent {
		return "external"
	}
	return fmt.Sprintf("adjacent(%s,%s)", t.tag, t.content)
}
