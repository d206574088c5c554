package scene

import (
	"fmt"

	"github.com/google/uuid"
)

var idNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("svgkit"))

// idGen fills in ids for unnamed definitions when auto ids are enabled.
// Generated ids depend only on the kind prefix and list position, so the
// same scene always renders the same markup.
type idGen struct {
	auto bool
}

func newIDGen(auto bool) *idGen {
	return &idGen{auto: auto}
}

// id returns given when set, otherwise a generated id such as "g-1a2b3c4d",
// or "" when auto ids are off.
func (g *idGen) id(prefix string, index int, given string) string {
	if given != "" || !g.auto {
		return given
	}
	u := uuid.NewSHA1(idNamespace, []byte(fmt.Sprintf("%s/%d", prefix, index)))
	return prefix + "-" + u.String()[:8]
}
