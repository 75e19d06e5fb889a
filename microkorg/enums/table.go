package enums

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// table is an ordered list of wire names; an empty entry marks an unused index.
type table struct {
	kind    string
	names   []string
	aliases map[string]int
}

func canon(s string) string {
	r := strings.NewReplacer(" ", "", "_", "", "-", "", ".", "")
	return strings.ToLower(r.Replace(strings.TrimSpace(s)))
}

func (t *table) valid(i int) bool {
	return 0 <= i && i < len(t.names) && t.names[i] != ""
}

func (t *table) name(i int) string {
	if t.valid(i) {
		return t.names[i]
	}
	return fmt.Sprintf("undefined(%d)", i)
}

func (t *table) parse(s string) (int, bool) {
	c := canon(s)
	for i, n := range t.names {
		if n != "" && canon(n) == c {
			return i, true
		}
	}
	if i, ok := t.aliases[c]; ok {
		return i, true
	}
	return 0, false
}

func (t *table) marshal(i int) ([]byte, error) {
	if !t.valid(i) {
		return json.Marshal(i)
	}
	return json.Marshal(t.names[i])
}

// unmarshal accepts a name, an alias or a bare index.
func (t *table) unmarshal(b []byte) (int, error) {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		if i, ok := t.parse(s); ok {
			return i, nil
		}
		return 0, errors.Errorf("unknown %s %q", t.kind, s)
	}
	var i int
	if err := json.Unmarshal(b, &i); err != nil {
		return 0, errors.Wrapf(err, "%s must be a name or an index", t.kind)
	}
	if !t.valid(i) {
		return 0, errors.Errorf("%s index %d out of range", t.kind, i)
	}
	return i, nil
}
