package linkheader

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	cases := []struct {
		name   string
		header string
		exp    map[string]int
	}{
		{
			name:   "next and prev",
			header: `<https://api.example.com/x?page=2>; rel="next", <https://api.example.com/x?page=1>; rel="prev"`,
			exp:    map[string]int{"next": 2, "prev": 1},
		},
		{
			name:   "empty",
			header: "",
			exp:    map[string]int{},
		},
		{
			name:   "whitespace only",
			header: "   ",
			exp:    map[string]int{},
		},
		{
			name:   "segment without page is omitted",
			header: `<https://api.example.com/x?per_page=30>; rel="first", <https://api.example.com/x?page=9&per_page=30>; rel="last"`,
			exp:    map[string]int{"last": 9},
		},
		{
			name:   "non numeric page is omitted",
			header: `<https://api.example.com/x?page=two>; rel="next", <https://api.example.com/x?page=-1>; rel="prev"`,
			exp:    map[string]int{},
		},
		{
			name:   "segment without rel is omitted",
			header: `<https://api.example.com/x?page=3>, <https://api.example.com/x?page=4>; rel="next"`,
			exp:    map[string]int{"next": 4},
		},
		{
			name:   "unknown relation is kept",
			header: `<https://api.example.com/x?page=5>; rel="custom"`,
			exp:    map[string]int{"custom": 5},
		},
		{
			name:   "attribute after rel",
			header: `<https://api.example.com/x?page=2>; rel="next"; title="n"`,
			exp:    map[string]int{"next": 2},
		},
		{
			name:   "attribute before rel",
			header: `<https://api.example.com/x?page=6>; type="text/html"; rel="last"`,
			exp:    map[string]int{"last": 6},
		},
		{
			name:   "look-alike attribute isn't rel",
			header: `<https://api.example.com/x?page=2>; norel="next"`,
			exp:    map[string]int{},
		},
		{
			name:   "garbage",
			header: `not a link header, ;;; , <>`,
			exp:    map[string]int{},
		},
		{
			name: "github style",
			header: `<https://api.github.com/user/starred?page=3&per_page=30&sort=created>; rel="next", ` +
				`<https://api.github.com/user/starred?page=50&per_page=30&sort=created>; rel="last", ` +
				`<https://api.github.com/user/starred?page=1&per_page=30&sort=created>; rel="first", ` +
				`<https://api.github.com/user/starred?page=1&per_page=30&sort=created>; rel="prev"`,
			exp: map[string]int{"next": 3, "last": 50, "first": 1, "prev": 1},
		},
	}

	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.exp, Parse(c.header))
		})
	}
}
