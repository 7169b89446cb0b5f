package request

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/kailas-cloud/docstore/pkg/optional"
)

func TestNew_Accessors(t *testing.T) {
	from := time.Date(2023, 1, 15, 0, 0, 0, 0, time.UTC)
	to := time.Date(2023, 2, 15, 23, 59, 59, 0, time.UTC)

	r := New([]string{"ABC"}, []string{"different"}, []string{"author1"},
		optional.Of(from), optional.Of(to))

	assert.Equal(t, []string{"ABC"}, r.TitlePrefixes())
	assert.Equal(t, []string{"different"}, r.ContainsContents())
	assert.Equal(t, []string{"author1"}, r.AuthorIDs())
	assert.Equal(t, from, r.CreatedFrom().OrElse(time.Time{}))
	assert.Equal(t, to, r.CreatedTo().OrElse(time.Time{}))
	assert.False(t, r.IsEmpty())
}

func TestNew_CopiesSlices(t *testing.T) {
	prefixes := []string{"ABC"}
	r := New(prefixes, nil, nil, optional.None[time.Time](), optional.None[time.Time]())

	prefixes[0] = "XYZ"
	assert.Equal(t, []string{"ABC"}, r.TitlePrefixes())
}

func TestIsEmpty(t *testing.T) {
	none := optional.None[time.Time]()
	now := optional.Of(time.Now())

	tests := []struct {
		name string
		req  Request
		want bool
	}{
		{"zero value", Request{}, true},
		{"nil lists", New(nil, nil, nil, none, none), true},
		{"empty lists", New([]string{}, []string{}, []string{}, none, none), true},
		{"title only", New([]string{"A"}, nil, nil, none, none), false},
		{"content only", New(nil, []string{"a"}, nil, none, none), false},
		{"author only", New(nil, nil, []string{"a1"}, none, none), false},
		{"from only", New(nil, nil, nil, now, none), false},
		{"to only", New(nil, nil, nil, none, now), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.req.IsEmpty())
		})
	}
}
