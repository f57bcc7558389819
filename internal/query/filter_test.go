package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompile(t *testing.T) {
	tests := []struct {
		name    string
		bookID  string
		tagIDs  []string
		keyword string
		want    string
	}{
		{
			name:    "all terms in fixed order",
			bookID:  "book:ABC123",
			tagIDs:  []string{"tag:x", "tag:y"},
			keyword: "foo",
			want:    "bookId:ABC123 tagId:x tagId:y foo",
		},
		{
			name: "nothing is match all",
			want: "",
		},
		{
			name:   "duplicate tags are kept",
			tagIDs: []string{"tag:a", "tag:a"},
			want:   "tagId:a tagId:a",
		},
		{
			name:   "ids without namespace pass through",
			bookID: "ABC",
			tagIDs: []string{"x"},
			want:   "bookId:ABC tagId:x",
		},
		{
			name:    "keyword is opaque",
			bookID:  "book:b",
			keyword: `-status:dropped title:"Sprint 10.0" debounce`,
			want:    `bookId:b -status:dropped title:"Sprint 10.0" debounce`,
		},
		{
			name:    "exclusion only is not rejected",
			keyword: "-book:Backend",
			want:    "-book:Backend",
		},
		{
			name:    "surrounding whitespace trimmed",
			keyword: "  hello ",
			want:    "hello",
		},
		{
			name:   "trash is not a book namespace",
			bookID: "trash",
			want:   "bookId:trash",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Compile(tt.bookID, tt.tagIDs, tt.keyword))
		})
	}
}
